package common

import (
	"strconv"
	"strings"
)

// Terminator is the conventional end-of-options token. Everything after it
// is positional, never an option or a command.
const Terminator = "--"

// IsLongOption reports whether tok is a long-form option token (--name).
func IsLongOption(tok string) bool {
	return strings.HasPrefix(tok, "--") && len(tok) > 2
}

// IsShortOption reports whether tok is a short-form option token. Short
// tokens are 2 to 4 characters before any inline =value, start with a
// single dash, and are treated as one combined alias unit rather than
// decomposed per character.
func IsShortOption(tok string) bool {
	if i := strings.IndexByte(tok, '='); i >= 0 {
		tok = tok[:i]
	}
	return len(tok) >= 2 && len(tok) <= 4 && tok[0] == '-' && tok[1] != '-'
}

// IsOptionShaped reports whether tok would be consumed as an option
// rather than as a value or positional.
func IsOptionShaped(tok string) bool {
	return IsLongOption(tok) || IsShortOption(tok)
}

// SplitOption strips the dash prefix from an option token and splits any
// inline =value. ok is false when tok is not option shaped.
func SplitOption(tok string) (candidate, inline string, hasInline, ok bool) {
	switch {
	case IsLongOption(tok):
		candidate = tok[2:]
	case IsShortOption(tok):
		candidate = tok[1:]
	default:
		return "", "", false, false
	}
	if i := strings.IndexByte(candidate, '='); i >= 0 {
		return candidate[:i], candidate[i+1:], true, true
	}
	return candidate, "", false, true
}

// LooksNumeric reports whether s parses as a float. Used both for the
// try-numeric-else-string fallback and to reject numeric-looking values
// for string-typed options.
func LooksNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// IsBoolLiteral reports whether s is exactly "true" or "false". Boolean
// options only ever consume a following token that passes this test.
func IsBoolLiteral(s string) bool {
	return s == "true" || s == "false"
}
