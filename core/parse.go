package core

import (
	"log/slog"

	"github.com/Kingrashy12/ziglet/errors"
	"github.com/Kingrashy12/ziglet/internal/common"
)

// ParseResult is the structured output of one parse pass: the invoked
// command (the first bare token), the remaining positional arguments, and
// the option name to value mapping with defaults pre-populated.
// It is transient and discarded after dispatch.
type ParseResult struct {
	Command string
	Args    []string
	Options map[string]Value
}

// resolver indexes one schema for the duration of a single parse
// invocation. It is never shared across calls, so a second pass over a
// merged schema can never see a stale match from the first pass.
type resolver struct {
	byName  map[string]*Option
	byAlias map[string]*Option
}

func newResolver(schema Options) resolver {
	r := resolver{
		byName:  make(map[string]*Option, len(schema)),
		byAlias: make(map[string]*Option, len(schema)),
	}
	for i := range schema {
		opt := &schema[i]
		r.byName[opt.Name] = opt
		if opt.Alias != "" {
			r.byAlias[opt.Alias] = opt
		}
	}
	return r
}

// lookup matches a candidate against option names first, then aliases.
func (r resolver) lookup(candidate string) *Option {
	if opt, ok := r.byName[candidate]; ok {
		return opt
	}
	return r.byAlias[candidate]
}

// Scan runs the lenient first pass over tokens: same classification rules
// as Parse, but no coercion and no missing-value errors. It exists to
// detect help/version flags and the command name before the schemas are
// merged, so a malformed command invocation can still reach its help.
func Scan(tokens []string, schema Options) *ParseResult {
	res, _, _ := scan(tokens, schema, false)
	return res
}

// Parse resolves tokens against schema and coerces every user-supplied
// value to its option's declared type.
//
// Classification, per token: "--name" is a long option; "-a" (2 to 4
// characters, second not a dash) is a short alias unit; everything else
// is positional. The first positional token becomes the command, all
// later ones are arguments. Tokens after a literal "--" are always
// arguments. Unknown option tokens are consumed without assignment.
//
// A boolean option consumes one following token iff it is literally
// "true" or "false", which then sets its value; otherwise it consumes
// nothing and resolves Bool(true). A non-boolean option consumes the
// following token as its raw value unless that token is option-shaped or
// absent, which is a MissingValueError. Short tokens with more than one
// character after the dash are combined alias units: they always advance
// by one token and resolve as bare flags.
func Parse(tokens []string, schema Options) (*ParseResult, error) {
	res, assigned, err := scan(tokens, schema, true)
	if err != nil {
		return nil, err
	}
	for i := range schema {
		opt := &schema[i]
		if !assigned[opt.Name] {
			continue
		}
		coerced, err := Coerce(opt, res.Options[opt.Name])
		if err != nil {
			return nil, err
		}
		res.Options[opt.Name] = coerced
	}
	slog.Debug("parse pass complete", "command", res.Command, "args", len(res.Args), "options", len(res.Options))
	return res, nil
}

// scan is the single left-to-right pass shared by Scan and Parse. The
// assigned set records which options were set from input, so coercion
// runs only on user-supplied values and never re-judges typed defaults.
func scan(tokens []string, schema Options, strict bool) (*ParseResult, map[string]bool, error) {
	res := &ParseResult{Options: make(map[string]Value, len(schema))}
	assigned := make(map[string]bool, len(schema))
	for i := range schema {
		if !schema[i].Default.IsUndefined() {
			res.Options[schema[i].Name] = schema[i].Default
		}
	}

	rs := newResolver(schema)
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		if tok == common.Terminator {
			res.Args = append(res.Args, tokens[i+1:]...)
			break
		}

		cand, inline, hasInline, isOption := common.SplitOption(tok)
		if !isOption {
			if res.Command == "" && len(res.Args) == 0 {
				res.Command = tok
			} else {
				res.Args = append(res.Args, tok)
			}
			i++
			continue
		}

		opt := rs.lookup(cand)
		if opt == nil {
			// Unknown options are consumed but never assigned; reporting
			// them is a presentation concern above this layer.
			i++
			continue
		}

		// A short token with more than one character after the dash is a
		// combined alias unit: it always advances by one token and never
		// consumes a following value.
		cluster := !common.IsLongOption(tok) && len(cand) > 1 && !hasInline

		if opt.Type == TypeBool {
			switch {
			case hasInline:
				if !common.IsBoolLiteral(inline) {
					if strict {
						return nil, nil, errors.NewCoercion(opt.Name, string(TypeBool), inline)
					}
					i++
					continue
				}
				res.Options[opt.Name] = Bool(inline == "true")
			case !cluster && i+1 < len(tokens) && common.IsBoolLiteral(tokens[i+1]):
				// The only lookahead a boolean option ever performs.
				res.Options[opt.Name] = Bool(tokens[i+1] == "true")
				i++
			default:
				res.Options[opt.Name] = Bool(true)
			}
			assigned[opt.Name] = true
			i++
			continue
		}

		if hasInline {
			res.Options[opt.Name] = String(inline)
			assigned[opt.Name] = true
			i++
			continue
		}
		if cluster {
			// Bare-flag unit. Strict coercion rejects the implicit
			// boolean for string and number options.
			res.Options[opt.Name] = Bool(true)
			assigned[opt.Name] = true
			i++
			continue
		}
		if next := i + 1; next < len(tokens) &&
			tokens[next] != common.Terminator && !common.IsOptionShaped(tokens[next]) {
			res.Options[opt.Name] = String(tokens[next])
			assigned[opt.Name] = true
			i += 2
			continue
		}
		if strict {
			return nil, nil, errors.NewMissingValue(opt.Name)
		}
		// Lenient pass: treat as a bare flag. Pass 1 only inspects
		// help/version presence and the command name, so this value is
		// never coerced.
		res.Options[opt.Name] = Bool(true)
		assigned[opt.Name] = true
		i++
	}

	return res, assigned, nil
}
