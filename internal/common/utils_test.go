package common

import (
	"testing"

	"github.com/chriso345/gore/assert"
)

func TestIsLongOption(t *testing.T) {
	assert.True(t, IsLongOption("--name"))
	assert.True(t, !IsLongOption("--"))
	assert.True(t, !IsLongOption("-n"))
	assert.True(t, !IsLongOption("name"))
}

func TestIsShortOption(t *testing.T) {
	assert.True(t, IsShortOption("-n"))
	assert.True(t, IsShortOption("-abc"))
	// More than three characters after the dash is not a short unit.
	assert.True(t, !IsShortOption("-abcd"))
	assert.True(t, !IsShortOption("--name"))
	assert.True(t, !IsShortOption("-"))
	assert.True(t, !IsShortOption("n"))
}

func TestIsShortOption_InlineValue(t *testing.T) {
	// The length rule applies to the candidate before "=", so an inline
	// value of any length never disqualifies a short token.
	assert.True(t, IsShortOption("-n=Bob"))
	assert.True(t, IsShortOption("-abc=somethinglong"))
	assert.True(t, !IsShortOption("-abcd=x"))
	assert.True(t, !IsShortOption("-=x"))
}

func TestSplitOption(t *testing.T) {
	cand, inline, hasInline, ok := SplitOption("--name")
	assert.True(t, ok)
	assert.Equal(t, "name", cand)
	assert.True(t, !hasInline)

	cand, inline, hasInline, ok = SplitOption("--name=Alice")
	assert.True(t, ok)
	assert.Equal(t, "name", cand)
	assert.True(t, hasInline)
	assert.Equal(t, "Alice", inline)

	cand, inline, hasInline, ok = SplitOption("-n=Bob")
	assert.True(t, ok)
	assert.Equal(t, "n", cand)
	assert.True(t, hasInline)
	assert.Equal(t, "Bob", inline)

	_, _, _, ok = SplitOption("positional")
	assert.True(t, !ok)
	// A candidate past the short-token length cap stays non-option even
	// with an inline value attached.
	_, _, _, ok = SplitOption("-abcd=x")
	assert.True(t, !ok)
}

func TestLooksNumeric(t *testing.T) {
	assert.True(t, LooksNumeric("3"))
	assert.True(t, LooksNumeric("3.5"))
	assert.True(t, LooksNumeric("-2"))
	assert.True(t, !LooksNumeric("three"))
	assert.True(t, !LooksNumeric(""))
}

func TestIsBoolLiteral(t *testing.T) {
	assert.True(t, IsBoolLiteral("true"))
	assert.True(t, IsBoolLiteral("false"))
	assert.True(t, !IsBoolLiteral("True"))
	assert.True(t, !IsBoolLiteral("1"))
}
