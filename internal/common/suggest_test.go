package common

import (
	"testing"

	"github.com/chriso345/gore/assert"
)

func TestClosestMatch_Prefix(t *testing.T) {
	assert.Equal(t, "install", ClosestMatch("ins", []string{"greet", "install"}))
}

func TestClosestMatch_Transposition(t *testing.T) {
	assert.Equal(t, "serve", ClosestMatch("sevre", []string{"serve", "build"}))
}

func TestClosestMatch_EditDistance(t *testing.T) {
	assert.Equal(t, "greet", ClosestMatch("gret", []string{"greet", "calc"}))
}

func TestClosestMatch_NoMatch(t *testing.T) {
	assert.Equal(t, "", ClosestMatch("zzzzzz", []string{"greet", "calc"}))
	assert.Equal(t, "", ClosestMatch("", []string{"greet"}))
	assert.Equal(t, "", ClosestMatch("greet", nil))
}
