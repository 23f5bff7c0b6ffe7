package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{"Aatrox", "Kaisa", "Kayle", "Khazix", "MonkeyKing", "Nunu"}

func TestNew_DetectsType(t *testing.T) {
	tests := []struct {
		pattern string
		want    PatternType
	}{
		{"K*", Glob},
		{"Kha?ix", Glob},
		{"[KN]*", Glob},
		{"Aatrox", Glob},
		{"^K", Regex},
		{"x$", Regex},
		{"Ka(i|y)", Regex},
		{"Monkey.*", Regex},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			m, err := New(Auto, tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Type())
			assert.Equal(t, tt.pattern, m.Pattern())
		})
	}
}

func TestMatcher_Filter(t *testing.T) {
	tests := []struct {
		name    string
		typ     PatternType
		pattern string
		want    []string
	}{
		{"glob prefix", Glob, "k*", []string{"Kaisa", "Kayle", "Khazix"}},
		{"glob single char", Glob, "ka?le", []string{"Kayle"}},
		{"glob exact is whole key", Glob, "Nu", []string{}},
		{"glob class", Glob, "[am]*", []string{"Aatrox", "MonkeyKing"}},
		{"regex unanchored", Regex, "king", []string{"MonkeyKing"}},
		{"regex anchored", Regex, "^k.*a$", []string{"Kaisa"}},
		{"regex no match", Auto, "^Z", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.typ, tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Filter(keys))
		})
	}
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(Glob, "[")
	assert.ErrorContains(t, err, "invalid glob pattern")

	_, err = New(Regex, "(")
	assert.ErrorContains(t, err, "invalid regex pattern")

	_, err = New(PatternType(9), "x")
	assert.ErrorContains(t, err, "unsupported pattern type")
}

func TestPatternType_String(t *testing.T) {
	assert.Equal(t, "glob", Glob.String())
	assert.Equal(t, "regex", Regex.String())
	assert.Equal(t, "auto", Auto.String())
	assert.Equal(t, "unknown", PatternType(9).String())
}
