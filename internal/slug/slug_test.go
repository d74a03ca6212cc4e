package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple name", "Acme Agency", "acme-agency"},
		{"punctuation collapsed", "Bright & Bold Co.", "bright-bold-co"},
		{"whitespace trimmed", "  Studio Nine  ", "studio-nine"},
		{"repeated separators", "a --- b", "a-b"},
		{"already a slug", "acme-agency", "acme-agency"},
		{"unicode stripped", "Café Überhaupt", "caf-berhaupt"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Make(tt.input))
		})
	}
}

func TestMake_CapsLength(t *testing.T) {
	s := Make(strings.Repeat("agency ", 20))
	assert.LessOrEqual(t, len(s), 60)
	assert.False(t, strings.HasSuffix(s, "-"))
}

func TestWithSuffix(t *testing.T) {
	s := WithSuffix("acme-agency")

	assert.True(t, strings.HasPrefix(s, "acme-agency-"))
	assert.Len(t, s, len("acme-agency")+5)
	assert.True(t, IsValid(s), "suffixed slug must still be valid: %s", s)
}

func TestWithSuffix_Varies(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		seen[WithSuffix("base")] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("acme-agency"))
	assert.True(t, IsValid("a1-b2"))

	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Has-Caps"))
	assert.False(t, IsValid("double--dash"))
	assert.False(t, IsValid("-leading"))
	assert.False(t, IsValid("trailing-"))
	assert.False(t, IsValid(strings.Repeat("a", 141)))
}
