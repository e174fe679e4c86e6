package pronunciation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{"identical", "store", "store", 0},
		{"empty to word", "", "abc", 3},
		{"word to empty", "abc", "", 3},
		{"both empty", "", "", 0},
		{"single substitution", "cat", "bat", 1},
		{"kitten sitting", "kitten", "sitting", 3},
		{"went goed", "went", "goed", 4},
		{"insertion", "store", "stores", 1},
		{"symmetric", "sunday", "saturday", 3},
		{"unicode runes", "café", "cafe", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, levenshtein(tt.b, tt.a))
		})
	}
}
