package dynamic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUsername(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"single", "Jane", []string{"jane"}},
		{"plus", "Jane+John", []string{"jane", "john"}},
		{"encoded space", "Jane%20John", []string{"jane", "john"}},
		{"literal space", "Jane John", []string{"jane", "john"}},
		{"mixed separators", "a b%20c+D", []string{"a", "b", "c", "d"}},
		{"duplicates kept", "bob+Bob", []string{"bob", "bob"}},
		{"unicode lower-cased", "ÉLODIE+Ömer", []string{"élodie", "ömer"}},
		{"trailing separator", "alice+", []string{"alice", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseUsername(tt.input))
		})
	}
}

func TestParseUsernames(t *testing.T) {
	t.Run("nil yields empty non-nil list", func(t *testing.T) {
		got := ParseUsernames(nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("outer then inner order", func(t *testing.T) {
		got := ParseUsernames([]string{"Alice", "Bob+Carol"})
		assert.Equal(t, []string{"alice", "bob", "carol"}, got)
	})

	t.Run("list elements are not filtered", func(t *testing.T) {
		got := ParseUsernames([]string{"", "Dan"})
		assert.Equal(t, []string{"", "dan"}, got)
	})

	t.Run("input is not modified", func(t *testing.T) {
		in := []string{"Alice", "Bob"}
		ParseUsernames(in)
		assert.Equal(t, []string{"Alice", "Bob"}, in)
	})
}
