package dynamic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"groupbook/internal/domain"
)

func TestGroupName(t *testing.T) {
	assert.Equal(t, "alice, bob", GroupName([]string{"alice", "bob"}))
	assert.Equal(t, "alice", GroupName([]string{"alice"}))
	assert.Equal(t, "", GroupName(nil))
}

func TestEventDescription(t *testing.T) {
	assert.Equal(t, "Book a Demo with Alice, Bob", EventDescription([]string{"Alice", "Bob"}, "Demo"))
	assert.Equal(t, "Book a Demo with ", EventDescription(nil, "Demo"))
}

func TestEventName(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  string
	}{
		{"three", []string{"Alice", "Bob", "Carol"}, "Demo with Alice, Bob & Carol"},
		{"two", []string{"Alice", "Bob"}, "Demo with Alice & Bob"},
		{"one keeps historical shape", []string{"Alice"}, "Demo with  & Alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EventName(tt.names, "Demo")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEventName_DoesNotMutateInput(t *testing.T) {
	names := []string{"Alice", "Bob", "Carol"}

	first, err := EventName(names, "Demo")
	require.NoError(t, err)
	second, err := EventName(names, "Demo")
	require.NoError(t, err)

	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, names)
	assert.Equal(t, first, second)
}

func TestEventName_Empty(t *testing.T) {
	got, err := EventName([]string{}, "Demo")
	assert.ErrorIs(t, err, domain.ErrEmptyUserList)
	assert.Empty(t, got)
}
