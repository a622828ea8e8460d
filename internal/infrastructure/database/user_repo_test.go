package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"groupbook/internal/domain"
	"groupbook/internal/domain/entities"
)

func TestOrderByUsernames(t *testing.T) {
	alice := entities.User{ID: 1, Username: "Alice"}
	bob := entities.User{ID: 2, Username: "bob"}
	carol := entities.User{ID: 3, Username: "carol"}
	rows := []entities.User{carol, alice, bob}

	tests := []struct {
		name      string
		usernames []string
		want      []entities.User
		wantErr   error
	}{
		{"input order", []string{"bob", "carol", "alice"}, []entities.User{bob, carol, alice}, nil},
		{"stored mixed case", []string{"alice"}, []entities.User{alice}, nil},
		{"requested mixed case", []string{"BOB", "Carol"}, []entities.User{bob, carol}, nil},
		{"duplicates repeated", []string{"alice", "alice"}, []entities.User{alice, alice}, nil},
		{"missing name", []string{"alice", "zoe"}, nil, domain.ErrUserNotFound},
		{"empty name", []string{"alice", ""}, nil, domain.ErrUserNotFound},
		{"no usernames", []string{}, []entities.User{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := orderByUsernames(rows, tt.usernames)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrderByUsernames_NamesMissingUser(t *testing.T) {
	_, err := orderByUsernames(nil, []string{"zoe"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Contains(t, err.Error(), `"zoe"`)
}

func TestLowerUsername(t *testing.T) {
	assert.Equal(t, "alice", lowerUsername("ALICE"))
	assert.Equal(t, "jürgen", lowerUsername("JÜRGEN"))
	assert.Equal(t, "", lowerUsername(""))
}
