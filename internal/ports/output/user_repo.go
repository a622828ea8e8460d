package output

import (
	"context"

	"groupbook/internal/domain/entities"
)

// UserRepository matches usernames case-insensitively.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	// FindByUsernames returns the users in the order of usernames. A username
	// with no account yields domain.ErrUserNotFound.
	FindByUsernames(ctx context.Context, usernames []string) ([]entities.User, error)
}
