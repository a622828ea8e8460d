package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"groupbook/internal/domain"
	"groupbook/internal/domain/entities"
	"groupbook/internal/ports/output"
)

// DBTX is the subset of pgxpool.Pool (or pgx.Tx) used by the repositories.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const userColumns = `id, username, email, name, bio, avatar, theme, away, verified,
	allow_dynamic_booking, locale, time_zone, brand_color, dark_brand_color,
	hide_branding, created_at, updated_at`

var _ output.UserRepository = (*UserRepository)(nil)

// UserRepository implements output.UserRepository using pgx.
type UserRepository struct {
	db DBTX
}

// NewUserRepository creates a UserRepository.
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// FindByUsername loads one user. Usernames are matched case-insensitively.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	var row userRow
	err := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(username) = $1`, lowerUsername(username)).
		Scan(row.scanTargets()...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get user %q: %w", username, domain.ErrUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	u := userToDomain(row)
	return &u, nil
}

// FindByUsernames loads all users in one query and returns them in the order
// of usernames, repeating a user when its username is repeated.
func (r *UserRepository) FindByUsernames(ctx context.Context, usernames []string) ([]entities.User, error) {
	keys := make([]string, len(usernames))
	for i, name := range usernames {
		keys[i] = lowerUsername(name)
	}

	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users WHERE lower(username) = ANY($1)`, keys)
	if err != nil {
		return nil, fmt.Errorf("get users by usernames: %w", err)
	}
	defer rows.Close()

	var users []entities.User
	for rows.Next() {
		var row userRow
		if err := rows.Scan(row.scanTargets()...); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, userToDomain(row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get users by usernames: %w", err)
	}

	return orderByUsernames(users, usernames)
}

// orderByUsernames lays users out in the order of usernames, case-insensitively.
// A username with no matching user yields domain.ErrUserNotFound.
func orderByUsernames(users []entities.User, usernames []string) ([]entities.User, error) {
	byUsername := make(map[string]entities.User, len(users))
	for _, u := range users {
		byUsername[lowerUsername(u.Username)] = u
	}

	out := make([]entities.User, len(usernames))
	for i, name := range usernames {
		u, ok := byUsername[lowerUsername(name)]
		if !ok {
			return nil, fmt.Errorf("get user %q: %w", name, domain.ErrUserNotFound)
		}
		out[i] = u
	}
	return out, nil
}

func lowerUsername(s string) string {
	return cases.Lower(language.Und).String(s)
}
