package dynamic

import (
	"strings"

	"groupbook/internal/domain"
	"groupbook/internal/domain/entities"
)

// UsernameSlugLink builds the booking path for users and slug:
// /alice/intro for one user, /alice+bob/intro for a group.
func UsernameSlugLink(users []entities.User, slug string) (string, error) {
	if len(users) == 0 {
		return "", domain.ErrEmptyUserList
	}
	if len(users) == 1 {
		return "/" + users[0].Username + "/" + slug, nil
	}
	usernames := make([]string, len(users))
	for i := range users {
		usernames[i] = users[i].Username
	}
	return "/" + strings.Join(usernames, usernameSeparator) + "/" + slug, nil
}
