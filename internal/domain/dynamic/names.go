package dynamic

import (
	"fmt"
	"strings"

	"groupbook/internal/domain"
)

const listSeparator = ", "

// GroupName is the label shown for a group of usernames.
func GroupName(usernames []string) string {
	return strings.Join(usernames, listSeparator)
}

// EventDescription returns "Book a <title> with a, b".
func EventDescription(usernames []string, title string) string {
	return fmt.Sprintf("Book a %s with %s", title, strings.Join(usernames, listSeparator))
}

// EventName returns "<title> with a, b & c". names is not modified.
//
// A single name renders as "<title> with  & a"; this is the historical output
// and is kept until a dedicated single-participant format is agreed on.
func EventName(names []string, title string) (string, error) {
	if len(names) == 0 {
		return "", domain.ErrEmptyUserList
	}
	head, last := names[:len(names)-1], names[len(names)-1]
	return fmt.Sprintf("%s with %s & %s", title, strings.Join(head, listSeparator), last), nil
}
