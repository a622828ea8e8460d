package domain

import "errors"

// Domain errors.
var (
	ErrEmptyUserList          = errors.New("la liste des participants est vide")
	ErrUserNotFound           = errors.New("utilisateur non trouvé")
	ErrEventTypeNotFound      = errors.New("type d'événement non trouvé")
	ErrDynamicBookingDisabled = errors.New("la réservation de groupe est désactivée pour un participant")
	ErrInvalidSlug            = errors.New("slug invalide")
)

// Stable codes exposed to adapters (HTTP payloads, i18n keys).
const (
	CodeEmptyUserList          = "empty_user_list"
	CodeUserNotFound           = "user_not_found"
	CodeEventTypeNotFound      = "event_type_not_found"
	CodeDynamicBookingDisabled = "dynamic_booking_disabled"
	CodeInvalidSlug            = "invalid_slug"
)

var codes = []struct {
	err  error
	code string
}{
	{ErrEmptyUserList, CodeEmptyUserList},
	{ErrUserNotFound, CodeUserNotFound},
	{ErrEventTypeNotFound, CodeEventTypeNotFound},
	{ErrDynamicBookingDisabled, CodeDynamicBookingDisabled},
	{ErrInvalidSlug, CodeInvalidSlug},
}

// Code returns the stable code of the domain error wrapped by err, or "" when
// err is nil or not a domain error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}
