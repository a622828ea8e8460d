package entities

import "time"

// User is the read-only view of a booking participant.
type User struct {
	ID                  uint
	Username            string
	Email               string
	Name                string
	Bio                 string
	Avatar              string
	Theme               string
	Away                bool
	Verified            bool
	AllowDynamicBooking bool
	Locale              string
	TimeZone            string
	BrandColor          string
	DarkBrandColor      string
	HideBranding        bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// DisplayName returns Name, or Username when no name is set.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}
