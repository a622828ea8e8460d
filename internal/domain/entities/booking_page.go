package entities

// BookingPage is everything a booking page needs to render a link such as
// /alice+bob/s1-eg.
type BookingPage struct {
	Usernames   []string
	Users       []User
	GroupName   string
	IsDynamic   bool
	Title       string
	Description string
	EventType   EventType
	Path        string
}
