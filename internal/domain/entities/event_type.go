package entities

import "time"

type PeriodType string

const (
	PeriodUnlimited PeriodType = "UNLIMITED"
	PeriodRolling   PeriodType = "ROLLING"
	PeriodRange     PeriodType = "RANGE"
)

type SchedulingType string

const (
	SchedulingRoundRobin SchedulingType = "ROUND_ROBIN"
	SchedulingCollective SchedulingType = "COLLECTIVE"
)

// DailyLocationType is the built-in video location.
const DailyLocationType = "integrations:daily"

// Location is one entry of an event type's location list.
type Location struct {
	Type    string `json:"type"`
	Address string `json:"address,omitempty"`
	Link    string `json:"link,omitempty"`
}

// EventTypeSettings holds the scheduling configuration of an event type.
// It is persisted as a single JSON document and passed through untouched by
// the booking resolver.
type EventTypeSettings struct {
	IsDynamic               bool           `json:"isDynamic"`
	PeriodType              PeriodType     `json:"periodType"`
	PeriodCountCalendarDays bool           `json:"periodCountCalendarDays"`
	PeriodStartDate         *time.Time     `json:"periodStartDate"`
	PeriodEndDate           *time.Time     `json:"periodEndDate"`
	PeriodDays              *int           `json:"periodDays"`
	SlotInterval            *int           `json:"slotInterval"`
	BeforeEventBuffer       int            `json:"beforeEventBuffer"`
	AfterEventBuffer        int            `json:"afterEventBuffer"`
	MinimumBookingNotice    int            `json:"minimumBookingNotice"`
	Locations               []Location     `json:"locations"`
	CustomInputs            []CustomInput  `json:"customInputs"`
	DisableGuests           bool           `json:"disableGuests"`
	SuccessRedirectURL      string         `json:"successRedirectUrl"`
	TeamID                  *uint          `json:"teamId"`
	ScheduleID              *uint          `json:"scheduleId"`
	TimeZone                *string        `json:"timeZone"`
	Price                   int            `json:"price"`
	Currency                string         `json:"currency"`
	SchedulingType          SchedulingType `json:"schedulingType"`
	SeatsPerTimeSlot        *int           `json:"seatsPerTimeSlot"`
	SeatsShowAttendees      *bool          `json:"seatsShowAttendees"`
	HideCalendarNotes       bool           `json:"hideCalendarNotes"`
	RequiresConfirmation    bool           `json:"requiresConfirmation"`
	BookingLimits           map[string]int `json:"bookingLimits"`
	Metadata                map[string]any `json:"metadata"`
}

// CustomInput is an extra question asked on the booking form.
type CustomInput struct {
	Label       string `json:"label"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Placeholder string `json:"placeholder,omitempty"`
}

// EventType is a bookable event definition, either persisted by a user or
// synthesized from the default table for dynamic group links.
type EventType struct {
	ID                    uint
	UserID                uint
	Length                int
	Slug                  string
	Title                 string
	EventName             string
	Description           string
	DescriptionAsSafeHTML string
	Position              int
	Hidden                bool
	Settings              EventTypeSettings
	Users                 []User
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Clone returns a deep copy so callers may modify the result freely.
func (e EventType) Clone() EventType {
	out := e
	out.Settings = e.Settings.clone()
	if e.Users != nil {
		out.Users = append([]User(nil), e.Users...)
	}
	return out
}

func (s EventTypeSettings) clone() EventTypeSettings {
	out := s
	if s.Locations != nil {
		out.Locations = append([]Location(nil), s.Locations...)
	}
	if s.CustomInputs != nil {
		out.CustomInputs = append([]CustomInput(nil), s.CustomInputs...)
	}
	if s.BookingLimits != nil {
		out.BookingLimits = make(map[string]int, len(s.BookingLimits))
		for k, v := range s.BookingLimits {
			out.BookingLimits[k] = v
		}
	}
	if s.Metadata != nil {
		out.Metadata = make(map[string]any, len(s.Metadata))
		for k, v := range s.Metadata {
			out.Metadata[k] = v
		}
	}
	return out
}
