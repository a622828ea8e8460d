package httpserver

import "groupbook/internal/domain/entities"

type userResponse struct {
	ID                  uint   `json:"id"`
	Username            string `json:"username"`
	Name                string `json:"name"`
	Bio                 string `json:"bio,omitempty"`
	Avatar              string `json:"avatar,omitempty"`
	Theme               string `json:"theme,omitempty"`
	Away                bool   `json:"away"`
	Verified            bool   `json:"verified"`
	AllowDynamicBooking bool   `json:"allowDynamicBooking"`
	TimeZone            string `json:"timeZone,omitempty"`
	BrandColor          string `json:"brandColor,omitempty"`
	DarkBrandColor      string `json:"darkBrandColor,omitempty"`
	HideBranding        bool   `json:"hideBranding"`
}

// eventTypeResponse flattens the settings next to the identity fields so
// persisted and default event types serialize identically.
type eventTypeResponse struct {
	ID                    uint   `json:"id"`
	UserID                uint   `json:"userId"`
	Length                int    `json:"length"`
	Slug                  string `json:"slug"`
	Title                 string `json:"title"`
	EventName             string `json:"eventName"`
	Description           string `json:"description"`
	DescriptionAsSafeHTML string `json:"descriptionAsSafeHTML"`
	Position              int    `json:"position"`
	Hidden                bool   `json:"hidden"`
	entities.EventTypeSettings
	Users []userResponse `json:"users"`
}

type bookingPageResponse struct {
	Usernames   []string          `json:"usernames"`
	GroupName   string            `json:"groupName"`
	IsDynamic   bool              `json:"isDynamic"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Path        string            `json:"path"`
	URL         string            `json:"url"`
	Users       []userResponse    `json:"users"`
	EventType   eventTypeResponse `json:"eventType"`
}

type linkRequest struct {
	Usernames []string `json:"usernames"`
	Slug      string   `json:"slug"`
}

type linkResponse struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func toUserResponses(users []entities.User) []userResponse {
	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = userResponse{
			ID:                  u.ID,
			Username:            u.Username,
			Name:                u.DisplayName(),
			Bio:                 u.Bio,
			Avatar:              u.Avatar,
			Theme:               u.Theme,
			Away:                u.Away,
			Verified:            u.Verified,
			AllowDynamicBooking: u.AllowDynamicBooking,
			TimeZone:            u.TimeZone,
			BrandColor:          u.BrandColor,
			DarkBrandColor:      u.DarkBrandColor,
			HideBranding:        u.HideBranding,
		}
	}
	return out
}

func toEventTypeResponse(e entities.EventType) eventTypeResponse {
	return eventTypeResponse{
		ID:                    e.ID,
		UserID:                e.UserID,
		Length:                e.Length,
		Slug:                  e.Slug,
		Title:                 e.Title,
		EventName:             e.EventName,
		Description:           e.Description,
		DescriptionAsSafeHTML: e.DescriptionAsSafeHTML,
		Position:              e.Position,
		Hidden:                e.Hidden,
		EventTypeSettings:     e.Settings,
		Users:                 toUserResponses(e.Users),
	}
}

func toEventTypeResponses(events []entities.EventType) []eventTypeResponse {
	out := make([]eventTypeResponse, len(events))
	for i := range events {
		out[i] = toEventTypeResponse(events[i])
	}
	return out
}
