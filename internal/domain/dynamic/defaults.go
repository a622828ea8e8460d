package dynamic

import "groupbook/internal/domain/entities"

// placeholderUser stands in for the real group members until the booking page
// replaces Users with them.
var placeholderUser = entities.User{
	Username:            "john.doe",
	Email:               "john.doe@example.com",
	Name:                "John doe",
	Locale:              "en",
	BrandColor:          "#797979",
	DarkBrandColor:      "#efefef",
	HideBranding:        true,
	AllowDynamicBooking: true,
}

func commons() entities.EventTypeSettings {
	return entities.EventTypeSettings{
		IsDynamic:               true,
		PeriodType:              entities.PeriodUnlimited,
		PeriodCountCalendarDays: true,
		MinimumBookingNotice:    120,
		Locations:               []entities.Location{{Type: entities.DailyLocationType}},
		CustomInputs:            []entities.CustomInput{},
		DisableGuests:           true,
		Currency:                "eur",
		SchedulingType:          entities.SchedulingCollective,
		Metadata:                map[string]any{},
	}
}

func defaultEvent(position int, slug, title, eventName string) entities.EventType {
	return entities.EventType{
		Length:                30,
		Slug:                  slug,
		Title:                 title,
		EventName:             eventName,
		Description:           eventName,
		DescriptionAsSafeHTML: eventName,
		Position:              position,
		Settings:              commons(),
		Users:                 []entities.User{placeholderUser},
	}
}

// defaultEvents is read-only after init; accessors return clones.
var defaultEvents = []entities.EventType{
	defaultEvent(0, "s1-eg", "Erstgespräch", "S1 - Erstgespräch"),
	defaultEvent(1, "s2-zg", "Zweitgespräch", "S2 - Zweitgespräch"),
	defaultEvent(2, "s3-ft", "Fragetermin", "S3 - Fragetermin"),
	defaultEvent(3, "abschlusstermin", "Abschlusstermin", "Abschlusstermin"),
}

// DefaultEvents returns a copy of the default event types in display order.
func DefaultEvents() []entities.EventType {
	out := make([]entities.EventType, len(defaultEvents))
	for i := range defaultEvents {
		out[i] = defaultEvents[i].Clone()
	}
	return out
}

// DefaultEvent returns the default event type with the given slug. Unknown
// slugs fall back to the first entry (s1-eg).
func DefaultEvent(slug string) entities.EventType {
	for i := range defaultEvents {
		if defaultEvents[i].Slug == slug {
			return defaultEvents[i].Clone()
		}
	}
	return defaultEvents[0].Clone()
}

// IsDefaultSlug reports whether slug names one of the default event types.
func IsDefaultSlug(slug string) bool {
	for i := range defaultEvents {
		if defaultEvents[i].Slug == slug {
			return true
		}
	}
	return false
}
