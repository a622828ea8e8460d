package database

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"groupbook/internal/domain/entities"
)

// userRow mirrors the users table.
type userRow struct {
	ID                  int64
	Username            string
	Email               string
	Name                pgtype.Text
	Bio                 pgtype.Text
	Avatar              pgtype.Text
	Theme               pgtype.Text
	Away                bool
	Verified            bool
	AllowDynamicBooking bool
	Locale              string
	TimeZone            string
	BrandColor          string
	DarkBrandColor      string
	HideBranding        bool
	CreatedAt           pgtype.Timestamptz
	UpdatedAt           pgtype.Timestamptz
}

func (r *userRow) scanTargets() []any {
	return []any{
		&r.ID, &r.Username, &r.Email, &r.Name, &r.Bio, &r.Avatar, &r.Theme,
		&r.Away, &r.Verified, &r.AllowDynamicBooking, &r.Locale, &r.TimeZone,
		&r.BrandColor, &r.DarkBrandColor, &r.HideBranding, &r.CreatedAt, &r.UpdatedAt,
	}
}

// eventTypeRow mirrors the event_types table; Settings is the raw JSONB.
type eventTypeRow struct {
	ID                    int64
	UserID                int64
	Slug                  string
	Title                 string
	EventName             pgtype.Text
	Description           pgtype.Text
	DescriptionAsSafeHTML pgtype.Text
	Length                int32
	Position              int32
	Hidden                bool
	Settings              []byte
	CreatedAt             pgtype.Timestamptz
	UpdatedAt             pgtype.Timestamptz
}

func (r *eventTypeRow) scanTargets() []any {
	return []any{
		&r.ID, &r.UserID, &r.Slug, &r.Title, &r.EventName, &r.Description,
		&r.DescriptionAsSafeHTML, &r.Length, &r.Position, &r.Hidden, &r.Settings,
		&r.CreatedAt, &r.UpdatedAt,
	}
}

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func userToDomain(u userRow) entities.User {
	return entities.User{
		ID:                  uint(u.ID),
		Username:            u.Username,
		Email:               u.Email,
		Name:                u.Name.String,
		Bio:                 u.Bio.String,
		Avatar:              u.Avatar.String,
		Theme:               u.Theme.String,
		Away:                u.Away,
		Verified:            u.Verified,
		AllowDynamicBooking: u.AllowDynamicBooking,
		Locale:              u.Locale,
		TimeZone:            u.TimeZone,
		BrandColor:          u.BrandColor,
		DarkBrandColor:      u.DarkBrandColor,
		HideBranding:        u.HideBranding,
		CreatedAt:           pgtypeTimestamptzToTime(u.CreatedAt),
		UpdatedAt:           pgtypeTimestamptzToTime(u.UpdatedAt),
	}
}

func eventTypeToDomain(e eventTypeRow) (entities.EventType, error) {
	var settings entities.EventTypeSettings
	if len(e.Settings) > 0 {
		if err := json.Unmarshal(e.Settings, &settings); err != nil {
			return entities.EventType{}, fmt.Errorf("decode settings of event type %d: %w", e.ID, err)
		}
	}
	return entities.EventType{
		ID:                    uint(e.ID),
		UserID:                uint(e.UserID),
		Length:                int(e.Length),
		Slug:                  e.Slug,
		Title:                 e.Title,
		EventName:             e.EventName.String,
		Description:           e.Description.String,
		DescriptionAsSafeHTML: e.DescriptionAsSafeHTML.String,
		Position:              int(e.Position),
		Hidden:                e.Hidden,
		Settings:              settings,
		CreatedAt:             pgtypeTimestamptzToTime(e.CreatedAt),
		UpdatedAt:             pgtypeTimestamptzToTime(e.UpdatedAt),
	}, nil
}
