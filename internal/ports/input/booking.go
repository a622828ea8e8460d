package input

import (
	"context"

	"groupbook/internal/domain/entities"
)

type BookingUseCase interface {
	ResolveBookingPage(ctx context.Context, usersSegment, slug string) (*entities.BookingPage, error)
	ListEventTypes(ctx context.Context, usersSegment string) ([]entities.EventType, error)
	ShareLink(ctx context.Context, usernames []string, slug string) (string, error)
	DefaultEventTypes() []entities.EventType
	DefaultEventType(slug string) entities.EventType
}
