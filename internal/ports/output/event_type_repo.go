package output

import (
	"context"

	"groupbook/internal/domain/entities"
)

type EventTypeRepository interface {
	// FindByUserIDAndSlug returns domain.ErrEventTypeNotFound on a miss.
	FindByUserIDAndSlug(ctx context.Context, userID uint, slug string) (*entities.EventType, error)
	ListByUserID(ctx context.Context, userID uint) ([]entities.EventType, error)
}
