package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"groupbook/internal/domain"
	"groupbook/internal/domain/entities"
	"groupbook/internal/ports/output"
)

const eventTypeColumns = `id, user_id, slug, title, event_name, description,
	description_as_safe_html, length, position, hidden, settings, created_at, updated_at`

var _ output.EventTypeRepository = (*EventTypeRepository)(nil)

type EventTypeRepository struct {
	db DBTX
}

func NewEventTypeRepository(db DBTX) *EventTypeRepository {
	return &EventTypeRepository{db: db}
}

func (r *EventTypeRepository) FindByUserIDAndSlug(ctx context.Context, userID uint, slug string) (*entities.EventType, error) {
	var row eventTypeRow
	err := r.db.QueryRow(ctx,
		`SELECT `+eventTypeColumns+` FROM event_types WHERE user_id = $1 AND slug = $2`,
		int64(userID), slug,
	).Scan(row.scanTargets()...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get event type %q: %w", slug, domain.ErrEventTypeNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get event type by user id and slug: %w", err)
	}
	e, err := eventTypeToDomain(row)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventTypeRepository) ListByUserID(ctx context.Context, userID uint) ([]entities.EventType, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+eventTypeColumns+` FROM event_types WHERE user_id = $1 ORDER BY position, id`,
		int64(userID),
	)
	if err != nil {
		return nil, fmt.Errorf("list event types: %w", err)
	}
	defer rows.Close()

	var out []entities.EventType
	for rows.Next() {
		var row eventTypeRow
		if err := rows.Scan(row.scanTargets()...); err != nil {
			return nil, fmt.Errorf("scan event type: %w", err)
		}
		e, err := eventTypeToDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list event types: %w", err)
	}
	return out, nil
}
