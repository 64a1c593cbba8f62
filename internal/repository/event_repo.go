package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/model"
)

type EventRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewEventRepository(db *pgxpool.Pool, logger *zap.Logger) *EventRepository {
	return &EventRepository{db: db, logger: logger}
}

func (r *EventRepository) Insert(ctx context.Context, e *model.Event) error {
	query := `
        INSERT INTO events (wedding_id, name, event_type, starts_at, location, notes, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW())
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		e.WeddingID, e.Name, e.EventType, e.StartsAt, e.Location, e.Notes,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to insert event",
			zap.Int("wedding_id", e.WeddingID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (r *EventRepository) ListByWedding(ctx context.Context, weddingID int) ([]model.Event, error) {
	query := `
        SELECT id, wedding_id, name, event_type, starts_at, location, notes, created_at
        FROM events
        WHERE wedding_id = $1
        ORDER BY starts_at ASC NULLS LAST, created_at ASC
    `
	rows, err := r.db.Query(ctx, query, weddingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []model.Event{}
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(
			&e.ID, &e.WeddingID, &e.Name, &e.EventType, &e.StartsAt, &e.Location, &e.Notes, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *EventRepository) Update(ctx context.Context, e *model.Event) error {
	query := `
        UPDATE events
        SET name = $3, event_type = $4, starts_at = $5, location = $6, notes = $7
        WHERE wedding_id = $1 AND id = $2
    `
	tag, err := r.db.Exec(ctx, query,
		e.WeddingID, e.ID, e.Name, e.EventType, e.StartsAt, e.Location, e.Notes,
	)
	if err != nil {
		r.logger.Error("Failed to update event", zap.Int("event_id", e.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, weddingID, id int) error {
	query := `DELETE FROM events WHERE wedding_id = $1 AND id = $2`
	tag, err := r.db.Exec(ctx, query, weddingID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
