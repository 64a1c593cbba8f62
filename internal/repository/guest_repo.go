package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/model"
)

type GuestRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewGuestRepository(db *pgxpool.Pool, logger *zap.Logger) *GuestRepository {
	return &GuestRepository{db: db, logger: logger}
}

const guestColumns = `id, wedding_id, name, email, phone, address,
        latitude, longitude, rsvp_status, priority, party_size, notes, created_at`

func scanGuest(row pgx.Row) (model.Guest, error) {
	var g model.Guest
	err := row.Scan(
		&g.ID,
		&g.WeddingID,
		&g.Name,
		&g.Email,
		&g.Phone,
		&g.Address,
		&g.Latitude,
		&g.Longitude,
		&g.RSVPStatus,
		&g.Priority,
		&g.PartySize,
		&g.Notes,
		&g.CreatedAt,
	)
	return g, err
}

func (r *GuestRepository) Insert(ctx context.Context, g *model.Guest) error {
	query := `
        INSERT INTO guests (wedding_id, name, email, phone, address,
            rsvp_status, priority, party_size, notes, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		g.WeddingID, g.Name, g.Email, g.Phone, g.Address,
		g.RSVPStatus, g.Priority, g.PartySize, g.Notes,
	).Scan(&g.ID, &g.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to insert guest",
			zap.Int("wedding_id", g.WeddingID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// InsertBatch inserts guests in one round trip with pgx batching and
// returns the assigned IDs in input order.
func (r *GuestRepository) InsertBatch(ctx context.Context, guests []model.Guest) ([]int, error) {
	if len(guests) == 0 {
		return nil, nil
	}

	query := `
        INSERT INTO guests (wedding_id, name, email, phone, address,
            rsvp_status, priority, party_size, notes, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
        RETURNING id
    `
	batch := &pgx.Batch{}
	for _, g := range guests {
		batch.Queue(query,
			g.WeddingID, g.Name, g.Email, g.Phone, g.Address,
			g.RSVPStatus, g.Priority, g.PartySize, g.Notes,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	ids := make([]int, 0, len(guests))
	for i := range guests {
		var id int
		if err := results.QueryRow().Scan(&id); err != nil {
			r.logger.Error("Failed to insert guest batch row",
				zap.Int("row", i),
				zap.Error(err),
			)
			return nil, fmt.Errorf("batch insert row %d: %w", i, err)
		}
		ids = append(ids, id)
	}

	r.logger.Info("Guest batch inserted",
		zap.Int("wedding_id", guests[0].WeddingID),
		zap.Int("count", len(ids)),
	)
	return ids, nil
}

func (r *GuestRepository) ListByWedding(ctx context.Context, weddingID int) ([]model.Guest, error) {
	query := fmt.Sprintf(`
        SELECT %s
        FROM guests
        WHERE wedding_id = $1
        ORDER BY name ASC
    `, guestColumns)

	rows, err := r.db.Query(ctx, query, weddingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	guests := []model.Guest{}
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}
	return guests, rows.Err()
}

func (r *GuestRepository) FindByID(ctx context.Context, weddingID, id int) (*model.Guest, error) {
	query := fmt.Sprintf(`
        SELECT %s
        FROM guests
        WHERE wedding_id = $1 AND id = $2
    `, guestColumns)

	g, err := scanGuest(r.db.QueryRow(ctx, query, weddingID, id))
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GuestRepository) Update(ctx context.Context, g *model.Guest) error {
	query := `
        UPDATE guests
        SET name = $3, email = $4, phone = $5, address = $6,
            rsvp_status = $7, priority = $8, party_size = $9, notes = $10
        WHERE wedding_id = $1 AND id = $2
    `
	tag, err := r.db.Exec(ctx, query,
		g.WeddingID, g.ID, g.Name, g.Email, g.Phone, g.Address,
		g.RSVPStatus, g.Priority, g.PartySize, g.Notes,
	)
	if err != nil {
		r.logger.Error("Failed to update guest", zap.Int("guest_id", g.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// UpdateCoordinates is the worker's write-back after geocoding.
func (r *GuestRepository) UpdateCoordinates(ctx context.Context, guestID int, lat, lng float64) error {
	query := `
        UPDATE guests
        SET latitude = $2, longitude = $3
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query, guestID, lat, lng)
	if err != nil {
		r.logger.Error("Failed to update guest coordinates",
			zap.Int("guest_id", guestID),
			zap.Error(err),
		)
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *GuestRepository) Delete(ctx context.Context, weddingID, id int) error {
	query := `DELETE FROM guests WHERE wedding_id = $1 AND id = $2`
	tag, err := r.db.Exec(ctx, query, weddingID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ListNames supports duplicate detection during CSV import.
func (r *GuestRepository) ListNames(ctx context.Context, weddingID int) ([]string, error) {
	query := `SELECT name FROM guests WHERE wedding_id = $1`
	rows, err := r.db.Query(ctx, query, weddingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// ListLocated returns only guests with geocoded coordinates, for the map.
func (r *GuestRepository) ListLocated(ctx context.Context, weddingID int) ([]model.Guest, error) {
	query := fmt.Sprintf(`
        SELECT %s
        FROM guests
        WHERE wedding_id = $1 AND latitude IS NOT NULL AND longitude IS NOT NULL
        ORDER BY id ASC
    `, guestColumns)

	rows, err := r.db.Query(ctx, query, weddingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	guests := []model.Guest{}
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}
	return guests, rows.Err()
}
