package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/model"
)

type WeddingRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewWeddingRepository(db *pgxpool.Pool, logger *zap.Logger) *WeddingRepository {
	return &WeddingRepository{db: db, logger: logger}
}

// Create inserts the wedding and its owner membership in one transaction.
func (r *WeddingRepository) Create(ctx context.Context, w *model.Wedding, ownerUserID int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO weddings (name, wedding_date, venue_name, created_at)
        VALUES ($1, $2, $3, NOW())
        RETURNING id, created_at
    `
	if err := tx.QueryRow(ctx, query, w.Name, w.WeddingDate, w.VenueName).
		Scan(&w.ID, &w.CreatedAt); err != nil {
		r.logger.Error("Failed to insert wedding", zap.Error(err))
		return err
	}

	memberQuery := `
        INSERT INTO wedding_members (wedding_id, user_id, role, created_at)
        VALUES ($1, $2, $3, NOW())
    `
	if _, err := tx.Exec(ctx, memberQuery, w.ID, ownerUserID, "owner"); err != nil {
		r.logger.Error("Failed to insert owner membership",
			zap.Int("wedding_id", w.ID),
			zap.Error(err),
		)
		return err
	}

	return tx.Commit(ctx)
}

func (r *WeddingRepository) FindByID(ctx context.Context, id int) (*model.Wedding, error) {
	query := `
        SELECT id, name, wedding_date, venue_name, created_at
        FROM weddings
        WHERE id = $1
    `
	var w model.Wedding
	var venueName *string
	err := r.db.QueryRow(ctx, query, id).
		Scan(&w.ID, &w.Name, &w.WeddingDate, &venueName, &w.CreatedAt)
	if err != nil {
		return nil, err
	}
	if venueName != nil {
		w.VenueName = *venueName
	}
	return &w, nil
}

func (r *WeddingRepository) Update(ctx context.Context, id int, name string, weddingDate *time.Time, venueName string) error {
	query := `
        UPDATE weddings
        SET name = $2, wedding_date = $3, venue_name = $4
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id, name, weddingDate, venueName)
	if err != nil {
		r.logger.Error("Failed to update wedding", zap.Int("wedding_id", id), zap.Error(err))
	}
	return err
}

func (r *WeddingRepository) ListByUser(ctx context.Context, userID int) ([]model.Wedding, error) {
	query := `
        SELECT w.id, w.name, w.wedding_date, w.venue_name, w.created_at
        FROM weddings w
        JOIN wedding_members m ON m.wedding_id = w.id
        WHERE m.user_id = $1
        ORDER BY w.created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	weddings := []model.Wedding{}
	for rows.Next() {
		var w model.Wedding
		var venueName *string
		if err := rows.Scan(&w.ID, &w.Name, &w.WeddingDate, &venueName, &w.CreatedAt); err != nil {
			return nil, err
		}
		if venueName != nil {
			w.VenueName = *venueName
		}
		weddings = append(weddings, w)
	}
	return weddings, rows.Err()
}

// MemberRole returns the caller's role on a wedding, or pgx.ErrNoRows when
// the user is not a member. This is the authorization lookup behind every
// tenant-scoped route.
func (r *WeddingRepository) MemberRole(ctx context.Context, weddingID, userID int) (string, error) {
	query := `
        SELECT role
        FROM wedding_members
        WHERE wedding_id = $1 AND user_id = $2
    `
	var role string
	err := r.db.QueryRow(ctx, query, weddingID, userID).Scan(&role)
	if err != nil {
		return "", err
	}
	return role, nil
}

func (r *WeddingRepository) AddMember(ctx context.Context, m *model.WeddingMember) error {
	query := `
        INSERT INTO wedding_members (wedding_id, user_id, role, created_at)
        VALUES ($1, $2, $3, NOW())
        ON CONFLICT (wedding_id, user_id) DO UPDATE SET role = EXCLUDED.role
    `
	_, err := r.db.Exec(ctx, query, m.WeddingID, m.UserID, m.Role)
	if err != nil {
		r.logger.Error("Failed to add wedding member",
			zap.Int("wedding_id", m.WeddingID),
			zap.Int("user_id", m.UserID),
			zap.Error(err),
		)
	}
	return err
}

func (r *WeddingRepository) ListMembers(ctx context.Context, weddingID int) ([]model.WeddingMember, error) {
	query := `
        SELECT wedding_id, user_id, role, created_at
        FROM wedding_members
        WHERE wedding_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, weddingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []model.WeddingMember{}
	for rows.Next() {
		var m model.WeddingMember
		if err := rows.Scan(&m.WeddingID, &m.UserID, &m.Role, &m.CreatedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// IsNotFound reports whether err is the no-rows sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
