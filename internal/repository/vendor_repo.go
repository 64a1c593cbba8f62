package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/model"
)

type VendorRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewVendorRepository(db *pgxpool.Pool, logger *zap.Logger) *VendorRepository {
	return &VendorRepository{db: db, logger: logger}
}

func (r *VendorRepository) Insert(ctx context.Context, v *model.Vendor) error {
	query := `
        INSERT INTO vendors (wedding_id, name, category, status,
            contact_email, contact_phone, quote_cents, notes, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		v.WeddingID, v.Name, v.Category, v.Status,
		v.ContactEmail, v.ContactPhone, v.QuoteCents, v.Notes,
	).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to insert vendor",
			zap.Int("wedding_id", v.WeddingID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (r *VendorRepository) ListByWedding(ctx context.Context, weddingID int) ([]model.Vendor, error) {
	query := `
        SELECT id, wedding_id, name, category, status,
               contact_email, contact_phone, quote_cents, notes, created_at
        FROM vendors
        WHERE wedding_id = $1
        ORDER BY category ASC, name ASC
    `
	rows, err := r.db.Query(ctx, query, weddingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vendors := []model.Vendor{}
	for rows.Next() {
		var v model.Vendor
		if err := rows.Scan(
			&v.ID, &v.WeddingID, &v.Name, &v.Category, &v.Status,
			&v.ContactEmail, &v.ContactPhone, &v.QuoteCents, &v.Notes, &v.CreatedAt,
		); err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}
	return vendors, rows.Err()
}

func (r *VendorRepository) Update(ctx context.Context, v *model.Vendor) error {
	query := `
        UPDATE vendors
        SET name = $3, category = $4, status = $5,
            contact_email = $6, contact_phone = $7, quote_cents = $8, notes = $9
        WHERE wedding_id = $1 AND id = $2
    `
	tag, err := r.db.Exec(ctx, query,
		v.WeddingID, v.ID, v.Name, v.Category, v.Status,
		v.ContactEmail, v.ContactPhone, v.QuoteCents, v.Notes,
	)
	if err != nil {
		r.logger.Error("Failed to update vendor", zap.Int("vendor_id", v.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *VendorRepository) Delete(ctx context.Context, weddingID, id int) error {
	query := `DELETE FROM vendors WHERE wedding_id = $1 AND id = $2`
	tag, err := r.db.Exec(ctx, query, weddingID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
