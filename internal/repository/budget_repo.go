package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/model"
)

type BudgetRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewBudgetRepository(db *pgxpool.Pool, logger *zap.Logger) *BudgetRepository {
	return &BudgetRepository{db: db, logger: logger}
}

func (r *BudgetRepository) Insert(ctx context.Context, b *model.BudgetItem) error {
	query := `
        INSERT INTO budget_items (wedding_id, category, name, vendor_id,
            estimated_cents, actual_cents, paid, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		b.WeddingID, b.Category, b.Name, b.VendorID,
		b.EstimatedCents, b.ActualCents, b.Paid,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to insert budget item",
			zap.Int("wedding_id", b.WeddingID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (r *BudgetRepository) ListByWedding(ctx context.Context, weddingID int) ([]model.BudgetItem, error) {
	query := `
        SELECT id, wedding_id, category, name, vendor_id,
               estimated_cents, actual_cents, paid, created_at
        FROM budget_items
        WHERE wedding_id = $1
        ORDER BY category ASC, created_at ASC
    `
	rows, err := r.db.Query(ctx, query, weddingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.BudgetItem{}
	for rows.Next() {
		var b model.BudgetItem
		if err := rows.Scan(
			&b.ID, &b.WeddingID, &b.Category, &b.Name, &b.VendorID,
			&b.EstimatedCents, &b.ActualCents, &b.Paid, &b.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

func (r *BudgetRepository) Update(ctx context.Context, b *model.BudgetItem) error {
	query := `
        UPDATE budget_items
        SET category = $3, name = $4, vendor_id = $5,
            estimated_cents = $6, actual_cents = $7, paid = $8
        WHERE wedding_id = $1 AND id = $2
    `
	tag, err := r.db.Exec(ctx, query,
		b.WeddingID, b.ID, b.Category, b.Name, b.VendorID,
		b.EstimatedCents, b.ActualCents, b.Paid,
	)
	if err != nil {
		r.logger.Error("Failed to update budget item", zap.Int("item_id", b.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *BudgetRepository) Delete(ctx context.Context, weddingID, id int) error {
	query := `DELETE FROM budget_items WHERE wedding_id = $1 AND id = $2`
	tag, err := r.db.Exec(ctx, query, weddingID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Summary aggregates per-category totals in the database.
func (r *BudgetRepository) Summary(ctx context.Context, weddingID int) (*model.BudgetSummary, error) {
	query := `
        SELECT category,
               COALESCE(SUM(estimated_cents), 0),
               COALESCE(SUM(actual_cents), 0),
               COALESCE(SUM(actual_cents) FILTER (WHERE paid), 0)
        FROM budget_items
        WHERE wedding_id = $1
        GROUP BY category
        ORDER BY category ASC
    `
	rows, err := r.db.Query(ctx, query, weddingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := &model.BudgetSummary{Categories: []model.BudgetCategoryTotal{}}
	for rows.Next() {
		var c model.BudgetCategoryTotal
		if err := rows.Scan(&c.Category, &c.EstimatedCents, &c.ActualCents, &c.PaidCents); err != nil {
			return nil, err
		}
		summary.Categories = append(summary.Categories, c)
		summary.EstimatedCents += c.EstimatedCents
		summary.ActualCents += c.ActualCents
		summary.PaidCents += c.PaidCents
	}
	return summary, rows.Err()
}
