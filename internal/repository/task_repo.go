package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/model"
)

type TaskRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTaskRepository(db *pgxpool.Pool, logger *zap.Logger) *TaskRepository {
	return &TaskRepository{db: db, logger: logger}
}

func (r *TaskRepository) Insert(ctx context.Context, t *model.Task) error {
	query := `
        INSERT INTO tasks (wedding_id, title, status, due_date, notes, created_at)
        VALUES ($1, $2, $3, $4, $5, NOW())
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		t.WeddingID, t.Title, t.Status, t.DueDate, t.Notes,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to insert task",
			zap.Int("wedding_id", t.WeddingID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (r *TaskRepository) ListByWedding(ctx context.Context, weddingID int) ([]model.Task, error) {
	query := `
        SELECT id, wedding_id, title, status, due_date, notes, created_at
        FROM tasks
        WHERE wedding_id = $1
        ORDER BY due_date ASC NULLS LAST, created_at ASC
    `
	rows, err := r.db.Query(ctx, query, weddingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(
			&t.ID, &t.WeddingID, &t.Title, &t.Status, &t.DueDate, &t.Notes, &t.CreatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) Update(ctx context.Context, t *model.Task) error {
	query := `
        UPDATE tasks
        SET title = $3, status = $4, due_date = $5, notes = $6
        WHERE wedding_id = $1 AND id = $2
    `
	tag, err := r.db.Exec(ctx, query,
		t.WeddingID, t.ID, t.Title, t.Status, t.DueDate, t.Notes,
	)
	if err != nil {
		r.logger.Error("Failed to update task", zap.Int("task_id", t.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, weddingID, id int) error {
	query := `DELETE FROM tasks WHERE wedding_id = $1 AND id = $2`
	tag, err := r.db.Exec(ctx, query, weddingID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
