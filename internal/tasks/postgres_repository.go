package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// PostgresRepository persists tasks to a Postgres database.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository constructs a repository backed by sqlx.
func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const baseSelect = `SELECT id, title, description, completed, created_at FROM tasks`

// Create inserts a new row and returns the stored representation.
func (r *PostgresRepository) Create(ctx context.Context, task Task) (Task, error) {
	const insert = `
		INSERT INTO tasks (id, title, description, completed, created_at)
		VALUES (:id, :title, :description, :completed, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, insert, task); err != nil {
		return Task{}, fmt.Errorf("insert task: %w", err)
	}

	return r.Get(ctx, task.ID)
}

// Get retrieves a row by primary key.
func (r *PostgresRepository) Get(ctx context.Context, id uuid.UUID) (Task, error) {
	var task Task
	if err := r.db.GetContext(ctx, &task, baseSelect+" WHERE id = $1", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Task{}, ErrNotFound
		}
		return Task{}, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

// List returns all tasks ordered by creation timestamp descending.
func (r *PostgresRepository) List(ctx context.Context) ([]Task, error) {
	list := []Task{}
	if err := r.db.SelectContext(ctx, &list, baseSelect+" ORDER BY created_at DESC, title ASC"); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return list, nil
}

// Update rewrites the mutable columns of an existing row.
func (r *PostgresRepository) Update(ctx context.Context, task Task) (Task, error) {
	const update = `
		UPDATE tasks
		SET title = :title, description = :description, completed = :completed
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, update, task)
	if err != nil {
		return Task{}, fmt.Errorf("update task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return Task{}, fmt.Errorf("update task: %w", err)
	}
	if affected == 0 {
		return Task{}, ErrNotFound
	}

	return r.Get(ctx, task.ID)
}

// Delete removes a row by primary key.
func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
