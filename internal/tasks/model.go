package tasks

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a task cannot be located.
var ErrNotFound = errors.New("task not found")

// ErrValidation is returned when input validation fails.
var ErrValidation = errors.New("validation error")

// ValidationError wraps a validation message so callers can distinguish
// client errors from internal failures.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Task is a single entry on the shared task list.
type Task struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Completed   bool      `db:"completed" json:"completed"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// CreateTaskInput captures the data needed to create a new Task.
type CreateTaskInput struct {
	Title       string
	Description string
	Completed   bool
}

// UpdateTaskInput captures the editable fields for an existing task. A nil
// field means "leave the stored value untouched"; a non-nil field is applied
// as given, so presence rather than truthiness decides what changes.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Completed   *bool
}

// Repository defines persistence operations for Tasks.
type Repository interface {
	Create(ctx context.Context, task Task) (Task, error)
	Get(ctx context.Context, id uuid.UUID) (Task, error)
	List(ctx context.Context) ([]Task, error)
	Update(ctx context.Context, task Task) (Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
