package tasks

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service implements task business logic on top of a Repository.
type Service struct {
	repo Repository
}

// NewService creates a task Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and persists a new task. Completed defaults to false
// unless the caller supplied it.
func (s *Service) Create(ctx context.Context, input CreateTaskInput) (Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return Task{}, validationErr("title is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return Task{}, validationErr("description is required")
	}

	task := Task{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
		CreatedAt:   time.Now().UTC(),
	}

	return s.repo.Create(ctx, task)
}

// List returns all tasks ordered by creation time descending.
func (s *Service) List(ctx context.Context) ([]Task, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(list, compareTasksByCreatedDesc)
	return list, nil
}

// Get retrieves a task by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Task, error) {
	return s.repo.Get(ctx, id)
}

// Update applies a partial merge: only non-nil input fields overwrite the
// stored task. ID and CreatedAt never change.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateTaskInput) (Task, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return Task{}, err
	}

	if input.Title != nil {
		existing.Title = *input.Title
	}
	if input.Description != nil {
		existing.Description = *input.Description
	}
	if input.Completed != nil {
		existing.Completed = *input.Completed
	}

	return s.repo.Update(ctx, existing)
}

// Delete removes a task by ID.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func validationErr(msg string) error {
	return &ValidationError{Message: msg}
}

func compareTasksByCreatedDesc(a, b Task) int {
	if a.CreatedAt.Equal(b.CreatedAt) {
		return strings.Compare(a.Title, b.Title)
	}
	if a.CreatedAt.After(b.CreatedAt) {
		return -1
	}
	return 1
}
