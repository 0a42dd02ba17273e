package tasks

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// InMemoryRepository stores tasks in an in-process map, ideal for local
// development or tests.
type InMemoryRepository struct {
	mu    sync.RWMutex
	data  map[uuid.UUID]Task
	order []uuid.UUID
}

// NewInMemoryRepository constructs a repository seeded with optional initial tasks.
func NewInMemoryRepository(initial []Task) *InMemoryRepository {
	data := make(map[uuid.UUID]Task)
	order := make([]uuid.UUID, 0, len(initial))
	for _, task := range initial {
		data[task.ID] = task
		order = append(order, task.ID)
	}
	return &InMemoryRepository{data: data, order: order}
}

// Create stores a new task.
func (r *InMemoryRepository) Create(_ context.Context, task Task) (Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[task.ID] = task
	r.order = append(r.order, task.ID)
	return task, nil
}

// Get returns a task by ID.
func (r *InMemoryRepository) Get(_ context.Context, id uuid.UUID) (Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.data[id]
	if !ok {
		return Task{}, ErrNotFound
	}
	return task, nil
}

// List returns all stored tasks.
func (r *InMemoryRepository) List(_ context.Context) ([]Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]Task, 0, len(r.order))
	for _, id := range r.order {
		if task, ok := r.data[id]; ok {
			list = append(list, task)
		}
	}
	return list, nil
}

// Update replaces an existing task.
func (r *InMemoryRepository) Update(_ context.Context, task Task) (Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[task.ID]; !ok {
		return Task{}, ErrNotFound
	}
	r.data[task.ID] = task
	return task, nil
}

// Delete removes a task by ID.
func (r *InMemoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[id]; !ok {
		return ErrNotFound
	}
	delete(r.data, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
