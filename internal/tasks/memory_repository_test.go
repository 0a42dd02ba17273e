package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestTask(title string) Task {
	return Task{
		ID:          uuid.New(),
		Title:       title,
		Description: "test fixture",
		CreatedAt:   time.Now().UTC(),
	}
}

func TestInMemoryRepositoryCreateAndGet(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	task := newTestTask("Buy milk")

	stored, err := repo.Create(context.Background(), task)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if stored.ID != task.ID {
		t.Fatalf("expected stored id %s, got %s", task.ID, stored.ID)
	}

	got, err := repo.Get(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Title != task.Title {
		t.Fatalf("expected title %q, got %q", task.Title, got.Title)
	}
}

func TestInMemoryRepositoryGetMissing(t *testing.T) {
	repo := NewInMemoryRepository(nil)

	_, err := repo.Get(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestInMemoryRepositoryListIncludesSeeded(t *testing.T) {
	seeded := []Task{newTestTask("one"), newTestTask("two")}
	repo := NewInMemoryRepository(seeded)

	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected two tasks, got %d", len(list))
	}
}

func TestInMemoryRepositoryUpdateMissing(t *testing.T) {
	repo := NewInMemoryRepository(nil)

	_, err := repo.Update(context.Background(), newTestTask("ghost"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestInMemoryRepositoryDelete(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	task := newTestTask("transient")
	_, _ = repo.Create(context.Background(), task)

	if err := repo.Delete(context.Background(), task.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := repo.Delete(context.Background(), task.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found on repeat delete, got %v", err)
	}

	list, _ := repo.List(context.Background())
	if len(list) != 0 {
		t.Fatalf("expected empty list after delete, got %d", len(list))
	}
}
