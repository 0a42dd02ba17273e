package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestInMemoryRepositoryUserLifecycle(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	missing, err := repo.FindUserByEmail(ctx, "nobody@example.com")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown email, got %+v", missing)
	}

	user := User{ID: uuid.New(), Email: "user@example.com", Name: "User"}
	if _, err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	found, err := repo.FindUserByEmail(ctx, "User@Example.com")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found == nil || found.ID != user.ID {
		t.Fatalf("expected case-insensitive email lookup, got %+v", found)
	}
}

func TestInMemoryRepositorySessionLifecycle(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	user := User{ID: uuid.New(), Email: "user@example.com"}
	_, _ = repo.CreateUser(ctx, user)

	session := Session{ID: uuid.New(), UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)}
	if err := repo.CreateSession(ctx, session, "hash-1"); err != nil {
		t.Fatalf("create session failed: %v", err)
	}

	foundSession, foundUser, err := repo.FindSessionByTokenHash(ctx, "hash-1")
	if err != nil {
		t.Fatalf("find session failed: %v", err)
	}
	if foundSession == nil || foundSession.ID != session.ID {
		t.Fatalf("expected session to be found, got %+v", foundSession)
	}
	if foundUser == nil || foundUser.ID != user.ID {
		t.Fatalf("expected joined user, got %+v", foundUser)
	}

	if err := repo.DeleteSession(ctx, session.ID); err != nil {
		t.Fatalf("delete session failed: %v", err)
	}
	foundSession, _, _ = repo.FindSessionByTokenHash(ctx, "hash-1")
	if foundSession != nil {
		t.Fatal("expected session to be gone after delete")
	}
}

func TestInMemoryRepositoryDeleteExpiredSessions(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	user := User{ID: uuid.New(), Email: "user@example.com"}
	_, _ = repo.CreateUser(ctx, user)

	expired := Session{ID: uuid.New(), UserID: user.ID, ExpiresAt: time.Now().Add(-time.Minute)}
	live := Session{ID: uuid.New(), UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)}
	_ = repo.CreateSession(ctx, expired, "hash-expired")
	_ = repo.CreateSession(ctx, live, "hash-live")

	removed, err := repo.DeleteExpiredSessions(ctx)
	if err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected one expired session removed, got %d", removed)
	}

	if session, _, _ := repo.FindSessionByTokenHash(ctx, "hash-live"); session == nil {
		t.Fatal("expected live session to survive cleanup")
	}
}
