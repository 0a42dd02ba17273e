package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memorySession struct {
	session   Session
	tokenHash string
}

// InMemoryRepository keeps users and sessions in process memory. It backs
// the memory data store mode and tests; nothing survives a restart.
type InMemoryRepository struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]User
	sessions map[uuid.UUID]memorySession
}

// NewInMemoryRepository constructs an empty in-memory auth store.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		users:    make(map[uuid.UUID]User),
		sessions: make(map[uuid.UUID]memorySession),
	}
}

// FindUserByEmail returns the user with the given email, or nil.
func (r *InMemoryRepository) FindUserByEmail(_ context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			copied := user
			return &copied, nil
		}
	}
	return nil, nil
}

// CreateUser stores a new user.
func (r *InMemoryRepository) CreateUser(_ context.Context, user User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.ID] = user
	return user, nil
}

// TouchUserLogin refreshes the user's last login time.
func (r *InMemoryRepository) TouchUserLogin(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil
	}
	user.LastLoginAt = time.Now()
	r.users[id] = user
	return nil
}

// CreateSession stores a new session keyed by its token hash.
func (r *InMemoryRepository) CreateSession(_ context.Context, session Session, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.ID] = memorySession{session: session, tokenHash: tokenHash}
	return nil
}

// FindSessionByTokenHash returns the session and its user, or nils.
func (r *InMemoryRepository) FindSessionByTokenHash(_ context.Context, tokenHash string) (*Session, *User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, stored := range r.sessions {
		if stored.tokenHash != tokenHash {
			continue
		}
		user, ok := r.users[stored.session.UserID]
		if !ok {
			return nil, nil, nil
		}
		sessionCopy := stored.session
		userCopy := user
		return &sessionCopy, &userCopy, nil
	}
	return nil, nil, nil
}

// DeleteSession removes a session by ID.
func (r *InMemoryRepository) DeleteSession(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return nil
}

// DeleteExpiredSessions removes all sessions past their expiry.
func (r *InMemoryRepository) DeleteExpiredSessions(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	var removed int64
	for id, stored := range r.sessions {
		if now.After(stored.session.ExpiresAt) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}
