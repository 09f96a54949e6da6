package testutil

import (
	"context"
	"sync"
	"time"

	"classroom-dashboard/models"
	"classroom-dashboard/store"

	"github.com/google/uuid"
)

// MemUserStore is an in-memory store.UserStore used by tests.
type MemUserStore struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func NewMemUserStore() *MemUserStore {
	return &MemUserStore{users: make(map[string]*models.User)}
}

// Add seeds a user record directly.
func (s *MemUserStore) Add(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = &u
}

// Delete removes a user, for orphaned-session tests.
func (s *MemUserStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

func (s *MemUserStore) UpsertByEmail(ctx context.Context, email, name, picture string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	user := &models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		Picture:   picture,
		Role:      models.RoleStudent,
		CreatedAt: time.Now().UTC(),
	}
	s.users[user.ID] = user
	out := *user
	return &out, nil
}

func (s *MemUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	out := *u
	return &out, nil
}

func (s *MemUserStore) List(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var list []models.User
	for _, u := range s.users {
		list = append(list, *u)
	}
	return list, nil
}

func (s *MemUserStore) UpdateRole(ctx context.Context, userID, role string) error {
	if !models.ValidRole(role) {
		return store.ErrInvalidRole
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return store.ErrNotFound
	}
	u.Role = role
	return nil
}

// MemSessionStore is an in-memory store.SessionStore with the same lazy
// expiry semantics as the Mongo implementation. Now is swappable so tests
// can move the clock.
type MemSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
	Now      func() time.Time
}

func NewMemSessionStore() *MemSessionStore {
	return &MemSessionStore{
		sessions: make(map[string]*models.Session),
		Now:      func() time.Time { return time.Now().UTC() },
	}
}

// Len reports how many session records are stored, expired ones included.
func (s *MemSessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *MemSessionStore) Create(ctx context.Context, userID, token string, ttl time.Duration) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.Now()
	session := &models.Session{
		ID:           uuid.NewString(),
		UserID:       userID,
		SessionToken: token,
		ExpiresAt:    now.Add(ttl),
		CreatedAt:    now,
	}
	s.sessions[token] = session
	out := *session
	return &out, nil
}

func (s *MemSessionStore) Resolve(ctx context.Context, token string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	if !ok || session.Expired(s.Now()) {
		return nil, nil
	}
	out := *session
	return &out, nil
}

func (s *MemSessionStore) Revoke(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

func (s *MemSessionStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var deleted int64
	for token, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, token)
			deleted++
		}
	}
	return deleted, nil
}
