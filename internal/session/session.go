// Package session tracks who is signed in. A Session is passed explicitly
// to every operation that needs a current user; nothing here is global.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/techblog-api/internal/errs"
	"github.com/techblog-api/internal/models"
)

// Session is one signed-in reader
type Session struct {
	Token     string         `json:"token"`
	User      *models.User   `json:"user"`
	Liked     map[int64]bool `json:"-"`
	CreatedAt time.Time      `json:"created_at"`
}

// Authenticated reports whether the session carries a user
func (s *Session) Authenticated() bool {
	return s != nil && s.User != nil
}

// HasLiked reports the local liked flag for an article
func (s *Session) HasLiked(articleID int64) bool {
	return s != nil && s.Liked[articleID]
}

// Clone returns a copy that shares nothing with the original
func (s *Session) Clone() *Session {
	c := *s
	if s.User != nil {
		u := *s.User
		c.User = &u
	}
	c.Liked = make(map[int64]bool, len(s.Liked))
	for k, v := range s.Liked {
		c.Liked[k] = v
	}
	return &c
}

// Store keeps sessions by token
type Store interface {
	Create(ctx context.Context, user *models.User) (*Session, error)
	Get(ctx context.Context, token string) (*Session, error)
	Update(ctx context.Context, sess *Session) error
	// UpdateFunc applies fn to the stored session under the store's lock and
	// returns the result, so concurrent read-modify-write cycles on one token
	// never lose a change.
	UpdateFunc(ctx context.Context, token string, fn func(*Session) error) (*Session, error)
	Delete(ctx context.Context, token string) error
}

// MemoryStore keeps sessions in process memory
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Create opens a new session for user under a random token
func (m *MemoryStore) Create(ctx context.Context, user *models.User) (*Session, error) {
	if user == nil {
		return nil, fmt.Errorf("create session: %w", errs.ErrInvalidInput)
	}
	u := *user
	sess := &Session{
		Token:     uuid.New().String(),
		User:      &u,
		Liked:     make(map[int64]bool),
		CreatedAt: m.now(),
	}
	m.put(sess)
	return sess.Clone(), nil
}

// Get returns the session for token, or nil when there is none
func (m *MemoryStore) Get(ctx context.Context, token string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, ok := m.sessions[token]
	if !ok {
		return nil, nil
	}
	return sess.Clone(), nil
}

// Update replaces a stored session
func (m *MemoryStore) Update(ctx context.Context, sess *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[sess.Token]; !ok {
		return fmt.Errorf("session: %w", errs.ErrNotFound)
	}
	m.sessions[sess.Token] = sess.Clone()
	return nil
}

// UpdateFunc applies fn to a copy of the stored session and saves it when
// fn succeeds
func (m *MemoryStore) UpdateFunc(ctx context.Context, token string, fn func(*Session) error) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.sessions[token]
	if !ok {
		return nil, fmt.Errorf("session: %w", errs.ErrNotFound)
	}
	next := stored.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	m.sessions[token] = next
	return next.Clone(), nil
}

// Delete ends a session; unknown tokens are ignored
func (m *MemoryStore) Delete(ctx context.Context, token string) error {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) put(sess *Session) {
	m.mu.Lock()
	m.sessions[sess.Token] = sess.Clone()
	m.mu.Unlock()
}
