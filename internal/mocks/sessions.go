package mocks

import (
	"context"
	"sync"

	"github.com/techblog-api/internal/models"
	"github.com/techblog-api/internal/session"
)

// MockSessionStore wraps a MemoryStore and lets tests inject failures
type MockSessionStore struct {
	*session.MemoryStore
	CreateError error
	UpdateError error
	DeleteError error
	Updated     []*session.Session
	Deleted     []string

	mu sync.Mutex
}

// Verify interface compliance
var _ session.Store = (*MockSessionStore)(nil)

func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{MemoryStore: session.NewMemoryStore()}
}

func (m *MockSessionStore) Create(ctx context.Context, user *models.User) (*session.Session, error) {
	if m.CreateError != nil {
		return nil, m.CreateError
	}
	return m.MemoryStore.Create(ctx, user)
}

func (m *MockSessionStore) Update(ctx context.Context, sess *session.Session) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.record(sess)
	return m.MemoryStore.Update(ctx, sess)
}

func (m *MockSessionStore) UpdateFunc(ctx context.Context, token string, fn func(*session.Session) error) (*session.Session, error) {
	if m.UpdateError != nil {
		return nil, m.UpdateError
	}
	sess, err := m.MemoryStore.UpdateFunc(ctx, token, fn)
	if err != nil {
		return nil, err
	}
	m.record(sess)
	return sess, nil
}

func (m *MockSessionStore) Delete(ctx context.Context, token string) error {
	if m.DeleteError != nil {
		return m.DeleteError
	}
	m.mu.Lock()
	m.Deleted = append(m.Deleted, token)
	m.mu.Unlock()
	return m.MemoryStore.Delete(ctx, token)
}

func (m *MockSessionStore) record(sess *session.Session) {
	m.mu.Lock()
	m.Updated = append(m.Updated, sess.Clone())
	m.mu.Unlock()
}
