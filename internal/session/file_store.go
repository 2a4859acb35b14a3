package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"github.com/techblog-api/internal/models"
)

// record is the single persisted current-user entry
type record struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// FileStore is a MemoryStore that also keeps the most recent current user
// in a JSON file, so a restart does not sign that user out.
type FileStore struct {
	*MemoryStore
	path string
	log  zerolog.Logger

	mu      sync.Mutex
	current *record
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a store persisting to path and restores any record
// already there. A corrupt record is logged and ignored.
func NewFileStore(path string, log zerolog.Logger) *FileStore {
	s := &FileStore{
		MemoryStore: NewMemoryStore(),
		path:        path,
		log:         log.With().Str("component", "session").Logger(),
	}
	if err := s.restore(); err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("Ignoring unreadable session record")
	}
	return s
}

// Current returns the restored or most recently signed-in user
func (s *FileStore) Current() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil || s.current.User == nil {
		return nil
	}
	u := *s.current.User
	return &u
}

// Create opens a session and records its user as current
func (s *FileStore) Create(ctx context.Context, user *models.User) (*Session, error) {
	sess, err := s.MemoryStore.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	if err := s.save(&record{Token: sess.Token, User: sess.User}); err != nil {
		return nil, err
	}
	return sess, nil
}

// Update replaces the session and rewrites the record when it is current
func (s *FileStore) Update(ctx context.Context, sess *Session) error {
	if err := s.MemoryStore.Update(ctx, sess); err != nil {
		return err
	}
	if s.isCurrent(sess.Token) {
		return s.save(&record{Token: sess.Token, User: sess.User})
	}
	return nil
}

// UpdateFunc modifies the session and rewrites the record when it is current
func (s *FileStore) UpdateFunc(ctx context.Context, token string, fn func(*Session) error) (*Session, error) {
	sess, err := s.MemoryStore.UpdateFunc(ctx, token, fn)
	if err != nil {
		return nil, err
	}
	if s.isCurrent(token) {
		if err := s.save(&record{Token: sess.Token, User: sess.User}); err != nil {
			return nil, err
		}
	}
	return sess, nil
}

// Delete ends the session and removes the record when it is current
func (s *FileStore) Delete(ctx context.Context, token string) error {
	if err := s.MemoryStore.Delete(ctx, token); err != nil {
		return err
	}
	if !s.isCurrent(token) {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session record: %w", err)
	}
	return nil
}

func (s *FileStore) isCurrent(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil && s.current.Token == token
}

func (s *FileStore) restore() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read session record: %w", err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("decode session record: %w", err)
	}
	if rec.Token == "" || rec.User == nil {
		return nil
	}

	s.MemoryStore.put(&Session{
		Token:     rec.Token,
		User:      rec.User,
		Liked:     make(map[int64]bool),
		CreatedAt: s.MemoryStore.now(),
	})
	s.current = &rec
	s.log.Info().Str("username", rec.User.Username).Msg("Restored signed-in user")
	return nil
}

// save writes the record through a temp file so a crash never leaves a
// half-written file behind.
func (s *FileStore) save(rec *record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session record: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace session record: %w", err)
	}
	s.current = rec
	return nil
}
