package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/techblog-api/internal/errs"
	"github.com/techblog-api/internal/models"
)

// userRepo is the in-memory implementation of UserRepository
type userRepo struct {
	mu         sync.RWMutex
	users      []*models.User
	byID       map[int64]int
	byUsername map[string]int
}

// NewUserRepo creates a new in-memory user repository
func NewUserRepo() UserRepository {
	return &userRepo{
		byID:       make(map[int64]int),
		byUsername: make(map[string]int),
	}
}

// Create inserts a new user
func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[user.ID]; exists {
		return fmt.Errorf("user %d: %w", user.ID, errs.ErrConflict)
	}
	if _, exists := r.byUsername[user.Username]; exists {
		return fmt.Errorf("username %q: %w", user.Username, errs.ErrConflict)
	}

	stored := *user
	r.byID[stored.ID] = len(r.users)
	r.byUsername[stored.Username] = len(r.users)
	r.users = append(r.users, &stored)
	return nil
}

// Update replaces the profile of an existing user. The username is fixed.
func (r *userRepo) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.byID[user.ID]
	if !ok {
		return fmt.Errorf("user %d: %w", user.ID, errs.ErrNotFound)
	}
	stored := *user
	stored.Username = r.users[i].Username
	r.users[i] = &stored
	return nil
}

// GetByID retrieves a user by ID, or nil when it does not exist
func (r *userRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	u := *r.users[i]
	return &u, nil
}

// GetByUsername retrieves a user by username, or nil when it does not exist
func (r *userRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byUsername[username]
	if !ok {
		return nil, nil
	}
	u := *r.users[i]
	return &u, nil
}

// List returns all users in insertion order
func (r *userRepo) List(ctx context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.User, len(r.users))
	for i, u := range r.users {
		c := *u
		out[i] = &c
	}
	return out, nil
}

// Count returns the total number of users
func (r *userRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}
