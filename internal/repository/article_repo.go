package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/techblog-api/internal/errs"
	"github.com/techblog-api/internal/models"
)

// articleRepo keeps articles in insertion order. Every read hands out
// clones so callers never share memory with the store.
type articleRepo struct {
	mu       sync.RWMutex
	articles []*models.Article
	byID     map[int64]int
}

// NewArticleRepo creates a new in-memory article repository
func NewArticleRepo() ArticleRepository {
	return &articleRepo{byID: make(map[int64]int)}
}

// Create appends a new article
func (r *articleRepo) Create(ctx context.Context, article *models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[article.ID]; exists {
		return fmt.Errorf("article %d: %w", article.ID, errs.ErrConflict)
	}

	stored := article.Clone()
	if stored.Tags == nil {
		stored.Tags = []string{}
	}
	if stored.Comments == nil {
		stored.Comments = []models.Comment{}
	}
	r.byID[stored.ID] = len(r.articles)
	r.articles = append(r.articles, stored)
	return nil
}

// GetByID retrieves an article by ID, or nil when it does not exist
func (r *articleRepo) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return r.articles[i].Clone(), nil
}

// List returns every article in insertion order
func (r *articleRepo) List(ctx context.Context) ([]*models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Article, len(r.articles))
	for i, a := range r.articles {
		out[i] = a.Clone()
	}
	return out, nil
}

// AppendComment adds a comment to the end of an article's thread
func (r *articleRepo) AppendComment(ctx context.Context, articleID int64, comment models.Comment) (*models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.byID[articleID]
	if !ok {
		return nil, fmt.Errorf("article %d: %w", articleID, errs.ErrNotFound)
	}
	r.articles[i].Comments = append(r.articles[i].Comments, comment.Clone())
	return r.articles[i].Clone(), nil
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.articles), nil
}

// StreamAll walks a snapshot of all articles in insertion order
func (r *articleRepo) StreamAll(ctx context.Context, callback func(*models.Article) error) error {
	articles, err := r.List(ctx)
	if err != nil {
		return err
	}

	for _, article := range articles {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := callback(article); err != nil {
			return err
		}
	}
	return nil
}
