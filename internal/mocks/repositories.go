package mocks

import (
	"context"
	"fmt"

	"github.com/techblog-api/internal/errs"
	"github.com/techblog-api/internal/models"
	"github.com/techblog-api/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users       map[int64]*models.User
	Order       []int64
	InsertError error
	UpdateError error
	CountError  error
	UpdateCalls int
}

// Verify interface compliance
var _ repository.UserRepository = (*MockUserRepository)(nil)

func NewMockUserRepository(users ...*models.User) *MockUserRepository {
	m := &MockUserRepository{Users: make(map[int64]*models.User)}
	for _, u := range users {
		m.Create(context.Background(), u)
	}
	return m
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	if _, exists := m.Users[user.ID]; exists {
		return fmt.Errorf("user %d: %w", user.ID, errs.ErrConflict)
	}
	u := *user
	m.Users[user.ID] = &u
	m.Order = append(m.Order, user.ID)
	return nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	m.UpdateCalls++
	if m.UpdateError != nil {
		return m.UpdateError
	}
	if _, exists := m.Users[user.ID]; !exists {
		return fmt.Errorf("user %d: %w", user.ID, errs.ErrNotFound)
	}
	u := *user
	m.Users[user.ID] = &u
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := m.Users[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, id := range m.Order {
		if m.Users[id].Username == username {
			c := *m.Users[id]
			return &c, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) List(ctx context.Context) ([]*models.User, error) {
	users := make([]*models.User, 0, len(m.Order))
	for _, id := range m.Order {
		c := *m.Users[id]
		users = append(users, &c)
	}
	return users, nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	if m.CountError != nil {
		return 0, m.CountError
	}
	return len(m.Users), nil
}

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	Articles      []*models.Article
	InsertError   error
	ListError     error
	CreateFunc    func(ctx context.Context, article *models.Article) error
	InsertedCount int
	Comments      map[int64][]models.Comment
}

// Verify interface compliance
var _ repository.ArticleRepository = (*MockArticleRepository)(nil)

func NewMockArticleRepository(articles ...*models.Article) *MockArticleRepository {
	m := &MockArticleRepository{Comments: make(map[int64][]models.Comment)}
	for _, a := range articles {
		m.Articles = append(m.Articles, a.Clone())
	}
	return m
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	if m.CreateFunc != nil {
		if err := m.CreateFunc(ctx, article); err != nil {
			return err
		}
	}
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Articles = append(m.Articles, article.Clone())
	m.InsertedCount++
	return nil
}

func (m *MockArticleRepository) find(id int64) *models.Article {
	for _, a := range m.Articles {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	if a := m.find(id); a != nil {
		return a.Clone(), nil
	}
	return nil, nil
}

func (m *MockArticleRepository) List(ctx context.Context) ([]*models.Article, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	out := make([]*models.Article, len(m.Articles))
	for i, a := range m.Articles {
		out[i] = a.Clone()
	}
	return out, nil
}

func (m *MockArticleRepository) AppendComment(ctx context.Context, articleID int64, comment models.Comment) (*models.Article, error) {
	a := m.find(articleID)
	if a == nil {
		return nil, fmt.Errorf("article %d: %w", articleID, errs.ErrNotFound)
	}
	a.Comments = append(a.Comments, comment)
	m.Comments[articleID] = append(m.Comments[articleID], comment)
	return a.Clone(), nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	return len(m.Articles), nil
}

func (m *MockArticleRepository) StreamAll(ctx context.Context, callback func(*models.Article) error) error {
	for _, a := range m.Articles {
		if err := callback(a.Clone()); err != nil {
			return err
		}
	}
	return nil
}
