package mocks

import (
	"context"
	"io"
	"net/http"

	"github.com/techblog-api/internal/errs"
	"github.com/techblog-api/internal/models"
	"github.com/techblog-api/internal/service"
	"github.com/techblog-api/internal/session"
)

// MockArticleService is a mock implementation of ArticleService
type MockArticleService struct {
	ListFunc       func(ctx context.Context, category string) (models.Listing, error)
	SearchFunc     func(ctx context.Context, query string) (models.SearchResult, error)
	CategoriesFunc func(ctx context.Context) ([]models.Category, error)
	GetFunc        func(ctx context.Context, id int64) (*models.Article, error)
	RenderFunc     func(ctx context.Context, id int64) (*models.RenderedArticle, error)
	PreviewFunc    func(ctx context.Context, content string) string
	CreateFunc     func(ctx context.Context, sess *session.Session, draft *models.ArticleDraft) (*models.Article, error)
	CommentFunc    func(ctx context.Context, sess *session.Session, articleID int64, text string) (*models.Comment, error)
	ToggleLikeFunc func(ctx context.Context, sess *session.Session, articleID int64) (*models.LikeState, error)
	Created        []*models.ArticleDraft
}

// Verify interface compliance
var _ service.ArticleService = (*MockArticleService)(nil)

func NewMockArticleService() *MockArticleService {
	return &MockArticleService{}
}

func (m *MockArticleService) List(ctx context.Context, category string) (models.Listing, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, category)
	}
	return models.Listing{Category: category, Filtered: category != "", Articles: []*models.Article{}}, nil
}

func (m *MockArticleService) Search(ctx context.Context, query string) (models.SearchResult, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return models.SearchResult{Query: query, Articles: []*models.Article{}}, nil
}

func (m *MockArticleService) Categories(ctx context.Context) ([]models.Category, error) {
	if m.CategoriesFunc != nil {
		return m.CategoriesFunc(ctx)
	}
	return []models.Category{}, nil
}

func (m *MockArticleService) Get(ctx context.Context, id int64) (*models.Article, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, errs.ErrNotFound
}

func (m *MockArticleService) Render(ctx context.Context, id int64) (*models.RenderedArticle, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(ctx, id)
	}
	return nil, errs.ErrNotFound
}

func (m *MockArticleService) Preview(ctx context.Context, content string) string {
	if m.PreviewFunc != nil {
		return m.PreviewFunc(ctx, content)
	}
	return "<p>" + content + "</p>"
}

func (m *MockArticleService) Create(ctx context.Context, sess *session.Session, draft *models.ArticleDraft) (*models.Article, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sess, draft)
	}
	m.Created = append(m.Created, draft)
	return &models.Article{ID: 1, Title: draft.Title, Status: models.StatusDraft}, nil
}

func (m *MockArticleService) AddComment(ctx context.Context, sess *session.Session, articleID int64, text string) (*models.Comment, error) {
	if m.CommentFunc != nil {
		return m.CommentFunc(ctx, sess, articleID, text)
	}
	return &models.Comment{ID: 1, Author: sess.User.Name, Content: text}, nil
}

func (m *MockArticleService) ToggleLike(ctx context.Context, sess *session.Session, articleID int64) (*models.LikeState, error) {
	if m.ToggleLikeFunc != nil {
		return m.ToggleLikeFunc(ctx, sess, articleID)
	}
	return &models.LikeState{ArticleID: articleID, Liked: true, Likes: 1}, nil
}

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	LoginFunc         func(ctx context.Context, username, password string) (*session.Session, error)
	LogoutFunc        func(ctx context.Context, sess *session.Session) error
	UpdateProfileFunc func(ctx context.Context, sess *session.Session, update *models.ProfileUpdate) (*models.User, error)
	LoggedOut         []string
}

// Verify interface compliance
var _ service.AuthService = (*MockAuthService)(nil)

func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*session.Session, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}
	return nil, errs.ErrInvalidCredentials
}

func (m *MockAuthService) Logout(ctx context.Context, sess *session.Session) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, sess)
	}
	if sess != nil {
		m.LoggedOut = append(m.LoggedOut, sess.Token)
	}
	return nil
}

func (m *MockAuthService) Current(ctx context.Context, sess *session.Session) (*models.User, error) {
	if !sess.Authenticated() {
		return nil, errs.ErrUnauthorized
	}
	u := *sess.User
	return &u, nil
}

func (m *MockAuthService) UpdateProfile(ctx context.Context, sess *session.Session, update *models.ProfileUpdate) (*models.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, sess, update)
	}
	u := update.Apply(*sess.User)
	return &u, nil
}

// MockDashboardService is a mock implementation of DashboardService
type MockDashboardService struct {
	StatsFunc          func(ctx context.Context, sess *session.Session) (*models.DashboardStats, error)
	StreamArticlesFunc func(ctx context.Context, w http.ResponseWriter, format string) error
	Counts             map[string]int
}

// Verify interface compliance
var _ service.DashboardService = (*MockDashboardService)(nil)

func NewMockDashboardService() *MockDashboardService {
	return &MockDashboardService{
		Counts: map[string]int{
			"users":    3,
			"articles": 8,
			"comments": 11,
		},
	}
}

func (m *MockDashboardService) Stats(ctx context.Context, sess *session.Session) (*models.DashboardStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx, sess)
	}
	return &models.DashboardStats{}, nil
}

func (m *MockDashboardService) StreamArticles(ctx context.Context, w http.ResponseWriter, format string) error {
	if m.StreamArticlesFunc != nil {
		return m.StreamArticlesFunc(ctx, w, format)
	}
	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Write([]byte("{\"id\":1}\n"))
	return nil
}

func (m *MockDashboardService) GetCount(ctx context.Context, resource string) (int, error) {
	return m.Counts[resource], nil
}

// MockImportService is a mock implementation of ImportService
type MockImportService struct {
	ImportFunc func(ctx context.Context, sess *session.Session, r io.Reader) (*models.ImportReport, error)
	Payloads   []string
}

// Verify interface compliance
var _ service.ImportService = (*MockImportService)(nil)

func NewMockImportService() *MockImportService {
	return &MockImportService{}
}

func (m *MockImportService) ImportArticles(ctx context.Context, sess *session.Session, r io.Reader) (*models.ImportReport, error) {
	if m.ImportFunc != nil {
		return m.ImportFunc(ctx, sess, r)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	m.Payloads = append(m.Payloads, string(data))
	return &models.ImportReport{TotalRecords: 1, SuccessfulCount: 1, CreatedIDs: []int64{1}}, nil
}
