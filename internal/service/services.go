package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/techblog-api/internal/config"
	"github.com/techblog-api/internal/errs"
	"github.com/techblog-api/internal/idgen"
	"github.com/techblog-api/internal/markdown"
	"github.com/techblog-api/internal/models"
	"github.com/techblog-api/internal/repository"
	"github.com/techblog-api/internal/session"
)

// ArticleService defines the interface for reader and editor operations
type ArticleService interface {
	List(ctx context.Context, category string) (models.Listing, error)
	Search(ctx context.Context, query string) (models.SearchResult, error)
	Categories(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id int64) (*models.Article, error)
	Render(ctx context.Context, id int64) (*models.RenderedArticle, error)
	Preview(ctx context.Context, content string) string
	Create(ctx context.Context, sess *session.Session, draft *models.ArticleDraft) (*models.Article, error)
	AddComment(ctx context.Context, sess *session.Session, articleID int64, text string) (*models.Comment, error)
	ToggleLike(ctx context.Context, sess *session.Session, articleID int64) (*models.LikeState, error)
}

// AuthService defines the interface for sign-in and profile operations
type AuthService interface {
	Login(ctx context.Context, username, password string) (*session.Session, error)
	Logout(ctx context.Context, sess *session.Session) error
	Current(ctx context.Context, sess *session.Session) (*models.User, error)
	UpdateProfile(ctx context.Context, sess *session.Session, update *models.ProfileUpdate) (*models.User, error)
}

// DashboardService defines the interface for admin metrics and export
type DashboardService interface {
	Stats(ctx context.Context, sess *session.Session) (*models.DashboardStats, error)
	StreamArticles(ctx context.Context, w http.ResponseWriter, format string) error
	GetCount(ctx context.Context, resource string) (int, error)
}

// ImportService defines the interface for bulk article import
type ImportService interface {
	ImportArticles(ctx context.Context, sess *session.Session, r io.Reader) (*models.ImportReport, error)
}

// Services holds all service interfaces
type Services struct {
	Article   ArticleService
	Auth      AuthService
	Dashboard DashboardService
	Import    ImportService
}

// NewServices creates all services. The ID generator is primed with the
// identifiers already in the store so new ones never collide.
func NewServices(repos *repository.Repositories, sessions session.Store, cfg *config.Config, log zerolog.Logger) *Services {
	ids := idgen.New()
	observeExisting(context.Background(), repos, ids)

	full := markdown.New(cfg.Render.FormatterOptions(markdown.FullView()))
	preview := markdown.New(cfg.Render.FormatterOptions(markdown.EditorPreview()))

	return &Services{
		Article:   newArticleService(repos, sessions, ids, full, preview, log),
		Auth:      newAuthService(repos, sessions, cfg.Session.LoginDelay, log),
		Dashboard: newDashboardService(repos, log),
		Import:    newImportService(repos, ids, log),
	}
}

func observeExisting(ctx context.Context, repos *repository.Repositories, ids *idgen.Generator) {
	_ = repos.Article.StreamAll(ctx, func(a *models.Article) error {
		ids.Observe(a.ID)
		for _, c := range a.Comments {
			ids.Observe(c.ID)
		}
		return nil
	})
}

// requireUser returns the signed-in user or ErrUnauthorized
func requireUser(sess *session.Session) (*models.User, error) {
	if !sess.Authenticated() {
		return nil, fmt.Errorf("sign in required: %w", errs.ErrUnauthorized)
	}
	return sess.User, nil
}

func today(now func() time.Time) string {
	return now().Format(models.DateLayout)
}
