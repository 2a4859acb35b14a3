package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/techblog-api/internal/config"
	"github.com/techblog-api/internal/mocks"
	"github.com/techblog-api/internal/models"
	"github.com/techblog-api/internal/repository"
	"github.com/techblog-api/internal/service"
	"github.com/techblog-api/internal/session"
)

type testHarness struct {
	services    *service.Services
	userRepo    *mocks.MockUserRepository
	articleRepo *mocks.MockArticleRepository
	sessions    *mocks.MockSessionStore
}

func testArticle(id int64, title, category string, status models.ArticleStatus, date string, views, likes int) *models.Article {
	return &models.Article{
		ID:          id,
		Title:       title,
		Excerpt:     "About " + title,
		Content:     "## " + title + "\n\nSome **bold** text",
		Author:      "Sarah Johnson",
		PublishDate: date,
		Category:    category,
		Tags:        []string{category},
		ReadTime:    1,
		Views:       views,
		Likes:       likes,
		Comments:    []models.Comment{},
		Status:      status,
	}
}

func testConfig(delay time.Duration) *config.Config {
	return &config.Config{
		Session: config.SessionConfig{LoginDelay: delay},
		Render:  config.RenderConfig{Engine: "lite", Escape: "none"},
	}
}

func newTestHarness(t testing.TB) *testHarness {
	t.Helper()
	return newTestHarnessWithConfig(t, testConfig(0))
}

func newTestHarnessWithConfig(t testing.TB, cfg *config.Config) *testHarness {
	t.Helper()

	userRepo := mocks.NewMockUserRepository(
		&models.User{ID: 1, Username: "admin", Email: "admin@techblog.com", Name: "John Smith", Role: models.RoleAdmin},
		&models.User{ID: 2, Username: "sarah_dev", Email: "sarah@techblog.com", Name: "Sarah Johnson", Role: models.RoleEditor},
		&models.User{ID: 4, Username: "reader", Email: "reader@techblog.com", Name: "Riley Park", Role: models.RoleSubscriber},
		&models.User{ID: 5, Username: "nameless", Role: models.RoleAuthor},
	)

	grid := testArticle(1, "Grid Layouts", "CSS", models.StatusPublished, "2024-01-05", 100, 10)
	grid.Comments = []models.Comment{{ID: 50, Author: "Emma", Content: "Nice", Date: "2024-01-06"}}
	articleRepo := mocks.NewMockArticleRepository(
		grid,
		testArticle(2, "React Hooks", "React", models.StatusPublished, "2024-01-10", 300, 20),
		testArticle(3, "Draft on Go", "Backend", models.StatusDraft, "2024-01-20", 0, 0),
		testArticle(4, "Flexbox Basics", "CSS", models.StatusPublished, "2023-12-01", 50, 5),
	)

	sessions := mocks.NewMockSessionStore()
	repos := &repository.Repositories{User: userRepo, Article: articleRepo}

	return &testHarness{
		services:    service.NewServices(repos, sessions, cfg, zerolog.Nop()),
		userRepo:    userRepo,
		articleRepo: articleRepo,
		sessions:    sessions,
	}
}

// signIn opens a session directly in the store, skipping the login delay
func (h *testHarness) signIn(t testing.TB, username string) *session.Session {
	t.Helper()
	user, _ := h.userRepo.GetByUsername(context.Background(), username)
	if user == nil {
		t.Fatalf("unknown test user %q", username)
	}
	sess, err := h.sessions.Create(context.Background(), user)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	return sess
}
