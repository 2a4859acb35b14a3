package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/techblog-api/internal/errs"
	"github.com/techblog-api/internal/models"
	"github.com/techblog-api/internal/repository"
	"github.com/techblog-api/internal/session"
)

// dashboardListSize caps the top and recent article lists
const dashboardListSize = 5

// dashboardService is the concrete implementation of DashboardService
type dashboardService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newDashboardService creates a new DashboardService
func newDashboardService(repos *repository.Repositories, log zerolog.Logger) *dashboardService {
	return &dashboardService{
		repos: repos,
		log:   log.With().Str("service", "dashboard").Logger(),
	}
}

// Stats aggregates the admin dashboard over every stored article
func (s *dashboardService) Stats(ctx context.Context, sess *session.Session) (*models.DashboardStats, error) {
	user, err := requireUser(sess)
	if err != nil {
		return nil, err
	}
	if !user.CanViewDashboard() {
		return nil, fmt.Errorf("dashboard requires admin: %w", errs.ErrForbidden)
	}

	articles, err := s.repos.Article.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	users, err := s.repos.User.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	return BuildStats(articles, users), nil
}

// BuildStats computes dashboard metrics for articles and a user total
func BuildStats(articles []*models.Article, users int) *models.DashboardStats {
	stats := &models.DashboardStats{
		TotalArticles: len(articles),
		TotalUsers:    users,
	}

	counts := make(map[string]int)
	for _, a := range articles {
		stats.TotalViews += a.Views
		stats.TotalLikes += a.Likes
		stats.TotalComments += len(a.Comments)
		counts[a.Category]++
	}

	byViews := make([]*models.Article, len(articles))
	copy(byViews, articles)
	sort.SliceStable(byViews, func(i, j int) bool { return byViews[i].Views > byViews[j].Views })
	stats.TopArticles = head(byViews, dashboardListSize)

	// YYYY-MM-DD sorts chronologically as a string
	byDate := make([]*models.Article, len(articles))
	copy(byDate, articles)
	sort.SliceStable(byDate, func(i, j int) bool { return byDate[i].PublishDate > byDate[j].PublishDate })
	stats.RecentArticles = head(byDate, dashboardListSize)

	stats.CategoryDistribution = make([]models.CategoryCount, 0, len(counts))
	for name, n := range counts {
		stats.CategoryDistribution = append(stats.CategoryDistribution, models.CategoryCount{
			Category: name,
			Count:    n,
			Share:    float64(n) / float64(len(articles)),
		})
	}
	sort.Slice(stats.CategoryDistribution, func(i, j int) bool {
		a, b := stats.CategoryDistribution[i], stats.CategoryDistribution[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Category < b.Category
	})

	return stats
}

func head(articles []*models.Article, n int) []*models.Article {
	if len(articles) > n {
		articles = articles[:n]
	}
	return articles
}

// StreamArticles streams every stored article in the specified format
func (s *dashboardService) StreamArticles(ctx context.Context, w http.ResponseWriter, format string) error {
	s.log.Info().Str("format", format).Msg("Starting articles export")

	switch format {
	case "ndjson":
		return s.streamArticlesNDJSON(ctx, w)
	case "json":
		return s.streamArticlesJSON(ctx, w)
	case "csv":
		return s.streamArticlesCSV(ctx, w)
	default:
		return fmt.Errorf("unsupported format %q: %w", format, errs.ErrInvalidInput)
	}
}

func (s *dashboardService) streamArticlesNDJSON(ctx context.Context, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("Content-Disposition", "attachment; filename=articles.ndjson")

	flusher, _ := w.(http.Flusher)
	count := 0

	err := s.repos.Article.StreamAll(ctx, func(article *models.Article) error {
		data, err := json.Marshal(article)
		if err != nil {
			return err
		}
		w.Write(data)
		w.Write([]byte("\n"))
		count++

		// Flush every 100 records for streaming
		if count%100 == 0 && flusher != nil {
			flusher.Flush()
		}
		return nil
	})

	s.log.Info().Int("count", count).Msg("Articles export completed")
	return err
}

func (s *dashboardService) streamArticlesJSON(ctx context.Context, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=articles.json")

	w.Write([]byte("["))
	first := true

	err := s.repos.Article.StreamAll(ctx, func(article *models.Article) error {
		if !first {
			w.Write([]byte(","))
		}
		first = false

		data, err := json.Marshal(article)
		if err != nil {
			return err
		}
		w.Write(data)
		return nil
	})

	w.Write([]byte("]"))
	return err
}

func (s *dashboardService) streamArticlesCSV(ctx context.Context, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=articles.csv")

	writer := csv.NewWriter(w)
	defer writer.Flush()

	// Write header
	writer.Write([]string{"id", "title", "author", "category", "status", "publish_date", "tags", "read_time", "likes", "views", "comments"})

	return s.repos.Article.StreamAll(ctx, func(a *models.Article) error {
		return writer.Write([]string{
			strconv.FormatInt(a.ID, 10),
			a.Title,
			a.Author,
			a.Category,
			string(a.Status),
			a.PublishDate,
			strings.Join(a.Tags, "|"),
			strconv.Itoa(a.ReadTime),
			strconv.Itoa(a.Likes),
			strconv.Itoa(a.Views),
			strconv.Itoa(len(a.Comments)),
		})
	})
}

// GetCount returns count for a resource
func (s *dashboardService) GetCount(ctx context.Context, resource string) (int, error) {
	switch resource {
	case "users":
		return s.repos.User.Count(ctx)
	case "articles":
		return s.repos.Article.Count(ctx)
	case "comments":
		total := 0
		err := s.repos.Article.StreamAll(ctx, func(a *models.Article) error {
			total += len(a.Comments)
			return nil
		})
		return total, err
	default:
		return 0, fmt.Errorf("unknown resource %q: %w", resource, errs.ErrInvalidInput)
	}
}
