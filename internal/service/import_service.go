package service

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/techblog-api/internal/errs"
	"github.com/techblog-api/internal/idgen"
	"github.com/techblog-api/internal/models"
	"github.com/techblog-api/internal/repository"
	"github.com/techblog-api/internal/session"
	"github.com/techblog-api/internal/validation"
)

// importService is the concrete implementation of ImportService
type importService struct {
	repos *repository.Repositories
	ids   *idgen.Generator
	now   func() time.Time
	log   zerolog.Logger
}

// newImportService creates a new ImportService
func newImportService(repos *repository.Repositories, ids *idgen.Generator, log zerolog.Logger) *importService {
	return &importService{
		repos: repos,
		ids:   ids,
		now:   time.Now,
		log:   log.With().Str("service", "import").Logger(),
	}
}

// ImportArticles appends every valid NDJSON line from r as a new article.
// Invalid lines are reported and skipped; they never abort the import.
func (s *importService) ImportArticles(ctx context.Context, sess *session.Session, r io.Reader) (*models.ImportReport, error) {
	user, err := requireUser(sess)
	if err != nil {
		return nil, err
	}
	if !user.CanAuthor() {
		return nil, fmt.Errorf("role %q cannot import articles: %w", user.Role, errs.ErrForbidden)
	}

	startTime := time.Now()
	report := &models.ImportReport{CreatedIDs: []int64{}}

	validator := validation.NewValidator()
	existing, err := s.repos.Article.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	for _, a := range existing {
		validator.AddTitle(a.Title)
	}

	scanner := bufio.NewScanner(r)
	// Increase buffer size for long lines
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			continue
		}

		report.TotalRecords++

		// Respect context cancellation for long-running imports
		if lineNum%1000 == 0 {
			select {
			case <-ctx.Done():
				return report, ctx.Err()
			default:
			}
		}

		var rec models.ArticleNDJSON
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			report.FailedCount++
			report.Errors = append(report.Errors, models.ValidationError{
				Line:    lineNum,
				Field:   "json",
				Message: fmt.Sprintf("invalid JSON: %v", err),
			})
			continue
		}

		if verrs := validator.ValidateArticleRecord(&rec, lineNum); len(verrs) > 0 {
			report.FailedCount++
			report.Errors = append(report.Errors, verrs...)
			continue
		}

		article := s.convertRecord(&rec, user)
		if err := s.repos.Article.Create(ctx, article); err != nil {
			s.log.Error().Err(err).Int("line", lineNum).Msg("Article insert failed")
			report.FailedCount++
			report.Errors = append(report.Errors, models.ValidationError{
				Line:    lineNum,
				Field:   "id",
				Message: err.Error(),
				Value:   article.ID,
			})
			continue
		}
		validator.AddTitle(rec.Title)
		report.SuccessfulCount++
		report.CreatedIDs = append(report.CreatedIDs, article.ID)
	}

	report.DurationMs = time.Since(startTime).Milliseconds()

	s.log.Info().
		Str("username", user.Username).
		Int("total", report.TotalRecords).
		Int("successful", report.SuccessfulCount).
		Int("failed", report.FailedCount).
		Int64("duration_ms", report.DurationMs).
		Msg("Import completed")

	if err := scanner.Err(); err != nil {
		return report, fmt.Errorf("read import: %w", err)
	}
	return report, nil
}

// convertRecord builds an article the way the editor would, keeping any
// author, date and status the record carries
func (s *importService) convertRecord(rec *models.ArticleNDJSON, user *models.User) *models.Article {
	author := strings.TrimSpace(rec.Author)
	if author == "" {
		author = user.Name
	}
	if author == "" {
		author = anonymousAuthor
	}
	date := rec.PublishDate
	if date == "" {
		date = today(s.now)
	}
	status := models.ArticleStatus(rec.Status)
	if status == "" {
		status = models.StatusDraft
	}

	tags := []string{}
	for _, t := range rec.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	return &models.Article{
		ID:          s.ids.Next(),
		Title:       strings.TrimSpace(rec.Title),
		Excerpt:     strings.TrimSpace(rec.Excerpt),
		Content:     rec.Content,
		Author:      author,
		PublishDate: date,
		Category:    strings.TrimSpace(rec.Category),
		Tags:        tags,
		ReadTime:    ReadTime(rec.Content),
		Image:       rec.Image,
		Comments:    []models.Comment{},
		Status:      status,
		Featured:    rec.Featured,
	}
}
