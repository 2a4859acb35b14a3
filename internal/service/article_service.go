package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/techblog-api/internal/catalog"
	"github.com/techblog-api/internal/errs"
	"github.com/techblog-api/internal/idgen"
	"github.com/techblog-api/internal/markdown"
	"github.com/techblog-api/internal/models"
	"github.com/techblog-api/internal/repository"
	"github.com/techblog-api/internal/session"
	"github.com/techblog-api/internal/validation"
)

// PreviewPlaceholder is shown by the editor preview while content is empty
const PreviewPlaceholder = "<p>Start writing your article content...</p>"

// anonymousAuthor is recorded when the signed-in user has no display name
const anonymousAuthor = "Anonymous"

// articleService is the concrete implementation of ArticleService
type articleService struct {
	repos    *repository.Repositories
	sessions session.Store
	ids      *idgen.Generator
	full     markdown.Renderer
	preview  markdown.Renderer
	now      func() time.Time
	log      zerolog.Logger
}

// newArticleService creates a new ArticleService
func newArticleService(repos *repository.Repositories, sessions session.Store, ids *idgen.Generator, full, preview markdown.Renderer, log zerolog.Logger) *articleService {
	return &articleService{
		repos:    repos,
		sessions: sessions,
		ids:      ids,
		full:     full,
		preview:  preview,
		now:      time.Now,
		log:      log.With().Str("service", "article").Logger(),
	}
}

// List returns the published articles, optionally narrowed to one category
func (s *articleService) List(ctx context.Context, category string) (models.Listing, error) {
	articles, err := s.repos.Article.List(ctx)
	if err != nil {
		return models.Listing{}, fmt.Errorf("list articles: %w", err)
	}
	return catalog.Filter(articles, category), nil
}

// Search runs a free-text search over the published articles
func (s *articleService) Search(ctx context.Context, query string) (models.SearchResult, error) {
	articles, err := s.repos.Article.List(ctx)
	if err != nil {
		return models.SearchResult{}, fmt.Errorf("list articles: %w", err)
	}
	return catalog.Search(articles, query), nil
}

// Categories derives the category list from every stored article
func (s *articleService) Categories(ctx context.Context) ([]models.Category, error) {
	articles, err := s.repos.Article.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return catalog.Categories(articles), nil
}

// Get returns a published article
func (s *articleService) Get(ctx context.Context, id int64) (*models.Article, error) {
	article, err := s.repos.Article.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article %d: %w", id, err)
	}
	if article == nil || !article.IsPublished() {
		return nil, fmt.Errorf("article %d: %w", id, errs.ErrNotFound)
	}
	return article, nil
}

// Render returns a published article with its full-view markup
func (s *articleService) Render(ctx context.Context, id int64) (*models.RenderedArticle, error) {
	article, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.RenderedArticle{
		Article: article,
		HTML:    s.full.Render(article.Content),
	}, nil
}

// Preview renders editor content with the preview formatter
func (s *articleService) Preview(ctx context.Context, content string) string {
	if strings.TrimSpace(content) == "" {
		return PreviewPlaceholder
	}
	return s.preview.Render(content)
}

// Create saves an editor draft as a new article
func (s *articleService) Create(ctx context.Context, sess *session.Session, draft *models.ArticleDraft) (*models.Article, error) {
	user, err := requireUser(sess)
	if err != nil {
		return nil, err
	}
	if !user.CanAuthor() {
		return nil, fmt.Errorf("role %q cannot write articles: %w", user.Role, errs.ErrForbidden)
	}

	validator := validation.NewValidator()
	if verrs := validator.ValidateDraft(draft); len(verrs) > 0 {
		return nil, errs.NewValidationErr(verrs)
	}

	status := draft.Status
	if status == "" {
		status = models.StatusDraft
	}
	author := user.Name
	if author == "" {
		author = anonymousAuthor
	}

	article := &models.Article{
		ID:          s.ids.Next(),
		Title:       strings.TrimSpace(draft.Title),
		Excerpt:     strings.TrimSpace(draft.Excerpt),
		Content:     draft.Content,
		Author:      author,
		PublishDate: today(s.now),
		Category:    strings.TrimSpace(draft.Category),
		Tags:        SplitTags(draft.Tags),
		ReadTime:    ReadTime(draft.Content),
		Image:       draft.Image,
		Comments:    []models.Comment{},
		Status:      status,
		Featured:    draft.Featured,
	}

	if err := s.repos.Article.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	s.log.Info().
		Int64("article_id", article.ID).
		Str("author", article.Author).
		Str("status", string(article.Status)).
		Msg("Article created")

	return article, nil
}

// AddComment appends a comment from the signed-in user to a published article
func (s *articleService) AddComment(ctx context.Context, sess *session.Session, articleID int64, text string) (*models.Comment, error) {
	user, err := requireUser(sess)
	if err != nil {
		return nil, err
	}

	validator := validation.NewValidator()
	if verrs := validator.ValidateComment(text); len(verrs) > 0 {
		return nil, errs.NewValidationErr(verrs)
	}

	if _, err := s.Get(ctx, articleID); err != nil {
		return nil, err
	}

	comment := models.Comment{
		ID:      s.ids.Next(),
		Author:  user.Name,
		Content: strings.TrimSpace(text),
		Date:    today(s.now),
	}
	if _, err := s.repos.Article.AppendComment(ctx, articleID, comment); err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}

	s.log.Info().
		Int64("article_id", articleID).
		Int64("comment_id", comment.ID).
		Str("username", user.Username).
		Msg("Comment added")

	return &comment, nil
}

// ToggleLike flips the reader's liked flag for an article. The stored like
// count never changes; the reported count includes the reader's own like.
func (s *articleService) ToggleLike(ctx context.Context, sess *session.Session, articleID int64) (*models.LikeState, error) {
	if _, err := requireUser(sess); err != nil {
		return nil, err
	}
	article, err := s.Get(ctx, articleID)
	if err != nil {
		return nil, err
	}

	updated, err := s.sessions.UpdateFunc(ctx, sess.Token, func(stored *session.Session) error {
		if stored.Liked[articleID] {
			delete(stored.Liked, articleID)
		} else {
			stored.Liked[articleID] = true
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("save like: %w", err)
	}
	sess.Liked = updated.Liked

	state := LikeStateFor(updated, article)
	return &state, nil
}

// LikeStateFor reports how an article's like button looks to sess
func LikeStateFor(sess *session.Session, article *models.Article) models.LikeState {
	liked := sess.HasLiked(article.ID)
	likes := article.Likes
	if liked {
		likes++
	}
	return models.LikeState{ArticleID: article.ID, Liked: liked, Likes: likes}
}

// SplitTags turns the editor's comma separated tag field into a list,
// trimming each tag and dropping empty ones.
func SplitTags(raw string) []string {
	tags := []string{}
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// ReadTime estimates minutes to read content. Words are counted by
// splitting on single spaces, so empty content still counts as one word.
func ReadTime(content string) int {
	words := len(strings.Split(content, " "))
	return (words + models.WordsPerMinute - 1) / models.WordsPerMinute
}
