package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/techblog-api/internal/models"
	"github.com/techblog-api/internal/service"
)

// ArticleHandler handles reader and editor endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// List handles GET /v1/articles?category=...
func (h *ArticleHandler) List(c *gin.Context) {
	listing, err := h.services.Article.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

// Categories handles GET /v1/categories
func (h *ArticleHandler) Categories(c *gin.Context) {
	categories, err := h.services.Article.Categories(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// Search handles GET /v1/search?q=...
func (h *ArticleHandler) Search(c *gin.Context) {
	result, err := h.services.Article.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Get handles GET /v1/articles/:id
// Returns the article, its rendered body and the caller's like state
func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	rendered, err := h.services.Article.Render(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"article": rendered.Article,
		"html":    rendered.HTML,
		"like":    service.LikeStateFor(currentSession(c), rendered.Article),
	})
}

// Preview handles POST /v1/preview
func (h *ArticleHandler) Preview(c *gin.Context) {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"html": h.services.Article.Preview(c.Request.Context(), req.Content)})
}

// Create handles POST /v1/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var draft models.ArticleDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := h.services.Article.Create(c.Request.Context(), currentSession(c), &draft)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, article)
}

// AddComment handles POST /v1/articles/:id/comments
func (h *ArticleHandler) AddComment(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	comment, err := h.services.Article.AddComment(c.Request.Context(), currentSession(c), id, req.Content)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// ToggleLike handles POST /v1/articles/:id/like
func (h *ArticleHandler) ToggleLike(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	state, err := h.services.Article.ToggleLike(c.Request.Context(), currentSession(c), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, state)
}
