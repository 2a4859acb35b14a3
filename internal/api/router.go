package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/techblog-api/internal/config"
	"github.com/techblog-api/internal/service"
	"github.com/techblog-api/internal/session"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, sessions session.Store, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())
	router.Use(sessionMiddleware(sessions, log))

	// Handlers
	articleHandler := NewArticleHandler(services, log)
	authHandler := NewAuthHandler(services, log)
	dashboardHandler := NewDashboardHandler(services, cfg, log)

	// Health check
	router.GET("/health", healthCheck)
	router.GET("/metrics", metricsHandler(services))

	// API v1
	v1 := router.Group("/v1")
	{
		// Reader endpoints
		v1.GET("/articles", articleHandler.List)
		v1.GET("/articles/:id", articleHandler.Get)
		v1.GET("/categories", articleHandler.Categories)
		v1.GET("/search", articleHandler.Search)

		// Session endpoints
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}

		// Signed-in endpoints
		signedIn := v1.Group("", requireAuth())
		{
			signedIn.POST("/articles", articleHandler.Create)
			signedIn.POST("/preview", articleHandler.Preview)
			signedIn.POST("/articles/:id/comments", articleHandler.AddComment)
			signedIn.POST("/articles/:id/like", articleHandler.ToggleLike)

			signedIn.GET("/me", authHandler.Me)
			signedIn.PATCH("/me", authHandler.UpdateProfile)

			signedIn.GET("/dashboard", dashboardHandler.Stats)
			signedIn.GET("/dashboard/export", requireDashboard(), dashboardHandler.Export)
			signedIn.POST("/dashboard/import", dashboardHandler.Import)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "techblog-api",
	})
}

// metricsHandler returns store counts
func metricsHandler(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usersCount, _ := services.Dashboard.GetCount(ctx, "users")
		articlesCount, _ := services.Dashboard.GetCount(ctx, "articles")
		commentsCount, _ := services.Dashboard.GetCount(ctx, "comments")

		c.JSON(http.StatusOK, gin.H{
			"store": gin.H{
				"users":    usersCount,
				"articles": articlesCount,
				"comments": commentsCount,
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		if sess := currentSession(c); sess.Authenticated() {
			event = event.Str("username", sess.User.Username)
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
