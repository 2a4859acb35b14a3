package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/techblog-api/internal/errs"
)

// respondError writes err as JSON with the status its sentinel maps to.
// Internal errors are logged and hidden from the client.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	status := errs.StatusCode(err)

	var verr *errs.ValidationErr
	switch {
	case errors.As(err, &verr):
		c.JSON(status, gin.H{"error": "validation failed", "details": verr.Errors})
	case status >= http.StatusInternalServerError:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
		c.JSON(status, gin.H{"error": "internal server error"})
	default:
		c.JSON(status, gin.H{"error": err.Error()})
	}
}

// articleID parses the :id path parameter
func articleID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "article id must be a positive integer"})
		return 0, false
	}
	return id, true
}
