package catalog

import (
	"strings"

	"github.com/techblog-api/internal/models"
)

// Search runs a case-insensitive substring match over published articles.
// A query that is empty after trimming does not trigger a search.
func Search(articles []*models.Article, query string) models.SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return models.SearchResult{Query: query, Articles: []*models.Article{}}
	}

	hits := make([]*models.Article, 0)
	for _, a := range Published(articles) {
		if Matches(a, q) {
			hits = append(hits, a)
		}
	}
	return models.SearchResult{
		Query:    query,
		Active:   true,
		Articles: hits,
	}
}

// Matches reports whether any searchable field of the article contains q.
// q must already be trimmed and lower-cased.
func Matches(a *models.Article, q string) bool {
	if strings.Contains(strings.ToLower(a.Title), q) ||
		strings.Contains(strings.ToLower(a.Excerpt), q) ||
		strings.Contains(strings.ToLower(a.Content), q) ||
		strings.Contains(strings.ToLower(a.Category), q) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
