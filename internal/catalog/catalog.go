// Package catalog derives the reader-facing views of an article collection:
// the published listing, category narrowing, the category list and
// free-text search. Every function is a pure function of its inputs.
package catalog

import (
	"strings"

	"github.com/goliatone/go-slug"
	"github.com/techblog-api/internal/models"
)

// Published returns the published subset in source order
func Published(articles []*models.Article) []*models.Article {
	out := make([]*models.Article, 0, len(articles))
	for _, a := range articles {
		if a != nil && a.IsPublished() {
			out = append(out, a)
		}
	}
	return out
}

// Filter returns the published articles, narrowed to an exact
// (case-sensitive) category match when category is non-empty.
func Filter(articles []*models.Article, category string) models.Listing {
	published := Published(articles)
	if category == "" {
		return models.Listing{Articles: published}
	}

	matched := make([]*models.Article, 0, len(published))
	for _, a := range published {
		if a.Category == category {
			matched = append(matched, a)
		}
	}
	return models.Listing{
		Category: category,
		Filtered: true,
		Articles: matched,
	}
}

// Categories returns the distinct categories across all articles in order
// of first appearance. Counts include every status, like the dashboard.
func Categories(articles []*models.Article) []models.Category {
	index := make(map[string]int)
	var out []models.Category
	for _, a := range articles {
		if a == nil {
			continue
		}
		if i, ok := index[a.Category]; ok {
			out[i].ArticleCount++
			continue
		}
		index[a.Category] = len(out)
		out = append(out, models.Category{
			Name:         a.Category,
			Slug:         categorySlug(a.Category),
			ArticleCount: 1,
		})
	}
	if out == nil {
		out = []models.Category{}
	}
	return out
}

func categorySlug(name string) string {
	s, err := slug.Normalize(name)
	if err != nil || s == "" {
		return strings.ToLower(strings.Join(strings.Fields(name), "-"))
	}
	return s
}
