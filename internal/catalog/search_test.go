package catalog

import (
	"testing"

	"github.com/techblog-api/internal/models"
)

func TestSearch(t *testing.T) {
	articles := testArticles()

	tests := []struct {
		name       string
		query      string
		wantIDs    []int64
		wantActive bool
	}{
		{name: "empty query", query: "", wantIDs: []int64{}},
		{name: "whitespace only", query: "   \t\n", wantIDs: []int64{}},
		{name: "title match", query: "flexbox", wantIDs: []int64{1}, wantActive: true},
		{name: "excerpt match", query: "effects", wantIDs: []int64{2}, wantActive: true},
		{name: "content match", query: "useeffect", wantIDs: []int64{2}, wantActive: true},
		{name: "category match", query: "css", wantIDs: []int64{1}, wantActive: true},
		{name: "tag only match", query: "assembly", wantIDs: []int64{2}, wantActive: true},
		{name: "drafts are never returned", query: "grid", wantIDs: []int64{}, wantActive: true},
		{name: "archived are never returned", query: "mixins", wantIDs: []int64{}, wantActive: true},
		{name: "surrounding whitespace trimmed", query: "  hooks  ", wantIDs: []int64{2}, wantActive: true},
		{name: "no match", query: "kubernetes", wantIDs: []int64{}, wantActive: true},
		{name: "multi-word substring", query: "display: flex", wantIDs: []int64{1}, wantActive: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Search(articles, tt.query)
			if result.Articles == nil {
				t.Fatal("Articles must never be nil")
			}
			if got := ids(result.Articles); !equalIDs(got, tt.wantIDs) {
				t.Errorf("Search(%q) = %v, want %v", tt.query, got, tt.wantIDs)
			}
			if result.Active != tt.wantActive {
				t.Errorf("Active = %v, want %v", result.Active, tt.wantActive)
			}
		})
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	articles := testArticles()

	upper := ids(Search(articles, "REACT").Articles)
	lower := ids(Search(articles, "react").Articles)
	mixed := ids(Search(articles, "ReAcT").Articles)

	if !equalIDs(upper, lower) || !equalIDs(lower, mixed) {
		t.Errorf("Expected identical results, got %v / %v / %v", upper, lower, mixed)
	}
	if len(lower) != 1 {
		t.Errorf("Expected one published React article, got %v", lower)
	}
}

func TestSearch_PreservesSourceOrder(t *testing.T) {
	articles := []*models.Article{
		{ID: 30, Title: "Go tips", Status: models.StatusPublished},
		{ID: 10, Title: "More go", Status: models.StatusPublished},
		{ID: 20, Excerpt: "go go go", Status: models.StatusPublished},
	}

	got := ids(Search(articles, "go").Articles)
	if !equalIDs(got, []int64{30, 10, 20}) {
		t.Errorf("Expected source order [30 10 20], got %v", got)
	}
}

func BenchmarkSearch(b *testing.B) {
	articles := make([]*models.Article, 0, 1000)
	for i := 0; i < 1000; i++ {
		articles = append(articles, &models.Article{
			ID:      int64(i),
			Title:   "Article about distributed systems",
			Content: "Consensus, replication and partition tolerance",
			Tags:    []string{"Systems", "Raft"},
			Status:  models.StatusPublished,
		})
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Search(articles, "raft")
	}
}
