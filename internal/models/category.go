package models

// Category is derived from the distinct category strings of all articles
type Category struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ArticleCount int    `json:"articleCount"`
}

// Listing is the visible article set for the home view
type Listing struct {
	Category string     `json:"category,omitempty"`
	Filtered bool       `json:"filtered"`
	Articles []*Article `json:"articles"`
}

// SearchResult is the outcome of a free-text search
type SearchResult struct {
	Query    string     `json:"query"`
	Active   bool       `json:"active"`
	Articles []*Article `json:"articles"`
}
