package models

// CategoryCount is one row of the category distribution
type CategoryCount struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Share    float64 `json:"share"` // fraction of all articles
}

// DashboardStats aggregates the admin dashboard metrics
type DashboardStats struct {
	TotalArticles        int             `json:"totalArticles"`
	TotalUsers           int             `json:"totalUsers"`
	TotalViews           int             `json:"totalViews"`
	TotalLikes           int             `json:"totalLikes"`
	TotalComments        int             `json:"totalComments"`
	TopArticles          []*Article      `json:"topArticles"`
	RecentArticles       []*Article      `json:"recentArticles"`
	CategoryDistribution []CategoryCount `json:"categoryDistribution"`
}

// ValidationError represents a single validation error in a bulk import
type ValidationError struct {
	Line    int         `json:"line"`
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ImportReport summarises an NDJSON article import
type ImportReport struct {
	TotalRecords    int               `json:"total_records"`
	SuccessfulCount int               `json:"successful"`
	FailedCount     int               `json:"failed"`
	DurationMs      int64             `json:"duration_ms"`
	CreatedIDs      []int64           `json:"created_ids"`
	Errors          []ValidationError `json:"errors,omitempty"`
}
