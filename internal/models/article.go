package models

// ArticleStatus is the visibility state of an article
type ArticleStatus string

const (
	StatusPublished ArticleStatus = "published"
	StatusDraft     ArticleStatus = "draft"
	StatusArchived  ArticleStatus = "archived"
)

// ValidStatuses defines allowed article statuses
var ValidStatuses = map[ArticleStatus]bool{
	StatusPublished: true,
	StatusDraft:     true,
	StatusArchived:  true,
}

// DateLayout is the calendar date format used for publish and comment dates
const DateLayout = "2006-01-02"

// WordsPerMinute drives the read-time estimate
const WordsPerMinute = 200

// Article represents a blog article held in memory
type Article struct {
	ID          int64         `json:"id" yaml:"id"`
	Title       string        `json:"title" yaml:"title"`
	Excerpt     string        `json:"excerpt" yaml:"excerpt"`
	Content     string        `json:"content" yaml:"-"`
	Author      string        `json:"author" yaml:"author"`
	PublishDate string        `json:"publishDate" yaml:"publishDate"`
	Category    string        `json:"category" yaml:"category"`
	Tags        []string      `json:"tags" yaml:"tags"`
	ReadTime    int           `json:"readTime" yaml:"readTime"`
	Image       string        `json:"image" yaml:"image"`
	Likes       int           `json:"likes" yaml:"likes"`
	Views       int           `json:"views" yaml:"views"`
	Comments    []Comment     `json:"comments" yaml:"comments"`
	Status      ArticleStatus `json:"status" yaml:"status"`
	Featured    bool          `json:"featured,omitempty" yaml:"featured"`
}

// IsPublished reports whether the article is visible to readers
func (a *Article) IsPublished() bool {
	return a.Status == StatusPublished
}

// Clone returns a deep copy so callers can't mutate shared state
func (a *Article) Clone() *Article {
	c := *a
	if a.Tags != nil {
		c.Tags = append([]string(nil), a.Tags...)
	}
	if a.Comments != nil {
		c.Comments = make([]Comment, len(a.Comments))
		for i := range a.Comments {
			c.Comments[i] = a.Comments[i].Clone()
		}
	}
	return &c
}

// ArticleDraft is the editor form submitted when saving an article
type ArticleDraft struct {
	Title    string        `json:"title"`
	Excerpt  string        `json:"excerpt"`
	Content  string        `json:"content"`
	Category string        `json:"category"`
	Tags     string        `json:"tags"` // comma separated, as typed in the editor
	Image    string        `json:"image"`
	Featured bool          `json:"featured"`
	Status   ArticleStatus `json:"status"`
}

// ArticleNDJSON represents an article record from NDJSON import
type ArticleNDJSON struct {
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	Author      string   `json:"author"`
	PublishDate string   `json:"publishDate"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image"`
	Status      string   `json:"status"`
	Featured    bool     `json:"featured"`
}

// RenderedArticle pairs an article with its display markup
type RenderedArticle struct {
	Article *Article `json:"article"`
	HTML    string   `json:"html"`
}

// LikeState is what a reader sees for an article's like button
type LikeState struct {
	ArticleID int64 `json:"articleId"`
	Liked     bool  `json:"liked"`
	Likes     int   `json:"likes"`
}
