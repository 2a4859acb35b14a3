package models

// Comment represents a reader comment on an article
type Comment struct {
	ID      int64     `json:"id" yaml:"id"`
	Author  string    `json:"author" yaml:"author"`
	Content string    `json:"content" yaml:"content"`
	Date    string    `json:"date" yaml:"date"`
	Likes   int       `json:"likes" yaml:"likes"`
	Replies []Comment `json:"replies,omitempty" yaml:"replies"`
}

// Clone returns a deep copy of the comment and its replies
func (c Comment) Clone() Comment {
	if c.Replies != nil {
		replies := make([]Comment, len(c.Replies))
		for i := range c.Replies {
			replies[i] = c.Replies[i].Clone()
		}
		c.Replies = replies
	}
	return c
}
