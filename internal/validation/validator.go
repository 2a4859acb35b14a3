package validation

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/techblog-api/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidationError represents a single validation error
type ValidationError = models.ValidationError

// Validator checks editor drafts, comments, profiles and imported records.
// It remembers titles so a bulk import can reject duplicates.
type Validator struct {
	titleCache map[string]bool
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{titleCache: make(map[string]bool)}
}

// SetTitleCache seeds the duplicate-title cache with existing titles
func (v *Validator) SetTitleCache(titles []string) {
	for _, t := range titles {
		v.AddTitle(t)
	}
}

// AddTitle adds a title to the duplicate-title cache
func (v *Validator) AddTitle(title string) {
	v.titleCache[titleKey(title)] = true
}

// ValidateDraft validates an article submitted from the editor
func (v *Validator) ValidateDraft(draft *models.ArticleDraft) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(draft.Title) == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}
	if strings.TrimSpace(draft.Excerpt) == "" {
		errors = append(errors, ValidationError{Field: "excerpt", Message: "excerpt is required"})
	}
	if strings.TrimSpace(draft.Category) == "" {
		errors = append(errors, ValidationError{Field: "category", Message: "category is required"})
	}

	// The editor only offers draft and published
	if draft.Status != "" && draft.Status != models.StatusDraft && draft.Status != models.StatusPublished {
		errors = append(errors, ValidationError{
			Field:   "status",
			Message: "invalid status, must be one of: draft, published",
			Value:   draft.Status,
		})
	}

	if draft.Image != "" && !isHTTPURL(draft.Image) {
		errors = append(errors, ValidationError{Field: "image", Message: "image must be an http(s) URL", Value: draft.Image})
	}

	return errors
}

// ValidateComment validates comment text after trimming
func (v *Validator) ValidateComment(text string) []ValidationError {
	var errors []ValidationError

	text = strings.TrimSpace(text)
	if text == "" {
		errors = append(errors, ValidationError{Field: "content", Message: "content is required"})
	}
	return errors
}

// ValidateProfile validates the fields present in a profile update
func (v *Validator) ValidateProfile(update *models.ProfileUpdate) []ValidationError {
	var errors []ValidationError

	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		errors = append(errors, ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if update.Email != nil && !emailRegex.MatchString(*update.Email) {
		errors = append(errors, ValidationError{Field: "email", Message: "invalid email format", Value: *update.Email})
	}
	if update.Avatar != nil && *update.Avatar != "" && !isHTTPURL(*update.Avatar) {
		errors = append(errors, ValidationError{Field: "avatar", Message: "avatar must be an http(s) URL", Value: *update.Avatar})
	}

	return errors
}

// ValidateArticleRecord validates one NDJSON import line
func (v *Validator) ValidateArticleRecord(rec *models.ArticleNDJSON, lineNum int) []ValidationError {
	var errors []ValidationError
	add := func(field, message string, value interface{}) {
		errors = append(errors, ValidationError{Line: lineNum, Field: field, Message: message, Value: value})
	}

	if strings.TrimSpace(rec.Title) == "" {
		add("title", "title is required", nil)
	} else if v.titleCache[titleKey(rec.Title)] {
		add("title", "duplicate title", rec.Title)
	}

	if strings.TrimSpace(rec.Content) == "" {
		add("content", "content is required", nil)
	}
	if strings.TrimSpace(rec.Category) == "" {
		add("category", "category is required", nil)
	}

	if rec.Status != "" && !models.ValidStatuses[models.ArticleStatus(rec.Status)] {
		add("status", "invalid status, must be one of: published, draft, archived", rec.Status)
	}

	if rec.PublishDate != "" {
		if _, err := time.Parse(models.DateLayout, rec.PublishDate); err != nil {
			add("publishDate", "invalid date format, want YYYY-MM-DD", rec.PublishDate)
		}
	}

	if rec.Image != "" && !isHTTPURL(rec.Image) {
		add("image", "image must be an http(s) URL", rec.Image)
	}

	return errors
}

func titleKey(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
