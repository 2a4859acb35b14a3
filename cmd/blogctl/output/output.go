package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/techblog-api/internal/models"
)

var (
	// Color styles for terminal output
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorInfo    = lipgloss.Color("#3B82F6")
	colorMuted   = lipgloss.Color("#6B7280")
	colorPrimary = lipgloss.Color("#7C3AED")

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	primaryStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	tagStyle     = lipgloss.NewStyle().Foreground(colorInfo).Italic(true)
)

// Success prints a success message
func Success(w io.Writer, format string, args ...interface{}) {
	fmt.Fprint(w, successStyle.Render("✓ "))
	fmt.Fprintf(w, format+"\n", args...)
}

// Warning prints a warning message
func Warning(w io.Writer, format string, args ...interface{}) {
	fmt.Fprint(w, warningStyle.Render("⚠ "))
	fmt.Fprintf(w, format+"\n", args...)
}

// Error prints an error message
func Error(w io.Writer, format string, args ...interface{}) {
	fmt.Fprint(w, errorStyle.Render("✗ "))
	fmt.Fprintf(w, format+"\n", args...)
}

// Info prints an info message
func Info(w io.Writer, format string, args ...interface{}) {
	fmt.Fprint(w, infoStyle.Render("ℹ "))
	fmt.Fprintf(w, format+"\n", args...)
}

// Muted prints a muted message
func Muted(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf(format, args...)))
}

// Section prints a section header
func Section(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, primaryStyle.Render(title))
	fmt.Fprintln(w, mutedStyle.Render(strings.Repeat("═", lipgloss.Width(title))))
	fmt.Fprintln(w)
}

// Article prints one article summary line plus its metadata
func Article(w io.Writer, a *models.Article) {
	marker := mutedStyle.Render("•")
	if a.Featured {
		marker = warningStyle.Render("★")
	}
	fmt.Fprintf(w, "%s %s %s\n", marker, primaryStyle.Render(a.Title), mutedStyle.Render(fmt.Sprintf("#%d", a.ID)))
	fmt.Fprintf(w, "  %s\n", mutedStyle.Render(fmt.Sprintf("%s · %s · %s · %d min read", a.Author, a.PublishDate, a.Category, a.ReadTime)))
	if len(a.Tags) > 0 {
		fmt.Fprintf(w, "  %s\n", tagStyle.Render(strings.Join(a.Tags, ", ")))
	}
}

// Category prints one category row
func Category(w io.Writer, c models.Category) {
	fmt.Fprintf(w, "%s %-24s %s\n", infoStyle.Render("•"), c.Name, mutedStyle.Render(fmt.Sprintf("%s · %d", c.Slug, c.ArticleCount)))
}
