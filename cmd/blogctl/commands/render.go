package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/techblog-api/cmd/blogctl/output"
	"github.com/techblog-api/internal/catalog"
	"github.com/techblog-api/internal/markdown"
	"github.com/techblog-api/internal/models"
)

var (
	renderPreview   bool
	renderEscape    string
	renderEngine    string
	renderWrapLists bool
)

// renderCmd prints the HTML for one published article
var renderCmd = &cobra.Command{
	Use:   "render <id>",
	Short: "Render a published article to HTML",
	Long: `Render a published article's content to HTML.

By default the full-view formatter is used; --preview switches to the editor
preview formatter (italic and links, level-2 headings only, no code fences).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid article id %q", args[0])
		}
		return runRender(cmd.OutOrStdout(), id)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().BoolVar(&renderPreview, "preview", false, "Use the editor preview formatter")
	renderCmd.Flags().StringVar(&renderEscape, "escape", "none", "Escaping mode: none, source or sanitize")
	renderCmd.Flags().StringVar(&renderEngine, "engine", "lite", "Render engine: lite or goldmark")
	renderCmd.Flags().BoolVar(&renderWrapLists, "wrap-lists", false, "Wrap consecutive list items in <ul>")
}

func runRender(w io.Writer, id int64) error {
	escape, err := markdown.ParseEscapeMode(renderEscape)
	if err != nil {
		return err
	}
	engine, err := markdown.ParseEngine(renderEngine)
	if err != nil {
		return err
	}

	data, err := loadCatalogue()
	if err != nil {
		return err
	}

	var article *models.Article
	for _, a := range catalog.Published(data.Articles) {
		if a.ID == id {
			article = a
			break
		}
	}
	if article == nil {
		return fmt.Errorf("article %d not found", id)
	}

	caps := markdown.FullView()
	if renderPreview {
		caps = markdown.EditorPreview()
	}
	caps.WrapLists = renderWrapLists

	html := markdown.New(markdown.Options{Engine: engine, Capabilities: caps, Escape: escape}).Render(article.Content)
	if jsonOutput {
		return writeJSON(w, models.RenderedArticle{Article: article, HTML: html})
	}

	output.Section(w, article.Title)
	fmt.Fprintln(w, html)
	output.Muted(w, "engine=%s escape=%s", engine, escape)
	return nil
}
