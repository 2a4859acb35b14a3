package commands

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/techblog-api/cmd/blogctl/output"
	"github.com/techblog-api/internal/catalog"
)

var listCategory string

// listCmd lists published articles
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List published articles",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Only show articles in this category (exact match)")
}

func runList(w io.Writer) error {
	data, err := loadCatalogue()
	if err != nil {
		return err
	}

	listing := catalog.Filter(data.Articles, listCategory)
	if jsonOutput {
		return writeJSON(w, listing)
	}

	title := "All articles"
	if listing.Filtered {
		title = "Category: " + listing.Category
	}
	output.Section(w, title)

	if len(listing.Articles) == 0 {
		output.Warning(w, "No articles found in this category")
		return nil
	}
	for _, a := range listing.Articles {
		output.Article(w, a)
	}
	output.Muted(w, "%d article(s)", len(listing.Articles))
	return nil
}
