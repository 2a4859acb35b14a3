package commands

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/techblog-api/cmd/blogctl/output"
	"github.com/techblog-api/internal/catalog"
)

// searchCmd searches published articles
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search titles, excerpts, content, categories and tags",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(cmd.OutOrStdout(), strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(w io.Writer, query string) error {
	data, err := loadCatalogue()
	if err != nil {
		return err
	}

	result := catalog.Search(data.Articles, query)
	if jsonOutput {
		return writeJSON(w, result)
	}

	if !result.Active {
		output.Info(w, "Enter a search term")
		return nil
	}

	output.Section(w, "Search results for \""+strings.TrimSpace(query)+"\"")
	if len(result.Articles) == 0 {
		output.Warning(w, "No articles match your search")
		return nil
	}
	for _, a := range result.Articles {
		output.Article(w, a)
	}
	output.Muted(w, "%d result(s)", len(result.Articles))
	return nil
}
