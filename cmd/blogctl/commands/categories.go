package commands

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/techblog-api/cmd/blogctl/output"
	"github.com/techblog-api/internal/catalog"
)

// categoriesCmd lists the derived categories
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories in first-appearance order",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCategories(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(w io.Writer) error {
	data, err := loadCatalogue()
	if err != nil {
		return err
	}

	categories := catalog.Categories(data.Articles)
	if jsonOutput {
		return writeJSON(w, categories)
	}

	output.Section(w, "Categories")
	for _, c := range categories {
		output.Category(w, c)
	}
	return nil
}
