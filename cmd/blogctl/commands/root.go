package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/techblog-api/internal/seed"
)

var (
	// Global flags
	seedDir    string
	jsonOutput bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "blogctl",
	Short: "Browse the TechBlog catalogue from the terminal",
	Long: `blogctl reads the TechBlog seed catalogue and runs the same listing,
search and rendering code the API serves.

Examples:
  blogctl list --category CSS
  blogctl search "react hooks"
  blogctl render 4 --escape sanitize`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&seedDir, "seed-dir", os.Getenv("SEED_DIR"), "Catalogue directory (default: embedded catalogue)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

func loadCatalogue() (*seed.Data, error) {
	data, err := seed.LoadDir(seedDir)
	if err != nil {
		return nil, fmt.Errorf("load catalogue: %w", err)
	}
	return data, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
