// Package cli implements the shortcuts command line.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"shortcuts/internal/app"
	"shortcuts/internal/config"
	"shortcuts/internal/models"
)

var (
	shortcutsFile string
	jsonOutput    bool
)

var rootCmd = &cobra.Command{
	Use:   "shortcuts",
	Short: "Resolve web search shortcuts from the command line",
	Long: `shortcuts resolves launcher-style input such as "g golang tutorial"
against a set of keyword shortcuts and opens the resulting searches.

Shortcuts are read from SHORTCUTS_FILE (default shortcuts.yaml) or, with
RECORD_SOURCE=postgres, from DATABASE_URL.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&shortcutsFile, "file", "f", "", "shortcuts file, overrides SHORTCUTS_FILE and RECORD_SOURCE")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
}

func loadConfig() *config.Config {
	cfg := config.Load()
	if shortcutsFile != "" {
		cfg.ShortcutsFile = shortcutsFile
		cfg.RecordSource = config.SourceFile
	}
	return cfg
}

func openApp(ctx context.Context) (*app.App, error) {
	return app.Open(ctx, loadConfig(), app.Options{})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printResults(w io.Writer, results []models.Result) error {
	if jsonOutput {
		if results == nil {
			results = []models.Result{}
		}
		return writeJSON(w, results)
	}

	if len(results) == 0 {
		fmt.Fprintln(w, "No results.")
		return nil
	}
	for i, r := range results {
		fmt.Fprintf(w, "%2d  %4d  %s\n", i, r.Score, r.Title)
		if r.SubTitle != "" {
			fmt.Fprintf(w, "          %s\n", r.SubTitle)
		}
	}
	return nil
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
