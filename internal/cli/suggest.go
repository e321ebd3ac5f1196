package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"shortcuts/internal/suggest"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <provider> <term...>",
	Short: "Fetch suggestions from a provider",
	Long: `Fetch autocomplete suggestions directly from a provider.

Examples:
  shortcuts suggest google golang
  shortcuts suggest wikipedia go programming`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	client := suggest.NewHTTPClient(cfg.SuggestionTimeout, cfg.SuggestionLimit, suggest.DefaultProviders())

	if _, ok := client.Provider(args[0]); !ok {
		ids := client.ProviderIDs()
		sort.Strings(ids)
		return fmt.Errorf("unknown provider %q (available: %s)", args[0], strings.Join(ids, ", "))
	}

	items, err := client.Fetch(cmd.Context(), args[0], joinArgs(args[1:]))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return writeJSON(out, items)
	}
	for _, item := range items {
		if item.Description != "" {
			fmt.Fprintf(out, "%s\t%s\n", item.Title, item.Description)
			continue
		}
		fmt.Fprintln(out, item.Title)
	}
	return nil
}
