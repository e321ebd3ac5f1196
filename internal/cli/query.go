package cli

import (
	"github.com/spf13/cobra"

	"shortcuts/internal/models"
	"shortcuts/internal/resolver"
)

var queryDelayed bool

var queryCmd = &cobra.Command{
	Use:   "query [input...]",
	Short: "Resolve input into ranked results",
	Long: `Resolve input the way the launcher does on each keystroke.

Examples:
  shortcuts query                      # List every shortcut
  shortcuts query g golang tutorial    # Search with the "g" shortcut
  shortcuts query --delayed w golang   # Include live suggestions`,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().BoolVarP(&queryDelayed, "delayed", "d", false, "also fetch suggestions from the provider")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	results := resolve(cmd, a.Resolver.NewSession(), joinArgs(args), queryDelayed)
	return printResults(cmd.OutOrStdout(), results)
}

// resolve runs the sync path and, if asked, the suggestion path, preferring
// the latter's rows when it produced any.
func resolve(cmd *cobra.Command, sess *resolver.Session, input string, delayed bool) []models.Result {
	results := sess.Query(input)
	if !delayed {
		return results
	}
	if rows := sess.QueryDelayed(cmd.Context(), input); len(rows) > 0 {
		return rows
	}
	return results
}
