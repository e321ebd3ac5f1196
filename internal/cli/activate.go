package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	activateIndex   int
	activateDelayed bool
)

var activateCmd = &cobra.Command{
	Use:   "activate [input...]",
	Short: "Resolve input and run one of the results",
	Long: `Resolve input and run the chosen result, opening its URLs with
BROWSER_COMMAND.

Examples:
  shortcuts activate g golang          # Search Google for "golang"
  shortcuts activate -n 2 w go         # Run the third result
  shortcuts activate '!reload'         # Reload the shortcuts`,
	Args: cobra.MinimumNArgs(1),
	RunE: runActivate,
}

func init() {
	activateCmd.Flags().IntVarP(&activateIndex, "index", "n", 0, "index of the result to run")
	activateCmd.Flags().BoolVarP(&activateDelayed, "delayed", "d", false, "include live suggestions")
	rootCmd.AddCommand(activateCmd)
}

func runActivate(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	results := resolve(cmd, a.Resolver.NewSession(), joinArgs(args), activateDelayed)
	if activateIndex < 0 || activateIndex >= len(results) {
		return fmt.Errorf("no result %d (got %d results)", activateIndex, len(results))
	}

	row := results[activateIndex]
	if !row.IsActionable() {
		return fmt.Errorf("%q has no action", row.Title)
	}

	ok, newQuery := a.Launcher.ActivateResult(cmd.Context(), &row)
	if !ok {
		return fmt.Errorf("failed to run %q", row.Title)
	}
	if newQuery != "" {
		fmt.Fprintln(cmd.OutOrStdout(), newQuery)
	}
	return nil
}
