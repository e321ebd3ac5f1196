package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"shortcuts/internal/models"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the loaded shortcuts",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	snap := a.Store.Snapshot()
	if loadErr := snap.LoadError(); loadErr != "" {
		return fmt.Errorf("failed to load shortcuts: %s", loadErr)
	}

	out := cmd.OutOrStdout()
	records := snap.Records()
	if jsonOutput {
		if records == nil {
			records = []models.Record{}
		}
		return writeJSON(out, records)
	}

	for _, r := range records {
		marker := " "
		if r.IsDefault {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-10s %-20s %s\n", marker, r.Keyword, r.Name, r.URL)
	}
	return nil
}
