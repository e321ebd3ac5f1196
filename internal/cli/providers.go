package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"shortcuts/internal/db"
	"shortcuts/internal/models"
)

var providersCmd = &cobra.Command{
	Use:   "providers [provider]",
	Short: "Show the last suggestion provider checks",
	Long: `Show the outcome of the last provider checks recorded by the server
in DATABASE_URL.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProviders,
}

func init() {
	rootCmd.AddCommand(providersCmd)
}

func runProviders(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	database, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	var statuses []models.ProviderStatus
	if len(args) == 1 {
		s, err := database.GetProviderStatus(ctx, args[0])
		if errors.Is(err, db.ErrProviderStatusNotFound) {
			return fmt.Errorf("provider %q has not been checked", args[0])
		}
		if err != nil {
			return err
		}
		statuses = append(statuses, *s)
	} else {
		statuses, err = database.ListProviderStatuses(ctx)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		if statuses == nil {
			statuses = []models.ProviderStatus{}
		}
		return writeJSON(out, statuses)
	}

	if len(statuses) == 0 {
		fmt.Fprintln(out, "No provider checks recorded.")
		return nil
	}
	for _, s := range statuses {
		checked := "never"
		if s.CheckedAt != nil {
			checked = s.CheckedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(out, "%-12s %-10s %s", s.Provider, s.Status, checked)
		if s.Error != "" {
			fmt.Fprintf(out, "  %s", s.Error)
		}
		fmt.Fprintln(out)
	}
	return nil
}
