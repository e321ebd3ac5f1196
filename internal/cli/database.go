package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"shortcuts/internal/config"
	"shortcuts/internal/db"
	"shortcuts/internal/validation"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace the database shortcuts with a file's",
	Long: `Validate a shortcuts file and replace every shortcut stored in
DATABASE_URL with its contents.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := fileArg(args)

	file, err := config.LoadShortcutsFile(path)
	if err != nil {
		return err
	}
	if err := validation.ValidateRecords(file.Shortcuts); err != nil {
		return fmt.Errorf("%s is invalid:\n%w", path, err)
	}

	database, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.ReplaceShortcuts(ctx, file.Shortcuts); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d shortcuts\n", len(file.Shortcuts))
	return nil
}

// openDatabase connects to DATABASE_URL and brings the schema up to date.
func openDatabase(ctx context.Context) (*db.DB, error) {
	cfg := config.Load()
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}
