package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"shortcuts/internal/config"
	"shortcuts/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a shortcuts file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

var initCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Write an example shortcuts file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(initCmd)
}

func fileArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return loadConfig().ShortcutsFile
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := fileArg(args)

	file, err := config.LoadShortcutsFile(path)
	if err != nil {
		return err
	}
	if err := validation.ValidateRecords(file.Shortcuts); err != nil {
		return fmt.Errorf("%s is invalid:\n%w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d shortcuts OK\n", path, len(file.Shortcuts))
	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	path := config.NewFileSource(fileArg(args)).Location()
	if err := config.WriteExample(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Shortcuts file: %s\n", path)
	return nil
}
