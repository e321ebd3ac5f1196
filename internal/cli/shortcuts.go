package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"shortcuts/internal/db"
	"shortcuts/internal/models"
	"shortcuts/internal/validation"
)

var (
	recordName     string
	recordKeyword  string
	recordURL      string
	recordIcon     string
	recordDomain   string
	recordProvider string
	recordDefault  bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a shortcut to the database",
	Example: `  shortcuts add --name GitHub --keyword gh --url 'https://github.com/search?q=%s'
  shortcuts add --name Google --keyword g --url 'https://www.google.com/search?q=%s' --provider google --default`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

var editCmd = &cobra.Command{
	Use:   "edit <keyword>",
	Short: "Change a shortcut stored in the database",
	Long: `Change the fields given as flags on the shortcut stored under keyword.
Fields without a flag keep their value.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var removeCmd = &cobra.Command{
	Use:     "rm <keyword>",
	Aliases: []string{"remove"},
	Short:   "Remove a shortcut from the database",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

var showCmd = &cobra.Command{
	Use:   "show <keyword>",
	Short: "Show a shortcut stored in the database",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	for _, cmd := range []*cobra.Command{addCmd, editCmd} {
		cmd.Flags().StringVar(&recordName, "name", "", "display name")
		cmd.Flags().StringVar(&recordKeyword, "keyword", "", "keyword typed before the search term")
		cmd.Flags().StringVar(&recordURL, "url", "", "URL template, %s is replaced by the term")
		cmd.Flags().StringVar(&recordIcon, "icon", "", "icon path")
		cmd.Flags().StringVar(&recordDomain, "domain", "", "site opened by the context action")
		cmd.Flags().StringVar(&recordProvider, "provider", "", "suggestion provider id")
		cmd.Flags().BoolVar(&recordDefault, "default", false, "use for input without a keyword")
	}
	addCmd.MarkFlagRequired("name")
	addCmd.MarkFlagRequired("keyword")
	addCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(addCmd, editCmd, removeCmd, showCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	r := models.Record{
		Name:               recordName,
		Keyword:            recordKeyword,
		URL:                recordURL,
		IconPath:           recordIcon,
		Domain:             recordDomain,
		SuggestionProvider: recordProvider,
		IsDefault:          recordDefault,
	}
	if err := validation.ValidateRecord(&r); err != nil {
		return err
	}

	ctx := cmd.Context()
	database, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.CreateShortcut(ctx, &r); err != nil {
		if errors.Is(err, db.ErrDuplicateKeyword) {
			return fmt.Errorf("keyword %q is already in use", r.Keyword)
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", r.Name, r.Keyword)
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	database, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	r, err := database.GetShortcutByKeyword(ctx, args[0])
	if err != nil {
		return shortcutError(args[0], err)
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		r.Name = recordName
	}
	if flags.Changed("keyword") {
		r.Keyword = recordKeyword
	}
	if flags.Changed("url") {
		r.URL = recordURL
	}
	if flags.Changed("icon") {
		r.IconPath = recordIcon
	}
	if flags.Changed("domain") {
		r.Domain = recordDomain
	}
	if flags.Changed("provider") {
		r.SuggestionProvider = recordProvider
	}
	if flags.Changed("default") {
		r.IsDefault = recordDefault
	}
	if err := validation.ValidateRecord(r); err != nil {
		return err
	}

	if err := database.UpdateShortcut(ctx, args[0], r); err != nil {
		if errors.Is(err, db.ErrDuplicateKeyword) {
			return fmt.Errorf("keyword %q is already in use", r.Keyword)
		}
		return shortcutError(args[0], err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (%s)\n", r.Name, r.Keyword)
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	database, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.DeleteShortcut(ctx, args[0]); err != nil {
		return shortcutError(args[0], err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	database, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	r, err := database.GetShortcutByKeyword(ctx, args[0])
	if err != nil {
		return shortcutError(args[0], err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return writeJSON(out, r)
	}
	printRecord(out, r)
	return nil
}

func printRecord(w io.Writer, r *models.Record) {
	fmt.Fprintf(w, "Name:     %s\n", r.Name)
	fmt.Fprintf(w, "Keyword:  %s\n", r.Keyword)
	fmt.Fprintf(w, "URL:      %s\n", r.URL)
	if r.IconPath != "" {
		fmt.Fprintf(w, "Icon:     %s\n", r.IconPath)
	}
	if r.Domain != "" {
		fmt.Fprintf(w, "Domain:   %s\n", r.Domain)
	}
	if r.SuggestionProvider != "" {
		fmt.Fprintf(w, "Provider: %s\n", r.SuggestionProvider)
	}
	if r.IsDefault {
		fmt.Fprintln(w, "Default:  yes")
	}
}

func shortcutError(keyword string, err error) error {
	if errors.Is(err, db.ErrShortcutNotFound) {
		return fmt.Errorf("no shortcut with keyword %q", keyword)
	}
	return err
}
