package nutrisnap

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Alok-2331/NutriSnap/internal/store"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Get or set the display theme",
}

var themeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the current theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			fmt.Fprintln(cmd.OutOrStdout(), store.LoadTheme(sqldb))
			return nil
		})
	},
}

var themeSetCmd = &cobra.Command{
	Use:   "set THEME",
	Short: "Set the theme (dark or light)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		theme := args[0]
		if theme != store.ThemeDark && theme != store.ThemeLight {
			return fmt.Errorf("invalid theme %q (use dark or light)", theme)
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := store.SaveTheme(sqldb, theme); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", theme)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeGetCmd, themeSetCmd)
}
