package nutrisnap

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Alok-2331/NutriSnap/internal/store"
)

var (
	settingsMetric        bool
	settingsNotifications bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change app settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(_ *sql.DB, st *store.Store) error {
			settings := st.State().Settings
			changed := false
			if cmd.Flags().Changed("metric") {
				settings.UseMetric = settingsMetric
				changed = true
			}
			if cmd.Flags().Changed("notifications") {
				settings.NotificationsEnabled = settingsNotifications
				changed = true
			}
			if changed {
				if err := st.UpdateSettings(settings); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Metric units: %v\n", settings.UseMetric)
			fmt.Fprintf(out, "Notifications: %v\n", settings.NotificationsEnabled)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.Flags().BoolVar(&settingsMetric, "metric", true, "Use metric units")
	settingsCmd.Flags().BoolVar(&settingsNotifications, "notifications", true, "Enable notifications")
}
