package nutrisnap

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Alok-2331/NutriSnap/internal/store"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Log out: erase profile, logs, favorites, and chat history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return fmt.Errorf("this erases all local data - pass --yes to confirm")
		}
		return withStore(func(_ *sql.DB, st *store.Store) error {
			if err := st.ResetAll(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All data erased. Run 'nutrisnap onboard' to start again.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Confirm the reset")
}
