package nutrisnap

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Alok-2331/NutriSnap/internal/store"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a personalized 7-day diet plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(sqldb *sql.DB, st *store.Store) error {
			if err := requireOnboarded(st); err != nil {
				return err
			}
			client, err := newGateway(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.ErrOrStderr(), "Generating your plan...")
			plan, err := client.GenerateDietPlan(cmd.Context(), st.State().Profile)
			if err != nil {
				return fmt.Errorf("plan generation failed (%w) - try again", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(sqldb, plan))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}
