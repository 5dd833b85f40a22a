package nutrisnap

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alok-2331/NutriSnap/internal/service"
	"github.com/Alok-2331/NutriSnap/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Weekly performance: intake vs goal over the last 7 days",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(_ *sql.DB, st *store.Store) error {
			r := service.WeeklyReportFor(st.State(), time.Now())
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "%s\n\n", accentStyle.Render("Weekly Performance"))
			for _, d := range r.Days {
				fmt.Fprintf(out, "%s  %s  %4d / %d kcal\n", d.Weekday, progressBar(d.Calories, d.GoalCalories, 20), d.Calories, d.GoalCalories)
			}

			fmt.Fprintf(out, "\nAverage: %.0f kcal/day\n", r.AverageCalories)
			if r.HighestDay != nil && r.HighestDay.Calories > 0 {
				fmt.Fprintf(out, "Highest: %s (%d kcal)\n", r.HighestDay.Date, r.HighestDay.Calories)
			}
			fmt.Fprintf(out, "Days on target: %d of 7\n", r.DaysOnTarget)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
