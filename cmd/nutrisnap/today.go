package nutrisnap

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alok-2331/NutriSnap/internal/metrics"
	"github.com/Alok-2331/NutriSnap/internal/service"
	"github.com/Alok-2331/NutriSnap/internal/store"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake, water, and goal progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(_ *sql.DB, st *store.Store) error {
			state := st.State()
			s := service.TodaySummaryFor(state, time.Now())
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "%s\n", accentStyle.Render("Hello, "+state.Profile.Name))
			fmt.Fprintf(out, "Date: %s\n\n", s.Date)

			fmt.Fprintf(out, "Calories  %s  %d / %d kcal\n", progressBar(s.IntakeCalories, s.GoalCalories, 20), s.IntakeCalories, s.GoalCalories)
			if s.RemainingCalories >= 0 {
				fmt.Fprintf(out, "Remaining: %d kcal\n", s.RemainingCalories)
			} else {
				fmt.Fprintf(out, "%s\n", warnStyle.Render(fmt.Sprintf("Over goal by %d kcal", -s.RemainingCalories)))
			}
			fmt.Fprintf(out, "Macros: P %.1fg | C %.1fg | F %.1fg (%d meals)\n\n", s.ProteinG, s.CarbsG, s.FatsG, s.Entries)

			fmt.Fprintf(out, "Water     %s  %d / %d ml (%d%%)\n", progressBar(s.WaterML, s.WaterGoalML, 20), s.WaterML, s.WaterGoalML, s.WaterPercent)

			bmi := metrics.ComputeBMI(state.Profile.WeightKg, state.Profile.HeightCm)
			fmt.Fprintf(out, "\nBMI: %.1f (%s)\n", bmi, metrics.ClassifyBMI(bmi).Label)

			if favs := state.Favorites; len(favs) > 0 {
				fmt.Fprintf(out, "\n%s\n", dimStyle.Render("Quick log favorites ('nutrisnap favorite log ID'):"))
				for _, f := range favs {
					fmt.Fprintf(out, "  %s  %s (%.0f kcal)\n", f.ID, f.Name, f.Calories)
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
