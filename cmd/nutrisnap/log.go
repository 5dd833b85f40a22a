package nutrisnap

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alok-2331/NutriSnap/internal/model"
	"github.com/Alok-2331/NutriSnap/internal/store"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Manage your food log",
}

var (
	logName     string
	logCalories float64
	logProtein  float64
	logCarbs    float64
	logFats     float64
)

var logAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a meal",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(logName) == "" {
			return fmt.Errorf("--name is required")
		}
		if logCalories < 0 || logProtein < 0 || logCarbs < 0 || logFats < 0 {
			return fmt.Errorf("nutrition values must be >= 0")
		}
		return withStore(func(_ *sql.DB, st *store.Store) error {
			entry, err := st.AddFoodLog(model.LogEntry{
				FoodName: strings.TrimSpace(logName),
				Calories: logCalories,
				Protein:  logProtein,
				Carbs:    logCarbs,
				Fats:     logFats,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%.0f kcal)\n", entry.FoodName, entry.Calories)
			return nil
		})
	},
}

var logListLimit int

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged meals, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(_ *sql.DB, st *store.Store) error {
			logs := st.State().FoodLogs
			if len(logs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No meals logged yet.")
				return nil
			}
			if logListLimit > 0 && len(logs) > logListLimit {
				logs = logs[:logListLimit]
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "WHEN\tFOOD\tKCAL\tP\tC\tF")
			for _, l := range logs {
				when := time.UnixMilli(l.Timestamp).Format("2006-01-02 15:04")
				fmt.Fprintf(out, "%s\t%s\t%.0f\t%.1fg\t%.1fg\t%.1fg\n",
					when, l.FoodName, l.Calories, l.Protein, l.Carbs, l.Fats)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logAddCmd, logListCmd)

	logAddCmd.Flags().StringVar(&logName, "name", "", "Food name")
	logAddCmd.Flags().Float64Var(&logCalories, "calories", 0, "Calories (kcal)")
	logAddCmd.Flags().Float64Var(&logProtein, "protein", 0, "Protein (g)")
	logAddCmd.Flags().Float64Var(&logCarbs, "carbs", 0, "Carbs (g)")
	logAddCmd.Flags().Float64Var(&logFats, "fats", 0, "Fats (g)")

	logListCmd.Flags().IntVar(&logListLimit, "limit", 20, "Maximum entries to show")
}
