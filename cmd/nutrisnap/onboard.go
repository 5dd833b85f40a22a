package nutrisnap

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Alok-2331/NutriSnap/internal/metrics"
	"github.com/Alok-2331/NutriSnap/internal/model"
	"github.com/Alok-2331/NutriSnap/internal/store"
)

var (
	onboardName         string
	onboardAge          int
	onboardGender       string
	onboardWeight       float64
	onboardTargetWeight float64
	onboardGoal         string
	onboardForce        bool
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Set up your profile and daily calorie goal",
	Long:  "Creates your profile from body metrics and estimates a daily calorie goal. Height and activity level are filled with onboarding defaults; adjust them later with 'nutrisnap profile update'.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(onboardName) == "" {
			return fmt.Errorf("--name is required")
		}
		if onboardAge <= 0 {
			return fmt.Errorf("--age must be > 0")
		}
		if onboardWeight <= 0 || onboardTargetWeight <= 0 {
			return fmt.Errorf("--weight and --target-weight must be > 0")
		}
		gender, err := parseGender(onboardGender)
		if err != nil {
			return err
		}
		goal, err := parseGoal(onboardGoal)
		if err != nil {
			return err
		}

		return withStore(func(_ *sql.DB, st *store.Store) error {
			if st.State().HasOnboarded && !onboardForce {
				return fmt.Errorf("already onboarded - use --force to start over, or 'nutrisnap profile update' to edit")
			}

			estimate := metrics.OnboardingCalorieEstimate(onboardWeight, onboardAge, gender, goal)
			profile := model.UserProfile{
				Name:             strings.TrimSpace(onboardName),
				Age:              onboardAge,
				Gender:           gender,
				WeightKg:         onboardWeight,
				HeightCm:         metrics.AssumedHeightCm,
				TargetWeightKg:   onboardTargetWeight,
				Goal:             goal,
				ActivityLevel:    metrics.OnboardingActivity,
				DailyCalorieGoal: estimate,
			}
			if err := st.CompleteOnboarding(profile); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Welcome, %s!\n", profile.Name)
			fmt.Fprintf(out, "Goal: %s\n", profile.Goal)
			fmt.Fprintf(out, "Daily calorie target: %d kcal\n", estimate)
			fmt.Fprintln(out, "Tip: set your real height and activity level with 'nutrisnap profile update'.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(onboardCmd)

	onboardCmd.Flags().StringVar(&onboardName, "name", "", "Your name")
	onboardCmd.Flags().IntVar(&onboardAge, "age", 0, "Age in years")
	onboardCmd.Flags().StringVar(&onboardGender, "gender", "male", "Gender (male, female, other)")
	onboardCmd.Flags().Float64Var(&onboardWeight, "weight", 0, "Current weight in kg")
	onboardCmd.Flags().Float64Var(&onboardTargetWeight, "target-weight", 0, "Target weight in kg")
	onboardCmd.Flags().StringVar(&onboardGoal, "goal", "weight-loss", "Fitness goal (weight-loss, weight-gain, maintenance, muscle-gain)")
	onboardCmd.Flags().BoolVar(&onboardForce, "force", false, "Overwrite an existing profile")
}
