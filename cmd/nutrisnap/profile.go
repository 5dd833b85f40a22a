package nutrisnap

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Alok-2331/NutriSnap/internal/metrics"
	"github.com/Alok-2331/NutriSnap/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(_ *sql.DB, st *store.Store) error {
			state := st.State()
			p := state.Profile
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name: %s\n", p.Name)
			fmt.Fprintf(out, "Age: %d\n", p.Age)
			fmt.Fprintf(out, "Gender: %s\n", p.Gender)
			fmt.Fprintf(out, "Weight: %.1f kg (target %.1f kg)\n", p.WeightKg, p.TargetWeightKg)
			fmt.Fprintf(out, "Height: %.0f cm\n", p.HeightCm)
			fmt.Fprintf(out, "Goal: %s\n", p.Goal)
			fmt.Fprintf(out, "Activity: %s\n", p.ActivityLevel)
			fmt.Fprintf(out, "Daily calorie goal: %d kcal\n", p.DailyCalorieGoal)
			fmt.Fprintf(out, "Onboarded: %v\n", state.HasOnboarded)
			return nil
		})
	},
}

var (
	updName        string
	updAge         int
	updGender      string
	updWeight      float64
	updHeight      float64
	updTarget      float64
	updGoal        string
	updActivity    string
	updCalorieGoal int
	updRecalculate bool
)

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	Long:  "Updates only the flags you pass. --calorie-goal overrides the daily target directly; --recalculate re-derives it from your current metrics and activity level instead.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(_ *sql.DB, st *store.Store) error {
			profile := st.State().Profile
			changed := false

			if cmd.Flags().Changed("name") {
				if strings.TrimSpace(updName) == "" {
					return fmt.Errorf("--name cannot be empty")
				}
				profile.Name = strings.TrimSpace(updName)
				changed = true
			}
			if cmd.Flags().Changed("age") {
				if updAge <= 0 {
					return fmt.Errorf("--age must be > 0")
				}
				profile.Age = updAge
				changed = true
			}
			if cmd.Flags().Changed("gender") {
				gender, err := parseGender(updGender)
				if err != nil {
					return err
				}
				profile.Gender = gender
				changed = true
			}
			if cmd.Flags().Changed("weight") {
				if updWeight <= 0 {
					return fmt.Errorf("--weight must be > 0")
				}
				profile.WeightKg = updWeight
				changed = true
			}
			if cmd.Flags().Changed("height") {
				if updHeight <= 0 {
					return fmt.Errorf("--height must be > 0")
				}
				profile.HeightCm = updHeight
				changed = true
			}
			if cmd.Flags().Changed("target-weight") {
				if updTarget <= 0 {
					return fmt.Errorf("--target-weight must be > 0")
				}
				profile.TargetWeightKg = updTarget
				changed = true
			}
			if cmd.Flags().Changed("goal") {
				goal, err := parseGoal(updGoal)
				if err != nil {
					return err
				}
				profile.Goal = goal
				changed = true
			}
			if cmd.Flags().Changed("activity") {
				activity, err := parseActivityLevel(updActivity)
				if err != nil {
					return err
				}
				profile.ActivityLevel = activity
				changed = true
			}
			if cmd.Flags().Changed("calorie-goal") {
				if updCalorieGoal <= 0 {
					return fmt.Errorf("--calorie-goal must be > 0")
				}
				profile.DailyCalorieGoal = updCalorieGoal
				changed = true
			}
			if updRecalculate {
				if cmd.Flags().Changed("calorie-goal") {
					return fmt.Errorf("--recalculate cannot be combined with --calorie-goal")
				}
				profile.DailyCalorieGoal = metrics.EstimateDailyCalories(
					profile.WeightKg, profile.HeightCm, profile.Age,
					profile.Gender, profile.Goal,
					metrics.ActivityMultipliers[profile.ActivityLevel],
				)
				changed = true
			}

			if !changed {
				return fmt.Errorf("pass at least one field flag")
			}
			if err := st.UpdateProfile(profile); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile updated. Daily calorie goal: %d kcal\n", profile.DailyCalorieGoal)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd, profileUpdateCmd)

	profileUpdateCmd.Flags().StringVar(&updName, "name", "", "Name")
	profileUpdateCmd.Flags().IntVar(&updAge, "age", 0, "Age in years")
	profileUpdateCmd.Flags().StringVar(&updGender, "gender", "", "Gender (male, female, other)")
	profileUpdateCmd.Flags().Float64Var(&updWeight, "weight", 0, "Weight in kg")
	profileUpdateCmd.Flags().Float64Var(&updHeight, "height", 0, "Height in cm")
	profileUpdateCmd.Flags().Float64Var(&updTarget, "target-weight", 0, "Target weight in kg")
	profileUpdateCmd.Flags().StringVar(&updGoal, "goal", "", "Fitness goal (weight-loss, weight-gain, maintenance, muscle-gain)")
	profileUpdateCmd.Flags().StringVar(&updActivity, "activity", "", "Activity level (sedentary .. extra-active)")
	profileUpdateCmd.Flags().IntVar(&updCalorieGoal, "calorie-goal", 0, "Daily calorie goal override (kcal)")
	profileUpdateCmd.Flags().BoolVar(&updRecalculate, "recalculate", false, "Re-derive the calorie goal from current metrics")
}
