package nutrisnap

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Alok-2331/NutriSnap/internal/metrics"
	"github.com/Alok-2331/NutriSnap/internal/store"
)

var (
	bmiWeight float64
	bmiHeight float64
)

var bmiCmd = &cobra.Command{
	Use:   "bmi",
	Short: "Compute and classify BMI",
	Long:  "Computes BMI from your profile, or from --weight/--height when given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(_ *sql.DB, st *store.Store) error {
			weight, height := bmiWeight, bmiHeight
			if weight == 0 || height == 0 {
				profile := st.State().Profile
				if weight == 0 {
					weight = profile.WeightKg
				}
				if height == 0 {
					height = profile.HeightCm
				}
			}
			if weight <= 0 || height <= 0 {
				return fmt.Errorf("weight and height must be > 0")
			}

			bmi := metrics.ComputeBMI(weight, height)
			status := metrics.ClassifyBMI(bmi)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "BMI: %.1f\n", bmi)
			fmt.Fprintf(out, "%s\n", accentStyle.Render(status.Label))
			fmt.Fprintf(out, "%s\n", status.Info)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(bmiCmd)
	bmiCmd.Flags().Float64Var(&bmiWeight, "weight", 0, "Weight in kg (default: profile)")
	bmiCmd.Flags().Float64Var(&bmiHeight, "height", 0, "Height in cm (default: profile)")
}
