package nutrisnap

import (
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Alok-2331/NutriSnap/internal/gateway"
	"github.com/Alok-2331/NutriSnap/internal/model"
	"github.com/Alok-2331/NutriSnap/internal/service"
	"github.com/Alok-2331/NutriSnap/internal/store"
)

var (
	scanLog      bool
	scanFavorite bool
)

var scanCmd = &cobra.Command{
	Use:   "scan IMAGE",
	Short: "Analyze a food photo with AI",
	Long:  "Sends a JPEG food photo to the AI model and prints a nutrition breakdown tailored to your profile. Use --log to add it to your food log and --favorite to save it as a quick-log template.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		imageBytes, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read image %q: %w", args[0], err)
		}

		return withStore(func(_ *sql.DB, st *store.Store) error {
			if err := requireOnboarded(st); err != nil {
				return err
			}
			client, err := newGateway(cmd.Context())
			if err != nil {
				return err
			}

			data, err := client.AnalyzeFoodImage(cmd.Context(), imageBytes, st.State().Profile)
			if err != nil {
				var analysisErr *gateway.AnalysisError
				if errors.As(err, &analysisErr) {
					return fmt.Errorf("analysis failed (%v) - try again with the same image", analysisErr.Err)
				}
				return err
			}

			out := cmd.OutOrStdout()
			printNutrition(out, data)

			if scanFavorite {
				if service.IsDuplicateFavorite(st.State().Favorites, data.Name) {
					fmt.Fprintf(out, "Note: %q is already in your favorites.\n", data.Name)
				}
				if _, _, err := service.SaveScanAsFavorite(st, data); err != nil {
					return err
				}
				fmt.Fprintf(out, "Saved %q to favorites.\n", data.Name)
			}
			if scanLog {
				image := base64.StdEncoding.EncodeToString(imageBytes)
				if _, err := service.LogScanResult(st, data, image); err != nil {
					return err
				}
				fmt.Fprintf(out, "Logged %s (%.0f kcal).\n", data.Name, data.Calories)
			}
			return nil
		})
	},
}

func printNutrition(out io.Writer, data model.NutritionData) {
	fmt.Fprintf(out, "%s\n", accentStyle.Render(data.Name))
	fmt.Fprintf(out, "Calories: %.0f kcal\n", data.Calories)
	fmt.Fprintf(out, "Macros: P %.1fg | C %.1fg | F %.1fg\n", data.Protein, data.Carbs, data.Fats)
	fmt.Fprintf(out, "Fiber: %.1fg | Sugar: %.1fg\n", data.Fiber, data.Sugar)

	if high := service.HighNutrients(data); len(high) > 0 {
		parts := make([]string, 0, len(high))
		for _, n := range high {
			parts = append(parts, fmt.Sprintf("%s (%.0f%% DV)", n.Name, n.Percent))
		}
		fmt.Fprintf(out, "High in: %s\n", strings.Join(parts, ", "))
	}

	verdict := "Not the healthiest choice"
	if data.HealthAdvice.IsHealthy {
		verdict = "Healthy choice"
	}
	fmt.Fprintf(out, "\n%s\n", verdict)
	if data.HealthAdvice.Reasoning != "" {
		fmt.Fprintf(out, "%s\n", data.HealthAdvice.Reasoning)
	}
	if data.HealthAdvice.BestTimeToEat != "" {
		fmt.Fprintf(out, "Best time to eat: %s\n", data.HealthAdvice.BestTimeToEat)
	}
	if data.HealthAdvice.PortionRecommendation != "" {
		fmt.Fprintf(out, "Portion: %s\n", data.HealthAdvice.PortionRecommendation)
	}
	if len(data.HealthAdvice.WhoShouldAvoid) > 0 {
		fmt.Fprintf(out, "Who should avoid: %s\n", strings.Join(data.HealthAdvice.WhoShouldAvoid, ", "))
	}
	if len(data.Alternatives.Healthier) > 0 {
		fmt.Fprintf(out, "Healthier alternatives: %s\n", strings.Join(data.Alternatives.Healthier, ", "))
	}
	if len(data.Alternatives.Similar) > 0 {
		fmt.Fprintf(out, "Similar foods: %s\n", strings.Join(data.Alternatives.Similar, ", "))
	}
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().BoolVar(&scanLog, "log", false, "Add the result to your food log")
	scanCmd.Flags().BoolVar(&scanFavorite, "favorite", false, "Save the result as a favorite")
}
