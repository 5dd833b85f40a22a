package nutrisnap

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Alok-2331/NutriSnap/internal/model"
	"github.com/Alok-2331/NutriSnap/internal/store"
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Track water intake",
}

var waterAddCmd = &cobra.Command{
	Use:   "add [ml]",
	Short: fmt.Sprintf("Add water (default %d ml)", model.WaterStepML),
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ml, err := parseWaterAmount(args)
		if err != nil {
			return err
		}
		return withStore(func(_ *sql.DB, st *store.Store) error {
			total, err := st.UpdateWaterIntake(ml)
			if err != nil {
				return err
			}
			printWater(cmd, total)
			return nil
		})
	},
}

var waterSubCmd = &cobra.Command{
	Use:   "sub [ml]",
	Short: fmt.Sprintf("Remove water (default %d ml)", model.WaterStepML),
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ml, err := parseWaterAmount(args)
		if err != nil {
			return err
		}
		return withStore(func(_ *sql.DB, st *store.Store) error {
			total, err := st.UpdateWaterIntake(-ml)
			if err != nil {
				return err
			}
			printWater(cmd, total)
			return nil
		})
	},
}

var waterShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show water progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(_ *sql.DB, st *store.Store) error {
			printWater(cmd, st.State().WaterIntake)
			return nil
		})
	},
}

func parseWaterAmount(args []string) (int, error) {
	if len(args) == 0 {
		return model.WaterStepML, nil
	}
	ml, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil || ml <= 0 {
		return 0, fmt.Errorf("invalid amount %q (expected positive ml)", args[0])
	}
	return ml, nil
}

func printWater(cmd *cobra.Command, totalML int) {
	pct := totalML * 100 / model.WaterGoalML
	if pct > 100 {
		pct = 100
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Water: %d / %d ml (%d%%)\n", totalML, model.WaterGoalML, pct)
}

func init() {
	rootCmd.AddCommand(waterCmd)
	waterCmd.AddCommand(waterAddCmd, waterSubCmd, waterShowCmd)
}
