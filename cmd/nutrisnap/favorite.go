package nutrisnap

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Alok-2331/NutriSnap/internal/service"
	"github.com/Alok-2331/NutriSnap/internal/store"
)

var favoriteCmd = &cobra.Command{
	Use:   "favorite",
	Short: "Manage quick-log favorites",
}

var favoriteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorites, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(_ *sql.DB, st *store.Store) error {
			favorites := st.State().Favorites
			if len(favorites) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No favorites yet. Save one with 'nutrisnap scan IMAGE --favorite'.")
				return nil
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "ID\tNAME\tKCAL\tP\tC\tF")
			for _, f := range favorites {
				fmt.Fprintf(out, "%s\t%s\t%.0f\t%.1fg\t%.1fg\t%.1fg\n", f.ID, f.Name, f.Calories, f.Protein, f.Carbs, f.Fats)
			}
			return nil
		})
	},
}

var favoriteRemoveCmd = &cobra.Command{
	Use:   "remove ID",
	Short: "Remove a favorite",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(_ *sql.DB, st *store.Store) error {
			if err := st.RemoveFavorite(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed.")
			return nil
		})
	},
}

var favoriteLogCmd = &cobra.Command{
	Use:   "log ID",
	Short: "Quick-log a favorite as a meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(_ *sql.DB, st *store.Store) error {
			entry, err := service.LogFavorite(st, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%.0f kcal)\n", entry.FoodName, entry.Calories)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(favoriteCmd)
	favoriteCmd.AddCommand(favoriteListCmd, favoriteRemoveCmd, favoriteLogCmd)
}
