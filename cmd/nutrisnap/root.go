package nutrisnap

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "nutrisnap",
	Short: "NutriSnap tracks meals, water, and goals with AI assistance",
	Long:  "NutriSnap is a local-first nutrition tracker: log meals and water, scan food photos for AI nutrition breakdowns, generate diet plans, and chat with an AI nutrition assistant.",
}

func Execute() {
	// Optional .env for GEMINI_API_KEY; missing file is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to local state database")
}
