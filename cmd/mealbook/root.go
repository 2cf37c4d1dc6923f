package mealbook

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var dataPath string

var rootCmd = &cobra.Command{
	Use:   "mealbook",
	Short: "mealbook tracks family meals from your terminal",
	Long:  "mealbook is a local-first meal diary: log what was cooked each day, record who in the family liked it, and export the history.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Best-effort: a .env in the working directory may set MEALBOOK_DB.
	_ = godotenv.Load()
	rootCmd.PersistentFlags().StringVar(&dataPath, "db", "", "Path to data file")
}
