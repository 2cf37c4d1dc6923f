package mealbook

import (
	"fmt"

	"github.com/jakubciszak/mealbook-cli/internal/app"
	"github.com/jakubciszak/mealbook-cli/internal/storage"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local mealbook data file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDataPath()
		if err != nil {
			return err
		}
		if err := app.EnsureDataDir(path); err != nil {
			return err
		}
		store, err := storage.Open(path)
		if err != nil {
			return err
		}
		defer store.Close()

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized mealbook data at %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
