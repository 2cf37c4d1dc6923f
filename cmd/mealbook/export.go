package mealbook

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jakubciszak/mealbook-cli/internal/service"
	"github.com/spf13/cobra"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the meal history as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStores(func(members *service.MemberStore, meals *service.MealStore) error {
			dir := exportDir
			if dir == "" {
				path, err := resolveDataPath()
				if err != nil {
					return err
				}
				dir = filepath.Join(filepath.Dir(path), "exports")
			}
			exporter := service.NewExporter(meals, service.DirFileWriter{Dir: dir}, announceSharer{out: cmd})
			if !exporter.ExportCSV(context.Background(), members.Members()) {
				return fmt.Errorf("nothing to export")
			}
			return nil
		})
	},
}

// announceSharer is the CLI's share capability: always available, shares a
// file by telling the user where it is.
type announceSharer struct {
	out *cobra.Command
}

func (announceSharer) Available(context.Context) bool {
	return true
}

func (s announceSharer) Share(_ context.Context, path string) error {
	_, err := fmt.Fprintf(s.out.OutOrStdout(), "Exported %s\n", path)
	return err
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportDir, "out", "", "Directory to write the CSV into (default exports/ next to the data file)")
}
