package mealbook

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jakubciszak/mealbook-cli/internal/service"
	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Export or import the full data set as JSON",
}

var snapshotOut string

var snapshotExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a JSON snapshot of members and meals",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(snapshotOut) == "" {
			return fmt.Errorf("--out is required")
		}
		return withStores(func(members *service.MemberStore, meals *service.MealStore) error {
			data := service.ExportSnapshot(members, meals)
			b, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal snapshot: %w", err)
			}
			if err := os.WriteFile(snapshotOut, b, 0o644); err != nil {
				return fmt.Errorf("write snapshot file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d members and %d meals to %s\n", len(data.Members), len(data.Meals), snapshotOut)
			return nil
		})
	},
}

var (
	snapshotIn     string
	snapshotMode   string
	snapshotDryRun bool
)

var snapshotImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Merge a JSON snapshot into the local data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(snapshotIn) == "" {
			return fmt.Errorf("--in is required")
		}
		b, err := os.ReadFile(snapshotIn)
		if err != nil {
			return fmt.Errorf("read snapshot file: %w", err)
		}
		var data service.Snapshot
		if err := json.Unmarshal(b, &data); err != nil {
			return fmt.Errorf("parse snapshot file: %w", err)
		}
		return withStores(func(members *service.MemberStore, meals *service.MealStore) error {
			report, err := service.ImportSnapshot(members, meals, &data, service.ImportOptions{
				Mode:   service.ImportMode(snapshotMode),
				DryRun: snapshotDryRun,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Inserted: %d\n", report.Inserted)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated: %d\n", report.Updated)
			fmt.Fprintf(cmd.OutOrStdout(), "Skipped: %d\n", report.Skipped)
			for _, w := range report.Warnings {
				fmt.Fprintf(cmd.OutOrStdout(), "Warning: %s\n", w)
			}
			if snapshotDryRun {
				fmt.Fprintln(cmd.OutOrStdout(), "Dry run: no changes written")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.AddCommand(snapshotExportCmd)
	snapshotCmd.AddCommand(snapshotImportCmd)

	snapshotExportCmd.Flags().StringVar(&snapshotOut, "out", "", "Output file path")
	snapshotImportCmd.Flags().StringVar(&snapshotIn, "in", "", "Input file path")
	snapshotImportCmd.Flags().StringVar(&snapshotMode, "mode", "merge", "Conflict handling: fail, skip, merge, or replace")
	snapshotImportCmd.Flags().BoolVar(&snapshotDryRun, "dry-run", false, "Report without writing")
}
