package mealbook

import (
	"fmt"

	"github.com/jakubciszak/mealbook-cli/internal/service"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStores(func(members *service.MemberStore, meals *service.MealStore) error {
			report := service.CheckIntegrity(meals.Meals(), members.Members())
			fmt.Fprintf(cmd.OutOrStdout(), "Duplicate member ids: %d\n", report.DuplicateMemberIDs)
			fmt.Fprintf(cmd.OutOrStdout(), "Duplicate meal ids: %d\n", report.DuplicateMealIDs)
			fmt.Fprintf(cmd.OutOrStdout(), "Duplicate ratings: %d\n", report.DuplicateRatings)
			fmt.Fprintf(cmd.OutOrStdout(), "Orphan ratings: %d\n", report.OrphanRatings)
			if !report.Clean() {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
