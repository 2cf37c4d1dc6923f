package mealbook

import (
	"fmt"

	"github.com/jakubciszak/mealbook-cli/internal/service"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the meal history grouped by date",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStores(func(members *service.MemberStore, meals *service.MealStore) error {
			groups := meals.MealsGroupedByDate()
			if len(groups) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No meals recorded")
				return nil
			}
			for _, group := range groups {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", group.Date)
				for _, m := range group.Meals {
					line := "  " + m.Name
					if len(m.Ratings) > 0 {
						line += fmt.Sprintf("  [%s]", formatRatings(members, m))
					}
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
