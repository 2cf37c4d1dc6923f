package mealbook

import (
	"fmt"

	"github.com/jakubciszak/mealbook-cli/internal/service"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the meal history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStores(func(members *service.MemberStore, meals *service.MealStore) error {
			stats := service.SummarizeHistory(meals.Meals(), members.Members())
			fmt.Fprintf(cmd.OutOrStdout(), "Meals: %d\n", stats.TotalMeals)
			fmt.Fprintf(cmd.OutOrStdout(), "Days with meals: %d\n", stats.DistinctDates)
			if stats.FirstDate != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "From %s to %s\n", stats.FirstDate, stats.LastDate)
			}
			if len(stats.TopMeals) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Most cooked:")
				for _, c := range stats.TopMeals {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s (%d)\n", c.Name, c.Count)
				}
			}
			if len(stats.MemberTallies) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Verdicts:")
				for _, t := range stats.MemberTallies {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s: %d liked, %d disliked\n", t.Name, t.Likes, t.Dislikes)
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
