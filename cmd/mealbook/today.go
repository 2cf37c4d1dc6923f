package mealbook

import (
	"fmt"

	"github.com/jakubciszak/mealbook-cli/internal/service"
	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's meals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStores(func(members *service.MemberStore, meals *service.MealStore) error {
			list := meals.TodaysMeals()
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing cooked today yet")
				return nil
			}
			for _, m := range list {
				printMealLine(cmd, members, m)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
