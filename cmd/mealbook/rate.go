package mealbook

import (
	"fmt"

	"github.com/jakubciszak/mealbook-cli/internal/service"
	"github.com/spf13/cobra"
)

var (
	rateLike    bool
	rateDislike bool
	rateClear   bool
)

var rateCmd = &cobra.Command{
	Use:   "rate <meal-id> <member-id>",
	Short: "Record or clear a member's verdict on a meal",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		set := 0
		for _, flag := range []bool{rateLike, rateDislike, rateClear} {
			if flag {
				set++
			}
		}
		if set != 1 {
			return fmt.Errorf("exactly one of --like, --dislike, --clear is required")
		}
		return withStores(func(members *service.MemberStore, meals *service.MealStore) error {
			mealID, memberID := args[0], args[1]
			meal, ok := meals.MealByID(mealID)
			if !ok {
				return fmt.Errorf("meal %q not found", mealID)
			}
			switch {
			case rateClear:
				meals.ClearRating(mealID, memberID)
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s's rating for %s\n", memberName(members, memberID), meal.Name)
			case rateLike:
				meals.SetRating(mealID, memberID, true)
				fmt.Fprintf(cmd.OutOrStdout(), "%s liked %s\n", memberName(members, memberID), meal.Name)
			default:
				meals.SetRating(mealID, memberID, false)
				fmt.Fprintf(cmd.OutOrStdout(), "%s disliked %s\n", memberName(members, memberID), meal.Name)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(rateCmd)
	rateCmd.Flags().BoolVar(&rateLike, "like", false, "Record a like")
	rateCmd.Flags().BoolVar(&rateDislike, "dislike", false, "Record a dislike")
	rateCmd.Flags().BoolVar(&rateClear, "clear", false, "Remove the member's rating")
}
