package mealbook

import (
	"fmt"
	"strings"

	"github.com/jakubciszak/mealbook-cli/internal/model"
	"github.com/jakubciszak/mealbook-cli/internal/service"
	"github.com/spf13/cobra"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Manage meals",
}

var (
	mealAddDate        string
	mealAddIngredients []string
)

var mealAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Log a cooked meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateArg(mealAddDate)
		if err != nil {
			return err
		}
		return withStores(func(_ *service.MemberStore, meals *service.MealStore) error {
			meal := meals.AddMeal(args[0], date, mealAddIngredients)
			if meal == nil {
				return fmt.Errorf("meal name must not be empty")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s on %s (%s)\n", meal.Name, meal.Date, meal.ID)
			return nil
		})
	},
}

var mealListDate string

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List meals, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateArg(mealListDate)
		if err != nil {
			return err
		}
		return withStores(func(members *service.MemberStore, meals *service.MealStore) error {
			var list []model.Meal
			if date != "" {
				list = meals.MealsByDate(date)
			} else {
				list = meals.Meals()
			}
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No meals recorded")
				return nil
			}
			for _, m := range list {
				printMealLine(cmd, members, m)
			}
			return nil
		})
	},
}

var mealShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one meal in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStores(func(members *service.MemberStore, meals *service.MealStore) error {
			meal, ok := meals.MealByID(args[0])
			if !ok {
				return fmt.Errorf("meal %q not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\n", meal.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", meal.Date)
			if len(meal.Ingredients) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Ingredients: %s\n", strings.Join(meal.Ingredients, ", "))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Ratings: %s\n", formatRatings(members, meal))
			fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", meal.CreatedAt)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated: %s\n", meal.UpdatedAt)
			return nil
		})
	},
}

var mealDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStores(func(_ *service.MemberStore, meals *service.MealStore) error {
			meals.DeleteMeal(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted meal %s\n", args[0])
			return nil
		})
	},
}

func printMealLine(cmd *cobra.Command, members *service.MemberStore, m model.Meal) {
	line := fmt.Sprintf("%s  %s  %s", m.Date, m.ID, m.Name)
	if len(m.Ratings) > 0 {
		line += fmt.Sprintf("  [%s]", formatRatings(members, m))
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
}

func init() {
	rootCmd.AddCommand(mealCmd)
	mealCmd.AddCommand(mealAddCmd)
	mealCmd.AddCommand(mealListCmd)
	mealCmd.AddCommand(mealShowCmd)
	mealCmd.AddCommand(mealDeleteCmd)

	mealAddCmd.Flags().StringVar(&mealAddDate, "date", "", "Date YYYY-MM-DD (default today)")
	mealAddCmd.Flags().StringSliceVar(&mealAddIngredients, "ingredients", nil, "Comma-separated ingredient list")
	mealListCmd.Flags().StringVar(&mealListDate, "date", "", "Only meals on this date")
}
