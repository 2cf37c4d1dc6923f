package mealbook

import (
	"fmt"

	"github.com/jakubciszak/mealbook-cli/internal/service"
	"github.com/spf13/cobra"
)

var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Manage family members",
}

var memberAvatar string

var memberAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a family member",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStores(func(members *service.MemberStore, _ *service.MealStore) error {
			member := members.AddMember(args[0], memberAvatar)
			if member == nil {
				return fmt.Errorf("member name must not be empty")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", member.Name, member.ID)
			return nil
		})
	},
}

var memberListCmd = &cobra.Command{
	Use:   "list",
	Short: "List family members",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStores(func(members *service.MemberStore, _ *service.MealStore) error {
			all := members.Members()
			if len(all) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No family members yet")
				return nil
			}
			for _, m := range all {
				line := fmt.Sprintf("%s  %s", m.ID, m.Name)
				if m.Avatar != "" {
					line += "  " + m.Avatar
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		})
	},
}

var (
	memberUpdateName   string
	memberUpdateAvatar string
)

var memberUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a family member's name or avatar",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStores(func(members *service.MemberStore, _ *service.MealStore) error {
			if _, ok := members.MemberByID(args[0]); !ok {
				return fmt.Errorf("member %q not found", args[0])
			}
			upd := service.MemberUpdate{}
			if cmd.Flags().Changed("name") {
				upd.Name = &memberUpdateName
			}
			if cmd.Flags().Changed("avatar") {
				upd.Avatar = &memberUpdateAvatar
			}
			members.UpdateMember(args[0], upd)
			m, _ := members.MemberByID(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", m.Name)
			return nil
		})
	},
}

var memberDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a family member",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStores(func(members *service.MemberStore, _ *service.MealStore) error {
			members.DeleteMember(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted member %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(memberCmd)
	memberCmd.AddCommand(memberAddCmd)
	memberCmd.AddCommand(memberListCmd)
	memberCmd.AddCommand(memberUpdateCmd)
	memberCmd.AddCommand(memberDeleteCmd)

	memberAddCmd.Flags().StringVar(&memberAvatar, "avatar", "", "Avatar reference (emoji or image URI)")
	memberUpdateCmd.Flags().StringVar(&memberUpdateName, "name", "", "New display name")
	memberUpdateCmd.Flags().StringVar(&memberUpdateAvatar, "avatar", "", "New avatar reference")
}
