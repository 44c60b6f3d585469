package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/easyverein-community/go-easyverein/internal/constants"
	"github.com/easyverein-community/go-easyverein/pkg/easyverein"
)

// NewMembersCommand creates the members command group.
func NewMembersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "members",
		Aliases: []string{"member"},
		Short:   "Manage members",
		Long:    "List, inspect, update and delete club members",
	}

	cmd.AddCommand(newMembersListCommand())
	cmd.AddCommand(newMembersGetCommand())
	cmd.AddCommand(newMembersDeleteCommand())
	cmd.AddCommand(newMembersDeletedCommand())
	cmd.AddCommand(newMembersSetFieldCommand())
	cmd.AddCommand(newMembersAddToGroupCommand())
	cmd.AddCommand(newMembersRemoveFromGroupCommand())

	return cmd
}

func newMembersListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		search   string
		group    int64
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List members",
		Long:  "List members of the association",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			opts := easyverein.NewListOptions().WithLimit(limit)

			filter := &easyverein.MemberFilter{}
			if search != "" {
				filter.Search = easyverein.Ptr(search)
			}

			if group > 0 {
				filter.MemberGroups = easyverein.IntList{group}
			}

			var members *easyverein.ListResponse[easyverein.Member]
			if allPages {
				members, err = client.Members().ListAll(ctx, opts, filter)
			} else {
				members, err = client.Members().List(ctx, opts, filter)
			}

			if err != nil {
				return fmt.Errorf("failed to list members: %w", err)
			}

			return outputMembers(members, allPages)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page")
	cmd.Flags().StringVar(&search, "search", "", "search across member fields")
	cmd.Flags().Int64Var(&group, "group", 0, "only members of the given group id")

	return cmd
}

func outputMembers(members *easyverein.ListResponse[easyverein.Member], allPages bool) error {
	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(members.Results)
	case constants.FormatYAML:
		return StandardYAMLRenderer(members.Results)
	default:
		return renderMemberTable(members, allPages)
	}
}

func renderMemberTable(members *easyverein.ListResponse[easyverein.Member], allPages bool) error {
	if len(members.Results) == 0 {
		_, _ = os.Stdout.WriteString("No members found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Membership Number", "Contact", "Join Date", "Chairman", "Application")

	for i := range members.Results {
		member := &members.Results[i]

		joinDate := constants.NotAvailable
		if member.JoinDate != nil {
			joinDate = member.JoinDate.Format("2006-01-02")
		}

		_ = table.Append(
			fmt.Sprintf("%d", member.ID),
			displayString(member.MembershipNumber),
			displayRef(member.ContactDetails),
			joinDate,
			displayBool(member.IsChairman),
			displayBool(member.IsApplication),
		)
	}

	_ = table.Render()

	if !allPages && members.Next != nil {
		_, _ = fmt.Fprintf(os.Stdout, "\nShowing %d of %d members. Use --all to fetch all pages.\n",
			len(members.Results), members.Count)
	}

	return nil
}

func newMembersGetCommand() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "get MEMBER_ID",
		Short: "Get member details",
		Long:  "Display a single member by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			memberID, err := ParseRecordID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			member, err := client.Members().GetByID(context.Background(), memberID, query)
			if err != nil {
				return fmt.Errorf("failed to get member %d: %w", memberID, err)
			}

			output := viper.GetString("output")
			switch output {
			case constants.FormatYAML:
				return StandardYAMLRenderer(member)
			default:
				return StandardJSONRenderer(member)
			}
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "field selection query, e.g. {id,membershipNumber}")

	return cmd
}

func newMembersDeleteCommand() *cobra.Command {
	var purge bool

	cmd := &cobra.Command{
		Use:   "delete MEMBER_ID",
		Short: "Delete a member",
		Long:  "Move a member to the recycle bin, optionally purging it permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			memberID, err := ParseRecordID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			if purge {
				err = client.Members().DeleteAndPurge(ctx, memberID)
			} else {
				err = client.Members().Delete(ctx, memberID)
			}

			if err != nil {
				return fmt.Errorf("failed to delete member %d: %w", memberID, err)
			}

			if purge {
				fmt.Printf("Member %d permanently deleted\n", memberID)
			} else {
				fmt.Printf("Member %d moved to the recycle bin\n", memberID)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&purge, "purge", false, "also remove the member from the recycle bin")

	return cmd
}

func newMembersDeletedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "deleted",
		Short: "List members in the recycle bin",
		Long:  "List soft-deleted members waiting in the recycle bin",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			members, err := client.Members().ListDeleted(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to list deleted members: %w", err)
			}

			return outputMembers(members, true)
		},
	}
}

func newMembersSetFieldCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-field MEMBER_ID FIELD_ID VALUE",
		Short: "Set a custom field value on a member",
		Long:  "Set the value of a custom field on a member, creating the association when needed",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			memberID, err := ParseRecordID(args[0])
			if err != nil {
				return err
			}

			fieldID, err := ParseRecordID(args[1])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			value, err := client.MemberCustomFields().EnsureSet(context.Background(), memberID, fieldID, args[2])
			if err != nil {
				return fmt.Errorf("failed to set custom field %d on member %d: %w", fieldID, memberID, err)
			}

			fmt.Printf("Custom field value %d set\n", value.ID)

			return nil
		},
	}
}

func newMembersAddToGroupCommand() *cobra.Command {
	var paymentActive bool

	cmd := &cobra.Command{
		Use:   "add-to-group MEMBER_ID GROUP_ID",
		Short: "Add a member to a group",
		Long:  "Add a member to a member group, skipping members that are already in it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			memberID, err := ParseRecordID(args[0])
			if err != nil {
				return err
			}

			groupID, err := ParseRecordID(args[1])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			membership, err := client.MemberMemberGroups().AddToGroup(context.Background(), memberID, groupID, paymentActive)
			if err != nil {
				return fmt.Errorf("failed to add member %d to group %d: %w", memberID, groupID, err)
			}

			fmt.Printf("Member %d is in group %d (membership %d)\n", memberID, groupID, membership.ID)

			return nil
		},
	}

	cmd.Flags().BoolVar(&paymentActive, "payment-active", false, "count the group towards the member's fee")

	return cmd
}

func newMembersRemoveFromGroupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-from-group MEMBER_ID GROUP_ID",
		Short: "Remove a member from a group",
		Long:  "Remove a member's assignment to a member group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			memberID, err := ParseRecordID(args[0])
			if err != nil {
				return err
			}

			groupID, err := ParseRecordID(args[1])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.MemberMemberGroups().RemoveFromGroup(context.Background(), memberID, groupID)
			if err != nil {
				return fmt.Errorf("failed to remove member %d from group %d: %w", memberID, groupID, err)
			}

			fmt.Printf("Member %d removed from group %d\n", memberID, groupID)

			return nil
		},
	}
}
