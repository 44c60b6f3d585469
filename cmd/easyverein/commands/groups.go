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

// NewGroupsCommand creates the member groups command group.
func NewGroupsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "groups",
		Aliases: []string{"group", "member-groups"},
		Short:   "Manage member groups",
		Long:    "List, create and delete member groups",
	}

	cmd.AddCommand(newGroupsListCommand())
	cmd.AddCommand(newGroupsCreateCommand())
	cmd.AddCommand(newGroupsDeleteCommand())

	return cmd
}

func newGroupsListCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List member groups",
		Long:  "List all member groups of the association",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			filter := &easyverein.MemberGroupFilter{}
			if name != "" {
				filter.Name = easyverein.Ptr(name)
			}

			groups, err := client.MemberGroups().ListAll(context.Background(), nil, filter)
			if err != nil {
				return fmt.Errorf("failed to list member groups: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				return StandardJSONRenderer(groups.Results)
			case constants.FormatYAML:
				return StandardYAMLRenderer(groups.Results)
			default:
				return renderGroupTable(groups)
			}
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "filter by exact group name")

	return cmd
}

func renderGroupTable(groups *easyverein.ListResponse[easyverein.MemberGroup]) error {
	if len(groups.Results) == 0 {
		_, _ = os.Stdout.WriteString("No member groups found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Short", "Payment Amount", "Interval")

	for i := range groups.Results {
		group := &groups.Results[i]

		interval := constants.NotAvailable
		if group.PaymentInterval != nil {
			interval = fmt.Sprintf("%d", *group.PaymentInterval)
		}

		_ = table.Append(
			fmt.Sprintf("%d", group.ID),
			displayString(group.Name),
			displayString(group.Short),
			displayFloat(group.PaymentAmount),
			interval,
		)
	}

	return table.Render()
}

func newGroupsCreateCommand() *cobra.Command {
	var (
		color         string
		short         string
		paymentAmount float64
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a member group",
		Long:  "Create a new member group with the given name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			payload := &easyverein.MemberGroupCreate{
				Name:  args[0],
				Color: color,
				Short: short,
			}
			if paymentAmount > 0 {
				payload.PaymentAmount = easyverein.Ptr(paymentAmount)
			}

			group, err := client.MemberGroups().Create(context.Background(), payload)
			if err != nil {
				return fmt.Errorf("failed to create member group: %w", err)
			}

			fmt.Printf("Member group %d created\n", group.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "#000000", "group color")
	cmd.Flags().StringVar(&short, "short", "", "short code shown in member lists")
	cmd.Flags().Float64Var(&paymentAmount, "payment-amount", 0, "membership fee for this group")

	return cmd
}

func newGroupsDeleteCommand() *cobra.Command {
	var purge bool

	cmd := &cobra.Command{
		Use:   "delete GROUP_ID",
		Short: "Delete a member group",
		Long:  "Move a member group to the recycle bin, optionally purging it permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, err := ParseRecordID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			if purge {
				err = client.MemberGroups().DeleteAndPurge(ctx, groupID)
			} else {
				err = client.MemberGroups().Delete(ctx, groupID)
			}

			if err != nil {
				return fmt.Errorf("failed to delete member group %d: %w", groupID, err)
			}

			fmt.Printf("Member group %d deleted\n", groupID)

			return nil
		},
	}

	cmd.Flags().BoolVar(&purge, "purge", false, "also remove the group from the recycle bin")

	return cmd
}
