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

// NewCustomFieldsCommand creates the custom fields command group.
func NewCustomFieldsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fields",
		Aliases: []string{"custom-fields"},
		Short:   "Manage custom field definitions",
		Long:    "List and create custom field definitions",
	}

	cmd.AddCommand(newFieldsListCommand())
	cmd.AddCommand(newFieldsCreateCommand())

	return cmd
}

func newFieldsListCommand() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List custom fields",
		Long:  "List custom field definitions, optionally restricted to one usage context",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			filter := &easyverein.CustomFieldFilter{}
			if kind != "" {
				filter.Kind = easyverein.Ptr(kind)
			}

			fields, err := client.CustomFields().ListAll(context.Background(), nil, filter)
			if err != nil {
				return fmt.Errorf("failed to list custom fields: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				return StandardJSONRenderer(fields.Results)
			case constants.FormatYAML:
				return StandardYAMLRenderer(fields.Results)
			default:
				return renderFieldTable(fields)
			}
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "usage context (e members, h events, j contacts, i inventory)")

	return cmd
}

func renderFieldTable(fields *easyverein.ListResponse[easyverein.CustomField]) error {
	if len(fields.Results) == 0 {
		_, _ = os.Stdout.WriteString("No custom fields found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Type", "Kind", "Member Editable")

	for i := range fields.Results {
		field := &fields.Results[i]

		_ = table.Append(
			fmt.Sprintf("%d", field.ID),
			displayString(field.Name),
			displayString(field.SettingsType),
			displayString(field.Kind),
			displayBool(field.MemberEdit),
		)
	}

	return table.Render()
}

func newFieldsCreateCommand() *cobra.Command {
	var (
		settingsType string
		kind         string
		description  string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a custom field",
		Long:  "Create a new custom field definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			payload := &easyverein.CustomFieldCreate{
				Name:         args[0],
				SettingsType: settingsType,
				Kind:         kind,
			}
			if description != "" {
				payload.Description = easyverein.Ptr(description)
			}

			field, err := client.CustomFields().Create(context.Background(), payload)
			if err != nil {
				return fmt.Errorf("failed to create custom field: %w", err)
			}

			fmt.Printf("Custom field %d created\n", field.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&settingsType, "type", "t", "field widget type")
	cmd.Flags().StringVar(&kind, "kind", "e", "usage context")
	cmd.Flags().StringVar(&description, "description", "", "field description")

	return cmd
}
