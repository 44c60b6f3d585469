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

// NewContactDetailsCommand creates the contact details command group.
func NewContactDetailsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "contacts",
		Aliases: []string{"contact-details"},
		Short:   "Manage contact details",
		Long:    "List and inspect address-book entries",
	}

	cmd.AddCommand(newContactsListCommand())
	cmd.AddCommand(newContactsGetCommand())

	return cmd
}

func newContactsListCommand() *cobra.Command {
	var (
		search    string
		companies bool
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contact details",
		Long:  "List address-book entries, optionally restricted to companies",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			filter := &easyverein.ContactDetailsFilter{}
			if search != "" {
				filter.Search = easyverein.Ptr(search)
			}

			if companies {
				filter.IsCompany = easyverein.Ptr(true)
			}

			opts := easyverein.NewListOptions().WithLimit(limit)

			contacts, err := client.ContactDetails().List(context.Background(), opts, filter)
			if err != nil {
				return fmt.Errorf("failed to list contact details: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				return StandardJSONRenderer(contacts.Results)
			case constants.FormatYAML:
				return StandardYAMLRenderer(contacts.Results)
			default:
				return renderContactTable(contacts)
			}
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "search across contact fields")
	cmd.Flags().BoolVar(&companies, "companies", false, "only company entries")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page")

	return cmd
}

func renderContactTable(contacts *easyverein.ListResponse[easyverein.ContactDetails]) error {
	if len(contacts.Results) == 0 {
		_, _ = os.Stdout.WriteString("No contact details found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Company", "Email", "City")

	for i := range contacts.Results {
		contact := &contacts.Results[i]

		name := displayString(contact.FamilyName)
		if contact.FirstName != nil {
			name = *contact.FirstName + " " + displayString(contact.FamilyName)
		}

		_ = table.Append(
			fmt.Sprintf("%d", contact.ID),
			name,
			displayString(contact.CompanyName),
			displayString(contact.PrimaryEmail),
			displayString(contact.City),
		)
	}

	return table.Render()
}

func newContactsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CONTACT_ID",
		Short: "Get contact details",
		Long:  "Display a single address-book entry by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contactID, err := ParseRecordID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			contact, err := client.ContactDetails().GetByID(context.Background(), contactID, "")
			if err != nil {
				return fmt.Errorf("failed to get contact details %d: %w", contactID, err)
			}

			output := viper.GetString("output")
			switch output {
			case constants.FormatYAML:
				return StandardYAMLRenderer(contact)
			default:
				return StandardJSONRenderer(contact)
			}
		},
	}
}
