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

// NewBookingsCommand creates the bookings command group.
func NewBookingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bookings",
		Aliases: []string{"booking"},
		Short:   "Manage bookkeeping bookings",
		Long:    "List bookings and bookkeeping projects",
	}

	cmd.AddCommand(newBookingsListCommand())
	cmd.AddCommand(newBookingsProjectsCommand())

	return cmd
}

func newBookingsListCommand() *cobra.Command {
	var (
		limit   int
		search  string
		project int64
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bookings",
		Long:  "List bookkeeping bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			filter := &easyverein.BookingFilter{}
			if search != "" {
				filter.Search = easyverein.Ptr(search)
			}

			if project > 0 {
				filter.BookingProject = easyverein.Ptr(project)
			}

			opts := easyverein.NewListOptions().WithLimit(limit)

			bookings, err := client.Bookings().List(context.Background(), opts, filter)
			if err != nil {
				return fmt.Errorf("failed to list bookings: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				return StandardJSONRenderer(bookings.Results)
			case constants.FormatYAML:
				return StandardYAMLRenderer(bookings.Results)
			default:
				return renderBookingTable(bookings)
			}
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page")
	cmd.Flags().StringVar(&search, "search", "", "search across booking fields")
	cmd.Flags().Int64Var(&project, "project", 0, "only bookings of the given project id")

	return cmd
}

func renderBookingTable(bookings *easyverein.ListResponse[easyverein.Booking]) error {
	if len(bookings.Results) == 0 {
		_, _ = os.Stdout.WriteString("No bookings found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Date", "Receiver", "Amount", "Description")

	for i := range bookings.Results {
		booking := &bookings.Results[i]

		date := constants.NotAvailable
		if booking.Date != nil {
			date = booking.Date.Format("2006-01-02")
		}

		_ = table.Append(
			fmt.Sprintf("%d", booking.ID),
			date,
			displayString(booking.Receiver),
			displayFloat(booking.Amount),
			displayString(booking.Description),
		)
	}

	return table.Render()
}

func newBookingsProjectsCommand() *cobra.Command {
	var completed bool

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List bookkeeping projects",
		Long:  "List the projects bookings can be assigned to",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			filter := &easyverein.BookingProjectFilter{}
			if completed {
				filter.Completed = easyverein.Ptr(true)
			}

			projects, err := client.BookingProjects().ListAll(context.Background(), nil, filter)
			if err != nil {
				return fmt.Errorf("failed to list booking projects: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				return StandardJSONRenderer(projects.Results)
			case constants.FormatYAML:
				return StandardYAMLRenderer(projects.Results)
			default:
				return renderProjectTable(projects)
			}
		},
	}

	cmd.Flags().BoolVar(&completed, "completed", false, "only completed projects")

	return cmd
}

func renderProjectTable(projects *easyverein.ListResponse[easyverein.BookingProject]) error {
	if len(projects.Results) == 0 {
		_, _ = os.Stdout.WriteString("No booking projects found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Short", "Budget", "Completed")

	for i := range projects.Results {
		project := &projects.Results[i]

		_ = table.Append(
			fmt.Sprintf("%d", project.ID),
			displayString(project.Name),
			displayString(project.Short),
			displayString(project.Budget),
			displayBool(project.Completed),
		)
	}

	return table.Render()
}
