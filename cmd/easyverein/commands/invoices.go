package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/easyverein-community/go-easyverein/internal/constants"
	"github.com/easyverein-community/go-easyverein/pkg/easyverein"
)

// NewInvoicesCommand creates the invoices command group.
func NewInvoicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "invoices",
		Aliases: []string{"invoice"},
		Short:   "Manage invoices",
		Long:    "List, create, download and delete invoices",
	}

	cmd.AddCommand(newInvoicesListCommand())
	cmd.AddCommand(newInvoicesGetCommand())
	cmd.AddCommand(newInvoicesCreateCommand())
	cmd.AddCommand(newInvoicesAttachCommand())
	cmd.AddCommand(newInvoicesDownloadCommand())
	cmd.AddCommand(newInvoicesDeleteCommand())
	cmd.AddCommand(newInvoicesDeletedCommand())
	cmd.AddCommand(newInvoicesPurgeCommand())

	return cmd
}

func newInvoicesListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		kind     string
		drafts   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		Long:  "List invoices, optionally restricted by kind or draft state",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			opts := easyverein.NewListOptions().WithLimit(limit)

			filter := &easyverein.InvoiceFilter{}
			if kind != "" {
				filter.KindIn = easyverein.StrList{kind}
			}

			if drafts {
				filter.IsDraft = easyverein.Ptr(true)
			}

			var invoices *easyverein.ListResponse[easyverein.Invoice]
			if allPages {
				invoices, err = client.Invoices().ListAll(ctx, opts, filter)
			} else {
				invoices, err = client.Invoices().List(ctx, opts, filter)
			}

			if err != nil {
				return fmt.Errorf("failed to list invoices: %w", err)
			}

			return outputInvoices(invoices, allPages)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page")
	cmd.Flags().StringVar(&kind, "kind", "", "invoice kind (balance, donation, membership, revenue, expense, cancel, credit)")
	cmd.Flags().BoolVar(&drafts, "drafts", false, "only draft invoices")

	return cmd
}

func outputInvoices(invoices *easyverein.ListResponse[easyverein.Invoice], allPages bool) error {
	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(invoices.Results)
	case constants.FormatYAML:
		return StandardYAMLRenderer(invoices.Results)
	default:
		return renderInvoiceTable(invoices, allPages)
	}
}

func renderInvoiceTable(invoices *easyverein.ListResponse[easyverein.Invoice], allPages bool) error {
	if len(invoices.Results) == 0 {
		_, _ = os.Stdout.WriteString("No invoices found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Number", "Receiver", "Total", "Date", "Kind", "Draft")

	for i := range invoices.Results {
		invoice := &invoices.Results[i]

		_ = table.Append(
			fmt.Sprintf("%d", invoice.ID),
			displayString(invoice.InvNumber),
			displayString(invoice.Receiver),
			displayFloat(invoice.TotalPrice),
			displayDate(invoice.Date),
			displayString(invoice.Kind),
			displayBool(invoice.IsDraft),
		)
	}

	_ = table.Render()

	if !allPages && invoices.Next != nil {
		_, _ = fmt.Fprintf(os.Stdout, "\nShowing %d of %d invoices. Use --all to fetch all pages.\n",
			len(invoices.Results), invoices.Count)
	}

	return nil
}

func newInvoicesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get INVOICE_ID",
		Short: "Get invoice details",
		Long:  "Display a single invoice by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invoiceID, err := ParseRecordID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			invoice, err := client.Invoices().GetByID(context.Background(), invoiceID, "")
			if err != nil {
				return fmt.Errorf("failed to get invoice %d: %w", invoiceID, err)
			}

			output := viper.GetString("output")
			switch output {
			case constants.FormatYAML:
				return StandardYAMLRenderer(invoice)
			default:
				return StandardJSONRenderer(invoice)
			}
		},
	}
}

func newInvoicesCreateCommand() *cobra.Command {
	var (
		totalPrice float64
		receiver   string
		kind       string
		items      []string
		draft      bool
	)

	cmd := &cobra.Command{
		Use:   "create INVOICE_NUMBER",
		Short: "Create an invoice",
		Long: `Create an invoice, optionally with line items.

Items are given as TITLE:QUANTITY:UNIT_PRICE, e.g. --item "Membership fee:1:50".
Without --draft the invoice is finalized after all items are attached, which
triggers PDF generation on the server.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			payload := &easyverein.InvoiceCreate{
				InvNumber:  args[0],
				TotalPrice: totalPrice,
				Date:       easyverein.Ptr(easyverein.Today()),
			}
			if receiver != "" {
				payload.Receiver = easyverein.Ptr(receiver)
			}

			if kind != "" {
				payload.Kind = easyverein.Ptr(kind)
			}

			itemPayloads, err := parseInvoiceItems(items)
			if err != nil {
				return err
			}

			ctx := context.Background()

			var invoice *easyverein.Invoice
			if len(itemPayloads) > 0 {
				invoice, err = client.Invoices().CreateWithItems(ctx, payload, itemPayloads, !draft)
			} else {
				if draft {
					payload.IsDraft = easyverein.Ptr(true)
				}

				invoice, err = client.Invoices().Create(ctx, payload)
			}

			if err != nil {
				return fmt.Errorf("failed to create invoice: %w", err)
			}

			fmt.Printf("Invoice %d created\n", invoice.ID)

			return nil
		},
	}

	cmd.Flags().Float64Var(&totalPrice, "total", 0, "total price")
	cmd.Flags().StringVar(&receiver, "receiver", "", "invoice receiver")
	cmd.Flags().StringVar(&kind, "kind", "", "invoice kind")
	cmd.Flags().StringArrayVar(&items, "item", nil, "line item as TITLE:QUANTITY:UNIT_PRICE, repeatable")
	cmd.Flags().BoolVar(&draft, "draft", false, "leave the invoice in draft state")

	return cmd
}

func parseInvoiceItems(specs []string) ([]easyverein.InvoiceItemCreate, error) {
	items := make([]easyverein.InvoiceItemCreate, 0, len(specs))

	for _, spec := range specs {
		parts := strings.Split(spec, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid item %q, expected TITLE:QUANTITY:UNIT_PRICE", spec)
		}

		var (
			quantity  int
			unitPrice float64
		)

		if _, err := fmt.Sscanf(parts[1], "%d", &quantity); err != nil {
			return nil, fmt.Errorf("invalid item quantity %q: %w", parts[1], err)
		}

		if _, err := fmt.Sscanf(parts[2], "%g", &unitPrice); err != nil {
			return nil, fmt.Errorf("invalid item unit price %q: %w", parts[2], err)
		}

		items = append(items, easyverein.InvoiceItemCreate{
			Title:     parts[0],
			Quantity:  quantity,
			UnitPrice: unitPrice,
		})
	}

	return items, nil
}

func newInvoicesAttachCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "attach INVOICE_ID PDF_FILE",
		Short: "Attach a PDF to an invoice",
		Long:  "Upload a PDF file as the attachment of an existing draft invoice",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			invoiceID, err := ParseRecordID(args[0])
			if err != nil {
				return err
			}

			content, filename, err := readAttachment(args[1])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			_, err = client.Invoices().UploadAttachment(context.Background(), invoiceID, filename, content)
			if err != nil {
				return fmt.Errorf("failed to attach %s to invoice %d: %w", filename, invoiceID, err)
			}

			fmt.Printf("Attached %s to invoice %d\n", filename, invoiceID)

			return nil
		},
	}
}

// readAttachment loads a PDF from disk, rejecting path traversal and
// non-PDF files before anything goes over the wire.
func readAttachment(path string) ([]byte, string, error) {
	if strings.Contains(path, "..") {
		return nil, "", constants.ErrDirectoryTraversalDetected
	}

	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return nil, "", constants.ErrAttachmentNotPDF
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", fmt.Errorf("%w: %s", constants.ErrAttachmentNotFound, path)
	}

	if err != nil {
		return nil, "", fmt.Errorf("reading attachment: %w", err)
	}

	if !info.Mode().IsRegular() {
		return nil, "", constants.ErrNotRegularFile
	}

	content, err := os.ReadFile(path) // #nosec G304 -- traversal rejected above
	if err != nil {
		return nil, "", fmt.Errorf("reading attachment: %w", err)
	}

	return content, filepath.Base(path), nil
}

func newInvoicesDownloadCommand() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "download INVOICE_ID",
		Short: "Download an invoice PDF",
		Long:  "Download the stored attachment of an invoice to a local file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invoiceID, err := ParseRecordID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			invoice, err := client.Invoices().GetByID(ctx, invoiceID, "")
			if err != nil {
				return fmt.Errorf("failed to get invoice %d: %w", invoiceID, err)
			}

			content, err := client.Invoices().DownloadAttachment(ctx, invoice)
			if err != nil {
				return fmt.Errorf("failed to download invoice %d: %w", invoiceID, err)
			}

			if outFile == "" {
				outFile = fmt.Sprintf("invoice-%d.pdf", invoiceID)
			}

			if err := os.WriteFile(outFile, content, 0o600); err != nil {
				return fmt.Errorf("failed to write %s: %w", outFile, err)
			}

			fmt.Printf("Saved invoice %d to %s\n", invoiceID, outFile)

			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "output-file", "o", "", "target file (default invoice-<id>.pdf)")

	return cmd
}

func newInvoicesDeleteCommand() *cobra.Command {
	var purge bool

	cmd := &cobra.Command{
		Use:   "delete INVOICE_ID",
		Short: "Delete an invoice",
		Long:  "Move an invoice to the recycle bin, optionally purging it permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invoiceID, err := ParseRecordID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			if purge {
				err = client.Invoices().DeleteAndPurge(ctx, invoiceID)
			} else {
				err = client.Invoices().Delete(ctx, invoiceID)
			}

			if err != nil {
				return fmt.Errorf("failed to delete invoice %d: %w", invoiceID, err)
			}

			fmt.Printf("Invoice %d deleted\n", invoiceID)

			return nil
		},
	}

	cmd.Flags().BoolVar(&purge, "purge", false, "also remove the invoice from the recycle bin")

	return cmd
}

func newInvoicesDeletedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "deleted",
		Short: "List invoices in the recycle bin",
		Long:  "List soft-deleted invoices waiting in the recycle bin",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			invoices, err := client.Invoices().ListDeleted(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to list deleted invoices: %w", err)
			}

			return outputInvoices(invoices, true)
		},
	}
}

func newInvoicesPurgeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "purge INVOICE_ID",
		Short: "Purge an invoice from the recycle bin",
		Long:  "Permanently remove a soft-deleted invoice. This cannot be undone.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invoiceID, err := ParseRecordID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			if err := client.Invoices().Purge(context.Background(), invoiceID); err != nil {
				return fmt.Errorf("failed to purge invoice %d: %w", invoiceID, err)
			}

			fmt.Printf("Invoice %d permanently deleted\n", invoiceID)

			return nil
		},
	}
}
