package client

import (
	"context"
	"fmt"
	nethttp "net/http"

	"github.com/easyverein-community/go-easyverein/internal/constants"
	"github.com/easyverein-community/go-easyverein/internal/http"
	"github.com/easyverein-community/go-easyverein/pkg/easyverein"
)

// invoicesClient implements easyverein.InvoicesClient. Beyond the plain
// CRUD and wastebasket operations it carries the composite creation
// workflows, which also touch the invoice-item endpoint.
type invoicesClient struct {
	*recycleBinClient[easyverein.Invoice, easyverein.InvoiceCreate, easyverein.InvoiceUpdate, easyverein.InvoiceFilter]

	items  easyverein.InvoiceItemsClient
	logger easyverein.Logger
}

func newInvoicesClient(httpClient *http.Client, logger easyverein.Logger, items easyverein.InvoiceItemsClient) easyverein.InvoicesClient {
	return &invoicesClient{
		recycleBinClient: newRecycleBinClient[easyverein.Invoice, easyverein.InvoiceCreate, easyverein.InvoiceUpdate, easyverein.InvoiceFilter](httpClient, logger, endpointInvoice),
		items:            items,
		logger:           logger,
	}
}

// CreateWithItems implements easyverein.InvoicesClient.CreateWithItems.
func (c *invoicesClient) CreateWithItems(ctx context.Context, payload *easyverein.InvoiceCreate, items []easyverein.InvoiceItemCreate, setDraftState bool) (*easyverein.Invoice, error) {
	invoice, err := c.createDraft(ctx, payload, setDraftState)
	if err != nil {
		return nil, err
	}

	for i := range items {
		item := items[i]
		item.RelatedInvoice = easyverein.RefID(invoice.ID)

		if _, err := c.items.Create(ctx, &item); err != nil {
			// Previously attached items and the draft invoice stay
			// persisted; the caller decides how to clean up.
			return nil, fmt.Errorf("attaching item %d of %d to invoice %d: %w", i+1, len(items), invoice.ID, err)
		}
	}

	return c.finalize(ctx, invoice, setDraftState)
}

// CreateWithAttachment implements
// easyverein.InvoicesClient.CreateWithAttachment.
func (c *invoicesClient) CreateWithAttachment(ctx context.Context, payload *easyverein.InvoiceCreate, filename string, attachment []byte, setDraftState bool) (*easyverein.Invoice, error) {
	invoice, err := c.createDraft(ctx, payload, setDraftState)
	if err != nil {
		return nil, err
	}

	if _, err := c.UploadAttachment(ctx, invoice.ID, filename, attachment); err != nil {
		return nil, fmt.Errorf("attaching file to invoice %d: %w", invoice.ID, err)
	}

	return c.finalize(ctx, invoice, setDraftState)
}

// UploadAttachment implements easyverein.InvoicesClient.UploadAttachment.
func (c *invoicesClient) UploadAttachment(ctx context.Context, id int64, filename string, attachment []byte) (*easyverein.Invoice, error) {
	resp, err := c.httpClient.Upload(ctx, nethttp.MethodPatch, c.objectPath(id), constants.AttachmentField, http.Upload{
		Filename:    filename,
		ContentType: constants.ContentTypePDF,
		Content:     attachment,
	})
	if err != nil {
		return nil, fmt.Errorf("uploading attachment to invoice %d: %w", id, err)
	}

	if err := expectStatus(resp, nethttp.StatusOK); err != nil {
		return nil, fmt.Errorf("uploading attachment to invoice %d: %w", id, err)
	}

	return c.decodeObject(resp.Body), nil
}

// DownloadAttachment implements
// easyverein.InvoicesClient.DownloadAttachment. The stored path is a
// pre-signed URL, so the request goes to the URL as-is.
func (c *invoicesClient) DownloadAttachment(ctx context.Context, invoice *easyverein.Invoice) ([]byte, error) {
	if invoice == nil || !invoice.Path.IsURL() {
		return nil, &easyverein.NotFoundError{URL: "invoice attachment"}
	}

	resp, err := c.httpClient.GetAbsolute(ctx, invoice.Path.URL)
	if err != nil {
		return nil, fmt.Errorf("downloading attachment of invoice %d: %w", invoice.ID, err)
	}

	return resp.Body, nil
}

// createDraft validates the draft precondition and creates the invoice
// with the draft flag forced on, so that items and attachments can be
// added before the server renders the PDF.
func (c *invoicesClient) createDraft(ctx context.Context, payload *easyverein.InvoiceCreate, setDraftState bool) (*easyverein.Invoice, error) {
	if payload.IsDraft != nil && !*payload.IsDraft && !setDraftState {
		return nil, &easyverein.PreconditionError{
			Reason: "an invoice built from items or an attachment must start as a draft; pass setDraftState to finalize it afterwards",
		}
	}

	draft := *payload
	draft.IsDraft = easyverein.Ptr(true)

	invoice, err := c.Create(ctx, &draft)
	if err != nil {
		return nil, err
	}

	return invoice, nil
}

// finalize clears the draft flag when requested and re-fetches the
// invoice so the caller sees the server-generated PDF path.
func (c *invoicesClient) finalize(ctx context.Context, invoice *easyverein.Invoice, setDraftState bool) (*easyverein.Invoice, error) {
	if !setDraftState {
		return invoice, nil
	}

	if _, err := c.Update(ctx, invoice.ID, &easyverein.InvoiceUpdate{IsDraft: easyverein.Ptr(false)}); err != nil {
		return nil, fmt.Errorf("finalizing invoice %d: %w", invoice.ID, err)
	}

	final, err := c.GetByID(ctx, invoice.ID, "")
	if err != nil {
		return nil, fmt.Errorf("refreshing invoice %d after finalizing: %w", invoice.ID, err)
	}

	return final, nil
}
