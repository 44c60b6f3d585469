//go:build integration

package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easyverein-community/go-easyverein/pkg/easyverein"
)

func TestMembersRoundTrip(t *testing.T) {
	client := newLiveClient(t)
	ctx := context.Background()

	list, err := client.Members().List(ctx, easyverein.NewListOptions().WithLimit(10), nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, list.Count, len(list.Results))

	if len(list.Results) == 0 {
		t.Skip("organization has no members")
	}

	member, err := client.Members().GetByID(ctx, list.Results[0].ID, "")
	require.NoError(t, err)
	assert.Equal(t, list.Results[0].ID, member.ID)
}

func TestInvoiceDraftLifecycle(t *testing.T) {
	client := newLiveClient(t)
	ctx := context.Background()

	invoice, err := client.Invoices().Create(ctx, &easyverein.InvoiceCreate{
		InvNumber:  testInvoiceNumber(),
		TotalPrice: 1,
		Receiver:   easyverein.Ptr("Integration Test"),
		IsDraft:    easyverein.Ptr(true),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = client.Invoices().DeleteAndPurge(ctx, invoice.ID)
	})

	fetched, err := client.Invoices().GetByID(ctx, invoice.ID, "")
	require.NoError(t, err)
	assert.True(t, *fetched.IsDraft)

	require.NoError(t, client.Invoices().Delete(ctx, invoice.ID))

	deleted, err := client.Invoices().ListDeleted(ctx, nil)
	require.NoError(t, err)

	found := false

	for _, record := range deleted.Results {
		if record.ID == invoice.ID {
			found = true
		}
	}

	assert.True(t, found, "soft-deleted invoice should appear in the recycle bin")

	require.NoError(t, client.Invoices().Purge(ctx, invoice.ID))
}

func TestInvoiceWithItemsWorkflow(t *testing.T) {
	client := newLiveClient(t)
	ctx := context.Background()

	items := []easyverein.InvoiceItemCreate{
		{Title: "Integration item", Quantity: 1, UnitPrice: 1},
	}

	invoice, err := client.Invoices().CreateWithItems(ctx, &easyverein.InvoiceCreate{
		InvNumber:  testInvoiceNumber(),
		TotalPrice: 1,
		Receiver:   easyverein.Ptr("Integration Test"),
	}, items, false)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = client.Invoices().DeleteAndPurge(ctx, invoice.ID)
	})

	assert.True(t, *invoice.IsDraft, "invoice stays a draft when setDraftState is false")
}
