//go:build integration

package integration

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/easyverein-community/go-easyverein/pkg/easyverein"
	"github.com/easyverein-community/go-easyverein/pkg/evclient"
)

// newLiveClient builds a client against the real API, or skips the test
// when no key is configured. Integration tests run against whatever
// organization the key belongs to, so they only touch records they
// create themselves.
func newLiveClient(t *testing.T) easyverein.Client {
	t.Helper()

	apiKey := os.Getenv("EASYVEREIN_API_KEY")
	if apiKey == "" {
		t.Skip("EASYVEREIN_API_KEY not set, skipping integration test")
	}

	client, err := evclient.New(&easyverein.Config{
		APIKey:   apiKey,
		BaseURL:  os.Getenv("EASYVEREIN_API_URL"),
		RetryMax: 5,
	})
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}

	return client
}

// testInvoiceNumber generates a unique invoice number so parallel runs
// don't collide.
func testInvoiceNumber() string {
	return fmt.Sprintf("IT-%d", time.Now().UnixNano())
}
