package client

import (
	"time"

	internalhttp "github.com/easyverein-community/go-easyverein/internal/http"
	"github.com/easyverein-community/go-easyverein/pkg/easyverein"
)

// NewTestClient creates a client rooted at a test server. No token
// provider is attached, so requests go out without an Authorization
// header, and retries are disabled so error paths fail fast.
func NewTestClient(baseURL string) *Client {
	return NewTestClientWithLogger(baseURL, nil)
}

// NewTestClientWithLogger is NewTestClient with a logger attached, for
// tests asserting on warning output.
func NewTestClientWithLogger(baseURL string, logger easyverein.Logger) *Client {
	client := &Client{
		httpClient: internalhttp.NewClient(baseURL, nil,
			internalhttp.WithLogger(logger),
			internalhttp.WithRetryConfig(0, time.Millisecond, time.Millisecond)),
		baseURL: baseURL,
		logger:  logger,
	}

	client.initializeResourceClients()

	return client
}
