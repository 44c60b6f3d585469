package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/easyverein-community/go-easyverein/internal/auth"
	"github.com/easyverein-community/go-easyverein/internal/constants"
	"github.com/easyverein-community/go-easyverein/internal/http"
	"github.com/easyverein-community/go-easyverein/pkg/easyverein"
)

// Client implements the easyverein.Client interface.
type Client struct {
	httpClient *http.Client
	tokens     *auth.StaticTokenProvider
	baseURL    string
	logger     easyverein.Logger

	// Resource clients
	members            easyverein.MembersClient
	memberGroups       easyverein.MemberGroupsClient
	memberMemberGroups easyverein.MemberMemberGroupsClient
	contactDetails     easyverein.ContactDetailsClient
	customFields       easyverein.CustomFieldsClient
	memberCustomFields easyverein.MemberCustomFieldsClient
	invoices           easyverein.InvoicesClient
	invoiceItems       easyverein.InvoiceItemsClient
	bookings           easyverein.BookingsClient
	bookingProjects    easyverein.BookingProjectsClient
}

// New creates a new API client from the given configuration.
func New(config *easyverein.Config) (*Client, error) {
	if config.APIKey == "" {
		return nil, easyverein.ErrAPIKeyRequired
	}

	scheme := config.TokenScheme
	if scheme == "" {
		scheme = constants.DefaultTokenScheme
	}

	tokens := auth.NewStaticTokenProvider(config.APIKey, scheme)
	baseURL := resolveBaseURL(config)

	httpOpts, err := createHTTPClientOptions(config)
	if err != nil {
		return nil, err
	}

	client := &Client{
		httpClient: http.NewClient(baseURL, tokens, httpOpts...),
		tokens:     tokens,
		baseURL:    baseURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// resolveBaseURL combines base URL and version segment into the API
// root all request paths are resolved against.
func resolveBaseURL(config *easyverein.Config) string {
	base := config.BaseURL
	if base == "" {
		base = constants.DefaultBaseURL
	}

	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	version := config.APIVersion
	if version == "" {
		version = constants.DefaultAPIVersion
	}

	return base + version
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *easyverein.Config) ([]http.Option, error) {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	switch {
	case config.DisableRetry:
		httpOpts = append(httpOpts, http.WithRetryConfig(0, 0, 0))
	case config.RetryMax > 0:
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.OnTokenRefreshNeeded != nil {
		httpOpts = append(httpOpts, http.WithTokenRefreshCallback(config.OnTokenRefreshNeeded))
	} else if config.Logger != nil {
		logger := config.Logger
		httpOpts = append(httpOpts, http.WithTokenRefreshCallback(func() {
			logger.Warn("API key expires soon, request a fresh key", nil)
		}))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	if config.Cache != nil {
		cache, err := easyverein.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, fmt.Errorf("building response cache: %w", err)
		}

		ttl := config.Cache.TTL
		if ttl <= 0 {
			ttl = constants.DefaultCacheTTL
		}

		httpOpts = append(httpOpts, http.WithCache(cache, ttl))
	}

	return httpOpts, nil
}

// BaseURL returns the resolved API root including the version segment.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetAPIKey swaps the API key used for subsequent requests. Keys do
// not expose an expiry, so none is recorded.
func (c *Client) SetAPIKey(apiKey string) {
	c.tokens.SetToken(apiKey, time.Time{})
}

// Resource client accessors

// Members implements easyverein.Client.Members.
func (c *Client) Members() easyverein.MembersClient {
	return c.members
}

// MemberGroups implements easyverein.Client.MemberGroups.
func (c *Client) MemberGroups() easyverein.MemberGroupsClient {
	return c.memberGroups
}

// MemberMemberGroups implements easyverein.Client.MemberMemberGroups.
func (c *Client) MemberMemberGroups() easyverein.MemberMemberGroupsClient {
	return c.memberMemberGroups
}

// ContactDetails implements easyverein.Client.ContactDetails.
func (c *Client) ContactDetails() easyverein.ContactDetailsClient {
	return c.contactDetails
}

// CustomFields implements easyverein.Client.CustomFields.
func (c *Client) CustomFields() easyverein.CustomFieldsClient {
	return c.customFields
}

// MemberCustomFields implements easyverein.Client.MemberCustomFields.
func (c *Client) MemberCustomFields() easyverein.MemberCustomFieldsClient {
	return c.memberCustomFields
}

// Invoices implements easyverein.Client.Invoices.
func (c *Client) Invoices() easyverein.InvoicesClient {
	return c.invoices
}

// InvoiceItems implements easyverein.Client.InvoiceItems.
func (c *Client) InvoiceItems() easyverein.InvoiceItemsClient {
	return c.invoiceItems
}

// Bookings implements easyverein.Client.Bookings.
func (c *Client) Bookings() easyverein.BookingsClient {
	return c.bookings
}

// BookingProjects implements easyverein.Client.BookingProjects.
func (c *Client) BookingProjects() easyverein.BookingProjectsClient {
	return c.bookingProjects
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.members = newMembersClient(c.httpClient, c.logger)
	c.memberGroups = newMemberGroupsClient(c.httpClient, c.logger)
	c.memberMemberGroups = newMemberMemberGroupsClient(c.httpClient, c.logger)
	c.contactDetails = newContactDetailsClient(c.httpClient, c.logger)
	c.customFields = newCustomFieldsClient(c.httpClient, c.logger)
	c.memberCustomFields = newMemberCustomFieldsClient(c.httpClient, c.logger)
	c.invoiceItems = newInvoiceItemsClient(c.httpClient, c.logger)
	c.invoices = newInvoicesClient(c.httpClient, c.logger, c.invoiceItems)
	c.bookings = newBookingsClient(c.httpClient, c.logger)
	c.bookingProjects = newBookingProjectsClient(c.httpClient, c.logger)
}
