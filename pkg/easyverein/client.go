package easyverein

import (
	"context"
	"errors"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrDeprecatedClientConstructor = errors.New("use github.com/easyverein-community/go-easyverein/pkg/evclient.New to create a client")
)

// CRUDClient is the operation set shared by every resource endpoint.
// T is the record type, C the creation payload, U the partial-update
// payload, and F the filter type.
type CRUDClient[T any, C any, U any, F any] interface {
	// List fetches a single page.
	List(ctx context.Context, opts *ListOptions, filter *F) (*ListResponse[T], error)
	// ListAll follows next links until the listing is exhausted. The
	// returned Count is the number of accumulated records.
	ListAll(ctx context.Context, opts *ListOptions, filter *F) (*ListResponse[T], error)
	// Get returns the single record matching the filter. If the filter
	// matches more than one record, a warning is logged and the first
	// match is returned. No match yields a NotFoundError.
	Get(ctx context.Context, filter *F) (*T, error)
	// GetByID fetches one record by its numeric identifier.
	GetByID(ctx context.Context, id int64, query string) (*T, error)
	Create(ctx context.Context, payload *C) (*T, error)
	Update(ctx context.Context, id int64, payload *U) (*T, error)
	// Delete soft-deletes the record, moving it to the recycle bin.
	Delete(ctx context.Context, id int64) error
	// Iterate returns an iterator over the listing for streaming
	// consumption of large result sets.
	Iterate(ctx context.Context, opts *ListOptions, filter *F) *Iterator[T]
}

// RecycleBinClient is implemented by resource clients whose endpoint has
// a recycle bin. Soft-deleted records live there until purged or until
// their retention date passes.
type RecycleBinClient[T any] interface {
	// ListDeleted returns the soft-deleted records of this endpoint.
	ListDeleted(ctx context.Context, opts *ListOptions) (*ListResponse[T], error)
	// Purge permanently removes a soft-deleted record from the recycle
	// bin. The record must already be soft-deleted.
	Purge(ctx context.Context, id int64) error
	// DeleteAndPurge soft-deletes the record and immediately purges it
	// from the recycle bin.
	DeleteAndPurge(ctx context.Context, id int64) error
}

// ContactDetailsClient manages contact-details records.
type ContactDetailsClient interface {
	CRUDClient[ContactDetails, ContactDetailsCreate, ContactDetailsUpdate, ContactDetailsFilter]
	RecycleBinClient[ContactDetails]
}

// MembersClient manages member records.
type MembersClient interface {
	CRUDClient[Member, MemberCreate, MemberUpdate, MemberFilter]
	RecycleBinClient[Member]
}

// MemberGroupsClient manages member groups.
type MemberGroupsClient interface {
	CRUDClient[MemberGroup, MemberGroupCreate, MemberGroupUpdate, MemberGroupFilter]
	RecycleBinClient[MemberGroup]
}

// MemberMemberGroupsClient manages the membership relation between
// members and groups. The endpoint is nested under a member.
type MemberMemberGroupsClient interface {
	List(ctx context.Context, memberID int64, opts *ListOptions, filter *MemberMemberGroupFilter) (*ListResponse[MemberMemberGroup], error)
	GetByID(ctx context.Context, memberID, id int64, query string) (*MemberMemberGroup, error)
	Create(ctx context.Context, memberID int64, payload *MemberMemberGroupCreate) (*MemberMemberGroup, error)
	Update(ctx context.Context, memberID, id int64, payload *MemberMemberGroupUpdate) (*MemberMemberGroup, error)
	Delete(ctx context.Context, memberID, id int64) error

	// GetGroupMembership returns the member's assignment to the given
	// group, or a NotFoundError when the member is not in the group.
	GetGroupMembership(ctx context.Context, memberID, groupID int64) (*MemberMemberGroup, error)
	// AddToGroup creates the assignment. An existing assignment is
	// returned unchanged rather than duplicated.
	AddToGroup(ctx context.Context, memberID, groupID int64, paymentActive bool) (*MemberMemberGroup, error)
	// RemoveFromGroup deletes the member's assignment to the group.
	RemoveFromGroup(ctx context.Context, memberID, groupID int64) error
	// SetGroupBillingStatus toggles whether the group counts towards
	// the member's fee calculation.
	SetGroupBillingStatus(ctx context.Context, memberID, groupID int64, active bool) (*MemberMemberGroup, error)
}

// InvoicesClient manages invoices, including the composite creation
// workflows.
type InvoicesClient interface {
	CRUDClient[Invoice, InvoiceCreate, InvoiceUpdate, InvoiceFilter]
	RecycleBinClient[Invoice]

	// CreateWithItems creates the invoice in draft state, attaches the
	// given items, and, when setDraftState is true, finalizes the
	// invoice by clearing its draft flag, which triggers server-side
	// PDF generation. A payload explicitly requesting a non-draft
	// invoice combined with setDraftState=false is rejected with a
	// PreconditionError before any request is sent. A failure while
	// attaching items leaves the invoice and previously attached items
	// persisted; there is no rollback.
	CreateWithItems(ctx context.Context, payload *InvoiceCreate, items []InvoiceItemCreate, setDraftState bool) (*Invoice, error)
	// CreateWithAttachment creates the invoice in draft state, uploads
	// the given PDF as its attachment, and finalizes it like
	// CreateWithItems does.
	CreateWithAttachment(ctx context.Context, payload *InvoiceCreate, filename string, attachment []byte, setDraftState bool) (*Invoice, error)
	// UploadAttachment attaches a PDF to an existing invoice.
	UploadAttachment(ctx context.Context, id int64, filename string, attachment []byte) (*Invoice, error)
	// DownloadAttachment fetches the stored attachment of an invoice.
	DownloadAttachment(ctx context.Context, invoice *Invoice) ([]byte, error)
}

// InvoiceItemsClient manages invoice line items.
type InvoiceItemsClient interface {
	CRUDClient[InvoiceItem, InvoiceItemCreate, InvoiceItemUpdate, InvoiceItemFilter]
}

// CustomFieldsClient manages custom field definitions.
type CustomFieldsClient interface {
	CRUDClient[CustomField, CustomFieldCreate, CustomFieldUpdate, CustomFieldFilter]
	RecycleBinClient[CustomField]
}

// MemberCustomFieldsClient manages custom field values attached to a
// member. The endpoint is nested under a member.
type MemberCustomFieldsClient interface {
	List(ctx context.Context, memberID int64, opts *ListOptions, filter *MemberCustomFieldFilter) (*ListResponse[MemberCustomField], error)
	GetByID(ctx context.Context, memberID, id int64, query string) (*MemberCustomField, error)
	Create(ctx context.Context, memberID int64, payload *MemberCustomFieldCreate) (*MemberCustomField, error)
	Update(ctx context.Context, memberID, id int64, payload *MemberCustomFieldUpdate) (*MemberCustomField, error)
	Delete(ctx context.Context, memberID, id int64) error

	// EnsureSet sets the value of a custom field on a member, patching
	// the existing association when one exists and creating it
	// otherwise. Needs at least two API calls.
	EnsureSet(ctx context.Context, memberID, customFieldID int64, value string) (*MemberCustomField, error)
}

// BookingsClient manages bookkeeping bookings.
type BookingsClient interface {
	CRUDClient[Booking, BookingCreate, BookingUpdate, BookingFilter]
}

// BookingProjectsClient manages bookkeeping projects.
type BookingProjectsClient interface {
	CRUDClient[BookingProject, BookingProjectCreate, BookingProjectUpdate, BookingProjectFilter]
}

// MembershipClients groups the member-centric resource clients.
type MembershipClients interface {
	Members() MembersClient
	MemberGroups() MemberGroupsClient
	MemberMemberGroups() MemberMemberGroupsClient
	ContactDetails() ContactDetailsClient
	CustomFields() CustomFieldsClient
	MemberCustomFields() MemberCustomFieldsClient
}

// AccountingClients groups the bookkeeping resource clients.
type AccountingClients interface {
	Invoices() InvoicesClient
	InvoiceItems() InvoiceItemsClient
	Bookings() BookingsClient
	BookingProjects() BookingProjectsClient
}

// Client provides access to all resource-specific clients.
type Client interface {
	MembershipClients
	AccountingClients
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a Client.
//
// # Authentication
//
// APIKey is required. It is sent on every request as
// "Authorization: <TokenScheme> <APIKey>"; TokenScheme defaults to
// "Bearer", which is what hexa.easyverein.com expects for v1.7+ keys.
//
// # Rate limiting and retries
//
// The API throttles aggressively. When a request is rejected with 429,
// the client waits the server-announced Retry-After interval and retries
// up to RetryMax times. With the retry budget exhausted, or with
// DisableRetry set, the 429 is surfaced as a RateLimitError. An
// unparsable Retry-After header is treated as zero and logged.
type Config struct {
	// APIKey: the account's API token. Required.
	APIKey string
	// BaseURL: API root. Defaults to "https://hexa.easyverein.com/api/".
	// A trailing slash is added if missing.
	BaseURL string
	// APIVersion: version path segment, e.g. "v1.7" or "v2.0". Defaults
	// to "v1.7".
	APIVersion string
	// TokenScheme: Authorization scheme. Defaults to "Bearer"; older
	// keys may need "Token".
	TokenScheme string

	// RetryMax: maximum number of rate-limit retries per request.
	// Defaults to 3; use DisableRetry to turn retries off.
	RetryMax int
	// DisableRetry: surface 429 responses immediately as RateLimitError
	// instead of waiting and retrying.
	DisableRetry bool
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Also caps the wait
	// announced via Retry-After.
	RetryWaitMax time.Duration
	// HTTPTimeout: per-request timeout applied by the underlying HTTP
	// client. Context deadlines on individual calls take precedence.
	HTTPTimeout time.Duration

	// Debug: enables verbose HTTP request/response logging when a Logger
	// is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string

	// OnTokenRefreshNeeded is invoked when the API signals, via the
	// tokenRefreshNeeded response header, that the key is close to
	// expiry. Only emitted by API v2.0 and later.
	OnTokenRefreshNeeded func()

	// Cache: optional read-through response cache configuration.
	Cache *CacheConfig
	// Interceptors: optional chain run around every request, e.g.
	// HeaderInterceptor or ThrottleInterceptor.
	Interceptors *InterceptorChain
}

// NewClient creates a new API client
// Deprecated: Use github.com/easyverein-community/go-easyverein/pkg/evclient.New instead.
func NewClient(config *Config) (Client, error) {
	return nil, ErrDeprecatedClientConstructor
}
