package constants

import "time"

// API endpoint defaults.
const (
	// DefaultBaseURL is the hosted API root.
	DefaultBaseURL = "https://hexa.easyverein.com/api/"

	// DefaultAPIVersion is the version segment appended to the base URL.
	DefaultAPIVersion = "v1.7"

	// APIVersionV2 supports the tokenRefreshNeeded response header.
	APIVersionV2 = "v2.0"

	// DefaultTokenScheme is the Authorization scheme for current API keys.
	DefaultTokenScheme = "Bearer"

	// LegacyTokenScheme is accepted for keys issued before v1.7.
	LegacyTokenScheme = "Token"

	// TokenRefreshHeader is set by API v2.0 responses when the key is
	// close to expiry.
	TokenRefreshHeader = "tokenRefreshNeeded"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// UploadHTTPTimeout is used for attachment uploads.
	UploadHTTPTimeout = 120 * time.Second
)

// Retry limits for rate-limited requests.
const (
	// DefaultRetryMax is the default maximum number of retries after a
	// 429 response.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax caps the wait between retries, including
	// server-announced Retry-After intervals.
	DefaultRetryWaitMax = 90 * time.Second
)

// Pagination limits.
const (
	// DefaultPageSize is the page size used when none is requested.
	DefaultPageSize = 10

	// MaxPages bounds next-link following to prevent infinite loops on
	// a misbehaving server.
	MaxPages = 1000
)

// Cache defaults.
const (
	// DefaultCacheTTL is the default cache time-to-live.
	DefaultCacheTTL = 60 * time.Second
)

// Wire format constants.
const (
	// RecycleBinPrefix is the path namespace for soft-deleted records.
	RecycleBinPrefix = "wastebasket"

	// AttachmentField is the multipart form field for invoice uploads.
	AttachmentField = "path"

	// ContentTypeJSON is the JSON content type.
	ContentTypeJSON = "application/json"

	// ContentTypePDF is the content type for invoice attachments.
	ContentTypePDF = "application/pdf"
)

// Display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// StringTruncationLength is the default length for truncating strings.
	StringTruncationLength = 80
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for tabular output format.
	FormatTable = "table"
)
