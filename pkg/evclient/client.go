package evclient

import (
	"fmt"
	"os"
	"strings"

	"github.com/easyverein-community/go-easyverein/internal/client"
	"github.com/easyverein-community/go-easyverein/pkg/easyverein"
)

// New creates a new easyVerein API client.
func New(config *easyverein.Config) (easyverein.Client, error) {
	if config == nil {
		return nil, easyverein.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, easyverein.ErrAPIKeyRequired
	}

	if config.BaseURL != "" {
		config.BaseURL = normalizeBaseURL(config.BaseURL)
	}

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return apiClient, nil
}

// normalizeBaseURL forces an https scheme and a trailing slash so the
// version segment can be appended verbatim.
func normalizeBaseURL(baseURL string) string {
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return baseURL
}

// NewWithAPIKey creates a new client against the default API root.
func NewWithAPIKey(apiKey string) (easyverein.Client, error) {
	return New(&easyverein.Config{
		APIKey: apiKey,
	})
}

// NewFromEnv creates a new client from the EASYVEREIN_API_KEY and,
// optionally, EASYVEREIN_API_URL and EASYVEREIN_API_VERSION variables.
func NewFromEnv() (easyverein.Client, error) {
	return New(&easyverein.Config{
		APIKey:     os.Getenv("EASYVEREIN_API_KEY"),
		BaseURL:    os.Getenv("EASYVEREIN_API_URL"),
		APIVersion: os.Getenv("EASYVEREIN_API_VERSION"),
	})
}

// NewWithVersion creates a new client pinned to a specific API version,
// e.g. "v2.0".
func NewWithVersion(apiKey, version string) (easyverein.Client, error) {
	return New(&easyverein.Config{
		APIKey:     apiKey,
		APIVersion: version,
	})
}
