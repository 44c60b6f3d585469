package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easyverein-community/go-easyverein/internal/client"
	"github.com/easyverein-community/go-easyverein/pkg/easyverein"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("requires API key", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&easyverein.Config{})
		require.ErrorIs(t, err, easyverein.ErrAPIKeyRequired)
	})

	t.Run("defaults base URL and version", func(t *testing.T) {
		t.Parallel()

		c, err := client.New(&easyverein.Config{APIKey: "key"})
		require.NoError(t, err)
		assert.Equal(t, "https://hexa.easyverein.com/api/v1.7", c.BaseURL())
	})

	t.Run("custom base URL and version", func(t *testing.T) {
		t.Parallel()

		c, err := client.New(&easyverein.Config{
			APIKey:     "key",
			BaseURL:    "https://verein.example.org/api/",
			APIVersion: "v2.0",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://verein.example.org/api/v2.0", c.BaseURL())
	})

	t.Run("rejects unusable cache config", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&easyverein.Config{
			APIKey: "key",
			Cache:  &easyverein.CacheConfig{Type: "redis"},
		})
		require.ErrorIs(t, err, easyverein.ErrUnsupportedCache)
	})

	t.Run("exposes all resource clients", func(t *testing.T) {
		t.Parallel()

		c, err := client.New(&easyverein.Config{APIKey: "key"})
		require.NoError(t, err)

		assert.NotNil(t, c.Members())
		assert.NotNil(t, c.MemberGroups())
		assert.NotNil(t, c.MemberMemberGroups())
		assert.NotNil(t, c.ContactDetails())
		assert.NotNil(t, c.CustomFields())
		assert.NotNil(t, c.MemberCustomFields())
		assert.NotNil(t, c.Invoices())
		assert.NotNil(t, c.InvoiceItems())
		assert.NotNil(t, c.Bookings())
		assert.NotNil(t, c.BookingProjects())
	})
}

func TestClientSendsConfiguredKey(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-key", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(easyverein.ListResponse[easyverein.Member]{})
	}))
	defer server.Close()

	c, err := client.New(&easyverein.Config{
		APIKey:     "secret-key",
		BaseURL:    server.URL + "/api/",
		APIVersion: "v1.7",
	})
	require.NoError(t, err)

	_, err = c.Members().List(context.Background(), nil, nil)
	require.NoError(t, err)
}

func TestClientLegacyTokenScheme(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Token legacy-key", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(easyverein.ListResponse[easyverein.Member]{})
	}))
	defer server.Close()

	c, err := client.New(&easyverein.Config{
		APIKey:      "legacy-key",
		TokenScheme: "Token",
		BaseURL:     server.URL + "/api/",
		APIVersion:  "v1.7",
	})
	require.NoError(t, err)

	_, err = c.Members().List(context.Background(), nil, nil)
	require.NoError(t, err)
}

func TestClientSetAPIKey(t *testing.T) {
	t.Parallel()

	var seen []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(easyverein.ListResponse[easyverein.Member]{})
	}))
	defer server.Close()

	c, err := client.New(&easyverein.Config{
		APIKey:     "first-key",
		BaseURL:    server.URL + "/api/",
		APIVersion: "v1.7",
	})
	require.NoError(t, err)

	_, err = c.Members().List(context.Background(), nil, nil)
	require.NoError(t, err)

	c.SetAPIKey("second-key")

	_, err = c.Members().List(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Bearer first-key", "Bearer second-key"}, seen)
}

func TestClientRetryDisabled(t *testing.T) {
	t.Parallel()

	var attempts int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.Header().Set("Retry-After", "0")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	c, err := client.New(&easyverein.Config{
		APIKey:       "key",
		BaseURL:      server.URL + "/api/",
		APIVersion:   "v1.7",
		DisableRetry: true,
	})
	require.NoError(t, err)

	_, err = c.Members().List(context.Background(), nil, nil)
	require.Error(t, err)
	assert.True(t, easyverein.IsRateLimited(err))
	assert.Equal(t, 1, attempts)
}

func TestClientRetryBudgetFromConfig(t *testing.T) {
	t.Parallel()

	var attempts int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.Header().Set("Retry-After", "0")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	c, err := client.New(&easyverein.Config{
		APIKey:       "key",
		BaseURL:      server.URL + "/api/",
		APIVersion:   "v1.7",
		RetryMax:     1,
		RetryWaitMin: time.Millisecond,
		RetryWaitMax: time.Millisecond,
	})
	require.NoError(t, err)

	_, err = c.Members().List(context.Background(), nil, nil)
	require.Error(t, err)
	assert.True(t, easyverein.IsRateLimited(err))
	assert.Equal(t, 2, attempts)
}

func TestClientConfiguredInterceptors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "club-sync", r.Header.Get("X-Request-Source"))
		_ = json.NewEncoder(w).Encode(easyverein.ListResponse[easyverein.Member]{})
	}))
	defer server.Close()

	var responses int

	chain := easyverein.NewInterceptorChain()
	chain.AddRequestInterceptor(easyverein.HeaderInterceptor(map[string]string{"X-Request-Source": "club-sync"}))
	chain.AddResponseInterceptor(func(ctx context.Context, req *easyverein.Request, resp *easyverein.Response) error {
		responses++

		return nil
	})

	c, err := client.New(&easyverein.Config{
		APIKey:       "key",
		BaseURL:      server.URL + "/api/",
		APIVersion:   "v1.7",
		Interceptors: chain,
	})
	require.NoError(t, err)

	_, err = c.Members().List(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, responses)
}
