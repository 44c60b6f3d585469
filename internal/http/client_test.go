package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	evhttp "github.com/easyverein-community/go-easyverein/internal/http"
	"github.com/easyverein-community/go-easyverein/pkg/easyverein"
)

// staticTokens is a minimal TokenProvider for tests.
type staticTokens struct {
	value string
	err   error
}

func (p *staticTokens) Authorization(_ context.Context) (string, error) {
	return p.value, p.err
}

// recordingLogger captures log calls for assertions.
type recordingLogger struct {
	logs []map[string]interface{}
}

func (l *recordingLogger) record(level, msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	l.record("debug", msg, fields)
}
func (l *recordingLogger) Info(msg string, fields map[string]interface{}) {
	l.record("info", msg, fields)
}
func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.record("warn", msg, fields)
}
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.record("error", msg, fields)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClientDo(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/member/", request.URL.Path)
			assert.Equal(t, http.MethodGet, request.Method)
			assert.Equal(t, "Bearer test-key", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			response := map[string]interface{}{"count": 1, "results": []map[string]int64{{"id": 7}}}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := evhttp.NewClient(server.URL, &staticTokens{value: "Bearer test-key"})

		resp, err := client.Get(context.Background(), "/member/", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result map[string]interface{}

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.InEpsilon(t, 1.0, result["count"], 0.001)
	})

	t.Run("query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/member/", request.URL.Path)
			assert.Equal(t, "limit=50&page=2", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := evhttp.NewClient(server.URL, nil)

		query := url.Values{"limit": []string{"50"}, "page": []string{"2"}}
		resp, err := client.Get(context.Background(), "/member/", query)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("json body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodPost, request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "R-2026-001", body["invoiceNumber"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := evhttp.NewClient(server.URL, nil)

		resp, err := client.Post(context.Background(), "/invoice/", map[string]string{"invoiceNumber": "R-2026-001"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := evhttp.NewClient(server.URL, nil)

		resp, err := client.Get(context.Background(), "/member/999999/", nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		notFound := &easyverein.NotFoundError{}
		require.ErrorAs(t, err, &notFound)
		assert.Contains(t, notFound.URL, "/member/999999/")
	})

	t.Run("unexpected status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusBadRequest)
			_, _ = writer.Write([]byte(`{"invoiceNumber":["required"]}`))
		}))
		defer server.Close()

		client := evhttp.NewClient(server.URL, nil)

		_, err := client.Post(context.Background(), "/invoice/", map[string]string{})
		require.Error(t, err)

		apiErr := &easyverein.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Contains(t, apiErr.Body, "invoiceNumber")
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := evhttp.NewClient(server.URL, nil)

		req := &evhttp.Request{
			Method: http.MethodGet,
			Path:   "/member/",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]int{"count": 0})
		}))
		defer server.Close()

		logger := &recordingLogger{}
		client := evhttp.NewClient(server.URL, nil, evhttp.WithLogger(logger), evhttp.WithDebug(true))

		_, err := client.Get(context.Background(), "/member/", nil)
		require.NoError(t, err)

		// One line for the request, one for the response.
		require.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})

	t.Run("token provider failure aborts before sending", func(t *testing.T) {
		t.Parallel()

		called := false

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			called = true

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := evhttp.NewClient(server.URL, &staticTokens{err: errors.New("no API token available")})

		_, err := client.Get(context.Background(), "/member/", nil)
		require.Error(t, err)
		assert.False(t, called)
	})
}

func TestClientGetAbsolute(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1.7/member/", request.URL.Path)
		assert.Equal(t, "page=2", request.URL.RawQuery)
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	// A different base URL proves absolute next links bypass it.
	client := evhttp.NewClient("https://hexa.easyverein.com/api/v1.7", nil)

	resp, err := client.GetAbsolute(context.Background(), server.URL+"/api/v1.7/member/?page=2")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClientUpload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodPatch, request.Method)
		assert.Contains(t, request.Header.Get("Content-Type"), "multipart/form-data")

		require.NoError(t, request.ParseMultipartForm(1<<20))

		file, header, err := request.FormFile("path")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()

		assert.Equal(t, "invoice.pdf", header.Filename)

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4 fake", string(content))

		writer.WriteHeader(http.StatusOK)
		_, _ = writer.Write([]byte(`{"id": 42, "path": "https://cdn.example.com/invoice.pdf"}`))
	}))
	defer server.Close()

	client := evhttp.NewClient(server.URL, nil)

	upload := evhttp.Upload{
		Filename:    "invoice.pdf",
		ContentType: "application/pdf",
		Content:     []byte("%PDF-1.4 fake"),
	}

	resp, err := client.Upload(context.Background(), http.MethodPatch, "/invoice/42/", "path", upload)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClientRetryLogic(t *testing.T) {
	t.Parallel()
	t.Run("retries after rate limiting", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			if attempts.Add(1) == 1 {
				writer.Header().Set("Retry-After", "0")
				writer.WriteHeader(http.StatusTooManyRequests)

				return
			}

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := evhttp.NewClient(server.URL, nil,
			evhttp.WithRetryConfig(3, 10*time.Millisecond, 50*time.Millisecond))

		resp, err := client.Get(context.Background(), "/member/", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int32(2), attempts.Load())
	})

	t.Run("exhausted budget surfaces rate limit error", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			attempts.Add(1)
			writer.Header().Set("Retry-After", "0")
			writer.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := evhttp.NewClient(server.URL, nil,
			evhttp.WithRetryConfig(1, 10*time.Millisecond, 50*time.Millisecond))

		resp, err := client.Get(context.Background(), "/member/", nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
		assert.Equal(t, int32(2), attempts.Load())
		assert.True(t, easyverein.IsRateLimited(err))
	})

	t.Run("zero budget surfaces immediately", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			attempts.Add(1)
			writer.Header().Set("Retry-After", "30")
			writer.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := evhttp.NewClient(server.URL, nil,
			evhttp.WithRetryConfig(0, 10*time.Millisecond, 50*time.Millisecond))

		_, err := client.Get(context.Background(), "/member/", nil)
		require.Error(t, err)
		assert.Equal(t, int32(1), attempts.Load())

		rateLimited := &easyverein.RateLimitError{}
		require.ErrorAs(t, err, &rateLimited)
		assert.Equal(t, 30, rateLimited.RetryAfter)
	})

	t.Run("does not retry client errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := evhttp.NewClient(server.URL, nil,
			evhttp.WithRetryConfig(3, 10*time.Millisecond, 50*time.Millisecond))

		_, err := client.Get(context.Background(), "/member/", nil)
		require.Error(t, err)
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("unparsable Retry-After counts as zero", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.Header().Set("Retry-After", "soon")
			writer.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		logger := &recordingLogger{}
		client := evhttp.NewClient(server.URL, nil,
			evhttp.WithLogger(logger),
			evhttp.WithRetryConfig(0, 10*time.Millisecond, 50*time.Millisecond))

		_, err := client.Get(context.Background(), "/member/", nil)
		require.Error(t, err)

		rateLimited := &easyverein.RateLimitError{}
		require.ErrorAs(t, err, &rateLimited)
		assert.Equal(t, 0, rateLimited.RetryAfter)

		require.NotEmpty(t, logger.logs)
		assert.Equal(t, "unparsable Retry-After header", logger.logs[len(logger.logs)-1]["msg"])
	})
}

func TestClientTokenRefreshCallback(t *testing.T) {
	t.Parallel()

	// The API spells booleans the Python way: "True" fires the
	// callback, an explicit "False" must not.
	tests := []struct {
		name        string
		header      string
		wantRefresh bool
	}{
		{name: "announced expiry", header: "True", wantRefresh: true},
		{name: "explicit false", header: "False", wantRefresh: false},
		{name: "absent header", header: "", wantRefresh: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
				if tt.header != "" {
					writer.Header().Set("tokenRefreshNeeded", tt.header)
				}

				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			refreshed := false
			client := evhttp.NewClient(server.URL, nil, evhttp.WithTokenRefreshCallback(func() {
				refreshed = true
			}))

			_, err := client.Get(context.Background(), "/member/", nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRefresh, refreshed)
		})
	}
}

func TestClientCacheReadThrough(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_ = json.NewEncoder(writer).Encode(map[string]int{"count": 3})
	}))
	defer server.Close()

	cache := easyverein.NewMemoryCache(0)
	client := evhttp.NewClient(server.URL, nil, evhttp.WithCache(cache, time.Minute))

	first, err := client.Get(context.Background(), "/member/", nil)
	require.NoError(t, err)

	second, err := client.Get(context.Background(), "/member/", nil)
	require.NoError(t, err)

	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, first.Body, second.Body)

	// Writes bypass the cache entirely.
	_, err = client.Post(context.Background(), "/member/", map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestClientCacheInvalidatedOnMutation(t *testing.T) {
	t.Parallel()

	var gets atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.Method == http.MethodGet {
			gets.Add(1)
		}

		_ = json.NewEncoder(writer).Encode(map[string]int64{"id": 7})
	}))
	defer server.Close()

	cache := easyverein.NewMemoryCache(0)
	client := evhttp.NewClient(server.URL, nil, evhttp.WithCache(cache, time.Minute))

	_, err := client.Get(context.Background(), "/member/7", nil)
	require.NoError(t, err)

	_, err = client.Patch(context.Background(), "/member/7", map[string]string{"membershipNumber": "M-1"})
	require.NoError(t, err)

	// The PATCH dropped the cached record, so this hits the server.
	_, err = client.Get(context.Background(), "/member/7", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(2), gets.Load())
}

func TestClientCacheSkipsErrorResponses(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		writer.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	cache := easyverein.NewMemoryCache(0)
	client := evhttp.NewClient(server.URL, nil, evhttp.WithCache(cache, time.Minute))

	_, err := client.Get(context.Background(), "/member/1/", nil)
	require.Error(t, err)

	_, err = client.Get(context.Background(), "/member/1/", nil)
	require.Error(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestClientInterceptors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "sync-job", request.Header.Get("X-Request-Source"))
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	chain := easyverein.NewInterceptorChain()
	chain.AddRequestInterceptor(easyverein.HeaderInterceptor(map[string]string{
		"X-Request-Source": "sync-job",
	}))

	responses := 0
	chain.AddResponseInterceptor(func(_ context.Context, _ *easyverein.Request, resp *easyverein.Response) error {
		responses++

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		return nil
	})

	client := evhttp.NewClient(server.URL, nil, evhttp.WithInterceptors(chain))

	_, err := client.Get(context.Background(), "/member/", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, responses)
}

func TestClientTimeouts(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		writer.WriteHeader(http.StatusOK)
		_, _ = writer.Write([]byte(`{"id": 42}`))
	}))
	defer server.Close()

	client := evhttp.NewClient(server.URL, nil, evhttp.WithHTTPTimeout(50*time.Millisecond))

	// Plain requests run out of time against the slow server.
	_, err := client.Get(context.Background(), "/member/", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// Uploads carry their own larger budget.
	upload := evhttp.Upload{
		Filename:    "invoice.pdf",
		ContentType: "application/pdf",
		Content:     []byte("%PDF-1.4 fake"),
	}

	resp, err := client.Upload(context.Background(), http.MethodPatch, "/invoice/42/", "path", upload)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// An explicit deadline on the context wins over both.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = client.Upload(ctx, http.MethodPatch, "/invoice/42/", "path", upload)
	require.Error(t, err)
}
