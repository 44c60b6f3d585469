// Package http implements the HTTP transport used by the API client. It
// wraps hashicorp/go-retryablehttp so rate-limited and transient failures
// are retried with backoff, honoring the server's Retry-After header.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/easyverein-community/go-easyverein/internal/constants"
	"github.com/easyverein-community/go-easyverein/pkg/easyverein"
)

// TokenProvider supplies the Authorization header value.
type TokenProvider interface {
	Authorization(ctx context.Context) (string, error)
}

// Request represents an API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string

	// Files holds multipart uploads keyed by form field. When set, the
	// request is sent as multipart/form-data and Body is ignored.
	Files map[string]Upload
}

// Upload is a single multipart file.
type Upload struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the HTTP transport for the API.
type Client struct {
	baseURL         string
	tokens          TokenProvider
	httpClient      *retryablehttp.Client
	logger          easyverein.Logger
	debug           bool
	userAgent       string
	cache           easyverein.Cache
	cacheTTL        time.Duration
	timeout         time.Duration
	interceptors    *easyverein.InterceptorChain
	onRefreshNeeded func()
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug and warning output.
func WithLogger(logger easyverein.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig tunes the rate-limit retry budget. A maxRetries of 0
// surfaces 429 responses immediately.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = maxRetries
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithHTTPTimeout sets the per-request timeout. Attachment uploads keep
// their own larger budget; an explicit context deadline overrides both.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithCache enables read-through caching of GET responses.
func WithCache(cache easyverein.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache

		if ttl > 0 {
			c.cacheTTL = ttl
		}
	}
}

// WithInterceptors installs an interceptor chain run around every
// request.
func WithInterceptors(chain *easyverein.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// WithTokenRefreshCallback registers the handler invoked when the server
// signals key expiry via the tokenRefreshNeeded header.
func WithTokenRefreshCallback(callback func()) Option {
	return func(c *Client) {
		c.onRefreshNeeded = callback
	}
}

// NewClient creates a transport rooted at baseURL. The base URL must
// already include the version segment.
func NewClient(baseURL string, tokens TokenProvider, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.Logger = nil
	// Exhausted retries must yield the final response so the caller can
	// classify the status instead of receiving a bare error.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		tokens:     tokens,
		httpClient: retryClient,
		cacheTTL:   constants.DefaultCacheTTL,
		timeout:    constants.DefaultHTTPTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a request and classifies the response. 404 responses are
// returned as *easyverein.NotFoundError, 429 as *easyverein.RateLimitError
// once the retry budget is exhausted, and any other non-2xx status as
// *easyverein.APIError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if _, ok := ctx.Deadline(); !ok {
		timeout := c.timeout
		if len(req.Files) > 0 {
			timeout = constants.UploadHTTPTimeout
		}

		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	fullURL := c.buildURL(req)

	if cached := c.cachedResponse(ctx, req, fullURL); cached != nil {
		return cached, nil
	}

	if err := c.runRequestInterceptors(ctx, req); err != nil {
		return nil, err
	}

	httpReq, err := c.buildRequest(ctx, req, fullURL)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": resp.StatusCode,
		})
	}

	c.checkTokenRefresh(resp)

	classifyErr := c.classify(fullURL, resp)

	c.runResponseInterceptors(ctx, req, resp, classifyErr)

	if classifyErr != nil {
		return resp, classifyErr
	}

	c.storeResponse(ctx, req, fullURL, resp)
	c.invalidate(ctx, req, fullURL)

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// GetAbsolute performs a GET against a fully qualified URL, as returned
// in pagination next links.
func (c *Client) GetAbsolute(ctx context.Context, absoluteURL string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: absoluteURL})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// Upload sends a multipart POST or PATCH with a single file attached.
func (c *Client) Upload(ctx context.Context, method, path, field string, upload Upload) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: method,
		Path:   path,
		Files:  map[string]Upload{field: upload},
	})
}

// buildURL resolves the request path against the base URL. Absolute
// paths pass through untouched.
func (c *Client) buildURL(req *Request) string {
	fullURL := req.Path
	if !strings.HasPrefix(fullURL, "http://") && !strings.HasPrefix(fullURL, "https://") {
		fullURL = c.baseURL + "/" + strings.TrimPrefix(req.Path, "/")
	}

	if len(req.Query) > 0 {
		separator := "?"
		if strings.Contains(fullURL, "?") {
			separator = "&"
		}

		fullURL += separator + req.Query.Encode()
	}

	return fullURL
}

func (c *Client) buildRequest(ctx context.Context, req *Request, fullURL string) (*retryablehttp.Request, error) {
	var (
		rawBody     []byte
		contentType string
		err         error
	)

	switch {
	case len(req.Files) > 0:
		rawBody, contentType, err = encodeMultipart(req)
		if err != nil {
			return nil, err
		}
	case req.Body != nil:
		rawBody, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		contentType = constants.ContentTypeJSON
	}

	// Raw byte bodies let retryablehttp rewind the stream on retry.
	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	httpReq.Header.Set("Accept", constants.ContentTypeJSON)

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	// The auth header always wins over caller-supplied headers.
	if c.tokens != nil {
		authorization, err := c.tokens.Authorization(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolving API token: %w", err)
		}

		httpReq.Header.Set("Authorization", authorization)
	}

	return httpReq, nil
}

func encodeMultipart(req *Request) ([]byte, string, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	for field, upload := range req.Files {
		part, err := writer.CreateFormFile(field, upload.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("creating form file: %w", err)
		}

		if _, err := part.Write(upload.Content); err != nil {
			return nil, "", fmt.Errorf("writing form file: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("finalizing multipart body: %w", err)
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}

// classify maps error statuses to the package error taxonomy.
func (c *Client) classify(fullURL string, resp *Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil

	case resp.StatusCode == http.StatusNotFound:
		return &easyverein.NotFoundError{URL: fullURL}

	case resp.StatusCode == http.StatusTooManyRequests:
		return &easyverein.RateLimitError{RetryAfter: c.retryAfter(resp)}

	default:
		return &easyverein.APIError{
			StatusCode: resp.StatusCode,
			Body:       string(resp.Body),
		}
	}
}

// retryAfter parses the Retry-After header. An unparsable value counts
// as zero and is logged.
func (c *Client) retryAfter(resp *Response) int {
	header := resp.Headers.Get("Retry-After")
	if header == "" {
		return 0
	}

	seconds, err := strconv.Atoi(header)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("unparsable Retry-After header", map[string]interface{}{
				"value": header,
			})
		}

		return 0
	}

	return seconds
}

// checkTokenRefresh fires the refresh callback when API v2.0 announces
// imminent key expiry. The server sends a Python-style "True".
func (c *Client) checkTokenRefresh(resp *Response) {
	if c.onRefreshNeeded == nil {
		return
	}

	if strings.EqualFold(resp.Headers.Get(constants.TokenRefreshHeader), "true") {
		c.onRefreshNeeded()
	}
}

func (c *Client) runRequestInterceptors(ctx context.Context, req *Request) error {
	if c.interceptors == nil {
		return nil
	}

	ireq := &easyverein.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: http.Header{},
	}
	for key, value := range req.Headers {
		ireq.Headers.Set(key, value)
	}

	if err := c.interceptors.ExecuteRequestInterceptors(ctx, ireq); err != nil {
		return err
	}

	// Interceptors may add headers.
	for key := range ireq.Headers {
		if req.Headers == nil {
			req.Headers = map[string]string{}
		}

		req.Headers[key] = ireq.Headers.Get(key)
	}

	return nil
}

func (c *Client) runResponseInterceptors(ctx context.Context, req *Request, resp *Response, respErr error) {
	if c.interceptors == nil {
		return
	}

	ireq := &easyverein.Request{Method: req.Method, Path: req.Path}
	iresp := &easyverein.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
		Error:      respErr,
	}

	if err := c.interceptors.ExecuteResponseInterceptors(ctx, ireq, iresp); err != nil && c.logger != nil {
		c.logger.Warn("response interceptor failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// cachedResponse serves cacheable GETs from the configured cache.
func (c *Client) cachedResponse(ctx context.Context, req *Request, fullURL string) *Response {
	if c.cache == nil || req.Method != http.MethodGet {
		return nil
	}

	entry, err := c.cache.Get(ctx, fullURL)
	if err != nil {
		return nil
	}

	return &Response{
		StatusCode: http.StatusOK,
		Headers:    http.Header{},
		Body:       entry.Data,
	}
}

func (c *Client) storeResponse(ctx context.Context, req *Request, fullURL string, resp *Response) {
	if c.cache == nil || req.Method != http.MethodGet {
		return
	}

	entry := &easyverein.CacheEntry{
		Data:      resp.Body,
		ExpiresAt: time.Now().Add(c.cacheTTL),
		ETag:      resp.Headers.Get("ETag"),
	}

	if err := c.cache.Set(ctx, fullURL, entry); err != nil && c.logger != nil {
		c.logger.Warn("caching response failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// invalidate drops the cached copy of a record after a successful
// mutation. List URLs carry query strings and age out via TTL instead.
func (c *Client) invalidate(ctx context.Context, req *Request, fullURL string) {
	if c.cache == nil || req.Method == http.MethodGet {
		return
	}

	if err := c.cache.Delete(ctx, fullURL); err != nil && c.logger != nil {
		c.logger.Warn("invalidating cached response failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
