package client

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"strconv"

	"github.com/easyverein-community/go-easyverein/internal/constants"
	"github.com/easyverein-community/go-easyverein/internal/http"
	"github.com/easyverein-community/go-easyverein/pkg/easyverein"
)

// crudClient implements the generic CRUD operation set for one endpoint.
// Every resource client is built from one of these, parametrized by the
// endpoint's record, create, update and filter types.
type crudClient[T any, C any, U any, F any] struct {
	httpClient *http.Client
	logger     easyverein.Logger
	endpoint   string
}

func newCRUDClient[T any, C any, U any, F any](httpClient *http.Client, logger easyverein.Logger, endpoint string) *crudClient[T, C, U, F] {
	return &crudClient[T, C, U, F]{
		httpClient: httpClient,
		logger:     logger,
		endpoint:   endpoint,
	}
}

// List implements easyverein.CRUDClient.List.
func (c *crudClient[T, C, U, F]) List(ctx context.Context, opts *easyverein.ListOptions, filter *F) (*easyverein.ListResponse[T], error) {
	values := opts.ToValues()

	if filter != nil {
		filterValues, err := easyverein.EncodeFilter(filter)
		if err != nil {
			return nil, fmt.Errorf("flattening %s filter: %w", c.endpoint, err)
		}

		easyverein.MergeValues(values, filterValues)
	}

	resp, err := c.httpClient.Get(ctx, "/"+c.endpoint+"/", values)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.endpoint, err)
	}

	if err := expectStatus(resp, nethttp.StatusOK); err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.endpoint, err)
	}

	return c.decodeList(resp.Body), nil
}

// ListAll implements easyverein.CRUDClient.ListAll. It follows next
// links sequentially; the returned count is derived from the accumulated
// results, not the per-page server counts.
func (c *crudClient[T, C, U, F]) ListAll(ctx context.Context, opts *easyverein.ListOptions, filter *F) (*easyverein.ListResponse[T], error) {
	if opts == nil {
		opts = easyverein.NewListOptions().WithLimit(constants.DefaultPageSize)
	}

	page, err := c.List(ctx, opts, filter)
	if err != nil {
		return nil, err
	}

	items := page.Results

	next := page.Next
	for pages := 1; next != nil && pages < constants.MaxPages; pages++ {
		resp, err := c.httpClient.GetAbsolute(ctx, *next)
		if err != nil {
			return nil, fmt.Errorf("listing %s page %d: %w", c.endpoint, pages+1, err)
		}

		if err := expectStatus(resp, nethttp.StatusOK); err != nil {
			return nil, fmt.Errorf("listing %s page %d: %w", c.endpoint, pages+1, err)
		}

		page = c.decodeList(resp.Body)
		items = append(items, page.Results...)
		next = page.Next
	}

	return &easyverein.ListResponse[T]{Count: len(items), Results: items}, nil
}

// Get implements easyverein.CRUDClient.Get.
func (c *crudClient[T, C, U, F]) Get(ctx context.Context, filter *F) (*T, error) {
	list, err := c.List(ctx, nil, filter)
	if err != nil {
		return nil, err
	}

	if len(list.Results) == 0 {
		return nil, &easyverein.NotFoundError{URL: "/" + c.endpoint + "/"}
	}

	if len(list.Results) > 1 {
		c.warn("filter matched multiple records, returning the first", map[string]interface{}{
			"endpoint": c.endpoint,
			"matches":  len(list.Results),
		})
	}

	return &list.Results[0], nil
}

// GetByID implements easyverein.CRUDClient.GetByID.
func (c *crudClient[T, C, U, F]) GetByID(ctx context.Context, id int64, query string) (*T, error) {
	values := easyverein.NewListOptions().WithQuery(query).ToValues()

	resp, err := c.httpClient.Get(ctx, c.objectPath(id), values)
	if err != nil {
		return nil, fmt.Errorf("getting %s %d: %w", c.endpoint, id, err)
	}

	if err := expectStatus(resp, nethttp.StatusOK); err != nil {
		return nil, fmt.Errorf("getting %s %d: %w", c.endpoint, id, err)
	}

	return c.decodeOne(resp.Body), nil
}

// Create implements easyverein.CRUDClient.Create.
func (c *crudClient[T, C, U, F]) Create(ctx context.Context, payload *C) (*T, error) {
	resp, err := c.httpClient.Post(ctx, "/"+c.endpoint+"/", payload)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.endpoint, err)
	}

	if err := expectStatus(resp, nethttp.StatusCreated); err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.endpoint, err)
	}

	return c.decodeObject(resp.Body), nil
}

// Update implements easyverein.CRUDClient.Update.
func (c *crudClient[T, C, U, F]) Update(ctx context.Context, id int64, payload *U) (*T, error) {
	resp, err := c.httpClient.Patch(ctx, c.objectPath(id), payload)
	if err != nil {
		return nil, fmt.Errorf("updating %s %d: %w", c.endpoint, id, err)
	}

	if err := expectStatus(resp, nethttp.StatusOK); err != nil {
		return nil, fmt.Errorf("updating %s %d: %w", c.endpoint, id, err)
	}

	return c.decodeObject(resp.Body), nil
}

// Delete implements easyverein.CRUDClient.Delete. The record moves to
// the endpoint's recycle bin where the API supports one.
func (c *crudClient[T, C, U, F]) Delete(ctx context.Context, id int64) error {
	resp, err := c.httpClient.Delete(ctx, c.objectPath(id))
	if err != nil {
		return fmt.Errorf("deleting %s %d: %w", c.endpoint, id, err)
	}

	if err := expectStatus(resp, nethttp.StatusNoContent); err != nil {
		return fmt.Errorf("deleting %s %d: %w", c.endpoint, id, err)
	}

	return nil
}

// Iterate implements easyverein.CRUDClient.Iterate.
func (c *crudClient[T, C, U, F]) Iterate(_ context.Context, opts *easyverein.ListOptions, filter *F) *easyverein.Iterator[T] {
	return easyverein.NewIterator(func(ctx context.Context, next *string) (*easyverein.ListResponse[T], error) {
		if next == nil {
			return c.List(ctx, opts, filter)
		}

		resp, err := c.httpClient.GetAbsolute(ctx, *next)
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", c.endpoint, err)
		}

		if err := expectStatus(resp, nethttp.StatusOK); err != nil {
			return nil, fmt.Errorf("listing %s: %w", c.endpoint, err)
		}

		return c.decodeList(resp.Body), nil
	})
}

func (c *crudClient[T, C, U, F]) objectPath(id int64) string {
	return "/" + c.endpoint + "/" + strconv.FormatInt(id, 10)
}

// decodeList normalizes a list body. The API wraps results in a
// {results, count, next} envelope; bare arrays returned by a few older
// endpoints are accepted too. An unparsable 2xx body is logged and
// treated as empty rather than failing the call.
func (c *crudClient[T, C, U, F]) decodeList(body []byte) *easyverein.ListResponse[T] {
	empty := &easyverein.ListResponse[T]{Results: []T{}}

	if len(body) == 0 {
		return empty
	}

	if body[0] == '[' {
		var results []T
		if err := json.Unmarshal(body, &results); err != nil {
			c.warnParse(err)

			return empty
		}

		return &easyverein.ListResponse[T]{Count: len(results), Results: results}
	}

	var list easyverein.ListResponse[T]
	if err := json.Unmarshal(body, &list); err != nil {
		c.warnParse(err)

		return empty
	}

	if list.Results == nil {
		list.Results = []T{}
	}

	return &list
}

// decodeOne parses a single-record body. If the server unexpectedly
// answers an id lookup with an envelope holding several records, a
// warning is logged and the first record is returned.
func (c *crudClient[T, C, U, F]) decodeOne(body []byte) *T {
	var envelope easyverein.ListResponse[T]
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Results) > 0 {
		if len(envelope.Results) > 1 {
			c.warn("id lookup returned multiple records, returning the first", map[string]interface{}{
				"endpoint": c.endpoint,
				"matches":  len(envelope.Results),
			})
		}

		return &envelope.Results[0]
	}

	return c.decodeObject(body)
}

// decodeObject parses a record body, tolerating empty and unparsable
// payloads on successful responses.
func (c *crudClient[T, C, U, F]) decodeObject(body []byte) *T {
	if len(body) == 0 {
		return nil
	}

	var record T
	if err := json.Unmarshal(body, &record); err != nil {
		c.warnParse(err)

		return nil
	}

	return &record
}

func (c *crudClient[T, C, U, F]) warnParse(err error) {
	c.warn("unparsable response body on successful status, treating as empty", map[string]interface{}{
		"endpoint": c.endpoint,
		"error":    err.Error(),
	})
}

func (c *crudClient[T, C, U, F]) warn(msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.Warn(msg, fields)
	}
}

// expectStatus verifies the exact success status of a mutating call.
// The transport already rejects non-2xx responses, so a mismatch here
// means the server answered with an unexpected success variant.
func expectStatus(resp *http.Response, want int) error {
	if resp.StatusCode == want {
		return nil
	}

	return &easyverein.APIError{
		StatusCode: resp.StatusCode,
		Expected:   want,
		Body:       string(resp.Body),
	}
}
