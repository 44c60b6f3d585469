package client

import (
	"context"
	"fmt"
	nethttp "net/http"
	"strconv"

	"github.com/easyverein-community/go-easyverein/internal/constants"
	"github.com/easyverein-community/go-easyverein/internal/http"
	"github.com/easyverein-community/go-easyverein/pkg/easyverein"
)

// recycleBinClient adds the wastebasket operations for endpoints whose
// records are soft-deleted. Restoring from the recycle bin is not part
// of the API contract and deliberately not offered.
type recycleBinClient[T any, C any, U any, F any] struct {
	crudClient[T, C, U, F]
}

func newRecycleBinClient[T any, C any, U any, F any](httpClient *http.Client, logger easyverein.Logger, endpoint string) *recycleBinClient[T, C, U, F] {
	return &recycleBinClient[T, C, U, F]{
		crudClient: crudClient[T, C, U, F]{
			httpClient: httpClient,
			logger:     logger,
			endpoint:   endpoint,
		},
	}
}

// ListDeleted implements easyverein.RecycleBinClient.ListDeleted.
func (c *recycleBinClient[T, C, U, F]) ListDeleted(ctx context.Context, opts *easyverein.ListOptions) (*easyverein.ListResponse[T], error) {
	resp, err := c.httpClient.Get(ctx, c.wastebasketPath(), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing deleted %s: %w", c.endpoint, err)
	}

	if err := expectStatus(resp, nethttp.StatusOK); err != nil {
		return nil, fmt.Errorf("listing deleted %s: %w", c.endpoint, err)
	}

	return c.decodeList(resp.Body), nil
}

// Purge implements easyverein.RecycleBinClient.Purge. Purging is
// irreversible.
func (c *recycleBinClient[T, C, U, F]) Purge(ctx context.Context, id int64) error {
	path := c.wastebasketPath() + strconv.FormatInt(id, 10) + "/"

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("purging %s %d: %w", c.endpoint, id, err)
	}

	if err := expectStatus(resp, nethttp.StatusNoContent); err != nil {
		return fmt.Errorf("purging %s %d: %w", c.endpoint, id, err)
	}

	return nil
}

// DeleteAndPurge implements easyverein.RecycleBinClient.DeleteAndPurge.
// Two sequential calls with no transactional guarantee: when the purge
// fails after a successful delete, the record stays soft-deleted.
func (c *recycleBinClient[T, C, U, F]) DeleteAndPurge(ctx context.Context, id int64) error {
	if err := c.Delete(ctx, id); err != nil {
		return err
	}

	return c.Purge(ctx, id)
}

func (c *recycleBinClient[T, C, U, F]) wastebasketPath() string {
	return "/" + constants.RecycleBinPrefix + "/" + c.endpoint + "/"
}
