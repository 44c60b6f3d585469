package client

import (
	"context"
	"fmt"

	"github.com/easyverein-community/go-easyverein/internal/http"
	"github.com/easyverein-community/go-easyverein/pkg/easyverein"
)

// nestedClient serves endpoints scoped below a member, such as
// member/{id}/custom-fields. Each call builds a CRUD client bound to
// the member's sub-path.
type nestedClient[T any, C any, U any, F any] struct {
	httpClient *http.Client
	logger     easyverein.Logger
	pattern    string
}

func newNestedClient[T any, C any, U any, F any](httpClient *http.Client, logger easyverein.Logger, pattern string) *nestedClient[T, C, U, F] {
	return &nestedClient[T, C, U, F]{
		httpClient: httpClient,
		logger:     logger,
		pattern:    pattern,
	}
}

func (c *nestedClient[T, C, U, F]) scoped(memberID int64) *crudClient[T, C, U, F] {
	return &crudClient[T, C, U, F]{
		httpClient: c.httpClient,
		logger:     c.logger,
		endpoint:   fmt.Sprintf(c.pattern, memberID),
	}
}

func (c *nestedClient[T, C, U, F]) List(ctx context.Context, memberID int64, opts *easyverein.ListOptions, filter *F) (*easyverein.ListResponse[T], error) {
	return c.scoped(memberID).List(ctx, opts, filter)
}

func (c *nestedClient[T, C, U, F]) GetByID(ctx context.Context, memberID, id int64, query string) (*T, error) {
	return c.scoped(memberID).GetByID(ctx, id, query)
}

func (c *nestedClient[T, C, U, F]) Create(ctx context.Context, memberID int64, payload *C) (*T, error) {
	return c.scoped(memberID).Create(ctx, payload)
}

func (c *nestedClient[T, C, U, F]) Update(ctx context.Context, memberID, id int64, payload *U) (*T, error) {
	return c.scoped(memberID).Update(ctx, id, payload)
}

func (c *nestedClient[T, C, U, F]) Delete(ctx context.Context, memberID, id int64) error {
	return c.scoped(memberID).Delete(ctx, id)
}
