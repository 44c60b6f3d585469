package easyverein

import "context"

// PageFunc fetches a single page. A nil next pointer requests the first
// page; otherwise next is the absolute URL returned by the previous page.
type PageFunc[T any] func(ctx context.Context, next *string) (*ListResponse[T], error)

// Iterator walks a paginated listing page by page, following the next
// links the API returns.
type Iterator[T any] struct {
	fetch   PageFunc[T]
	next    *string
	started bool
	done    bool
}

// NewIterator creates an iterator positioned before the first page.
func NewIterator[T any](fetch PageFunc[T]) *Iterator[T] {
	return &Iterator[T]{fetch: fetch}
}

// HasNext reports whether another page is available.
func (it *Iterator[T]) HasNext() bool {
	if !it.started {
		return true
	}

	return !it.done
}

// Next fetches the next page. It returns ErrIteratorExhausted once the
// listing has been consumed.
func (it *Iterator[T]) Next(ctx context.Context) (*ListResponse[T], error) {
	if !it.HasNext() {
		return nil, ErrIteratorExhausted
	}

	page, err := it.fetch(ctx, it.next)
	if err != nil {
		return nil, err
	}

	it.started = true
	it.next = page.Next
	it.done = page.Next == nil

	return page, nil
}

// All drains the iterator and returns every remaining item in order.
func (it *Iterator[T]) All(ctx context.Context) ([]T, error) {
	var items []T

	for it.HasNext() {
		page, err := it.Next(ctx)
		if err != nil {
			return nil, err
		}

		items = append(items, page.Results...)
	}

	return items, nil
}

// ForEach calls fn for every remaining item. Iteration stops at the first
// error returned by fn.
func (it *Iterator[T]) ForEach(ctx context.Context, fn func(item T) error) error {
	for it.HasNext() {
		page, err := it.Next(ctx)
		if err != nil {
			return err
		}

		for _, item := range page.Results {
			if err := fn(item); err != nil {
				return err
			}
		}
	}

	return nil
}

// FetchAll collects every page of a listing into a single response. Count
// reflects the number of accumulated items, not the server-reported total.
func FetchAll[T any](ctx context.Context, fetch PageFunc[T]) (*ListResponse[T], error) {
	items, err := NewIterator(fetch).All(ctx)
	if err != nil {
		return nil, err
	}

	return &ListResponse[T]{Count: len(items), Results: items}, nil
}

// StreamPages sends each page to a channel, closing it when the listing is
// exhausted or the context is cancelled. Fetch errors terminate the stream
// silently; callers needing errors should use Iterator directly.
func StreamPages[T any](ctx context.Context, fetch PageFunc[T]) <-chan *ListResponse[T] {
	pages := make(chan *ListResponse[T])

	go func() {
		defer close(pages)

		it := NewIterator(fetch)
		for it.HasNext() {
			page, err := it.Next(ctx)
			if err != nil {
				return
			}

			select {
			case pages <- page:
			case <-ctx.Done():
				return
			}
		}
	}()

	return pages
}
