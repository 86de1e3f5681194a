package gumroad

import "context"

// PageFetcher fetches one page of results. It returns the page's items in
// server order and the next_page_url value from the response; an empty
// nextPageURL terminates pagination. The first call receives page 1.
type PageFetcher[T any] func(ctx context.Context, page int) (items []T, nextPageURL string, err error)

// PaginationOptions controls pagination helpers.
type PaginationOptions struct {
	// MaxPages caps how many pages are fetched. Zero means no cap.
	MaxPages int
	// StartPage is the first page to request. Zero means page 1.
	StartPage int
}

// DefaultPaginationOptions returns the default pagination options.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{}
}

// PageIterator iterates over paginated results one item at a time, fetching
// pages lazily. It is not safe for concurrent use.
type PageIterator[T any] struct {
	ctx     context.Context
	fetch   PageFetcher[T]
	page    int
	items   []T
	index   int
	started bool
	done    bool
	err     error
}

// NewPageIterator creates an iterator over the pages produced by fetch.
func NewPageIterator[T any](ctx context.Context, fetch PageFetcher[T]) *PageIterator[T] {
	return &PageIterator[T]{
		ctx:   ctx,
		fetch: fetch,
		page:  1,
	}
}

// HasNext reports whether another item is available. It fetches pages until
// one yields an item or the cursor runs out, so empty pages in the middle of
// the sequence are skipped; a fetch error is surfaced by Next.
func (it *PageIterator[T]) HasNext() bool {
	if it.err != nil {
		return true // let Next surface the error
	}

	if it.index < len(it.items) {
		return true
	}

	for !it.done {
		it.fetchNext()

		if it.err != nil || it.index < len(it.items) {
			return true
		}
	}

	return false
}

// Next returns the next item. It returns ErrNoMoreItems when the sequence is
// exhausted.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	if !it.HasNext() {
		return zero, ErrNoMoreItems
	}

	if it.err != nil {
		err := it.err
		it.err = nil
		it.done = true

		return zero, err
	}

	item := it.items[it.index]
	it.index++

	return item, nil
}

// All collects every remaining item across all remaining pages.
func (it *PageIterator[T]) All() ([]T, error) {
	var all []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return nil, err
		}

		all = append(all, item)
	}

	return all, nil
}

// ForEach invokes fn for every remaining item, stopping on the first error.
func (it *PageIterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

func (it *PageIterator[T]) fetchNext() {
	if it.started {
		it.page++
	}

	it.started = true

	items, nextPageURL, err := it.fetch(it.ctx, it.page)
	if err != nil {
		it.err = err

		return
	}

	it.items = items
	it.index = 0

	// Missing, null, and empty next_page_url all decode to "" and terminate.
	if nextPageURL == "" {
		it.done = true
	}
}

// FetchAllPages fetches every page sequentially and concatenates the items in
// request order. A failure on any page discards items from earlier pages and
// surfaces the error.
func FetchAllPages[T any](ctx context.Context, fetch PageFetcher[T], opts *PaginationOptions) ([]T, error) {
	if opts == nil {
		opts = DefaultPaginationOptions()
	}

	page := opts.StartPage
	if page < 1 {
		page = 1
	}

	var all []T

	for fetched := 0; ; fetched++ {
		if opts.MaxPages > 0 && fetched >= opts.MaxPages {
			return all, nil
		}

		items, nextPageURL, err := fetch(ctx, page)
		if err != nil {
			return nil, err
		}

		all = append(all, items...)

		if nextPageURL == "" {
			return all, nil
		}

		page++
	}
}
