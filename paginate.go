package odp

import (
	"context"
	"iter"
)

// Paginate returns a lazy sequence over every record reachable from params.
// A page is requested only when the consumer moves past the previous one.
// Iteration stops after an empty page, a page shorter than the limit, or
// the first error, which is yielded once. The sequence is single-use and
// must not be advanced from more than one goroutine.
func Paginate[T any](ctx context.Context, fetch PageFunc[T], params Params) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		offset, limit := params.Offset(), params.Limit()
		for {
			page, err := fetch(ctx, params.withPage(offset, limit))
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			for _, item := range page.Items {
				if !yield(item, nil) {
					return
				}
			}
			if len(page.Items) == 0 || len(page.Items) < limit {
				return
			}
			offset += limit
		}
	}
}
