package twittertools

import "context"

// pageFunc fetches one page into its caller's accumulator. It returns
// the number of records the page added and whether a continuation
// (next cursor, max_id, or remaining input chunk) exists.
type pageFunc func(ctx context.Context) (added int, more bool, err error)

// paginate drives every multi-page collection loop in the client:
// timeline max_id walks, follower/friend cursors, chunked lookups, and
// search next_results. It issues pages until fetch reports an error,
// an empty page, no continuation, or the request cap is reached.
// maxRequests <= 0 means no cap. The context is checked before each
// request so cancellation cuts a long collection short.
func paginate(ctx context.Context, maxRequests int, fetch pageFunc) error {
	for n := 0; maxRequests <= 0 || n < maxRequests; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		added, more, err := fetch(ctx)
		if err != nil {
			return err
		}
		if added == 0 || !more {
			return nil
		}
	}
	return nil
}
