package twittertools

import (
	"fmt"
	"net/url"
	"strings"
)

// parseNextResults converts search_metadata.next_results, e.g.
// "?max_id=313519052523986943&q=NCAA&include_entities=1", into request
// parameters for the following search page.
func parseNextResults(next string) (url.Values, error) {
	params, err := url.ParseQuery(strings.TrimPrefix(next, "?"))
	if err != nil {
		return nil, fmt.Errorf("parse next_results %q: %w", next, err)
	}
	return params, nil
}

// minTweetID returns the smallest tweet ID on a page, used to set the
// max_id parameter for the next timeline request. Returns 0 for an
// empty page.
func minTweetID(page []Tweet) int64 {
	if len(page) == 0 {
		return 0
	}
	min := page[0].ID
	for _, t := range page[1:] {
		if t.ID < min {
			min = t.ID
		}
	}
	return min
}

// joinInt64s renders ids as the comma-separated list the lookup
// endpoints expect.
func joinInt64s(ids []int64) string {
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", id)
	}
	return b.String()
}
