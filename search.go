package twittertools

import (
	"context"
	"net/url"
	"strconv"
)

// searchPageSize is the API maximum per search request.
const searchPageSize = 100

// defaultSearchRequests bounds a search when the caller passes no cap.
const defaultSearchRequests = 5

// SearchTweets collects tweets matching query across up to maxRequests
// successive search calls, following search_metadata.next_results. The
// collection stops early when a page comes back empty or carries no
// continuation. maxRequests <= 0 uses a default of 5. Search covers a
// sampling of roughly the last 7 days and favors relevance over
// completeness.
func (c *Client) SearchTweets(ctx context.Context, query string, maxRequests int) ([]Tweet, error) {
	if maxRequests <= 0 {
		maxRequests = defaultSearchRequests
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("count", strconv.Itoa(searchPageSize))

	var tweets []Tweet
	err := paginate(ctx, maxRequests, func(ctx context.Context) (int, bool, error) {
		var page searchResponse
		if err := c.get(ctx, "SearchTweets", params, &page); err != nil {
			return 0, false, err
		}
		tweets = append(tweets, page.Statuses...)

		if page.SearchMetadata.NextResults == "" {
			return len(page.Statuses), false, nil
		}
		next, err := parseNextResults(page.SearchMetadata.NextResults)
		if err != nil {
			return len(page.Statuses), false, err
		}
		params = next
		return len(page.Statuses), true, nil
	})
	return tweets, err
}
