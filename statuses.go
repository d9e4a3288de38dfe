package twittertools

import (
	"context"
	"net/url"
)

// TweetsByID fetches the tweets with the given IDs, 100 per request.
// The API deduplicates the input and does not guarantee output order;
// deleted or protected tweets are silently dropped from the result.
func (c *Client) TweetsByID(ctx context.Context, ids []int64) ([]Tweet, error) {
	var tweets []Tweet
	rest := ids

	err := paginate(ctx, 0, func(ctx context.Context) (int, bool, error) {
		if len(rest) == 0 {
			return 0, false, nil
		}
		chunk := rest
		if len(chunk) > lookupChunkSize {
			chunk = chunk[:lookupChunkSize]
		}

		params := url.Values{}
		params.Set("id", joinInt64s(chunk))

		var page []Tweet
		if err := c.get(ctx, "StatusesLookup", params, &page); err != nil {
			return 0, false, err
		}
		rest = rest[len(chunk):]
		if len(page) == 0 {
			return 0, false, nil
		}
		tweets = append(tweets, page...)
		return len(page), len(rest) > 0, nil
	})
	return tweets, err
}

// PostStatusUpdate posts a tweet and returns the created record. A
// platform rejection — duplicate content included — is an explicit
// *APIError; check DuplicateStatus on it rather than looking for a nil
// result.
func (c *Client) PostStatusUpdate(ctx context.Context, text string) (*Tweet, error) {
	params := url.Values{}
	params.Set("status", text)

	var tweet Tweet
	if err := c.get(ctx, "StatusesUpdate", params, &tweet); err != nil {
		return nil, err
	}
	return &tweet, nil
}
