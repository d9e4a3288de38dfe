package twittertools

import (
	"context"
	"net/url"
	"strconv"
)

// timelinePageSize is the API maximum per timeline request.
const timelinePageSize = 200

// TimelineOptions bounds a timeline collection. Zero values mean
// "as much as the API will give" — the API itself caps lookback at
// roughly the most recent 3200 tweets.
type TimelineOptions struct {
	// MaxTweets caps the total number of tweets collected.
	MaxTweets int

	// MaxRequests caps the number of HTTP requests issued.
	MaxRequests int
}

// HomeTimeline collects the most recent tweets and retweets posted by
// the authenticating user and the accounts they follow.
func (c *Client) HomeTimeline(ctx context.Context, opts TimelineOptions) ([]Tweet, error) {
	return c.collectTimeline(ctx, "HomeTimeline", "", opts)
}

// UserTimeline collects the most recent tweets posted by screenName,
// or by the authenticated user when screenName is empty.
func (c *Client) UserTimeline(ctx context.Context, screenName string, opts TimelineOptions) ([]Tweet, error) {
	return c.collectTimeline(ctx, "UserTimeline", screenName, opts)
}

// UserFavorites collects the most recent tweets favorited by
// screenName, or by the authenticated user when screenName is empty.
func (c *Client) UserFavorites(ctx context.Context, screenName string, opts TimelineOptions) ([]Tweet, error) {
	return c.collectTimeline(ctx, "FavoritesList", screenName, opts)
}

// collectTimeline walks a timeline backwards with a decreasing max_id
// cursor. On error the tweets collected so far are returned alongside
// it; a first-page failure therefore yields an empty slice and the
// error, never a silent partial result.
func (c *Client) collectTimeline(ctx context.Context, operation, screenName string, opts TimelineOptions) ([]Tweet, error) {
	var tweets []Tweet
	var maxID int64
	var paged bool

	err := paginate(ctx, opts.MaxRequests, func(ctx context.Context) (int, bool, error) {
		count := timelinePageSize
		if opts.MaxTweets > 0 && opts.MaxTweets-len(tweets) < count {
			count = opts.MaxTweets - len(tweets)
		}

		params := url.Values{}
		params.Set("count", strconv.Itoa(count))
		if screenName != "" {
			params.Set("screen_name", screenName)
		}
		if paged {
			params.Set("max_id", strconv.FormatInt(maxID, 10))
		}

		var page []Tweet
		if err := c.get(ctx, operation, params, &page); err != nil {
			return 0, false, err
		}
		if len(page) == 0 {
			return 0, false, nil
		}

		tweets = append(tweets, page...)
		maxID = minTweetID(page) - 1
		paged = true

		more := opts.MaxTweets <= 0 || len(tweets) < opts.MaxTweets
		return len(page), more, nil
	})
	return tweets, err
}
