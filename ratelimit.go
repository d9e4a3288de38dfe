package twittertools

import (
	"context"
	"fmt"
	"net/url"
)

// RateLimits fetches the authenticated user's current rate limit
// snapshot. With no filter arguments the full snapshot is returned.
// One argument restricts the snapshot to that API family (e.g.
// "search"); a second argument further restricts it to one endpoint
// path (e.g. "/search/tweets"). Filtering on an unknown family or
// endpoint yields an empty snapshot, not an error.
//
// The snapshot is fetched fresh on every call; nothing is cached.
func (c *Client) RateLimits(ctx context.Context, filter ...string) (RateLimitSnapshot, error) {
	if len(filter) > 2 {
		return nil, fmt.Errorf("rate limits: at most two filter arguments (family, endpoint), got %d", len(filter))
	}

	params := url.Values{}
	if len(filter) > 0 && filter[0] != "" {
		params.Set("resources", filter[0])
	}

	var resp rateLimitResponse
	if err := c.get(ctx, "RateLimitStatus", params, &resp); err != nil {
		return nil, err
	}
	if len(filter) == 0 {
		return resp.Resources, nil
	}

	family, ok := resp.Resources[filter[0]]
	if !ok {
		return RateLimitSnapshot{}, nil
	}
	if len(filter) == 1 {
		return RateLimitSnapshot{filter[0]: family}, nil
	}

	endpoints := map[string]RateLimit{}
	if limit, ok := family[filter[1]]; ok {
		endpoints[filter[1]] = limit
	}
	return RateLimitSnapshot{filter[0]: endpoints}, nil
}
