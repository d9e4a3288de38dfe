package twittertools

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// lookupChunkSize is the API maximum per lookup request.
const lookupChunkSize = 100

// idsPageSize is the API maximum per followers/friends IDs request.
const idsPageSize = 5000

// UserProfiles fetches user profiles for the given screen names, in
// API-returned order, 100 names per request. A failed chunk aborts the
// collection: the error is returned together with the profiles already
// fetched, so callers never mistake a partial result for a complete
// one. The API silently drops names that match no account.
func (c *Client) UserProfiles(ctx context.Context, screenNames []string) ([]User, error) {
	var users []User
	rest := screenNames

	err := paginate(ctx, 0, func(ctx context.Context) (int, bool, error) {
		if len(rest) == 0 {
			return 0, false, nil
		}
		chunk := rest
		if len(chunk) > lookupChunkSize {
			chunk = chunk[:lookupChunkSize]
		}

		params := url.Values{}
		params.Set("screen_name", strings.Join(chunk, ","))

		var page []User
		if err := c.get(ctx, "UsersLookup", params, &page); err != nil {
			return 0, false, err
		}
		rest = rest[len(chunk):]
		if len(page) == 0 {
			return 0, false, nil
		}
		users = append(users, page...)
		return len(page), len(rest) > 0, nil
	})
	return users, err
}

// ConnectionKind selects which side of the follow graph ConnectionIDs
// walks.
type ConnectionKind string

const (
	// Followers lists accounts following the user.
	Followers ConnectionKind = "followers"
	// Friends lists accounts the user follows.
	Friends ConnectionKind = "friends"
)

// ConnectionIDs collects the complete list of numeric user IDs on one
// side of screenName's follow graph, following the cursor until the
// API returns cursor 0. An empty screenName targets the authenticated
// user.
func (c *Client) ConnectionIDs(ctx context.Context, screenName string, which ConnectionKind) ([]int64, error) {
	var operation string
	switch which {
	case Followers:
		operation = "FollowersIDs"
	case Friends:
		operation = "FriendsIDs"
	default:
		return nil, fmt.Errorf("unknown connection kind: %q", which)
	}

	var ids []int64
	cursor := int64(-1)

	err := paginate(ctx, 0, func(ctx context.Context) (int, bool, error) {
		params := url.Values{}
		params.Set("count", strconv.Itoa(idsPageSize))
		params.Set("cursor", strconv.FormatInt(cursor, 10))
		if screenName != "" {
			params.Set("screen_name", screenName)
		}

		var page idsPage
		if err := c.get(ctx, operation, params, &page); err != nil {
			return 0, false, err
		}
		ids = append(ids, page.IDs...)
		cursor = page.NextCursor
		return len(page.IDs), cursor != 0, nil
	})
	return ids, err
}
