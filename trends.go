package twittertools

import (
	"context"
	"net/url"
	"strconv"
)

// TrendLocations lists the places Twitter tracks trending topics for.
// With coords, the list is limited to the locations closest to that
// point; with nil coords, every known location is returned.
func (c *Client) TrendLocations(ctx context.Context, coords *Coordinates) ([]TrendLocation, error) {
	operation := "TrendsAvailable"
	params := url.Values{}
	if coords != nil {
		operation = "TrendsClosest"
		params.Set("lat", strconv.FormatFloat(coords.Lat, 'f', -1, 64))
		params.Set("long", strconv.FormatFloat(coords.Long, 'f', -1, 64))
	}

	var locations []TrendLocation
	if err := c.get(ctx, operation, params, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

// Trends returns the top trending topics for a WOEID. Use woeid 1 for
// worldwide trends. A location without trend data yields an empty
// list.
func (c *Client) Trends(ctx context.Context, woeid int64) ([]Trend, error) {
	params := url.Values{}
	params.Set("id", strconv.FormatInt(woeid, 10))

	// The API wraps the trend list in a single-element array.
	var pages []trendsPage
	if err := c.get(ctx, "TrendsPlace", params, &pages); err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, nil
	}
	return pages[0].Trends, nil
}
