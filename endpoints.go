package twittertools

import (
	"fmt"
	"net/http"
)

const defaultBaseURL = "https://api.twitter.com/1.1"

// Endpoint holds the HTTP method and v1.1 resource path for one
// supported API call.
type Endpoint struct {
	Method string
	Path   string
}

// URL returns the full request URL for this endpoint under base.
func (e Endpoint) URL(base string) string {
	return base + e.Path + ".json"
}

// EndpointURL returns the method and URL for a named operation, or an
// error if unknown.
func EndpointURL(operation, base string) (string, string, error) {
	ep, ok := Endpoints[operation]
	if !ok {
		return "", "", fmt.Errorf("unknown operation: %s", operation)
	}
	return ep.Method, ep.URL(base), nil
}

// Endpoints maps operation names to their REST v1.1 endpoints. The
// table is static; every client method goes through it.
var Endpoints = map[string]Endpoint{
	"RateLimitStatus": {http.MethodGet, "/application/rate_limit_status"},
	"UsersLookup":     {http.MethodGet, "/users/lookup"},
	"HomeTimeline":    {http.MethodGet, "/statuses/home_timeline"},
	"UserTimeline":    {http.MethodGet, "/statuses/user_timeline"},
	"FavoritesList":   {http.MethodGet, "/favorites/list"},
	"StatusesLookup":  {http.MethodGet, "/statuses/lookup"},
	"StatusesUpdate":  {http.MethodPost, "/statuses/update"},
	"TrendsAvailable": {http.MethodGet, "/trends/available"},
	"TrendsClosest":   {http.MethodGet, "/trends/closest"},
	"TrendsPlace":     {http.MethodGet, "/trends/place"},
	"FollowersIDs":    {http.MethodGet, "/followers/ids"},
	"FriendsIDs":      {http.MethodGet, "/friends/ids"},
	"SearchTweets":    {http.MethodGet, "/search/tweets"},
}
