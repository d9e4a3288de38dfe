package twittertools

import "time"

// User is a Twitter user profile as returned by /users/lookup and
// embedded in tweet objects.
type User struct {
	ID              int64  `json:"id"`
	IDStr           string `json:"id_str"`
	Name            string `json:"name"`
	ScreenName      string `json:"screen_name"`
	Description     string `json:"description"`
	Location        string `json:"location"`
	Lang            string `json:"lang"`
	TimeZone        string `json:"time_zone"`
	CreatedAt       string `json:"created_at"`
	StatusesCount   int    `json:"statuses_count"`
	FriendsCount    int    `json:"friends_count"`
	FollowersCount  int    `json:"followers_count"`
	FavouritesCount int    `json:"favourites_count"`
	ListedCount     int    `json:"listed_count"`
	Protected       bool   `json:"protected"`
	Verified        bool   `json:"verified"`
	GeoEnabled      bool   `json:"geo_enabled"`
}

// Tweet is a single status as returned by the v1.1 timeline, lookup,
// and search endpoints.
type Tweet struct {
	ID           int64    `json:"id"`
	IDStr        string   `json:"id_str"`
	Text         string   `json:"text"`
	CreatedAt    string   `json:"created_at"`
	RetweetCount int      `json:"retweet_count"`
	User         *User    `json:"user,omitempty"`
	Entities     Entities `json:"entities"`
}

// Entities groups the entity lists Twitter extracts from tweet text.
type Entities struct {
	Hashtags     []Hashtag     `json:"hashtags"`
	UserMentions []UserMention `json:"user_mentions"`
	URLs         []URLEntity   `json:"urls"`
	Media        []MediaEntity `json:"media"`
	Symbols      []Symbol      `json:"symbols"`
}

// Hashtag is a #tag entity.
type Hashtag struct {
	Text string `json:"text"`
}

// UserMention is an @mention entity.
type UserMention struct {
	ScreenName string `json:"screen_name"`
}

// URLEntity is a t.co URL entity with its expansion.
type URLEntity struct {
	URL         string `json:"url"`
	ExpandedURL string `json:"expanded_url"`
}

// MediaEntity is an attached photo or video entity.
type MediaEntity struct {
	URL  string `json:"media_url_https"`
	Type string `json:"type"`
}

// Symbol is a $cashtag entity.
type Symbol struct {
	Text string `json:"text"`
}

// RateLimit is the remaining request budget for one endpoint path
// within its 15-minute window.
type RateLimit struct {
	Limit     int   `json:"limit"`
	Remaining int   `json:"remaining"`
	Reset     int64 `json:"reset"`
}

// ResetTime converts the reset unix timestamp to a time.Time.
func (r RateLimit) ResetTime() time.Time { return time.Unix(r.Reset, 0) }

// RateLimitSnapshot maps API family -> endpoint path -> RateLimit,
// mirroring the "resources" object of /application/rate_limit_status.
type RateLimitSnapshot map[string]map[string]RateLimit

// TrendLocation is a place Twitter tracks trending topics for,
// identified by its WOEID.
type TrendLocation struct {
	Name        string `json:"name"`
	WOEID       int64  `json:"woeid"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
	URL         string `json:"url"`
	ParentID    int64  `json:"parentid"`
}

// Trend is one trending topic for a location.
type Trend struct {
	Name        string `json:"name"`
	Query       string `json:"query"`
	URL         string `json:"url"`
	TweetVolume int64  `json:"tweet_volume"`
}

// Coordinates is a latitude/longitude pair for /trends/closest.
type Coordinates struct {
	Lat  float64
	Long float64
}

// searchResponse is the /search/tweets envelope. next_results carries
// the ready-made query string for the following page.
type searchResponse struct {
	Statuses       []Tweet `json:"statuses"`
	SearchMetadata struct {
		NextResults string `json:"next_results"`
	} `json:"search_metadata"`
}

// idsPage is one cursored page of /followers/ids or /friends/ids.
// next_cursor == 0 means the final page.
type idsPage struct {
	IDs        []int64 `json:"ids"`
	NextCursor int64   `json:"next_cursor"`
}

// trendsPage is one element of the /trends/place response array.
type trendsPage struct {
	Trends []Trend `json:"trends"`
}

// rateLimitResponse is the /application/rate_limit_status envelope.
type rateLimitResponse struct {
	Resources RateLimitSnapshot `json:"resources"`
}
