package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregbehm/twittertools"
)

func sampleTweet() twittertools.Tweet {
	return twittertools.Tweet{
		ID:           889189252264853504,
		IDStr:        "889189252264853504",
		Text:         "Line one\nline\ttwo",
		CreatedAt:    "Thu Jul 20 19:34:20 +0000 2017",
		RetweetCount: 7,
		User:         &twittertools.User{ScreenName: "testuser"},
		Entities: twittertools.Entities{
			Hashtags:     []twittertools.Hashtag{{Text: "blockchain"}, {Text: "golang"}},
			UserMentions: []twittertools.UserMention{{ScreenName: "someone"}},
			URLs: []twittertools.URLEntity{
				{URL: "https://t.co/abc", ExpandedURL: "https://example.com/article"},
			},
			Media:   []twittertools.MediaEntity{{URL: "https://pbs.twimg.com/x.jpg", Type: "photo"}},
			Symbols: []twittertools.Symbol{{Text: "BTC"}},
		},
	}
}

func TestTweetsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TweetsCSV(&buf, []twittertools.Tweet{sampleTweet()}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, tweetColumns, rows[0])
	assert.Equal(t, []string{
		"testuser",
		"2017-07-20T19:34:20Z",
		"Line one line two",
		"7",
		"blockchain golang",
		"someone",
		"https://t.co/abc",
		"https://example.com/article",
		"https://pbs.twimg.com/x.jpg",
		"photo",
		"889189252264853504",
		"BTC",
	}, rows[1])
}

func TestProfilesCSV(t *testing.T) {
	user := twittertools.User{
		Name:            "Test User",
		ScreenName:      "testuser",
		IDStr:           "12345",
		Description:     "Some\nbio",
		Location:        "Paris",
		StatusesCount:   200,
		FriendsCount:    50,
		FollowersCount:  100,
		FavouritesCount: 25,
		Lang:            "en",
		ListedCount:     5,
		CreatedAt:       "Mon Jan 02 15:04:05 +0000 2020",
		TimeZone:        "CET",
		Protected:       false,
		Verified:        true,
		GeoEnabled:      false,
	}

	var buf bytes.Buffer
	require.NoError(t, ProfilesCSV(&buf, []twittertools.User{user}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, profileColumns, rows[0])
	assert.Equal(t, []string{
		"Test User", "testuser", "12345", "Some bio", "Paris",
		"200", "50", "100", "25", "en", "5",
		"2020-01-02T15:04:05Z", "CET", "false", "true", "false",
	}, rows[1])
}

func TestJSONRoundTrip(t *testing.T) {
	tweets := []twittertools.Tweet{sampleTweet(), {ID: 1, IDStr: "1", Text: "plain"}}

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, tweets))

	var reloaded []twittertools.Tweet
	require.NoError(t, json.Unmarshal(buf.Bytes(), &reloaded))
	assert.Equal(t, tweets, reloaded)
}

func TestFormatCreatedAt(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Thu Jul 20 19:34:20 +0000 2017", "2017-07-20T19:34:20Z"},
		{"not a date", "not a date"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatCreatedAt(tt.in))
	}
}

func TestCleanWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", cleanWhitespace("a\n b\t\tc"))
}
