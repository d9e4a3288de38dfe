// Package export serializes collected Twitter records to CSV and JSON
// files with fixed, spreadsheet-friendly column schemas.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gregbehm/twittertools"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// tweetColumns is the fixed tweet CSV schema.
var tweetColumns = []string{
	"Screen name", "Created", "Text", "Retweet count", "Hashtags",
	"Mentions", "URLs", "Expanded URLs", "Media URLs", "Media types",
	"Tweet ID", "Symbols",
}

// profileColumns is the fixed user profile CSV schema.
var profileColumns = []string{
	"Name", "Screen name", "ID", "Description", "Location", "Tweets",
	"Following", "Followers", "Favorites", "Language", "Listed",
	"Created", "Time zone", "Protected", "Verified", "Geo enabled",
}

// TweetsCSV writes tweets to w as CSV under the fixed tweet schema.
func TweetsCSV(w io.Writer, tweets []twittertools.Tweet) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tweetColumns); err != nil {
		return fmt.Errorf("write tweet header: %w", err)
	}
	for _, t := range tweets {
		if err := cw.Write(tweetRow(t)); err != nil {
			return fmt.Errorf("write tweet row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ProfilesCSV writes user profiles to w as CSV under the fixed profile
// schema.
func ProfilesCSV(w io.Writer, users []twittertools.User) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(profileColumns); err != nil {
		return fmt.Errorf("write profile header: %w", err)
	}
	for _, u := range users {
		if err := cw.Write(profileRow(u)); err != nil {
			return fmt.Errorf("write profile row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// JSON writes v to w as pretty-printed JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteTweetsCSV writes tweets to a CSV file at path.
func WriteTweetsCSV(path string, tweets []twittertools.Tweet) error {
	return writeFile(path, func(w io.Writer) error { return TweetsCSV(w, tweets) })
}

// WriteProfilesCSV writes user profiles to a CSV file at path.
func WriteProfilesCSV(path string, users []twittertools.User) error {
	return writeFile(path, func(w io.Writer) error { return ProfilesCSV(w, users) })
}

// WriteJSON writes v to a pretty-printed JSON file at path.
func WriteJSON(path string, v any) error {
	return writeFile(path, func(w io.Writer) error { return JSON(w, v) })
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func tweetRow(t twittertools.Tweet) []string {
	var screenName string
	if t.User != nil {
		screenName = t.User.ScreenName
	}

	hashtags := make([]string, 0, len(t.Entities.Hashtags))
	for _, h := range t.Entities.Hashtags {
		hashtags = append(hashtags, h.Text)
	}
	mentions := make([]string, 0, len(t.Entities.UserMentions))
	for _, m := range t.Entities.UserMentions {
		mentions = append(mentions, m.ScreenName)
	}
	urls := make([]string, 0, len(t.Entities.URLs))
	expanded := make([]string, 0, len(t.Entities.URLs))
	for _, u := range t.Entities.URLs {
		urls = append(urls, u.URL)
		expanded = append(expanded, u.ExpandedURL)
	}
	mediaURLs := make([]string, 0, len(t.Entities.Media))
	mediaTypes := make([]string, 0, len(t.Entities.Media))
	for _, m := range t.Entities.Media {
		mediaURLs = append(mediaURLs, m.URL)
		mediaTypes = append(mediaTypes, m.Type)
	}
	symbols := make([]string, 0, len(t.Entities.Symbols))
	for _, s := range t.Entities.Symbols {
		symbols = append(symbols, s.Text)
	}

	return []string{
		screenName,
		formatCreatedAt(t.CreatedAt),
		cleanWhitespace(t.Text),
		strconv.Itoa(t.RetweetCount),
		strings.Join(hashtags, " "),
		strings.Join(mentions, " "),
		strings.Join(urls, " "),
		strings.Join(expanded, " "),
		strings.Join(mediaURLs, " "),
		strings.Join(mediaTypes, " "),
		t.IDStr,
		strings.Join(symbols, " "),
	}
}

func profileRow(u twittertools.User) []string {
	return []string{
		u.Name,
		u.ScreenName,
		u.IDStr,
		cleanWhitespace(u.Description),
		u.Location,
		strconv.Itoa(u.StatusesCount),
		strconv.Itoa(u.FriendsCount),
		strconv.Itoa(u.FollowersCount),
		strconv.Itoa(u.FavouritesCount),
		u.Lang,
		strconv.Itoa(u.ListedCount),
		formatCreatedAt(u.CreatedAt),
		u.TimeZone,
		strconv.FormatBool(u.Protected),
		strconv.FormatBool(u.Verified),
		strconv.FormatBool(u.GeoEnabled),
	}
}

// formatCreatedAt converts Twitter's created_at format
// ("Thu Jul 20 19:34:20 +0000 2017") to ISO 8601 UTC. Unparseable
// input is passed through unchanged.
func formatCreatedAt(s string) string {
	t, err := time.Parse(time.RubyDate, s)
	if err != nil {
		return s
	}
	return t.UTC().Format("2006-01-02T15:04:05Z")
}

// cleanWhitespace collapses whitespace runs, newlines included, to
// single spaces.
func cleanWhitespace(s string) string {
	return whitespaceRe.ReplaceAllString(s, " ")
}
