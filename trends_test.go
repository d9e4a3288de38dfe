package twittertools

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrendLocationsAll(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trends/available.json", r.URL.Path)
		w.Write([]byte(`[
			{"name":"Worldwide","woeid":1,"country":""},
			{"name":"Paris","woeid":615702,"country":"France"}
		]`))
	}))

	locations, err := client.TrendLocations(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, int64(615702), locations[1].WOEID)
	assert.Equal(t, "Paris", locations[1].Name)
}

func TestTrendLocationsClosest(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trends/closest.json", r.URL.Path)
		assert.Equal(t, "48.858093", r.URL.Query().Get("lat"))
		assert.Equal(t, "2.294694", r.URL.Query().Get("long"))
		w.Write([]byte(`[{"name":"Paris","woeid":615702,"country":"France"}]`))
	}))

	locations, err := client.TrendLocations(context.Background(), &Coordinates{Lat: 48.858093, Long: 2.294694})
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "Paris", locations[0].Name)
}

func TestTrends(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trends/place.json", r.URL.Path)
		assert.Equal(t, "23424977", r.URL.Query().Get("id"))
		w.Write([]byte(`[{"trends":[
			{"name":"#golang","query":"%23golang","tweet_volume":12345},
			{"name":"#testing","query":"%23testing"}
		],"as_of":"2017-07-20T19:34:20Z"}]`))
	}))

	trends, err := client.Trends(context.Background(), 23424977)
	require.NoError(t, err)
	require.Len(t, trends, 2)
	assert.Equal(t, "#golang", trends[0].Name)
	assert.Equal(t, int64(12345), trends[0].TweetVolume)
}

func TestTrendsEmptyResponse(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))

	trends, err := client.Trends(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, trends)
}
