package twittertools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserProfilesChunksInput(t *testing.T) {
	var batches [][]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		names := strings.Split(r.URL.Query().Get("screen_name"), ",")
		batches = append(batches, names)

		page := make([]User, 0, len(names))
		for _, name := range names {
			page = append(page, User{ScreenName: name, Name: "User " + name})
		}
		require.NoError(t, json.NewEncoder(w).Encode(page))
	}))

	names := make([]string, 0, 150)
	for i := 0; i < 150; i++ {
		names = append(names, fmt.Sprintf("user%03d", i))
	}

	users, err := client.UserProfiles(context.Background(), names)
	require.NoError(t, err)
	require.Len(t, users, 150)
	require.Len(t, batches, 2)
	assert.Len(t, batches[0], 100)
	assert.Len(t, batches[1], 50)

	// API-returned order is preserved.
	for i, u := range users {
		assert.Equal(t, names[i], u.ScreenName)
	}
}

func TestUserProfilesFailedChunkAborts(t *testing.T) {
	requests := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"errors":[{"code":17,"message":"No user matches for specified terms."}]}`))
	}))

	users, err := client.UserProfiles(context.Background(), []string{"nobody"})
	require.Error(t, err)
	assert.Empty(t, users)
	assert.Equal(t, 1, requests)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
}

func TestConnectionIDsFollowsCursor(t *testing.T) {
	var cursors []string
	pages := map[string]idsPage{
		"-1":   {IDs: []int64{1, 2, 3}, NextCursor: 100},
		"100":  {IDs: []int64{4, 5}, NextCursor: 2000},
		"2000": {IDs: []int64{6}, NextCursor: 0},
	}
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/followers/ids.json", r.URL.Path)
		cursor := r.URL.Query().Get("cursor")
		cursors = append(cursors, cursor)
		require.NoError(t, json.NewEncoder(w).Encode(pages[cursor]))
	}))

	ids, err := client.ConnectionIDs(context.Background(), "someone", Followers)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, ids)
	assert.Equal(t, []string{"-1", "100", "2000"}, cursors)
}

func TestConnectionIDsFriendsEndpoint(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/friends/ids.json", r.URL.Path)
		require.NoError(t, json.NewEncoder(w).Encode(idsPage{IDs: []int64{7}, NextCursor: 0}))
	}))

	ids, err := client.ConnectionIDs(context.Background(), "someone", Friends)
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, ids)
}

func TestConnectionIDsUnknownKind(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))

	_, err := client.ConnectionIDs(context.Background(), "someone", ConnectionKind("enemies"))
	require.Error(t, err)
}
