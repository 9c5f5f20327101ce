package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omoluabi/heartville/internal/models"
)

func TestMatchesAreSortedByRecency(t *testing.T) {
	now := time.Now().UTC()
	// the server hands matches back in ledger order; sorting is on us
	unsorted := []models.MatchView{
		{Match: models.Match{ID: "match-old", CreatedAt: now.Add(-2 * time.Hour)}},
		{Match: models.Match{ID: "match-new", CreatedAt: now}},
		{Match: models.Match{ID: "match-mid", CreatedAt: now.Add(-1 * time.Hour)}},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/matches", r.URL.Path)
		assert.Equal(t, "user-1", r.URL.Query().Get("userId"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"matches": unsorted})
	}))
	defer srv.Close()

	matches, err := New(srv.URL).Matches(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, "match-new", matches[0].ID)
	assert.Equal(t, "match-mid", matches[1].ID)
	assert.Equal(t, "match-old", matches[2].ID)
}

func TestAPIErrorDecoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"NOT_FOUND","message":"profile not found"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Profile(context.Background(), "user-42")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.Equal(t, "profile not found", apiErr.Message)
}

func TestSearchTracksEscapesQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tracks/search", r.URL.Path)
		assert.Equal(t, "night drive", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"tracks": []models.Track{{ID: "track-starlit-signals"}}})
	}))
	defer srv.Close()

	tracks, err := New(srv.URL).SearchTracks(context.Background(), "night drive")
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, "track-starlit-signals", tracks[0].ID)
}
