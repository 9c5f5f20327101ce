// Package client is the Go consumer of the Heartville API: a typed REST
// client, the swipe-deck cursor, a local match list, and a live-event
// listener.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/omoluabi/heartville/internal/models"
)

// APIError is a non-2xx reply decoded from the server's error contract.
type APIError struct {
	Status  int
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("heartville api: %s: %s (status %d)", e.Code, e.Message, e.Status)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		if derr := json.NewDecoder(resp.Body).Decode(apiErr); derr != nil {
			apiErr.Code = "INTERNAL"
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) Profiles(ctx context.Context) ([]models.Profile, error) {
	var env struct {
		Profiles []models.Profile `json:"profiles"`
	}
	if err := c.get(ctx, "/api/profiles", &env); err != nil {
		return nil, err
	}
	return env.Profiles, nil
}

func (c *Client) Profile(ctx context.Context, id string) (*models.Profile, error) {
	var env struct {
		Profile *models.Profile `json:"profile"`
	}
	if err := c.get(ctx, "/api/profiles/"+id, &env); err != nil {
		return nil, err
	}
	return env.Profile, nil
}

func (c *Client) Recommendations(ctx context.Context) ([]models.Recommendation, error) {
	var env struct {
		Recommendations []models.Recommendation `json:"recommendations"`
	}
	if err := c.get(ctx, "/api/recommendations", &env); err != nil {
		return nil, err
	}
	return env.Recommendations, nil
}

// Matches returns the user's matches ordered by recency descending. The
// server does not sort; ordering is the client's job.
func (c *Client) Matches(ctx context.Context, userID string) ([]models.MatchView, error) {
	var env struct {
		Matches []models.MatchView `json:"matches"`
	}
	path := "/api/matches"
	if userID != "" {
		path += "?userId=" + userID
	}
	if err := c.get(ctx, path, &env); err != nil {
		return nil, err
	}
	sort.SliceStable(env.Matches, func(i, j int) bool {
		return env.Matches[i].CreatedAt.After(env.Matches[j].CreatedAt)
	})
	return env.Matches, nil
}

func (c *Client) Messages(ctx context.Context, userID string) ([]models.MessagePreview, error) {
	var env struct {
		Messages []models.MessagePreview `json:"messages"`
	}
	path := "/api/messages"
	if userID != "" {
		path += "?userId=" + userID
	}
	if err := c.get(ctx, path, &env); err != nil {
		return nil, err
	}
	return env.Messages, nil
}

func (c *Client) Insights(ctx context.Context) (*models.InsightsSummary, error) {
	var env struct {
		Insights *models.InsightsSummary `json:"insights"`
	}
	if err := c.get(ctx, "/api/insights", &env); err != nil {
		return nil, err
	}
	return env.Insights, nil
}

func (c *Client) Album(ctx context.Context) (*models.CatalogueAlbum, error) {
	var env struct {
		Album *models.CatalogueAlbum `json:"album"`
	}
	if err := c.get(ctx, "/api/catalogue", &env); err != nil {
		return nil, err
	}
	return env.Album, nil
}

func (c *Client) SearchTracks(ctx context.Context, query string) ([]models.Track, error) {
	var env struct {
		Tracks []models.Track `json:"tracks"`
	}
	if err := c.get(ctx, "/api/tracks/search?q="+url.QueryEscape(query), &env); err != nil {
		return nil, err
	}
	return env.Tracks, nil
}

func (c *Client) CreateMatch(ctx context.Context, userID, targetID string, superLike bool) (*models.MatchResult, error) {
	body := map[string]any{
		"userId":    userID,
		"targetId":  targetID,
		"superLike": superLike,
	}
	var env struct {
		Match *models.MatchResult `json:"match"`
	}
	if err := c.post(ctx, "/api/matches", body, &env); err != nil {
		return nil, err
	}
	return env.Match, nil
}

func (c *Client) Rewind(ctx context.Context, targetID string) error {
	body := map[string]any{"targetId": targetID}
	var env struct {
		Success bool `json:"success"`
	}
	return c.post(ctx, "/api/rewind", body, &env)
}
