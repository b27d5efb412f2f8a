// Package remote reads and writes visitor preferences through the dev
// server's HTTP API. It has no server-side dependencies, so the browser
// build can use it.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Client is a theme.Store backed by /api/prefs. The visitor is identified
// by the cookie the server issues, so the HTTP client needs a cookie jar
// (browsers have one).
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a Client for the server at baseURL.
func NewClient(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{BaseURL: strings.TrimSuffix(baseURL, "/"), HTTP: hc}
}

type preference struct {
	Value string `json:"value"`
}

func (c *Client) endpoint(key string) string {
	return c.BaseURL + "/api/prefs/" + url.PathEscape(key)
}

// Get returns the value stored under key; ok is false when there is none.
func (c *Client) Get(ctx context.Context, key string) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(key), nil)
	if err != nil {
		return "", false, fmt.Errorf("building request: %w", err)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", false, fmt.Errorf("fetching preference: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", false, nil
	case resp.StatusCode != http.StatusOK:
		return "", false, fmt.Errorf("fetching preference: %s", resp.Status)
	}

	var p preference
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return "", false, fmt.Errorf("decoding preference: %w", err)
	}
	return p.Value, true, nil
}

// Set stores value under key.
func (c *Client) Set(ctx context.Context, key, value string) error {
	body, err := json.Marshal(preference{Value: value})
	if err != nil {
		return fmt.Errorf("encoding preference: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.endpoint(key), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("storing preference: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("storing preference: %s", resp.Status)
	}
	return nil
}
