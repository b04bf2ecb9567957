// Package catalog fetches the upstream event listing: one fixed JSON
// endpoint returning scheduled streams grouped by category.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// DefaultURL is the public listing endpoint.
const DefaultURL = "https://old.ppv.to/api/streams"

// UnixTime is a unix-seconds timestamp that tolerates the upstream's habit
// of emitting numbers, numeric strings, or null. Zero means "absent".
type UnixTime int64

func (t *UnixTime) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*t = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*t = 0
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			*t = 0
			return nil
		}
		*t = UnixTime(n)
		return nil
	}
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*t = UnixTime(n)
	return nil
}

// Stream is one raw catalog entry.
type Stream struct {
	Name     string   `json:"name"`
	StartsAt UnixTime `json:"starts_at"`
	EndsAt   UnixTime `json:"ends_at"`
	Iframe   string   `json:"iframe"`
	Poster   string   `json:"poster"`
	Tag      string   `json:"tag"`
}

// Group is one source-reported category with its entries.
type Group struct {
	Category string   `json:"category"`
	Streams  []Stream `json:"streams"`
}

// Feed is the full catalog response.
type Feed struct {
	Streams []Group `json:"streams"`
}

// Client fetches the catalog from a fixed base URL.
type Client struct {
	url  string
	http *http.Client
}

// New returns a Client for the given endpoint URL. An empty url selects
// DefaultURL.
func New(url string) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		url:  url,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// Streams fetches and decodes the catalog. A non-2xx response or malformed
// body is an error; callers treat any error as "no data" and skip the run.
func (c *Client) Streams(ctx context.Context) (*Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog request failed: status %d", res.StatusCode)
	}

	var feed Feed
	if err := json.NewDecoder(res.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return &feed, nil
}
