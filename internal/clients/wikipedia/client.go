// Package wikipedia provides a client for the Wikipedia REST page summary endpoint.
package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the English Wikipedia REST API root
	DefaultBaseURL = "https://en.wikipedia.org/api/rest_v1"

	// NotFoundMessage is answered for any non-200 response
	NotFoundMessage = "Sorry, I couldn't find anything."

	// NoResultMessage is answered when the summary has no extract
	NoResultMessage = "No result found."

	userAgent = "coin50-dashboard/1.0"
)

// Client for the Wikipedia summary endpoint
type Client struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// NewClient creates a new Wikipedia client. An empty baseURL uses DefaultBaseURL.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		log:     log.With().Str("client", "wikipedia").Logger(),
	}
}

type summaryResponse struct {
	Title   string `json:"title"`
	Extract string `json:"extract"`
}

// PageTitle converts free text into a summary path segment:
// spaces become underscores and the rest is path-escaped.
func PageTitle(query string) string {
	return url.PathEscape(strings.ReplaceAll(strings.TrimSpace(query), " ", "_"))
}

// Summary looks up query and returns the page extract.
// A non-200 status yields NotFoundMessage and a missing extract NoResultMessage,
// both without error. Transport and decode failures are returned as errors.
func (c *Client) Summary(ctx context.Context, query string) (string, error) {
	endpoint := fmt.Sprintf("%s/page/summary/%s", c.baseURL, PageTitle(query))
	c.log.Debug().Str("url", endpoint).Msg("Fetching summary")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build summary request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("summary request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Debug().Int("status", resp.StatusCode).Str("query", query).Msg("Summary not available")
		return NotFoundMessage, nil
	}

	var result summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to parse summary response: %w", err)
	}

	if result.Extract == "" {
		return NoResultMessage, nil
	}

	return result.Extract, nil
}
