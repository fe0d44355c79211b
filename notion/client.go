package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"smartcity-asset-sync/assets"
	"smartcity-asset-sync/config"
)

const (
	apiVersion = "2022-06-28"

	// pageSize is the query page size. Notion caps it at 100.
	pageSize = 100
)

// SourceUnavailableError marks a failed database query. A fetch is
// all-or-nothing: any page failing aborts the whole run with this error and
// no partial asset list is kept.
type SourceUnavailableError struct {
	DatabaseID string
	Err        error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("notion database %s unavailable: %v", e.DatabaseID, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error { return e.Err }

// Client queries the Notion API.
type Client struct {
	cfg        config.NotionConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a Notion client authenticating with the integration token.
func NewClient(cfg config.NotionConfig, logger *zap.Logger) *Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.APIKey})
	hc := oauth2.NewClient(context.Background(), ts)
	hc.Timeout = 30 * time.Second
	return &Client{cfg: cfg, httpClient: hc, logger: logger}
}

type queryRequest struct {
	StartCursor string `json:"start_cursor,omitempty"`
	PageSize    int    `json:"page_size"`
}

// QueryResponse is one page of database query results.
type QueryResponse struct {
	Results    []Page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

// QueryDatabase fetches one page of records, resuming from cursor when it is
// non-empty.
func (c *Client) QueryDatabase(ctx context.Context, databaseID, cursor string) (*QueryResponse, error) {
	if c.cfg.APIKey == "" {
		return nil, fmt.Errorf("notion api key not configured")
	}
	body, err := json.Marshal(queryRequest{StartCursor: cursor, PageSize: pageSize})
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/databases/%s/query", c.cfg.BaseURL, databaseID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Notion-Version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("query failed: %s: %s", resp.Status, string(msg))
	}
	var payload QueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode query response: %w", err)
	}
	return &payload, nil
}

// FetchAllAssets drives the cursor pagination to completion and returns every
// record mapped to an Asset, in the source's return order. Requests are
// issued one at a time; the first failure aborts the fetch.
func (c *Client) FetchAllAssets(ctx context.Context, databaseID string) ([]assets.Asset, error) {
	var all []assets.Asset
	cursor := ""
	page := 0
	for {
		resp, err := c.QueryDatabase(ctx, databaseID, cursor)
		if err != nil {
			return nil, &SourceUnavailableError{DatabaseID: databaseID, Err: err}
		}
		page++
		for _, record := range resp.Results {
			all = append(all, MapRecord(record))
		}
		c.logger.Debug("fetched page",
			zap.Int("page", page),
			zap.Int("records", len(resp.Results)),
			zap.Int("total", len(all)))
		if !resp.HasMore || resp.NextCursor == nil || *resp.NextCursor == "" {
			break
		}
		cursor = *resp.NextCursor
	}
	return all, nil
}
