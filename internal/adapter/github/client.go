// Package github implements ports.ProjectClient against the GitHub GraphQL
// API, reading items of a Projects v2 board and normalizing their
// polymorphic field values into domain cards.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"gh-burndown/internal/domain"
)

const defaultPageSize = 50

// Client implements ports.ProjectClient.
type Client struct {
	url       string
	token     string
	projectID string
	pageSize  int
	http      *http.Client
	log       *slog.Logger
}

func NewClient(url, token, projectID string, log *slog.Logger) *Client {
	if url == "" {
		url = "https://api.github.com/graphql"
	}
	return &Client{
		url:       url,
		token:     token,
		projectID: projectID,
		pageSize:  defaultPageSize,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// execute runs one GraphQL request and returns the raw data document.
// A non-200 status or an errors payload is fatal; there is no retry.
func (c *Client) execute(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	if c.token == "" {
		return nil, errors.New("missing api token")
	}
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("github: unexpected status %d: %s", resp.StatusCode, string(b))
	}

	var gr graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, err
	}
	if len(gr.Errors) > 0 {
		msgs := make([]string, len(gr.Errors))
		for i, e := range gr.Errors {
			msgs[i] = e.Message
		}
		return nil, fmt.Errorf("github: graphql errors: %s", strings.Join(msgs, "; "))
	}
	return gr.Data, nil
}

// ListCards pages through the project's items and returns them normalized,
// in the API's page order. Pagination is strictly sequential: the next page
// is requested only once the current page's cursor is known.
func (c *Client) ListCards(ctx context.Context) ([]domain.Card, error) {
	var (
		cards  []domain.Card
		cursor *string
	)
	for {
		variables := map[string]any{
			"projectId": c.projectID,
			"pageSize":  c.pageSize,
		}
		if cursor != nil {
			variables["cursor"] = *cursor
		}
		data, err := c.execute(ctx, listItemsQuery, variables)
		if err != nil {
			return nil, err
		}

		var page projectItemsData
		if err := json.Unmarshal(data, &page); err != nil {
			return nil, fmt.Errorf("github: decoding items page: %w", err)
		}
		if page.Node == nil {
			// Wrong or inaccessible project id: the board simply has no
			// items rather than the run failing.
			c.log.Warn("project node not found, returning no cards",
				slog.String("projectId", c.projectID))
			return cards, nil
		}

		for _, item := range page.Node.Items.Nodes {
			card, err := normalizeItem(item)
			if err != nil {
				return nil, err
			}
			cards = append(cards, card)
		}

		info := page.Node.Items.PageInfo
		if !info.HasNextPage {
			break
		}
		cursor = &info.EndCursor
		c.log.Debug("fetching next items page", slog.String("cursor", info.EndCursor))
	}
	c.log.Info("fetched project cards", slog.Int("count", len(cards)))
	return cards, nil
}
