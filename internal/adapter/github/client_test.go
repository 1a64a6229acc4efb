package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func itemJSON(id, status string) string {
	return fmt.Sprintf(`{
		"id": %q,
		"content": {"title": "card %s"},
		"fieldValues": {"nodes": [
			{"field": {"name": "Status"}, "name": %q, "updatedAt": "2024-07-25T10:30:00Z"}
		]}
	}`, id, id, status)
}

func pageJSON(hasNext bool, endCursor string, items ...string) string {
	nodes := ""
	for i, it := range items {
		if i > 0 {
			nodes += ","
		}
		nodes += it
	}
	return fmt.Sprintf(`{"data": {"node": {"items": {
		"pageInfo": {"hasNextPage": %v, "endCursor": %q},
		"nodes": [%s]
	}}}}`, hasNext, endCursor, nodes)
}

func decodeVariables(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var req struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables"`
	}
	require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
	require.NotEmpty(t, req.Query)
	return req.Variables
}

func TestListCards_PaginatesInOrder(t *testing.T) {
	var cursors []any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vars := decodeVariables(t, r)
		cursors = append(cursors, vars["cursor"])
		w.Header().Set("Content-Type", "application/json")
		if vars["cursor"] == nil {
			fmt.Fprint(w, pageJSON(true, "cursor-1", itemJSON("item-1", "Done"), itemJSON("item-2", "Todo")))
			return
		}
		fmt.Fprint(w, pageJSON(false, "", itemJSON("item-3", "Done")))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", "PVT_x", testLogger())
	cards, err := c.ListCards(context.Background())
	require.NoError(t, err)

	ids := make([]string, len(cards))
	for i, card := range cards {
		ids[i] = card.ID
	}
	assert.Equal(t, []string{"item-1", "item-2", "item-3"}, ids)
	// Second request must carry the first page's end cursor.
	require.Len(t, cursors, 2)
	assert.Nil(t, cursors[0])
	assert.Equal(t, "cursor-1", cursors[1])
}

func TestListCards_SendsAuthHeader(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		fmt.Fprint(w, pageJSON(false, "", itemJSON("item-1", "Done")))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret-token", "PVT_x", testLogger())
	_, err := c.ListCards(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", auth)
}

func TestListCards_NonOKStatusFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, "bad credentials")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", "PVT_x", testLogger())
	_, err := c.ListCards(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "bad credentials")
}

func TestListCards_GraphQLErrorsFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": null, "errors": [{"message": "Could not resolve to a node"}]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", "PVT_x", testLogger())
	_, err := c.ListCards(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Could not resolve to a node")
}

func TestListCards_MissingNodeYieldsNoCards(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": {"node": null}}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", "PVT_wrong", testLogger())
	cards, err := c.ListCards(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestListCards_ItemWithoutStatusFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, pageJSON(false, "", `{"id": "item-1", "content": {"title": "x"}, "fieldValues": {"nodes": []}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", "PVT_x", testLogger())
	_, err := c.ListCards(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status field is missing")
}

func TestListCards_MissingTokenFails(t *testing.T) {
	c := NewClient("", "", "PVT_x", testLogger())
	_, err := c.ListCards(context.Background())
	assert.Error(t, err)
}
