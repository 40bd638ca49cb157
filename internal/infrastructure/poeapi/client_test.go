package poeapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/poetis/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tabsJSON = `{
	"numTabs": 3,
	"tabs": [
		{"n": "Maps", "i": 0, "type": "MapStash"},
		{"n": "Dump", "i": 1, "type": "QuadStash"},
		{"n": "Trade", "i": 2, "type": "PremiumStash"},
		{"n": "Dump", "i": 5, "type": "NormalStash"}
	]
}`

const itemsJSON = `{
	"numTabs": 3,
	"items": [
		{
			"x": 3, "y": 4, "w": 1, "h": 1, "ilvl": 80,
			"name": "Doom Loop", "typeLine": "Two-Stone Ring", "frameType": 2, "identified": true,
			"implicitMods": ["+12% to Fire and Cold Resistances"],
			"explicitMods": ["+40 to maximum Life", "+30% to Cold Resistance"]
		},
		{
			"x": 0, "y": 0, "w": 2, "h": 2, "ilvl": 64,
			"name": "", "typeLine": "Leather Belt", "frameType": 2, "identified": false
		}
	]
}`

func testSettings(baseURL string) Settings {
	return Settings{
		BaseURL:     baseURL,
		AccountName: "exile",
		League:      "Standard",
		SessionID:   "secret-session",
		RequestRate: 1000,
	}
}

func newTestClient(baseURL string) *Client {
	client := NewClient(testSettings(baseURL))
	client.backoff = func(int) time.Duration { return time.Millisecond }
	return client
}

func TestNewClient(t *testing.T) {
	client := NewClient(testSettings("https://api.example.com"))

	assert.NotNil(t, client)
	assert.Equal(t, "https://api.example.com", client.settings.BaseURL)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
}

func TestNewClient_DefaultRate(t *testing.T) {
	settings := testSettings("https://api.example.com")
	settings.RequestRate = 0
	client := NewClient(settings)

	assert.InDelta(t, 1.0, float64(client.rateLimiter.Limit()), 0.0001)
}

func TestExponentialBackoff(t *testing.T) {
	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{1, 500 * time.Millisecond},
		{2, 1000 * time.Millisecond},
		{3, 2000 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			assert.Equal(t, tt.expected, exponentialBackoff(tt.attempt))
		})
	}
}

func TestFetchItems_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, stashItemsPath, r.URL.Path)
		assert.Equal(t, "Standard", r.URL.Query().Get("league"))
		assert.Equal(t, "exile", r.URL.Query().Get("accountName"))

		cookie, err := r.Cookie("POESESSID")
		require.NoError(t, err)
		assert.Equal(t, "secret-session", cookie.Value)

		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("tabs") == "1" {
			w.Write([]byte(tabsJSON))
			return
		}
		assert.Equal(t, "1", r.URL.Query().Get("tabIndex"))
		w.Write([]byte(itemsJSON))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	records, err := client.FetchItems(context.Background(), "Dump")

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Two-Stone Ring", records[0].TypeLine)
	assert.Equal(t, domain.FrameRare, records[0].FrameType)
	assert.Equal(t, 80, records[0].ItemLevel)
	assert.Equal(t, 3, records[0].X)
	assert.Equal(t, 4, records[0].Y)
	assert.True(t, records[0].Identified)
	assert.Equal(t, []string{"+40 to maximum Life", "+30% to Cold Resistance"}, records[0].ExplicitMods)
	assert.Equal(t, 2, records[1].Width)
	assert.Equal(t, 2, records[1].Height)
	assert.Empty(t, records[1].ExplicitMods)
}

func TestFetchItems_StashNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(tabsJSON))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	// Map tabs are not item grids and never resolve
	records, err := client.FetchItems(context.Background(), "Maps")

	assert.Nil(t, records)
	assert.ErrorIs(t, err, domain.ErrInventoryFetch)
	assert.ErrorIs(t, err, domain.ErrStashNotFound)
}

func TestFetchItems_APIErrorPayload(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":6,"message":"Forbidden"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.FetchItems(context.Background(), "Dump")

	assert.ErrorIs(t, err, domain.ErrInventoryFetch)
	assert.Contains(t, err.Error(), "Forbidden")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "client errors are not retried")
}

func TestFetchItems_UpstreamRateLimited(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Retry-After", "60")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":3,"message":"Rate limit exceeded"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.FetchItems(context.Background(), "Dump")

	assert.ErrorIs(t, err, domain.ErrInventoryFetch)
	assert.ErrorIs(t, err, domain.ErrRateLimited)
	assert.Contains(t, err.Error(), "60")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetchItems_RetryOnServerError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		if r.URL.Query().Get("tabs") == "1" {
			w.Write([]byte(tabsJSON))
			return
		}
		w.Write([]byte(itemsJSON))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	records, err := client.FetchItems(context.Background(), "Trade")

	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestFetchItems_AllRetriesFail(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.FetchItems(context.Background(), "Dump")

	assert.ErrorIs(t, err, domain.ErrInventoryFetch)
	assert.Equal(t, int32(maxAttempts), atomic.LoadInt32(&calls))
}

func TestFetchItems_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("tabs") == "1" {
			w.Write([]byte(tabsJSON))
			return
		}
		w.Write([]byte(`{"items": [`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.FetchItems(context.Background(), "Dump")

	assert.ErrorIs(t, err, domain.ErrInventoryFetch)
}

func TestFetchItems_MissingSettings(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Settings)
		container string
	}{
		{"missing session", func(s *Settings) { s.SessionID = "" }, "Dump"},
		{"missing account", func(s *Settings) { s.AccountName = "" }, "Dump"},
		{"missing league", func(s *Settings) { s.League = "" }, "Dump"},
		{"missing container", func(s *Settings) {}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := testSettings("http://127.0.0.1:0")
			tt.mutate(&settings)
			client := NewClient(settings)

			_, err := client.FetchItems(context.Background(), tt.container)
			assert.ErrorIs(t, err, domain.ErrInventoryFetch)
		})
	}
}

func TestFetchItems_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(tabsJSON))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(server.URL)
	_, err := client.FetchItems(ctx, "Dump")

	assert.ErrorIs(t, err, domain.ErrInventoryFetch)
}
