package poeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/poetis/backend/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

const (
	stashItemsPath = "/character-window/get-stash-items"
	maxAttempts    = 3
)

// stashTabTypes are the tab kinds whose contents come back as a plain item grid
var stashTabTypes = map[string]bool{
	"NormalStash":  true,
	"PremiumStash": true,
	"QuadStash":    true,
}

// Settings identify the account whose stash is read
type Settings struct {
	BaseURL     string
	AccountName string
	League      string
	SessionID   string
	// RequestRate is requests per second; zero falls back to one request per second
	RequestRate float64
}

// Client handles communication with the stash items API
type Client struct {
	httpClient  *http.Client
	settings    Settings
	rateLimiter *rate.Limiter
	backoff     func(attempt int) time.Duration
}

// NewClient creates a new stash API client
func NewClient(settings Settings) *Client {
	ratePerSecond := settings.RequestRate
	if ratePerSecond <= 0 {
		ratePerSecond = 1
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		settings:    settings,
		rateLimiter: rate.NewLimiter(rate.Limit(ratePerSecond), 2),
		backoff:     exponentialBackoff,
	}
}

// exponentialBackoff returns 500ms, 1s, 2s, ... for attempts 1, 2, 3, ...
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(500*(1<<(attempt-1))) * time.Millisecond
}

// FetchItems resolves the named stash tab and returns its raw item records
func (c *Client) FetchItems(ctx context.Context, container string) ([]domain.RawItemRecord, error) {
	if err := c.validate(container); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInventoryFetch, err)
	}

	tabs, err := c.listTabs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInventoryFetch, err)
	}

	index, ok := tabs[container]
	if !ok {
		log.Warn().Str("container", container).Int("tabs", len(tabs)).Msg("[POEAPI] stash tab not found")
		return nil, fmt.Errorf("%w: %w: %q", domain.ErrInventoryFetch, domain.ErrStashNotFound, container)
	}

	body, err := c.get(ctx, c.stashURL(index, false))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInventoryFetch, err)
	}

	var payload stashItemsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", domain.ErrInventoryFetch, err)
	}

	records := MapToRecords(payload.Items)
	log.Info().Str("container", container).Int("tab_index", index).Int("records", len(records)).Msg("[POEAPI] fetched stash items")
	return records, nil
}

func (c *Client) validate(container string) error {
	switch {
	case c.settings.SessionID == "":
		return fmt.Errorf("session id setting is empty")
	case c.settings.AccountName == "":
		return fmt.Errorf("account name setting is empty")
	case c.settings.League == "":
		return fmt.Errorf("league setting is empty")
	case container == "":
		return fmt.Errorf("stash name is empty")
	}
	return nil
}

// listTabs returns the item-grid tabs keyed by name; the first tab with a name wins
func (c *Client) listTabs(ctx context.Context) (map[string]int, error) {
	body, err := c.get(ctx, c.stashURL(0, true))
	if err != nil {
		return nil, err
	}

	tabs := make(map[string]int)
	gjson.GetBytes(body, "tabs").ForEach(func(_, tab gjson.Result) bool {
		if !stashTabTypes[tab.Get("type").String()] {
			return true
		}
		name := tab.Get("n").String()
		if _, seen := tabs[name]; !seen {
			tabs[name] = int(tab.Get("i").Int())
		}
		return true
	})
	return tabs, nil
}

func (c *Client) stashURL(tabIndex int, listTabs bool) string {
	params := url.Values{}
	params.Add("league", c.settings.League)
	params.Add("accountName", c.settings.AccountName)
	params.Add("tabIndex", strconv.Itoa(tabIndex))
	if listTabs {
		params.Add("tabs", "1")
	} else {
		params.Add("tabs", "0")
	}
	return fmt.Sprintf("%s%s?%s", c.settings.BaseURL, stashItemsPath, params.Encode())
}

// doRequest executes an HTTP GET request with the session cookie
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Poetis/1.0")
	req.AddCookie(&http.Cookie{Name: "POESESSID", Value: c.settings.SessionID})

	return c.httpClient.Do(req)
}

// get performs a rate limited GET, retrying transport failures and 5xx responses
func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			log.Debug().Err(err).Int("attempt", attempt).Msg("[POEAPI] request error")
			lastErr = err
			if !c.sleep(ctx, attempt) {
				return nil, ctx.Err()
			}
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode >= http.StatusInternalServerError {
			log.Debug().Int("status", resp.StatusCode).Int("attempt", attempt).Msg("[POEAPI] server error")
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			if !c.sleep(ctx, attempt) {
				return nil, ctx.Err()
			}
			continue
		}
		if readErr != nil {
			return nil, fmt.Errorf("failed to read response: %w", readErr)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			return nil, fmt.Errorf("%w: retry after %q", domain.ErrRateLimited, resp.Header.Get("Retry-After"))
		}
		if apiErr := gjson.GetBytes(body, "error"); apiErr.Exists() {
			return nil, fmt.Errorf("api error: %s", apiErr.Get("message").String())
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("status %d", resp.StatusCode)
		}
		return body, nil
	}

	log.Warn().Err(lastErr).Msg("[POEAPI] all retries failed")
	return nil, lastErr
}

// sleep waits out the backoff for attempt; false means ctx ended first
func (c *Client) sleep(ctx context.Context, attempt int) bool {
	if attempt >= maxAttempts {
		return true
	}
	timer := time.NewTimer(c.backoff(attempt))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
