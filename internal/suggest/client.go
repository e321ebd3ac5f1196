// Package suggest fetches autocomplete suggestions from external providers.
package suggest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"shortcuts/internal/metrics"
	"shortcuts/internal/models"
	"shortcuts/internal/urlbuilder"
)

const maxResponseBytes = 1 << 20

// Suggestion client errors.
var (
	ErrUnknownProvider = errors.New("unknown suggestion provider")
	ErrBadStatus       = errors.New("unexpected provider response status")
	ErrMalformed       = errors.New("malformed provider response")
)

// Client fetches an ordered list of suggestions for a partial search term.
// An empty list with a nil error means the provider had nothing to offer.
type Client interface {
	Fetch(ctx context.Context, providerID, term string) ([]models.SuggestionItem, error)
}

// ClientFunc adapts a function to the Client interface.
type ClientFunc func(ctx context.Context, providerID, term string) ([]models.SuggestionItem, error)

// Fetch calls f.
func (f ClientFunc) Fetch(ctx context.Context, providerID, term string) ([]models.SuggestionItem, error) {
	return f(ctx, providerID, term)
}

// HTTPClient queries providers over HTTP. Concurrent identical requests
// share a single round trip.
type HTTPClient struct {
	client    *http.Client
	providers map[string]Provider
	limit     int
	group     singleflight.Group
}

// NewHTTPClient creates a client bounded by timeout that returns at most limit items.
func NewHTTPClient(timeout time.Duration, limit int, providers []Provider) *HTTPClient {
	byID := make(map[string]Provider, len(providers))
	for _, p := range providers {
		byID[strings.ToLower(p.ID)] = p
	}
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 5 {
					return errors.New("too many redirects")
				}
				return nil
			},
		},
		providers: byID,
		limit:     limit,
	}
}

// Provider returns the provider registered under id.
func (c *HTTPClient) Provider(id string) (Provider, bool) {
	p, ok := c.providers[strings.ToLower(id)]
	return p, ok
}

// ProviderIDs returns the registered provider ids.
func (c *HTTPClient) ProviderIDs() []string {
	ids := make([]string, 0, len(c.providers))
	for id := range c.providers {
		ids = append(ids, id)
	}
	return ids
}

// Fetch implements Client.
func (c *HTTPClient) Fetch(ctx context.Context, providerID, term string) ([]models.SuggestionItem, error) {
	p, ok := c.Provider(providerID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, providerID)
	}

	// The shared round trip must not die with whichever caller started it;
	// the http client timeout still bounds it.
	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(p.ID+"\x00"+term, func() (any, error) {
		return c.fetch(shared, p, term)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		items := res.Val.([]models.SuggestionItem)
		out := make([]models.SuggestionItem, len(items))
		copy(out, items)
		return out, nil
	}
}

func (c *HTTPClient) fetch(ctx context.Context, p Provider, term string) ([]models.SuggestionItem, error) {
	start := time.Now()
	items, err := c.roundTrip(ctx, p, term)
	switch {
	case err != nil:
		metrics.RecordSuggestionFetch(p.ID, metrics.FetchFailed, time.Since(start))
	case len(items) == 0:
		metrics.RecordSuggestionFetch(p.ID, metrics.FetchEmpty, time.Since(start))
	default:
		metrics.RecordSuggestionFetch(p.ID, metrics.FetchOK, time.Since(start))
	}
	return items, err
}

func (c *HTTPClient) roundTrip(ctx context.Context, p Provider, term string) ([]models.SuggestionItem, error) {
	endpoint := urlbuilder.Build(p.Endpoint, term)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid provider url: %w", err)
	}
	req.Header.Set("User-Agent", "Shortcuts-Suggest/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", p.ID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %d", ErrBadStatus, p.ID, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%s read failed: %w", p.ID, err)
	}

	items, err := p.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.ID, err)
	}

	if c.limit > 0 && len(items) > c.limit {
		items = items[:c.limit]
	}
	return items, nil
}
