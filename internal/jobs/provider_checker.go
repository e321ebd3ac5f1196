package jobs

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"shortcuts/internal/metrics"
	"shortcuts/internal/models"
	"shortcuts/internal/store"
	"shortcuts/internal/suggest"
)

// ProbeTerm is the search term sent to each provider by the checker.
const ProbeTerm = "weather"

// StatusStore persists probe outcomes.
type StatusStore interface {
	UpsertProviderStatus(ctx context.Context, provider, status string, checkedAt time.Time, errorMsg *string) error
	ListProviderStatuses(ctx context.Context) ([]models.ProviderStatus, error)
}

// ProviderChecker performs background reachability checks on the suggestion
// providers bound by the loaded shortcuts.
type ProviderChecker struct {
	client   suggest.Client
	store    *store.Store
	persist  StatusStore
	interval time.Duration
	delay    time.Duration
	now      func() time.Time

	mu       sync.RWMutex
	statuses map[string]models.ProviderStatus
}

// NewProviderChecker creates a checker. persist may be nil.
func NewProviderChecker(client suggest.Client, st *store.Store, persist StatusStore, interval time.Duration) *ProviderChecker {
	return &ProviderChecker{
		client:   client,
		store:    st,
		persist:  persist,
		interval: interval,
		delay:    time.Second,
		now:      time.Now,
		statuses: make(map[string]models.ProviderStatus),
	}
}

// Restore loads the outcomes saved by a previous run so they are reported
// until the first check replaces them.
func (p *ProviderChecker) Restore(ctx context.Context) error {
	if p.persist == nil {
		return nil
	}
	saved, err := p.persist.ListProviderStatuses(ctx)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range saved {
		if _, ok := p.statuses[s.Provider]; ok {
			continue
		}
		p.statuses[s.Provider] = s
		metrics.SetProviderUp(s.Provider, s.Status == models.HealthHealthy)
	}
	return nil
}

// Start begins the background check loop.
func (p *ProviderChecker) Start(ctx context.Context) {
	log.Printf("Provider checker started (interval: %v)", p.interval)

	// Run immediately on start
	p.CheckAll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Provider checker stopped")
			return
		case <-ticker.C:
			p.CheckAll(ctx)
		}
	}
}

// CheckAll probes every provider referenced by the current record set.
func (p *ProviderChecker) CheckAll(ctx context.Context) {
	providers := p.boundProviders()
	if len(providers) == 0 {
		return
	}

	for i, id := range providers {
		// Check context before each provider
		select {
		case <-ctx.Done():
			return
		default:
		}

		if i > 0 && p.delay > 0 {
			time.Sleep(p.delay)
		}

		status, errorMsg := p.check(ctx, id)
		p.set(ctx, id, status, errorMsg)
	}
}

// Statuses returns the last known status of every probed provider.
func (p *ProviderChecker) Statuses() []models.ProviderStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]models.ProviderStatus, 0, len(p.statuses))
	for _, s := range p.statuses {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Provider < out[j].Provider })
	return out
}

func (p *ProviderChecker) boundProviders() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, r := range p.store.Snapshot().Records() {
		id := strings.ToLower(r.SuggestionProvider)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// check sends one probe. A provider that answers, even with no suggestions,
// is healthy; a refused or broken answer is unhealthy; a network failure is
// unknown since it may be ours.
func (p *ProviderChecker) check(ctx context.Context, id string) (string, *string) {
	_, err := p.client.Fetch(ctx, id, ProbeTerm)
	if err == nil {
		return models.HealthHealthy, nil
	}

	errMsg := err.Error()
	if errors.Is(err, suggest.ErrUnknownProvider) || errors.Is(err, suggest.ErrBadStatus) || errors.Is(err, suggest.ErrMalformed) {
		return models.HealthUnhealthy, &errMsg
	}
	return models.HealthUnknown, &errMsg
}

func (p *ProviderChecker) set(ctx context.Context, id, status string, errorMsg *string) {
	checkedAt := p.now()
	s := models.ProviderStatus{Provider: id, Status: status, CheckedAt: &checkedAt}
	if errorMsg != nil {
		s.Error = *errorMsg
	}

	p.mu.Lock()
	p.statuses[id] = s
	p.mu.Unlock()

	metrics.SetProviderUp(id, status == models.HealthHealthy)

	if p.persist != nil {
		if err := p.persist.UpsertProviderStatus(ctx, id, status, checkedAt, errorMsg); err != nil {
			log.Printf("Provider checker: failed to store status of %s: %v", id, err)
		}
	}
}
