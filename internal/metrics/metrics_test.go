package metrics

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"shortcuts/internal/models"
)

func TestMemoryLookups(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryLookups()

	m.IncrementKeywordLookup(ctx, "g", models.OutcomeKeyword)
	m.IncrementKeywordLookup(ctx, "g", models.OutcomeKeyword)
	m.IncrementKeywordLookup(ctx, "ddg", models.OutcomeDefault)

	lookups, err := m.GetAllKeywordLookups(ctx)
	if err != nil {
		t.Fatalf("GetAllKeywordLookups() error: %v", err)
	}
	if len(lookups) != 2 {
		t.Fatalf("got %d lookups, want 2", len(lookups))
	}
	if lookups[0].Keyword != "ddg" || lookups[0].Count != 1 {
		t.Errorf("lookups[0] = %+v, want ddg/1", lookups[0])
	}
	if lookups[1].Keyword != "g" || lookups[1].Count != 2 {
		t.Errorf("lookups[1] = %+v, want g/2", lookups[1])
	}
	if lookups[1].LastSeenAt.IsZero() {
		t.Error("LastSeenAt not set")
	}
}

func TestKeywordCollector(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryLookups()
	store.IncrementKeywordLookup(ctx, "g", models.OutcomeKeyword)
	store.IncrementKeywordLookup(ctx, "g", models.OutcomeKeyword)
	store.IncrementKeywordLookup(ctx, "w", models.OutcomeDefault)

	collector := &KeywordCollector{store: store}
	expected := `
# HELP shortcuts_keyword_lookups_total Total keyword lookup count by outcome
# TYPE shortcuts_keyword_lookups_total counter
shortcuts_keyword_lookups_total{keyword="g",outcome="keyword"} 2
shortcuts_keyword_lookups_total{keyword="w",outcome="default"} 1
`
	if err := testutil.CollectAndCompare(collector, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected collector output: %v", err)
	}
}

func TestRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	Register(reg, NewMemoryLookups())

	RecordActivation("open_urls", false)
	SetProviderUp("google", true)

	if got := testutil.ToFloat64(providerUp.WithLabelValues("google")); got != 1 {
		t.Errorf("provider_up = %v, want 1", got)
	}
	if got := testutil.ToFloat64(activations.WithLabelValues("open_urls", "failed")); got < 1 {
		t.Errorf("activations failed = %v, want >= 1", got)
	}
}
