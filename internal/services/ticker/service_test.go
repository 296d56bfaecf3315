package ticker

import (
	"context"
	"errors"
	"testing"

	"github.com/akgoel-in/nivesh/internal/common"
	"github.com/akgoel-in/nivesh/internal/models"
)

// --- Mocks ---

// mockMarketClient resolves the symbols in data; everything else is empty.
type mockMarketClient struct {
	data   map[string]models.PriceSeries
	err    error
	probes []string
}

func (m *mockMarketClient) FetchDaily(_ context.Context, symbol string, _ int) (models.PriceSeries, error) {
	m.probes = append(m.probes, symbol)
	if m.err != nil {
		return nil, m.err
	}
	return m.data[symbol], nil
}

func (m *mockMarketClient) FetchWeekly(_ context.Context, _ string, _ int) (models.PriceSeries, error) {
	return nil, nil
}

func (m *mockMarketClient) FetchMeta(_ context.Context, _ string) (*models.TickerMeta, error) {
	return &models.TickerMeta{}, nil
}

func someSeries() models.PriceSeries {
	return models.PriceSeries{{Close: 100.0}}
}

// --- Tests ---

func TestNormalize_BareResolvable(t *testing.T) {
	market := &mockMarketClient{data: map[string]models.PriceSeries{"AAPL": someSeries()}}
	svc := NewService(market, common.NewSilentLogger())

	got := svc.Normalize(context.Background(), "AAPL")
	if got != "AAPL" {
		t.Errorf("Normalize(AAPL) = %q, want AAPL", got)
	}
	if len(market.probes) != 1 {
		t.Errorf("expected 1 probe, got %d: %v", len(market.probes), market.probes)
	}
}

func TestNormalize_SuffixedFallback(t *testing.T) {
	market := &mockMarketClient{data: map[string]models.PriceSeries{"RELIANCE.NS": someSeries()}}
	svc := NewService(market, common.NewSilentLogger())

	got := svc.Normalize(context.Background(), "RELIANCE")
	if got != "RELIANCE.NS" {
		t.Errorf("Normalize(RELIANCE) = %q, want RELIANCE.NS", got)
	}
	if len(market.probes) != 2 {
		t.Fatalf("expected 2 probes, got %d: %v", len(market.probes), market.probes)
	}
	if market.probes[0] != "RELIANCE" || market.probes[1] != "RELIANCE.NS" {
		t.Errorf("expected probe order [RELIANCE RELIANCE.NS], got %v", market.probes)
	}
}

func TestNormalize_QualifiedPassThrough(t *testing.T) {
	market := &mockMarketClient{}
	svc := NewService(market, common.NewSilentLogger())

	tests := []struct {
		raw  string
		want string
	}{
		{"^NSEI", "^NSEI"},
		{"USDINR=X", "USDINR=X"},
		{"RELIANCE.NS", "RELIANCE.NS"},
		{"BAJAJ-AUTO", "BAJAJ-AUTO"},
		{"reliance.ns", "RELIANCE.NS"},
	}

	for _, tt := range tests {
		if got := svc.Normalize(context.Background(), tt.raw); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
	if len(market.probes) != 0 {
		t.Errorf("expected zero probes for qualified symbols, got %v", market.probes)
	}
}

func TestNormalize_UnresolvableReturnsInput(t *testing.T) {
	market := &mockMarketClient{}
	svc := NewService(market, common.NewSilentLogger())

	got := svc.Normalize(context.Background(), "ZZZZZZ")
	if got != "ZZZZZZ" {
		t.Errorf("Normalize(ZZZZZZ) = %q, want ZZZZZZ", got)
	}
	if len(market.probes) != 2 {
		t.Errorf("expected 2 probes before giving up, got %d", len(market.probes))
	}
}

func TestNormalize_ProbeErrorTreatedAsUnresolved(t *testing.T) {
	market := &mockMarketClient{err: errors.New("upstream down")}
	svc := NewService(market, common.NewSilentLogger())

	got := svc.Normalize(context.Background(), "TCS")
	if got != "TCS" {
		t.Errorf("Normalize(TCS) = %q under probe errors, want TCS", got)
	}
}

func TestNormalize_TrimsAndUppercases(t *testing.T) {
	market := &mockMarketClient{data: map[string]models.PriceSeries{"TCS.NS": someSeries()}}
	svc := NewService(market, common.NewSilentLogger())

	got := svc.Normalize(context.Background(), "  tcs ")
	if got != "TCS.NS" {
		t.Errorf("Normalize('  tcs ') = %q, want TCS.NS", got)
	}
	if market.probes[0] != "TCS" {
		t.Errorf("expected first probe on trimmed upper-cased TCS, got %q", market.probes[0])
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	market := &mockMarketClient{}
	svc := NewService(market, common.NewSilentLogger())

	if got := svc.Normalize(context.Background(), "   "); got != "" {
		t.Errorf("Normalize(blank) = %q, want empty", got)
	}
	if len(market.probes) != 0 {
		t.Errorf("expected no probes for blank input, got %v", market.probes)
	}
}
