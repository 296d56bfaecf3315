// Package ticker resolves user-supplied symbols to provider-canonical form
package ticker

import (
	"context"
	"strings"

	"github.com/akgoel-in/nivesh/internal/common"
	"github.com/akgoel-in/nivesh/internal/interfaces"
)

const (
	// ExchangeSuffix is appended when a bare symbol only resolves on the
	// local exchange.
	ExchangeSuffix = ".NS"

	// probeWindow is the number of recent daily sessions fetched per
	// resolution probe.
	probeWindow = 5
)

// Service implements TickerService against the market-data provider
type Service struct {
	market interfaces.MarketDataClient
	logger *common.Logger
}

// NewService creates a new ticker service
func NewService(market interfaces.MarketDataClient, logger *common.Logger) *Service {
	return &Service{
		market: market,
		logger: logger,
	}
}

// Normalize maps a raw symbol to its canonical form. Symbols containing a
// qualifier character (index, forex pair, or already suffixed) pass through
// untouched with no probes. Otherwise the bare symbol is probed first, then
// the exchange-suffixed form; when neither resolves the bare symbol comes
// back unchanged and the caller will see a no-data outcome downstream.
//
// Each probe is a live network call, so callers must not normalize the same
// raw ticker more than once per request.
func (s *Service) Normalize(ctx context.Context, raw string) string {
	symbol := strings.ToUpper(strings.TrimSpace(raw))
	if symbol == "" {
		return symbol
	}

	if strings.ContainsAny(symbol, ".=^-") {
		return symbol
	}

	if s.resolves(ctx, symbol) {
		return symbol
	}

	suffixed := symbol + ExchangeSuffix
	if s.resolves(ctx, suffixed) {
		s.logger.Debug().Str("raw", symbol).Str("canonical", suffixed).Msg("Resolved with exchange suffix")
		return suffixed
	}

	return symbol
}

// resolves probes the data source with a short recent daily window
func (s *Service) resolves(ctx context.Context, symbol string) bool {
	series, err := s.market.FetchDaily(ctx, symbol, probeWindow)
	if err != nil {
		s.logger.Debug().Err(err).Str("symbol", symbol).Msg("Resolution probe failed")
		return false
	}
	return len(series) > 0
}

// Ensure Service implements TickerService
var _ interfaces.TickerService = (*Service)(nil)
