package batch

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/akgoel-in/nivesh/internal/common"
	"github.com/akgoel-in/nivesh/internal/interfaces"
	"github.com/akgoel-in/nivesh/internal/models"
	"github.com/akgoel-in/nivesh/internal/services/ticker"
)

const (
	maxConcurrent    = 10 // upper bound on in-flight provider calls
	batchPriceWindow = 5  // recent sessions fetched per symbol
)

// Service implements BatchService
type Service struct {
	market      interfaces.MarketDataClient
	averages    interfaces.AverageService
	concurrency int
	logger      *common.Logger
}

// NewService creates a new batch service. concurrency is clamped to
// [1, 10]; zero or negative selects the maximum.
func NewService(market interfaces.MarketDataClient, averages interfaces.AverageService, concurrency int, logger *common.Logger) *Service {
	if concurrency <= 0 || concurrency > maxConcurrent {
		concurrency = maxConcurrent
	}
	return &Service{
		market:      market,
		averages:    averages,
		concurrency: concurrency,
		logger:      logger,
	}
}

// FetchAll fetches live prices for every symbol surviving the prefix
// filter. Each symbol produces exactly one entry; a failure on one
// symbol never disturbs the others. Entries arrive in completion order.
func (s *Service) FetchAll(ctx context.Context, symbols []string, prefix string) []models.WatchlistEntry {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))

	filtered := symbols
	if prefix != "" {
		filtered = make([]string, 0, len(symbols))
		for _, symbol := range symbols {
			if strings.HasPrefix(symbol, prefix) {
				filtered = append(filtered, symbol)
			}
		}
	}

	start := time.Now()
	results := make([]models.WatchlistEntry, 0, len(filtered))

	sem := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, symbol := range filtered {
		wg.Add(1)
		go func(symbol string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			entry := s.fetchOne(ctx, symbol)

			mu.Lock()
			results = append(results, entry)
			mu.Unlock()
		}(symbol)
	}

	wg.Wait()

	s.logger.Info().
		Int("symbols", len(filtered)).
		Str("prefix", prefix).
		Dur("elapsed", time.Since(start)).
		Msg("Watchlist batch complete")

	return results
}

// fetchOne builds the entry for a single watch-list symbol. Watch-list
// symbols are bare NSE codes, so the exchange suffix is appended
// directly instead of going through symbol resolution.
func (s *Service) fetchOne(ctx context.Context, symbol string) models.WatchlistEntry {
	entry := models.WatchlistEntry{Symbol: symbol}

	series, err := s.market.FetchDaily(ctx, symbol+ticker.ExchangeSuffix, batchPriceWindow)
	if err != nil {
		s.logger.Debug().Err(err).Str("symbol", symbol).Msg("Watchlist price fetch failed")
		entry.Status = models.ErrorStatus(err.Error())
		return entry
	}
	latest, ok := series.Latest()
	if !ok {
		entry.Status = models.StatusNoData
		return entry
	}

	entry.Price = &latest
	entry.Status = models.StatusSuccess

	// Best-effort: a missing average never downgrades the status
	weekly, err := s.averages.WeeklyAverage200(ctx, symbol+ticker.ExchangeSuffix)
	if err != nil {
		s.logger.Debug().Err(err).Str("symbol", symbol).Msg("Watchlist weekly average unavailable")
		return entry
	}
	entry.Avg200Week = weekly.Average

	return entry
}

// Ensure Service implements BatchService
var _ interfaces.BatchService = (*Service)(nil)
