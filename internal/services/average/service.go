package average

import (
	"context"
	"errors"
	"fmt"

	"github.com/akgoel-in/nivesh/internal/common"
	"github.com/akgoel-in/nivesh/internal/interfaces"
	"github.com/akgoel-in/nivesh/internal/models"
)

// ErrNoData marks tickers the provider has no usable history for.
// Callers can test for it with errors.Is.
var ErrNoData = errors.New("no data available")

const (
	weeklyFetchWindow = 220 // weekly samples requested from the provider
	weeklyAvgWindow   = 200 // samples in the long-horizon mean
	latestPriceWindow = 10  // recent daily sessions for the latest price
	dailyYearWindow   = 260 // about a year of daily sessions
)

// dayWindows are the trailing-mean windows computed over the daily series
var dayWindows = []struct {
	label  string
	window int
}{
	{models.Window5Day, 5},
	{models.Window20Day, 20},
	{models.Window50Day, 50},
	{models.Window100Day, 100},
	{models.Window200Day, 200},
}

// Service implements AverageService
type Service struct {
	market interfaces.MarketDataClient
	ticker interfaces.TickerService
	cache  *Cache
	logger *common.Logger
}

// NewService creates a new average service.
// cache may be nil, in which case a default hourly cache is used.
func NewService(market interfaces.MarketDataClient, ticker interfaces.TickerService, cache *Cache, logger *common.Logger) *Service {
	if cache == nil {
		cache = NewCache(common.FreshnessWeeklyAverage)
	}
	return &Service{
		market: market,
		ticker: ticker,
		cache:  cache,
		logger: logger,
	}
}

// WeeklyAverage200 computes the 200-week average and recommendation for a
// ticker. The raw symbol is normalized exactly once; an empty weekly
// series is an error on this path.
func (s *Service) WeeklyAverage200(ctx context.Context, raw string) (*models.WeeklyAverage, error) {
	canonical := s.ticker.Normalize(ctx, raw)
	return s.weeklyForCanonical(ctx, canonical)
}

// weeklyForCanonical serves the weekly-200 result for an already canonical
// ticker, through the cache.
func (s *Service) weeklyForCanonical(ctx context.Context, canonical string) (*models.WeeklyAverage, error) {
	if cached, ok := s.cache.Get(canonical); ok {
		s.logger.Debug().Str("ticker", canonical).Msg("Weekly average cache hit")
		return cached, nil
	}

	series, err := s.market.FetchWeekly(ctx, canonical, weeklyFetchWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weekly series for %s: %w", canonical, err)
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("no weekly data found for ticker %s: %w", canonical, ErrNoData)
	}

	weeksUsed := len(series)
	if weeksUsed > weeklyAvgWindow {
		weeksUsed = weeklyAvgWindow
	}

	avg, _ := TrailingMean(series, weeksUsed)
	latest, _ := series.Latest()

	result := models.WeeklyAverage{
		Ticker:         canonical,
		Average:        &avg,
		LatestPrice:    &latest,
		WeeksUsed:      weeksUsed,
		DiffPct:        DiffPct(&latest, &avg),
		Recommendation: Recommend(&latest, &avg),
	}

	s.cache.Put(canonical, result)
	s.logger.Info().
		Str("ticker", canonical).
		Int("weeks_used", weeksUsed).
		Float64("avg_200w", avg).
		Str("recommendation", result.Recommendation.Kind).
		Msg("Computed 200-week average")

	return &result, nil
}

// Snapshot aggregates the latest price, trailing means, provider metadata
// and recommendation for a ticker. The latest price is load-bearing and
// its absence fails the whole call; every other component degrades to a
// null field on its own failure.
func (s *Service) Snapshot(ctx context.Context, raw string) (*models.StockSnapshot, error) {
	canonical := s.ticker.Normalize(ctx, raw)

	recent, err := s.market.FetchDaily(ctx, canonical, latestPriceWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest price for %s: %w", canonical, err)
	}
	latest, ok := recent.Latest()
	if !ok {
		return nil, fmt.Errorf("no price data found for ticker %s: %w", canonical, ErrNoData)
	}

	averages := map[string]*float64{
		models.Window5Day:    nil,
		models.Window20Day:   nil,
		models.Window50Day:   nil,
		models.Window100Day:  nil,
		models.Window200Day:  nil,
		models.Window200Week: nil,
	}

	year, err := s.market.FetchDaily(ctx, canonical, dailyYearWindow)
	if err != nil {
		s.logger.Warn().Err(err).Str("ticker", canonical).Msg("Daily history unavailable, day averages degraded")
		year = nil
	}
	for _, w := range dayWindows {
		if v, ok := TrailingMean(year, w.window); ok {
			averages[w.label] = &v
		}
	}

	meta, err := s.market.FetchMeta(ctx, canonical)
	if err != nil {
		s.logger.Warn().Err(err).Str("ticker", canonical).Msg("Provider metadata unavailable")
		meta = &models.TickerMeta{}
	}
	// The provider's own 200-day figure wins over the locally computed one
	if meta.TwoHundredDayAverage != nil {
		averages[models.Window200Day] = meta.TwoHundredDayAverage
	}

	snapshot := &models.StockSnapshot{
		Ticker:      canonical,
		LatestPrice: &latest,
		Averages:    averages,
		High52Week:  meta.FiftyTwoWeekHigh,
		Low52Week:   meta.FiftyTwoWeekLow,
	}

	weekly, err := s.weeklyForCanonical(ctx, canonical)
	if err != nil {
		s.logger.Warn().Err(err).Str("ticker", canonical).Msg("200-week average unavailable")
		snapshot.Recommendation = Recommend(&latest, nil)
		return snapshot, nil
	}

	averages[models.Window200Week] = weekly.Average
	snapshot.WeeksUsed = weekly.WeeksUsed
	snapshot.DiffPct = weekly.DiffPct
	snapshot.Recommendation = weekly.Recommendation

	return snapshot, nil
}

// DailySeries returns about a year of daily closes for charting
func (s *Service) DailySeries(ctx context.Context, raw string) (models.PriceSeries, error) {
	canonical := s.ticker.Normalize(ctx, raw)

	series, err := s.market.FetchDaily(ctx, canonical, dailyYearWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch daily series for %s: %w", canonical, err)
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("no daily data found for ticker %s: %w", canonical, ErrNoData)
	}
	return series, nil
}

// Ensure Service implements AverageService
var _ interfaces.AverageService = (*Service)(nil)
