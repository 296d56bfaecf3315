// Package interfaces defines service contracts for Nivesh
package interfaces

import (
	"context"

	"github.com/akgoel-in/nivesh/internal/models"
)

// TickerService resolves user-supplied symbols to provider-canonical form
type TickerService interface {
	// Normalize maps a raw symbol to its canonical form. It never fails;
	// an unresolvable symbol comes back unchanged.
	Normalize(ctx context.Context, raw string) string
}

// AverageService computes trailing means and buy/avoid recommendations
type AverageService interface {
	// WeeklyAverage200 computes the 200-week average and recommendation
	// for a ticker. An empty weekly series is an error on this path.
	WeeklyAverage200(ctx context.Context, raw string) (*models.WeeklyAverage, error)

	// Snapshot aggregates the latest price, trailing means, provider
	// metadata and recommendation for a ticker. Failure to obtain the
	// latest price is fatal; individual averages degrade to null.
	Snapshot(ctx context.Context, raw string) (*models.StockSnapshot, error)

	// DailySeries returns about a year of daily closes for charting
	DailySeries(ctx context.Context, raw string) (models.PriceSeries, error)
}

// BatchService fans the pricing pipeline across a watch-list
type BatchService interface {
	// FetchAll returns one entry per watch-list symbol matching the
	// prefix filter, in completion order. Per-symbol failures are
	// downgraded to the entry's status; the batch itself never fails.
	FetchAll(ctx context.Context, symbols []string, prefix string) []models.WatchlistEntry
}

// DirectoryService serves the cached exchange symbol directory
type DirectoryService interface {
	// Lookup returns directory rows matching query, truncated to limit.
	// Refresh failures fall back to the stale snapshot, never an error.
	Lookup(ctx context.Context, query string, limit int) []models.Listing

	// Refresh refetches the directory when the snapshot is stale.
	// Used by the prewarm scheduler; the error is for logging only.
	Refresh(ctx context.Context) error
}

// ChartService renders price history as a PNG image
type ChartService interface {
	// RenderDaily renders a ticker's one-year daily close series
	RenderDaily(ctx context.Context, raw string) ([]byte, error)
}
