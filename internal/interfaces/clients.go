// Package interfaces defines service contracts for Nivesh
package interfaces

import (
	"context"

	"github.com/akgoel-in/nivesh/internal/models"
)

// MarketDataClient provides access to the market-data provider. An empty
// series with a nil error is the no-data outcome; errors are reserved for
// transport and payload faults.
type MarketDataClient interface {
	// FetchDaily retrieves up to window daily closes for a symbol
	FetchDaily(ctx context.Context, symbol string, window int) (models.PriceSeries, error)

	// FetchWeekly retrieves up to window weekly closes for a symbol
	FetchWeekly(ctx context.Context, symbol string, window int) (models.PriceSeries, error)

	// FetchMeta retrieves provider-precomputed statistics for a symbol
	FetchMeta(ctx context.Context, symbol string) (*models.TickerMeta, error)
}

// DirectoryClient fetches the exchange-listed symbol directory
type DirectoryClient interface {
	// FetchDirectory retrieves all listed symbols with company names
	FetchDirectory(ctx context.Context) ([]models.Listing, error)
}
