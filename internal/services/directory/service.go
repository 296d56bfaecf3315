package directory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/akgoel-in/nivesh/internal/common"
	"github.com/akgoel-in/nivesh/internal/interfaces"
	"github.com/akgoel-in/nivesh/internal/models"
)

// Service implements DirectoryService. The listing directory is
// refreshed lazily on lookup, at most once per freshness window, and a
// failed refresh keeps serving the previous copy.
type Service struct {
	client interfaces.DirectoryClient
	logger *common.Logger

	mu       sync.Mutex
	snapshot models.DirectorySnapshot
}

// NewService creates a new directory service
func NewService(client interfaces.DirectoryClient, logger *common.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Lookup returns listings whose symbol or name contains the query,
// case-insensitively, in directory order. A non-positive limit disables
// truncation. An empty query returns nothing without touching the
// directory.
func (s *Service) Lookup(ctx context.Context, query string, limit int) []models.Listing {
	query = strings.ToUpper(strings.TrimSpace(query))
	if query == "" {
		return []models.Listing{}
	}

	listings := s.freshListings(ctx)

	matches := make([]models.Listing, 0)
	for _, listing := range listings {
		if !strings.Contains(strings.ToUpper(listing.Symbol), query) &&
			!strings.Contains(strings.ToUpper(listing.Name), query) {
			continue
		}
		matches = append(matches, listing)
		if limit > 0 && len(matches) == limit {
			break
		}
	}
	return matches
}

// Refresh fetches the directory unconditionally. Used by the prewarm
// scheduler; lookups themselves never surface a refresh failure.
func (s *Service) Refresh(ctx context.Context) error {
	listings, err := s.client.FetchDirectory(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh symbol directory: %w", err)
	}

	s.mu.Lock()
	s.snapshot = models.DirectorySnapshot{Listings: listings, FetchedAt: time.Now()}
	s.mu.Unlock()

	s.logger.Info().Int("listings", len(listings)).Msg("Symbol directory refreshed")
	return nil
}

// freshListings returns the current directory, refreshing it first when
// the copy on hand has aged out. The lock is held across the fetch so
// concurrent lookups trigger a single refresh.
func (s *Service) freshListings(ctx context.Context) []models.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()

	if common.IsFresh(s.snapshot.FetchedAt, common.FreshnessDirectory) {
		return s.snapshot.Listings
	}

	listings, err := s.client.FetchDirectory(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Directory refresh failed, serving the previous copy")
		return s.snapshot.Listings
	}

	s.snapshot = models.DirectorySnapshot{Listings: listings, FetchedAt: time.Now()}
	s.logger.Info().Int("listings", len(listings)).Msg("Symbol directory refreshed")
	return s.snapshot.Listings
}

// Ensure Service implements DirectoryService
var _ interfaces.DirectoryService = (*Service)(nil)
