// Package common provides shared utilities for Nivesh
package common

import "time"

// Freshness TTLs for cached data components
const (
	FreshnessDirectory     = 1 * time.Hour // NSE symbol directory snapshot
	FreshnessWeeklyAverage = 1 * time.Hour // cached 200-week average results
)

// IsFresh returns true if the given timestamp is within the TTL
func IsFresh(updated time.Time, ttl time.Duration) bool {
	if updated.IsZero() {
		return false
	}
	return time.Since(updated) < ttl
}
