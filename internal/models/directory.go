package models

import (
	"time"
)

// Listing is one row of the exchange symbol directory
type Listing struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// DirectorySnapshot is the process-wide cached symbol directory. Replaced
// wholesale on refresh; rows keep the source's natural order.
type DirectorySnapshot struct {
	Listings  []Listing `json:"listings"`
	FetchedAt time.Time `json:"fetched_at"`
}
