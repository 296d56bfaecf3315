// Package models defines data structures for Nivesh
package models

import (
	"time"
)

// PricePoint is a single (date, close) observation in a price series
type PricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// PriceSeries is a close-price series ordered ascending by date with no
// duplicate dates. Absent or non-numeric provider values are dropped before
// construction, never stored as zero or NaN. An empty series is the no-data
// outcome; callers branch on it rather than on an error.
type PriceSeries []PricePoint

// Latest returns the most recent close. ok is false for an empty series.
func (s PriceSeries) Latest() (float64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[len(s)-1].Close, true
}

// Closes returns the close values in date order.
func (s PriceSeries) Closes() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Close
	}
	return out
}
