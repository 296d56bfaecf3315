// Package average computes trailing means and buy/avoid recommendations
package average

import (
	"github.com/akgoel-in/nivesh/internal/models"
)

// TrailingMean calculates the unweighted mean of the last window samples.
// ok is false when the series holds fewer than window samples.
func TrailingMean(series models.PriceSeries, window int) (float64, bool) {
	if window <= 0 || len(series) < window {
		return 0, false
	}

	sum := 0.0
	for _, p := range series[len(series)-window:] {
		sum += p.Close
	}
	return sum / float64(window), true
}

// Recommend derives the three-way verdict from the latest price and the
// 200-week average. It never fails; a missing side degrades to neutral
// with the insufficient-data text, an exact tie keeps the equality text.
func Recommend(latestPrice, average *float64) models.Recommendation {
	if latestPrice == nil || average == nil {
		return models.Recommendation{
			Kind: models.RecommendationNeutral,
			Text: models.RecTextInsufficient,
		}
	}

	switch {
	case *latestPrice < *average:
		return models.Recommendation{Kind: models.RecommendationBuy, Text: models.RecTextBuy}
	case *latestPrice > *average:
		return models.Recommendation{Kind: models.RecommendationAvoid, Text: models.RecTextAvoid}
	default:
		return models.Recommendation{Kind: models.RecommendationNeutral, Text: models.RecTextEqual}
	}
}

// DiffPct returns the percentage distance of the latest price from the
// average, nil when the average is zero or either side is missing.
func DiffPct(latestPrice, average *float64) *float64 {
	if latestPrice == nil || average == nil || *average == 0 {
		return nil
	}
	pct := (*latestPrice - *average) / *average * 100
	return &pct
}
