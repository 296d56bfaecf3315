package models

// Recommendation kinds derived from comparing the latest price to the
// 200-week average.
const (
	RecommendationBuy     = "buy"
	RecommendationAvoid   = "avoid"
	RecommendationNeutral = "neutral"
)

// Recommendation texts. The comparator in the average engine picks exactly
// one of these; the neutral kind carries either the equality text or the
// insufficient-data text depending on whether both sides were present.
const (
	RecTextBuy          = "Good to buy - price is below the 200-week average"
	RecTextAvoid        = "Do not buy - price is above the 200-week average"
	RecTextEqual        = "Price equals the 200-week average"
	RecTextInsufficient = "Insufficient data to form a recommendation"
)

// Window labels used as keys in StockSnapshot.Averages
const (
	Window5Day    = "5d"
	Window20Day   = "20d"
	Window50Day   = "50d"
	Window100Day  = "100d"
	Window200Day  = "200d"
	Window200Week = "200w"
)

// Recommendation is the three-way verdict for a ticker
type Recommendation struct {
	Kind string `json:"kind"` // buy, avoid, neutral
	Text string `json:"text"`
}

// WeeklyAverage is the 200-week average result for one ticker
type WeeklyAverage struct {
	Ticker         string         `json:"ticker"`
	Average        *float64       `json:"avg_200w"`
	LatestPrice    *float64       `json:"latest_price"`
	WeeksUsed      int            `json:"weeks_used"`
	DiffPct        *float64       `json:"diff_pct"`
	Recommendation Recommendation `json:"recommendation"`
}

// StockSnapshot is the full per-ticker response: latest price, trailing
// means keyed by window label, 52-week extremes from provider metadata and
// the derived recommendation. Built fresh per request, never mutated after
// construction.
type StockSnapshot struct {
	Ticker         string              `json:"ticker"`
	LatestPrice    *float64            `json:"latest_price"`
	Averages       map[string]*float64 `json:"averages"`
	WeeksUsed      int                 `json:"weeks_used"`
	DiffPct        *float64            `json:"diff_pct"`
	High52Week     *float64            `json:"high_52w"`
	Low52Week      *float64            `json:"low_52w"`
	Recommendation Recommendation      `json:"recommendation"`
}

// TickerMeta holds provider-precomputed statistics for a symbol. Fields are
// nil when the provider omits them; nothing here is recomputed locally.
type TickerMeta struct {
	FiftyDayAverage      *float64 `json:"fifty_day_average"`
	TwoHundredDayAverage *float64 `json:"two_hundred_day_average"`
	FiftyTwoWeekHigh     *float64 `json:"fifty_two_week_high"`
	FiftyTwoWeekLow      *float64 `json:"fifty_two_week_low"`
}
