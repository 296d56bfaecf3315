package models

// Watch-list entry statuses. A fetch fault is reported as
// "error: <message>" via ErrorStatus.
const (
	StatusSuccess = "success"
	StatusNoData  = "no_data"
)

// ErrorStatus formats a per-symbol fetch failure as a status string.
func ErrorStatus(msg string) string {
	return "error: " + msg
}

// WatchlistEntry is the per-symbol result of a batch fetch
type WatchlistEntry struct {
	Symbol     string   `json:"symbol"`
	Price      *float64 `json:"price"`
	Avg200Week *float64 `json:"avg_200w"`
	Status     string   `json:"status"`
}

// WatchlistResponse wraps batch results for the JSON API
type WatchlistResponse struct {
	Stocks []WatchlistEntry `json:"stocks"`
}
