package yahoo

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/akgoel-in/nivesh/internal/models"
)

// FetchDaily retrieves up to window daily closes for a symbol
func (c *Client) FetchDaily(ctx context.Context, symbol string, window int) (models.PriceSeries, error) {
	return c.fetchSeries(ctx, symbol, "1d", window)
}

// FetchWeekly retrieves up to window weekly closes for a symbol
func (c *Client) FetchWeekly(ctx context.Context, symbol string, window int) (models.PriceSeries, error) {
	return c.fetchSeries(ctx, symbol, "1wk", window)
}

// fetchSeries tries the bulk download endpoint first and retries once
// through the per-symbol chart endpoint when the bulk result is empty or
// the bulk call fails. An empty series with nil error means no data.
func (c *Client) fetchSeries(ctx context.Context, symbol, interval string, window int) (models.PriceSeries, error) {
	series, err := c.downloadSeries(ctx, symbol, interval, window)
	if err == nil && len(series) > 0 {
		return series, nil
	}
	if err != nil {
		c.logger.Debug().Err(err).Str("symbol", symbol).Str("interval", interval).
			Msg("bulk download failed, retrying via chart endpoint")
	}
	return c.chartSeries(ctx, symbol, interval, window)
}

// downloadSeries fetches the CSV bulk download endpoint
func (c *Client) downloadSeries(ctx context.Context, symbol, interval string, window int) (models.PriceSeries, error) {
	params := url.Values{}
	now := time.Now()
	params.Set("period1", strconv.FormatInt(now.AddDate(0, 0, -lookbackDays(interval, window)).Unix(), 10))
	params.Set("period2", strconv.FormatInt(now.Unix(), 10))
	params.Set("interval", interval)
	params.Set("events", "history")
	params.Set("includeAdjustedClose", "true")

	path := fmt.Sprintf("/v7/finance/download/%s", url.PathEscape(symbol))

	body, err := c.get(ctx, path, params)
	if err != nil {
		if err == errNotFound {
			return nil, nil
		}
		return nil, err
	}

	return parseDownloadCSV(body, window)
}

// parseDownloadCSV extracts the close series from the download table,
// preferring the adjusted close column over the raw close. Rows whose
// value is missing or non-numeric are dropped, not coerced to zero.
func parseDownloadCSV(body []byte, window int) (models.PriceSeries, error) {
	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse download response: %w", err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	col := pickCloseColumn(records[0], records[1])
	if col < 0 {
		return nil, nil
	}

	points := make([]models.PricePoint, 0, len(records)-1)
	for _, row := range records[1:] {
		if col >= len(row) {
			continue
		}
		date, err := time.Parse("2006-01-02", row[0])
		if err != nil {
			continue
		}
		value, err := strconv.ParseFloat(row[col], 64)
		if err != nil || value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
			continue
		}
		points = append(points, models.PricePoint{Date: date, Close: value})
	}

	return pricePointsToSeries(points, window), nil
}

// pickCloseColumn returns the index of the price column to read: the
// adjusted close when present, else the plain close, else any other
// close-like header, else the first numeric column after the date.
func pickCloseColumn(header, sample []string) int {
	adjusted, plain, closeLike := -1, -1, -1
	for i, h := range header {
		switch name := strings.ToLower(strings.TrimSpace(h)); {
		case name == "adj close" || name == "adjclose" || name == "adjusted close":
			if adjusted < 0 {
				adjusted = i
			}
		case name == "close":
			if plain < 0 {
				plain = i
			}
		case strings.Contains(name, "close"):
			if closeLike < 0 {
				closeLike = i
			}
		}
	}
	if adjusted >= 0 {
		return adjusted
	}
	if plain >= 0 {
		return plain
	}
	if closeLike >= 0 {
		return closeLike
	}
	for i := 1; i < len(sample); i++ {
		if _, err := strconv.ParseFloat(sample[i], 64); err == nil {
			return i
		}
	}
	return -1
}

// chartResponse is the v8 chart endpoint payload. Close values arrive as
// a mix of numbers and JSON nulls, hence interface{}.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []interface{} `json:"close"`
				} `json:"quote"`
				AdjClose []struct {
					AdjClose []interface{} `json:"adjclose"`
				} `json:"adjclose"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// chartSeries fetches the per-symbol chart endpoint
func (c *Client) chartSeries(ctx context.Context, symbol, interval string, window int) (models.PriceSeries, error) {
	params := url.Values{}
	params.Set("interval", interval)
	params.Set("range", rangeParam(interval, window))

	path := fmt.Sprintf("/v8/finance/chart/%s", url.PathEscape(symbol))

	body, err := c.get(ctx, path, params)
	if err != nil {
		if err == errNotFound {
			return nil, nil
		}
		return nil, err
	}

	var parsed chartResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode chart response: %w", err)
	}
	if parsed.Chart.Error != nil {
		return nil, fmt.Errorf("chart error for %s: %s", symbol, parsed.Chart.Error.Description)
	}
	if len(parsed.Chart.Result) == 0 {
		return nil, nil
	}

	result := parsed.Chart.Result[0]

	// Prefer the dividend/split adjusted series when the payload carries one
	var closes []interface{}
	if len(result.Indicators.AdjClose) > 0 && len(result.Indicators.AdjClose[0].AdjClose) > 0 {
		closes = result.Indicators.AdjClose[0].AdjClose
	} else if len(result.Indicators.Quote) > 0 {
		closes = result.Indicators.Quote[0].Close
	}

	points := make([]models.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) {
			break
		}
		value, ok := toFloat(closes[i])
		if !ok || value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
			continue
		}
		points = append(points, models.PricePoint{Date: time.Unix(ts, 0).UTC(), Close: value})
	}

	return pricePointsToSeries(points, window), nil
}

// toFloat unwraps a chart value that may be a number or JSON null
func toFloat(v interface{}) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

// lookbackDays converts a sample-count window into a calendar lookback
// wide enough to cover weekends, holidays and short histories.
func lookbackDays(interval string, window int) int {
	if interval == "1wk" {
		return window*7 + 30
	}
	return window*2 + 7
}

// rangeParam buckets a sample-count window into the chart endpoint's
// fixed range values.
func rangeParam(interval string, window int) string {
	if interval == "1wk" {
		switch {
		case window <= 26:
			return "6mo"
		case window <= 52:
			return "1y"
		case window <= 104:
			return "2y"
		case window <= 260:
			return "5y"
		default:
			return "10y"
		}
	}
	switch {
	case window <= 5:
		return "5d"
	case window <= 22:
		return "1mo"
	case window <= 66:
		return "3mo"
	case window <= 132:
		return "6mo"
	case window <= 264:
		return "1y"
	case window <= 528:
		return "2y"
	default:
		return "5y"
	}
}
