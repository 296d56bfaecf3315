package yahoo

import (
	"context"
	"fmt"
	"math"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/akgoel-in/nivesh/internal/models"
)

// FetchMeta retrieves provider-precomputed statistics for a symbol from
// the quoteSummary endpoint. Unknown symbols and absent modules yield a
// meta with all fields nil, not an error.
func (c *Client) FetchMeta(ctx context.Context, symbol string) (*models.TickerMeta, error) {
	params := url.Values{}
	params.Set("modules", "summaryDetail")

	path := fmt.Sprintf("/v10/finance/quoteSummary/%s", url.PathEscape(symbol))

	body, err := c.get(ctx, path, params)
	if err != nil {
		if err == errNotFound {
			return &models.TickerMeta{}, nil
		}
		return nil, err
	}

	if desc := gjson.GetBytes(body, "quoteSummary.error.description"); desc.Exists() && desc.String() != "" {
		return nil, fmt.Errorf("quote summary error for %s: %s", symbol, desc.String())
	}

	detail := gjson.GetBytes(body, "quoteSummary.result.0.summaryDetail")
	if !detail.Exists() {
		return &models.TickerMeta{}, nil
	}

	return &models.TickerMeta{
		FiftyDayAverage:      metaValue(detail, "fiftyDayAverage"),
		TwoHundredDayAverage: metaValue(detail, "twoHundredDayAverage"),
		FiftyTwoWeekHigh:     metaValue(detail, "fiftyTwoWeekHigh"),
		FiftyTwoWeekLow:      metaValue(detail, "fiftyTwoWeekLow"),
	}, nil
}

// metaValue extracts a raw numeric field, nil when absent or unusable
func metaValue(detail gjson.Result, field string) *float64 {
	v := detail.Get(field + ".raw")
	if !v.Exists() {
		return nil
	}
	f := v.Float()
	if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
