package charts

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/akgoel-in/nivesh/internal/common"
	"github.com/akgoel-in/nivesh/internal/interfaces"
)

// Service implements ChartService
type Service struct {
	averages interfaces.AverageService
	logger   *common.Logger
}

// NewService creates a new chart service
func NewService(averages interfaces.AverageService, logger *common.Logger) *Service {
	return &Service{
		averages: averages,
		logger:   logger,
	}
}

// RenderDaily renders about a year of daily closes for a ticker as a
// PNG line chart, with the 200-week average drawn as a dashed reference
// line when it is available. Returns raw PNG bytes.
func (s *Service) RenderDaily(ctx context.Context, raw string) ([]byte, error) {
	series, err := s.averages.DailySeries(ctx, raw)
	if err != nil {
		return nil, err
	}
	if len(series) < 2 {
		return nil, fmt.Errorf("need at least 2 data points, got %d", len(series))
	}

	xValues := make([]time.Time, len(series))
	closeY := make([]float64, len(series))
	for i, p := range series {
		xValues[i] = p.Date
		closeY[i] = p.Close
	}

	closeSeries := chart.TimeSeries{
		Name: "Close",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"), // blue-600
			StrokeWidth: 2.0,
		},
		XValues: xValues,
		YValues: closeY,
	}

	graphSeries := []chart.Series{closeSeries}

	title := strings.ToUpper(strings.TrimSpace(raw))
	weekly, err := s.averages.WeeklyAverage200(ctx, raw)
	if err != nil {
		s.logger.Debug().Err(err).Str("ticker", title).Msg("Chart reference line unavailable")
	} else {
		title = weekly.Ticker
		if weekly.Average != nil {
			avgY := make([]float64, len(series))
			for i := range avgY {
				avgY[i] = *weekly.Average
			}
			graphSeries = append(graphSeries, chart.TimeSeries{
				Name: "200-week average",
				Style: chart.Style{
					StrokeColor:     drawing.ColorFromHex("f59e0b"), // amber-500
					StrokeWidth:     1.5,
					StrokeDashArray: []float64{5.0, 3.0},
				},
				XValues: xValues,
				YValues: avgY,
			})
		}
	}

	graph := chart.Chart{
		Title:  title + " Daily Close",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 06")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		Series: graphSeries,
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Ensure Service implements ChartService
var _ interfaces.ChartService = (*Service)(nil)
