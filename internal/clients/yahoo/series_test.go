package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const downloadCSV = `Date,Open,High,Low,Close,Adj Close,Volume
2024-01-01,10.0,11.0,9.0,10.50,10.00,1000
2024-01-02,10.5,12.0,10.0,11.50,11.00,1200
2024-01-03,11.5,12.5,11.0,12.50,12.00,900
`

const chartJSON = `{"chart":{"result":[{"timestamp":[1704067200,1704153600,1704240000],` +
	`"indicators":{"quote":[{"close":[10.5,11.5,12.5]}],` +
	`"adjclose":[{"adjclose":[10.0,11.0,12.0]}]}}],"error":null}}`

func TestFetchDaily_UsesBulkDownload(t *testing.T) {
	var downloadCalls, chartCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/v7/finance/download/"):
			downloadCalls++
			w.Write([]byte(downloadCSV))
		case strings.HasPrefix(r.URL.Path, "/v8/finance/chart/"):
			chartCalls++
			w.Write([]byte(chartJSON))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	series, err := client.FetchDaily(context.Background(), "RELIANCE.NS", 10)
	if err != nil {
		t.Fatalf("FetchDaily failed: %v", err)
	}

	if downloadCalls != 1 {
		t.Errorf("expected 1 download call, got %d", downloadCalls)
	}
	if chartCalls != 0 {
		t.Errorf("expected no chart call when bulk succeeds, got %d", chartCalls)
	}
	if len(series) != 3 {
		t.Fatalf("expected 3 points, got %d", len(series))
	}
	// Adj Close column preferred over Close
	if series[0].Close != 10.00 || series[2].Close != 12.00 {
		t.Errorf("expected adjusted closes [10 .. 12], got [%v .. %v]", series[0].Close, series[2].Close)
	}
	if !series[0].Date.Before(series[2].Date) {
		t.Error("expected series ordered ascending by date")
	}
}

func TestFetchDaily_FallsBackToChartWhenBulkEmpty(t *testing.T) {
	var chartCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/v7/finance/download/"):
			w.Write([]byte("Date,Open,High,Low,Close,Adj Close,Volume\n"))
		case strings.HasPrefix(r.URL.Path, "/v8/finance/chart/"):
			chartCalls++
			if got := r.URL.Query().Get("interval"); got != "1d" {
				t.Errorf("expected interval 1d on fallback, got %q", got)
			}
			w.Write([]byte(chartJSON))
		}
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	series, err := client.FetchDaily(context.Background(), "RELIANCE.NS", 10)
	if err != nil {
		t.Fatalf("FetchDaily failed: %v", err)
	}

	if chartCalls != 1 {
		t.Errorf("expected exactly 1 chart fallback call, got %d", chartCalls)
	}
	if len(series) != 3 {
		t.Fatalf("expected 3 points from chart fallback, got %d", len(series))
	}
	// adjclose indicator preferred over quote close
	if series[0].Close != 10.0 {
		t.Errorf("expected adjusted close 10.0, got %v", series[0].Close)
	}
}

func TestFetchDaily_FallsBackToChartWhenBulkFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/v7/finance/download/"):
			w.WriteHeader(http.StatusUnauthorized)
		case strings.HasPrefix(r.URL.Path, "/v8/finance/chart/"):
			w.Write([]byte(chartJSON))
		}
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	series, err := client.FetchDaily(context.Background(), "TCS.NS", 10)
	if err != nil {
		t.Fatalf("FetchDaily failed: %v", err)
	}
	if len(series) != 3 {
		t.Errorf("expected 3 points, got %d", len(series))
	}
}

func TestFetchDaily_NoDataIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	series, err := client.FetchDaily(context.Background(), "NOSUCH", 5)
	if err != nil {
		t.Fatalf("expected nil error for unknown symbol, got %v", err)
	}
	if len(series) != 0 {
		t.Errorf("expected empty series, got %d points", len(series))
	}
}

func TestFetchDaily_ServerErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.FetchDaily(context.Background(), "RELIANCE.NS", 5)
	if err == nil {
		t.Fatal("expected error when both endpoints fault")
	}
}

func TestFetchDaily_WindowTrimsToMostRecent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(downloadCSV))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	series, err := client.FetchDaily(context.Background(), "INFY.NS", 2)
	if err != nil {
		t.Fatalf("FetchDaily failed: %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("expected window of 2 points, got %d", len(series))
	}
	if series[0].Close != 11.00 || series[1].Close != 12.00 {
		t.Errorf("expected most recent 2 closes [11 12], got [%v %v]", series[0].Close, series[1].Close)
	}
}

func TestFetchWeekly_UsesWeeklyInterval(t *testing.T) {
	var interval string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		interval = r.URL.Query().Get("interval")
		w.Write([]byte(downloadCSV))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	if _, err := client.FetchWeekly(context.Background(), "RELIANCE.NS", 220); err != nil {
		t.Fatalf("FetchWeekly failed: %v", err)
	}
	if interval != "1wk" {
		t.Errorf("expected interval 1wk, got %q", interval)
	}
}

func TestChartSeries_SkipsNullAndZeroBars(t *testing.T) {
	payload := `{"chart":{"result":[{"timestamp":[1704067200,1704153600,1704240000,1704326400],` +
		`"indicators":{"quote":[{"close":[100.0,null,0,101.0]}]}}],"error":null}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/v7/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	series, err := client.FetchDaily(context.Background(), "SBIN.NS", 10)
	if err != nil {
		t.Fatalf("FetchDaily failed: %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("expected null and zero bars skipped, got %d points", len(series))
	}
	if series[0].Close != 100.0 || series[1].Close != 101.0 {
		t.Errorf("expected closes [100 101], got [%v %v]", series[0].Close, series[1].Close)
	}
}

func TestChartSeries_ErrorPayload(t *testing.T) {
	payload := `{"chart":{"result":null,"error":{"code":"Bad Request","description":"invalid range"}}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/v7/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.FetchDaily(context.Background(), "SBIN.NS", 10)
	if err == nil {
		t.Fatal("expected error for chart error payload")
	}
	if !strings.Contains(err.Error(), "invalid range") {
		t.Errorf("expected error to carry the chart description, got %v", err)
	}
}

func TestPickCloseColumn(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		sample []string
		want   int
	}{
		{
			name:   "adjusted close preferred",
			header: []string{"Date", "Open", "Close", "Adj Close"},
			sample: []string{"2024-01-01", "10", "11", "10.5"},
			want:   3,
		},
		{
			name:   "plain close when no adjusted",
			header: []string{"Date", "Open", "Close", "Volume"},
			sample: []string{"2024-01-01", "10", "11", "1000"},
			want:   2,
		},
		{
			name:   "close-like header as last resort before numeric scan",
			header: []string{"Date", "Open", "Prev Close"},
			sample: []string{"2024-01-01", "10", "11"},
			want:   2,
		},
		{
			name:   "first numeric column when nothing close-like",
			header: []string{"Date", "Label", "Price"},
			sample: []string{"2024-01-01", "abc", "11.5"},
			want:   2,
		},
		{
			name:   "no usable column",
			header: []string{"Date", "Label"},
			sample: []string{"2024-01-01", "abc"},
			want:   -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pickCloseColumn(tt.header, tt.sample); got != tt.want {
				t.Errorf("pickCloseColumn() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseDownloadCSV_DropsNonNumericRows(t *testing.T) {
	csvBody := "Date,Close,Adj Close\n" +
		"2024-01-01,10.5,10.0\n" +
		"2024-01-02,null,null\n" +
		"2024-01-03,,\n" +
		"2024-01-04,12.5,12.0\n"

	series, err := parseDownloadCSV([]byte(csvBody), 10)
	if err != nil {
		t.Fatalf("parseDownloadCSV failed: %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("expected 2 valid rows, got %d", len(series))
	}
	if series[0].Close != 10.0 || series[1].Close != 12.0 {
		t.Errorf("expected closes [10 12], got [%v %v]", series[0].Close, series[1].Close)
	}
}

func TestParseDownloadCSV_DuplicateDatesCollapseToLast(t *testing.T) {
	csvBody := "Date,Close\n" +
		"2024-01-02,11.0\n" +
		"2024-01-01,10.0\n" +
		"2024-01-02,11.5\n"

	series, err := parseDownloadCSV([]byte(csvBody), 10)
	if err != nil {
		t.Fatalf("parseDownloadCSV failed: %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("expected duplicates collapsed to 2 rows, got %d", len(series))
	}
	if series[0].Close != 10.0 || series[1].Close != 11.5 {
		t.Errorf("expected [10 11.5] after sort and dedupe, got [%v %v]", series[0].Close, series[1].Close)
	}
}

func TestFetchDaily_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL), WithTimeout(100*time.Millisecond))
	_, err := client.FetchDaily(context.Background(), "RELIANCE.NS", 5)
	if err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestRangeParam(t *testing.T) {
	tests := []struct {
		interval string
		window   int
		want     string
	}{
		{"1d", 5, "5d"},
		{"1d", 10, "1mo"},
		{"1d", 260, "1y"},
		{"1wk", 220, "5y"},
		{"1wk", 300, "10y"},
	}
	for _, tt := range tests {
		if got := rangeParam(tt.interval, tt.window); got != tt.want {
			t.Errorf("rangeParam(%s, %d) = %s, want %s", tt.interval, tt.window, got, tt.want)
		}
	}
}
