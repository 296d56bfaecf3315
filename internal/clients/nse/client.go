// Package nse provides a client for NSE public data files
package nse

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/akgoel-in/nivesh/internal/common"
	"github.com/akgoel-in/nivesh/internal/interfaces"
	"github.com/akgoel-in/nivesh/internal/models"
)

const (
	DefaultDirectoryURL = "https://archives.nseindia.com/content/equities/EQUITY_L.csv"
	DefaultTimeout      = 30 * time.Second
	DefaultRateLimit    = 2 // requests per second
)

// Client fetches the NSE listed-equity directory
type Client struct {
	directoryURL string
	httpClient   *http.Client
	logger       *common.Logger
	limiter      *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithDirectoryURL sets the directory CSV URL
func WithDirectoryURL(directoryURL string) ClientOption {
	return func(c *Client) {
		c.directoryURL = directoryURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new NSE client.
// No API key is required; these are public archive files.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		directoryURL: DefaultDirectoryURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FetchDirectory retrieves all listed symbols with company names, in the
// file's natural row order.
func (c *Client) FetchDirectory(ctx context.Context) ([]models.Listing, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.directoryURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "text/csv")

	c.logger.Debug().Str("url", c.directoryURL).Msg("NSE directory request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.logger.Error().Err(err).Dur("elapsed", elapsed).Msg("NSE directory request failed")
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Int("status", resp.StatusCode).Dur("elapsed", elapsed).Msg("NSE directory non-OK response")
		return nil, fmt.Errorf("NSE directory error: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	listings, err := parseDirectoryCSV(body)
	if err != nil {
		return nil, err
	}

	c.logger.Info().Int("listings", len(listings)).Dur("elapsed", elapsed).Msg("NSE directory fetched")

	return listings, nil
}

// parseDirectoryCSV reads the EQUITY_L table. Header cells carry stray
// whitespace, so columns are located by trimmed name with a positional
// fallback.
func parseDirectoryCSV(body []byte) ([]models.Listing, error) {
	reader := csv.NewReader(bytes.NewReader(body))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse directory response: %w", err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	symbolCol, nameCol := 0, 1
	for i, h := range records[0] {
		switch strings.ToUpper(strings.TrimSpace(h)) {
		case "SYMBOL":
			symbolCol = i
		case "NAME OF COMPANY":
			nameCol = i
		}
	}

	listings := make([]models.Listing, 0, len(records)-1)
	for _, row := range records[1:] {
		if symbolCol >= len(row) || nameCol >= len(row) {
			continue
		}
		symbol := strings.TrimSpace(row[symbolCol])
		if symbol == "" {
			continue
		}
		listings = append(listings, models.Listing{
			Symbol: symbol,
			Name:   strings.TrimSpace(row[nameCol]),
		})
	}

	return listings, nil
}

// Ensure Client implements DirectoryClient
var _ interfaces.DirectoryClient = (*Client)(nil)
