package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/akgoel-in/nivesh/internal/clients/yahoo"
	"github.com/akgoel-in/nivesh/internal/models"
	"github.com/akgoel-in/nivesh/internal/services/average"
	"github.com/akgoel-in/nivesh/internal/watchlists"
)

// --- Symbol directory handlers ---

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	query := r.URL.Query().Get("q")
	limit := QueryInt(r, "limit", 10)

	listings := s.app.DirectoryService.Lookup(r.Context(), query, limit)
	WriteJSON(w, http.StatusOK, listings)
}

// --- Stock detail handlers ---

func (s *Server) handleStockDetails(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	ticker, errMsg := requireTicker(r)
	if errMsg != "" {
		WriteError(w, http.StatusBadRequest, errMsg)
		return
	}

	snapshot, err := s.app.AverageService.Snapshot(r.Context(), ticker)
	if err != nil {
		WriteError(w, fetchErrorStatus(err), err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, snapshot)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	ticker, errMsg := requireTicker(r)
	if errMsg != "" {
		WriteError(w, http.StatusBadRequest, errMsg)
		return
	}

	png, err := s.app.ChartService.RenderDaily(r.Context(), ticker)
	if err != nil {
		WriteError(w, fetchErrorStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(png)
}

// --- Watch-list handlers ---

func (s *Server) handleFNOStocks(w http.ResponseWriter, r *http.Request) {
	s.serveWatchlist(w, r, watchlists.FNO)
}

func (s *Server) handleNiftyStocks(w http.ResponseWriter, r *http.Request) {
	s.serveWatchlist(w, r, watchlists.Nifty50)
}

func (s *Server) handleNiftyNext50Stocks(w http.ResponseWriter, r *http.Request) {
	s.serveWatchlist(w, r, watchlists.NiftyNext50)
}

// serveWatchlist runs the batch fetcher over a symbol universe, narrowed
// by the optional q prefix filter.
func (s *Server) serveWatchlist(w http.ResponseWriter, r *http.Request, symbols []string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	prefix := r.URL.Query().Get("q")
	entries := s.app.BatchService.FetchAll(r.Context(), symbols, prefix)
	WriteJSON(w, http.StatusOK, models.WatchlistResponse{Stocks: entries})
}

// --- Validation helpers ---

// requireTicker reads and validates the ticker query parameter.
func requireTicker(r *http.Request) (string, string) {
	ticker := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("ticker")))
	if ticker == "" {
		return "", "ticker parameter is required"
	}
	for _, c := range ticker {
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '.' || c == '^' || c == '=' || c == '&' || c == '-':
		default:
			return "", fmt.Sprintf("invalid ticker %q", ticker)
		}
	}
	return ticker, ""
}

// fetchErrorStatus maps a pricing pipeline error to an HTTP status. A
// ticker the provider has no data for is 404, a provider-side failure is
// 502, anything else is 500.
func fetchErrorStatus(err error) int {
	if errors.Is(err, average.ErrNoData) {
		return http.StatusNotFound
	}
	var apiErr *yahoo.APIError
	if errors.As(err, &apiErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
