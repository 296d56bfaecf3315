package server

import (
	"net/http"
	"time"

	"github.com/akgoel-in/nivesh/internal/common"
)

// registerRoutes sets up all page and API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// Pages
	mux.HandleFunc("/", s.handleHome)
	mux.HandleFunc("/fno", s.handleFNOPage)
	mux.HandleFunc("/nifty50", s.handleNifty50Page)
	mux.HandleFunc("/nifty-next-50", s.handleNiftyNext50Page)
	mux.HandleFunc("/stocks", s.handleStocksPage)

	// API
	mux.HandleFunc("/api/search", s.handleSearch)
	mux.HandleFunc("/api/stock-details", s.handleStockDetails)
	mux.HandleFunc("/api/fno-stocks", s.handleFNOStocks)
	mux.HandleFunc("/api/nifty-stocks", s.handleNiftyStocks)
	mux.HandleFunc("/api/nifty-next-50-stocks", s.handleNiftyNext50Stocks)
	mux.HandleFunc("/api/chart", s.handleChart)

	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/shutdown", s.handleShutdown)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

// handleShutdown handles POST /api/shutdown (dev mode only).
func (s *Server) handleShutdown(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	if s.app.Config.IsProduction() {
		WriteError(w, http.StatusForbidden, "Shutdown endpoint disabled in production")
		return
	}

	s.logger.Info().Msg("Shutdown requested via HTTP endpoint")

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Shutting down gracefully...\n"))

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	if s.shutdownChan != nil {
		go func() {
			time.Sleep(100 * time.Millisecond)
			s.shutdownChan <- struct{}{}
		}()
	}
}
