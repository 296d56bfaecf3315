package server

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/akgoel-in/nivesh/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageFuncs = template.FuncMap{
	"money": func(v *float64) string {
		if v == nil {
			return "n/a"
		}
		return fmt.Sprintf("%.2f", *v)
	},
	"pct": func(v *float64) string {
		if v == nil {
			return "n/a"
		}
		return fmt.Sprintf("%+.2f%%", *v)
	},
}

var pageTemplates = template.Must(
	template.New("").Funcs(pageFuncs).ParseFS(templatesFS, "templates/*.html"))

const (
	flashCookieName = "nivesh_flash"
	flashTTL        = 5 * time.Minute
)

type homePage struct {
	Flash  string
	Ticker string
}

type resultPage struct {
	Result *models.WeeklyAverage
}

type watchlistPage struct {
	Title    string
	Endpoint string
}

// --- Page handlers ---

// handleHome serves the lookup form and processes its submission. The
// submission either renders the result page or redirects back to the form
// with a flash message.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	// "/" on the default mux catches every unrouted path
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		// The stocks page links back here with ?ticker= to prefill the form
		s.renderPage(w, "index.html", homePage{
			Flash:  s.popFlash(w, r),
			Ticker: strings.TrimSpace(r.URL.Query().Get("ticker")),
		})
	case http.MethodPost:
		s.handleLookup(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	ticker := strings.TrimSpace(r.FormValue("ticker"))
	if ticker == "" {
		s.setFlash(w, "Please enter a ticker symbol.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	weekly, err := s.app.AverageService.WeeklyAverage200(r.Context(), ticker)
	if err != nil {
		s.setFlash(w, fmt.Sprintf("Error fetching data for '%s': %v", ticker, err))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	s.renderPage(w, "result.html", resultPage{Result: weekly})
}

func (s *Server) handleFNOPage(w http.ResponseWriter, r *http.Request) {
	s.renderWatchlistPage(w, r, "FNO Stocks", "/api/fno-stocks")
}

func (s *Server) handleNifty50Page(w http.ResponseWriter, r *http.Request) {
	s.renderWatchlistPage(w, r, "NIFTY 50", "/api/nifty-stocks")
}

func (s *Server) handleNiftyNext50Page(w http.ResponseWriter, r *http.Request) {
	s.renderWatchlistPage(w, r, "NIFTY Next 50", "/api/nifty-next-50-stocks")
}

func (s *Server) handleStocksPage(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	s.renderPage(w, "stocks.html", nil)
}

func (s *Server) renderWatchlistPage(w http.ResponseWriter, r *http.Request, title, endpoint string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	s.renderPage(w, "watchlist.html", watchlistPage{Title: title, Endpoint: endpoint})
}

func (s *Server) renderPage(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		// Headers are gone by now, so the failure can only be logged
		s.logger.Error().Err(err).Str("template", name).Msg("Template render failed")
	}
}

// --- Flash messages ---

// setFlash stores a one-shot notice in a signed cookie so it survives the
// redirect back to the form.
func (s *Server) setFlash(w http.ResponseWriter, msg string) {
	claims := jwt.MapClaims{
		"msg": msg,
		"exp": time.Now().Add(flashTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.app.Config.SecretKey))
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to sign flash cookie")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(flashTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads and clears the flash cookie. A missing, tampered or
// expired cookie yields an empty message.
func (s *Server) popFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.app.Config.SecretKey), nil
	})
	if err != nil {
		return ""
	}

	msg, _ := claims["msg"].(string)
	return msg
}
