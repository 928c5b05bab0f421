// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	service "github.com/okian/sportsday/internal/app"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Search classifies the query and returns grouped registrations.
	Search(ctx context.Context, q service.Query) service.Result
	// Options lists the distinct selections in the loaded sheet.
	Options(ctx context.Context) service.Options
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler *HealthHandler
	statsHandler  *StatsHandler
	searchHandler *SearchHandler
	sportsHandler *SportsHandler
	infoHandler   *InfoHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler: NewHealthHandler(),
		statsHandler:  NewStatsHandler(statsProvider),
		searchHandler: NewSearchHandler(deps),
		sportsHandler: NewSportsHandler(deps),
		infoHandler:   NewInfoHandler(statsProvider),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.Handle("/healthz", RequestID(MetricsMiddleware(s.healthHandler.HandleHealth, "healthz")))
	mux.Handle("/metrics", s.healthHandler.MetricsHandler())
	mux.Handle("/stats", RequestID(MetricsMiddleware(s.statsHandler.HandleStats, "stats")))
	mux.Handle("/info", RequestID(MetricsMiddleware(s.infoHandler.HandleInfo, "info")))
	mux.Handle("/search", RequestID(MetricsMiddleware(s.searchHandler.HandleSearch, "search")))
	mux.Handle("/sports", RequestID(MetricsMiddleware(s.sportsHandler.HandleSports, "sports")))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

func methodNotAllowed(w http.ResponseWriter, allow ...string) {
	for _, m := range allow {
		w.Header().Add("Allow", m)
	}
	writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", ErrMethodNotAllowed)
}
