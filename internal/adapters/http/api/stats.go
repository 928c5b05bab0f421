// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"runtime/debug"
)

// StatsProvider defines the interface for getting service statistics.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// StatsHandler handles stats requests.
type StatsHandler struct {
	statsProvider StatsProvider
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsProvider StatsProvider) *StatsHandler {
	return &StatsHandler{statsProvider: statsProvider}
}

// HandleStats handles GET /stats requests.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, h.statsProvider.GetStats())
}

// InfoHandler describes the running service.
type InfoHandler struct {
	statsProvider StatsProvider
	version       string
}

// NewInfoHandler creates a new info handler.
func NewInfoHandler(statsProvider StatsProvider) *InfoHandler {
	version := "devel"
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		version = bi.Main.Version
	}
	return &InfoHandler{statsProvider: statsProvider, version: version}
}

type infoResponse struct {
	Service   string                 `json:"service"`
	Version   string                 `json:"version"`
	Dataset   map[string]interface{} `json:"dataset"`
	Endpoints []string               `json:"endpoints"`
}

// HandleInfo handles GET /info requests.
func (h *InfoHandler) HandleInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, infoResponse{
		Service: "sportsday",
		Version: h.version,
		Dataset: h.statsProvider.GetStats(),
		Endpoints: []string{
			"GET /search", "POST /search", "GET /sports", "GET /stats",
			"GET /healthz", "GET /metrics", "GET /openapi.yaml", "GET /api-docs",
		},
	})
}
