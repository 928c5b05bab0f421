package api

import (
	"net/http"
)

// SportsHandler lists the selections a presentation layer offers.
type SportsHandler struct {
	deps Dependencies
}

// NewSportsHandler creates a new sports handler.
func NewSportsHandler(deps Dependencies) *SportsHandler {
	return &SportsHandler{deps: deps}
}

// HandleSports handles GET /sports requests.
func (h *SportsHandler) HandleSports(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Options(r.Context()))
}
