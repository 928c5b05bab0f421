package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"

	service "github.com/okian/sportsday/internal/app"
	"github.com/okian/sportsday/pkg/logger"
)

const maxSearchBody = 1 << 16

// Form and query parameter names of the search request.
const (
	paramSport     = "sport"
	paramTeamSport = "team_sport"
)

// SearchHandler handles search requests.
type SearchHandler struct {
	deps Dependencies
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(deps Dependencies) *SearchHandler {
	return &SearchHandler{deps: deps}
}

// HandleSearch handles GET /search?sport=..&team_sport=.. and POST /search
// with either a form body or a JSON body {"sport": "", "team_sport": ""}.
// A request carrying neither value is answered with an empty result, not
// an error.
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	const op = "api.search"

	var q service.Query
	switch r.Method {
	case http.MethodGet:
		q = service.Query{
			Sport:     r.URL.Query().Get(paramSport),
			TeamSport: r.URL.Query().Get(paramTeamSport),
		}
	case http.MethodPost:
		var err error
		if q, err = decodeSearch(w, r); err != nil {
			logger.Get().Debug(r.Context(), "rejected search body",
				logger.String("op", op),
				logger.String("request_id", RequestIDFrom(r.Context())),
				logger.Error(err),
			)
			writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%s: %w", op, err))
			return
		}
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
		return
	}

	writeJSON(w, http.StatusOK, h.deps.Search(r.Context(), q))
}

func decodeSearch(w http.ResponseWriter, r *http.Request) (service.Query, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSearchBody)

	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mt == "application/json" {
		var q service.Query
		if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return q, ErrBodyTooLarge
			}
			return q, fmt.Errorf("%w: %w", ErrBadRequest, err)
		}
		return q, nil
	}

	if err := r.ParseForm(); err != nil {
		return service.Query{}, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	return service.Query{
		Sport:     r.PostForm.Get(paramSport),
		TeamSport: r.PostForm.Get(paramTeamSport),
	}, nil
}
