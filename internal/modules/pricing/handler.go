package pricing

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/printa-quotes/internal/core/errx"
	"github.com/georgemunganga/printa-quotes/internal/modules/nlu"
	logx "github.com/georgemunganga/printa-quotes/pkg/logger"
)

// Handler exposes the two quote operations over HTTP.
type Handler struct {
	service   Service
	extractor nlu.Extractor
}

func NewHandler(service Service, extractor nlu.Extractor) *Handler {
	return &Handler{service: service, extractor: extractor}
}

// RegisterRoutes mounts the quote routes, wrapped in the given middlewares.
func (h *Handler) RegisterRoutes(r *chi.Mux, middlewares ...func(http.Handler) http.Handler) {
	r.Route("/api/v1/quotes", func(r chi.Router) {
		for _, mw := range middlewares {
			r.Use(mw)
		}
		r.Post("/freetext", h.quoteFreeText)
		r.Post("/structured", h.quoteStructured)
	})
}

// FreeTextRequest carries either the raw query, or the output of a caller-side
// extraction in Parsed. When both are present Parsed wins.
type FreeTextRequest struct {
	Query  string           `json:"query"`
	Parsed *nlu.ParsedQuery `json:"parsed,omitempty"`
}

func (h *Handler) quoteFreeText(w http.ResponseWriter, r *http.Request) {
	var req FreeTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errx.Invalid("invalid request body"))
		return
	}

	parsed := req.Parsed
	if parsed == nil {
		if req.Query == "" {
			respondError(w, errx.Invalid("query is required"))
			return
		}
		var err error
		parsed, err = h.extractor.Extract(r.Context(), req.Query)
		if err != nil {
			respondError(w, err)
			return
		}
	}

	resp, err := h.service.ResolveFreeText(r.Context(), *parsed)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, resp)
}

func (h *Handler) quoteStructured(w http.ResponseWriter, r *http.Request) {
	var req StructuredRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errx.Invalid("invalid request body"))
		return
	}
	resp, err := h.service.ResolveStructured(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, resp)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, err error) {
	status := errx.StatusOf(err)
	if status >= http.StatusInternalServerError {
		logx.Error().Err(err).Str("component", "pricing").Msg("quote request failed")
	}
	respond(w, status, map[string]interface{}{
		"error": map[string]string{"message": errx.MessageOf(err)},
	})
}
