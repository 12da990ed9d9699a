package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/printa-quotes/internal/core/errx"
)

// Handler exposes read-only catalog HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/products", h.listProducts)
		r.Get("/products/{name}/tiers", h.listTiers)
	})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	q := r.URL.Query().Get("q")
	products, err := h.service.ListProducts(r.Context(), category, q)
	if err != nil {
		respondError(w, err)
		return
	}
	if products == nil {
		products = []*Product{}
	}
	respond(w, http.StatusOK, products)
}

func (h *Handler) listTiers(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	printOption := r.URL.Query().Get("print_option")
	class := DeliveryClass(r.URL.Query().Get("delivery_class"))
	if class != "" && !class.Valid() {
		respondError(w, errx.Invalid("unknown delivery_class "+string(class)))
		return
	}
	tiers, err := h.service.ListTiers(r.Context(), name, printOption, class)
	if err != nil {
		respondError(w, err)
		return
	}
	if tiers == nil {
		tiers = []*PriceTier{}
	}
	respond(w, http.StatusOK, tiers)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, err error) {
	respond(w, errx.StatusOf(err), map[string]interface{}{
		"error": map[string]string{"message": errx.MessageOf(err)},
	})
}
