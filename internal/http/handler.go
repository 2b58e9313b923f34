// Package http is the presentation surface: it maps user intents onto the
// catalog, cart and checkout services and renders their state as JSON.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	cartapp "github.com/samudrapos/kasir-service/internal/cart/application"
	cart "github.com/samudrapos/kasir-service/internal/cart/domain"
	catalog "github.com/samudrapos/kasir-service/internal/catalog/domain"
	checkoutapp "github.com/samudrapos/kasir-service/internal/checkout/application"
	checkoutsheets "github.com/samudrapos/kasir-service/internal/checkout/infrastructure/sheets"
	"github.com/samudrapos/kasir-service/pkg/guard"
)

const checkoutKey = "checkout"

// CatalogService is the handler's view of the catalog loader.
type CatalogService interface {
	Load(ctx context.Context) []catalog.Product
	Products() []catalog.Product
	Search(query string) []catalog.Product
	FilterByCategory(category string) []catalog.Product
	LastSource() string
}

type Handler struct {
	log       *slog.Logger
	catalog   CatalogService
	cart      *cartapp.Service
	submitter *checkoutapp.Submitter
	guard     *guard.Guard
}

func NewHandler(log *slog.Logger, catalog CatalogService, cartSvc *cartapp.Service, submitter *checkoutapp.Submitter) *Handler {
	return &Handler{
		log:       log,
		catalog:   catalog,
		cart:      cartSvc,
		submitter: submitter,
		guard:     guard.New(),
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", h.health)
	r.Get("/catalog", h.getCatalog)
	r.Post("/catalog/reload", h.reloadCatalog)
	r.Get("/cart", h.getCart)
	r.Post("/cart/items", h.addItem)
	r.Post("/cart/items/{id}/adjust", h.adjustItem)
	r.Delete("/cart", h.clearCart)
	r.Post("/checkout", h.checkout)
	return r
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) getCatalog(w http.ResponseWriter, r *http.Request) {
	products := h.catalog.Products()
	if q := r.URL.Query().Get("q"); q != "" {
		products = h.catalog.Search(q)
	} else if category := r.URL.Query().Get("category"); category != "" {
		products = h.catalog.FilterByCategory(category)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"source":   h.catalog.LastSource(),
		"products": products,
	})
}

func (h *Handler) reloadCatalog(w http.ResponseWriter, r *http.Request) {
	products := h.catalog.Load(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"source":   h.catalog.LastSource(),
		"products": products,
	})
}

type cartView struct {
	Items   []cart.Line  `json:"items"`
	Summary cart.Summary `json:"summary"`
}

func (h *Handler) getCart(w http.ResponseWriter, _ *http.Request) {
	lines, summary := h.cart.Snapshot()
	writeJSON(w, http.StatusOK, cartView{Items: lines, Summary: summary})
}

type addItemReq struct {
	ProductID string `json:"productId"`
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "productId is required")
		return
	}
	if err := h.cart.Add(req.ProductID); err != nil {
		if errors.Is(err, cartapp.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	lines, summary := h.cart.Snapshot()
	writeJSON(w, http.StatusOK, cartView{Items: lines, Summary: summary})
}

type adjustItemReq struct {
	Direction string `json:"direction"`
}

func (h *Handler) adjustItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	var req adjustItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	var delta int
	switch req.Direction {
	case "increase":
		delta = 1
	case "decrease":
		delta = -1
	default:
		writeError(w, http.StatusBadRequest, `direction must be "increase" or "decrease"`)
		return
	}
	h.cart.Adjust(productID, delta)
	lines, summary := h.cart.Snapshot()
	writeJSON(w, http.StatusOK, cartView{Items: lines, Summary: summary})
}

func (h *Handler) clearCart(w http.ResponseWriter, _ *http.Request) {
	h.cart.Clear()
	lines, summary := h.cart.Snapshot()
	writeJSON(w, http.StatusOK, cartView{Items: lines, Summary: summary})
}

// checkout submits the cart as one transaction. The single-flight guard
// enforces the one-record-per-call contract even if two checkout requests
// race; the cart is cleared here, by the coordinator, only after the
// submitter reports success.
func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	if !h.guard.Acquire(checkoutKey) {
		writeError(w, http.StatusConflict, "a checkout is already in flight")
		return
	}
	defer h.guard.Release(checkoutKey)

	record, err := h.submitter.Submit(r.Context())
	if err != nil {
		var rejected *checkoutsheets.RejectedError
		switch {
		case errors.Is(err, checkoutapp.ErrEmptyCart):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, checkoutapp.ErrNoEndpoint):
			writeError(w, http.StatusServiceUnavailable, err.Error())
		case errors.As(err, &rejected):
			writeError(w, http.StatusBadGateway, rejected.Error())
		default:
			writeError(w, http.StatusBadGateway, err.Error())
		}
		return
	}

	h.cart.Clear()
	writeJSON(w, http.StatusOK, map[string]any{"transaction": record})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
