package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/mangomarket/internal/domain"
	"github.com/utafrali/mangomarket/internal/service"
	"github.com/utafrali/mangomarket/pkg/httputil"
	"github.com/utafrali/mangomarket/pkg/validator"
)

// CartHandler handles HTTP requests for cart endpoints.
type CartHandler struct {
	service *service.CartService
	logger  *slog.Logger
}

// NewCartHandler creates a new cart HTTP handler.
func NewCartHandler(svc *service.CartService, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		service: svc,
		logger:  logger,
	}
}

// cartResponse adds the derived totals to a cart.
type cartResponse struct {
	*domain.Cart
	ItemCount int    `json:"item_count"`
	Subtotal  string `json:"subtotal"`
}

func newCartResponse(cart *domain.Cart) cartResponse {
	return cartResponse{
		Cart:      cart,
		ItemCount: cart.ItemCount(),
		Subtotal:  cart.Subtotal().StringFixed(2),
	}
}

// GetCart handles GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.GetCart(r.Context(), deviceIDFromContext(r.Context()))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, newCartResponse(cart))
}

// AddItem handles POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req service.AddItemInput
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	cart, err := h.service.AddItem(r.Context(), deviceIDFromContext(r.Context()), req)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, newCartResponse(cart))
}

// UpdateItemQuantity handles PUT /api/v1/cart/items/{productId}
func (h *CartHandler) UpdateItemQuantity(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateQuantityInput
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	cart, err := h.service.UpdateItemQuantity(r.Context(), deviceIDFromContext(r.Context()), chi.URLParam(r, "productId"), req.Quantity)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, newCartResponse(cart))
}

// RemoveItem handles DELETE /api/v1/cart/items/{productId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.RemoveItem(r.Context(), deviceIDFromContext(r.Context()), chi.URLParam(r, "productId"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, newCartResponse(cart))
}

// ClearCart handles DELETE /api/v1/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearCart(r.Context(), deviceIDFromContext(r.Context())); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
