package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/utafrali/mangomarket/internal/domain"
	"github.com/utafrali/mangomarket/internal/service"
	"github.com/utafrali/mangomarket/pkg/httputil"
	"github.com/utafrali/mangomarket/pkg/validator"
)

// CheckoutHandler handles HTTP requests for checkout endpoints.
type CheckoutHandler struct {
	service *service.CheckoutService
	logger  *slog.Logger
}

// NewCheckoutHandler creates a new checkout HTTP handler.
func NewCheckoutHandler(svc *service.CheckoutService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{service: svc, logger: logger}
}

// --- Request DTOs ---

// StepRequest is the JSON request body for moving between checkout steps.
type StepRequest struct {
	Step domain.Step `json:"step" validate:"required"`
}

// SameAsShippingRequest is the JSON request body for the billing toggle.
type SameAsShippingRequest struct {
	SameAsShipping *bool `json:"same_as_shipping" validate:"required"`
}

// ShippingMethodRequest is the JSON request body for choosing a delivery speed.
type ShippingMethodRequest struct {
	ShippingMethod domain.ShippingMethod `json:"shipping_method" validate:"required"`
}

// PaymentMethodRequest is the JSON request body for choosing a payment method.
type PaymentMethodRequest struct {
	PaymentMethod domain.PaymentMethod `json:"payment_method" validate:"required"`
}

// --- Response DTOs ---

type checkoutResponse struct {
	*domain.CheckoutState
	Labels domain.Labels `json:"labels"`
}

type summaryResponse struct {
	Subtotal  string `json:"subtotal"`
	Shipping  string `json:"shipping"`
	Tax       string `json:"tax"`
	Total     string `json:"total"`
	ItemCount int    `json:"item_count"`
}

type paymentValidationResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

type shippingMethodResponse struct {
	ID           domain.ShippingMethod `json:"id"`
	Label        string                `json:"label"`
	Cost         string                `json:"cost"`
	DeliveryDays int                   `json:"delivery_days"`
}

func newCheckoutResponse(state *domain.CheckoutState) checkoutResponse {
	return checkoutResponse{CheckoutState: state, Labels: state.Labels()}
}

// --- Handlers ---

// GetCheckout handles GET /api/v1/checkout
func (h *CheckoutHandler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.GetCheckout(r.Context(), deviceIDFromContext(r.Context()))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, newCheckoutResponse(state))
}

// ResetCheckout handles DELETE /api/v1/checkout
func (h *CheckoutHandler) ResetCheckout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ResetCheckout(r.Context(), deviceIDFromContext(r.Context())); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetStep handles PUT /api/v1/checkout/step
func (h *CheckoutHandler) SetStep(w http.ResponseWriter, r *http.Request) {
	var req StepRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}
	h.respond(w, r)(h.service.SetStep(r.Context(), deviceIDFromContext(r.Context()), req.Step))
}

// SetShippingAddress handles PUT /api/v1/checkout/shipping-address
func (h *CheckoutHandler) SetShippingAddress(w http.ResponseWriter, r *http.Request) {
	addr, ok := decodeAddress(w, r)
	if !ok {
		return
	}
	h.respond(w, r)(h.service.SetShippingAddress(r.Context(), deviceIDFromContext(r.Context()), addr))
}

// SetBillingAddress handles PUT /api/v1/checkout/billing-address
func (h *CheckoutHandler) SetBillingAddress(w http.ResponseWriter, r *http.Request) {
	addr, ok := decodeAddress(w, r)
	if !ok {
		return
	}
	h.respond(w, r)(h.service.SetBillingAddress(r.Context(), deviceIDFromContext(r.Context()), addr))
}

// SetSameAsShipping handles PUT /api/v1/checkout/same-as-shipping
func (h *CheckoutHandler) SetSameAsShipping(w http.ResponseWriter, r *http.Request) {
	var req SameAsShippingRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}
	h.respond(w, r)(h.service.SetSameAsShipping(r.Context(), deviceIDFromContext(r.Context()), *req.SameAsShipping))
}

// SetShippingMethod handles PUT /api/v1/checkout/shipping-method
func (h *CheckoutHandler) SetShippingMethod(w http.ResponseWriter, r *http.Request) {
	var req ShippingMethodRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}
	h.respond(w, r)(h.service.SetShippingMethod(r.Context(), deviceIDFromContext(r.Context()), req.ShippingMethod))
}

// SetPaymentMethod handles PUT /api/v1/checkout/payment-method
func (h *CheckoutHandler) SetPaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req PaymentMethodRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}
	h.respond(w, r)(h.service.SetPaymentMethod(r.Context(), deviceIDFromContext(r.Context()), req.PaymentMethod))
}

// SetPaymentDetails handles PUT /api/v1/checkout/payment-details. Card
// fields are normalised but not validated; validation runs on demand and at
// placement.
func (h *CheckoutHandler) SetPaymentDetails(w http.ResponseWriter, r *http.Request) {
	var details domain.PaymentDetails
	if err := validator.DecodeAndValidate(r, &details); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}
	details.CardNumber = normalizeCardNumber(details.CardNumber)
	details.CardholderName = strings.TrimSpace(details.CardholderName)
	details.ExpiryDate = domain.FormatExpiryDate(strings.TrimSpace(details.ExpiryDate))
	details.CVV = strings.TrimSpace(details.CVV)

	h.respond(w, r)(h.service.SetPaymentDetails(r.Context(), deviceIDFromContext(r.Context()), details))
}

// Summary handles GET /api/v1/checkout/summary
func (h *CheckoutHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context(), deviceIDFromContext(r.Context()))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, summaryResponse{
		Subtotal:  summary.Subtotal.StringFixed(2),
		Shipping:  summary.Shipping.StringFixed(2),
		Tax:       summary.Tax.StringFixed(2),
		Total:     summary.Total.StringFixed(2),
		ItemCount: summary.ItemCount,
	})
}

// ValidatePayment handles POST /api/v1/checkout/validate-payment
func (h *CheckoutHandler) ValidatePayment(w http.ResponseWriter, r *http.Request) {
	problems, err := h.service.ValidatePayment(r.Context(), deviceIDFromContext(r.Context()))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	if problems == nil {
		problems = []string{}
	}
	httputil.WriteData(w, paymentValidationResponse{Valid: len(problems) == 0, Errors: problems})
}

// PlaceOrder handles POST /api/v1/checkout/orders
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.PlaceOrder(r.Context(), deviceIDFromContext(r.Context()))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: newCheckoutResponse(state)})
}

// ListShippingMethods handles GET /api/v1/checkout/shipping-methods
func (h *CheckoutHandler) ListShippingMethods(w http.ResponseWriter, _ *http.Request) {
	methods := make([]shippingMethodResponse, 0, len(domain.ShippingMethods))
	for _, m := range domain.ShippingMethods {
		methods = append(methods, shippingMethodResponse{
			ID:           m,
			Label:        m.Label(),
			Cost:         m.Cost().StringFixed(2),
			DeliveryDays: m.DeliveryDays(),
		})
	}
	httputil.WriteData(w, methods)
}

// --- Helpers ---

// respond returns a writer for the (state, error) result of a setter.
func (h *CheckoutHandler) respond(w http.ResponseWriter, r *http.Request) func(*domain.CheckoutState, error) {
	return func(state *domain.CheckoutState, err error) {
		if err != nil {
			httputil.WriteError(w, r, err, h.logger)
			return
		}
		httputil.WriteData(w, newCheckoutResponse(state))
	}
}

func decodeAddress(w http.ResponseWriter, r *http.Request) (domain.Address, bool) {
	var addr domain.Address
	if err := validator.Decode(r, &addr); err != nil {
		httputil.WriteValidationError(w, err)
		return domain.Address{}, false
	}
	// Validated after formatting: a value with no digits formats to "".
	addr.PostalCode = domain.FormatPostalCode(addr.PostalCode)
	addr.Phone = domain.FormatPhoneNumber(addr.Phone)
	if err := validator.Validate(addr); err != nil {
		httputil.WriteValidationError(w, err)
		return domain.Address{}, false
	}
	return addr, true
}

// normalizeCardNumber groups numbers of up to 16 digits; longer numbers are
// only stripped of non-digits so no digit is lost.
func normalizeCardNumber(value string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, value)
	if len(digits) > 16 {
		return digits
	}
	return domain.FormatCardNumber(value)
}
