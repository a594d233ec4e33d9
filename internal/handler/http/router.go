package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/utafrali/mangomarket/internal/service"
	"github.com/utafrali/mangomarket/pkg/health"
	"github.com/utafrali/mangomarket/pkg/middleware"
)

const serviceName = "storefront"

// catalogMaxAge is how long clients may cache catalog reads, in seconds.
const catalogMaxAge = 300

// Services bundles the business services exposed over HTTP.
type Services struct {
	Checkout *service.CheckoutService
	Cart     *service.CartService
	Catalog  *service.CatalogService
}

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(
	svcs Services,
	healthHandler *health.Handler,
	logger *slog.Logger,
	pprofCIDRs []string,
	cors middleware.CORSConfig,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS(cors))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics(serviceName))
	r.Use(middleware.Tracing(serviceName))
	r.Use(middleware.RequestLogger(logger))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Pprof debug endpoints with IP allowlist.
	middleware.RegisterPprof(r, pprofCIDRs, logger)

	checkoutHandler := NewCheckoutHandler(svcs.Checkout, logger)
	cartHandler := NewCartHandler(svcs.Cart, logger)
	catalogHandler := NewCatalogHandler(svcs.Catalog, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)
		r.Use(RequireDeviceID)

		registerCatalogRoutes(r, catalogHandler)
		registerCartRoutes(r, cartHandler)
		registerCheckoutRoutes(r, checkoutHandler)
	})

	return r
}

func registerCatalogRoutes(r chi.Router, h *CatalogHandler) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.CacheControl(catalogMaxAge))

		r.Get("/categories", h.ListCategories)
		r.Get("/origins", h.ListOrigins)
		r.Get("/products", h.ListProducts)
		r.Get("/products/{id}", h.GetProduct)
	})
	r.Get("/products/{id}/reviews", h.ListReviews)
	r.Post("/products/{id}/reviews", h.AddReview)
}

func registerCartRoutes(r chi.Router, h *CartHandler) {
	r.Route("/cart", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Delete("/", h.ClearCart)

		r.Post("/items", h.AddItem)
		r.Put("/items/{productId}", h.UpdateItemQuantity)
		r.Delete("/items/{productId}", h.RemoveItem)
	})
}

func registerCheckoutRoutes(r chi.Router, h *CheckoutHandler) {
	r.Route("/checkout", func(r chi.Router) {
		r.Get("/", h.GetCheckout)
		r.Delete("/", h.ResetCheckout)

		r.Put("/step", h.SetStep)
		r.Put("/shipping-address", h.SetShippingAddress)
		r.Put("/billing-address", h.SetBillingAddress)
		r.Put("/same-as-shipping", h.SetSameAsShipping)
		r.Put("/shipping-method", h.SetShippingMethod)
		r.Put("/payment-method", h.SetPaymentMethod)
		r.Put("/payment-details", h.SetPaymentDetails)

		r.Get("/summary", h.Summary)
		r.Get("/shipping-methods", h.ListShippingMethods)
		r.Post("/validate-payment", h.ValidatePayment)
		r.Post("/orders", h.PlaceOrder)
	})
}
