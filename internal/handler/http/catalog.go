package http

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/mangomarket/internal/domain"
	"github.com/utafrali/mangomarket/internal/service"
	apperrors "github.com/utafrali/mangomarket/pkg/errors"
	"github.com/utafrali/mangomarket/pkg/httputil"
	"github.com/utafrali/mangomarket/pkg/validator"
)

// CatalogHandler handles HTTP requests for products and reviews.
type CatalogHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog HTTP handler.
func NewCatalogHandler(svc *service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{service: svc, logger: logger}
}

// ListProducts handles GET /api/v1/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseProductFilter(r.URL.Query())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	products, err := h.service.ListProducts(r.Context(), filter)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	httputil.WriteData(w, products)
}

// GetProduct handles GET /api/v1/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, product)
}

// ListCategories handles GET /api/v1/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, categories)
}

// ListOrigins handles GET /api/v1/origins
func (h *CatalogHandler) ListOrigins(w http.ResponseWriter, r *http.Request) {
	origins, err := h.service.Origins(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, origins)
}

// ListReviews handles GET /api/v1/products/{id}/reviews
func (h *CatalogHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ListReviews(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	httputil.WriteData(w, reviews)
}

// AddReview handles POST /api/v1/products/{id}/reviews
func (h *CatalogHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	var req service.AddReviewInput
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	review, err := h.service.AddReview(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: review})
}

func parseProductFilter(q url.Values) (domain.ProductFilter, error) {
	filter := domain.ProductFilter{
		Categories: q["category"],
		Origins:    q["origin"],
		Query:      q.Get("q"),
	}

	switch s := domain.ProductSort(q.Get("sort")); s {
	case domain.SortDefault, domain.SortPriceAsc, domain.SortPriceDesc, domain.SortNameAsc, domain.SortNameDesc, domain.SortRating:
		filter.Sort = s
	default:
		return filter, apperrors.InvalidInput("unknown sort " + strconv.Quote(string(s)))
	}

	var err error
	if filter.MinPrice, err = parseCents(q, "min_price"); err != nil {
		return filter, err
	}
	if filter.MaxPrice, err = parseCents(q, "max_price"); err != nil {
		return filter, err
	}

	if v := q.Get("in_stock"); v != "" {
		inStock, err := strconv.ParseBool(v)
		if err != nil {
			return filter, apperrors.InvalidInput("in_stock must be a boolean")
		}
		filter.InStock = inStock
	}

	return filter, nil
}

func parseCents(q url.Values, key string) (*int64, error) {
	v := q.Get(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return nil, apperrors.InvalidInput(key + " must be a non-negative integer number of cents")
	}
	return &n, nil
}
