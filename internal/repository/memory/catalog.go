package memory

import (
	"cmp"
	"context"
	"math"
	"slices"
	"strings"
	"sync"

	"github.com/utafrali/mangomarket/internal/domain"
	apperrors "github.com/utafrali/mangomarket/pkg/errors"
)

// ProductRepository implements repository.ProductRepository over the static
// mango catalog. Products are immutable apart from their rating aggregates,
// which move when reviews are added.
type ProductRepository struct {
	mu       sync.RWMutex
	products []domain.Product
	index    map[string]int
	reviews  map[string][]domain.Review
}

// NewProductRepository creates a repository seeded with the built-in catalog.
func NewProductRepository() *ProductRepository {
	return NewProductRepositoryWith(seedProducts(), seedReviews())
}

// NewProductRepositoryWith creates a repository over the given data.
func NewProductRepositoryWith(products []domain.Product, reviews []domain.Review) *ProductRepository {
	r := &ProductRepository{
		products: products,
		index:    make(map[string]int, len(products)),
		reviews:  make(map[string][]domain.Review),
	}
	for i, p := range products {
		r.index[p.ID] = i
	}
	for _, rv := range reviews {
		r.reviews[rv.ProductID] = append(r.reviews[rv.ProductID], rv)
	}
	return r
}

// List returns the products matching filter in the requested order.
func (r *ProductRepository) List(_ context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		if len(filter.Categories) > 0 && !containsFold(filter.Categories, p.Category) {
			continue
		}
		if len(filter.Origins) > 0 && !containsFold(filter.Origins, p.Origin) {
			continue
		}
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		if filter.InStock && !p.InStock {
			continue
		}
		if query != "" && !matches(p, query) {
			continue
		}
		out = append(out, p)
	}

	switch filter.Sort {
	case domain.SortPriceAsc:
		slices.SortStableFunc(out, func(a, b domain.Product) int { return cmp.Compare(a.Price, b.Price) })
	case domain.SortPriceDesc:
		slices.SortStableFunc(out, func(a, b domain.Product) int { return cmp.Compare(b.Price, a.Price) })
	case domain.SortNameAsc:
		slices.SortStableFunc(out, func(a, b domain.Product) int { return strings.Compare(a.Name, b.Name) })
	case domain.SortNameDesc:
		slices.SortStableFunc(out, func(a, b domain.Product) int { return strings.Compare(b.Name, a.Name) })
	case domain.SortRating:
		slices.SortStableFunc(out, func(a, b domain.Product) int { return cmp.Compare(b.Rating, a.Rating) })
	}
	return out, nil
}

func matches(p domain.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.Origin), query)
}

func containsFold(values []string, v string) bool {
	for _, x := range values {
		if strings.EqualFold(x, v) {
			return true
		}
	}
	return false
}

// GetByID returns one product.
func (r *ProductRepository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, apperrors.NotFound("product", id)
	}
	p := r.products[i]
	return &p, nil
}

// Categories returns the distinct categories in catalog order.
func (r *ProductRepository) Categories(_ context.Context) ([]string, error) {
	return r.distinct(func(p domain.Product) string { return p.Category }), nil
}

// Origins returns the distinct origins in catalog order.
func (r *ProductRepository) Origins(_ context.Context) ([]string, error) {
	return r.distinct(func(p domain.Product) string { return p.Origin }), nil
}

func (r *ProductRepository) distinct(field func(domain.Product) string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []string
	for _, p := range r.products {
		v := field(p)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// ListReviews returns the reviews of a product, newest first.
func (r *ProductRepository) ListReviews(_ context.Context, productID string) ([]domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.index[productID]; !ok {
		return nil, apperrors.NotFound("product", productID)
	}
	out := slices.Clone(r.reviews[productID])
	slices.SortStableFunc(out, func(a, b domain.Review) int { return strings.Compare(b.Date, a.Date) })
	return out, nil
}

// AddReview stores a review and folds its rating into the product's average.
func (r *ProductRepository) AddReview(_ context.Context, review *domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[review.ProductID]
	if !ok {
		return apperrors.NotFound("product", review.ProductID)
	}

	p := &r.products[i]
	total := p.Rating*float64(p.ReviewCount) + float64(review.Rating)
	p.ReviewCount++
	p.Rating = math.Round(total/float64(p.ReviewCount)*10) / 10

	r.reviews[review.ProductID] = append(r.reviews[review.ProductID], *review)
	return nil
}
