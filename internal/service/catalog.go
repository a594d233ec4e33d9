package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/utafrali/mangomarket/internal/domain"
	"github.com/utafrali/mangomarket/internal/repository"
	apperrors "github.com/utafrali/mangomarket/pkg/errors"
)

// AddReviewInput holds a shopper's review submission.
type AddReviewInput struct {
	UserName string `json:"user_name" validate:"required,max=100"`
	Rating   int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment  string `json:"comment" validate:"required,max=2000"`
}

// CatalogService serves products and reviews.
type CatalogService struct {
	repo   repository.ProductRepository
	logger *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.ProductRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

// ListProducts returns the products matching filter.
func (s *CatalogService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return nil, apperrors.InvalidInput("min_price must not exceed max_price")
	}
	products, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// GetProduct returns one product.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	return s.repo.GetByID(ctx, id)
}

// Categories returns the distinct product categories.
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

// Origins returns the distinct product origins.
func (s *CatalogService) Origins(ctx context.Context) ([]string, error) {
	return s.repo.Origins(ctx)
}

// ListReviews returns the reviews of a product, newest first.
func (s *CatalogService) ListReviews(ctx context.Context, productID string) ([]domain.Review, error) {
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return nil, err
	}
	return s.repo.ListReviews(ctx, productID)
}

// AddReview records a review and updates the product's rating.
func (s *CatalogService) AddReview(ctx context.Context, productID string, input AddReviewInput) (*domain.Review, error) {
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.UserName)
	comment := strings.TrimSpace(input.Comment)
	if name == "" {
		return nil, apperrors.InvalidInput("name is required")
	}
	if comment == "" {
		return nil, apperrors.InvalidInput("comment is required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, apperrors.InvalidInput("rating must be between 1 and 5")
	}

	review := &domain.Review{
		ID:        uuid.New().String(),
		ProductID: productID,
		UserName:  name,
		Rating:    input.Rating,
		Comment:   comment,
		Date:      time.Now().UTC().Format(time.DateOnly),
	}
	if err := s.repo.AddReview(ctx, review); err != nil {
		return nil, fmt.Errorf("add review: %w", err)
	}

	s.logger.InfoContext(ctx, "review added",
		slog.String("product_id", productID),
		slog.Int("rating", review.Rating),
	)
	return review, nil
}
