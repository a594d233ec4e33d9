package repository

import (
	"context"

	"github.com/utafrali/mangomarket/internal/domain"
)

// CheckoutRepository persists one checkout draft per device.
type CheckoutRepository interface {
	// Get returns the draft for deviceID. A missing draft yields an
	// apperrors.ErrNotFound error; an unreadable one yields
	// domain.ErrCorruptState.
	Get(ctx context.Context, deviceID string) (*domain.CheckoutState, error)

	// Save overwrites the draft for deviceID.
	Save(ctx context.Context, deviceID string, state *domain.CheckoutState) error

	// Delete removes the draft for deviceID. Deleting a missing draft is not an error.
	Delete(ctx context.Context, deviceID string) error
}

// CartRepository persists one cart per device.
type CartRepository interface {
	Get(ctx context.Context, deviceID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, deviceID string) error
}

// ProductRepository is the read-mostly product catalog.
type ProductRepository interface {
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Origins(ctx context.Context) ([]string, error)
	ListReviews(ctx context.Context, productID string) ([]domain.Review, error)
	AddReview(ctx context.Context, review *domain.Review) error
}
