package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/utafrali/mangomarket/internal/domain"
	"github.com/utafrali/mangomarket/internal/event"
	"github.com/utafrali/mangomarket/internal/repository"
	apperrors "github.com/utafrali/mangomarket/pkg/errors"
)

// Cart operation upper-bound limits to prevent abuse.
const (
	// MaxQuantityPerItem is the maximum quantity allowed for a single cart line.
	MaxQuantityPerItem = 100
	// MaxItemsPerCart is the maximum number of distinct products in a cart.
	MaxItemsPerCart = 50
)

// DefaultCurrency is the currency of every cart.
const DefaultCurrency = "USD"

// AddItemInput holds the parameters for adding a product to the cart. Name
// and price are resolved from the catalog.
type AddItemInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1,lte=100"`
}

// UpdateQuantityInput holds the parameters for updating a line quantity.
type UpdateQuantityInput struct {
	Quantity int `json:"quantity" validate:"gte=0,lte=100"`
}

// CartService implements the business logic for cart operations.
type CartService struct {
	repo     repository.CartRepository
	products repository.ProductRepository
	producer *event.Producer
	logger   *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(repo repository.CartRepository, products repository.ProductRepository, producer *event.Producer, logger *slog.Logger) *CartService {
	return &CartService{
		repo:     repo,
		products: products,
		producer: producer,
		logger:   logger,
	}
}

// GetCart retrieves the cart for a device. If no cart exists, returns an empty cart.
func (s *CartService) GetCart(ctx context.Context, deviceID string) (*domain.Cart, error) {
	if deviceID == "" {
		return nil, apperrors.InvalidInput("device id is required")
	}

	cart, err := s.repo.Get(ctx, deviceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.newEmptyCart(deviceID), nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	return cart, nil
}

// AddItem adds a catalog product to the cart, merging with an existing line
// for the same product.
func (s *CartService) AddItem(ctx context.Context, deviceID string, input AddItemInput) (*domain.Cart, error) {
	if deviceID == "" {
		return nil, apperrors.InvalidInput("device id is required")
	}
	if input.ProductID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	if input.Quantity <= 0 {
		return nil, apperrors.InvalidInput("quantity must be greater than 0")
	}
	if input.Quantity > MaxQuantityPerItem {
		return nil, apperrors.InvalidInput(fmt.Sprintf("quantity must not exceed %d", MaxQuantityPerItem))
	}

	product, err := s.products.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.InStock {
		return nil, apperrors.InvalidInput(fmt.Sprintf("%s is out of stock", product.Name))
	}

	cart, err := s.GetCart(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	if i := cart.FindItemIndex(product.ID); i >= 0 {
		newQty := cart.Items[i].Quantity + input.Quantity
		if newQty > MaxQuantityPerItem {
			return nil, apperrors.InvalidInput(fmt.Sprintf("combined quantity must not exceed %d", MaxQuantityPerItem))
		}
		cart.Items[i].Quantity = newQty
		// Refresh catalog fields in case they changed.
		cart.Items[i].Price = product.Price
		cart.Items[i].Name = product.Name
		cart.Items[i].Image = product.Image
	} else {
		if len(cart.Items) >= MaxItemsPerCart {
			return nil, apperrors.InvalidInput(fmt.Sprintf("cart must not contain more than %d items", MaxItemsPerCart))
		}
		cart.Items = append(cart.Items, domain.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Image:     product.Image,
			Origin:    product.Origin,
			Price:     product.Price,
			Quantity:  input.Quantity,
		})
	}

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	cartItemsAddedTotal.WithLabelValues(product.ID).Add(float64(input.Quantity))

	s.logger.InfoContext(ctx, "item added to cart",
		slog.String("device_id", deviceID),
		slog.String("product_id", product.ID),
		slog.Int("quantity", input.Quantity),
	)

	return cart, nil
}

// UpdateItemQuantity sets the quantity of a line. A quantity of 0 removes it.
func (s *CartService) UpdateItemQuantity(ctx context.Context, deviceID, productID string, quantity int) (*domain.Cart, error) {
	if deviceID == "" {
		return nil, apperrors.InvalidInput("device id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	if quantity < 0 {
		return nil, apperrors.InvalidInput("quantity must not be negative")
	}
	if quantity > MaxQuantityPerItem {
		return nil, apperrors.InvalidInput(fmt.Sprintf("quantity must not exceed %d", MaxQuantityPerItem))
	}

	cart, err := s.GetCart(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	i := cart.FindItemIndex(productID)
	if i < 0 {
		return nil, apperrors.NotFound("cart item", productID)
	}
	if quantity == 0 {
		cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
	} else {
		cart.Items[i].Quantity = quantity
	}

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "cart item quantity updated",
		slog.String("device_id", deviceID),
		slog.String("product_id", productID),
		slog.Int("quantity", quantity),
	)

	return cart, nil
}

// RemoveItem removes a line from the cart.
func (s *CartService) RemoveItem(ctx context.Context, deviceID, productID string) (*domain.Cart, error) {
	if deviceID == "" {
		return nil, apperrors.InvalidInput("device id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	cart, err := s.GetCart(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	i := cart.FindItemIndex(productID)
	if i < 0 {
		return nil, apperrors.NotFound("cart item", productID)
	}
	cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "item removed from cart",
		slog.String("device_id", deviceID),
		slog.String("product_id", productID),
	)

	return cart, nil
}

// ClearCart removes every line from the device's cart.
func (s *CartService) ClearCart(ctx context.Context, deviceID string) error {
	if deviceID == "" {
		return apperrors.InvalidInput("device id is required")
	}

	if err := s.repo.Delete(ctx, deviceID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	if err := s.producer.PublishCartCleared(ctx, deviceID); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.cleared event",
			slog.String("device_id", deviceID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "cart cleared", slog.String("device_id", deviceID))
	return nil
}

func (s *CartService) save(ctx context.Context, cart *domain.Cart) error {
	cart.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, cart); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}

	if err := s.producer.PublishCartUpdated(ctx, cart); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.updated event",
			slog.String("device_id", cart.DeviceID),
			slog.String("error", err.Error()),
		)
	}
	return nil
}

func (s *CartService) newEmptyCart(deviceID string) *domain.Cart {
	now := time.Now().UTC()
	return &domain.Cart{
		ID:        uuid.New().String(),
		DeviceID:  deviceID,
		Items:     []domain.CartItem{},
		Currency:  DefaultCurrency,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
