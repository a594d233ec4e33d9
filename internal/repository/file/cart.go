package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/utafrali/mangomarket/internal/domain"
	apperrors "github.com/utafrali/mangomarket/pkg/errors"
)

// CartRepository implements repository.CartRepository on a Store.
type CartRepository struct {
	store *Store
}

// NewCartRepository creates a file-backed cart repository.
func NewCartRepository(store *Store) *CartRepository {
	return &CartRepository{store: store}
}

// Get reads the cart for a device.
func (r *CartRepository) Get(_ context.Context, deviceID string) (*domain.Cart, error) {
	data, err := r.store.read(cartDir, deviceID)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NotFound("cart", deviceID)
		}
		return nil, fmt.Errorf("read cart: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("unmarshal cart: %w", err)
	}
	return &cart, nil
}

// Save writes the cart.
func (r *CartRepository) Save(_ context.Context, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := r.store.write(cartDir, cart.DeviceID, data); err != nil {
		return fmt.Errorf("write cart: %w", err)
	}
	return nil
}

// Delete removes the cart for a device.
func (r *CartRepository) Delete(_ context.Context, deviceID string) error {
	if err := r.store.remove(cartDir, deviceID); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
