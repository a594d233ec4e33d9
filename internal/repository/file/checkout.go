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

// CheckoutRepository implements repository.CheckoutRepository on a Store.
type CheckoutRepository struct {
	store *Store
}

// NewCheckoutRepository creates a file-backed checkout repository.
func NewCheckoutRepository(store *Store) *CheckoutRepository {
	return &CheckoutRepository{store: store}
}

// Get reads and decodes the draft for a device.
func (r *CheckoutRepository) Get(_ context.Context, deviceID string) (*domain.CheckoutState, error) {
	data, err := r.store.read(checkoutDir, deviceID)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NotFound("checkout", deviceID)
		}
		return nil, fmt.Errorf("read checkout: %w", err)
	}

	state, err := domain.DecodeCheckoutState(data)
	if err != nil {
		return nil, fmt.Errorf("decode checkout %s: %w", deviceID, err)
	}
	return state, nil
}

// Save writes the draft for a device.
func (r *CheckoutRepository) Save(_ context.Context, deviceID string, state *domain.CheckoutState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal checkout: %w", err)
	}
	if err := r.store.write(checkoutDir, deviceID, data); err != nil {
		return fmt.Errorf("write checkout: %w", err)
	}
	return nil
}

// Delete removes the draft for a device.
func (r *CheckoutRepository) Delete(_ context.Context, deviceID string) error {
	if err := r.store.remove(checkoutDir, deviceID); err != nil {
		return fmt.Errorf("delete checkout: %w", err)
	}
	return nil
}
