package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/utafrali/mangomarket/internal/domain"
	apperrors "github.com/utafrali/mangomarket/pkg/errors"
)

const checkoutKeyPrefix = "checkout:"

// CheckoutRepository implements repository.CheckoutRepository using Redis.
// Each draft is a JSON document that expires ttl after its last write.
type CheckoutRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCheckoutRepository creates a new Redis-backed checkout repository.
func NewCheckoutRepository(client *redis.Client, ttl time.Duration) *CheckoutRepository {
	return &CheckoutRepository{client: client, ttl: ttl}
}

// Get retrieves the checkout draft for a device.
func (r *CheckoutRepository) Get(ctx context.Context, deviceID string) (*domain.CheckoutState, error) {
	data, err := r.client.Get(ctx, checkoutKeyPrefix+deviceID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NotFound("checkout", deviceID)
		}
		return nil, fmt.Errorf("redis get checkout: %w", err)
	}

	state, err := domain.DecodeCheckoutState(data)
	if err != nil {
		return nil, fmt.Errorf("decode checkout %s: %w", deviceID, err)
	}
	return state, nil
}

// Save persists the draft with the configured TTL.
func (r *CheckoutRepository) Save(ctx context.Context, deviceID string, state *domain.CheckoutState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal checkout: %w", err)
	}
	if err := r.client.Set(ctx, checkoutKeyPrefix+deviceID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set checkout: %w", err)
	}
	return nil
}

// Delete removes the draft for a device.
func (r *CheckoutRepository) Delete(ctx context.Context, deviceID string) error {
	if err := r.client.Del(ctx, checkoutKeyPrefix+deviceID).Err(); err != nil {
		return fmt.Errorf("redis del checkout: %w", err)
	}
	return nil
}
