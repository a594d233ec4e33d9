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

const cartKeyPrefix = "cart:"

// CartRepository implements repository.CartRepository using Redis.
type CartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartRepository creates a new Redis-backed cart repository.
func NewCartRepository(client *redis.Client, ttl time.Duration) *CartRepository {
	return &CartRepository{client: client, ttl: ttl}
}

// Get retrieves a cart by device ID.
func (r *CartRepository) Get(ctx context.Context, deviceID string) (*domain.Cart, error) {
	data, err := r.client.Get(ctx, cartKeyPrefix+deviceID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NotFound("cart", deviceID)
		}
		return nil, fmt.Errorf("redis get cart: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("unmarshal cart: %w", err)
	}
	return &cart, nil
}

// Save persists a cart with the configured TTL.
func (r *CartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := r.client.Set(ctx, cartKeyPrefix+cart.DeviceID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set cart: %w", err)
	}
	return nil
}

// Delete removes a cart by device ID.
func (r *CartRepository) Delete(ctx context.Context, deviceID string) error {
	if err := r.client.Del(ctx, cartKeyPrefix+deviceID).Err(); err != nil {
		return fmt.Errorf("redis del cart: %w", err)
	}
	return nil
}
