package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/utafrali/mangomarket/internal/domain"
	"github.com/utafrali/mangomarket/internal/event"
	"github.com/utafrali/mangomarket/internal/provider"
	"github.com/utafrali/mangomarket/internal/repository"
	apperrors "github.com/utafrali/mangomarket/pkg/errors"
	"github.com/utafrali/mangomarket/pkg/tracing"
)

// CartStore is the part of the cart the checkout depends on.
type CartStore interface {
	GetCart(ctx context.Context, deviceID string) (*domain.Cart, error)
	ClearCart(ctx context.Context, deviceID string) error
}

// CheckoutOption configures a CheckoutService.
type CheckoutOption func(*CheckoutService)

// WithClock overrides the time source.
func WithClock(now func() time.Time) CheckoutOption {
	return func(s *CheckoutService) { s.now = now }
}

// WithOrderNumberSource overrides the generator of the random order id
// suffix. next must return values in [0, 10000).
func WithOrderNumberSource(next func() int) CheckoutOption {
	return func(s *CheckoutService) { s.orderNumber = next }
}

// CheckoutService runs the checkout of every device. Each call loads the
// device's draft, applies one change and saves it back.
type CheckoutService struct {
	repo     repository.CheckoutRepository
	carts    CartStore
	payments provider.Provider
	producer *event.Producer
	logger   *slog.Logger

	now         func() time.Time
	orderNumber func() int

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	repo repository.CheckoutRepository,
	carts CartStore,
	payments provider.Provider,
	producer *event.Producer,
	logger *slog.Logger,
	opts ...CheckoutOption,
) *CheckoutService {
	s := &CheckoutService{
		repo:        repo,
		carts:       carts,
		payments:    payments,
		producer:    producer,
		logger:      logger,
		now:         time.Now,
		orderNumber: func() int { return rand.IntN(10000) },
		inFlight:    make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetCheckout returns the current draft, or defaults if there is none.
func (s *CheckoutService) GetCheckout(ctx context.Context, deviceID string) (*domain.CheckoutState, error) {
	if deviceID == "" {
		return nil, apperrors.InvalidInput("device id is required")
	}
	return s.load(ctx, deviceID)
}

// SetStep moves the draft to step. Steps can be visited in any order.
func (s *CheckoutService) SetStep(ctx context.Context, deviceID string, step domain.Step) (*domain.CheckoutState, error) {
	return s.update(ctx, deviceID, func(st *domain.CheckoutState) error {
		st.Step = step
		return nil
	})
}

// SetShippingAddress replaces the shipping address.
func (s *CheckoutService) SetShippingAddress(ctx context.Context, deviceID string, addr domain.Address) (*domain.CheckoutState, error) {
	return s.edit(ctx, deviceID, func(st *domain.CheckoutState) { st.ShippingAddress = &addr })
}

// SetBillingAddress replaces the billing address.
func (s *CheckoutService) SetBillingAddress(ctx context.Context, deviceID string, addr domain.Address) (*domain.CheckoutState, error) {
	return s.edit(ctx, deviceID, func(st *domain.CheckoutState) { st.BillingAddress = &addr })
}

// SetSameAsShipping sets the flag only; billing is copied at order time.
func (s *CheckoutService) SetSameAsShipping(ctx context.Context, deviceID string, same bool) (*domain.CheckoutState, error) {
	return s.edit(ctx, deviceID, func(st *domain.CheckoutState) { st.SameAsShipping = same })
}

// SetShippingMethod selects the delivery speed.
func (s *CheckoutService) SetShippingMethod(ctx context.Context, deviceID string, method domain.ShippingMethod) (*domain.CheckoutState, error) {
	return s.edit(ctx, deviceID, func(st *domain.CheckoutState) { st.ShippingMethod = method })
}

// SetPaymentMethod selects how the order is paid.
func (s *CheckoutService) SetPaymentMethod(ctx context.Context, deviceID string, method domain.PaymentMethod) (*domain.CheckoutState, error) {
	return s.edit(ctx, deviceID, func(st *domain.CheckoutState) { st.PaymentMethod = method })
}

// SetPaymentDetails replaces the card details.
func (s *CheckoutService) SetPaymentDetails(ctx context.Context, deviceID string, details domain.PaymentDetails) (*domain.CheckoutState, error) {
	return s.edit(ctx, deviceID, func(st *domain.CheckoutState) { st.PaymentDetails = &details })
}

// Summary prices the device's cart under the selected shipping method.
func (s *CheckoutService) Summary(ctx context.Context, deviceID string) (domain.OrderSummary, error) {
	state, err := s.GetCheckout(ctx, deviceID)
	if err != nil {
		return domain.OrderSummary{}, err
	}
	cart, err := s.carts.GetCart(ctx, deviceID)
	if err != nil {
		return domain.OrderSummary{}, fmt.Errorf("get cart: %w", err)
	}
	return domain.Summarize(cart, state.ShippingMethod), nil
}

// ValidatePayment returns the problems with the current payment selection.
func (s *CheckoutService) ValidatePayment(ctx context.Context, deviceID string) ([]string, error) {
	state, err := s.GetCheckout(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	return domain.ValidatePayment(state.PaymentMethod, state.PaymentDetails, s.now()), nil
}

// PlaceOrder charges the payment and confirms the order. It succeeds at
// most once per draft; the cart is emptied afterwards.
func (s *CheckoutService) PlaceOrder(ctx context.Context, deviceID string) (*domain.CheckoutState, error) {
	if deviceID == "" {
		return nil, apperrors.InvalidInput("device id is required")
	}
	if !s.acquire(deviceID) {
		orderPlacementFailuresTotal.WithLabelValues(reasonInFlight).Inc()
		return nil, apperrors.Conflict("an order is already being placed for this device")
	}
	defer s.release(deviceID)

	start := time.Now()
	defer func() { orderPlacementDuration.Observe(time.Since(start).Seconds()) }()

	ctx, span := tracing.Tracer("service").Start(ctx, "CheckoutService.PlaceOrder")
	defer span.End()

	state, err := s.placeOrder(ctx, deviceID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		orderPlacementFailuresTotal.WithLabelValues(failureReason(err)).Inc()
		return nil, err
	}

	span.SetAttributes(attribute.String("order.id", state.OrderID))
	ordersPlacedTotal.WithLabelValues(string(state.ShippingMethod), string(state.PaymentMethod)).Inc()
	return state, nil
}

func (s *CheckoutService) placeOrder(ctx context.Context, deviceID string) (*domain.CheckoutState, error) {
	state, err := s.load(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if state.OrderPlaced() {
		return nil, apperrors.PreconditionFailed("an order has already been placed; start a new checkout")
	}

	cart, err := s.carts.GetCart(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	if cart.IsEmpty() {
		return nil, apperrors.PreconditionFailed("cart is empty")
	}
	if state.ShippingAddress == nil {
		return nil, apperrors.PreconditionFailed("shipping address is required")
	}
	if !state.SameAsShipping && state.BillingAddress == nil {
		return nil, apperrors.PreconditionFailed("billing address is required")
	}

	now := s.now()
	if problems := domain.ValidatePayment(state.PaymentMethod, state.PaymentDetails, now); len(problems) > 0 {
		return nil, apperrors.Validation("payment details are invalid", problems)
	}

	summary := domain.Summarize(cart, state.ShippingMethod)
	result, err := s.payments.Charge(ctx, &provider.ChargeInput{
		Amount:      summary.Total.Round(2),
		Currency:    cart.Currency,
		Method:      state.PaymentMethod,
		Description: fmt.Sprintf("Mango Market order, %d items", summary.ItemCount),
		Metadata:    map[string]string{"device_id": deviceID},
	})
	if err != nil {
		return nil, fmt.Errorf("charge payment: %w", err)
	}
	if !result.Succeeded() {
		s.logger.WarnContext(ctx, "payment declined",
			slog.String("device_id", deviceID),
			slog.String("provider", s.payments.Name()),
			slog.String("reason", result.FailureReason),
		)
		return nil, apperrors.PaymentFailed("There was an error processing your payment. Please try again.")
	}

	now = s.now()
	state.MarkPlaced(domain.GenerateOrderID(now, s.orderNumber), now)
	state.UpdatedAt = now
	if err := s.repo.Save(ctx, deviceID, state); err != nil {
		return nil, fmt.Errorf("save placed order: %w", err)
	}

	if err := s.carts.ClearCart(ctx, deviceID); err != nil {
		s.logger.ErrorContext(ctx, "failed to clear cart after order",
			slog.String("device_id", deviceID),
			slog.String("order_id", state.OrderID),
			slog.String("error", err.Error()),
		)
	}

	if err := s.producer.PublishOrderPlaced(ctx, deviceID, state, cart, summary); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order_placed event",
			slog.String("order_id", state.OrderID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "order placed",
		slog.String("device_id", deviceID),
		slog.String("order_id", state.OrderID),
		slog.String("payment_id", result.ProviderPaymentID),
		slog.String("total", summary.Total.StringFixed(2)),
	)

	return state, nil
}

// ResetCheckout discards the draft; the next read yields defaults.
func (s *CheckoutService) ResetCheckout(ctx context.Context, deviceID string) error {
	if deviceID == "" {
		return apperrors.InvalidInput("device id is required")
	}
	if err := s.repo.Delete(ctx, deviceID); err != nil {
		return fmt.Errorf("delete checkout: %w", err)
	}
	s.logger.InfoContext(ctx, "checkout reset", slog.String("device_id", deviceID))
	return nil
}

// edit applies a field change to a draft. A placed order is read-only until
// ResetCheckout.
func (s *CheckoutService) edit(ctx context.Context, deviceID string, mutate func(*domain.CheckoutState)) (*domain.CheckoutState, error) {
	return s.update(ctx, deviceID, func(st *domain.CheckoutState) error {
		if st.OrderPlaced() {
			return apperrors.PreconditionFailed("the order has already been placed; start a new checkout to make changes")
		}
		mutate(st)
		return nil
	})
}

func (s *CheckoutService) update(ctx context.Context, deviceID string, mutate func(*domain.CheckoutState) error) (*domain.CheckoutState, error) {
	state, err := s.GetCheckout(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if err := mutate(state); err != nil {
		return nil, err
	}
	state.UpdatedAt = s.now().UTC()
	if err := s.repo.Save(ctx, deviceID, state); err != nil {
		return nil, fmt.Errorf("save checkout: %w", err)
	}
	return state, nil
}

// load returns the stored draft. Missing and unreadable drafts both come
// back as defaults.
func (s *CheckoutService) load(ctx context.Context, deviceID string) (*domain.CheckoutState, error) {
	state, err := s.repo.Get(ctx, deviceID)
	switch {
	case err == nil:
		return state, nil
	case errors.Is(err, apperrors.ErrNotFound):
		return domain.DefaultCheckoutState(), nil
	case errors.Is(err, domain.ErrCorruptState):
		corruptDraftsTotal.Inc()
		s.logger.WarnContext(ctx, "discarding unreadable checkout draft",
			slog.String("device_id", deviceID),
			slog.String("error", err.Error()),
		)
		return domain.DefaultCheckoutState(), nil
	default:
		return nil, fmt.Errorf("load checkout: %w", err)
	}
}

func (s *CheckoutService) acquire(deviceID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[deviceID]; busy {
		return false
	}
	s.inFlight[deviceID] = struct{}{}
	return true
}

func (s *CheckoutService) release(deviceID string) {
	s.mu.Lock()
	delete(s.inFlight, deviceID)
	s.mu.Unlock()
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrPrecondition):
		return reasonPrecondition
	case errors.Is(err, apperrors.ErrValidation):
		return reasonValidation
	case errors.Is(err, apperrors.ErrPaymentFailed):
		return reasonDeclined
	default:
		return reasonError
	}
}
