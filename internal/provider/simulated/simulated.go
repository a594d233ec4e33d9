package simulated

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/utafrali/mangomarket/internal/provider"
)

// Provider simulates a card processor: every charge takes Delay and fails
// with probability FailureRate. No money moves.
type Provider struct {
	delay       time.Duration
	failureRate float64
	roll        func() float64
}

// Option configures a Provider.
type Option func(*Provider)

// WithRoll replaces the random source used to decide failures. roll must
// return values in [0, 1).
func WithRoll(roll func() float64) Option {
	return func(p *Provider) { p.roll = roll }
}

// NewProvider creates a simulated provider.
func NewProvider(delay time.Duration, failureRate float64, opts ...Option) *Provider {
	p := &Provider{
		delay:       delay,
		failureRate: failureRate,
		roll:        rand.Float64,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "simulated"
}

// Charge waits for the processing delay, then approves or declines.
func (p *Provider) Charge(ctx context.Context, _ *provider.ChargeInput) (*provider.ChargeResult, error) {
	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	if p.roll() < p.failureRate {
		return &provider.ChargeResult{
			Status:        provider.StatusFailed,
			FailureReason: "payment was declined",
		}, nil
	}

	return &provider.ChargeResult{
		ProviderPaymentID: "sim_pay_" + uuid.New().String(),
		Status:            provider.StatusSucceeded,
	}, nil
}
