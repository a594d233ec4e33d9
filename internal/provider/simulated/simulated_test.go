package simulated

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/mangomarket/internal/domain"
	"github.com/utafrali/mangomarket/internal/provider"
)

func chargeInput() *provider.ChargeInput {
	return &provider.ChargeInput{Amount: decimal.RequireFromString("33.70"), Currency: "USD", Method: domain.PaymentCreditCard}
}

func TestProvider_Succeeds(t *testing.T) {
	p := NewProvider(0, 0)

	res, err := p.Charge(context.Background(), chargeInput())
	require.NoError(t, err)
	assert.True(t, res.Succeeded())
	assert.Contains(t, res.ProviderPaymentID, "sim_pay_")
	assert.Equal(t, "simulated", p.Name())
}

func TestProvider_DeclinesBelowFailureRate(t *testing.T) {
	p := NewProvider(0, 0.3, WithRoll(func() float64 { return 0.1 }))

	res, err := p.Charge(context.Background(), chargeInput())
	require.NoError(t, err)
	assert.False(t, res.Succeeded())
	assert.NotEmpty(t, res.FailureReason)
}

func TestProvider_ApprovesAboveFailureRate(t *testing.T) {
	p := NewProvider(0, 0.3, WithRoll(func() float64 { return 0.5 }))

	res, err := p.Charge(context.Background(), chargeInput())
	require.NoError(t, err)
	assert.True(t, res.Succeeded())
}

func TestProvider_WaitsForDelay(t *testing.T) {
	p := NewProvider(30*time.Millisecond, 0)

	start := time.Now()
	_, err := p.Charge(context.Background(), chargeInput())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestProvider_HonoursCancellation(t *testing.T) {
	p := NewProvider(time.Minute, 0)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.Charge(ctx, chargeInput())
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
