package provider

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/utafrali/mangomarket/internal/domain"
)

// Charge statuses.
const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// ChargeInput holds the parameters for charging a payment.
type ChargeInput struct {
	Amount      decimal.Decimal
	Currency    string
	Method      domain.PaymentMethod
	Description string
	Metadata    map[string]string
}

// ChargeResult holds the outcome reported by the processor.
type ChargeResult struct {
	ProviderPaymentID string
	Status            string
	FailureReason     string
}

// Succeeded reports whether the charge went through.
func (r *ChargeResult) Succeeded() bool {
	return r.Status == StatusSucceeded
}

// Provider processes payments for placed orders.
type Provider interface {
	// Name returns the provider name (e.g., "simulated").
	Name() string

	// Charge processes a payment. A declined charge is reported through
	// ChargeResult; a returned error means the charge could not be attempted
	// or was abandoned because ctx ended.
	Charge(ctx context.Context, input *ChargeInput) (*ChargeResult, error)
}
