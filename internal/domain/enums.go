package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Step is the checkout page the shopper is on.
type Step string

const (
	StepShipping     Step = "shipping"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

// ParseStep converts s into a Step, rejecting anything outside the closed set.
func ParseStep(s string) (Step, error) {
	switch st := Step(s); st {
	case StepShipping, StepPayment, StepConfirmation:
		return st, nil
	}
	return "", fmt.Errorf("%w: step %q", ErrUnknownValue, s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Step) UnmarshalText(b []byte) error {
	v, err := ParseStep(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ShippingMethod is the delivery speed chosen at checkout.
type ShippingMethod string

const (
	ShippingStandard  ShippingMethod = "standard"
	ShippingExpress   ShippingMethod = "express"
	ShippingOvernight ShippingMethod = "overnight"
)

type shippingRate struct {
	cost         decimal.Decimal
	deliveryDays int
	label        string
}

var shippingRates = map[ShippingMethod]shippingRate{
	ShippingStandard:  {decimal.New(500, -2), 5, "Standard Shipping (3-5 business days)"},
	ShippingExpress:   {decimal.New(1200, -2), 3, "Express Shipping (2-3 business days)"},
	ShippingOvernight: {decimal.New(2500, -2), 1, "Overnight Shipping (1 business day)"},
}

// ShippingMethods lists the methods in display order.
var ShippingMethods = []ShippingMethod{ShippingStandard, ShippingExpress, ShippingOvernight}

// ParseShippingMethod converts s into a ShippingMethod.
func ParseShippingMethod(s string) (ShippingMethod, error) {
	m := ShippingMethod(s)
	if _, ok := shippingRates[m]; !ok {
		return "", fmt.Errorf("%w: shipping method %q", ErrUnknownValue, s)
	}
	return m, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ShippingMethod) UnmarshalText(b []byte) error {
	v, err := ParseShippingMethod(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Cost is the flat shipping fee in dollars.
func (m ShippingMethod) Cost() decimal.Decimal {
	return shippingRates[m].cost
}

// DeliveryDays is the number of calendar days added to the order date to
// estimate delivery.
func (m ShippingMethod) DeliveryDays() int {
	return shippingRates[m].deliveryDays
}

// Label is the human readable description shown on the confirmation page.
func (m ShippingMethod) Label() string {
	if r, ok := shippingRates[m]; ok {
		return r.label
	}
	return "Standard Shipping"
}

// PaymentMethod is how the shopper pays.
type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentPayPal     PaymentMethod = "paypal"
	PaymentApplePay   PaymentMethod = "apple_pay"
)

// ParsePaymentMethod converts s into a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(s); m {
	case PaymentCreditCard, PaymentPayPal, PaymentApplePay:
		return m, nil
	}
	return "", fmt.Errorf("%w: payment method %q", ErrUnknownValue, s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *PaymentMethod) UnmarshalText(b []byte) error {
	v, err := ParsePaymentMethod(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
