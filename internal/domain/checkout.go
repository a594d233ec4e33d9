package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrUnknownValue is returned when a string does not name a member of one
	// of the closed checkout enums.
	ErrUnknownValue = errors.New("unknown value")

	// ErrCorruptState marks a persisted checkout document that cannot be
	// trusted and must be replaced with defaults.
	ErrCorruptState = errors.New("corrupt checkout state")
)

// Address is a shipping or billing address. Only presence of the required
// fields is checked; content is free text.
type Address struct {
	FullName     string `json:"full_name" validate:"required"`
	AddressLine1 string `json:"address_line1" validate:"required"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	PostalCode   string `json:"postal_code" validate:"required"`
	Country      string `json:"country" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
}

// PaymentDetails holds the card fields entered for a credit card payment.
type PaymentDetails struct {
	CardNumber     string `json:"card_number"`
	CardholderName string `json:"cardholder_name"`
	ExpiryDate     string `json:"expiry_date"`
	CVV            string `json:"cvv"`
}

// CheckoutState is the checkout draft of one device.
type CheckoutState struct {
	Step              Step            `json:"step"`
	ShippingAddress   *Address        `json:"shipping_address,omitempty"`
	BillingAddress    *Address        `json:"billing_address,omitempty"`
	SameAsShipping    bool            `json:"same_as_shipping"`
	ShippingMethod    ShippingMethod  `json:"shipping_method"`
	PaymentMethod     PaymentMethod   `json:"payment_method"`
	PaymentDetails    *PaymentDetails `json:"payment_details,omitempty"`
	OrderID           string          `json:"order_id,omitempty"`
	OrderDate         *time.Time      `json:"order_date,omitempty"`
	EstimatedDelivery *time.Time      `json:"estimated_delivery,omitempty"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// DefaultCheckoutState returns the state of a device that has never
// started checkout.
func DefaultCheckoutState() *CheckoutState {
	return &CheckoutState{
		Step:           StepShipping,
		SameAsShipping: true,
		ShippingMethod: ShippingStandard,
		PaymentMethod:  PaymentCreditCard,
	}
}

// OrderPlaced reports whether an order has already been placed from this draft.
func (s *CheckoutState) OrderPlaced() bool {
	return s.OrderID != ""
}

// EffectiveBillingAddress is the address the order is billed to.
func (s *CheckoutState) EffectiveBillingAddress() *Address {
	if s.SameAsShipping {
		return s.ShippingAddress
	}
	return s.BillingAddress
}

// Validate checks the structural invariants of a decoded document.
func (s *CheckoutState) Validate() error {
	if _, err := ParseStep(string(s.Step)); err != nil {
		return err
	}
	if _, err := ParseShippingMethod(string(s.ShippingMethod)); err != nil {
		return err
	}
	if _, err := ParsePaymentMethod(string(s.PaymentMethod)); err != nil {
		return err
	}
	placed := s.OrderID != ""
	if placed != (s.OrderDate != nil) || placed != (s.EstimatedDelivery != nil) {
		return errors.New("order id and order dates must be set together")
	}
	return nil
}

// DecodeCheckoutState parses a persisted document. Any decoding or
// validation failure is reported as ErrCorruptState.
func DecodeCheckoutState(data []byte) (*CheckoutState, error) {
	var s CheckoutState
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptState, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptState, err)
	}
	return &s, nil
}

// Labels are the display strings rendered on the confirmation page.
type Labels struct {
	ShippingMethod    string `json:"shipping_method"`
	OrderDate         string `json:"order_date,omitempty"`
	EstimatedDelivery string `json:"estimated_delivery,omitempty"`
	CardNumber        string `json:"card_number,omitempty"`
	Phone             string `json:"phone,omitempty"`
}

// Labels returns the formatted display strings for s.
func (s *CheckoutState) Labels() Labels {
	l := Labels{ShippingMethod: s.ShippingMethod.Label()}
	if s.OrderDate != nil {
		l.OrderDate = FormatOrderDate(*s.OrderDate)
	}
	if s.EstimatedDelivery != nil {
		l.EstimatedDelivery = FormatOrderDate(*s.EstimatedDelivery)
	}
	if s.PaymentDetails != nil {
		l.CardNumber = MaskCardNumber(s.PaymentDetails.CardNumber)
	}
	if s.ShippingAddress != nil {
		l.Phone = FormatPhoneNumber(s.ShippingAddress.Phone)
	}
	return l
}
