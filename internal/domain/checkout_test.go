package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAddress() *Address {
	return &Address{
		FullName:     "Ada Lovelace",
		AddressLine1: "12 Orchard Lane",
		City:         "Miami",
		State:        "FL",
		PostalCode:   "33101",
		Country:      "US",
		Phone:        "3055550123",
	}
}

func TestDefaultCheckoutState(t *testing.T) {
	s := DefaultCheckoutState()

	assert.Equal(t, StepShipping, s.Step)
	assert.True(t, s.SameAsShipping)
	assert.Equal(t, ShippingStandard, s.ShippingMethod)
	assert.Equal(t, PaymentCreditCard, s.PaymentMethod)
	assert.Nil(t, s.ShippingAddress)
	assert.Nil(t, s.BillingAddress)
	assert.Nil(t, s.PaymentDetails)
	assert.Empty(t, s.OrderID)
	assert.Nil(t, s.OrderDate)
	assert.Nil(t, s.EstimatedDelivery)
	assert.NoError(t, s.Validate())
}

func TestDecodeCheckoutState_RestoresDates(t *testing.T) {
	s := DefaultCheckoutState()
	s.ShippingAddress = sampleAddress()
	s.MarkPlaced("MM-123456-0042", time.Date(2024, 1, 10, 15, 4, 5, 0, time.UTC))

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"order_date":"2024-01-10T15:04:05Z"`)

	got, err := DecodeCheckoutState(data)
	require.NoError(t, err)
	require.NotNil(t, got.OrderDate)
	assert.True(t, got.OrderDate.Equal(*s.OrderDate))
	assert.True(t, got.EstimatedDelivery.Equal(*s.EstimatedDelivery))
	assert.Equal(t, StepConfirmation, got.Step)
}

func TestDecodeCheckoutState_Corrupt(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{"step":`},
		{"unknown step", `{"step":"review","shipping_method":"standard","payment_method":"paypal"}`},
		{"unknown shipping method", `{"step":"shipping","shipping_method":"drone","payment_method":"paypal"}`},
		{"missing step", `{"shipping_method":"standard","payment_method":"paypal"}`},
		{"bad date", `{"step":"confirmation","shipping_method":"standard","payment_method":"paypal","order_id":"MM-1-2","order_date":"yesterday","estimated_delivery":"2024-01-11T00:00:00Z"}`},
		{"order id without dates", `{"step":"confirmation","shipping_method":"standard","payment_method":"paypal","order_id":"MM-1-2"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCheckoutState([]byte(tt.doc))
			require.ErrorIs(t, err, ErrCorruptState)
		})
	}
}

func TestEffectiveBillingAddress(t *testing.T) {
	s := DefaultCheckoutState()
	s.ShippingAddress = sampleAddress()
	assert.Equal(t, s.ShippingAddress, s.EffectiveBillingAddress())

	s.SameAsShipping = false
	assert.Nil(t, s.EffectiveBillingAddress())
}

func TestLabels(t *testing.T) {
	s := DefaultCheckoutState()
	s.ShippingAddress = sampleAddress()
	s.ShippingMethod = ShippingOvernight
	s.PaymentDetails = &PaymentDetails{CardNumber: "4111 1111 1111 1111"}
	s.MarkPlaced("MM-000001-0001", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))

	l := s.Labels()
	assert.Equal(t, "Overnight Shipping (1 business day)", l.ShippingMethod)
	assert.Equal(t, "Monday, January 1, 2024", l.OrderDate)
	assert.Equal(t, "Tuesday, January 2, 2024", l.EstimatedDelivery)
	assert.Equal(t, "•••• 1111", l.CardNumber)
	assert.Equal(t, "(305) 555-0123", l.Phone)
}
