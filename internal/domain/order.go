package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TaxRate is the flat sales tax applied to the merchandise subtotal.
var TaxRate = decimal.RequireFromString("0.085")

// Tax returns subtotal × TaxRate. Shipping is never taxed.
func Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(TaxRate)
}

// OrderSummary is the price breakdown shown next to every checkout step.
type OrderSummary struct {
	Subtotal  decimal.Decimal
	Shipping  decimal.Decimal
	Tax       decimal.Decimal
	Total     decimal.Decimal
	ItemCount int
}

// Summarize prices a cart under the given shipping method.
func Summarize(cart *Cart, method ShippingMethod) OrderSummary {
	subtotal := cart.Subtotal()
	shipping := method.Cost()
	tax := Tax(subtotal)
	return OrderSummary{
		Subtotal:  subtotal,
		Shipping:  shipping,
		Tax:       tax,
		Total:     subtotal.Add(shipping).Add(tax),
		ItemCount: cart.ItemCount(),
	}
}

// GenerateOrderID builds an id of the form MM-<last 6 digits of the unix
// millisecond timestamp>-<4 digit zero padded random number>. rnd must
// return a value in [0, 10000).
func GenerateOrderID(now time.Time, rnd func() int) string {
	return fmt.Sprintf("MM-%06d-%04d", now.UnixMilli()%1_000_000, rnd())
}

// EstimatedDelivery adds the method's delivery offset in calendar days.
func EstimatedDelivery(orderDate time.Time, method ShippingMethod) time.Time {
	return orderDate.AddDate(0, 0, method.DeliveryDays())
}

// MarkPlaced records a successful placement on s: order id and dates are
// set, billing is copied from shipping when requested, and the draft
// advances to confirmation.
func (s *CheckoutState) MarkPlaced(orderID string, now time.Time) {
	orderDate := now
	delivery := EstimatedDelivery(orderDate, s.ShippingMethod)

	s.OrderID = orderID
	s.OrderDate = &orderDate
	s.EstimatedDelivery = &delivery
	if s.SameAsShipping && s.ShippingAddress != nil {
		billing := *s.ShippingAddress
		s.BillingAddress = &billing
	}
	s.Step = StepConfirmation
}
