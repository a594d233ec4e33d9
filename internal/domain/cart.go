package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is the shopping cart of one device.
type Cart struct {
	ID        string     `json:"id"`
	DeviceID  string     `json:"device_id"`
	Items     []CartItem `json:"items"`
	Currency  string     `json:"currency"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is one product line. Price is the unit price in cents as resolved
// from the catalog when the item was added.
type CartItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	Origin    string `json:"origin,omitempty"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// LineTotal is price × quantity in cents.
func (i CartItem) LineTotal() int64 {
	return i.Price * int64(i.Quantity)
}

// TotalAmount is the merchandise subtotal in cents.
func (c *Cart) TotalAmount() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.LineTotal()
	}
	return total
}

// Subtotal is TotalAmount in dollars.
func (c *Cart) Subtotal() decimal.Decimal {
	return decimal.New(c.TotalAmount(), -2)
}

// ItemCount is the total quantity across all lines.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// FindItemIndex returns the index of the line for productID, or -1.
func (c *Cart) FindItemIndex(productID string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}
