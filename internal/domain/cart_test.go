package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCart_Totals(t *testing.T) {
	c := &Cart{Items: []CartItem{
		{ProductID: "alphonso-premium", Price: 2499, Quantity: 2},
		{ProductID: "honey-mango", Price: 1299, Quantity: 1},
	}}

	assert.Equal(t, int64(6297), c.TotalAmount())
	assert.Equal(t, "62.97", c.Subtotal().StringFixed(2))
	assert.Equal(t, 3, c.ItemCount())
	assert.False(t, c.IsEmpty())
}

func TestCart_Empty(t *testing.T) {
	c := &Cart{}
	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.TotalAmount())
	assert.True(t, c.Subtotal().IsZero())
}

func TestCart_FindItemIndex(t *testing.T) {
	c := &Cart{Items: []CartItem{{ProductID: "a"}, {ProductID: "b"}}}
	assert.Equal(t, 1, c.FindItemIndex("b"))
	assert.Equal(t, -1, c.FindItemIndex("z"))
}
