package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Placement failure reasons used as the "reason" label.
const (
	reasonInFlight     = "in_flight"
	reasonPrecondition = "precondition"
	reasonValidation   = "validation"
	reasonDeclined     = "declined"
	reasonError        = "error"
)

var (
	ordersPlacedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_orders_placed_total",
			Help: "Total number of orders placed",
		},
		[]string{"shipping_method", "payment_method"},
	)

	orderPlacementFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_order_placement_failures_total",
			Help: "Total number of rejected or failed order placements",
		},
		[]string{"reason"},
	)

	orderPlacementDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "storefront_order_placement_duration_seconds",
			Help:    "Duration of order placement including payment processing",
			Buckets: []float64{.05, .1, .25, .5, 1, 2, 3, 5, 10},
		},
	)

	corruptDraftsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_corrupt_checkout_drafts_total",
			Help: "Total number of persisted checkout drafts discarded as unreadable",
		},
	)

	cartItemsAddedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_cart_items_added_total",
			Help: "Total quantity of products added to carts",
		},
		[]string{"product_id"},
	)
)
