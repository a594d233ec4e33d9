package event

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/utafrali/mangomarket/internal/domain"
	pkgkafka "github.com/utafrali/mangomarket/pkg/kafka"
	"github.com/utafrali/mangomarket/pkg/logger"
)

// Kafka topics for storefront domain events.
const (
	TopicOrderPlaced = "ecommerce.checkout.order_placed"
	TopicCartUpdated = "ecommerce.cart.updated"
	TopicCartCleared = "ecommerce.cart.cleared"
)

// Aggregate types.
const (
	AggregateTypeOrder = "order"
	AggregateTypeCart  = "cart"
)

// SourceStorefront identifies events originating from this service.
const SourceStorefront = "storefront"

// Publisher sends an event envelope to a topic. *pkgkafka.Producer
// satisfies it.
type Publisher interface {
	Publish(ctx context.Context, topic string, event *pkgkafka.Event) error
}

// Discard is a Publisher that drops every event. It is used when Kafka is
// disabled.
type Discard struct{}

// Publish drops the event.
func (Discard) Publish(context.Context, string, *pkgkafka.Event) error { return nil }

// OrderPlacedData is the payload of an order_placed event.
type OrderPlacedData struct {
	OrderID           string          `json:"order_id"`
	DeviceID          string          `json:"device_id"`
	OrderDate         time.Time       `json:"order_date"`
	EstimatedDelivery time.Time       `json:"estimated_delivery"`
	ShippingMethod    string          `json:"shipping_method"`
	PaymentMethod     string          `json:"payment_method"`
	Items             []OrderItemData `json:"items"`
	Subtotal          string          `json:"subtotal"`
	Shipping          string          `json:"shipping"`
	Tax               string          `json:"tax"`
	Total             string          `json:"total"`
	ShipTo            *domain.Address `json:"ship_to"`
}

// OrderItemData is one line of a placed order.
type OrderItemData struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// CartUpdatedData is the payload for a cart.updated event.
type CartUpdatedData struct {
	DeviceID    string `json:"device_id"`
	ItemCount   int    `json:"item_count"`
	TotalAmount int64  `json:"total_amount"`
	Currency    string `json:"currency"`
}

// CartClearedData is the payload for a cart.cleared event.
type CartClearedData struct {
	DeviceID string `json:"device_id"`
}

// Producer publishes storefront domain events.
type Producer struct {
	publisher Publisher
	logger    *slog.Logger
}

// NewProducer creates a new event producer.
func NewProducer(publisher Publisher, logger *slog.Logger) *Producer {
	return &Producer{publisher: publisher, logger: logger}
}

// PublishOrderPlaced publishes an order_placed event for a confirmed order.
func (p *Producer) PublishOrderPlaced(ctx context.Context, deviceID string, state *domain.CheckoutState, cart *domain.Cart, summary domain.OrderSummary) error {
	items := make([]OrderItemData, len(cart.Items))
	for i, item := range cart.Items {
		items[i] = OrderItemData{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}

	data := OrderPlacedData{
		OrderID:           state.OrderID,
		DeviceID:          deviceID,
		OrderDate:         *state.OrderDate,
		EstimatedDelivery: *state.EstimatedDelivery,
		ShippingMethod:    string(state.ShippingMethod),
		PaymentMethod:     string(state.PaymentMethod),
		Items:             items,
		Subtotal:          summary.Subtotal.StringFixed(2),
		Shipping:          summary.Shipping.StringFixed(2),
		Tax:               summary.Tax.StringFixed(2),
		Total:             summary.Total.StringFixed(2),
		ShipTo:            state.ShippingAddress,
	}

	return p.publish(ctx, TopicOrderPlaced, state.OrderID, AggregateTypeOrder, deviceID, data)
}

// PublishCartUpdated publishes a cart.updated event.
func (p *Producer) PublishCartUpdated(ctx context.Context, cart *domain.Cart) error {
	data := CartUpdatedData{
		DeviceID:    cart.DeviceID,
		ItemCount:   cart.ItemCount(),
		TotalAmount: cart.TotalAmount(),
		Currency:    cart.Currency,
	}
	return p.publish(ctx, TopicCartUpdated, cart.DeviceID, AggregateTypeCart, cart.DeviceID, data)
}

// PublishCartCleared publishes a cart.cleared event.
func (p *Producer) PublishCartCleared(ctx context.Context, deviceID string) error {
	return p.publish(ctx, TopicCartCleared, deviceID, AggregateTypeCart, deviceID, CartClearedData{DeviceID: deviceID})
}

func (p *Producer) publish(ctx context.Context, topic, aggregateID, aggregateType, deviceID string, data any) error {
	evt, err := pkgkafka.NewEvent(topic, aggregateID, aggregateType, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create %s event: %w", topic, err)
	}
	evt.WithCorrelationID(logger.CorrelationIDFromContext(ctx)).WithMetadata("device_id", deviceID)

	if err := p.publisher.Publish(ctx, topic, evt); err != nil {
		return fmt.Errorf("publish %s event: %w", topic, err)
	}

	p.logger.DebugContext(ctx, "published event",
		slog.String("topic", topic),
		slog.String("aggregate_id", aggregateID),
	)
	return nil
}
