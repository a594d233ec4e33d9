package event

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/mangomarket/internal/domain"
	pkgkafka "github.com/utafrali/mangomarket/pkg/kafka"
	"github.com/utafrali/mangomarket/pkg/logger"
)

type recordingPublisher struct {
	topics []string
	events []*pkgkafka.Event
	err    error
}

func (r *recordingPublisher) Publish(_ context.Context, topic string, evt *pkgkafka.Event) error {
	if r.err != nil {
		return r.err
	}
	r.topics = append(r.topics, topic)
	r.events = append(r.events, evt)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublishOrderPlaced(t *testing.T) {
	pub := &recordingPublisher{}
	p := NewProducer(pub, discardLogger())

	state := domain.DefaultCheckoutState()
	state.ShippingMethod = domain.ShippingExpress
	state.ShippingAddress = &domain.Address{FullName: "Ada"}
	state.MarkPlaced("MM-654321-0042", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	cart := &domain.Cart{DeviceID: "dev-1", Items: []domain.CartItem{{ProductID: "kent-jumbo", Price: 1000, Quantity: 2}}}

	ctx := logger.WithCorrelationID(context.Background(), "corr-7")
	require.NoError(t, p.PublishOrderPlaced(ctx, "dev-1", state, cart, domain.Summarize(cart, state.ShippingMethod)))

	require.Equal(t, []string{TopicOrderPlaced}, pub.topics)
	evt := pub.events[0]
	assert.Equal(t, "MM-654321-0042", evt.AggregateID)
	assert.Equal(t, SourceStorefront, evt.Source)
	assert.Equal(t, "corr-7", evt.CorrelationID)
	assert.Equal(t, "dev-1", evt.Metadata["device_id"])

	var data OrderPlacedData
	require.NoError(t, evt.UnmarshalData(&data))
	assert.Equal(t, "33.70", data.Total)
	assert.Equal(t, "1.70", data.Tax)
	assert.Equal(t, 2024, data.EstimatedDelivery.Year())
	assert.Equal(t, 13, data.EstimatedDelivery.Day())
	require.Len(t, data.Items, 1)
}

func TestPublishCartEvents(t *testing.T) {
	pub := &recordingPublisher{}
	p := NewProducer(pub, discardLogger())

	cart := &domain.Cart{DeviceID: "dev-1", Currency: "USD", Items: []domain.CartItem{{Price: 500, Quantity: 3}}}
	require.NoError(t, p.PublishCartUpdated(context.Background(), cart))
	require.NoError(t, p.PublishCartCleared(context.Background(), "dev-1"))

	assert.Equal(t, []string{TopicCartUpdated, TopicCartCleared}, pub.topics)

	var updated CartUpdatedData
	require.NoError(t, pub.events[0].UnmarshalData(&updated))
	assert.Equal(t, int64(1500), updated.TotalAmount)
	assert.Equal(t, 3, updated.ItemCount)
}

func TestPublish_WrapsPublisherError(t *testing.T) {
	p := NewProducer(&recordingPublisher{err: errors.New("broker down")}, discardLogger())

	err := p.PublishCartCleared(context.Background(), "dev-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), TopicCartCleared)
	assert.Contains(t, err.Error(), "broker down")
}

func TestDiscard(t *testing.T) {
	p := NewProducer(Discard{}, discardLogger())
	assert.NoError(t, p.PublishCartCleared(context.Background(), "dev-1"))
}
