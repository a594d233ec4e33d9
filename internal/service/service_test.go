package service

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/mangomarket/internal/domain"
	"github.com/utafrali/mangomarket/internal/event"
	"github.com/utafrali/mangomarket/internal/provider"
	"github.com/utafrali/mangomarket/internal/provider/simulated"
	"github.com/utafrali/mangomarket/internal/repository/file"
	"github.com/utafrali/mangomarket/internal/repository/memory"
	pkgkafka "github.com/utafrali/mangomarket/pkg/kafka"
)

// --- Mocks ---

type mockCheckoutRepository struct {
	mock.Mock
}

func (m *mockCheckoutRepository) Get(ctx context.Context, deviceID string) (*domain.CheckoutState, error) {
	args := m.Called(ctx, deviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckoutState), args.Error(1)
}

func (m *mockCheckoutRepository) Save(ctx context.Context, deviceID string, state *domain.CheckoutState) error {
	args := m.Called(ctx, deviceID, state)
	return args.Error(0)
}

func (m *mockCheckoutRepository) Delete(ctx context.Context, deviceID string) error {
	args := m.Called(ctx, deviceID)
	return args.Error(0)
}

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Charge(ctx context.Context, input *provider.ChargeInput) (*provider.ChargeResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.ChargeResult), args.Error(1)
}

type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
	events []*pkgkafka.Event
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, evt *pkgkafka.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	p.events = append(p.events, evt)
	return nil
}

func (p *recordingPublisher) count(topic string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, t := range p.topics {
		if t == topic {
			n++
		}
	}
	return n
}

// --- Helpers ---

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

var fixedNow = time.Date(2026, time.March, 10, 14, 30, 5, 123_000_000, time.UTC)

type fixture struct {
	checkouts *file.CheckoutRepository
	carts     *CartService
	checkout  *CheckoutService
	catalog   *CatalogService
	events    *recordingPublisher
}

func newFixture(t *testing.T, payments provider.Provider) *fixture {
	t.Helper()
	store, err := file.NewStore(t.TempDir())
	require.NoError(t, err)

	logger := newTestLogger()
	events := &recordingPublisher{}
	producer := event.NewProducer(events, logger)
	products := memory.NewProductRepository()

	carts := NewCartService(file.NewCartRepository(store), products, producer, logger)
	checkouts := file.NewCheckoutRepository(store)
	if payments == nil {
		payments = simulated.NewProvider(0, 0)
	}

	return &fixture{
		checkouts: checkouts,
		carts:     carts,
		checkout: NewCheckoutService(checkouts, carts, payments, producer, logger,
			WithClock(func() time.Time { return fixedNow }),
			WithOrderNumberSource(func() int { return 42 }),
		),
		catalog: NewCatalogService(products, logger),
		events:  events,
	}
}

func sampleAddress() domain.Address {
	return domain.Address{
		FullName:     "Ada Lovelace",
		AddressLine1: "12 Orchard Lane",
		City:         "Miami",
		State:        "FL",
		PostalCode:   "33101",
		Country:      "US",
		Phone:        "(305) 555-0100",
	}
}

func validCard() domain.PaymentDetails {
	return domain.PaymentDetails{
		CardNumber:     "4242 4242 4242 4242",
		CardholderName: "Ada Lovelace",
		ExpiryDate:     "12/29",
		CVV:            "123",
	}
}

// readyToPlace fills a cart and a complete checkout draft for deviceID.
func (f *fixture) readyToPlace(t *testing.T, deviceID string) {
	t.Helper()
	ctx := context.Background()
	_, err := f.carts.AddItem(ctx, deviceID, AddItemInput{ProductID: "alphonso-premium", Quantity: 2})
	require.NoError(t, err)
	_, err = f.checkout.SetShippingAddress(ctx, deviceID, sampleAddress())
	require.NoError(t, err)
	_, err = f.checkout.SetPaymentDetails(ctx, deviceID, validCard())
	require.NoError(t, err)
}
