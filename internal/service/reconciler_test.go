package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/service"
	mocks "github.com/SergeyBogomolovv/storefront-checkout/internal/service/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testCustomer = "9b2f6c1e-4d3a-4f8b-a1c7-5e0d2b8f6a34"
	testTopic    = "orders.paid"
)

type fixture struct {
	store   *memStore
	orderID string
}

// newFixture заводит заказ в PENDING: две футболки размера M и кружка без размера.
func newFixture() fixture {
	store := newMemStore()
	orderID := uuid.NewString()

	store.customers[testCustomer] = entities.Customer{ID: testCustomer, Email: "buyer@example.com"}
	store.stock["shirt"] = 10
	store.stock["mug"] = 3
	store.sizeStock[sizeKey("shirt", "M")] = 4
	store.carts[testCustomer] = 2
	store.orders[orderID] = entities.Order{
		ID:         orderID,
		CustomerID: testCustomer,
		Status:     entities.StatusPending,
		Total:      decimal.RequireFromString("65.00"),
		Items: []entities.OrderItem{
			{ID: "i1", ProductID: "shirt", Quantity: 2, UnitPrice: decimal.RequireFromString("25.00"), Size: "M"},
			{ID: "i2", ProductID: "mug", Quantity: 1, UnitPrice: decimal.RequireFromString("15.00")},
		},
	}
	return fixture{store: store, orderID: orderID}
}

type paymentReconciler interface {
	Reconcile(ctx context.Context, event entities.PaymentEvent) (service.Result, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) (service.Result, error)
}

func newTestReconciler(t *testing.T, store *memStore, cache service.Cache, verifier service.EventVerifier, topic string) paymentReconciler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newLoggedReconciler(logger, store, cache, verifier, topic)
}

func newLoggedReconciler(logger *slog.Logger, store *memStore, cache service.Cache, verifier service.EventVerifier, topic string) paymentReconciler {
	return service.NewReconciler(logger, service.ReconcilerDeps{
		TxManager: store,
		Orders:    store,
		Inventory: store,
		Customers: store,
		Carts:     store,
		Ledger:    store,
		Verifier:  verifier,
		Cache:     cache,
	}, topic)
}

func completedEvent(eventID, orderID string) entities.CheckoutCompleted {
	return entities.CheckoutCompleted{
		EventHeader:     entities.EventHeader{ID: eventID, Type: entities.EventCheckoutCompleted, Created: time.Unix(1700000000, 0).UTC()},
		SessionID:       "cs_test_1",
		PaymentIntentID: "pi_test_1",
		PaymentStatus:   entities.PaymentStatusPaid,
		Metadata:        entities.SessionMetadata{OrderID: orderID, CustomerID: testCustomer},
	}
}

func TestReconciler_CheckoutCompleted(t *testing.T) {
	f := newFixture()
	cache := mocks.NewMockCache(t)
	cache.EXPECT().Delete(mock.Anything, f.orderID).Return().Once()

	r := newTestReconciler(t, f.store, cache, mocks.NewMockEventVerifier(t), testTopic)

	res, err := r.Reconcile(context.Background(), completedEvent("evt_1", f.orderID))
	require.NoError(t, err)
	assert.Equal(t, service.OutcomeApplied, res.Outcome)
	assert.Equal(t, f.orderID, res.OrderID)

	order := f.store.order(f.orderID)
	assert.Equal(t, entities.StatusProcessing, order.Status)
	assert.Equal(t, "pi_test_1", order.PaymentID)
	assert.Equal(t, 8, f.store.stockOf("shirt"))
	assert.Equal(t, 2, f.store.stockOf("mug"))
	assert.Equal(t, 2, f.store.sizeStockOf("shirt", "M"))
	assert.Zero(t, f.store.cartSize(testCustomer))
	assert.True(t, f.store.eventRecorded("evt_1"))

	msgs := f.store.outboxMessages()
	require.Len(t, msgs, 1)
	assert.Equal(t, testTopic, msgs[0].Topic)
	assert.Equal(t, f.orderID, msgs[0].Key)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(msgs[0].Payload, &payload))
	assert.Equal(t, "65.00", payload["total"])
	assert.Equal(t, "pi_test_1", payload["payment_id"])
}

func TestReconciler_Redelivery(t *testing.T) {
	testCases := []struct {
		name        string
		secondEvent string
	}{
		{name: "same event delivered twice", secondEvent: "evt_1"},
		{name: "different event for already paid order", secondEvent: "evt_2"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			cache := mocks.NewMockCache(t)
			cache.EXPECT().Delete(mock.Anything, f.orderID).Return().Once()

			r := newTestReconciler(t, f.store, cache, mocks.NewMockEventVerifier(t), testTopic)

			_, err := r.Reconcile(context.Background(), completedEvent("evt_1", f.orderID))
			require.NoError(t, err)

			res, err := r.Reconcile(context.Background(), completedEvent(tc.secondEvent, f.orderID))
			require.NoError(t, err)
			assert.Equal(t, service.OutcomeDuplicate, res.Outcome)

			assert.Equal(t, 8, f.store.stockOf("shirt"))
			assert.Equal(t, 2, f.store.sizeStockOf("shirt", "M"))
			assert.Len(t, f.store.outboxMessages(), 1)
		})
	}
}

func TestReconciler_ConcurrentDeliveries(t *testing.T) {
	f := newFixture()
	cache := mocks.NewMockCache(t)
	cache.EXPECT().Delete(mock.Anything, f.orderID).Return().Once()

	r := newTestReconciler(t, f.store, cache, mocks.NewMockEventVerifier(t), testTopic)

	const workers = 16
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		outcomes = make(map[service.Outcome]int)
	)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// половина воркеров получает то же событие, половина новое событие о той же оплате
			eventID := "evt_1"
			if i%2 == 1 {
				eventID = fmt.Sprintf("evt_%d", i)
			}
			res, err := r.Reconcile(context.Background(), completedEvent(eventID, f.orderID))
			assert.NoError(t, err)

			mu.Lock()
			outcomes[res.Outcome]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, outcomes[service.OutcomeApplied])
	assert.Equal(t, workers-1, outcomes[service.OutcomeDuplicate])
	assert.Equal(t, 8, f.store.stockOf("shirt"))
	assert.Equal(t, 2, f.store.stockOf("mug"))
	assert.Len(t, f.store.outboxMessages(), 1)
}

func TestReconciler_Failures(t *testing.T) {
	testCases := []struct {
		name    string
		prepare func(f *fixture)
		event   func(f fixture) entities.CheckoutCompleted
		wantErr error
	}{
		{
			name:    "insufficient stock",
			prepare: func(f *fixture) { f.store.stock["mug"] = 0 },
			event:   func(f fixture) entities.CheckoutCompleted { return completedEvent("evt_1", f.orderID) },
			wantErr: entities.ErrInsufficientStock,
		},
		{
			name:    "insufficient size stock",
			prepare: func(f *fixture) { f.store.sizeStock[sizeKey("shirt", "M")] = 1 },
			event:   func(f fixture) entities.CheckoutCompleted { return completedEvent("evt_1", f.orderID) },
			wantErr: entities.ErrInsufficientStock,
		},
		{
			name:    "order not found",
			prepare: func(f *fixture) {},
			event:   func(f fixture) entities.CheckoutCompleted { return completedEvent("evt_1", uuid.NewString()) },
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "missing order reference",
			prepare: func(f *fixture) {},
			event:   func(f fixture) entities.CheckoutCompleted { return completedEvent("evt_1", "") },
			wantErr: entities.ErrInvalidEvent,
		},
		{
			name:    "malformed order reference",
			prepare: func(f *fixture) {},
			event:   func(f fixture) entities.CheckoutCompleted { return completedEvent("evt_1", "not-a-uuid") },
			wantErr: entities.ErrInvalidEvent,
		},
		{
			name:    "missing payment intent",
			prepare: func(f *fixture) {},
			event: func(f fixture) entities.CheckoutCompleted {
				e := completedEvent("evt_1", f.orderID)
				e.PaymentIntentID = ""
				return e
			},
			wantErr: entities.ErrInvalidEvent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			tc.prepare(&f)
			stockBefore := f.store.stockOf("shirt")

			r := newTestReconciler(t, f.store, mocks.NewMockCache(t), mocks.NewMockEventVerifier(t), testTopic)

			_, err := r.Reconcile(context.Background(), tc.event(f))
			assert.ErrorIs(t, err, tc.wantErr)

			// транзакция откатилась целиком, событие можно доставить повторно
			assert.Equal(t, entities.StatusPending, f.store.order(f.orderID).Status)
			assert.Equal(t, stockBefore, f.store.stockOf("shirt"))
			assert.Equal(t, 2, f.store.cartSize(testCustomer))
			assert.False(t, f.store.eventRecorded("evt_1"))
			assert.Empty(t, f.store.outboxMessages())
		})
	}
}

func TestReconciler_TransientErrorRetried(t *testing.T) {
	f := newFixture()
	f.store.clearCartFailures = 1

	cache := mocks.NewMockCache(t)
	cache.EXPECT().Delete(mock.Anything, f.orderID).Return().Once()

	r := newTestReconciler(t, f.store, cache, mocks.NewMockEventVerifier(t), testTopic)

	res, err := r.Reconcile(context.Background(), completedEvent("evt_1", f.orderID))
	require.NoError(t, err)
	assert.Equal(t, service.OutcomeApplied, res.Outcome)

	// первая попытка откатилась, списание произошло ровно один раз
	assert.Equal(t, 8, f.store.stockOf("shirt"))
	assert.Equal(t, 2, f.store.sizeStockOf("shirt", "M"))
	assert.Zero(t, f.store.cartSize(testCustomer))
}

func TestReconciler_MissingSizeRecordSkipped(t *testing.T) {
	f := newFixture()
	delete(f.store.sizeStock, sizeKey("shirt", "M"))

	cache := mocks.NewMockCache(t)
	cache.EXPECT().Delete(mock.Anything, f.orderID).Return().Once()

	r := newTestReconciler(t, f.store, cache, mocks.NewMockEventVerifier(t), testTopic)

	res, err := r.Reconcile(context.Background(), completedEvent("evt_1", f.orderID))
	require.NoError(t, err)
	assert.Equal(t, service.OutcomeApplied, res.Outcome)
	assert.Equal(t, 8, f.store.stockOf("shirt"))
}

func TestReconciler_OutboxDisabled(t *testing.T) {
	f := newFixture()
	cache := mocks.NewMockCache(t)
	cache.EXPECT().Delete(mock.Anything, f.orderID).Return().Once()

	r := newTestReconciler(t, f.store, cache, mocks.NewMockEventVerifier(t), "")

	res, err := r.Reconcile(context.Background(), completedEvent("evt_1", f.orderID))
	require.NoError(t, err)
	assert.Equal(t, service.OutcomeApplied, res.Outcome)
	assert.Empty(t, f.store.outboxMessages())
}

func TestReconciler_IgnoredEvents(t *testing.T) {
	f := newFixture()

	unpaid := completedEvent("evt_async", f.orderID)
	unpaid.PaymentStatus = entities.PaymentStatusUnpaid
	unpaid.PaymentIntentID = ""

	testCases := []struct {
		name  string
		event entities.PaymentEvent
	}{
		{name: "session awaiting async payment", event: unpaid},
		{
			name: "payment intent succeeded",
			event: entities.PaymentIntentEvent{
				EventHeader:     entities.EventHeader{ID: "evt_pi", Type: entities.EventPaymentIntentSucceeded},
				PaymentIntentID: "pi_test_1",
				Status:          "succeeded",
			},
		},
		{
			name:  "unknown event type",
			event: entities.UnhandledEvent{EventHeader: entities.EventHeader{ID: "evt_x", Type: "customer.created"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestReconciler(t, f.store, mocks.NewMockCache(t), mocks.NewMockEventVerifier(t), testTopic)

			res, err := r.Reconcile(context.Background(), tc.event)
			require.NoError(t, err)
			assert.Equal(t, service.OutcomeIgnored, res.Outcome)
			assert.Equal(t, entities.StatusPending, f.store.order(f.orderID).Status)
			assert.Equal(t, 10, f.store.stockOf("shirt"))
		})
	}
}

func TestReconciler_Premium(t *testing.T) {
	premiumEvent := func(eventID, customerID string) entities.CheckoutCompleted {
		return entities.CheckoutCompleted{
			EventHeader:     entities.EventHeader{ID: eventID, Type: entities.EventCheckoutCompleted},
			SessionID:       "cs_premium",
			PaymentIntentID: "pi_premium",
			PaymentStatus:   entities.PaymentStatusPaid,
			Metadata:        entities.SessionMetadata{CustomerID: customerID, Kind: entities.MetadataTypePremium},
		}
	}

	t.Run("granted once", func(t *testing.T) {
		f := newFixture()
		r := newTestReconciler(t, f.store, mocks.NewMockCache(t), mocks.NewMockEventVerifier(t), testTopic)

		res, err := r.Reconcile(context.Background(), premiumEvent("evt_p", testCustomer))
		require.NoError(t, err)
		assert.Equal(t, service.OutcomePremiumGranted, res.Outcome)

		res, err = r.Reconcile(context.Background(), premiumEvent("evt_p", testCustomer))
		require.NoError(t, err)
		assert.Equal(t, service.OutcomeDuplicate, res.Outcome)

		f.store.mu.Lock()
		assert.True(t, f.store.customers[testCustomer].HasPremium)
		f.store.mu.Unlock()

		// заказы и склад премиум не трогает
		assert.Equal(t, entities.StatusPending, f.store.order(f.orderID).Status)
		assert.Equal(t, 10, f.store.stockOf("shirt"))
		assert.Equal(t, 2, f.store.cartSize(testCustomer))
	})

	t.Run("unknown customer", func(t *testing.T) {
		f := newFixture()
		r := newTestReconciler(t, f.store, mocks.NewMockCache(t), mocks.NewMockEventVerifier(t), testTopic)

		_, err := r.Reconcile(context.Background(), premiumEvent("evt_p", uuid.NewString()))
		assert.ErrorIs(t, err, entities.ErrCustomerNotFound)
		assert.False(t, f.store.eventRecorded("evt_p"))
	})

	t.Run("malformed customer id", func(t *testing.T) {
		f := newFixture()
		r := newTestReconciler(t, f.store, mocks.NewMockCache(t), mocks.NewMockEventVerifier(t), testTopic)

		_, err := r.Reconcile(context.Background(), premiumEvent("evt_p", "ghost"))
		assert.ErrorIs(t, err, entities.ErrInvalidEvent)
		assert.False(t, f.store.eventRecorded("evt_p"))
	})

	t.Run("premium without customer", func(t *testing.T) {
		f := newFixture()
		r := newTestReconciler(t, f.store, mocks.NewMockCache(t), mocks.NewMockEventVerifier(t), testTopic)

		_, err := r.Reconcile(context.Background(), premiumEvent("evt_p", ""))
		assert.ErrorIs(t, err, entities.ErrInvalidEvent)
	})
}

func TestReconciler_HandleWebhook(t *testing.T) {
	t.Run("invalid signature", func(t *testing.T) {
		f := newFixture()
		verifier := mocks.NewMockEventVerifier(t)
		verifier.EXPECT().ParseEvent([]byte("{}"), "bad").Return(nil, entities.ErrInvalidSignature).Once()

		r := newTestReconciler(t, f.store, mocks.NewMockCache(t), verifier, testTopic)

		_, err := r.HandleWebhook(context.Background(), []byte("{}"), "bad")
		assert.ErrorIs(t, err, entities.ErrInvalidSignature)
		assert.Equal(t, entities.StatusPending, f.store.order(f.orderID).Status)
	})

	t.Run("verified event applied", func(t *testing.T) {
		f := newFixture()
		verifier := mocks.NewMockEventVerifier(t)
		verifier.EXPECT().ParseEvent([]byte("payload"), "sig").Return(completedEvent("evt_1", f.orderID), nil).Once()

		cache := mocks.NewMockCache(t)
		cache.EXPECT().Delete(mock.Anything, f.orderID).Return().Once()

		r := newTestReconciler(t, f.store, cache, verifier, testTopic)

		res, err := r.HandleWebhook(context.Background(), []byte("payload"), "sig")
		require.NoError(t, err)
		assert.Equal(t, service.OutcomeApplied, res.Outcome)
	})
}

func TestReconciler_PaymentForCancelledOrder(t *testing.T) {
	f := newFixture()
	order := f.store.orders[f.orderID]
	order.Status = entities.StatusCancelled
	f.store.orders[f.orderID] = order

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	r := newLoggedReconciler(logger, f.store, mocks.NewMockCache(t), mocks.NewMockEventVerifier(t), testTopic)

	res, err := r.Reconcile(context.Background(), completedEvent("evt_1", f.orderID))
	require.NoError(t, err)
	assert.Equal(t, service.OutcomeDuplicate, res.Outcome)

	assert.Equal(t, entities.StatusCancelled, f.store.order(f.orderID).Status)
	assert.Equal(t, 10, f.store.stockOf("shirt"))
	assert.Empty(t, f.store.outboxMessages())

	var warning map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &record))
		if record["level"] == "WARN" {
			warning = record
		}
	}
	require.NotNil(t, warning, "refund warning was not logged")
	assert.Equal(t, f.orderID, warning["order_id"])
	assert.Equal(t, "pi_test_1", warning["payment_intent"])
}
