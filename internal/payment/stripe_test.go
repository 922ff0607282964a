package payment

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/webhook"
)

const testWebhookSecret = "whsec_test_secret"

func newTestGateway(t *testing.T, apiURL string) *stripeGateway {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := Config{
		SecretKey:     "sk_test_123",
		WebhookSecret: testWebhookSecret,
		Currency:      "usd",
		Timeout:       time.Second,
		Tolerance:     5 * time.Minute,
	}

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(apiURL),
		HTTPClient:        &http.Client{Timeout: time.Second},
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return newStripeGateway(logger, cfg, &stripe.Backends{API: backend, Connect: backend, Uploads: backend})
}

func signedPayload(t *testing.T, event map[string]any, ts time.Time) ([]byte, string) {
	t.Helper()
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    testWebhookSecret,
		Timestamp: ts,
	})
	return signed.Payload, signed.Header
}

func checkoutEvent(paymentStatus string) map[string]any {
	return map[string]any{
		"id":      "evt_1",
		"object":  "event",
		"type":    "checkout.session.completed",
		"created": 1700000000,
		"data": map[string]any{
			"object": map[string]any{
				"id":             "cs_test_1",
				"object":         "checkout.session",
				"payment_status": paymentStatus,
				"payment_intent": "pi_test_1",
				"metadata": map[string]string{
					"orderId": "0d6c2f3e-6f54-4a43-9b8f-3f2b7f0f8a11",
					"userId":  "c1",
				},
			},
		},
	}
}

func TestStripeGateway_ParseEvent(t *testing.T) {
	g := newTestGateway(t, "http://127.0.0.1:0")

	t.Run("checkout session completed", func(t *testing.T) {
		payload, header := signedPayload(t, checkoutEvent("paid"), time.Now())

		event, err := g.ParseEvent(payload, header)
		require.NoError(t, err)

		completed, ok := event.(entities.CheckoutCompleted)
		require.True(t, ok, "unexpected event %T", event)
		assert.Equal(t, "evt_1", completed.ID)
		assert.Equal(t, entities.EventCheckoutCompleted, completed.Type)
		assert.Equal(t, "cs_test_1", completed.SessionID)
		assert.Equal(t, "pi_test_1", completed.PaymentIntentID)
		assert.Equal(t, entities.PaymentStatusPaid, completed.PaymentStatus)
		assert.Equal(t, "0d6c2f3e-6f54-4a43-9b8f-3f2b7f0f8a11", completed.Metadata.OrderID)
		assert.Equal(t, "c1", completed.Metadata.CustomerID)
		assert.False(t, completed.Metadata.Premium())
		assert.NoError(t, completed.Validate())
	})

	t.Run("payment intent event", func(t *testing.T) {
		payload, header := signedPayload(t, map[string]any{
			"id":   "evt_2",
			"type": "payment_intent.payment_failed",
			"data": map[string]any{"object": map[string]any{"id": "pi_test_2", "object": "payment_intent", "status": "requires_payment_method"}},
		}, time.Now())

		event, err := g.ParseEvent(payload, header)
		require.NoError(t, err)

		pi, ok := event.(entities.PaymentIntentEvent)
		require.True(t, ok, "unexpected event %T", event)
		assert.Equal(t, "pi_test_2", pi.PaymentIntentID)
		assert.Equal(t, "requires_payment_method", pi.Status)
	})

	t.Run("unhandled event", func(t *testing.T) {
		payload, header := signedPayload(t, map[string]any{
			"id":   "evt_3",
			"type": "customer.created",
			"data": map[string]any{"object": map[string]any{"id": "cus_1"}},
		}, time.Now())

		event, err := g.ParseEvent(payload, header)
		require.NoError(t, err)
		assert.IsType(t, entities.UnhandledEvent{}, event)
		assert.Equal(t, "evt_3", event.Header().ID)
	})

	testCases := []struct {
		name    string
		payload func() ([]byte, string)
		wantErr error
	}{
		{
			name: "tampered payload",
			payload: func() ([]byte, string) {
				payload, header := signedPayload(t, checkoutEvent("paid"), time.Now())
				return append(payload, ' '), header
			},
			wantErr: entities.ErrInvalidSignature,
		},
		{
			name: "missing signature",
			payload: func() ([]byte, string) {
				payload, _ := signedPayload(t, checkoutEvent("paid"), time.Now())
				return payload, ""
			},
			wantErr: entities.ErrInvalidSignature,
		},
		{
			name: "expired signature",
			payload: func() ([]byte, string) {
				return signedPayload(t, checkoutEvent("paid"), time.Now().Add(-time.Hour))
			},
			wantErr: entities.ErrInvalidSignature,
		},
		{
			name: "malformed session object",
			payload: func() ([]byte, string) {
				return signedPayload(t, map[string]any{
					"id":   "evt_4",
					"type": "checkout.session.completed",
					"data": map[string]any{"object": map[string]any{"id": 42}},
				}, time.Now())
			},
			wantErr: entities.ErrInvalidEvent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			payload, header := tc.payload()
			_, err := g.ParseEvent(payload, header)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestStripeGateway_CreateCheckoutSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		require.NoError(t, r.ParseForm())

		assert.Equal(t, "payment", r.PostForm.Get("mode"))
		assert.Equal(t, "buyer@example.com", r.PostForm.Get("customer_email"))
		assert.Equal(t, "order-1", r.PostForm.Get("metadata[orderId]"))
		assert.Equal(t, "c1", r.PostForm.Get("metadata[userId]"))
		assert.Equal(t, "order-1", r.PostForm.Get("payment_intent_data[metadata][orderId]"))
		assert.Equal(t, "usd", r.PostForm.Get("line_items[0][price_data][currency]"))
		assert.Equal(t, "1999", r.PostForm.Get("line_items[0][price_data][unit_amount]"))
		assert.Equal(t, "Shirt", r.PostForm.Get("line_items[0][price_data][product_data][name]"))
		assert.Equal(t, "2", r.PostForm.Get("line_items[0][quantity]"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cs_test_1","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_1"}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)

	session, err := g.CreateCheckoutSession(context.Background(), entities.CheckoutRequest{
		Lines:         []entities.CheckoutLine{{Name: "Shirt", UnitAmount: 1999, Quantity: 2}},
		CustomerEmail: "buyer@example.com",
		SuccessURL:    "https://shop.test/success",
		CancelURL:     "https://shop.test/cart",
		Metadata:      entities.SessionMetadata{OrderID: "order-1", CustomerID: "c1"},
	})
	require.NoError(t, err)
	assert.Equal(t, entities.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.com/c/pay/cs_test_1"}, session)
}

func TestStripeGateway_CreateCheckoutSession_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","code":"parameter_invalid_integer","message":"Invalid integer"}}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)

	_, err := g.CreateCheckoutSession(context.Background(), entities.CheckoutRequest{
		Lines: []entities.CheckoutLine{{Name: "Shirt", UnitAmount: -1, Quantity: 1}},
	})
	require.Error(t, err)

	var stripeErr *stripe.Error
	require.ErrorAs(t, err, &stripeErr)
	assert.Equal(t, http.StatusBadRequest, stripeErr.HTTPStatusCode)
}

func TestStripeGateway_SessionEvent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/checkout/sessions/cs_test_1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cs_test_1","object":"checkout.session","created":1700000000,"payment_status":"paid","payment_intent":"pi_test_1","metadata":{"orderId":"order-1","userId":"c1"}}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)

	event, err := g.SessionEvent(context.Background(), "cs_test_1")
	require.NoError(t, err)
	assert.Equal(t, "manual:cs_test_1", event.ID)
	assert.Equal(t, "pi_test_1", event.PaymentIntentID)
	assert.Equal(t, "order-1", event.Metadata.OrderID)
	assert.False(t, event.AwaitingPayment())
}
