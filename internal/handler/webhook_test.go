package handler_test

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/handler"
	mocks "github.com/SergeyBogomolovv/storefront-checkout/internal/handler/mocks"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWebhookHandler_Stripe(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)

	testCases := []struct {
		name         string
		body         []byte
		mockBehavior func(rec *mocks.MockWebhookReconciler)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "applied",
			body: payload,
			mockBehavior: func(rec *mocks.MockWebhookReconciler) {
				rec.EXPECT().HandleWebhook(mock.Anything, payload, "t=1,v1=abc").
					Return(service.Result{Outcome: service.OutcomeApplied, EventID: "evt_1"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"received":true}`,
		},
		{
			name: "duplicate is acknowledged",
			body: payload,
			mockBehavior: func(rec *mocks.MockWebhookReconciler) {
				rec.EXPECT().HandleWebhook(mock.Anything, payload, mock.Anything).
					Return(service.Result{Outcome: service.OutcomeDuplicate, EventID: "evt_1"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"received":true}`,
		},
		{
			name: "invalid signature",
			body: payload,
			mockBehavior: func(rec *mocks.MockWebhookReconciler) {
				rec.EXPECT().HandleWebhook(mock.Anything, payload, mock.Anything).
					Return(service.Result{}, fmt.Errorf("%w: no valid signature", entities.ErrInvalidSignature)).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid signature"`,
		},
		{
			name: "invalid event",
			body: payload,
			mockBehavior: func(rec *mocks.MockWebhookReconciler) {
				rec.EXPECT().HandleWebhook(mock.Anything, payload, mock.Anything).
					Return(service.Result{}, entities.ErrInvalidEvent).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid event"`,
		},
		{
			name: "order not found",
			body: payload,
			mockBehavior: func(rec *mocks.MockWebhookReconciler) {
				rec.EXPECT().HandleWebhook(mock.Anything, payload, mock.Anything).
					Return(service.Result{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name: "insufficient stock",
			body: payload,
			mockBehavior: func(rec *mocks.MockWebhookReconciler) {
				rec.EXPECT().HandleWebhook(mock.Anything, payload, mock.Anything).
					Return(service.Result{}, fmt.Errorf("%w: product p1", entities.ErrInsufficientStock)).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"insufficient stock"`,
		},
		{
			name: "internal error",
			body: payload,
			mockBehavior: func(rec *mocks.MockWebhookReconciler) {
				rec.EXPECT().HandleWebhook(mock.Anything, payload, mock.Anything).
					Return(service.Result{}, errors.New("db down")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
		{
			name:         "payload too large",
			body:         bytes.Repeat([]byte("a"), 64<<10+1),
			mockBehavior: func(rec *mocks.MockWebhookReconciler) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid payload"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := mocks.NewMockWebhookReconciler(t)
			tc.mockBehavior(rec)

			h := handler.NewWebhookHandler(discardLogger, rec)
			r := newRouter("", h.Init)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", bytes.NewReader(tc.body))
			req.Header.Set("Stripe-Signature", "t=1,v1=abc")
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}
