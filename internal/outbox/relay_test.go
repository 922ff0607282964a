package outbox_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/outbox"
	mocks "github.com/SergeyBogomolovv/storefront-checkout/internal/outbox/mocks"
	txMocks "github.com/SergeyBogomolovv/storefront-checkout/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRelay_Flush(t *testing.T) {
	type MockBehavior func(store *mocks.MockStore, pub *mocks.MockPublisher)

	msgs := []entities.OutboxMessage{
		{ID: 1, EventID: "evt_1", Topic: "orders.paid", Key: "o1", Payload: []byte(`{}`)},
		{ID: 2, EventID: "evt_2", Topic: "orders.paid", Key: "o2", Payload: []byte(`{}`)},
	}
	brokerErr := errors.New("broker unavailable")

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantSent     int
		wantErr      error
	}{
		{
			name: "OK",
			mockBehavior: func(store *mocks.MockStore, pub *mocks.MockPublisher) {
				store.EXPECT().PendingOutbox(mock.Anything, 10).Return(msgs, nil).Once()
				pub.EXPECT().Publish(mock.Anything, msgs).Return(nil).Once()
				store.EXPECT().MarkOutboxSent(mock.Anything, []int64{1, 2}).Return(nil).Once()
			},
			wantSent: 2,
		},
		{
			name: "nothing to send",
			mockBehavior: func(store *mocks.MockStore, _ *mocks.MockPublisher) {
				store.EXPECT().PendingOutbox(mock.Anything, 10).Return(nil, nil).Once()
			},
			wantSent: 0,
		},
		{
			name: "publish fails, messages stay pending",
			mockBehavior: func(store *mocks.MockStore, pub *mocks.MockPublisher) {
				store.EXPECT().PendingOutbox(mock.Anything, 10).Return(msgs, nil).Once()
				pub.EXPECT().Publish(mock.Anything, msgs).Return(brokerErr).Once()
			},
			wantErr: brokerErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := mocks.NewMockStore(t)
			pub := mocks.NewMockPublisher(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					})

			tc.mockBehavior(store, pub)

			relay := outbox.NewRelay(logger, tx, store, pub, time.Second, 10)

			sent, err := relay.Flush(context.Background())
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantSent, sent)
		})
	}
}

func TestRelay_StartStopsOnCancel(t *testing.T) {
	store := mocks.NewMockStore(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
	store.EXPECT().PendingOutbox(mock.Anything, 10).Return(nil, nil).Maybe()

	relay := outbox.NewRelay(logger, tx, store, mocks.NewMockPublisher(t), 5*time.Millisecond, 10)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- relay.Start(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("relay did not stop after context cancellation")
	}
}
