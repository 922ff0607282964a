package outbox

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/trm"
	"github.com/prometheus/client_golang/prometheus"
)

type Store interface {
	PendingOutbox(ctx context.Context, limit int) ([]entities.OutboxMessage, error)
	MarkOutboxSent(ctx context.Context, ids []int64) error
}

type Publisher interface {
	Publish(ctx context.Context, msgs []entities.OutboxMessage) error
}

var (
	published = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "outbox",
			Name:      "published_total",
			Help:      "Total number of outbox messages published to the broker",
		},
	)

	publishErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "outbox",
			Name:      "publish_errors_total",
			Help:      "Total number of failed outbox flushes",
		},
	)
)

func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(published, publishErrors)
}

// Relay переносит сообщения из таблицы outbox в брокер. Доставка at-least-once:
// если коммит после отправки не прошел, пачка уйдет повторно.
type Relay struct {
	logger    *slog.Logger
	txManager trm.Manager
	store     Store
	publisher Publisher
	interval  time.Duration
	batchSize int
}

func NewRelay(logger *slog.Logger, txManager trm.Manager, store Store, publisher Publisher, interval time.Duration, batchSize int) *Relay {
	return &Relay{
		logger:    logger.With(slog.String("service", "outbox")),
		txManager: txManager,
		store:     store,
		publisher: publisher,
		interval:  interval,
		batchSize: batchSize,
	}
}

func (r *Relay) Start(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		// выгребаем накопившееся пачками, пока не останется полная пачка
		for {
			n, err := r.Flush(ctx)
			if err != nil {
				publishErrors.Inc()
				r.logger.ErrorContext(ctx, "failed to flush outbox", slog.Any("error", err))
				break
			}
			if n < r.batchSize {
				break
			}
		}
	}
}

// Flush отправляет одну пачку и возвращает число отправленных сообщений.
func (r *Relay) Flush(ctx context.Context) (int, error) {
	var sent int
	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		msgs, err := r.store.PendingOutbox(ctx, r.batchSize)
		if err != nil {
			return err
		}
		if len(msgs) == 0 {
			return nil
		}

		if err := r.publisher.Publish(ctx, msgs); err != nil {
			return fmt.Errorf("failed to publish messages: %w", err)
		}

		ids := make([]int64, 0, len(msgs))
		for _, m := range msgs {
			ids = append(ids, m.ID)
		}
		if err := r.store.MarkOutboxSent(ctx, ids); err != nil {
			return err
		}

		sent = len(msgs)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if sent > 0 {
		published.Add(float64(sent))
		r.logger.DebugContext(ctx, "outbox flushed", slog.Int("messages", sent))
	}
	return sent, nil
}
