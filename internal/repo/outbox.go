package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) EnqueueOutbox(ctx context.Context, msg entities.OutboxMessage) error {
	query, args := r.qb.Insert("outbox").
		Columns("event_id", "topic", "key", "payload").
		Values(msg.EventID, msg.Topic, msg.Key, msg.Payload).
		Suffix("ON CONFLICT (event_id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to enqueue outbox message: %w", err)
	}
	return nil
}

// PendingOutbox блокирует выбранные строки до конца транзакции, поэтому несколько реплик
// не отправят одно сообщение параллельно.
func (r *postgresRepo) PendingOutbox(ctx context.Context, limit int) ([]entities.OutboxMessage, error) {
	query, args := r.qb.Select("id", "event_id", "topic", "key", "payload").
		From("outbox").
		Where(sq.Eq{"sent_at": nil}).
		OrderBy("id").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED").
		MustSql()

	var records []OutboxRecord
	if err := r.selectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select outbox: %w", err)
	}

	res := make([]entities.OutboxMessage, 0, len(records))
	for _, rec := range records {
		res = append(res, OutboxToEntity(rec))
	}
	return res, nil
}

func (r *postgresRepo) MarkOutboxSent(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query, args := r.qb.Update("outbox").
		Set("sent_at", sq.Expr("now()")).
		Where(sq.Eq{"id": ids}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark outbox sent: %w", err)
	}
	return nil
}
