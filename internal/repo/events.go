package repo

import (
	"context"
	"fmt"
)

// MarkEventProcessed записывает id события провайдера. Возвращает false, если событие уже было обработано.
func (r *postgresRepo) MarkEventProcessed(ctx context.Context, eventID, eventType string) (bool, error) {
	query, args := r.qb.Insert("processed_events").
		Columns("event_id", "event_type").
		Values(eventID, eventType).
		Suffix("ON CONFLICT (event_id) DO NOTHING").
		MustSql()

	n, err := r.execAffected(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to mark event processed: %w", err)
	}
	return n == 1, nil
}
