package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns("id", "customer_id", "customer_email", "customer_name", "status", "total", "created_at", "updated_at").
		Values(
			o.ID, o.CustomerID, o.CustomerEmail, nullString(o.CustomerName),
			string(o.Status), o.Total, o.CreatedAt, o.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").Columns(itemColumns...)
	for pos, it := range items {
		q = q.Values(it.ID, orderID, it.ProductID, it.Quantity, it.UnitPrice, nullString(it.Size), pos)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

// AttachSession привязывает id платежной сессии к заказу. Уже привязанная сессия не перезаписывается.
func (r *postgresRepo) AttachSession(ctx context.Context, orderID, sessionID string) error {
	query, args := r.qb.Update("orders").
		Set("stripe_session_id", sessionID).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": orderID, "stripe_session_id": nil}).
		MustSql()

	n, err := r.execAffected(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to attach session: %w", err)
	}
	if n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"id": orderID})
}

func (r *postgresRepo) GetOrderBySession(ctx context.Context, customerID, sessionID string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"stripe_session_id": sessionID, "customer_id": customerID})
}

func (r *postgresRepo) getOrder(ctx context.Context, where sq.Eq) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(where).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.itemsByOrders(ctx, []string{order.ID})
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items[order.ID]), nil
}

func (r *postgresRepo) CustomerOrders(ctx context.Context, customerID string) ([]entities.Order, error) {
	return r.listOrders(ctx, r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"customer_id": customerID}).
		OrderBy("created_at DESC"))
}

func (r *postgresRepo) RecentOrders(ctx context.Context, limit int) ([]entities.Order, error) {
	return r.listOrders(ctx, r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(limit)))
}

// PendingOrders заказы, для которых создана платежная сессия, но вебхук об оплате так и не пришел.
func (r *postgresRepo) PendingOrders(ctx context.Context, createdBefore time.Time, limit int) ([]entities.Order, error) {
	return r.listOrders(ctx, r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"status": string(entities.StatusPending)}).
		Where(sq.NotEq{"stripe_session_id": nil}).
		Where(sq.Lt{"created_at": createdBefore}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)))
}

func (r *postgresRepo) listOrders(ctx context.Context, qb sq.SelectBuilder) ([]entities.Order, error) {
	query, args := qb.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	items, err := r.itemsByOrders(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, items[order.ID]))
	}
	return result, nil
}

func (r *postgresRepo) itemsByOrders(ctx context.Context, orderIDs []string) (map[string][]Item, error) {
	query, args := r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "position").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}

	res := make(map[string][]Item, len(orderIDs))
	for _, item := range items {
		res[item.OrderID] = append(res[item.OrderID], item)
	}
	return res, nil
}

// MarkProcessing переводит заказ из PENDING в PROCESSING и записывает id платежа.
// Условие в WHERE делает переход атомарным: из двух конкурентных вызовов строку обновит только один,
// второй получит false.
func (r *postgresRepo) MarkProcessing(ctx context.Context, orderID, paymentID string) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(entities.StatusProcessing)).
		Set("stripe_payment_id", paymentID).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{
			"id":                orderID,
			"status":            string(entities.StatusPending),
			"stripe_payment_id": nil,
		}).
		MustSql()

	n, err := r.execAffected(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to mark order processing: %w", err)
	}
	return n == 1, nil
}

func (r *postgresRepo) CancelOrder(ctx context.Context, orderID string) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(entities.StatusCancelled)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": orderID}).
		Where(sq.NotEq{"status": []string{string(entities.StatusDelivered), string(entities.StatusCancelled)}}).
		MustSql()

	n, err := r.execAffected(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to cancel order: %w", err)
	}
	return n == 1, nil
}
