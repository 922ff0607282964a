package repo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// ClearCart удаляет все позиции активной корзины покупателя. Если корзины нет, это не ошибка.
func (r *postgresRepo) ClearCart(ctx context.Context, customerID string) (int64, error) {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Expr("cart_id IN (SELECT id FROM carts WHERE customer_id = ?)", customerID)).
		MustSql()

	n, err := r.execAffected(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to clear cart: %w", err)
	}
	return n, nil
}
