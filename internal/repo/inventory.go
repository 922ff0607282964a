package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) ProductsByIDs(ctx context.Context, ids []string) ([]entities.Product, error) {
	query, args := r.qb.Select("id", "title", "price", "images", "stock").
		From("products").
		Where(sq.Eq{"id": ids}).
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	res := make([]entities.Product, 0, len(products))
	for _, p := range products {
		res = append(res, ProductToEntity(p))
	}
	return res, nil
}

// DecrementStock списывает остаток товара одним UPDATE, без чтения в память.
// Остаток не может уйти в минус: при нехватке возвращается ErrInsufficientStock.
func (r *postgresRepo) DecrementStock(ctx context.Context, productID string, qty int) error {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock - ?", qty)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": productID}).
		Where(sq.GtOrEq{"stock": qty}).
		MustSql()

	n, err := r.execAffected(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}
	if n == 1 {
		return nil
	}

	found, err := r.exists(ctx, "products", sq.Eq{"id": productID})
	if err != nil {
		return fmt.Errorf("failed to check product: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: %s", entities.ErrProductNotFound, productID)
	}
	return fmt.Errorf("%w: product %s", entities.ErrInsufficientStock, productID)
}

func (r *postgresRepo) DecrementSizeStock(ctx context.Context, productID, size string, qty int) error {
	query, args := r.qb.Update("size_stocks").
		Set("quantity", sq.Expr("quantity - ?", qty)).
		Where(sq.Eq{"product_id": productID, "size": size}).
		Where(sq.GtOrEq{"quantity": qty}).
		MustSql()

	n, err := r.execAffected(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to decrement size stock: %w", err)
	}
	if n == 1 {
		return nil
	}

	found, err := r.exists(ctx, "size_stocks", sq.Eq{"product_id": productID, "size": size})
	if err != nil {
		return fmt.Errorf("failed to check size stock: %w", err)
	}
	if !found {
		return entities.ErrSizeStockNotFound
	}
	return fmt.Errorf("%w: product %s size %s", entities.ErrInsufficientStock, productID, size)
}
