package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) GetCustomer(ctx context.Context, customerID string) (entities.Customer, error) {
	query, args := r.qb.Select("id", "email", "first_name", "last_name", "has_premium").
		From("customers").
		Where(sq.Eq{"id": customerID}).
		MustSql()

	var customer Customer
	err := r.getContext(ctx, &customer, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Customer{}, entities.ErrCustomerNotFound
	}
	if err != nil {
		return entities.Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}
	return CustomerToEntity(customer), nil
}

// GrantPremium идемпотентен: повторная установка флага ничего не меняет.
func (r *postgresRepo) GrantPremium(ctx context.Context, customerID string) error {
	query, args := r.qb.Update("customers").
		Set("has_premium", true).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": customerID}).
		MustSql()

	n, err := r.execAffected(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to grant premium: %w", err)
	}
	if n == 0 {
		return entities.ErrCustomerNotFound
	}
	return nil
}
