package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/trm"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"
)

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	cache     Cache
	retry     utils.RetryConfig
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, cache Cache) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
		retry: utils.RetryConfig{
			InitialDelay: 100 * time.Millisecond,
			MaxAttempts:  5,
			Multiplier:   2,
		},
	}
}

// GetOrder возвращает заказ покупателя. Чужой заказ неотличим от несуществующего.
func (s *orderService) GetOrder(ctx context.Context, customerID, orderID string) (entities.Order, error) {
	order, err := s.orderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.CustomerID != customerID {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, customerID string) ([]entities.Order, error) {
	var orders []entities.Order
	fn := func() error {
		var err error
		orders, err = s.repo.CustomerOrders(ctx, customerID)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrderBySession нужен странице успешной оплаты: фронтенд знает только id сессии.
func (s *orderService) GetOrderBySession(ctx context.Context, customerID, sessionID string) (entities.Order, error) {
	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderBySession(ctx, customerID, sessionID)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (s *orderService) CancelOrder(ctx context.Context, customerID, orderID string) (entities.Order, error) {
	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order.CustomerID != customerID {
			return entities.ErrOrderNotFound
		}
		if !order.Status.Cancellable() {
			return entities.ErrOrderNotCancellable
		}

		ok, err := s.repo.CancelOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if !ok {
			return entities.ErrOrderNotCancellable
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.Delete(ctx, orderID)
	order.Status = entities.StatusCancelled
	s.logger.InfoContext(ctx, "order cancelled", slog.String("order_id", orderID))
	return order, nil
}

// WarmUpCache загружает в кэш последние count заказов.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	var orders []entities.Order
	fn := func() error {
		var err error
		orders, err = s.repo.RecentOrders(ctx, count)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn); err != nil {
		return fmt.Errorf("failed to load recent orders: %w", err)
	}

	cached := 0
	for _, order := range orders {
		if !cacheable(order) {
			continue
		}
		data, err := order.Marshal()
		if err != nil {
			s.logger.WarnContext(ctx, "failed to marshal order", slog.String("order_id", order.ID), slog.Any("error", err))
			continue
		}
		s.cache.Set(ctx, order.ID, data)
		cached++
	}

	s.logger.InfoContext(ctx, "cache warmed up", slog.Int("count", cached))
	return nil
}

func (s *orderService) orderByID(ctx context.Context, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(ctx, orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.ErrorContext(ctx, "failed to unmarshal cached order", slog.String("order_id", orderID), slog.Any("error", err))
			return entities.Order{}, err
		}
		orderCacheLookups.WithLabelValues("hit").Inc()
		return order, nil
	}
	orderCacheLookups.WithLabelValues("miss").Inc()

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}
	if !cacheable(order) {
		return order, nil
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to marshal order", slog.String("order_id", orderID), slog.Any("error", err))
		return entities.Order{}, err
	}
	s.cache.Set(ctx, orderID, data)
	return order, nil
}

// PENDING не кэшируется: чтение, начатое до оплаты или отмены, записало бы
// в кэш устаревший снимок уже после инвалидации.
func cacheable(order entities.Order) bool {
	return order.Status != entities.StatusPending
}
