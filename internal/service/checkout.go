package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/trm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CheckoutConfig struct {
	SuccessURL string
	CancelURL  string

	PremiumSuccessURL  string
	PremiumCancelURL   string
	PremiumPriceCents  int64
	PremiumName        string
	PremiumDescription string

	ProviderTimeout time.Duration
}

type checkoutService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	catalog   CatalogRepo
	customers CustomerRepo
	provider  CheckoutProvider
	cfg       CheckoutConfig

	now   func() time.Time
	newID func() string
}

func NewCheckoutService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	catalog CatalogRepo,
	customers CustomerRepo,
	provider CheckoutProvider,
	cfg CheckoutConfig,
) *checkoutService {
	return &checkoutService{
		logger:    logger.With(slog.String("service", "checkout")),
		txManager: txManager,
		orders:    orders,
		catalog:   catalog,
		customers: customers,
		provider:  provider,
		cfg:       cfg,
		now:       time.Now,
		newID:     func() string { return uuid.NewString() },
	}
}

// CreateCheckoutSession создает заказ в статусе PENDING с зафиксированными ценами
// и платежную сессию, которая ссылается на него через метаданные.
func (s *checkoutService) CreateCheckoutSession(ctx context.Context, customerID string, items []entities.LineItem) (entities.CheckoutSession, error) {
	if err := validateLineItems(items); err != nil {
		return entities.CheckoutSession{}, err
	}

	customer, err := s.customers.GetCustomer(ctx, customerID)
	if err != nil {
		return entities.CheckoutSession{}, err
	}

	products, err := s.loadProducts(ctx, items)
	if err != nil {
		return entities.CheckoutSession{}, err
	}

	order := s.buildOrder(customer, items, products)

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.orders.SaveOrder(ctx, order); err != nil {
			return err
		}
		return s.orders.SaveItems(ctx, order.ID, order.Items)
	})
	if err != nil {
		return entities.CheckoutSession{}, fmt.Errorf("failed to create order: %w", err)
	}

	req := entities.CheckoutRequest{
		Lines:         checkoutLines(order.Items, products),
		CustomerEmail: customer.Email,
		SuccessURL:    s.cfg.SuccessURL,
		CancelURL:     s.cfg.CancelURL,
		Metadata: entities.SessionMetadata{
			OrderID:    order.ID,
			CustomerID: customer.ID,
		},
	}

	session, err := s.createSession(ctx, req)
	if err != nil {
		// Заказ остается в PENDING без сессии, повторная попытка создаст новый заказ.
		s.logger.WarnContext(ctx, "checkout session not created, order left pending",
			slog.String("order_id", order.ID), slog.Any("error", err))
		checkoutSessions.WithLabelValues("order", "provider_error").Inc()
		return entities.CheckoutSession{}, err
	}

	if err := s.orders.AttachSession(ctx, order.ID, session.ID); err != nil {
		s.logger.ErrorContext(ctx, "failed to attach session to order",
			slog.String("order_id", order.ID), slog.String("session_id", session.ID), slog.Any("error", err))
		return entities.CheckoutSession{}, fmt.Errorf("failed to attach session: %w", err)
	}

	checkoutSessions.WithLabelValues("order", "created").Inc()
	s.logger.InfoContext(ctx, "checkout session created",
		slog.String("order_id", order.ID),
		slog.String("session_id", session.ID),
		slog.String("total", order.Total.StringFixed(2)),
	)
	return session, nil
}

// CreatePremiumCheckout создает сессию на покупку премиума. Заказ при этом не создается.
func (s *checkoutService) CreatePremiumCheckout(ctx context.Context, customerID string) (entities.CheckoutSession, error) {
	customer, err := s.customers.GetCustomer(ctx, customerID)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if customer.HasPremium {
		return entities.CheckoutSession{}, entities.ErrAlreadyPremium
	}

	session, err := s.createSession(ctx, entities.CheckoutRequest{
		Lines: []entities.CheckoutLine{{
			Name:        s.cfg.PremiumName,
			Description: s.cfg.PremiumDescription,
			UnitAmount:  s.cfg.PremiumPriceCents,
			Quantity:    1,
		}},
		CustomerEmail: customer.Email,
		SuccessURL:    s.cfg.PremiumSuccessURL,
		CancelURL:     s.cfg.PremiumCancelURL,
		Metadata: entities.SessionMetadata{
			CustomerID: customer.ID,
			Kind:       entities.MetadataTypePremium,
		},
	})
	if err != nil {
		checkoutSessions.WithLabelValues("premium", "provider_error").Inc()
		return entities.CheckoutSession{}, err
	}

	checkoutSessions.WithLabelValues("premium", "created").Inc()
	s.logger.InfoContext(ctx, "premium checkout session created",
		slog.String("customer_id", customer.ID), slog.String("session_id", session.ID))
	return session, nil
}

func (s *checkoutService) createSession(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
	if s.cfg.ProviderTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.ProviderTimeout)
		defer cancel()
	}

	session, err := s.provider.CreateCheckoutSession(ctx, req)
	if err != nil {
		return entities.CheckoutSession{}, fmt.Errorf("%w: %v", entities.ErrPaymentProvider, err)
	}
	return session, nil
}

func (s *checkoutService) loadProducts(ctx context.Context, items []entities.LineItem) (map[string]entities.Product, error) {
	ids := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, ok := seen[it.ProductID]; ok {
			continue
		}
		seen[it.ProductID] = struct{}{}
		ids = append(ids, it.ProductID)
	}

	list, err := s.catalog.ProductsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	products := make(map[string]entities.Product, len(list))
	for _, p := range list {
		products[p.ID] = p
	}
	for _, id := range ids {
		if _, ok := products[id]; !ok {
			return nil, fmt.Errorf("%w: %s", entities.ErrProductNotFound, id)
		}
	}
	return products, nil
}

func (s *checkoutService) buildOrder(customer entities.Customer, items []entities.LineItem, products map[string]entities.Product) entities.Order {
	now := s.now().UTC()
	order := entities.Order{
		ID:            s.newID(),
		CustomerID:    customer.ID,
		CustomerEmail: customer.Email,
		CustomerName:  customer.FullName(),
		Status:        entities.StatusPending,
		Total:         decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
		Items:         make([]entities.OrderItem, 0, len(items)),
	}

	for _, it := range items {
		item := entities.OrderItem{
			ID:        s.newID(),
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: products[it.ProductID].Price,
			Size:      it.Size,
		}
		order.Items = append(order.Items, item)
		order.Total = order.Total.Add(item.Subtotal())
	}
	return order
}

func checkoutLines(items []entities.OrderItem, products map[string]entities.Product) []entities.CheckoutLine {
	lines := make([]entities.CheckoutLine, 0, len(items))
	for _, it := range items {
		p := products[it.ProductID]
		line := entities.CheckoutLine{
			Name:       p.Title,
			UnitAmount: entities.MinorUnits(it.UnitPrice),
			Quantity:   int64(it.Quantity),
		}
		if len(p.Images) > 0 {
			line.Image = p.Images[0]
		}
		if it.Size != "" {
			line.Description = "Size: " + it.Size
		}
		lines = append(lines, line)
	}
	return lines
}

func validateLineItems(items []entities.LineItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: no items", entities.ErrInvalidOrder)
	}
	for i, it := range items {
		if it.ProductID == "" {
			return fmt.Errorf("%w: item %d without product", entities.ErrInvalidOrder, i)
		}
		if it.Quantity <= 0 {
			return fmt.Errorf("%w: item %d quantity must be positive", entities.ErrInvalidOrder, i)
		}
	}
	return nil
}
