package service

import (
	"context"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
)

type OrderRepo interface {
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error
	AttachSession(ctx context.Context, orderID, sessionID string) error

	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	GetOrderBySession(ctx context.Context, customerID, sessionID string) (entities.Order, error)
	CustomerOrders(ctx context.Context, customerID string) ([]entities.Order, error)
	RecentOrders(ctx context.Context, limit int) ([]entities.Order, error)

	// Условные обновления: false, если заказ уже не в подходящем статусе
	MarkProcessing(ctx context.Context, orderID, paymentID string) (bool, error)
	CancelOrder(ctx context.Context, orderID string) (bool, error)
}

type CatalogRepo interface {
	ProductsByIDs(ctx context.Context, ids []string) ([]entities.Product, error)
}

type InventoryRepo interface {
	DecrementStock(ctx context.Context, productID string, qty int) error
	DecrementSizeStock(ctx context.Context, productID, size string, qty int) error
}

type CustomerRepo interface {
	GetCustomer(ctx context.Context, customerID string) (entities.Customer, error)
	GrantPremium(ctx context.Context, customerID string) error
}

type CartRepo interface {
	ClearCart(ctx context.Context, customerID string) (int64, error)
}

type EventLedger interface {
	MarkEventProcessed(ctx context.Context, eventID, eventType string) (bool, error)
	EnqueueOutbox(ctx context.Context, msg entities.OutboxMessage) error
}

type CheckoutProvider interface {
	CreateCheckoutSession(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error)
}

type EventVerifier interface {
	ParseEvent(payload []byte, signature string) (entities.PaymentEvent, error)
}

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Delete(ctx context.Context, key string)
}
