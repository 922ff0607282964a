package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

var orderColumns = []string{
	"id", "customer_id", "customer_email", "customer_name", "status", "total",
	"stripe_session_id", "stripe_payment_id", "created_at", "updated_at",
}

var itemColumns = []string{"id", "order_id", "product_id", "quantity", "price", "size", "position"}

type Order struct {
	ID            string          `db:"id"`
	CustomerID    string          `db:"customer_id"`
	CustomerEmail string          `db:"customer_email"`
	CustomerName  sql.NullString  `db:"customer_name"`
	Status        string          `db:"status"`
	Total         decimal.Decimal `db:"total"`
	SessionID     sql.NullString  `db:"stripe_session_id"`
	PaymentID     sql.NullString  `db:"stripe_payment_id"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

type Item struct {
	ID        string          `db:"id"`
	OrderID   string          `db:"order_id"`
	ProductID string          `db:"product_id"`
	Quantity  int             `db:"quantity"`
	Price     decimal.Decimal `db:"price"`
	Size      sql.NullString  `db:"size"`
	Position  int             `db:"position"`
}

type Product struct {
	ID     string          `db:"id"`
	Title  string          `db:"title"`
	Price  decimal.Decimal `db:"price"`
	Images pq.StringArray  `db:"images"`
	Stock  int             `db:"stock"`
}

type Customer struct {
	ID         string         `db:"id"`
	Email      string         `db:"email"`
	FirstName  sql.NullString `db:"first_name"`
	LastName   sql.NullString `db:"last_name"`
	HasPremium bool           `db:"has_premium"`
}

type OutboxRecord struct {
	ID      int64  `db:"id"`
	EventID string `db:"event_id"`
	Topic   string `db:"topic"`
	Key     string `db:"key"`
	Payload []byte `db:"payload"`
}

func ItemToEntity(i Item) entities.OrderItem {
	return entities.OrderItem{
		ID:        i.ID,
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		UnitPrice: i.Price,
		Size:      nullStringToString(i.Size),
	}
}

func OrderToEntity(o Order, items []Item) entities.Order {
	order := entities.Order{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		CustomerEmail: o.CustomerEmail,
		CustomerName:  nullStringToString(o.CustomerName),
		Status:        entities.OrderStatus(o.Status),
		Total:         o.Total,
		SessionID:     nullStringToString(o.SessionID),
		PaymentID:     nullStringToString(o.PaymentID),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:     p.ID,
		Title:  p.Title,
		Price:  p.Price,
		Images: []string(p.Images),
		Stock:  p.Stock,
	}
}

func CustomerToEntity(c Customer) entities.Customer {
	return entities.Customer{
		ID:         c.ID,
		Email:      c.Email,
		FirstName:  nullStringToString(c.FirstName),
		LastName:   nullStringToString(c.LastName),
		HasPremium: c.HasPremium,
	}
}

func OutboxToEntity(r OutboxRecord) entities.OutboxMessage {
	return entities.OutboxMessage{
		ID:      r.ID,
		EventID: r.EventID,
		Topic:   r.Topic,
		Key:     r.Key,
		Payload: r.Payload,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
