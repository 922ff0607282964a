package entities

import (
	"bytes"
	"encoding/gob"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusShipped    OrderStatus = "SHIPPED"
	StatusDelivered  OrderStatus = "DELIVERED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

// Cancellable сообщает, можно ли отменить заказ в текущем статусе.
func (s OrderStatus) Cancellable() bool {
	return s != StatusDelivered && s != StatusCancelled
}

type OrderItem struct {
	ID        string
	ProductID string
	Quantity  int
	// цена фиксируется в момент создания заказа и дальше не меняется
	UnitPrice decimal.Decimal
	Size      string
}

func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Order struct {
	ID            string
	CustomerID    string
	CustomerEmail string
	CustomerName  string
	Status        OrderStatus
	Total         decimal.Decimal
	SessionID     string
	PaymentID     string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Items []OrderItem
}

// Paid возвращает true, если платеж по заказу уже подтвержден.
func (o *Order) Paid() bool {
	return o.Status != StatusPending || o.PaymentID != ""
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(o); err != nil {
		return ErrInvalidOrder
	}
	return nil
}

// LineItem позиция, которую покупатель передает при оформлении заказа.
type LineItem struct {
	ProductID string
	Quantity  int
	Size      string
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
}
