package entities

import (
	"fmt"
	"time"
)

const (
	EventCheckoutCompleted      = "checkout.session.completed"
	EventAsyncPaymentSucceeded  = "checkout.session.async_payment_succeeded"
	EventPaymentIntentSucceeded = "payment_intent.succeeded"
	EventPaymentIntentFailed    = "payment_intent.payment_failed"
)

const (
	MetadataOrderID    = "orderId"
	MetadataCustomerID = "userId"
	MetadataType       = "type"

	MetadataTypePremium = "premium"
)

const (
	PaymentStatusPaid   = "paid"
	PaymentStatusUnpaid = "unpaid"
)

// PaymentEvent событие платежного провайдера. Разбирается через type switch:
// CheckoutCompleted, PaymentIntentEvent или UnhandledEvent.
type PaymentEvent interface {
	Header() EventHeader
}

type EventHeader struct {
	ID      string
	Type    string
	Created time.Time
}

func (h EventHeader) Header() EventHeader { return h }

type SessionMetadata struct {
	OrderID    string
	CustomerID string
	Kind       string
}

func (m SessionMetadata) Premium() bool {
	return m.Kind == MetadataTypePremium
}

func (m SessionMetadata) Map() map[string]string {
	res := make(map[string]string, 3)
	if m.OrderID != "" {
		res[MetadataOrderID] = m.OrderID
	}
	if m.CustomerID != "" {
		res[MetadataCustomerID] = m.CustomerID
	}
	if m.Kind != "" {
		res[MetadataType] = m.Kind
	}
	return res
}

func MetadataFromMap(m map[string]string) SessionMetadata {
	return SessionMetadata{
		OrderID:    m[MetadataOrderID],
		CustomerID: m[MetadataCustomerID],
		Kind:       m[MetadataType],
	}
}

type CheckoutCompleted struct {
	EventHeader
	SessionID       string
	PaymentIntentID string
	PaymentStatus   string
	Metadata        SessionMetadata
}

// Validate проверяет метаданные сессии до того, как с ними что-то делать.
func (e CheckoutCompleted) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("%w: missing event id", ErrInvalidEvent)
	}
	if e.Metadata.Premium() {
		if e.Metadata.CustomerID == "" {
			return fmt.Errorf("%w: premium session %s without customer", ErrInvalidEvent, e.SessionID)
		}
		return nil
	}
	if e.Metadata.OrderID == "" {
		return fmt.Errorf("%w: session %s without order reference", ErrInvalidEvent, e.SessionID)
	}
	if e.PaymentIntentID == "" && !e.AwaitingPayment() {
		return fmt.Errorf("%w: session %s without payment intent", ErrInvalidEvent, e.SessionID)
	}
	return nil
}

// AwaitingPayment true для асинхронных способов оплаты, деньги по которым еще не пришли.
func (e CheckoutCompleted) AwaitingPayment() bool {
	return e.PaymentStatus == PaymentStatusUnpaid
}

type PaymentIntentEvent struct {
	EventHeader
	PaymentIntentID string
	Status          string
}

type UnhandledEvent struct {
	EventHeader
}
