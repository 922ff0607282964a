package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID     string
	Title  string
	Price  decimal.Decimal
	Images []string
	Stock  int
}

type Customer struct {
	ID         string
	Email      string
	FirstName  string
	LastName   string
	HasPremium bool
}

func (c Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// CheckoutLine строка заказа в платежной сессии, цена в минимальных единицах валюты.
type CheckoutLine struct {
	Name        string
	Description string
	Image       string
	UnitAmount  int64
	Quantity    int64
}

type CheckoutRequest struct {
	Lines         []CheckoutLine
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	Metadata      SessionMetadata
}

type CheckoutSession struct {
	ID  string
	URL string
}

// MinorUnits переводит сумму в центы с округлением.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// OutboxMessage событие, которое нужно доставить в брокер после коммита транзакции.
type OutboxMessage struct {
	ID      int64
	EventID string
	Topic   string
	Key     string
	Payload []byte
}
