package service_test

import (
	"context"
	"database/sql"
	"errors"
	"maps"
	"sync"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/trm"
	"github.com/shopspring/decimal"
)

// memStore хранилище в памяти для тестов сверки. Транзакции выполняются строго
// по одной под мьютексом, при ошибке состояние откатывается к снимку.
type memStore struct {
	mu sync.Mutex

	orders    map[string]entities.Order
	products  map[string]entities.Product
	stock     map[string]int
	sizeStock map[string]int
	carts     map[string]int
	customers map[string]entities.Customer
	events    map[string]string
	outbox    []entities.OutboxMessage

	// сколько раз ClearCart должен упасть, прежде чем заработать
	clearCartFailures int
}

var errTransient = errors.New("connection reset")

func newMemStore() *memStore {
	return &memStore{
		orders:    make(map[string]entities.Order),
		products:  make(map[string]entities.Product),
		stock:     make(map[string]int),
		sizeStock: make(map[string]int),
		carts:     make(map[string]int),
		customers: make(map[string]entities.Customer),
		events:    make(map[string]string),
	}
}

type memTxKey struct{}

type snapshot struct {
	orders    map[string]entities.Order
	stock     map[string]int
	sizeStock map[string]int
	carts     map[string]int
	customers map[string]entities.Customer
	events    map[string]string
	outbox    []entities.OutboxMessage
}

func (s *memStore) snapshot() snapshot {
	return snapshot{
		orders:    maps.Clone(s.orders),
		stock:     maps.Clone(s.stock),
		sizeStock: maps.Clone(s.sizeStock),
		carts:     maps.Clone(s.carts),
		customers: maps.Clone(s.customers),
		events:    maps.Clone(s.events),
		outbox:    append([]entities.OutboxMessage(nil), s.outbox...),
	}
}

func (s *memStore) restore(snap snapshot) {
	s.orders = snap.orders
	s.stock = snap.stock
	s.sizeStock = snap.sizeStock
	s.carts = snap.carts
	s.customers = snap.customers
	s.events = snap.events
	s.outbox = snap.outbox
}

func (s *memStore) BeginTx(ctx context.Context, _ *sql.TxOptions) (context.Context, trm.Transaction, error) {
	return nil, nil, errors.New("not supported")
}

func (s *memStore) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	if ctx.Value(memTxKey{}) != nil {
		return callback(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	if err := callback(context.WithValue(ctx, memTxKey{}, true)); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func sizeKey(productID, size string) string {
	return productID + "/" + size
}

func (s *memStore) GetOrderByID(_ context.Context, orderID string) (entities.Order, error) {
	o, ok := s.orders[orderID]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return o, nil
}

func (s *memStore) SaveOrder(_ context.Context, o entities.Order) error {
	s.orders[o.ID] = o
	return nil
}

func (s *memStore) SaveItems(_ context.Context, orderID string, items []entities.OrderItem) error {
	o, ok := s.orders[orderID]
	if !ok {
		return entities.ErrOrderNotFound
	}
	o.Items = items
	s.orders[orderID] = o
	return nil
}

func (s *memStore) AttachSession(_ context.Context, orderID, sessionID string) error {
	o, ok := s.orders[orderID]
	if !ok {
		return entities.ErrOrderNotFound
	}
	o.SessionID = sessionID
	s.orders[orderID] = o
	return nil
}

func (s *memStore) GetOrderBySession(_ context.Context, customerID, sessionID string) (entities.Order, error) {
	for _, o := range s.orders {
		if o.CustomerID == customerID && o.SessionID == sessionID {
			return o, nil
		}
	}
	return entities.Order{}, entities.ErrOrderNotFound
}

func (s *memStore) CustomerOrders(_ context.Context, customerID string) ([]entities.Order, error) {
	var res []entities.Order
	for _, o := range s.orders {
		if o.CustomerID == customerID {
			res = append(res, o)
		}
	}
	return res, nil
}

func (s *memStore) RecentOrders(_ context.Context, limit int) ([]entities.Order, error) {
	res := make([]entities.Order, 0, limit)
	for _, o := range s.orders {
		if len(res) == limit {
			break
		}
		res = append(res, o)
	}
	return res, nil
}

func (s *memStore) CancelOrder(_ context.Context, orderID string) (bool, error) {
	o, ok := s.orders[orderID]
	if !ok || !o.Status.Cancellable() {
		return false, nil
	}
	o.Status = entities.StatusCancelled
	s.orders[orderID] = o
	return true, nil
}

func (s *memStore) MarkProcessing(_ context.Context, orderID, paymentID string) (bool, error) {
	o, ok := s.orders[orderID]
	if !ok || o.Status != entities.StatusPending || o.PaymentID != "" {
		return false, nil
	}
	o.Status = entities.StatusProcessing
	o.PaymentID = paymentID
	s.orders[orderID] = o
	return true, nil
}

func (s *memStore) ProductsByIDs(_ context.Context, ids []string) ([]entities.Product, error) {
	res := make([]entities.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			res = append(res, p)
		}
	}
	return res, nil
}

func (s *memStore) DecrementStock(_ context.Context, productID string, qty int) error {
	left, ok := s.stock[productID]
	if !ok {
		return entities.ErrProductNotFound
	}
	if left < qty {
		return entities.ErrInsufficientStock
	}
	s.stock[productID] = left - qty
	return nil
}

func (s *memStore) DecrementSizeStock(_ context.Context, productID, size string, qty int) error {
	key := sizeKey(productID, size)
	left, ok := s.sizeStock[key]
	if !ok {
		return entities.ErrSizeStockNotFound
	}
	if left < qty {
		return entities.ErrInsufficientStock
	}
	s.sizeStock[key] = left - qty
	return nil
}

func (s *memStore) GetCustomer(_ context.Context, customerID string) (entities.Customer, error) {
	c, ok := s.customers[customerID]
	if !ok {
		return entities.Customer{}, entities.ErrCustomerNotFound
	}
	return c, nil
}

func (s *memStore) GrantPremium(_ context.Context, customerID string) error {
	c, ok := s.customers[customerID]
	if !ok {
		return entities.ErrCustomerNotFound
	}
	c.HasPremium = true
	s.customers[customerID] = c
	return nil
}

func (s *memStore) ClearCart(_ context.Context, customerID string) (int64, error) {
	if s.clearCartFailures > 0 {
		s.clearCartFailures--
		return 0, errTransient
	}
	n := s.carts[customerID]
	delete(s.carts, customerID)
	return int64(n), nil
}

func (s *memStore) MarkEventProcessed(_ context.Context, eventID, eventType string) (bool, error) {
	if _, ok := s.events[eventID]; ok {
		return false, nil
	}
	s.events[eventID] = eventType
	return true, nil
}

func (s *memStore) EnqueueOutbox(_ context.Context, msg entities.OutboxMessage) error {
	s.outbox = append(s.outbox, msg)
	return nil
}

// Методы ниже для проверок в тестах, вне транзакций.

func (s *memStore) order(id string) entities.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders[id]
}

func (s *memStore) setPrice(productID string, price decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.products[productID]
	p.Price = price
	s.products[productID] = p
}

func (s *memStore) stockOf(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stock[productID]
}

func (s *memStore) sizeStockOf(productID, size string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sizeStock[sizeKey(productID, size)]
}

func (s *memStore) cartSize(customerID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.carts[customerID]
}

func (s *memStore) eventRecorded(eventID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.events[eventID]
	return ok
}

func (s *memStore) outboxMessages() []entities.OutboxMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.OutboxMessage(nil), s.outbox...)
}
