package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/trm"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"
	"github.com/google/uuid"
)

type Outcome string

const (
	OutcomeApplied        Outcome = "applied"
	OutcomePremiumGranted Outcome = "premium_granted"
	OutcomeDuplicate      Outcome = "duplicate"
	OutcomeIgnored        Outcome = "ignored"
)

type Result struct {
	Outcome Outcome
	EventID string
	OrderID string
}

// errAlreadyProcessed откатывает транзакцию, когда событие или заказ уже обработаны.
// Наружу не выходит: вызывающий получает OutcomeDuplicate.
var errAlreadyProcessed = errors.New("already processed")

// errPaidCancelled тот же повтор, но деньги по отмененному заказу списаны и их нужно вернуть вручную.
var errPaidCancelled = errors.New("paid order is cancelled")

// Ошибки, которые не исправятся повтором.
var permanentReconcileErrors = []error{
	entities.ErrInvalidEvent,
	entities.ErrOrderNotFound,
	entities.ErrCustomerNotFound,
	entities.ErrProductNotFound,
	entities.ErrInsufficientStock,
}

type ReconcilerDeps struct {
	TxManager trm.Manager
	Orders    OrderRepo
	Inventory InventoryRepo
	Customers CustomerRepo
	Carts     CartRepo
	Ledger    EventLedger
	Verifier  EventVerifier
	Cache     Cache
}

type reconciler struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	inventory InventoryRepo
	customers CustomerRepo
	carts     CartRepo
	ledger    EventLedger
	verifier  EventVerifier
	cache     Cache

	// пустой топик отключает запись в outbox
	topic string
	retry utils.RetryConfig
}

func NewReconciler(logger *slog.Logger, deps ReconcilerDeps, outboxTopic string) *reconciler {
	return &reconciler{
		logger:    logger.With(slog.String("service", "reconciler")),
		txManager: deps.TxManager,
		orders:    deps.Orders,
		inventory: deps.Inventory,
		customers: deps.Customers,
		carts:     deps.Carts,
		ledger:    deps.Ledger,
		verifier:  deps.Verifier,
		cache:     deps.Cache,
		topic:     outboxTopic,
		retry: utils.RetryConfig{
			MaxAttempts:  3,
			InitialDelay: 50 * time.Millisecond,
			MaxDelay:     time.Second,
			Multiplier:   2,
		},
	}
}

// HandleWebhook проверяет подпись сырого тела запроса и применяет событие.
func (r *reconciler) HandleWebhook(ctx context.Context, payload []byte, signature string) (Result, error) {
	event, err := r.verifier.ParseEvent(payload, signature)
	if err != nil {
		webhookEvents.WithLabelValues("unknown", "rejected").Inc()
		r.logger.WarnContext(ctx, "webhook rejected", slog.Any("error", err))
		return Result{}, err
	}
	return r.Reconcile(ctx, event)
}

// Reconcile применяет уже проверенное событие. Повторная доставка того же события
// ничего не меняет и возвращает OutcomeDuplicate.
func (r *reconciler) Reconcile(ctx context.Context, event entities.PaymentEvent) (Result, error) {
	start := time.Now()
	defer func() { reconcileDuration.Observe(time.Since(start).Seconds()) }()

	h := event.Header()
	log := r.logger.With(slog.String("event_id", h.ID), slog.String("event_type", h.Type))

	var (
		res Result
		err error
	)
	switch e := event.(type) {
	case entities.CheckoutCompleted:
		res, err = r.checkoutCompleted(ctx, log, e)
	case entities.PaymentIntentEvent:
		log.InfoContext(ctx, "payment intent event acknowledged",
			slog.String("payment_intent", e.PaymentIntentID), slog.String("status", e.Status))
		res = Result{Outcome: OutcomeIgnored, EventID: h.ID}
	default:
		log.DebugContext(ctx, "unhandled event type")
		res = Result{Outcome: OutcomeIgnored, EventID: h.ID}
	}

	if err != nil {
		webhookEvents.WithLabelValues(h.Type, "failed").Inc()
		log.ErrorContext(ctx, "failed to reconcile event", slog.Any("error", err))
		return Result{}, err
	}

	webhookEvents.WithLabelValues(h.Type, string(res.Outcome)).Inc()
	return res, nil
}

func (r *reconciler) checkoutCompleted(ctx context.Context, log *slog.Logger, e entities.CheckoutCompleted) (Result, error) {
	if err := e.Validate(); err != nil {
		return Result{}, err
	}
	if e.AwaitingPayment() {
		log.InfoContext(ctx, "session completed but payment pending", slog.String("session_id", e.SessionID))
		return Result{Outcome: OutcomeIgnored, EventID: e.ID, OrderID: e.Metadata.OrderID}, nil
	}
	if e.Metadata.Premium() {
		if _, err := uuid.Parse(e.Metadata.CustomerID); err != nil {
			return Result{}, fmt.Errorf("%w: malformed customer id %q", entities.ErrInvalidEvent, e.Metadata.CustomerID)
		}
	} else if _, err := uuid.Parse(e.Metadata.OrderID); err != nil {
		return Result{}, fmt.Errorf("%w: malformed order id %q", entities.ErrInvalidEvent, e.Metadata.OrderID)
	}

	var res Result
	err := utils.Retry(ctx, r.retry, func() error {
		var err error
		res, err = r.apply(ctx, log, e)
		return err
	}, permanentReconcileErrors...)
	if err != nil {
		return Result{}, err
	}

	switch res.Outcome {
	case OutcomeApplied:
		r.cache.Delete(ctx, res.OrderID)
		log.InfoContext(ctx, "order paid", slog.String("order_id", res.OrderID))
	case OutcomePremiumGranted:
		log.InfoContext(ctx, "premium granted", slog.String("customer_id", e.Metadata.CustomerID))
	case OutcomeDuplicate:
		log.InfoContext(ctx, "event already processed", slog.String("order_id", res.OrderID))
	}
	return res, nil
}

// apply выполняет все изменения одной транзакцией: либо заказ оплачен, остатки списаны,
// корзина очищена и событие записано в журнал, либо не изменилось ничего.
func (r *reconciler) apply(ctx context.Context, log *slog.Logger, e entities.CheckoutCompleted) (Result, error) {
	res := Result{EventID: e.ID, OrderID: e.Metadata.OrderID}

	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		fresh, err := r.ledger.MarkEventProcessed(ctx, e.ID, e.Type)
		if err != nil {
			return err
		}
		if !fresh {
			return errAlreadyProcessed
		}

		if e.Metadata.Premium() {
			if err := r.customers.GrantPremium(ctx, e.Metadata.CustomerID); err != nil {
				return err
			}
			res.Outcome = OutcomePremiumGranted
			return nil
		}

		order, err := r.orders.GetOrderByID(ctx, e.Metadata.OrderID)
		if err != nil {
			return err
		}
		if order.Status == entities.StatusCancelled {
			return errPaidCancelled
		}
		if order.Paid() {
			return errAlreadyProcessed
		}

		ok, err := r.orders.MarkProcessing(ctx, order.ID, e.PaymentIntentID)
		if err != nil {
			return err
		}
		if !ok {
			return errAlreadyProcessed
		}

		if err := r.decrementInventory(ctx, log, order.Items); err != nil {
			return err
		}

		cleared, err := r.carts.ClearCart(ctx, order.CustomerID)
		if err != nil {
			return err
		}
		log.DebugContext(ctx, "cart cleared", slog.String("customer_id", order.CustomerID), slog.Int64("items", cleared))

		if r.topic == "" {
			res.Outcome = OutcomeApplied
			return nil
		}
		msg, err := r.paidMessage(e, order)
		if err != nil {
			return err
		}
		if err := r.ledger.EnqueueOutbox(ctx, msg); err != nil {
			return err
		}

		res.Outcome = OutcomeApplied
		return nil
	})

	if errors.Is(err, errPaidCancelled) {
		log.WarnContext(ctx, "payment received for cancelled order, refund required",
			slog.String("order_id", e.Metadata.OrderID),
			slog.String("payment_intent", e.PaymentIntentID),
			slog.String("session_id", e.SessionID),
		)
		err = errAlreadyProcessed
	}
	if errors.Is(err, errAlreadyProcessed) {
		return Result{Outcome: OutcomeDuplicate, EventID: e.ID, OrderID: e.Metadata.OrderID}, nil
	}
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

func (r *reconciler) decrementInventory(ctx context.Context, log *slog.Logger, items []entities.OrderItem) error {
	for _, item := range items {
		if err := r.inventory.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			return err
		}
		if item.Size == "" {
			continue
		}

		err := r.inventory.DecrementSizeStock(ctx, item.ProductID, item.Size, item.Quantity)
		if errors.Is(err, entities.ErrSizeStockNotFound) {
			log.WarnContext(ctx, "size stock record missing, skipped",
				slog.String("product_id", item.ProductID), slog.String("size", item.Size))
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

type orderPaidMessage struct {
	EventID    string    `json:"event_id"`
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	PaymentID  string    `json:"payment_id"`
	SessionID  string    `json:"session_id"`
	Total      string    `json:"total"`
	PaidAt     time.Time `json:"paid_at"`
}

func (r *reconciler) paidMessage(e entities.CheckoutCompleted, order entities.Order) (entities.OutboxMessage, error) {
	paidAt := e.Created
	if paidAt.IsZero() {
		paidAt = time.Now().UTC()
	}

	payload, err := json.Marshal(orderPaidMessage{
		EventID:    e.ID,
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		PaymentID:  e.PaymentIntentID,
		SessionID:  e.SessionID,
		Total:      order.Total.StringFixed(2),
		PaidAt:     paidAt,
	})
	if err != nil {
		return entities.OutboxMessage{}, fmt.Errorf("failed to encode outbox payload: %w", err)
	}

	return entities.OutboxMessage{
		EventID: e.ID,
		Topic:   r.topic,
		Key:     order.ID,
		Payload: payload,
	}, nil
}
