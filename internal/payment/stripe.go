package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/client"
	"github.com/stripe/stripe-go/v80/webhook"
)

type Config struct {
	SecretKey     string
	WebhookSecret string
	Currency      string
	Timeout       time.Duration
	Tolerance     time.Duration
}

type stripeGateway struct {
	logger        *slog.Logger
	api           *client.API
	currency      string
	webhookSecret string
	tolerance     time.Duration
}

func NewStripeGateway(logger *slog.Logger, cfg Config) *stripeGateway {
	backends := stripe.NewBackends(&http.Client{Timeout: cfg.Timeout})
	return newStripeGateway(logger, cfg, backends)
}

func newStripeGateway(logger *slog.Logger, cfg Config, backends *stripe.Backends) *stripeGateway {
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = webhook.DefaultTolerance
	}
	return &stripeGateway{
		logger:        logger.With(slog.String("service", "stripe")),
		api:           client.New(cfg.SecretKey, backends),
		currency:      cfg.Currency,
		webhookSecret: cfg.WebhookSecret,
		tolerance:     cfg.Tolerance,
	}
}

func (g *stripeGateway) CreateCheckoutSession(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
	metadata := req.Metadata.Map()

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:    stripe.String(req.SuccessURL),
		CancelURL:     stripe.String(req.CancelURL),
		CustomerEmail: stripe.String(req.CustomerEmail),
		LineItems:     make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.Lines)),
		Metadata:      metadata,
		// метаданные дублируются в платеж, чтобы их было видно в payment_intent.* событиях
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: metadata,
		},
	}
	params.Context = ctx

	for _, line := range req.Lines {
		product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(line.Name),
		}
		if line.Description != "" {
			product.Description = stripe.String(line.Description)
		}
		if line.Image != "" {
			product.Images = stripe.StringSlice([]string{line.Image})
		}

		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(g.currency),
				ProductData: product,
				UnitAmount:  stripe.Int64(line.UnitAmount),
			},
			Quantity: stripe.Int64(line.Quantity),
		})
	}

	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			g.logger.ErrorContext(ctx, "stripe rejected checkout session",
				slog.String("code", string(stripeErr.Code)),
				slog.String("request_id", stripeErr.RequestID),
				slog.String("message", stripeErr.Msg),
			)
		}
		return entities.CheckoutSession{}, fmt.Errorf("failed to create stripe session: %w", err)
	}

	return entities.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

// ParseEvent проверяет подпись по сырому телу запроса и переводит событие Stripe
// во внутреннее представление.
func (g *stripeGateway) ParseEvent(payload []byte, signature string) (entities.PaymentEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		Tolerance:                g.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrInvalidSignature, err)
	}
	if event.Data == nil {
		return nil, fmt.Errorf("%w: event %s without data", entities.ErrInvalidEvent, event.ID)
	}

	header := entities.EventHeader{
		ID:      event.ID,
		Type:    string(event.Type),
		Created: time.Unix(event.Created, 0).UTC(),
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted, stripe.EventTypeCheckoutSessionAsyncPaymentSucceeded:
		var s stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
			return nil, fmt.Errorf("%w: %v", entities.ErrInvalidEvent, err)
		}
		return sessionEvent(header, &s), nil

	case stripe.EventTypePaymentIntentSucceeded, stripe.EventTypePaymentIntentPaymentFailed:
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return nil, fmt.Errorf("%w: %v", entities.ErrInvalidEvent, err)
		}
		return entities.PaymentIntentEvent{
			EventHeader:     header,
			PaymentIntentID: pi.ID,
			Status:          string(pi.Status),
		}, nil

	default:
		return entities.UnhandledEvent{EventHeader: header}, nil
	}
}

// SessionEvent запрашивает сессию у Stripe и собирает из нее событие для ручной сверки.
// Id события строится из id сессии, поэтому повторный запуск не применит оплату дважды.
func (g *stripeGateway) SessionEvent(ctx context.Context, sessionID string) (entities.CheckoutCompleted, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return entities.CheckoutCompleted{}, fmt.Errorf("failed to get stripe session: %w", err)
	}

	return sessionEvent(entities.EventHeader{
		ID:      "manual:" + s.ID,
		Type:    entities.EventCheckoutCompleted,
		Created: time.Unix(s.Created, 0).UTC(),
	}, s), nil
}

func sessionEvent(header entities.EventHeader, s *stripe.CheckoutSession) entities.CheckoutCompleted {
	e := entities.CheckoutCompleted{
		EventHeader:   header,
		SessionID:     s.ID,
		PaymentStatus: string(s.PaymentStatus),
		Metadata:      entities.MetadataFromMap(s.Metadata),
	}
	if s.PaymentIntent != nil {
		e.PaymentIntentID = s.PaymentIntent.ID
	}
	return e
}
