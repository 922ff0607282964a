package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/service"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"
	"github.com/go-chi/chi/v5"
)

const (
	maxWebhookBody  = 64 << 10
	signatureHeader = "Stripe-Signature"
)

type WebhookReconciler interface {
	HandleWebhook(ctx context.Context, payload []byte, signature string) (service.Result, error)
}

type WebhookHandler struct {
	logger     *slog.Logger
	reconciler WebhookReconciler
}

func NewWebhookHandler(logger *slog.Logger, reconciler WebhookReconciler) *WebhookHandler {
	return &WebhookHandler{
		logger:     logger.With(slog.String("handler", "webhook")),
		reconciler: reconciler,
	}
}

// Init регистрирует вебхук. Авторизации нет, запрос проверяется по подписи.
func (h *WebhookHandler) Init(r chi.Router) {
	r.Post("/webhooks/stripe", h.Stripe)
}

// Stripe принимает события платежного провайдера.
// @Summary      Вебхук Stripe
// @Description  Проверяет подпись и применяет событие оплаты. Повторная доставка безопасна
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        Stripe-Signature  header    string  true  "Подпись события"
// @Success      200  {object}  WebhookResponse
// @Failure      400  {object}  utils.ErrorResponse "Неверная подпись или событие"
// @Failure      404  {object}  utils.ErrorResponse "Заказ или покупатель не найден"
// @Failure      409  {object}  utils.ErrorResponse "Недостаточно товара на складе"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /webhooks/stripe [post]
func (h *WebhookHandler) Stripe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	payload, err := utils.ReadRawBody(w, r, maxWebhookBody)
	if err != nil {
		h.fail(w, http.StatusBadRequest, "invalid payload")
		return
	}
	webhookPayloadSize.Observe(float64(len(payload)))

	res, err := h.reconciler.HandleWebhook(ctx, payload, r.Header.Get(signatureHeader))
	if err != nil {
		status, msg := webhookErrorStatus(err)
		if status == http.StatusInternalServerError {
			h.logger.ErrorContext(ctx, "failed to handle webhook", slog.Any("error", err))
		}
		h.fail(w, status, msg)
		return
	}

	h.logger.DebugContext(ctx, "webhook handled",
		slog.String("event_id", res.EventID),
		slog.String("outcome", string(res.Outcome)),
	)
	webhookRequests.WithLabelValues(strconv.Itoa(http.StatusOK)).Inc()
	utils.WriteJSON(w, WebhookResponse{Received: true}, http.StatusOK)
}

func (h *WebhookHandler) fail(w http.ResponseWriter, status int, msg string) {
	webhookRequests.WithLabelValues(strconv.Itoa(status)).Inc()
	utils.WriteError(w, msg, status)
}

// Ответ не 2xx заставляет провайдера повторить доставку позже.
func webhookErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, entities.ErrInvalidSignature):
		return http.StatusBadRequest, "invalid signature"
	case errors.Is(err, entities.ErrInvalidEvent):
		return http.StatusBadRequest, "invalid event"
	case errors.Is(err, entities.ErrOrderNotFound):
		return http.StatusNotFound, "order not found"
	case errors.Is(err, entities.ErrCustomerNotFound):
		return http.StatusNotFound, "customer not found"
	case errors.Is(err, entities.ErrInsufficientStock):
		return http.StatusConflict, "insufficient stock"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
