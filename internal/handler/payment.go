package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CheckoutService interface {
	CreateCheckoutSession(ctx context.Context, customerID string, items []entities.LineItem) (entities.CheckoutSession, error)
	CreatePremiumCheckout(ctx context.Context, customerID string) (entities.CheckoutSession, error)
}

type PaymentHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CheckoutService
}

func NewPaymentHandler(logger *slog.Logger, svc CheckoutService) *PaymentHandler {
	return &PaymentHandler{
		logger:   logger.With(slog.String("handler", "payment")),
		validate: validator.New(),
		svc:      svc,
	}
}

// Init регистрирует маршруты оплаты. Роутер должен требовать авторизацию.
func (h *PaymentHandler) Init(r chi.Router) {
	r.Post("/payment/create-checkout-session", h.CreateCheckoutSession)
	r.Post("/payment/premium-checkout", h.CreatePremiumCheckout)
}

// CreateCheckoutSession создает заказ и платежную сессию.
// @Summary      Создать платежную сессию
// @Description  Фиксирует цены, создает заказ в статусе PENDING и возвращает ссылку на оплату
// @Tags         payment
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      CreateCheckoutRequest  true  "Позиции корзины"
// @Success      200  {object}  CheckoutSessionResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Нет авторизации"
// @Failure      404  {object}  utils.ErrorResponse "Товар или покупатель не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /payment/create-checkout-session [post]
func (h *PaymentHandler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	customerID, ok := requireCustomer(w, r)
	if !ok {
		return
	}

	var req CreateCheckoutRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		h.respond(w, "order", http.StatusBadRequest, func() { utils.WriteError(w, "invalid request body", http.StatusBadRequest) })
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respond(w, "order", http.StatusBadRequest, func() { utils.WriteValidationError(w, err) })
		return
	}

	session, err := h.svc.CreateCheckoutSession(ctx, customerID, CheckoutItemsToEntity(req.Items))
	if err != nil {
		status, msg := checkoutErrorStatus(err)
		if status == http.StatusInternalServerError {
			h.logger.ErrorContext(ctx, "failed to create checkout session", slog.String("customer_id", customerID), slog.Any("error", err))
		}
		h.respond(w, "order", status, func() { utils.WriteError(w, msg, status) })
		return
	}

	h.respond(w, "order", http.StatusOK, func() { utils.WriteJSON(w, SessionEntityToJSON(session), http.StatusOK) })
}

// CreatePremiumCheckout создает сессию на покупку премиума.
// @Summary      Купить премиум
// @Description  Возвращает ссылку на оплату премиум доступа по фиксированной цене
// @Tags         payment
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  CheckoutSessionResponse
// @Failure      400  {object}  utils.ErrorResponse "Премиум уже куплен"
// @Failure      401  {object}  utils.ErrorResponse "Нет авторизации"
// @Failure      404  {object}  utils.ErrorResponse "Покупатель не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /payment/premium-checkout [post]
func (h *PaymentHandler) CreatePremiumCheckout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	customerID, ok := requireCustomer(w, r)
	if !ok {
		return
	}

	session, err := h.svc.CreatePremiumCheckout(ctx, customerID)
	if err != nil {
		status, msg := checkoutErrorStatus(err)
		if status == http.StatusInternalServerError {
			h.logger.ErrorContext(ctx, "failed to create premium checkout", slog.String("customer_id", customerID), slog.Any("error", err))
		}
		h.respond(w, "premium", status, func() { utils.WriteError(w, msg, status) })
		return
	}

	h.respond(w, "premium", http.StatusOK, func() { utils.WriteJSON(w, SessionEntityToJSON(session), http.StatusOK) })
}

func (h *PaymentHandler) respond(w http.ResponseWriter, kind string, status int, write func()) {
	checkoutRequests.WithLabelValues(kind, strconv.Itoa(status)).Inc()
	write()
}

func checkoutErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, entities.ErrInvalidOrder):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, entities.ErrAlreadyPremium):
		return http.StatusBadRequest, "customer already has premium"
	case errors.Is(err, entities.ErrCustomerNotFound):
		return http.StatusNotFound, "customer not found"
	case errors.Is(err, entities.ErrProductNotFound):
		return http.StatusNotFound, "product not found"
	case errors.Is(err, entities.ErrPaymentProvider):
		return http.StatusInternalServerError, "failed to create checkout session"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
