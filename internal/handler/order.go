package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/middleware"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	GetOrder(ctx context.Context, customerID, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, customerID string) ([]entities.Order, error)
	GetOrderBySession(ctx context.Context, customerID, sessionID string) (entities.Order, error)
	CancelOrder(ctx context.Context, customerID, orderID string) (entities.Order, error)
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewOrderHandler(logger *slog.Logger, svc OrderService) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "order")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Get("/orders", h.ListOrders)
	r.Get("/orders/session/{session_id}", h.GetOrderBySession)
	r.Get("/orders/{order_id}", h.GetOrder)
	r.Post("/orders/{order_id}/cancel", h.CancelOrder)
}

// ListOrders возвращает заказы покупателя.
// @Summary      Список заказов
// @Description  Возвращает заказы текущего покупателя, новые первыми
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   Order
// @Failure      401  {object}  utils.ErrorResponse "Нет авторизации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	customerID, ok := requireCustomer(w, r)
	if !ok {
		return
	}

	orders, err := h.svc.ListOrders(ctx, customerID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err), slog.String("customer_id", customerID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// GetOrder возвращает заказ по ID.
// @Summary      Получить заказ
// @Description  Возвращает заказ текущего покупателя по его идентификатору
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        order_id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	customerID, ok := requireCustomer(w, r)
	if !ok {
		return
	}

	orderID := chi.URLParam(r, "order_id")
	if err := h.validate.Var(orderID, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.GetOrder(ctx, customerID, orderID)
	h.writeOrder(w, r, order, err)
}

// GetOrderBySession возвращает заказ по id платежной сессии.
// @Summary      Заказ по платежной сессии
// @Description  Используется страницей успешной оплаты, которая знает только id сессии
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        session_id   path      string  true  "Идентификатор сессии Stripe"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/session/{session_id} [get]
func (h *OrderHandler) GetOrderBySession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	customerID, ok := requireCustomer(w, r)
	if !ok {
		return
	}

	sessionID := chi.URLParam(r, "session_id")
	if err := h.validate.Var(sessionID, "required,max=255"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.GetOrderBySession(ctx, customerID, sessionID)
	h.writeOrder(w, r, order, err)
}

// CancelOrder отменяет заказ.
// @Summary      Отменить заказ
// @Description  Доставленный или уже отмененный заказ отменить нельзя
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        order_id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Заказ нельзя отменить"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id}/cancel [post]
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	customerID, ok := requireCustomer(w, r)
	if !ok {
		return
	}

	orderID := chi.URLParam(r, "order_id")
	if err := h.validate.Var(orderID, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.CancelOrder(ctx, customerID, orderID)
	if errors.Is(err, entities.ErrOrderNotCancellable) {
		utils.WriteError(w, "order cannot be cancelled", http.StatusBadRequest)
		return
	}
	h.writeOrder(w, r, order, err)
}

func (h *OrderHandler) writeOrder(w http.ResponseWriter, r *http.Request, order entities.Order, err error) {
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to get order", slog.Any("error", err), slog.String("path", r.URL.Path))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func requireCustomer(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := middleware.CustomerID(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
	}
	return id, ok
}
