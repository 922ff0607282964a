package handler

import (
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
)

// CheckoutItem позиция корзины при оформлении заказа
type CheckoutItem struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1,max=100"`
	Size      string `json:"size,omitempty" validate:"omitempty,max=16"`
}

// CreateCheckoutRequest тело запроса на создание платежной сессии
type CreateCheckoutRequest struct {
	Items []CheckoutItem `json:"items" validate:"required,min=1,max=50,dive"`
}

// CheckoutSessionResponse ссылка на оплату
type CheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// WebhookResponse подтверждение получения события
type WebhookResponse struct {
	Received bool `json:"received"`
}

// Order заказ покупателя
type Order struct {
	ID        string      `json:"id"`
	Status    string      `json:"status"`
	Total     string      `json:"total"`
	SessionID string      `json:"sessionId,omitempty"`
	PaymentID string      `json:"paymentId,omitempty"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Items     []OrderItem `json:"items"`
}

// OrderItem позиция заказа с ценой на момент оформления
type OrderItem struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	Size      string `json:"size,omitempty"`
}

func CheckoutItemsToEntity(items []CheckoutItem) []entities.LineItem {
	res := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		res = append(res, entities.LineItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Size:      it.Size,
		})
	}
	return res
}

func SessionEntityToJSON(s entities.CheckoutSession) CheckoutSessionResponse {
	return CheckoutSessionResponse{SessionID: s.ID, URL: s.URL}
}

func OrderItemEntityToJSON(i entities.OrderItem) OrderItem {
	return OrderItem{
		ID:        i.ID,
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		Price:     i.UnitPrice.StringFixed(2),
		Size:      i.Size,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemEntityToJSON(it))
	}

	return Order{
		ID:        o.ID,
		Status:    string(o.Status),
		Total:     o.Total.StringFixed(2),
		SessionID: o.SessionID,
		PaymentID: o.PaymentID,
		Email:     o.CustomerEmail,
		Name:      o.CustomerName,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
		Items:     items,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	return res
}
