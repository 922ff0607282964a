package entities

import "errors"

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidOrder        = errors.New("invalid order data")
	ErrOrderNotCancellable = errors.New("order cannot be cancelled")

	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrSizeStockNotFound = errors.New("size stock not found")

	ErrCustomerNotFound = errors.New("customer not found")
	ErrAlreadyPremium   = errors.New("customer already has premium")

	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrInvalidEvent     = errors.New("invalid webhook event")
	ErrPaymentProvider  = errors.New("payment provider error")
)
