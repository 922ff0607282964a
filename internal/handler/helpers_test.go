package handler_test

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/middleware"
	"github.com/go-chi/chi/v5"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// newRouter подставляет покупателя в контекст так же, как это делает middleware.Auth.
func newRouter(customerID string, init func(r chi.Router)) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if customerID != "" {
				req = req.WithContext(middleware.WithCustomerID(req.Context(), customerID))
			}
			next.ServeHTTP(w, req)
		})
	})
	init(r)
	return r
}
