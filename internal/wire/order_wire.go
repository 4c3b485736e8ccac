package wire

import (
	"storefront/internal/adaptor"
	"storefront/pkg/middleware"
	"storefront/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	issuer *token.Issuer,
	log *zap.Logger,
) {
	// Checkout posts the order payload directly
	r.Post("/api/orders", orderHandler.CreateOrder)

	// Order history needs the bearer credential issued at login
	r.With(middleware.Auth(issuer, log)).Get("/api/orders", orderHandler.GetUserOrders)
}
