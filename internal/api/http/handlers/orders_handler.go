package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/moderation-service/internal/auth"
	"github.com/spec-kit/moderation-service/internal/service"
)

// OrdersHandler exposes the entrepreneur order listing.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orders *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orders}
}

// List handles GET /orders. The principal is taken from the auth context;
// an empty list answers 200 with an empty data array.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	orders, err := h.orders.ListForPrincipal(c.Context(), principal.Profile)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": orders})
}
