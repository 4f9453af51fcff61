package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pet-adoption-service/internal/api/dto"
	"github.com/spec-kit/pet-adoption-service/internal/auth"
	"github.com/spec-kit/pet-adoption-service/internal/domain"
	"github.com/spec-kit/pet-adoption-service/internal/service"
	apperrors "github.com/spec-kit/pet-adoption-service/pkg/util"
)

// OrdersHandler manages store checkout endpoints.
type OrdersHandler struct {
	service *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService) *OrdersHandler {
	return &OrdersHandler{service: orderService}
}

// Checkout POST /orders/checkout.
func (h *OrdersHandler) Checkout(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	items := make([]service.CheckoutItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.CheckoutItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	order, err := h.service.Checkout(c.Context(), principal.User.ID, service.CheckoutInput{
		Items: items,
		ShippingAddress: domain.ShippingAddress{
			Name:    req.ShippingAddress.Name,
			Address: req.ShippingAddress.Address,
			Phone:   req.ShippingAddress.Phone,
		},
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": orderResponse(order)})
}

// ListMyOrders GET /orders.
func (h *OrdersHandler) ListMyOrders(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	orders, err := h.service.ListUserOrders(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, orderResponse(&orders[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

func orderResponse(order *domain.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}
	return dto.OrderResponse{
		ID:        order.ID,
		Items:     items,
		TotalCost: order.TotalCost,
		ShippingAddress: dto.ShippingAddressRequest{
			Name:    order.ShippingAddress.Name,
			Address: order.ShippingAddress.Address,
			Phone:   order.ShippingAddress.Phone,
		},
		PaymentMethod: order.PaymentMethod,
		Status:        order.Status,
		CreatedAt:     order.CreatedAt,
	}
}
