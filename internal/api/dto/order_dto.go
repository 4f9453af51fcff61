package dto

import (
	"time"

	"github.com/spec-kit/pet-adoption-service/internal/domain"
)

// CheckoutRequest payload.
type CheckoutRequest struct {
	Items           []CheckoutItemRequest  `json:"items"`
	ShippingAddress ShippingAddressRequest `json:"shipping_address"`
	PaymentMethod   string                 `json:"payment_method"`
}

// CheckoutItemRequest is one cart line.
type CheckoutItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// ShippingAddressRequest describes delivery details.
type ShippingAddressRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// OrderItemResponse is one order line.
type OrderItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// OrderResponse represents a placed order.
type OrderResponse struct {
	ID              string                 `json:"id"`
	Items           []OrderItemResponse    `json:"items"`
	TotalCost       float64                `json:"total_cost"`
	ShippingAddress ShippingAddressRequest `json:"shipping_address"`
	PaymentMethod   string                 `json:"payment_method"`
	Status          domain.OrderStatus     `json:"status"`
	CreatedAt       time.Time              `json:"created_at"`
}
