package domain

import "time"

// OrderStatus enumerates fulfillment states.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// PaymentMethodCOD is the only supported payment method.
const PaymentMethodCOD = "Cash on Delivery"

// OrderItem is one cart line within an order.
type OrderItem struct {
	ProductID string
	Name      string
	Price     float64
	Quantity  int
}

// ShippingAddress captures delivery details for an order.
type ShippingAddress struct {
	Name    string
	Address string
	Phone   string
}

// Order is a placed store checkout.
type Order struct {
	ID              string
	UserID          string
	Items           []OrderItem
	TotalCost       float64
	ShippingAddress ShippingAddress
	PaymentMethod   string
	Status          OrderStatus
	CreatedAt       time.Time
}
