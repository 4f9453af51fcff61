package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/pet-adoption-service/internal/domain"
	"github.com/spec-kit/pet-adoption-service/internal/events"
	"github.com/spec-kit/pet-adoption-service/internal/repository"
	apperrors "github.com/spec-kit/pet-adoption-service/pkg/util"
)

// OrderService coordinates store checkout.
type OrderService struct {
	orders     repository.OrderRepository
	food       repository.FoodRepository
	dispatcher events.Dispatcher
}

// OrderDependencies bundles repositories for the order service.
type OrderDependencies struct {
	OrderRepo  repository.OrderRepository
	FoodRepo   repository.FoodRepository
	Dispatcher events.Dispatcher
}

// CheckoutItemInput is one cart line submitted at checkout.
type CheckoutItemInput struct {
	ProductID string
	Quantity  int
}

// CheckoutInput describes the checkout payload.
type CheckoutInput struct {
	Items           []CheckoutItemInput
	ShippingAddress domain.ShippingAddress
	PaymentMethod   string
}

// NewOrderService constructs the service.
func NewOrderService(deps OrderDependencies) *OrderService {
	return &OrderService{
		orders:     deps.OrderRepo,
		food:       deps.FoodRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Checkout places an order. Prices and the total are recomputed from the
// product catalog; the client never supplies money amounts.
func (s *OrderService) Checkout(ctx context.Context, userID string, input CheckoutInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperrors.NewValidationError("cart is empty", nil)
	}
	if strings.TrimSpace(input.ShippingAddress.Name) == "" ||
		strings.TrimSpace(input.ShippingAddress.Address) == "" ||
		strings.TrimSpace(input.ShippingAddress.Phone) == "" {
		return nil, apperrors.NewValidationError("shipping name, address and phone required", nil)
	}

	items := make([]domain.OrderItem, 0, len(input.Items))
	var total float64
	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, apperrors.NewValidationError("item quantity must be positive",
				map[string]any{"product_id": line.ProductID})
		}
		product, err := s.food.GetByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewNotFound("food product", map[string]any{"product_id": line.ProductID})
			}
			return nil, err
		}
		items = append(items, domain.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  line.Quantity,
		})
		total += product.Price * float64(line.Quantity)
	}
	total = math.Round(total*100) / 100

	paymentMethod := strings.TrimSpace(input.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = domain.PaymentMethodCOD
	}

	order := &domain.Order{
		UserID:          userID,
		Items:           items,
		TotalCost:       total,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   paymentMethod,
		Status:          domain.OrderStatusPending,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventOrderPlaced,
			SubjectID: order.ID,
			ActorID:   userID,
			Timestamp: time.Now(),
			Payload: events.OrderPlacedPayload{
				TotalCost: order.TotalCost,
				ItemCount: len(order.Items),
			},
		})
	}
	return order, nil
}

// ListUserOrders returns the user's order history, newest first.
func (s *OrderService) ListUserOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}
