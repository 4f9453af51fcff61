package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/pet-adoption-service/internal/domain"
	apperrors "github.com/spec-kit/pet-adoption-service/pkg/util"
)

type fakeFoodRepo struct {
	products map[string]*domain.FoodProduct
}

func newFakeFoodRepo() *fakeFoodRepo {
	return &fakeFoodRepo{products: map[string]*domain.FoodProduct{}}
}

func (r *fakeFoodRepo) Create(_ context.Context, product *domain.FoodProduct) error {
	product.ID = uuid.NewString()
	product.CreatedAt = time.Now()
	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *fakeFoodRepo) GetByID(_ context.Context, id string) (*domain.FoodProduct, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *product
	return &copied, nil
}

func (r *fakeFoodRepo) List(_ context.Context, category *domain.FoodCategory) ([]domain.FoodProduct, error) {
	var result []domain.FoodProduct
	for _, product := range r.products {
		if category == nil || product.Category == *category {
			result = append(result, *product)
		}
	}
	return result, nil
}

type fakeOrderRepo struct {
	orders map[string]*domain.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*domain.Order{}}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *domain.Order) error {
	order.ID = uuid.NewString()
	order.CreatedAt = time.Now()
	copied := *order
	r.orders[order.ID] = &copied
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepo) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	var result []domain.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			result = append(result, *order)
		}
	}
	return result, nil
}

func newTestOrderService(t *testing.T) (*OrderService, map[string]string) {
	t.Helper()
	food := newFakeFoodRepo()
	ids := map[string]string{}
	for name, price := range map[string]float64{"kibble": 19.99, "treats": 4.5} {
		product := &domain.FoodProduct{Name: name, Category: domain.FoodCategoryDog, Price: price}
		if err := food.Create(context.Background(), product); err != nil {
			t.Fatalf("seed product: %v", err)
		}
		ids[name] = product.ID
	}
	svc := NewOrderService(OrderDependencies{
		OrderRepo: newFakeOrderRepo(),
		FoodRepo:  food,
	})
	return svc, ids
}

func validShipping() domain.ShippingAddress {
	return domain.ShippingAddress{Name: "Ana", Address: "12 Oak St", Phone: "555-0101"}
}

func TestCheckoutRecomputesTotalFromCatalog(t *testing.T) {
	svc, ids := newTestOrderService(t)

	order, err := svc.Checkout(context.Background(), "user-1", CheckoutInput{
		Items: []CheckoutItemInput{
			{ProductID: ids["kibble"], Quantity: 2},
			{ProductID: ids["treats"], Quantity: 3},
		},
		ShippingAddress: validShipping(),
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	// 2*19.99 + 3*4.50, rounded to cents.
	if order.TotalCost != 53.48 {
		t.Errorf("total = %v, want 53.48", order.TotalCost)
	}
	if order.PaymentMethod != domain.PaymentMethodCOD {
		t.Errorf("payment method = %s, want %s", order.PaymentMethod, domain.PaymentMethodCOD)
	}
	if order.Status != domain.OrderStatusPending {
		t.Errorf("status = %s, want %s", order.Status, domain.OrderStatusPending)
	}
	if len(order.Items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(order.Items))
	}
	for _, item := range order.Items {
		if item.Name == "" || item.Price <= 0 {
			t.Errorf("item %s missing catalog snapshot: %+v", item.ProductID, item)
		}
	}
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	svc, _ := newTestOrderService(t)

	_, err := svc.Checkout(context.Background(), "user-1", CheckoutInput{
		ShippingAddress: validShipping(),
	})
	if apperrors.ToDomainError(err).Code != "VALIDATION_FAILED" {
		t.Errorf("code = %s, want VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	}
}

func TestCheckoutRejectsMissingShipping(t *testing.T) {
	svc, ids := newTestOrderService(t)

	_, err := svc.Checkout(context.Background(), "user-1", CheckoutInput{
		Items: []CheckoutItemInput{{ProductID: ids["kibble"], Quantity: 1}},
	})
	if err == nil {
		t.Fatal("expected validation error for missing shipping address")
	}
}

func TestCheckoutRejectsNonPositiveQuantity(t *testing.T) {
	svc, ids := newTestOrderService(t)

	for _, quantity := range []int{0, -2} {
		_, err := svc.Checkout(context.Background(), "user-1", CheckoutInput{
			Items:           []CheckoutItemInput{{ProductID: ids["kibble"], Quantity: quantity}},
			ShippingAddress: validShipping(),
		})
		if err == nil {
			t.Errorf("quantity %d: expected validation error", quantity)
		}
	}
}

func TestCheckoutUnknownProduct(t *testing.T) {
	svc, _ := newTestOrderService(t)

	_, err := svc.Checkout(context.Background(), "user-1", CheckoutInput{
		Items:           []CheckoutItemInput{{ProductID: "missing", Quantity: 1}},
		ShippingAddress: validShipping(),
	})
	if apperrors.ToDomainError(err).Code != "NOT_FOUND" {
		t.Errorf("code = %s, want NOT_FOUND", apperrors.ToDomainError(err).Code)
	}
}
