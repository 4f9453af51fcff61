package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/pet-adoption-service/internal/domain"
)

// OrderRepository encapsulates order persistence.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository instantiates repository.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

type orderItemRecord struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	items, err := marshalItems(order.Items)
	if err != nil {
		return err
	}
	const query = `
        INSERT INTO orders (user_id, items, total_cost, shipping_name, shipping_address, shipping_phone, payment_method, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		order.UserID,
		items,
		order.TotalCost,
		order.ShippingAddress.Name,
		order.ShippingAddress.Address,
		order.ShippingAddress.Phone,
		order.PaymentMethod,
		order.Status,
	).Scan(&order.ID, &order.CreatedAt)
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const query = `
        SELECT id, user_id, items, total_cost, shipping_name, shipping_address, shipping_phone, payment_method, status, created_at
        FROM orders WHERE id=$1`
	var order domain.Order
	var items []byte
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&items,
		&order.TotalCost,
		&order.ShippingAddress.Name,
		&order.ShippingAddress.Address,
		&order.ShippingAddress.Phone,
		&order.PaymentMethod,
		&order.Status,
		&order.CreatedAt,
	); err != nil {
		return nil, err
	}
	parsed, err := unmarshalItems(items)
	if err != nil {
		return nil, err
	}
	order.Items = parsed
	return &order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const query = `
        SELECT id, user_id, items, total_cost, shipping_name, shipping_address, shipping_phone, payment_method, status, created_at
        FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var order domain.Order
		var items []byte
		if err := rows.Scan(
			&order.ID,
			&order.UserID,
			&items,
			&order.TotalCost,
			&order.ShippingAddress.Name,
			&order.ShippingAddress.Address,
			&order.ShippingAddress.Phone,
			&order.PaymentMethod,
			&order.Status,
			&order.CreatedAt,
		); err != nil {
			return nil, err
		}
		parsed, err := unmarshalItems(items)
		if err != nil {
			return nil, err
		}
		order.Items = parsed
		result = append(result, order)
	}
	return result, rows.Err()
}

func marshalItems(items []domain.OrderItem) ([]byte, error) {
	records := make([]orderItemRecord, 0, len(items))
	for _, item := range items {
		records = append(records, orderItemRecord{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}
	return json.Marshal(records)
}

func unmarshalItems(raw []byte) ([]domain.OrderItem, error) {
	var records []orderItemRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	items := make([]domain.OrderItem, 0, len(records))
	for _, record := range records {
		items = append(items, domain.OrderItem{
			ProductID: record.ProductID,
			Name:      record.Name,
			Price:     record.Price,
			Quantity:  record.Quantity,
		})
	}
	return items, nil
}
