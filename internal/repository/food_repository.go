package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/pet-adoption-service/internal/domain"
)

// FoodRepository encapsulates food product persistence.
type FoodRepository interface {
	Create(ctx context.Context, product *domain.FoodProduct) error
	GetByID(ctx context.Context, id string) (*domain.FoodProduct, error)
	List(ctx context.Context, category *domain.FoodCategory) ([]domain.FoodProduct, error)
}

type foodRepository struct {
	pool *pgxpool.Pool
}

// NewFoodRepository instantiates repository.
func NewFoodRepository(pool *pgxpool.Pool) FoodRepository {
	return &foodRepository{pool: pool}
}

const foodColumns = `id, name, category, price, description, image_url, created_at, updated_at`

func (r *foodRepository) Create(ctx context.Context, product *domain.FoodProduct) error {
	const query = `
        INSERT INTO food_products (name, category, price, description, image_url)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		product.Name,
		product.Category,
		product.Price,
		product.Description,
		product.ImageURL,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *foodRepository) GetByID(ctx context.Context, id string) (*domain.FoodProduct, error) {
	query := `SELECT ` + foodColumns + ` FROM food_products WHERE id=$1`
	var product domain.FoodProduct
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.Price,
		&product.Description,
		&product.ImageURL,
		&product.CreatedAt,
		&product.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *foodRepository) List(ctx context.Context, category *domain.FoodCategory) ([]domain.FoodProduct, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if category != nil {
		args = append(args, *category)
		clauses = append(clauses, fmt.Sprintf("category=$%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM food_products WHERE %s ORDER BY created_at DESC`,
		foodColumns, strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.FoodProduct
	for rows.Next() {
		var product domain.FoodProduct
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Category,
			&product.Price,
			&product.Description,
			&product.ImageURL,
			&product.CreatedAt,
			&product.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, product)
	}
	return result, rows.Err()
}
