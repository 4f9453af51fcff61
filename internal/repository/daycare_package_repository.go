package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/pet-adoption-service/internal/domain"
)

// DaycarePackageRepository encapsulates daycare package persistence.
type DaycarePackageRepository interface {
	Create(ctx context.Context, pkg *domain.DaycarePackage) error
	GetByID(ctx context.Context, id string) (*domain.DaycarePackage, error)
	GetByName(ctx context.Context, name string) (*domain.DaycarePackage, error)
	ListActive(ctx context.Context) ([]domain.DaycarePackage, error)
}

type daycarePackageRepository struct {
	pool *pgxpool.Pool
}

// NewDaycarePackageRepository instantiates repository.
func NewDaycarePackageRepository(pool *pgxpool.Pool) DaycarePackageRepository {
	return &daycarePackageRepository{pool: pool}
}

func (r *daycarePackageRepository) Create(ctx context.Context, pkg *domain.DaycarePackage) error {
	const query = `
        INSERT INTO daycare_packages (name, description, price, duration, features, is_active)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		pkg.Name,
		pkg.Description,
		pkg.Price,
		pkg.Duration,
		pkg.Features,
		pkg.IsActive,
	).Scan(&pkg.ID, &pkg.CreatedAt, &pkg.UpdatedAt)
}

func (r *daycarePackageRepository) GetByID(ctx context.Context, id string) (*domain.DaycarePackage, error) {
	const query = `
        SELECT id, name, description, price, duration, features, is_active, created_at, updated_at
        FROM daycare_packages WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *daycarePackageRepository) GetByName(ctx context.Context, name string) (*domain.DaycarePackage, error) {
	const query = `
        SELECT id, name, description, price, duration, features, is_active, created_at, updated_at
        FROM daycare_packages WHERE name=$1`
	return r.fetchSingle(ctx, query, name)
}

func (r *daycarePackageRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.DaycarePackage, error) {
	var pkg domain.DaycarePackage
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&pkg.ID,
		&pkg.Name,
		&pkg.Description,
		&pkg.Price,
		&pkg.Duration,
		&pkg.Features,
		&pkg.IsActive,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *daycarePackageRepository) ListActive(ctx context.Context) ([]domain.DaycarePackage, error) {
	const query = `
        SELECT id, name, description, price, duration, features, is_active, created_at, updated_at
        FROM daycare_packages WHERE is_active=TRUE ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.DaycarePackage
	for rows.Next() {
		var pkg domain.DaycarePackage
		if err := rows.Scan(
			&pkg.ID,
			&pkg.Name,
			&pkg.Description,
			&pkg.Price,
			&pkg.Duration,
			&pkg.Features,
			&pkg.IsActive,
			&pkg.CreatedAt,
			&pkg.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, pkg)
	}
	return result, rows.Err()
}
