package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/pet-adoption-service/internal/domain"
)

// PetFilter captures pet listing parameters.
type PetFilter struct {
	SearchTerm *string
	Category   *domain.PetCategory
}

// PetRepository encapsulates pet persistence.
type PetRepository interface {
	Create(ctx context.Context, pet *domain.Pet) error
	GetByID(ctx context.Context, id string) (*domain.Pet, error)
	List(ctx context.Context, filter PetFilter) ([]domain.Pet, error)
	Count(ctx context.Context) (int, error)
	CountByCategory(ctx context.Context) (map[domain.PetCategory]int, error)
}

type petRepository struct {
	pool *pgxpool.Pool
}

// NewPetRepository instantiates repository.
func NewPetRepository(pool *pgxpool.Pool) PetRepository {
	return &petRepository{pool: pool}
}

const petColumns = `id, name, age, breed, category, description, image_url, created_at, updated_at`

func (r *petRepository) Create(ctx context.Context, pet *domain.Pet) error {
	const query = `
        INSERT INTO pets (name, age, breed, category, description, image_url)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		pet.Name,
		pet.Age,
		pet.Breed,
		pet.Category,
		pet.Description,
		pet.ImageURL,
	).Scan(&pet.ID, &pet.CreatedAt, &pet.UpdatedAt)
}

func (r *petRepository) GetByID(ctx context.Context, id string) (*domain.Pet, error) {
	query := `SELECT ` + petColumns + ` FROM pets WHERE id=$1`
	var pet domain.Pet
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&pet.ID,
		&pet.Name,
		&pet.Age,
		&pet.Breed,
		&pet.Category,
		&pet.Description,
		&pet.ImageURL,
		&pet.CreatedAt,
		&pet.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &pet, nil
}

func (r *petRepository) List(ctx context.Context, filter PetFilter) ([]domain.Pet, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.SearchTerm)) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf("(LOWER(name) LIKE %s OR LOWER(breed) LIKE %s)", placeholder, placeholder))
	}
	if filter.Category != nil {
		args = append(args, *filter.Category)
		clauses = append(clauses, fmt.Sprintf("category=$%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM pets WHERE %s ORDER BY created_at DESC`,
		petColumns, strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPets(rows)
}

func (r *petRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM pets`).Scan(&count)
	return count, err
}

func (r *petRepository) CountByCategory(ctx context.Context) (map[domain.PetCategory]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT category, COUNT(*) FROM pets GROUP BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[domain.PetCategory]int)
	for rows.Next() {
		var category domain.PetCategory
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, err
		}
		result[category] = count
	}
	return result, rows.Err()
}

func scanPets(rows pgx.Rows) ([]domain.Pet, error) {
	var result []domain.Pet
	for rows.Next() {
		var pet domain.Pet
		if err := rows.Scan(
			&pet.ID,
			&pet.Name,
			&pet.Age,
			&pet.Breed,
			&pet.Category,
			&pet.Description,
			&pet.ImageURL,
			&pet.CreatedAt,
			&pet.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, pet)
	}
	return result, rows.Err()
}
