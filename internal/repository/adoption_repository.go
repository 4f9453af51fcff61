package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/pet-adoption-service/internal/domain"
)

// AdoptionRepository encapsulates adoption request persistence.
type AdoptionRepository interface {
	Create(ctx context.Context, request *domain.AdoptionRequest) error
	GetByID(ctx context.Context, id string) (*domain.AdoptionRequest, error)
	ListAll(ctx context.Context) ([]domain.AdoptionRequest, error)
	ListByEmail(ctx context.Context, email string) ([]domain.AdoptionRequest, error)
	ListRecent(ctx context.Context, limit int) ([]domain.AdoptionRequest, error)
	UpdateReview(ctx context.Context, request *domain.AdoptionRequest) error
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status domain.AdoptionStatus) (int, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int, error)
}

type adoptionRepository struct {
	pool *pgxpool.Pool
}

// NewAdoptionRepository instantiates repository.
func NewAdoptionRepository(pool *pgxpool.Pool) AdoptionRepository {
	return &adoptionRepository{pool: pool}
}

const adoptionColumns = `id, pet_id, pet_name, full_name, email, phone, reason, experience,
       preferred_date, status, reviewed_at, reviewed_by, created_at, updated_at`

func (r *adoptionRepository) Create(ctx context.Context, request *domain.AdoptionRequest) error {
	const query = `
        INSERT INTO adoption_requests (pet_id, pet_name, full_name, email, phone, reason, experience, preferred_date, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		request.PetID,
		request.PetName,
		request.FullName,
		request.Email,
		request.Phone,
		request.Reason,
		request.Experience,
		request.PreferredDate,
		request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
}

func (r *adoptionRepository) GetByID(ctx context.Context, id string) (*domain.AdoptionRequest, error) {
	query := `SELECT ` + adoptionColumns + ` FROM adoption_requests WHERE id=$1`
	var request domain.AdoptionRequest
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&request.ID,
		&request.PetID,
		&request.PetName,
		&request.FullName,
		&request.Email,
		&request.Phone,
		&request.Reason,
		&request.Experience,
		&request.PreferredDate,
		&request.Status,
		&request.ReviewedAt,
		&request.ReviewedBy,
		&request.CreatedAt,
		&request.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *adoptionRepository) ListAll(ctx context.Context) ([]domain.AdoptionRequest, error) {
	query := `SELECT ` + adoptionColumns + ` FROM adoption_requests ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAdoptionRequests(rows)
}

func (r *adoptionRepository) ListByEmail(ctx context.Context, email string) ([]domain.AdoptionRequest, error) {
	query := `SELECT ` + adoptionColumns + ` FROM adoption_requests WHERE email=LOWER($1) ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAdoptionRequests(rows)
}

func (r *adoptionRepository) ListRecent(ctx context.Context, limit int) ([]domain.AdoptionRequest, error) {
	if limit <= 0 {
		limit = 10
	}
	query := `SELECT ` + adoptionColumns + ` FROM adoption_requests ORDER BY created_at DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAdoptionRequests(rows)
}

func (r *adoptionRepository) UpdateReview(ctx context.Context, request *domain.AdoptionRequest) error {
	const query = `
        UPDATE adoption_requests SET status=$1, reviewed_at=$2, reviewed_by=$3, updated_at=NOW()
        WHERE id=$4`
	cmd, err := r.pool.Exec(ctx, query,
		request.Status,
		request.ReviewedAt,
		request.ReviewedBy,
		request.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *adoptionRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM adoption_requests`).Scan(&count)
	return count, err
}

func (r *adoptionRepository) CountByStatus(ctx context.Context, status domain.AdoptionStatus) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM adoption_requests WHERE status=$1`, status).Scan(&count)
	return count, err
}

func (r *adoptionRepository) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM adoption_requests WHERE created_at >= $1`, since).Scan(&count)
	return count, err
}

func scanAdoptionRequests(rows pgx.Rows) ([]domain.AdoptionRequest, error) {
	var result []domain.AdoptionRequest
	for rows.Next() {
		var request domain.AdoptionRequest
		if err := rows.Scan(
			&request.ID,
			&request.PetID,
			&request.PetName,
			&request.FullName,
			&request.Email,
			&request.Phone,
			&request.Reason,
			&request.Experience,
			&request.PreferredDate,
			&request.Status,
			&request.ReviewedAt,
			&request.ReviewedBy,
			&request.CreatedAt,
			&request.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, request)
	}
	return result, rows.Err()
}
