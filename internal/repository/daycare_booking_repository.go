package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/pet-adoption-service/internal/domain"
)

// ErrCapacityExceeded is returned when a booking date is already full.
var ErrCapacityExceeded = errors.New("daycare capacity exceeded for date")

// ErrStaleStatus is returned when a compare-and-set status update matched no
// row in the expected state.
var ErrStaleStatus = errors.New("booking status changed concurrently")

// DaycareBookingRepository encapsulates booking ledger persistence.
type DaycareBookingRepository interface {
	// InsertWithinCapacity re-counts non-cancelled bookings for the date and
	// inserts only while the count is below capacity. The count and insert
	// run in one transaction under a per-date advisory lock, so two
	// concurrent requests for the same date cannot both pass the check.
	InsertWithinCapacity(ctx context.Context, booking *domain.DaycareBooking, capacity int) error
	GetByID(ctx context.Context, id string) (*domain.DaycareBooking, error)
	ListAll(ctx context.Context) ([]domain.DaycareBooking, error)
	ListByUser(ctx context.Context, userID string) ([]domain.DaycareBooking, error)
	CountActiveByDate(ctx context.Context, date string) (int, error)
	// TransitionStatus applies status plus timestamp fields as a single
	// compare-and-set update conditioned on the current status.
	TransitionStatus(ctx context.Context, booking *domain.DaycareBooking, from domain.BookingStatus) error
}

type daycareBookingRepository struct {
	pool *pgxpool.Pool
}

// NewDaycareBookingRepository instantiates repository.
func NewDaycareBookingRepository(pool *pgxpool.Pool) DaycareBookingRepository {
	return &daycareBookingRepository{pool: pool}
}

const bookingColumns = `id, reference_key, user_id, pet_name, package_id, booking_date,
       status, check_in_time, check_out_time, created_at, updated_at`

func (r *daycareBookingRepository) InsertWithinCapacity(ctx context.Context, booking *domain.DaycareBooking, capacity int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	// Serialize the count-then-insert pair per booking date.
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, booking.BookingDate); err != nil {
		return err
	}

	var count int
	const countQuery = `
        SELECT COUNT(*) FROM daycare_bookings
        WHERE booking_date=$1 AND status <> $2`
	if err := tx.QueryRow(ctx, countQuery, booking.BookingDate, domain.BookingStatusCancelled).Scan(&count); err != nil {
		return err
	}
	if count >= capacity {
		return ErrCapacityExceeded
	}

	const insertQuery = `
        INSERT INTO daycare_bookings (reference_key, user_id, pet_name, package_id, booking_date, status)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	if err := tx.QueryRow(ctx, insertQuery,
		booking.ReferenceKey,
		booking.UserID,
		booking.PetName,
		booking.PackageID,
		booking.BookingDate,
		booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *daycareBookingRepository) GetByID(ctx context.Context, id string) (*domain.DaycareBooking, error) {
	query := `SELECT ` + bookingColumns + ` FROM daycare_bookings WHERE id=$1`
	var booking domain.DaycareBooking
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.ReferenceKey,
		&booking.UserID,
		&booking.PetName,
		&booking.PackageID,
		&booking.BookingDate,
		&booking.Status,
		&booking.CheckInTime,
		&booking.CheckOutTime,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *daycareBookingRepository) ListAll(ctx context.Context) ([]domain.DaycareBooking, error) {
	query := `SELECT ` + bookingColumns + ` FROM daycare_bookings ORDER BY booking_date DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *daycareBookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.DaycareBooking, error) {
	query := `SELECT ` + bookingColumns + ` FROM daycare_bookings WHERE user_id=$1 ORDER BY booking_date DESC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *daycareBookingRepository) CountActiveByDate(ctx context.Context, date string) (int, error) {
	const query = `
        SELECT COUNT(*) FROM daycare_bookings
        WHERE booking_date=$1 AND status <> $2`
	var count int
	if err := r.pool.QueryRow(ctx, query, date, domain.BookingStatusCancelled).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *daycareBookingRepository) TransitionStatus(ctx context.Context, booking *domain.DaycareBooking, from domain.BookingStatus) error {
	const query = `
        UPDATE daycare_bookings
        SET status=$1, check_in_time=$2, check_out_time=$3, updated_at=NOW()
        WHERE id=$4 AND status=$5`
	cmd, err := r.pool.Exec(ctx, query,
		booking.Status,
		booking.CheckInTime,
		booking.CheckOutTime,
		booking.ID,
		from,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrStaleStatus
	}
	return nil
}

func scanBookings(rows pgx.Rows) ([]domain.DaycareBooking, error) {
	var result []domain.DaycareBooking
	for rows.Next() {
		var booking domain.DaycareBooking
		if err := rows.Scan(
			&booking.ID,
			&booking.ReferenceKey,
			&booking.UserID,
			&booking.PetName,
			&booking.PackageID,
			&booking.BookingDate,
			&booking.Status,
			&booking.CheckInTime,
			&booking.CheckOutTime,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, booking)
	}
	return result, rows.Err()
}
