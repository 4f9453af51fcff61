package dto

import (
	"time"

	"github.com/spec-kit/pet-adoption-service/internal/domain"
)

// CreatePackageRequest payload.
type CreatePackageRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Duration    string   `json:"duration"`
	Features    []string `json:"features"`
}

// PackageResponse represents a daycare package.
type PackageResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Duration    string    `json:"duration"`
	Features    []string  `json:"features"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// AvailabilityResponse reports remaining capacity for a date.
type AvailabilityResponse struct {
	Date           string `json:"date"`
	Booked         int    `json:"booked"`
	Capacity       int    `json:"capacity"`
	RemainingSpots int    `json:"remainingSpots"`
	IsFull         bool   `json:"isFull"`
}

// CreateBookingRequest payload.
type CreateBookingRequest struct {
	PetName     string `json:"pet_name"`
	PackageID   string `json:"package_id"`
	BookingDate string `json:"booking_date"`
}

// UpdateBookingStatusRequest payload.
type UpdateBookingStatusRequest struct {
	Status domain.BookingStatus `json:"status"`
}

// BookingResponse represents a daycare booking.
type BookingResponse struct {
	ID           string               `json:"id"`
	ReferenceKey string               `json:"reference_key"`
	UserID       string               `json:"user_id"`
	PetName      string               `json:"pet_name"`
	PackageID    string               `json:"package_id"`
	BookingDate  string               `json:"booking_date"`
	Status       domain.BookingStatus `json:"status"`
	CheckInTime  *time.Time           `json:"check_in_time"`
	CheckOutTime *time.Time           `json:"check_out_time"`
	CreatedAt    time.Time            `json:"created_at"`
}
