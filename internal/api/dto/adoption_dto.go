package dto

import (
	"time"

	"github.com/spec-kit/pet-adoption-service/internal/domain"
)

// CreateAdoptionRequest payload.
type CreateAdoptionRequest struct {
	PetID         string `json:"pet_id"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Reason        string `json:"reason"`
	Experience    string `json:"experience"`
	PreferredDate string `json:"preferred_date"`
}

// ReviewAdoptionRequest payload.
type ReviewAdoptionRequest struct {
	Status domain.AdoptionStatus `json:"status"`
}

// AdoptionResponse represents an adoption request.
type AdoptionResponse struct {
	ID            string                `json:"id"`
	PetID         string                `json:"pet_id"`
	PetName       string                `json:"pet_name"`
	FullName      string                `json:"full_name"`
	Email         string                `json:"email"`
	Phone         string                `json:"phone"`
	Reason        string                `json:"reason"`
	Experience    string                `json:"experience"`
	PreferredDate string                `json:"preferred_date,omitempty"`
	Status        domain.AdoptionStatus `json:"status"`
	ReviewedAt    *time.Time            `json:"reviewed_at"`
	ReviewedBy    *string               `json:"reviewed_by"`
	CreatedAt     time.Time             `json:"created_at"`
}
