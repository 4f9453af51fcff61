package dto

import (
	"time"

	"github.com/spec-kit/pet-adoption-service/internal/domain"
)

// PetResponse is the public pet representation.
type PetResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Age         int                `json:"age"`
	Breed       string             `json:"breed"`
	Category    domain.PetCategory `json:"category"`
	Description string             `json:"description"`
	ImageURL    string             `json:"image_url"`
	CreatedAt   time.Time          `json:"created_at"`
}
