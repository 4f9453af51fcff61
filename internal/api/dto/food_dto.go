package dto

import (
	"time"

	"github.com/spec-kit/pet-adoption-service/internal/domain"
)

// FoodResponse is the public food product representation.
type FoodResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Category    domain.FoodCategory `json:"category"`
	Price       float64             `json:"price"`
	Description string              `json:"description,omitempty"`
	ImageURL    string              `json:"image_url,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}
