package domain

import "time"

// PetCategory enumerates adoptable pet kinds.
type PetCategory string

const (
	PetCategoryDog   PetCategory = "Dog"
	PetCategoryCat   PetCategory = "Cat"
	PetCategoryBird  PetCategory = "Bird"
	PetCategoryOther PetCategory = "Other"
)

// Pet is an adoptable animal listed on the platform.
type Pet struct {
	ID          string
	Name        string
	Age         int
	Breed       string
	Category    PetCategory
	Description string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
