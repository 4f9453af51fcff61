package domain

import "time"

// FoodCategory enumerates product categories in the food store.
type FoodCategory string

const (
	FoodCategoryDog   FoodCategory = "dog"
	FoodCategoryCat   FoodCategory = "cat"
	FoodCategoryBird  FoodCategory = "bird"
	FoodCategoryFish  FoodCategory = "fish"
	FoodCategoryOther FoodCategory = "other"
)

// FoodProduct is a purchasable store item.
type FoodProduct struct {
	ID          string
	Name        string
	Category    FoodCategory
	Price       float64
	Description string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
