package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/pet-adoption-service/internal/domain"
	"github.com/spec-kit/pet-adoption-service/internal/repository"
	apperrors "github.com/spec-kit/pet-adoption-service/pkg/util"
)

// CatalogService serves the pet listing and food store catalogs.
type CatalogService struct {
	pets repository.PetRepository
	food repository.FoodRepository
}

// NewCatalogService constructs the service.
func NewCatalogService(pets repository.PetRepository, food repository.FoodRepository) *CatalogService {
	return &CatalogService{pets: pets, food: food}
}

// ListPets returns pets matching the optional search term and category.
func (s *CatalogService) ListPets(ctx context.Context, search string, category string) ([]domain.Pet, error) {
	filter := repository.PetFilter{}
	if search != "" {
		filter.SearchTerm = &search
	}
	if category != "" && category != "all" {
		c := domain.PetCategory(category)
		filter.Category = &c
	}
	return s.pets.List(ctx, filter)
}

// GetPet fetches a single pet.
func (s *CatalogService) GetPet(ctx context.Context, id string) (*domain.Pet, error) {
	pet, err := s.pets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("pet", map[string]any{"pet_id": id})
		}
		return nil, err
	}
	return pet, nil
}

// ListFood returns food products, optionally filtered by category.
func (s *CatalogService) ListFood(ctx context.Context, category string) ([]domain.FoodProduct, error) {
	var filter *domain.FoodCategory
	if category != "" && category != "all" {
		c := domain.FoodCategory(category)
		filter = &c
	}
	return s.food.List(ctx, filter)
}

// GetFood fetches a single food product.
func (s *CatalogService) GetFood(ctx context.Context, id string) (*domain.FoodProduct, error) {
	product, err := s.food.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("food product", map[string]any{"product_id": id})
		}
		return nil, err
	}
	return product, nil
}
