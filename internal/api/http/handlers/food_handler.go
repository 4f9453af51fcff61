package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pet-adoption-service/internal/api/dto"
	"github.com/spec-kit/pet-adoption-service/internal/domain"
	"github.com/spec-kit/pet-adoption-service/internal/service"
)

// FoodHandler manages food store endpoints.
type FoodHandler struct {
	service *service.CatalogService
}

// NewFoodHandler constructs handler.
func NewFoodHandler(catalogService *service.CatalogService) *FoodHandler {
	return &FoodHandler{service: catalogService}
}

// ListFood GET /foods?category=.
func (h *FoodHandler) ListFood(c *fiber.Ctx) error {
	products, err := h.service.ListFood(c.Context(), c.Query("category"))
	if err != nil {
		return err
	}
	items := make([]dto.FoodResponse, 0, len(products))
	for i := range products {
		items = append(items, foodResponse(&products[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetFood GET /foods/:id.
func (h *FoodHandler) GetFood(c *fiber.Ctx) error {
	product, err := h.service.GetFood(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": foodResponse(product)})
}

func foodResponse(product *domain.FoodProduct) dto.FoodResponse {
	return dto.FoodResponse{
		ID:          product.ID,
		Name:        product.Name,
		Category:    product.Category,
		Price:       product.Price,
		Description: product.Description,
		ImageURL:    product.ImageURL,
		CreatedAt:   product.CreatedAt,
	}
}
