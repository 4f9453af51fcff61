package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pet-adoption-service/internal/api/dto"
	"github.com/spec-kit/pet-adoption-service/internal/domain"
	"github.com/spec-kit/pet-adoption-service/internal/service"
)

// PetsHandler manages pet catalog endpoints.
type PetsHandler struct {
	service *service.CatalogService
}

// NewPetsHandler constructs handler.
func NewPetsHandler(catalogService *service.CatalogService) *PetsHandler {
	return &PetsHandler{service: catalogService}
}

// ListPets GET /pets?search=&category=.
func (h *PetsHandler) ListPets(c *fiber.Ctx) error {
	pets, err := h.service.ListPets(c.Context(), c.Query("search"), c.Query("category"))
	if err != nil {
		return err
	}
	items := make([]dto.PetResponse, 0, len(pets))
	for i := range pets {
		items = append(items, petResponse(&pets[i]))
	}
	return c.JSON(fiber.Map{"data": items, "count": len(items)})
}

// GetPet GET /pets/:id.
func (h *PetsHandler) GetPet(c *fiber.Ctx) error {
	pet, err := h.service.GetPet(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": petResponse(pet)})
}

func petResponse(pet *domain.Pet) dto.PetResponse {
	return dto.PetResponse{
		ID:          pet.ID,
		Name:        pet.Name,
		Age:         pet.Age,
		Breed:       pet.Breed,
		Category:    pet.Category,
		Description: pet.Description,
		ImageURL:    pet.ImageURL,
		CreatedAt:   pet.CreatedAt,
	}
}
