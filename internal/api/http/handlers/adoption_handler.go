package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pet-adoption-service/internal/api/dto"
	"github.com/spec-kit/pet-adoption-service/internal/auth"
	"github.com/spec-kit/pet-adoption-service/internal/domain"
	"github.com/spec-kit/pet-adoption-service/internal/service"
	apperrors "github.com/spec-kit/pet-adoption-service/pkg/util"
)

// AdoptionHandler manages adoption request endpoints.
type AdoptionHandler struct {
	service *service.AdoptionService
}

// NewAdoptionHandler constructs handler.
func NewAdoptionHandler(adoptionService *service.AdoptionService) *AdoptionHandler {
	return &AdoptionHandler{service: adoptionService}
}

// CreateRequest POST /adoption-requests (public).
func (h *AdoptionHandler) CreateRequest(c *fiber.Ctx) error {
	var req dto.CreateAdoptionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	request, err := h.service.CreateRequest(c.Context(), service.AdoptionCreateInput{
		PetID:         req.PetID,
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		Reason:        req.Reason,
		Experience:    req.Experience,
		PreferredDate: req.PreferredDate,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": adoptionResponse(request)})
}

// ListRequests GET /adoption-requests (admin).
func (h *AdoptionHandler) ListRequests(c *fiber.Ctx) error {
	requests, err := h.service.ListAll(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.AdoptionResponse, 0, len(requests))
	for i := range requests {
		items = append(items, adoptionResponse(&requests[i]))
	}
	return c.JSON(fiber.Map{"data": items, "count": len(items)})
}

// MyHistory GET /adoption-requests/my-history.
func (h *AdoptionHandler) MyHistory(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	requests, err := h.service.ListForEmail(c.Context(), principal.User.Email)
	if err != nil {
		return err
	}
	items := make([]dto.AdoptionResponse, 0, len(requests))
	for i := range requests {
		items = append(items, adoptionResponse(&requests[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// ReviewRequest PATCH /adoption-requests/:id/status (admin).
func (h *AdoptionHandler) ReviewRequest(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.ReviewAdoptionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	request, err := h.service.Review(c.Context(), principal.User.ID, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": adoptionResponse(request)})
}

func adoptionResponse(request *domain.AdoptionRequest) dto.AdoptionResponse {
	return dto.AdoptionResponse{
		ID:            request.ID,
		PetID:         request.PetID,
		PetName:       request.PetName,
		FullName:      request.FullName,
		Email:         request.Email,
		Phone:         request.Phone,
		Reason:        request.Reason,
		Experience:    request.Experience,
		PreferredDate: request.PreferredDate,
		Status:        request.Status,
		ReviewedAt:    request.ReviewedAt,
		ReviewedBy:    request.ReviewedBy,
		CreatedAt:     request.CreatedAt,
	}
}
