package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pet-adoption-service/internal/api/dto"
	"github.com/spec-kit/pet-adoption-service/internal/service"
)

// AdminHandler serves the admin dashboard endpoints.
type AdminHandler struct {
	service *service.AdminService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{service: adminService}
}

// Stats GET /admin/stats.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return err
	}
	byCategory := make(map[string]int, len(stats.PetsByCategory))
	for category, count := range stats.PetsByCategory {
		byCategory[string(category)] = count
	}
	return c.JSON(fiber.Map{"data": dto.DashboardStatsResponse{
		TotalUsers:              stats.TotalUsers,
		TodayRegistrations:      stats.TodayRegistrations,
		TotalPets:               stats.TotalPets,
		PetsByCategory:          byCategory,
		TotalAdoptionRequests:   stats.TotalAdoptionRequests,
		PendingAdoptionRequests: stats.PendingAdoptionRequests,
		RecentAdoptionRequests:  stats.RecentAdoptionRequests,
	}})
}

// RecentUsers GET /admin/users/recent.
func (h *AdminHandler) RecentUsers(c *fiber.Ctx) error {
	users, err := h.service.RecentUsers(c.Context(), parseLimit(c.Query("limit"), 10))
	if err != nil {
		return err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, userResponse(&users[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// RecentAdoptionRequests GET /admin/adoption-requests/recent.
func (h *AdminHandler) RecentAdoptionRequests(c *fiber.Ctx) error {
	requests, err := h.service.RecentAdoptionRequests(c.Context(), parseLimit(c.Query("limit"), 10))
	if err != nil {
		return err
	}
	items := make([]dto.AdoptionResponse, 0, len(requests))
	for i := range requests {
		items = append(items, adoptionResponse(&requests[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

func parseLimit(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
