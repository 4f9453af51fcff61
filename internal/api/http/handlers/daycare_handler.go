package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pet-adoption-service/internal/api/dto"
	"github.com/spec-kit/pet-adoption-service/internal/auth"
	"github.com/spec-kit/pet-adoption-service/internal/domain"
	"github.com/spec-kit/pet-adoption-service/internal/service"
	apperrors "github.com/spec-kit/pet-adoption-service/pkg/util"
)

// DaycareHandler manages daycare package, availability and booking endpoints.
type DaycareHandler struct {
	service *service.DaycareService
}

// NewDaycareHandler constructs handler.
func NewDaycareHandler(daycareService *service.DaycareService) *DaycareHandler {
	return &DaycareHandler{service: daycareService}
}

// ListPackages GET /daycare/packages.
func (h *DaycareHandler) ListPackages(c *fiber.Ctx) error {
	packages, err := h.service.ListActivePackages(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.PackageResponse, 0, len(packages))
	for i := range packages {
		items = append(items, packageResponse(&packages[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreatePackage POST /daycare/packages (admin).
func (h *DaycareHandler) CreatePackage(c *fiber.Ctx) error {
	var req dto.CreatePackageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	pkg, err := h.service.CreatePackage(c.Context(), service.PackageCreateInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		Features:    req.Features,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": packageResponse(pkg)})
}

// CheckAvailability GET /daycare/availability?date=YYYY-MM-DD.
func (h *DaycareHandler) CheckAvailability(c *fiber.Ctx) error {
	availability, err := h.service.CheckAvailability(c.Context(), c.Query("date"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.AvailabilityResponse{
		Date:           availability.Date,
		Booked:         availability.Booked,
		Capacity:       availability.Capacity,
		RemainingSpots: availability.RemainingSpots,
		IsFull:         availability.IsFull,
	}})
}

// CreateBooking POST /daycare/bookings.
func (h *DaycareHandler) CreateBooking(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	booking, err := h.service.CreateBooking(c.Context(), principal.User.ID, service.BookingCreateInput{
		PetName:     req.PetName,
		PackageID:   req.PackageID,
		BookingDate: req.BookingDate,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": bookingResponse(booking)})
}

// ListBookings GET /daycare/bookings (admin): full ledger, attendance order.
func (h *DaycareHandler) ListBookings(c *fiber.Ctx) error {
	bookings, err := h.service.ListAllBookings(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		items = append(items, bookingResponse(&bookings[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// ListMyBookings GET /daycare/bookings/mine.
func (h *DaycareHandler) ListMyBookings(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	bookings, err := h.service.ListUserBookings(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	items := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		items = append(items, bookingResponse(&bookings[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// UpdateBookingStatus PUT /daycare/bookings/:id/status (admin).
func (h *DaycareHandler) UpdateBookingStatus(c *fiber.Ctx) error {
	var req dto.UpdateBookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	booking, err := h.service.TransitionBooking(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": bookingResponse(booking)})
}

// CancelBooking POST /daycare/bookings/:id/cancel.
func (h *DaycareHandler) CancelBooking(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	booking, err := h.service.CancelBooking(c.Context(), principal.User.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": bookingResponse(booking)})
}

func packageResponse(pkg *domain.DaycarePackage) dto.PackageResponse {
	return dto.PackageResponse{
		ID:          pkg.ID,
		Name:        pkg.Name,
		Description: pkg.Description,
		Price:       pkg.Price,
		Duration:    pkg.Duration,
		Features:    pkg.Features,
		IsActive:    pkg.IsActive,
		CreatedAt:   pkg.CreatedAt,
	}
}

func bookingResponse(booking *domain.DaycareBooking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:           booking.ID,
		ReferenceKey: booking.ReferenceKey,
		UserID:       booking.UserID,
		PetName:      booking.PetName,
		PackageID:    booking.PackageID,
		BookingDate:  booking.BookingDate,
		Status:       booking.Status,
		CheckInTime:  booking.CheckInTime,
		CheckOutTime: booking.CheckOutTime,
		CreatedAt:    booking.CreatedAt,
	}
}
