package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/pet-adoption-service/internal/config"
	"github.com/spec-kit/pet-adoption-service/internal/domain"
	"github.com/spec-kit/pet-adoption-service/internal/events"
	"github.com/spec-kit/pet-adoption-service/internal/repository"
	apperrors "github.com/spec-kit/pet-adoption-service/pkg/util"
)

const bookingDateLayout = "2006-01-02"

// DaycareService coordinates daycare packages, availability and the booking
// attendance lifecycle.
type DaycareService struct {
	packages   repository.DaycarePackageRepository
	bookings   repository.DaycareBookingRepository
	capacity   int
	dispatcher events.Dispatcher
}

// DaycareDependencies bundles repositories for the daycare service.
type DaycareDependencies struct {
	PackageRepo repository.DaycarePackageRepository
	BookingRepo repository.DaycareBookingRepository
	Dispatcher  events.Dispatcher
}

// PackageCreateInput describes package creation payload.
type PackageCreateInput struct {
	Name        string
	Description string
	Price       float64
	Duration    string
	Features    []string
}

// BookingCreateInput describes booking creation payload.
type BookingCreateInput struct {
	PetName     string
	PackageID   string
	BookingDate string
}

// NewDaycareService constructs the service.
func NewDaycareService(cfg config.DaycareConfig, deps DaycareDependencies) *DaycareService {
	return &DaycareService{
		packages:   deps.PackageRepo,
		bookings:   deps.BookingRepo,
		capacity:   cfg.DailyCapacity,
		dispatcher: deps.Dispatcher,
	}
}

// ListActivePackages returns active packages, newest first.
func (s *DaycareService) ListActivePackages(ctx context.Context) ([]domain.DaycarePackage, error) {
	return s.packages.ListActive(ctx)
}

// CreatePackage validates and creates a daycare package.
func (s *DaycareService) CreatePackage(ctx context.Context, input PackageCreateInput) (*domain.DaycarePackage, error) {
	name := strings.TrimSpace(input.Name)
	description := strings.TrimSpace(input.Description)
	duration := strings.TrimSpace(input.Duration)

	details := map[string]any{}
	if name == "" {
		details["name"] = "required"
	}
	if description == "" {
		details["description"] = "required"
	}
	if duration == "" {
		details["duration"] = "required"
	}
	if input.Price < 0 {
		details["price"] = "cannot be negative"
	}
	if len(input.Features) == 0 {
		details["features"] = "at least one feature required"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid package fields", details)
	}

	if _, err := s.packages.GetByName(ctx, name); err == nil {
		return nil, apperrors.NewValidationError("package name already exists", map[string]any{"name": name})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	pkg := &domain.DaycarePackage{
		Name:        name,
		Description: description,
		Price:       input.Price,
		Duration:    duration,
		Features:    input.Features,
		IsActive:    true,
	}
	if err := s.packages.Create(ctx, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

// CheckAvailability derives remaining capacity for a calendar date by
// counting non-cancelled bookings at read time, so the figure is always
// consistent with the ledger.
func (s *DaycareService) CheckAvailability(ctx context.Context, date string) (*domain.Availability, error) {
	if err := validateBookingDate(date); err != nil {
		return nil, err
	}

	count, err := s.bookings.CountActiveByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	remaining := s.capacity - count
	if remaining < 0 {
		remaining = 0
	}
	return &domain.Availability{
		Date:           date,
		Booked:         count,
		Capacity:       s.capacity,
		RemainingSpots: remaining,
		IsFull:         count >= s.capacity,
	}, nil
}

// CreateBooking validates the request and inserts a Confirmed booking. The
// availability re-check happens at write time inside the repository, under a
// per-date lock, so the daily capacity invariant holds even when concurrent
// requests both saw a free spot.
func (s *DaycareService) CreateBooking(ctx context.Context, userID string, input BookingCreateInput) (*domain.DaycareBooking, error) {
	petName := strings.TrimSpace(input.PetName)
	if petName == "" {
		return nil, apperrors.NewValidationError("pet_name required", nil)
	}
	if input.PackageID == "" {
		return nil, apperrors.NewValidationError("package_id required", nil)
	}
	if err := validateBookingDate(input.BookingDate); err != nil {
		return nil, err
	}

	pkg, err := s.packages.GetByID(ctx, input.PackageID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("daycare package", map[string]any{"package_id": input.PackageID})
		}
		return nil, err
	}
	if !pkg.IsActive {
		return nil, apperrors.NewValidationError("package is no longer offered", map[string]any{"package_id": pkg.ID})
	}

	booking := &domain.DaycareBooking{
		ReferenceKey: generateBookingKey(),
		UserID:       userID,
		PetName:      petName,
		PackageID:    pkg.ID,
		BookingDate:  input.BookingDate,
		Status:       domain.BookingStatusConfirmed,
	}
	if err := s.bookings.InsertWithinCapacity(ctx, booking, s.capacity); err != nil {
		if errors.Is(err, repository.ErrCapacityExceeded) {
			return nil, apperrors.NewCapacityExceeded(input.BookingDate)
		}
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventBookingCreated,
		SubjectID: booking.ID,
		ActorID:   userID,
		Payload: events.BookingCreatedPayload{
			ReferenceKey: booking.ReferenceKey,
			PetName:      booking.PetName,
			PackageID:    booking.PackageID,
			BookingDate:  booking.BookingDate,
		},
	})
	return booking, nil
}

// ListAllBookings returns the full ledger ordered for operational attention.
func (s *DaycareService) ListAllBookings(ctx context.Context) ([]domain.DaycareBooking, error) {
	bookings, err := s.bookings.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	SortBookingsForAttendance(bookings)
	return bookings, nil
}

// ListUserBookings returns bookings owned by the user.
func (s *DaycareService) ListUserBookings(ctx context.Context, userID string) ([]domain.DaycareBooking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

// TransitionBooking applies an admin-driven attendance transition. Only
// Checked-In and Checked-Out are reachable here; the legal-order table
// rejects everything else, including skipping check-in or reopening a
// departed booking.
func (s *DaycareService) TransitionBooking(ctx context.Context, bookingID string, newStatus domain.BookingStatus) (*domain.DaycareBooking, error) {
	if newStatus != domain.BookingStatusCheckedIn && newStatus != domain.BookingStatusCheckedOut {
		return nil, apperrors.NewValidationError("status must be Checked-In or Checked-Out",
			map[string]any{"status": string(newStatus)})
	}
	return s.applyTransition(ctx, bookingID, newStatus)
}

// CancelBooking cancels a Confirmed booking on behalf of its owner.
// Cancellation is a status, not a removal; the record stays in the ledger.
func (s *DaycareService) CancelBooking(ctx context.Context, userID, bookingID string) (*domain.DaycareBooking, error) {
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, apperrors.NewForbidden("booking belongs to another user")
	}
	return s.applyTransition(ctx, bookingID, domain.BookingStatusCancelled)
}

func (s *DaycareService) applyTransition(ctx context.Context, bookingID string, newStatus domain.BookingStatus) (*domain.DaycareBooking, error) {
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !isValidTransition(booking.Status, newStatus) {
		return nil, apperrors.NewInvalidTransition(string(booking.Status), string(newStatus))
	}

	oldStatus := booking.Status
	booking.Status = newStatus

	// Timestamps are server-assigned and written together with the status
	// in a single update.
	now := time.Now()
	switch newStatus {
	case domain.BookingStatusCheckedIn:
		booking.CheckInTime = &now
	case domain.BookingStatusCheckedOut:
		booking.CheckOutTime = &now
	}

	if err := s.bookings.TransitionStatus(ctx, booking, oldStatus); err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return nil, apperrors.NewConflict("booking status changed concurrently", map[string]any{"booking_id": bookingID})
		}
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventBookingStatusChanged,
		SubjectID: booking.ID,
		Payload: events.BookingStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: newStatus,
		},
	})
	return booking, nil
}

func (s *DaycareService) getBooking(ctx context.Context, bookingID string) (*domain.DaycareBooking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("booking", map[string]any{"booking_id": bookingID})
		}
		return nil, err
	}
	return booking, nil
}

func validateBookingDate(date string) error {
	if date == "" {
		return apperrors.NewValidationError("date required", nil)
	}
	parsed, err := time.Parse(bookingDateLayout, date)
	if err != nil || parsed.Format(bookingDateLayout) != date {
		return apperrors.NewValidationError("date must be YYYY-MM-DD", map[string]any{"date": date})
	}
	return nil
}

func generateBookingKey() string {
	return "DBK-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

var allowedTransitions = map[domain.BookingStatus][]domain.BookingStatus{
	domain.BookingStatusConfirmed:  {domain.BookingStatusCheckedIn, domain.BookingStatusCancelled},
	domain.BookingStatusCheckedIn:  {domain.BookingStatusCheckedOut},
	domain.BookingStatusCheckedOut: {},
	domain.BookingStatusCancelled:  {},
}

func isValidTransition(current, next domain.BookingStatus) bool {
	for _, candidate := range allowedTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

func (s *DaycareService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
