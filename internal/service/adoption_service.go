package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/pet-adoption-service/internal/domain"
	"github.com/spec-kit/pet-adoption-service/internal/events"
	"github.com/spec-kit/pet-adoption-service/internal/repository"
	apperrors "github.com/spec-kit/pet-adoption-service/pkg/util"
)

// AdoptionService coordinates adoption request workflows.
type AdoptionService struct {
	requests   repository.AdoptionRepository
	pets       repository.PetRepository
	dispatcher events.Dispatcher
}

// AdoptionDependencies bundles repositories for the adoption service.
type AdoptionDependencies struct {
	AdoptionRepo repository.AdoptionRepository
	PetRepo      repository.PetRepository
	Dispatcher   events.Dispatcher
}

// AdoptionCreateInput describes an adoption application payload.
type AdoptionCreateInput struct {
	PetID         string
	FullName      string
	Email         string
	Phone         string
	Reason        string
	Experience    string
	PreferredDate string
}

// NewAdoptionService constructs the service.
func NewAdoptionService(deps AdoptionDependencies) *AdoptionService {
	return &AdoptionService{
		requests:   deps.AdoptionRepo,
		pets:       deps.PetRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CreateRequest validates and records a new adoption application.
func (s *AdoptionService) CreateRequest(ctx context.Context, input AdoptionCreateInput) (*domain.AdoptionRequest, error) {
	details := map[string]any{}
	for field, value := range map[string]string{
		"pet_id":     input.PetID,
		"full_name":  input.FullName,
		"email":      input.Email,
		"phone":      input.Phone,
		"reason":     input.Reason,
		"experience": input.Experience,
	} {
		if strings.TrimSpace(value) == "" {
			details[field] = "required"
		}
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("missing required fields", details)
	}

	pet, err := s.pets.GetByID(ctx, input.PetID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("pet", map[string]any{"pet_id": input.PetID})
		}
		return nil, err
	}

	request := &domain.AdoptionRequest{
		PetID:         pet.ID,
		PetName:       pet.Name,
		FullName:      strings.TrimSpace(input.FullName),
		Email:         strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:         strings.TrimSpace(input.Phone),
		Reason:        strings.TrimSpace(input.Reason),
		Experience:    strings.TrimSpace(input.Experience),
		PreferredDate: strings.TrimSpace(input.PreferredDate),
		Status:        domain.AdoptionStatusPending,
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:      events.EventAdoptionRequestCreated,
		SubjectID: request.ID,
		Payload: events.AdoptionRequestCreatedPayload{
			PetID:   request.PetID,
			PetName: request.PetName,
			Email:   request.Email,
		},
	})
	return request, nil
}

// ListAll returns every adoption request, newest first.
func (s *AdoptionService) ListAll(ctx context.Context) ([]domain.AdoptionRequest, error) {
	return s.requests.ListAll(ctx)
}

// ListForEmail returns the applicant's own request history.
func (s *AdoptionService) ListForEmail(ctx context.Context, email string) ([]domain.AdoptionRequest, error) {
	return s.requests.ListByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

// Review approves or rejects a pending request on behalf of an admin.
func (s *AdoptionService) Review(ctx context.Context, reviewerID, requestID string, status domain.AdoptionStatus) (*domain.AdoptionRequest, error) {
	switch status {
	case domain.AdoptionStatusApproved, domain.AdoptionStatusRejected, domain.AdoptionStatusPending:
	default:
		return nil, apperrors.NewValidationError("invalid status, use approved/rejected/pending",
			map[string]any{"status": string(status)})
	}

	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("adoption request", map[string]any{"request_id": requestID})
		}
		return nil, err
	}

	now := time.Now()
	request.Status = status
	request.ReviewedAt = &now
	request.ReviewedBy = &reviewerID
	if err := s.requests.UpdateReview(ctx, request); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:      events.EventAdoptionRequestReviewed,
		SubjectID: request.ID,
		ActorID:   reviewerID,
		Payload: events.AdoptionRequestReviewedPayload{
			Status:     status,
			ReviewedBy: reviewerID,
		},
	})
	return request, nil
}

func (s *AdoptionService) publish(ctx context.Context, event events.Event) {
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
