package events

import (
	"time"

	"github.com/spec-kit/pet-adoption-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventBookingCreated          EventType = "booking_created"
	EventBookingStatusChanged    EventType = "booking_status_changed"
	EventAdoptionRequestCreated  EventType = "adoption_request_created"
	EventAdoptionRequestReviewed EventType = "adoption_request_reviewed"
	EventOrderPlaced             EventType = "order_placed"
	EventUserOTPIssued           EventType = "user_otp_issued"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	ActorID   string      `json:"actor_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// BookingCreatedPayload payload.
type BookingCreatedPayload struct {
	ReferenceKey string `json:"reference_key"`
	PetName      string `json:"pet_name"`
	PackageID    string `json:"package_id"`
	BookingDate  string `json:"booking_date"`
}

// BookingStatusChangedPayload payload.
type BookingStatusChangedPayload struct {
	OldStatus domain.BookingStatus `json:"old_status"`
	NewStatus domain.BookingStatus `json:"new_status"`
}

// AdoptionRequestCreatedPayload payload.
type AdoptionRequestCreatedPayload struct {
	PetID   string `json:"pet_id"`
	PetName string `json:"pet_name"`
	Email   string `json:"email"`
}

// AdoptionRequestReviewedPayload payload.
type AdoptionRequestReviewedPayload struct {
	Status     domain.AdoptionStatus `json:"status"`
	ReviewedBy string                `json:"reviewed_by"`
}

// OrderPlacedPayload payload.
type OrderPlacedPayload struct {
	TotalCost float64 `json:"total_cost"`
	ItemCount int     `json:"item_count"`
}

// UserOTPIssuedPayload payload.
type UserOTPIssuedPayload struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}
