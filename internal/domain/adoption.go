package domain

import "time"

// AdoptionStatus enumerates review states for adoption requests.
type AdoptionStatus string

const (
	AdoptionStatusPending  AdoptionStatus = "pending"
	AdoptionStatusApproved AdoptionStatus = "approved"
	AdoptionStatusRejected AdoptionStatus = "rejected"
)

// AdoptionRequest is a visitor's application to adopt a pet.
type AdoptionRequest struct {
	ID            string
	PetID         string
	PetName       string
	FullName      string
	Email         string
	Phone         string
	Reason        string
	Experience    string
	PreferredDate string
	Status        AdoptionStatus
	ReviewedAt    *time.Time
	ReviewedBy    *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
