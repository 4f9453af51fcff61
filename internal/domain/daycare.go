package domain

import "time"

// BookingStatus enumerates lifecycle states for daycare bookings.
type BookingStatus string

const (
	BookingStatusConfirmed  BookingStatus = "Confirmed"
	BookingStatusCheckedIn  BookingStatus = "Checked-In"
	BookingStatusCheckedOut BookingStatus = "Checked-Out"
	BookingStatusCancelled  BookingStatus = "Cancelled"
)

// DaycarePackage is a bookable daycare plan.
type DaycarePackage struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Duration    string
	Features    []string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DaycareBooking reserves one daycare spot for one pet on one date.
//
// BookingDate is a date-only string key (YYYY-MM-DD), not a timestamp, so
// same-day capacity counting stays exact and timezone-independent.
// CheckInTime is set iff the booking reached Checked-In; CheckOutTime iff
// it reached Checked-Out.
type DaycareBooking struct {
	ID           string
	ReferenceKey string
	UserID       string
	PetName      string
	PackageID    string
	BookingDate  string
	Status       BookingStatus
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Availability is the derived remaining capacity for one calendar date.
type Availability struct {
	Date           string
	Booked         int
	Capacity       int
	RemainingSpots int
	IsFull         bool
}
