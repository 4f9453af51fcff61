package service

import (
	"sort"
	"time"

	"github.com/spec-kit/pet-adoption-service/internal/domain"
)

// statusWeight ranks bookings by operational attention: pets currently on
// site first, upcoming arrivals next, departed pets last.
var statusWeight = map[domain.BookingStatus]int{
	domain.BookingStatusCheckedIn:  1,
	domain.BookingStatusConfirmed:  2,
	domain.BookingStatusCheckedOut: 3,
}

const statusWeightUnknown = 99

// SortBookingsForAttendance orders the ledger in place for the admin
// attendance view:
//
//   - Checked-In before Confirmed before Checked-Out before anything else.
//   - Checked-In: most recent arrival first.
//   - Confirmed: soonest booking date first.
//   - Checked-Out: most recent departure first; records missing a check-out
//     timestamp sort last within the group instead of being dropped.
//
// The sort is stable, so equal bookings keep their incoming order.
func SortBookingsForAttendance(bookings []domain.DaycareBooking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		a, b := &bookings[i], &bookings[j]

		wa, wb := weightOf(a.Status), weightOf(b.Status)
		if wa != wb {
			return wa < wb
		}

		switch a.Status {
		case domain.BookingStatusCheckedIn:
			return timeOrZero(a.CheckInTime).After(timeOrZero(b.CheckInTime))
		case domain.BookingStatusConfirmed:
			// Date-only keys compare chronologically as strings.
			return a.BookingDate < b.BookingDate
		case domain.BookingStatusCheckedOut:
			return timeOrZero(a.CheckOutTime).After(timeOrZero(b.CheckOutTime))
		}
		return false
	})
}

func weightOf(status domain.BookingStatus) int {
	if w, ok := statusWeight[status]; ok {
		return w
	}
	return statusWeightUnknown
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
