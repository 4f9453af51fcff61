package service

import (
	"testing"
	"time"

	"github.com/spec-kit/pet-adoption-service/internal/domain"
)

func ts(hour int) *time.Time {
	t := time.Date(2026, 9, 14, hour, 0, 0, 0, time.UTC)
	return &t
}

func TestSortBookingsForAttendance(t *testing.T) {
	bookings := []domain.DaycareBooking{
		{ID: "departed-no-ts", Status: domain.BookingStatusCheckedOut},
		{ID: "arrived-early", Status: domain.BookingStatusCheckedIn, CheckInTime: ts(10)},
		{ID: "upcoming-later", Status: domain.BookingStatusConfirmed, BookingDate: "2026-09-15"},
		{ID: "arrived-late", Status: domain.BookingStatusCheckedIn, CheckInTime: ts(20)},
		{ID: "upcoming-soon", Status: domain.BookingStatusConfirmed, BookingDate: "2026-09-14"},
	}

	SortBookingsForAttendance(bookings)

	want := []string{"arrived-late", "arrived-early", "upcoming-soon", "upcoming-later", "departed-no-ts"}
	for i, id := range want {
		if bookings[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, bookings[i].ID, id)
		}
	}
}

func TestSortBookingsCheckedOutOrdering(t *testing.T) {
	bookings := []domain.DaycareBooking{
		{ID: "left-early", Status: domain.BookingStatusCheckedOut, CheckOutTime: ts(12)},
		{ID: "no-timestamp", Status: domain.BookingStatusCheckedOut},
		{ID: "left-late", Status: domain.BookingStatusCheckedOut, CheckOutTime: ts(18)},
	}

	SortBookingsForAttendance(bookings)

	want := []string{"left-late", "left-early", "no-timestamp"}
	for i, id := range want {
		if bookings[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, bookings[i].ID, id)
		}
	}
}

func TestSortBookingsUnknownStatusLast(t *testing.T) {
	bookings := []domain.DaycareBooking{
		{ID: "odd", Status: "Mystery"},
		{ID: "departed", Status: domain.BookingStatusCheckedOut, CheckOutTime: ts(9)},
		{ID: "cancelled", Status: domain.BookingStatusCancelled},
		{ID: "present", Status: domain.BookingStatusCheckedIn, CheckInTime: ts(8)},
	}

	SortBookingsForAttendance(bookings)

	if bookings[0].ID != "present" {
		t.Errorf("first = %s, want present", bookings[0].ID)
	}
	if bookings[1].ID != "departed" {
		t.Errorf("second = %s, want departed", bookings[1].ID)
	}
	// Unknown weights tie, so stable sort keeps incoming order.
	if bookings[2].ID != "odd" || bookings[3].ID != "cancelled" {
		t.Errorf("tail = [%s %s], want [odd cancelled]", bookings[2].ID, bookings[3].ID)
	}
}

func TestSortBookingsStableWithinTies(t *testing.T) {
	shared := ts(10)
	bookings := []domain.DaycareBooking{
		{ID: "first", Status: domain.BookingStatusCheckedIn, CheckInTime: shared},
		{ID: "second", Status: domain.BookingStatusCheckedIn, CheckInTime: shared},
	}

	SortBookingsForAttendance(bookings)

	if bookings[0].ID != "first" || bookings[1].ID != "second" {
		t.Errorf("tie order = [%s %s], want [first second]", bookings[0].ID, bookings[1].ID)
	}
}
