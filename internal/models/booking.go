package models

import (
	"fmt"
	"time"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
	// BookingStatusCancelled is a defined state, but no operation
	// transitions a booking into it yet.
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking records one customer renting one vehicle over an inclusive date
// range. CustomerName and VehicleModel are display snapshots taken at
// creation time, as is TotalCost; none of them are recomputed if the
// underlying records change later.
type Booking struct {
	ID           string        `json:"id"`
	VehicleID    string        `json:"vehicle_id"`
	VehicleModel string        `json:"vehicle_model"`
	CustomerID   string        `json:"customer_id"`
	CustomerName string        `json:"customer_name"`
	StartDate    time.Time     `json:"start_date"`
	EndDate      time.Time     `json:"end_date"`
	TotalCost    float64       `json:"total_cost"`
	Status       BookingStatus `json:"status"`
}

// DaysBetween returns the number of whole days from start to end. The end
// date is not counted, so a Jan 1 to Jan 5 booking spans 4 billable days.
func DaysBetween(start, end time.Time) int {
	return int(end.Sub(start) / (24 * time.Hour))
}

// RangesOverlap reports whether two inclusive date ranges share at least
// one calendar day: they overlap unless one entirely precedes the other.
func RangesOverlap(startA, endA, startB, endB time.Time) bool {
	return !(endA.Before(startB) || startA.After(endB))
}

// String renders the booking in the listing format used by the console shell.
func (b Booking) String() string {
	return fmt.Sprintf("Booking %s: %s rented %s from %s to %s - Total: $%.2f - Status: %s",
		b.ID, b.CustomerName, b.VehicleModel,
		b.StartDate.Format("2006-01-02"), b.EndDate.Format("2006-01-02"),
		b.TotalCost, b.Status)
}
