package store

import (
	"fmt"
	"time"

	"github.com/autotrackdev/autotrack-rental/internal/models"
)

// BookingLedger defines the interface for booking record operations. The
// ledger derives the total cost, generates sequential identifiers and owns
// booking status transitions, instructing the vehicle registry to keep
// vehicle statuses in sync.
type BookingLedger interface {
	Create(vehicle models.Vehicle, customer models.User, start, end time.Time) *models.Booking
	Complete(bookingID string) bool
	Overlaps(vehicleID string, start, end time.Time) bool
	ForCustomer(customerID string) []models.Booking
	All() []models.Booking
}

// MemoryBookingLedger implements BookingLedger on an in-memory slice.
// Listings preserve insertion order.
type MemoryBookingLedger struct {
	registry VehicleRegistry
	bookings []models.Booking
	// created counts bookings ever created, independent of the slice
	// length, so identifiers stay unique even if removal is introduced.
	created int
}

// NewBookingLedger creates an empty ledger bound to the vehicle registry
// it keeps in sync.
func NewBookingLedger(registry VehicleRegistry) *MemoryBookingLedger {
	return &MemoryBookingLedger{registry: registry}
}

// Create records a new active booking and flips the vehicle to booked.
// The caller must already have checked that the vehicle is available and
// that no active booking overlaps the requested range. The total cost is
// a snapshot: whole days from start to end times the vehicle's current
// daily rate.
func (l *MemoryBookingLedger) Create(vehicle models.Vehicle, customer models.User, start, end time.Time) *models.Booking {
	l.created++
	booking := models.Booking{
		ID:           fmt.Sprintf("B%d", l.created),
		VehicleID:    vehicle.ID,
		VehicleModel: vehicle.Model,
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		StartDate:    start,
		EndDate:      end,
		TotalCost:    float64(models.DaysBetween(start, end)) * vehicle.DailyRate,
		Status:       models.BookingStatusActive,
	}
	l.bookings = append(l.bookings, booking)
	l.registry.SetStatus(vehicle.ID, models.VehicleStatusBooked)
	return &booking
}

// Complete transitions an active booking to completed and returns the
// vehicle to available. Reports false if the booking does not exist or is
// not active, in which case nothing changes.
func (l *MemoryBookingLedger) Complete(bookingID string) bool {
	for i := range l.bookings {
		if l.bookings[i].ID == bookingID && l.bookings[i].Status == models.BookingStatusActive {
			l.bookings[i].Status = models.BookingStatusCompleted
			l.registry.SetStatus(l.bookings[i].VehicleID, models.VehicleStatusAvailable)
			return true
		}
	}
	return false
}

// Overlaps reports whether any active booking for the vehicle intersects
// the given inclusive date range. Completed and cancelled bookings are
// ignored.
func (l *MemoryBookingLedger) Overlaps(vehicleID string, start, end time.Time) bool {
	for _, b := range l.bookings {
		if b.VehicleID != vehicleID || b.Status != models.BookingStatusActive {
			continue
		}
		if models.RangesOverlap(start, end, b.StartDate, b.EndDate) {
			return true
		}
	}
	return false
}

// ForCustomer returns the customer's bookings in ledger insertion order.
func (l *MemoryBookingLedger) ForCustomer(customerID string) []models.Booking {
	var out []models.Booking
	for _, b := range l.bookings {
		if b.CustomerID == customerID {
			out = append(out, b)
		}
	}
	return out
}

// All returns every booking in ledger insertion order.
func (l *MemoryBookingLedger) All() []models.Booking {
	out := make([]models.Booking, len(l.bookings))
	copy(out, l.bookings)
	return out
}
