package rental

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/autotrackdev/autotrack-rental/internal/auth"
	"github.com/autotrackdev/autotrack-rental/internal/models"
	"github.com/autotrackdev/autotrack-rental/internal/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrVehicleUnavailable = errors.New("vehicle not available")
	ErrDateConflict       = errors.New("vehicle already booked for those dates")
	ErrInvalidDateRange   = errors.New("end date precedes start date")
	ErrBookingNotFound    = errors.New("booking not found or not active")
)

// Service composes the vehicle registry, user directory and booking ledger
// behind role-gated operations. Callers authenticate once via Login and
// pass the returned session into every subsequent call; failed checks come
// back as sentinel errors, list queries degrade to empty results.
type Service struct {
	vehicles store.VehicleRegistry
	users    store.UserDirectory
	bookings store.BookingLedger
	sessions *auth.Service
}

// NewService creates a rental service over the given stores and session
// service.
func NewService(vehicles store.VehicleRegistry, users store.UserDirectory, bookings store.BookingLedger, sessions *auth.Service) *Service {
	return &Service{
		vehicles: vehicles,
		users:    users,
		bookings: bookings,
		sessions: sessions,
	}
}

// Login checks the credentials against the user directory and returns a
// fresh session on success.
func (s *Service) Login(username, password string) (*auth.Session, error) {
	user, err := s.users.FindByCredentials(username, password)
	if err != nil {
		log.WithField("username", username).Warn("login rejected")
		return nil, ErrInvalidCredentials
	}

	sess, err := s.sessions.IssueSession(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session: %w", err)
	}

	log.WithFields(log.Fields{
		"username": user.Username,
		"role":     user.Role,
	}).Info("login successful")
	return sess, nil
}

// Logout revokes the session unconditionally.
func (s *Service) Logout(sess *auth.Session) {
	s.sessions.Revoke(sess)
	if sess != nil && sess.Claims != nil {
		log.WithField("username", sess.Claims.Username).Info("logout")
	}
}

// AddVehicle registers a new vehicle. Admin only.
func (s *Service) AddVehicle(sess *auth.Session, vehicle models.Vehicle) error {
	claims, err := s.sessions.Verify(sess)
	if err != nil || !claims.IsAdmin() {
		return ErrNotAuthorized
	}

	if err := s.vehicles.Add(vehicle); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"vehicle_id": vehicle.ID,
		"admin":      claims.Username,
	}).Info("vehicle added")
	return nil
}

// UpdateVehicleStatus overwrites a vehicle's status. Admin only. Any
// transition is allowed, including pulling a booked vehicle into
// maintenance or forcing it back to available.
func (s *Service) UpdateVehicleStatus(sess *auth.Session, vehicleID string, status models.VehicleStatus) error {
	claims, err := s.sessions.Verify(sess)
	if err != nil || !claims.IsAdmin() {
		return ErrNotAuthorized
	}

	if !s.vehicles.SetStatus(vehicleID, status) {
		return ErrVehicleNotFound
	}

	log.WithFields(log.Fields{
		"vehicle_id": vehicleID,
		"status":     status,
		"admin":      claims.Username,
	}).Info("vehicle status updated")
	return nil
}

// MakeBooking books a vehicle for the calling customer over an inclusive
// date range. Admins cannot book. Fails if the vehicle is unknown or not
// available, if the range is inverted, or if an active booking for the
// vehicle overlaps the range.
func (s *Service) MakeBooking(sess *auth.Session, vehicleID string, start, end time.Time) (*models.Booking, error) {
	claims, err := s.sessions.Verify(sess)
	if err != nil || claims.IsAdmin() {
		return nil, ErrNotAuthorized
	}

	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	vehicle, err := s.vehicles.FindByID(vehicleID)
	if err != nil {
		return nil, ErrVehicleNotFound
	}
	if vehicle.Status != models.VehicleStatusAvailable {
		return nil, ErrVehicleUnavailable
	}

	if s.bookings.Overlaps(vehicleID, start, end) {
		return nil, ErrDateConflict
	}

	customer, err := s.users.FindByID(claims.UserID)
	if err != nil {
		return nil, ErrNotAuthorized
	}

	booking := s.bookings.Create(*vehicle, *customer, start, end)

	log.WithFields(log.Fields{
		"booking_id": booking.ID,
		"vehicle_id": vehicleID,
		"customer":   customer.Username,
		"total_cost": booking.TotalCost,
	}).Info("booking created")
	return booking, nil
}

// ReturnVehicle completes an active booking and frees its vehicle. Any
// logged-in identity may return any booking; there is deliberately no
// check that the booking belongs to the caller.
func (s *Service) ReturnVehicle(sess *auth.Session, bookingID string) error {
	claims, err := s.sessions.Verify(sess)
	if err != nil {
		return ErrNotAuthorized
	}

	if !s.bookings.Complete(bookingID) {
		return ErrBookingNotFound
	}

	log.WithFields(log.Fields{
		"booking_id": bookingID,
		"username":   claims.Username,
	}).Info("vehicle returned")
	return nil
}

// AvailableVehicles lists vehicles currently available for booking.
func (s *Service) AvailableVehicles() []models.Vehicle {
	return s.vehicles.FindAvailable()
}

// AllVehicles lists the whole fleet. Admin only; empty for anyone else.
func (s *Service) AllVehicles(sess *auth.Session) []models.Vehicle {
	claims, err := s.sessions.Verify(sess)
	if err != nil || !claims.IsAdmin() {
		return nil
	}
	return s.vehicles.All()
}

// MyBookings lists the calling user's bookings; empty without a valid
// session.
func (s *Service) MyBookings(sess *auth.Session) []models.Booking {
	claims, err := s.sessions.Verify(sess)
	if err != nil {
		return nil
	}
	return s.bookings.ForCustomer(claims.UserID)
}

// AllBookings lists every booking. Admin only; empty for anyone else.
func (s *Service) AllBookings(sess *auth.Session) []models.Booking {
	claims, err := s.sessions.Verify(sess)
	if err != nil || !claims.IsAdmin() {
		return nil
	}
	return s.bookings.All()
}
