package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/autotrackdev/autotrack-rental/internal/auth"
	"github.com/autotrackdev/autotrack-rental/internal/models"
	"github.com/autotrackdev/autotrack-rental/internal/rental"
)

const dateLayout = "2006-01-02"

// Shell is the interactive console front end. It owns input parsing and
// output formatting; all business rules live behind the rental service.
// The shell holds at most one session at a time.
type Shell struct {
	service *rental.Service
	scanner *bufio.Scanner
	out     io.Writer
	session *auth.Session
}

// New creates a shell reading commands from in and writing to out.
func New(service *rental.Service, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		service: service,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Run drives the menu loop until the input is exhausted.
func (s *Shell) Run() {
	fmt.Fprintln(s.out, "=== AutoTrack Rental System ===")

	for {
		var ok bool
		switch {
		case s.session == nil:
			ok = s.loginMenu()
		case s.session.Claims.IsAdmin():
			ok = s.adminMenu()
		default:
			ok = s.customerMenu()
		}
		if !ok {
			return
		}
	}
}

func (s *Shell) loginMenu() bool {
	fmt.Fprintln(s.out, "\nPlease login:")
	username, ok := s.prompt("Username: ")
	if !ok {
		return false
	}
	password, ok := s.prompt("Password: ")
	if !ok {
		return false
	}

	sess, err := s.service.Login(username, password)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid credentials. Please try again.")
		return true
	}
	s.session = sess
	fmt.Fprintf(s.out, "Login successful! Welcome, %s\n", sess.Claims.Name)
	return true
}

func (s *Shell) adminMenu() bool {
	fmt.Fprintln(s.out, "\n=== ADMIN MENU ===")
	fmt.Fprintln(s.out, "1. View all vehicles")
	fmt.Fprintln(s.out, "2. Add new vehicle")
	fmt.Fprintln(s.out, "3. Update vehicle status")
	fmt.Fprintln(s.out, "4. View all bookings")
	fmt.Fprintln(s.out, "5. Logout")

	choice, ok := s.promptInt("Select an option: ")
	if !ok {
		return false
	}

	switch choice {
	case 1:
		s.displayVehicles(s.service.AllVehicles(s.session))
	case 2:
		return s.addVehicle()
	case 3:
		return s.updateVehicleStatus()
	case 4:
		s.displayBookings(s.service.AllBookings(s.session))
	case 5:
		s.logout()
	default:
		fmt.Fprintln(s.out, "Invalid option.")
	}
	return true
}

func (s *Shell) customerMenu() bool {
	fmt.Fprintln(s.out, "\n=== CUSTOMER MENU ===")
	fmt.Fprintln(s.out, "1. View available vehicles")
	fmt.Fprintln(s.out, "2. Make a booking")
	fmt.Fprintln(s.out, "3. View my bookings")
	fmt.Fprintln(s.out, "4. Return a vehicle")
	fmt.Fprintln(s.out, "5. Logout")

	choice, ok := s.promptInt("Select an option: ")
	if !ok {
		return false
	}

	switch choice {
	case 1:
		s.displayVehicles(s.service.AvailableVehicles())
	case 2:
		return s.makeBooking()
	case 3:
		s.displayBookings(s.service.MyBookings(s.session))
	case 4:
		return s.returnVehicle()
	case 5:
		s.logout()
	default:
		fmt.Fprintln(s.out, "Invalid option.")
	}
	return true
}

func (s *Shell) logout() {
	s.service.Logout(s.session)
	s.session = nil
}

func (s *Shell) addVehicle() bool {
	fmt.Fprintln(s.out, "\nAdd New Vehicle:")

	id, ok := s.prompt("ID: ")
	if !ok {
		return false
	}
	brand, ok := s.prompt("Brand: ")
	if !ok {
		return false
	}
	model, ok := s.prompt("Model: ")
	if !ok {
		return false
	}
	vehicleType, ok := s.promptVehicleType("Type (car/van/motorcycle): ")
	if !ok {
		return false
	}
	capacity, ok := s.promptInt("Capacity: ")
	if !ok {
		return false
	}
	rate, ok := s.promptFloat("Daily Rate: ")
	if !ok {
		return false
	}

	vehicle := models.Vehicle{
		ID:        id,
		Brand:     brand,
		Model:     model,
		Type:      vehicleType,
		Capacity:  capacity,
		DailyRate: rate,
	}
	if err := s.service.AddVehicle(s.session, vehicle); err != nil {
		fmt.Fprintf(s.out, "Failed to add vehicle: %v\n", err)
	} else {
		fmt.Fprintln(s.out, "Vehicle added successfully!")
	}
	return true
}

func (s *Shell) updateVehicleStatus() bool {
	fmt.Fprintln(s.out, "\nUpdate Vehicle Status:")
	s.displayVehicles(s.service.AllVehicles(s.session))

	id, ok := s.prompt("Enter vehicle ID: ")
	if !ok {
		return false
	}
	status, ok := s.promptVehicleStatus("New status (available/booked/maintenance): ")
	if !ok {
		return false
	}

	if err := s.service.UpdateVehicleStatus(s.session, id, status); err != nil {
		fmt.Fprintf(s.out, "Failed to update status: %v\n", err)
	} else {
		fmt.Fprintln(s.out, "Vehicle status updated!")
	}
	return true
}

func (s *Shell) makeBooking() bool {
	fmt.Fprintln(s.out, "\nMake a Booking:")
	s.displayVehicles(s.service.AvailableVehicles())

	id, ok := s.prompt("Enter vehicle ID: ")
	if !ok {
		return false
	}
	start, ok := s.promptDate("Start date (YYYY-MM-DD): ")
	if !ok {
		return false
	}
	end, ok := s.promptDate("End date (YYYY-MM-DD): ")
	if !ok {
		return false
	}

	booking, err := s.service.MakeBooking(s.session, id, start, end)
	if err != nil {
		fmt.Fprintf(s.out, "Booking failed: %v\n", err)
	} else {
		fmt.Fprintf(s.out, "Booking successful! Total: $%.2f\n", booking.TotalCost)
	}
	return true
}

func (s *Shell) returnVehicle() bool {
	fmt.Fprintln(s.out, "\nReturn a Vehicle:")

	var active []models.Booking
	for _, b := range s.service.MyBookings(s.session) {
		if b.Status == models.BookingStatusActive {
			active = append(active, b)
		}
	}
	if len(active) == 0 {
		fmt.Fprintln(s.out, "You have no active bookings.")
		return true
	}
	s.displayBookings(active)

	id, ok := s.prompt("Enter booking ID to return: ")
	if !ok {
		return false
	}
	if err := s.service.ReturnVehicle(s.session, id); err != nil {
		fmt.Fprintf(s.out, "Failed to return vehicle: %v\n", err)
	} else {
		fmt.Fprintln(s.out, "Vehicle returned successfully!")
	}
	return true
}

func (s *Shell) displayVehicles(vehicles []models.Vehicle) {
	if len(vehicles) == 0 {
		fmt.Fprintln(s.out, "No vehicles found.")
		return
	}
	fmt.Fprintln(s.out, "\n=== VEHICLES ===")
	for _, v := range vehicles {
		fmt.Fprintln(s.out, v)
	}
}

func (s *Shell) displayBookings(bookings []models.Booking) {
	if len(bookings) == 0 {
		fmt.Fprintln(s.out, "No bookings found.")
		return
	}
	fmt.Fprintln(s.out, "\n=== BOOKINGS ===")
	for _, b := range bookings {
		fmt.Fprintln(s.out, b)
	}
}

// prompt reads one trimmed line; ok is false once input is exhausted.
func (s *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.scanner.Text()), true
}

// The typed prompt helpers re-prompt on malformed text so the core only
// ever receives well-typed values.

func (s *Shell) promptInt(label string) (int, bool) {
	for {
		text, ok := s.prompt(label)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			fmt.Fprintln(s.out, "Please enter a number.")
			continue
		}
		return n, true
	}
}

func (s *Shell) promptFloat(label string) (float64, bool) {
	for {
		text, ok := s.prompt(label)
		if !ok {
			return 0, false
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			fmt.Fprintln(s.out, "Please enter a number.")
			continue
		}
		return f, true
	}
}

func (s *Shell) promptDate(label string) (time.Time, bool) {
	for {
		text, ok := s.prompt(label)
		if !ok {
			return time.Time{}, false
		}
		d, err := time.Parse(dateLayout, text)
		if err != nil {
			fmt.Fprintln(s.out, "Please use the YYYY-MM-DD format.")
			continue
		}
		return d, true
	}
}

func (s *Shell) promptVehicleType(label string) (models.VehicleType, bool) {
	for {
		text, ok := s.prompt(label)
		if !ok {
			return "", false
		}
		t := models.VehicleType(strings.ToLower(text))
		if !models.IsValidVehicleType(t) {
			fmt.Fprintln(s.out, "Please enter car, van or motorcycle.")
			continue
		}
		return t, true
	}
}

func (s *Shell) promptVehicleStatus(label string) (models.VehicleStatus, bool) {
	for {
		text, ok := s.prompt(label)
		if !ok {
			return "", false
		}
		st := models.VehicleStatus(strings.ToLower(text))
		if !models.IsValidVehicleStatus(st) {
			fmt.Fprintln(s.out, "Please enter available, booked or maintenance.")
			continue
		}
		return st, true
	}
}
