package cli

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autotrackdev/autotrack-rental/internal/auth"
	"github.com/autotrackdev/autotrack-rental/internal/rental"
	"github.com/autotrackdev/autotrack-rental/internal/seed"
	"github.com/autotrackdev/autotrack-rental/internal/store"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// run feeds the scripted lines to a fresh shell over the sample fleet and
// returns everything it printed. The shell exits when the script runs out.
func run(t *testing.T, lines ...string) string {
	t.Helper()

	vehicles := store.NewVehicleRegistry()
	users := store.NewUserDirectory()
	bookings := store.NewBookingLedger(vehicles)
	require.NoError(t, seed.Default().Apply(vehicles, users))

	sessions, err := auth.NewService()
	require.NoError(t, err)
	service := rental.NewService(vehicles, users, bookings, sessions)

	var out bytes.Buffer
	New(service, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out).Run()
	return out.String()
}

func TestShell_LoginFailure(t *testing.T) {
	out := run(t, "admin", "wrong")
	assert.Contains(t, out, "Invalid credentials. Please try again.")
}

func TestShell_AdminViewsFleet(t *testing.T) {
	out := run(t,
		"admin", "admin123",
		"1", // view all vehicles
		"5", // logout
	)

	assert.Contains(t, out, "Login successful! Welcome, System Admin")
	assert.Contains(t, out, "=== ADMIN MENU ===")
	assert.Contains(t, out, "V001: Toyota Corolla (car, 5 seats) - $50.00/day - Status: available")
	assert.Contains(t, out, "V004: Harley-Davidson Sportster (motorcycle, 2 seats) - $60.00/day - Status: available")
}

func TestShell_AdminAddsVehicle(t *testing.T) {
	out := run(t,
		"admin", "admin123",
		"2", // add vehicle
		"V005", "Tesla", "Model 3", "car", "5", "90",
		"1", // view all vehicles
	)

	assert.Contains(t, out, "Vehicle added successfully!")
	assert.Contains(t, out, "V005: Tesla Model 3 (car, 5 seats) - $90.00/day - Status: available")
}

func TestShell_CustomerBooksAndReturns(t *testing.T) {
	out := run(t,
		"john", "john123",
		"2", // make a booking
		"V001", "2024-01-01", "2024-01-05",
		"3", // my bookings
		"4", // return
		"B1",
		"5", // logout
	)

	assert.Contains(t, out, "=== CUSTOMER MENU ===")
	assert.Contains(t, out, "Booking successful! Total: $200.00")
	assert.Contains(t, out, "Booking B1: John Doe rented Corolla from 2024-01-01 to 2024-01-05 - Total: $200.00 - Status: active")
	assert.Contains(t, out, "Vehicle returned successfully!")
}

func TestShell_BookingConflictMessage(t *testing.T) {
	out := run(t,
		"john", "john123",
		"2",
		"V001", "2024-01-01", "2024-01-05",
		"2",
		"V001", "2024-01-03", "2024-01-10",
	)

	assert.Contains(t, out, "Booking failed: vehicle not available")
}

func TestShell_MalformedInputReprompts(t *testing.T) {
	out := run(t,
		"john", "john123",
		"2",
		"V001", "not-a-date", "2024-01-01", "2024-01-05",
	)

	assert.Contains(t, out, "Please use the YYYY-MM-DD format.")
	assert.Contains(t, out, "Booking successful!")
}

func TestShell_ReturnWithoutBookings(t *testing.T) {
	out := run(t,
		"jane", "jane123",
		"4",
	)

	assert.Contains(t, out, "You have no active bookings.")
}

func TestShell_InvalidMenuOption(t *testing.T) {
	out := run(t,
		"admin", "admin123",
		"9",
		"abc", "5",
	)

	assert.Contains(t, out, "Invalid option.")
	assert.Contains(t, out, "Please enter a number.")
}
