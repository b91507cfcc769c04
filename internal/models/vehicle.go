package models

import "fmt"

// VehicleType classifies a fleet vehicle.
type VehicleType string

const (
	VehicleTypeCar        VehicleType = "car"
	VehicleTypeVan        VehicleType = "van"
	VehicleTypeMotorcycle VehicleType = "motorcycle"
)

// VehicleStatus is the availability state of a fleet vehicle.
type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "available"
	VehicleStatusBooked      VehicleStatus = "booked"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
)

// Vehicle represents a fleet vehicle. Status is owned by the vehicle
// registry and changes only through explicit status updates or as a side
// effect of booking and return.
type Vehicle struct {
	ID        string        `yaml:"id" json:"id"`
	Brand     string        `yaml:"brand" json:"brand"`
	Model     string        `yaml:"model" json:"model"`
	Type      VehicleType   `yaml:"type" json:"type"`
	Capacity  int           `yaml:"capacity" json:"capacity"`
	DailyRate float64       `yaml:"daily_rate" json:"daily_rate"`
	Status    VehicleStatus `yaml:"-" json:"status"`
}

// IsValidVehicleType checks if a vehicle type is valid
func IsValidVehicleType(t VehicleType) bool {
	switch t {
	case VehicleTypeCar, VehicleTypeVan, VehicleTypeMotorcycle:
		return true
	default:
		return false
	}
}

// IsValidVehicleStatus checks if a vehicle status is valid
func IsValidVehicleStatus(s VehicleStatus) bool {
	switch s {
	case VehicleStatusAvailable, VehicleStatusBooked, VehicleStatusMaintenance:
		return true
	default:
		return false
	}
}

// String renders the vehicle in the listing format used by the console shell.
func (v Vehicle) String() string {
	return fmt.Sprintf("%s: %s %s (%s, %d seats) - $%.2f/day - Status: %s",
		v.ID, v.Brand, v.Model, v.Type, v.Capacity, v.DailyRate, v.Status)
}
