package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/autotrackdev/autotrack-rental/internal/models"
	"github.com/autotrackdev/autotrack-rental/internal/store"
)

// Data is the payload of the external initializer: the fleet and the
// accounts loaded into the stores at startup. The core never creates
// users at runtime, so this is the only way accounts come into being.
type Data struct {
	Vehicles []models.Vehicle `yaml:"vehicles"`
	Users    []models.User    `yaml:"users"`
}

// Load reads seed data from a YAML file
func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("invalid seed data: %w", err)
	}

	return &data, nil
}

// Validate checks the seed records for well-formed values.
func (d *Data) Validate() error {
	for _, v := range d.Vehicles {
		if v.ID == "" {
			return fmt.Errorf("vehicle with empty id")
		}
		if !models.IsValidVehicleType(v.Type) {
			return fmt.Errorf("vehicle %s: invalid type %q", v.ID, v.Type)
		}
		if v.Capacity <= 0 {
			return fmt.Errorf("vehicle %s: capacity must be positive", v.ID)
		}
		if v.DailyRate < 0 {
			return fmt.Errorf("vehicle %s: daily rate must not be negative", v.ID)
		}
	}
	for _, u := range d.Users {
		if u.ID == "" || u.Username == "" {
			return fmt.Errorf("user with empty id or username")
		}
		if !models.IsValidRole(u.Role) {
			return fmt.Errorf("user %s: invalid role %q", u.ID, u.Role)
		}
	}
	return nil
}

// Apply inserts the seed records into the stores.
func (d *Data) Apply(vehicles store.VehicleRegistry, users store.UserDirectory) error {
	for _, v := range d.Vehicles {
		if err := vehicles.Add(v); err != nil {
			return fmt.Errorf("failed to seed vehicle %s: %w", v.ID, err)
		}
	}
	for _, u := range d.Users {
		if err := users.Add(u); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.ID, err)
		}
	}
	return nil
}

// Default returns the built-in sample fleet and accounts.
func Default() *Data {
	return &Data{
		Vehicles: []models.Vehicle{
			{ID: "V001", Brand: "Toyota", Model: "Corolla", Type: models.VehicleTypeCar, Capacity: 5, DailyRate: 50.0},
			{ID: "V002", Brand: "Honda", Model: "CR-V", Type: models.VehicleTypeCar, Capacity: 5, DailyRate: 70.0},
			{ID: "V003", Brand: "Ford", Model: "Transit", Type: models.VehicleTypeVan, Capacity: 12, DailyRate: 100.0},
			{ID: "V004", Brand: "Harley-Davidson", Model: "Sportster", Type: models.VehicleTypeMotorcycle, Capacity: 2, DailyRate: 60.0},
		},
		Users: []models.User{
			{ID: "ADM001", Username: "admin", Password: "admin123", Name: "System Admin", Role: models.RoleAdmin},
			{ID: "CUS001", Username: "john", Password: "john123", Name: "John Doe", Role: models.RoleCustomer},
			{ID: "CUS002", Username: "jane", Password: "jane123", Name: "Jane Smith", Role: models.RoleCustomer},
		},
	}
}
