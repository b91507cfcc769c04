package store

import (
	"errors"

	"github.com/autotrackdev/autotrack-rental/internal/models"
)

var (
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrDuplicateVehicle = errors.New("vehicle id already registered")
)

// VehicleRegistry defines the interface for fleet record operations.
type VehicleRegistry interface {
	Add(vehicle models.Vehicle) error
	SetStatus(vehicleID string, status models.VehicleStatus) bool
	FindByID(vehicleID string) (*models.Vehicle, error)
	FindAvailable() []models.Vehicle
	All() []models.Vehicle
}

// MemoryVehicleRegistry implements VehicleRegistry on an in-memory slice.
// Listings preserve insertion order. Vehicles are never removed.
type MemoryVehicleRegistry struct {
	vehicles []models.Vehicle
	index    map[string]int
}

// NewVehicleRegistry creates an empty in-memory vehicle registry.
func NewVehicleRegistry() *MemoryVehicleRegistry {
	return &MemoryVehicleRegistry{index: make(map[string]int)}
}

// Add inserts a new vehicle with its status forced to available. The
// caller is responsible for having authorized the insertion.
func (r *MemoryVehicleRegistry) Add(vehicle models.Vehicle) error {
	if _, exists := r.index[vehicle.ID]; exists {
		return ErrDuplicateVehicle
	}
	vehicle.Status = models.VehicleStatusAvailable
	r.index[vehicle.ID] = len(r.vehicles)
	r.vehicles = append(r.vehicles, vehicle)
	return nil
}

// SetStatus overwrites the status of the vehicle unconditionally; there is
// no legality check between the old and new status. Reports whether a
// vehicle with that ID exists.
func (r *MemoryVehicleRegistry) SetStatus(vehicleID string, status models.VehicleStatus) bool {
	i, exists := r.index[vehicleID]
	if !exists {
		return false
	}
	r.vehicles[i].Status = status
	return true
}

// FindByID returns a copy of the vehicle with the given ID.
func (r *MemoryVehicleRegistry) FindByID(vehicleID string) (*models.Vehicle, error) {
	i, exists := r.index[vehicleID]
	if !exists {
		return nil, ErrVehicleNotFound
	}
	vehicle := r.vehicles[i]
	return &vehicle, nil
}

// FindAvailable returns the vehicles whose status is available, in
// insertion order.
func (r *MemoryVehicleRegistry) FindAvailable() []models.Vehicle {
	var available []models.Vehicle
	for _, v := range r.vehicles {
		if v.Status == models.VehicleStatusAvailable {
			available = append(available, v)
		}
	}
	return available
}

// All returns every vehicle in insertion order.
func (r *MemoryVehicleRegistry) All() []models.Vehicle {
	out := make([]models.Vehicle, len(r.vehicles))
	copy(out, r.vehicles)
	return out
}
