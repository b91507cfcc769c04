package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autotrackdev/autotrack-rental/internal/models"
)

func newTestVehicle(id string) models.Vehicle {
	return models.Vehicle{
		ID:        id,
		Brand:     "Toyota",
		Model:     "Corolla",
		Type:      models.VehicleTypeCar,
		Capacity:  5,
		DailyRate: 50.0,
	}
}

func TestMemoryVehicleRegistry_Add(t *testing.T) {
	registry := NewVehicleRegistry()

	vehicle := newTestVehicle("V001")
	vehicle.Status = models.VehicleStatusMaintenance // must be overridden

	err := registry.Add(vehicle)
	require.NoError(t, err)

	found, err := registry.FindByID("V001")
	require.NoError(t, err)
	assert.Equal(t, models.VehicleStatusAvailable, found.Status)
	assert.Equal(t, "Toyota", found.Brand)
}

func TestMemoryVehicleRegistry_AddDuplicate(t *testing.T) {
	registry := NewVehicleRegistry()

	require.NoError(t, registry.Add(newTestVehicle("V001")))
	err := registry.Add(newTestVehicle("V001"))
	assert.ErrorIs(t, err, ErrDuplicateVehicle)
	assert.Len(t, registry.All(), 1)
}

func TestMemoryVehicleRegistry_SetStatus(t *testing.T) {
	registry := NewVehicleRegistry()
	require.NoError(t, registry.Add(newTestVehicle("V001")))

	// Any transition is allowed, including booked -> maintenance.
	assert.True(t, registry.SetStatus("V001", models.VehicleStatusBooked))
	assert.True(t, registry.SetStatus("V001", models.VehicleStatusMaintenance))

	found, err := registry.FindByID("V001")
	require.NoError(t, err)
	assert.Equal(t, models.VehicleStatusMaintenance, found.Status)

	assert.False(t, registry.SetStatus("V999", models.VehicleStatusAvailable))
}

func TestMemoryVehicleRegistry_FindByID_NotFound(t *testing.T) {
	registry := NewVehicleRegistry()

	_, err := registry.FindByID("V404")
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestMemoryVehicleRegistry_FindAvailable(t *testing.T) {
	registry := NewVehicleRegistry()
	require.NoError(t, registry.Add(newTestVehicle("V001")))
	require.NoError(t, registry.Add(newTestVehicle("V002")))
	require.NoError(t, registry.Add(newTestVehicle("V003")))

	registry.SetStatus("V002", models.VehicleStatusBooked)

	available := registry.FindAvailable()
	require.Len(t, available, 2)
	// Insertion order preserved.
	assert.Equal(t, "V001", available[0].ID)
	assert.Equal(t, "V003", available[1].ID)
}

func TestMemoryVehicleRegistry_All_ReturnsCopies(t *testing.T) {
	registry := NewVehicleRegistry()
	require.NoError(t, registry.Add(newTestVehicle("V001")))

	all := registry.All()
	all[0].Status = models.VehicleStatusMaintenance

	found, err := registry.FindByID("V001")
	require.NoError(t, err)
	assert.Equal(t, models.VehicleStatusAvailable, found.Status)
}
