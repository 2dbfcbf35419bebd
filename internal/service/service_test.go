package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"desguace-service/internal/config"
	"desguace-service/internal/db"
	"desguace-service/internal/model"
	"desguace-service/internal/repository"
)

type testEnv struct {
	store            *db.Store
	vehicleService   *VehicleService
	partService      *PartService
	inventoryService *InventoryService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{DB: config.DBConfig{Path: ":memory:"}}
	store, err := db.New(cfg, zerolog.Nop())
	require.NoError(t, err)

	vehicleRepo := repository.NewVehicleRepository(store)
	partRepo := repository.NewPartRepository(store)
	inventoryRepo := repository.NewInventoryRepository(store)

	return &testEnv{
		store:            store,
		vehicleService:   NewVehicleService(vehicleRepo),
		partService:      NewPartService(partRepo),
		inventoryService: NewInventoryService(store, inventoryRepo, partRepo, vehicleRepo),
	}
}

func testVehicle(plate string) model.Vehicle {
	return model.Vehicle{
		Plate:     plate,
		Make:      "Seat",
		Model:     "Ibiza",
		Year:      2015,
		EntryDate: "2024-01-10",
		Status:    model.VehicleStatusComplete,
		Mileage:   180000,
	}
}

func testPart(code string) model.Part {
	return model.Part{
		Code:           code,
		Name:           "Motor 1.4",
		Category:       model.PartCategoryEngine,
		SalePrice:      420,
		AvailableStock: 2,
		MinimumStock:   1,
	}
}

func testAssignment(vehicleID, partID int64) model.Assignment {
	return model.Assignment{
		VehicleID:      vehicleID,
		PartID:         partID,
		Quantity:       1,
		Condition:      model.PartConditionUsed,
		ExtractionDate: "2024-01-12",
		UnitPrice:      45.90,
	}
}
