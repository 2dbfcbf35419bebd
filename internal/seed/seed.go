// Package seed fills an empty database with sample data for development
// builds. It is excluded from production correctness guarantees: failures
// are logged and swallowed so the app never fails to start because sample
// data could not be written.
package seed

import (
	"context"

	"github.com/rs/zerolog"

	"desguace-service/internal/db"
	"desguace-service/internal/model"
	"desguace-service/internal/repository"
)

type Seeder struct {
	store         *db.Store
	vehicleRepo   *repository.VehicleRepository
	partRepo      *repository.PartRepository
	inventoryRepo *repository.InventoryRepository
	log           zerolog.Logger
}

func New(
	store *db.Store,
	vehicleRepo *repository.VehicleRepository,
	partRepo *repository.PartRepository,
	inventoryRepo *repository.InventoryRepository,
	log zerolog.Logger,
) *Seeder {
	return &Seeder{
		store:         store,
		vehicleRepo:   vehicleRepo,
		partRepo:      partRepo,
		inventoryRepo: inventoryRepo,
		log:           log,
	}
}

var sampleVehicles = []model.Vehicle{
	{
		Plate: "1234BCD", Make: "Seat", Model: "Ibiza", Year: 2015,
		Color: "Rojo", EntryDate: "2025-11-02", Status: model.VehicleStatusDismantling,
		PurchasePrice: 850, Mileage: 185000, GPSLocation: "40.4168,-3.7038",
		Notes: "Golpe frontal, motor intacto",
	},
	{
		Plate: "5678FGH", Make: "Renault", Model: "Clio", Year: 2012,
		Color: "Blanco", EntryDate: "2025-12-15", Status: model.VehicleStatusComplete,
		PurchasePrice: 600, Mileage: 210000,
	},
	{
		Plate: "9012JKL", Make: "Ford", Model: "Focus", Year: 2010,
		Color: "Azul", EntryDate: "2025-09-20", Status: model.VehicleStatusDismantled,
		PurchasePrice: 450, Mileage: 240000, Notes: "Solo queda la carroceria",
	},
}

var sampleParts = []model.Part{
	{
		Code: "MOT-1498", Name: "Motor 1.4 TDI", Category: model.PartCategoryEngine,
		SalePrice: 650, AvailableStock: 1, MinimumStock: 1,
		StorageLocation: "Contenedor motores", CompatibleMakes: "Seat,Volkswagen",
	},
	{
		Code: "ALT-0032", Name: "Alternador Valeo", Category: model.PartCategoryEngine,
		SalePrice: 85, AvailableStock: 4, MinimumStock: 2,
		StorageLocation: "Estanteria A1", CompatibleMakes: "Renault",
	},
	{
		Code: "RET-CLIO-D", Name: "Retrovisor derecho", Category: model.PartCategoryBody,
		SalePrice: 25, AvailableStock: 0, MinimumStock: 1,
		StorageLocation: "Estanteria B1", CompatibleMakes: "Renault",
	},
	{
		Code: "LLA-R16-5T", Name: "Llanta aleacion R16", Category: model.PartCategoryWheels,
		SalePrice: 40, AvailableStock: 8, MinimumStock: 4,
		StorageLocation: "Patio exterior", CompatibleMakes: "Ford,Seat",
	},
	{
		Code: "NAV-FOC-10", Name: "Unidad navegador", Category: model.PartCategoryElectronics,
		SalePrice: 120, AvailableStock: 1, MinimumStock: 2,
		StorageLocation: "Estanteria A2", CompatibleMakes: "Ford",
	},
}

// SeedIfEmpty inserts the sample batch when the vehicles table is empty.
// A second call is a no-op. Errors never propagate.
func (s *Seeder) SeedIfEmpty(ctx context.Context) {
	count, err := s.vehicleRepo.Count(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("seed check failed, skipping sample data")
		return
	}
	if count > 0 {
		s.log.Debug().Int64("vehicles", count).Msg("database not empty, skipping sample data")
		return
	}

	if err := s.seed(ctx); err != nil {
		s.log.Warn().Err(err).Msg("sample data seeding failed")
		return
	}
	s.log.Info().
		Int("vehicles", len(sampleVehicles)).
		Int("parts", len(sampleParts)).
		Msg("sample data seeded")
}

// seed writes all vehicles, parts and a few assignments in one transaction
// so a failure leaves the database empty rather than half-seeded.
func (s *Seeder) seed(ctx context.Context) error {
	return s.store.InTransaction(ctx, func(tx *db.Store) error {
		vehicleRepo := s.vehicleRepo.WithTx(tx)
		partRepo := s.partRepo.WithTx(tx)
		inventoryRepo := s.inventoryRepo.WithTx(tx)

		vehicleIDs := make([]int64, len(sampleVehicles))
		for i, v := range sampleVehicles {
			id, err := vehicleRepo.Insert(ctx, &v)
			if err != nil {
				return err
			}
			vehicleIDs[i] = id
		}

		partIDs := make([]int64, len(sampleParts))
		for i, p := range sampleParts {
			id, err := partRepo.Insert(ctx, &p)
			if err != nil {
				return err
			}
			partIDs[i] = id
		}

		assignments := []model.Assignment{
			{
				VehicleID: vehicleIDs[0], PartID: partIDs[0], Quantity: 1,
				Condition: model.PartConditionUsed, ExtractionDate: "2025-11-10",
				UnitPrice: 650,
			},
			{
				VehicleID: vehicleIDs[2], PartID: partIDs[3], Quantity: 4,
				Condition: model.PartConditionUsed, ExtractionDate: "2025-10-01",
				UnitPrice: 40, Notes: "Juego completo",
			},
			{
				VehicleID: vehicleIDs[2], PartID: partIDs[4], Quantity: 1,
				Condition: model.PartConditionRepaired, ExtractionDate: "2025-10-03",
				UnitPrice: 120,
			},
		}
		for _, a := range assignments {
			if _, err := inventoryRepo.Insert(ctx, &a); err != nil {
				return err
			}
		}
		return nil
	})
}
