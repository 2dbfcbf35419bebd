package service

import (
	"context"

	"desguace-service/internal/db"
	"desguace-service/internal/model"
	"desguace-service/internal/repository"
)

type InventoryService struct {
	store         *db.Store
	inventoryRepo *repository.InventoryRepository
	partRepo      *repository.PartRepository
	vehicleRepo   *repository.VehicleRepository
}

func NewInventoryService(
	store *db.Store,
	inventoryRepo *repository.InventoryRepository,
	partRepo *repository.PartRepository,
	vehicleRepo *repository.VehicleRepository,
) *InventoryService {
	return &InventoryService{
		store:         store,
		inventoryRepo: inventoryRepo,
		partRepo:      partRepo,
		vehicleRepo:   vehicleRepo,
	}
}

// Create assigns a part to a vehicle. A pair may only be assigned once; the
// unique index on (vehicle_id, part_id) backs this check up.
func (s *InventoryService) Create(ctx context.Context, a model.Assignment) (int64, error) {
	if !a.Condition.Valid() || a.Quantity < 1 {
		return 0, ErrInvalidInput
	}

	assigned, err := s.inventoryRepo.Exists(ctx, a.VehicleID, a.PartID)
	if err != nil {
		return 0, err
	}
	if assigned {
		return 0, ErrDuplicateAssignment
	}

	return s.inventoryRepo.Insert(ctx, &a)
}

// ListAll returns every assignment joined with its vehicle and part, newest
// extraction first.
func (s *InventoryService) ListAll(ctx context.Context) ([]model.AssignmentDetail, error) {
	return s.inventoryRepo.ListAll(ctx)
}

func (s *InventoryService) ListByVehicle(ctx context.Context, vehicleID int64) ([]model.AssignmentDetail, error) {
	return s.inventoryRepo.ListByVehicle(ctx, vehicleID)
}

func (s *InventoryService) ListByPart(ctx context.Context, partID int64) ([]model.AssignmentDetail, error) {
	return s.inventoryRepo.ListByPart(ctx, partID)
}

// Update overwrites quantity, condition, date, price and notes for the
// assignment identified by its (vehicle, part) pair.
func (s *InventoryService) Update(ctx context.Context, vehicleID, partID int64, a model.Assignment) error {
	if !a.Condition.Valid() || a.Quantity < 1 {
		return ErrInvalidInput
	}
	return s.inventoryRepo.Update(ctx, vehicleID, partID, &a)
}

// Delete removes one assignment by its surrogate id.
func (s *InventoryService) Delete(ctx context.Context, id int64) error {
	return s.inventoryRepo.Delete(ctx, id)
}

func (s *InventoryService) Exists(ctx context.Context, vehicleID, partID int64) (bool, error) {
	return s.inventoryRepo.Exists(ctx, vehicleID, partID)
}

// TotalPartsExtracted sums the quantities across all assignments, zero when
// there are none.
func (s *InventoryService) TotalPartsExtracted(ctx context.Context) (int64, error) {
	return s.inventoryRepo.TotalQuantity(ctx)
}

// ExtractPartResult carries the two ids generated by an extraction.
type ExtractPartResult struct {
	PartID       int64 `json:"part_id"`
	AssignmentID int64 `json:"assignment_id"`
}

// ExtractPart records a harvested part: it creates the part and its
// assignment to the vehicle in one transaction, so a failure on either side
// leaves nothing behind.
func (s *InventoryService) ExtractPart(ctx context.Context, vehicleID int64, part model.Part, assignment model.Assignment) (*ExtractPartResult, error) {
	if !part.Category.Valid() || !assignment.Condition.Valid() || assignment.Quantity < 1 {
		return nil, ErrInvalidInput
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrNotFound
	}

	taken, err := s.partRepo.ExistsCode(ctx, part.Code, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateCode
	}

	var result ExtractPartResult
	err = s.store.InTransaction(ctx, func(tx *db.Store) error {
		partID, err := s.partRepo.WithTx(tx).Insert(ctx, &part)
		if err != nil {
			return err
		}

		assignment.VehicleID = vehicleID
		assignment.PartID = partID
		assignmentID, err := s.inventoryRepo.WithTx(tx).Insert(ctx, &assignment)
		if err != nil {
			return err
		}

		result = ExtractPartResult{PartID: partID, AssignmentID: assignmentID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
