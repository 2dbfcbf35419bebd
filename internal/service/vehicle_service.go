package service

import (
	"context"

	"desguace-service/internal/model"
	"desguace-service/internal/repository"
)

type VehicleService struct {
	vehicleRepo *repository.VehicleRepository
}

func NewVehicleService(vehicleRepo *repository.VehicleRepository) *VehicleService {
	return &VehicleService{vehicleRepo: vehicleRepo}
}

// Create inserts a new vehicle after checking the plate is not taken and
// returns the generated id.
func (s *VehicleService) Create(ctx context.Context, v model.Vehicle) (int64, error) {
	if !v.Status.Valid() {
		return 0, ErrInvalidInput
	}

	taken, err := s.vehicleRepo.ExistsPlate(ctx, v.Plate, 0)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, ErrDuplicatePlate
	}

	return s.vehicleRepo.Insert(ctx, &v)
}

type ListVehiclesInput struct {
	Page       int
	PageSize   int
	SearchTerm string
	Status     *model.VehicleStatus
}

type VehiclePage struct {
	Vehicles []model.Vehicle `json:"vehicles"`
	Total    int64           `json:"total"`
}

// List returns one page of vehicles, newest entry date first, together with
// the total count of rows matching the filter.
func (s *VehicleService) List(ctx context.Context, input ListVehiclesInput) (*VehiclePage, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.PageSize < 1 {
		input.PageSize = DefaultPageSize
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, ErrInvalidInput
	}

	filter := repository.VehicleListFilter{
		SearchTerm: input.SearchTerm,
		Status:     input.Status,
	}
	vehicles, total, err := s.vehicleRepo.List(ctx, filter, input.Page, input.PageSize)
	if err != nil {
		return nil, err
	}
	if vehicles == nil {
		vehicles = []model.Vehicle{}
	}
	return &VehiclePage{Vehicles: vehicles, Total: total}, nil
}

// GetByID returns the vehicle or nil when it does not exist.
func (s *VehicleService) GetByID(ctx context.Context, id int64) (*model.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

// GetWithPartCount returns the vehicle with its assigned-part count, or nil
// when it does not exist.
func (s *VehicleService) GetWithPartCount(ctx context.Context, id int64) (*model.VehicleWithPartCount, error) {
	return s.vehicleRepo.GetWithPartCount(ctx, id)
}

// Update overwrites all mutable fields. The plate is immutable after
// creation and is ignored here.
func (s *VehicleService) Update(ctx context.Context, id int64, v model.Vehicle) error {
	if !v.Status.Valid() {
		return ErrInvalidInput
	}
	return s.vehicleRepo.Update(ctx, id, &v)
}

// Delete removes the vehicle; its assignments are removed by the cascade.
func (s *VehicleService) Delete(ctx context.Context, id int64) error {
	return s.vehicleRepo.Delete(ctx, id)
}

// ExistsPlate probes plate uniqueness, optionally excluding the record
// being edited.
func (s *VehicleService) ExistsPlate(ctx context.Context, plate string, excludeID int64) (bool, error) {
	return s.vehicleRepo.ExistsPlate(ctx, plate, excludeID)
}

// Search runs the unpaginated substring search over plate, make and model.
func (s *VehicleService) Search(ctx context.Context, term string) ([]model.Vehicle, error) {
	return s.vehicleRepo.Search(ctx, term)
}

func (s *VehicleService) GetByStatus(ctx context.Context, status model.VehicleStatus) ([]model.Vehicle, error) {
	if !status.Valid() {
		return nil, ErrInvalidInput
	}
	return s.vehicleRepo.GetByStatus(ctx, status)
}

// CountByMake returns vehicle counts grouped by make, largest first.
func (s *VehicleService) CountByMake(ctx context.Context) ([]model.MakeCount, error) {
	return s.vehicleRepo.CountByMake(ctx)
}

// TopByMileage returns the limit highest-mileage vehicles.
func (s *VehicleService) TopByMileage(ctx context.Context, limit int) ([]model.Vehicle, error) {
	if limit < 1 {
		limit = 5
	}
	return s.vehicleRepo.TopByMileage(ctx, limit)
}
