package service

import (
	"context"

	"desguace-service/internal/model"
	"desguace-service/internal/repository"
)

type PartService struct {
	partRepo *repository.PartRepository
}

func NewPartService(partRepo *repository.PartRepository) *PartService {
	return &PartService{partRepo: partRepo}
}

// Create inserts a new part after checking the code is not taken and
// returns the generated id.
func (s *PartService) Create(ctx context.Context, p model.Part) (int64, error) {
	if !p.Category.Valid() {
		return 0, ErrInvalidInput
	}

	taken, err := s.partRepo.ExistsCode(ctx, p.Code, 0)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, ErrDuplicateCode
	}

	return s.partRepo.Insert(ctx, &p)
}

type ListPartsInput struct {
	Page       int
	PageSize   int
	SearchTerm string
}

type PartPage struct {
	Parts []model.Part `json:"parts"`
	Total int64        `json:"total"`
}

// List returns one page of parts ordered by name, together with the total
// count of rows matching the search term.
func (s *PartService) List(ctx context.Context, input ListPartsInput) (*PartPage, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.PageSize < 1 {
		input.PageSize = DefaultPageSize
	}

	parts, total, err := s.partRepo.List(ctx, input.SearchTerm, input.Page, input.PageSize)
	if err != nil {
		return nil, err
	}
	if parts == nil {
		parts = []model.Part{}
	}
	return &PartPage{Parts: parts, Total: total}, nil
}

// GetByID returns the part or nil when it does not exist.
func (s *PartService) GetByID(ctx context.Context, id int64) (*model.Part, error) {
	return s.partRepo.GetByID(ctx, id)
}

// Update overwrites all mutable fields. The code is immutable after
// creation and is ignored here.
func (s *PartService) Update(ctx context.Context, id int64, p model.Part) error {
	if !p.Category.Valid() {
		return ErrInvalidInput
	}
	return s.partRepo.Update(ctx, id, &p)
}

// Delete removes the part; its assignments are removed by the cascade.
func (s *PartService) Delete(ctx context.Context, id int64) error {
	return s.partRepo.Delete(ctx, id)
}

// ExistsCode probes code uniqueness, optionally excluding the record being
// edited.
func (s *PartService) ExistsCode(ctx context.Context, code string, excludeID int64) (bool, error) {
	return s.partRepo.ExistsCode(ctx, code, excludeID)
}

// Search runs the unpaginated substring search over name, code and
// category.
func (s *PartService) Search(ctx context.Context, term string) ([]model.Part, error) {
	return s.partRepo.Search(ctx, term)
}

// GetLowStock returns the parts whose available stock is below their
// minimum, for dashboards and alerts.
func (s *PartService) GetLowStock(ctx context.Context) ([]model.Part, error) {
	return s.partRepo.GetLowStock(ctx)
}

func (s *PartService) GetByCategory(ctx context.Context, category model.PartCategory) ([]model.Part, error) {
	if !category.Valid() {
		return nil, ErrInvalidInput
	}
	return s.partRepo.GetByCategory(ctx, category)
}

// CountByCategory returns part counts grouped by category, largest first.
func (s *PartService) CountByCategory(ctx context.Context) ([]model.CategoryCount, error) {
	return s.partRepo.CountByCategory(ctx)
}
