package repository

import (
	"context"

	"desguace-service/internal/db"
	"desguace-service/internal/model"
)

type PartRepository struct {
	store *db.Store
}

func NewPartRepository(store *db.Store) *PartRepository {
	return &PartRepository{store: store}
}

// WithTx returns a copy of the repository bound to a transaction-scoped
// store.
func (r *PartRepository) WithTx(tx *db.Store) *PartRepository {
	return &PartRepository{store: tx}
}

func (r *PartRepository) Insert(ctx context.Context, p *model.Part) (int64, error) {
	return r.store.InsertReturningID(ctx,
		`INSERT INTO parts (
			code, name, category, sale_price,
			available_stock, minimum_stock, storage_location,
			compatible_makes, image, description
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`,
		p.Code, p.Name, p.Category, p.SalePrice,
		p.AvailableStock, p.MinimumStock, p.StorageLocation,
		p.CompatibleMakes, p.Image, p.Description)
}

func (r *PartRepository) GetByID(ctx context.Context, id int64) (*model.Part, error) {
	var p model.Part
	found, err := r.store.QueryOne(ctx, &p,
		`SELECT * FROM parts WHERE id = ?`, id)
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

// List returns one page of parts ordered by name ascending, plus the total
// number of rows matching the search term. Page is 1-indexed.
func (r *PartRepository) List(ctx context.Context, searchTerm string, page, pageSize int) ([]model.Part, int64, error) {
	var cond db.Conditions
	if searchTerm != "" {
		like := "%" + searchTerm + "%"
		cond.Add("(name LIKE ? OR code LIKE ? OR category LIKE ?)", like, like, like)
	}

	var total int64
	if _, err := r.store.QueryOne(ctx, &total,
		`SELECT COUNT(*) AS total FROM parts `+cond.Where(), cond.Args()...); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	var parts []model.Part
	err := r.store.QueryMany(ctx, &parts,
		`SELECT * FROM parts `+cond.Where()+`
		 ORDER BY name ASC
		 LIMIT ? OFFSET ?`, cond.Args(pageSize, offset)...)
	if err != nil {
		return nil, 0, err
	}
	return parts, total, nil
}

// Update overwrites every column except the immutable code.
func (r *PartRepository) Update(ctx context.Context, id int64, p *model.Part) error {
	_, err := r.store.Execute(ctx,
		`UPDATE parts SET
			name = ?, category = ?, sale_price = ?,
			available_stock = ?, minimum_stock = ?,
			storage_location = ?, compatible_makes = ?,
			image = ?, description = ?
		WHERE id = ?`,
		p.Name, p.Category, p.SalePrice,
		p.AvailableStock, p.MinimumStock,
		p.StorageLocation, p.CompatibleMakes,
		p.Image, p.Description, id)
	return err
}

// Delete removes the part; assignments go with it via the cascade.
func (r *PartRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.store.Execute(ctx, `DELETE FROM parts WHERE id = ?`, id)
	return err
}

func (r *PartRepository) ExistsCode(ctx context.Context, code string, excludeID int64) (bool, error) {
	return r.store.Exists(ctx, "parts", "code", code, excludeID)
}

// Search is the unpaginated substring search across name, code and category.
func (r *PartRepository) Search(ctx context.Context, term string) ([]model.Part, error) {
	like := "%" + term + "%"
	var parts []model.Part
	err := r.store.QueryMany(ctx, &parts,
		`SELECT * FROM parts
		 WHERE name LIKE ? OR code LIKE ? OR category LIKE ?
		 ORDER BY name ASC`, like, like, like)
	return parts, err
}

// GetLowStock returns every part whose available stock has fallen below its
// minimum.
func (r *PartRepository) GetLowStock(ctx context.Context) ([]model.Part, error) {
	var parts []model.Part
	err := r.store.QueryMany(ctx, &parts,
		`SELECT * FROM parts WHERE available_stock < minimum_stock`)
	return parts, err
}

func (r *PartRepository) GetByCategory(ctx context.Context, category model.PartCategory) ([]model.Part, error) {
	var parts []model.Part
	err := r.store.QueryMany(ctx, &parts,
		`SELECT * FROM parts WHERE category = ? ORDER BY name ASC`, category)
	return parts, err
}

func (r *PartRepository) CountByCategory(ctx context.Context) ([]model.CategoryCount, error) {
	var counts []model.CategoryCount
	err := r.store.QueryMany(ctx, &counts,
		`SELECT category, COUNT(*) AS total
		 FROM parts
		 GROUP BY category
		 ORDER BY total DESC`)
	return counts, err
}
