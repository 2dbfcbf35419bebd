package repository

import (
	"context"

	"desguace-service/internal/db"
	"desguace-service/internal/model"
)

type VehicleRepository struct {
	store *db.Store
}

func NewVehicleRepository(store *db.Store) *VehicleRepository {
	return &VehicleRepository{store: store}
}

// WithTx returns a copy of the repository bound to a transaction-scoped
// store.
func (r *VehicleRepository) WithTx(tx *db.Store) *VehicleRepository {
	return &VehicleRepository{store: tx}
}

func (r *VehicleRepository) Insert(ctx context.Context, v *model.Vehicle) (int64, error) {
	return r.store.InsertReturningID(ctx,
		`INSERT INTO vehicles (
			plate, make, model, year, color, entry_date,
			status, purchase_price, mileage, gps_location, notes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`,
		v.Plate, v.Make, v.Model, v.Year, v.Color, v.EntryDate,
		v.Status, v.PurchasePrice, v.Mileage, v.GPSLocation, v.Notes)
}

func (r *VehicleRepository) GetByID(ctx context.Context, id int64) (*model.Vehicle, error) {
	var v model.Vehicle
	found, err := r.store.QueryOne(ctx, &v,
		`SELECT * FROM vehicles WHERE id = ?`, id)
	if err != nil || !found {
		return nil, err
	}
	return &v, nil
}

// GetWithPartCount returns the vehicle together with the number of distinct
// parts assigned to it, zero when none.
func (r *VehicleRepository) GetWithPartCount(ctx context.Context, id int64) (*model.VehicleWithPartCount, error) {
	var v model.VehicleWithPartCount
	found, err := r.store.QueryOne(ctx, &v,
		`SELECT v.*, COUNT(ia.part_id) AS part_count
		 FROM vehicles v
		 LEFT JOIN inventory_assignments ia ON v.id = ia.vehicle_id
		 WHERE v.id = ?
		 GROUP BY v.id`, id)
	if err != nil || !found {
		return nil, err
	}
	return &v, nil
}

type VehicleListFilter struct {
	SearchTerm string
	Status     *model.VehicleStatus
}

// List returns one page of vehicles ordered by entry date descending, plus
// the total number of rows matching the filter. Page is 1-indexed.
func (r *VehicleRepository) List(ctx context.Context, filter VehicleListFilter, page, pageSize int) ([]model.Vehicle, int64, error) {
	var cond db.Conditions
	if filter.SearchTerm != "" {
		like := "%" + filter.SearchTerm + "%"
		cond.Add("(plate LIKE ? OR make LIKE ? OR model LIKE ?)", like, like, like)
	}
	if filter.Status != nil {
		cond.Add("status = ?", *filter.Status)
	}

	var total int64
	if _, err := r.store.QueryOne(ctx, &total,
		`SELECT COUNT(*) AS total FROM vehicles `+cond.Where(), cond.Args()...); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	var vehicles []model.Vehicle
	err := r.store.QueryMany(ctx, &vehicles,
		`SELECT * FROM vehicles `+cond.Where()+`
		 ORDER BY entry_date DESC
		 LIMIT ? OFFSET ?`, cond.Args(pageSize, offset)...)
	if err != nil {
		return nil, 0, err
	}
	return vehicles, total, nil
}

// Update overwrites every column except the immutable plate.
func (r *VehicleRepository) Update(ctx context.Context, id int64, v *model.Vehicle) error {
	_, err := r.store.Execute(ctx,
		`UPDATE vehicles SET
			make = ?, model = ?, year = ?, color = ?,
			entry_date = ?, status = ?, purchase_price = ?,
			mileage = ?, gps_location = ?, notes = ?
		WHERE id = ?`,
		v.Make, v.Model, v.Year, v.Color,
		v.EntryDate, v.Status, v.PurchasePrice,
		v.Mileage, v.GPSLocation, v.Notes, id)
	return err
}

// Delete removes the vehicle; assignments go with it via the cascade.
func (r *VehicleRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.store.Execute(ctx, `DELETE FROM vehicles WHERE id = ?`, id)
	return err
}

func (r *VehicleRepository) ExistsPlate(ctx context.Context, plate string, excludeID int64) (bool, error) {
	return r.store.Exists(ctx, "vehicles", "plate", plate, excludeID)
}

// Search is the unpaginated substring search across plate, make and model.
func (r *VehicleRepository) Search(ctx context.Context, term string) ([]model.Vehicle, error) {
	like := "%" + term + "%"
	var vehicles []model.Vehicle
	err := r.store.QueryMany(ctx, &vehicles,
		`SELECT * FROM vehicles
		 WHERE plate LIKE ? OR make LIKE ? OR model LIKE ?
		 ORDER BY entry_date DESC`, like, like, like)
	return vehicles, err
}

func (r *VehicleRepository) GetByStatus(ctx context.Context, status model.VehicleStatus) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	err := r.store.QueryMany(ctx, &vehicles,
		`SELECT * FROM vehicles WHERE status = ? ORDER BY entry_date DESC`, status)
	return vehicles, err
}

func (r *VehicleRepository) CountByMake(ctx context.Context) ([]model.MakeCount, error) {
	var counts []model.MakeCount
	err := r.store.QueryMany(ctx, &counts,
		`SELECT make, COUNT(*) AS total
		 FROM vehicles
		 GROUP BY make
		 ORDER BY total DESC`)
	return counts, err
}

func (r *VehicleRepository) TopByMileage(ctx context.Context, limit int) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	err := r.store.QueryMany(ctx, &vehicles,
		`SELECT * FROM vehicles ORDER BY mileage DESC LIMIT ?`, limit)
	return vehicles, err
}

func (r *VehicleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	_, err := r.store.QueryOne(ctx, &count, `SELECT COUNT(*) AS count FROM vehicles`)
	return count, err
}
