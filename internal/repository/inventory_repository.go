package repository

import (
	"context"

	"desguace-service/internal/db"
	"desguace-service/internal/model"
)

// detailColumns is the join projection shared by every detail read.
const detailSelect = `
	SELECT
		ia.id,
		ia.vehicle_id,
		ia.part_id,
		ia.quantity,
		ia.condition,
		ia.extraction_date,
		ia.unit_price,
		ia.notes,
		v.plate,
		v.make AS vehicle_make,
		v.model AS vehicle_model,
		p.code AS part_code,
		p.name AS part_name,
		p.category AS part_category
	FROM inventory_assignments ia
	INNER JOIN vehicles v ON ia.vehicle_id = v.id
	INNER JOIN parts p ON ia.part_id = p.id`

type InventoryRepository struct {
	store *db.Store
}

func NewInventoryRepository(store *db.Store) *InventoryRepository {
	return &InventoryRepository{store: store}
}

// WithTx returns a copy of the repository bound to a transaction-scoped
// store.
func (r *InventoryRepository) WithTx(tx *db.Store) *InventoryRepository {
	return &InventoryRepository{store: tx}
}

func (r *InventoryRepository) Insert(ctx context.Context, a *model.Assignment) (int64, error) {
	return r.store.InsertReturningID(ctx,
		`INSERT INTO inventory_assignments (
			vehicle_id, part_id, quantity, condition,
			extraction_date, unit_price, notes
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id`,
		a.VehicleID, a.PartID, a.Quantity, a.Condition,
		a.ExtractionDate, a.UnitPrice, a.Notes)
}

func (r *InventoryRepository) ListAll(ctx context.Context) ([]model.AssignmentDetail, error) {
	var details []model.AssignmentDetail
	err := r.store.QueryMany(ctx, &details,
		detailSelect+` ORDER BY ia.extraction_date DESC`)
	return details, err
}

func (r *InventoryRepository) ListByVehicle(ctx context.Context, vehicleID int64) ([]model.AssignmentDetail, error) {
	var details []model.AssignmentDetail
	err := r.store.QueryMany(ctx, &details,
		detailSelect+`
		 WHERE ia.vehicle_id = ?
		 ORDER BY ia.extraction_date DESC`, vehicleID)
	return details, err
}

func (r *InventoryRepository) ListByPart(ctx context.Context, partID int64) ([]model.AssignmentDetail, error) {
	var details []model.AssignmentDetail
	err := r.store.QueryMany(ctx, &details,
		detailSelect+`
		 WHERE ia.part_id = ?
		 ORDER BY ia.extraction_date DESC`, partID)
	return details, err
}

// Update overwrites the mutable fields of the assignment identified by its
// composite (vehicle, part) key.
func (r *InventoryRepository) Update(ctx context.Context, vehicleID, partID int64, a *model.Assignment) error {
	_, err := r.store.Execute(ctx,
		`UPDATE inventory_assignments SET
			quantity = ?, condition = ?, extraction_date = ?,
			unit_price = ?, notes = ?
		WHERE vehicle_id = ? AND part_id = ?`,
		a.Quantity, a.Condition, a.ExtractionDate,
		a.UnitPrice, a.Notes, vehicleID, partID)
	return err
}

func (r *InventoryRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.store.Execute(ctx, `DELETE FROM inventory_assignments WHERE id = ?`, id)
	return err
}

func (r *InventoryRepository) Exists(ctx context.Context, vehicleID, partID int64) (bool, error) {
	var count int64
	_, err := r.store.QueryOne(ctx, &count,
		`SELECT COUNT(*) AS count FROM inventory_assignments
		 WHERE vehicle_id = ? AND part_id = ?`, vehicleID, partID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// TotalQuantity sums the extracted quantities across all assignments,
// zero when the table is empty.
func (r *InventoryRepository) TotalQuantity(ctx context.Context) (int64, error) {
	var total int64
	_, err := r.store.QueryOne(ctx, &total,
		`SELECT COALESCE(SUM(quantity), 0) AS total FROM inventory_assignments`)
	return total, err
}
