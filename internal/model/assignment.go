package model

// PartCondition describes the state of an extracted part.
type PartCondition string

const (
	PartConditionNew      PartCondition = "new"
	PartConditionUsed     PartCondition = "used"
	PartConditionRepaired PartCondition = "repaired"
)

func (c PartCondition) Valid() bool {
	switch c {
	case PartConditionNew, PartConditionUsed, PartConditionRepaired:
		return true
	}
	return false
}

// ParsePartCondition returns the condition for a raw string, false when unknown.
func ParsePartCondition(raw string) (PartCondition, bool) {
	c := PartCondition(raw)
	return c, c.Valid()
}

// Assignment is one extraction event: a part harvested from a vehicle.
// At most one assignment exists per (vehicle, part) pair.
type Assignment struct {
	ID             int64         `gorm:"column:id" json:"id"`
	VehicleID      int64         `gorm:"column:vehicle_id" json:"vehicle_id"`
	PartID         int64         `gorm:"column:part_id" json:"part_id"`
	Quantity       int           `gorm:"column:quantity" json:"quantity"`
	Condition      PartCondition `gorm:"column:condition" json:"condition"`
	ExtractionDate string        `gorm:"column:extraction_date" json:"extraction_date"` // ISO 8601 (YYYY-MM-DD)
	UnitPrice      float64       `gorm:"column:unit_price" json:"unit_price"`
	Notes          string        `gorm:"column:notes" json:"notes"`
}

func (Assignment) TableName() string {
	return "inventory_assignments"
}

// AssignmentDetail is an assignment joined with its vehicle and part.
type AssignmentDetail struct {
	Assignment   `gorm:"embedded"`
	Plate        string       `gorm:"column:plate" json:"plate"`
	VehicleMake  string       `gorm:"column:vehicle_make" json:"vehicle_make"`
	VehicleModel string       `gorm:"column:vehicle_model" json:"vehicle_model"`
	PartCode     string       `gorm:"column:part_code" json:"part_code"`
	PartName     string       `gorm:"column:part_name" json:"part_name"`
	PartCategory PartCategory `gorm:"column:part_category" json:"part_category"`
}
