package model

// VehicleStatus is the dismantling state of a vehicle.
type VehicleStatus string

const (
	VehicleStatusComplete    VehicleStatus = "complete"
	VehicleStatusDismantling VehicleStatus = "dismantling"
	VehicleStatusDismantled  VehicleStatus = "dismantled"
)

func (s VehicleStatus) Valid() bool {
	switch s {
	case VehicleStatusComplete, VehicleStatusDismantling, VehicleStatusDismantled:
		return true
	}
	return false
}

// ParseVehicleStatus returns the status for a raw string, false when unknown.
func ParseVehicleStatus(raw string) (VehicleStatus, bool) {
	s := VehicleStatus(raw)
	return s, s.Valid()
}

const (
	MinYear = 1900
)

type Vehicle struct {
	ID            int64         `gorm:"column:id" json:"id"`
	Plate         string        `gorm:"column:plate" json:"plate"`
	Make          string        `gorm:"column:make" json:"make"`
	Model         string        `gorm:"column:model" json:"model"`
	Year          int           `gorm:"column:year" json:"year"`
	Color         string        `gorm:"column:color" json:"color"`
	EntryDate     string        `gorm:"column:entry_date" json:"entry_date"` // ISO 8601 (YYYY-MM-DD)
	Status        VehicleStatus `gorm:"column:status" json:"status"`
	PurchasePrice float64       `gorm:"column:purchase_price" json:"purchase_price"`
	Mileage       int           `gorm:"column:mileage" json:"mileage"`
	GPSLocation   string        `gorm:"column:gps_location" json:"gps_location"` // free text "lat,lng"
	Notes         string        `gorm:"column:notes" json:"notes"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

// VehicleWithPartCount is a vehicle joined with the number of distinct
// parts assigned to it.
type VehicleWithPartCount struct {
	Vehicle   `gorm:"embedded"`
	PartCount int `gorm:"column:part_count" json:"part_count"`
}

// MakeCount is one row of the vehicles-per-make statistic.
type MakeCount struct {
	Make  string `gorm:"column:make" json:"make"`
	Total int    `gorm:"column:total" json:"total"`
}
