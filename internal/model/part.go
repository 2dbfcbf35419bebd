package model

// PartCategory classifies a catalogued spare part.
type PartCategory string

const (
	PartCategoryEngine      PartCategory = "engine"
	PartCategoryBody        PartCategory = "body"
	PartCategoryInterior    PartCategory = "interior"
	PartCategoryElectronics PartCategory = "electronics"
	PartCategoryWheels      PartCategory = "wheels"
	PartCategoryOther       PartCategory = "other"
)

func (c PartCategory) Valid() bool {
	switch c {
	case PartCategoryEngine, PartCategoryBody, PartCategoryInterior,
		PartCategoryElectronics, PartCategoryWheels, PartCategoryOther:
		return true
	}
	return false
}

// ParsePartCategory returns the category for a raw string, false when unknown.
func ParsePartCategory(raw string) (PartCategory, bool) {
	c := PartCategory(raw)
	return c, c.Valid()
}

// StockStatus is derived from the stock counters, never stored.
type StockStatus string

const (
	StockStatusOut    StockStatus = "out"
	StockStatusLow    StockStatus = "low"
	StockStatusNormal StockStatus = "normal"
)

const DefaultMinimumStock = 1

type Part struct {
	ID              int64        `gorm:"column:id" json:"id"`
	Code            string       `gorm:"column:code" json:"code"`
	Name            string       `gorm:"column:name" json:"name"`
	Category        PartCategory `gorm:"column:category" json:"category"`
	SalePrice       float64      `gorm:"column:sale_price" json:"sale_price"`
	AvailableStock  int          `gorm:"column:available_stock" json:"available_stock"`
	MinimumStock    int          `gorm:"column:minimum_stock" json:"minimum_stock"`
	StorageLocation string       `gorm:"column:storage_location" json:"storage_location"`
	CompatibleMakes string       `gorm:"column:compatible_makes" json:"compatible_makes"` // comma list
	Image           string       `gorm:"column:image" json:"image"`                       // base64 or URI
	Description     string       `gorm:"column:description" json:"description"`
}

func (Part) TableName() string {
	return "parts"
}

// StockStatus reports out/low/normal from the stock counters.
func (p Part) StockStatus() StockStatus {
	switch {
	case p.AvailableStock == 0:
		return StockStatusOut
	case p.AvailableStock < p.MinimumStock:
		return StockStatusLow
	default:
		return StockStatusNormal
	}
}

// CategoryCount is one row of the parts-per-category statistic.
type CategoryCount struct {
	Category PartCategory `gorm:"column:category" json:"category"`
	Total    int          `gorm:"column:total" json:"total"`
}
