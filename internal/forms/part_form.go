package forms

import (
	"regexp"
	"strconv"
	"strings"

	"desguace-service/internal/model"
)

var codeRegexp = regexp.MustCompile(`^[A-Z0-9\-]+$`)

// PartForm is the editable representation of a catalogued part.
type PartForm struct {
	Code            string `json:"code"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	SalePrice       string `json:"sale_price"`
	AvailableStock  string `json:"available_stock"`
	MinimumStock    string `json:"minimum_stock"`
	StorageLocation string `json:"storage_location"`
	CompatibleMakes string `json:"compatible_makes"`
	Image           string `json:"image"`
	Description     string `json:"description"`
}

// ToPart converts the form to a persistable part. Defaults for blank
// fields: sale price = 0, available stock = 0, minimum stock = 1.
func (f PartForm) ToPart() (model.Part, error) {
	var p model.Part

	code := strings.ToUpper(strings.TrimSpace(f.Code))
	if !codeRegexp.MatchString(code) {
		return p, &ValidationError{Field: "code", Message: "must contain only letters, digits and hyphens"}
	}

	category, ok := model.ParsePartCategory(f.Category)
	if !ok {
		return p, &ValidationError{Field: "category", Message: "unknown category"}
	}

	price, err := parseFloatField("sale_price", f.SalePrice, 0)
	if err != nil {
		return p, err
	}
	if price < 0 {
		return p, &ValidationError{Field: "sale_price", Message: "must not be negative"}
	}

	stock, err := parseIntField("available_stock", f.AvailableStock, 0)
	if err != nil {
		return p, err
	}
	if stock < 0 {
		return p, &ValidationError{Field: "available_stock", Message: "must not be negative"}
	}

	minStock, err := parseIntField("minimum_stock", f.MinimumStock, model.DefaultMinimumStock)
	if err != nil {
		return p, err
	}
	if minStock < 1 {
		return p, &ValidationError{Field: "minimum_stock", Message: "must be at least 1"}
	}

	p = model.Part{
		Code:            code,
		Name:            strings.TrimSpace(f.Name),
		Category:        category,
		SalePrice:       price,
		AvailableStock:  stock,
		MinimumStock:    minStock,
		StorageLocation: strings.TrimSpace(f.StorageLocation),
		CompatibleMakes: strings.TrimSpace(f.CompatibleMakes),
		Image:           f.Image,
		Description:     strings.TrimSpace(f.Description),
	}
	return p, nil
}

// FromPart converts a persisted part back to its form representation.
func FromPart(p model.Part) PartForm {
	return PartForm{
		Code:            p.Code,
		Name:            p.Name,
		Category:        string(p.Category),
		SalePrice:       formatFloat(p.SalePrice),
		AvailableStock:  strconv.Itoa(p.AvailableStock),
		MinimumStock:    strconv.Itoa(p.MinimumStock),
		StorageLocation: p.StorageLocation,
		CompatibleMakes: p.CompatibleMakes,
		Image:           p.Image,
		Description:     p.Description,
	}
}
