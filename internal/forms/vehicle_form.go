package forms

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"desguace-service/internal/model"
)

// Spanish plate format: four digits followed by three letters.
var plateRegexp = regexp.MustCompile(`^\d{4}[A-Z]{3}$`)

var nonAlphanumeric = regexp.MustCompile(`[^0-9A-Z]`)

// VehicleForm is the editable representation of a vehicle. Numeric fields
// are strings to match the UI input model.
type VehicleForm struct {
	Plate         string `json:"plate"`
	Make          string `json:"make"`
	Model         string `json:"model"`
	Year          string `json:"year"`
	Color         string `json:"color"`
	EntryDate     string `json:"entry_date"`
	Status        string `json:"status"`
	PurchasePrice string `json:"purchase_price"`
	Mileage       string `json:"mileage"`
	GPSLocation   string `json:"gps_location"`
	Notes         string `json:"notes"`
}

// ToVehicle converts the form to a persistable vehicle. Defaults for blank
// fields: year = current year, purchase price = 0, mileage = 0, entry date =
// today.
func (f VehicleForm) ToVehicle() (model.Vehicle, error) {
	var v model.Vehicle

	plate := strings.ToUpper(strings.TrimSpace(f.Plate))
	if !plateRegexp.MatchString(plate) {
		return v, &ValidationError{Field: "plate", Message: "must match the 4-digit + 3-letter format"}
	}

	status, ok := model.ParseVehicleStatus(f.Status)
	if !ok {
		return v, &ValidationError{Field: "status", Message: "must be complete, dismantling or dismantled"}
	}

	currentYear := time.Now().Year()
	year, err := parseIntField("year", f.Year, currentYear)
	if err != nil {
		return v, err
	}
	if year < model.MinYear || year > currentYear {
		return v, &ValidationError{Field: "year", Message: "out of range"}
	}

	entryDate, err := parseDateField("entry_date", f.EntryDate)
	if err != nil {
		return v, err
	}

	price, err := parseFloatField("purchase_price", f.PurchasePrice, 0)
	if err != nil {
		return v, err
	}
	if price < 0 {
		return v, &ValidationError{Field: "purchase_price", Message: "must not be negative"}
	}

	mileage, err := parseIntField("mileage", f.Mileage, 0)
	if err != nil {
		return v, err
	}
	if mileage < 0 {
		return v, &ValidationError{Field: "mileage", Message: "must not be negative"}
	}

	v = model.Vehicle{
		Plate:         plate,
		Make:          strings.TrimSpace(f.Make),
		Model:         strings.TrimSpace(f.Model),
		Year:          year,
		Color:         strings.TrimSpace(f.Color),
		EntryDate:     entryDate,
		Status:        status,
		PurchasePrice: price,
		Mileage:       mileage,
		GPSLocation:   strings.TrimSpace(f.GPSLocation),
		Notes:         strings.TrimSpace(f.Notes),
	}
	return v, nil
}

// FromVehicle converts a persisted vehicle back to its form representation.
func FromVehicle(v model.Vehicle) VehicleForm {
	return VehicleForm{
		Plate:         v.Plate,
		Make:          v.Make,
		Model:         v.Model,
		Year:          strconv.Itoa(v.Year),
		Color:         v.Color,
		EntryDate:     v.EntryDate,
		Status:        string(v.Status),
		PurchasePrice: formatFloat(v.PurchasePrice),
		Mileage:       strconv.Itoa(v.Mileage),
		GPSLocation:   v.GPSLocation,
		Notes:         v.Notes,
	}
}

// FormatPlate strips everything that is not alphanumeric, uppercases the
// rest and truncates to the 4+3 plate shape. Purely mechanical: it does not
// check that the first block is digits or the second letters.
func FormatPlate(raw string) string {
	clean := nonAlphanumeric.ReplaceAllString(strings.ToUpper(raw), "")
	if len(clean) <= 4 {
		return clean
	}
	end := len(clean)
	if end > 7 {
		end = 7
	}
	return clean[:4] + clean[4:end]
}
