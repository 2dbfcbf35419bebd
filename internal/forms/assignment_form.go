package forms

import (
	"strconv"
	"strings"

	"desguace-service/internal/model"
)

// AssignmentForm is the editable representation of an extraction event.
type AssignmentForm struct {
	VehicleID      string `json:"vehicle_id"`
	PartID         string `json:"part_id"`
	Quantity       string `json:"quantity"`
	Condition      string `json:"condition"`
	ExtractionDate string `json:"extraction_date"`
	UnitPrice      string `json:"unit_price"`
	Notes          string `json:"notes"`
}

// ToAssignment converts the form to a persistable assignment. Vehicle and
// part ids are required; blank quantity defaults to 1, blank unit price to
// 0, blank extraction date to today.
func (f AssignmentForm) ToAssignment() (model.Assignment, error) {
	var a model.Assignment

	vehicleID, err := strconv.ParseInt(strings.TrimSpace(f.VehicleID), 10, 64)
	if err != nil || vehicleID <= 0 {
		return a, &ValidationError{Field: "vehicle_id", Message: "must be a valid id"}
	}

	partID, err := strconv.ParseInt(strings.TrimSpace(f.PartID), 10, 64)
	if err != nil || partID <= 0 {
		return a, &ValidationError{Field: "part_id", Message: "must be a valid id"}
	}

	quantity, err := parseIntField("quantity", f.Quantity, 1)
	if err != nil {
		return a, err
	}
	if quantity < 1 {
		return a, &ValidationError{Field: "quantity", Message: "must be at least 1"}
	}

	condition, ok := model.ParsePartCondition(f.Condition)
	if !ok {
		return a, &ValidationError{Field: "condition", Message: "must be new, used or repaired"}
	}

	date, err := parseDateField("extraction_date", f.ExtractionDate)
	if err != nil {
		return a, err
	}

	price, err := parseFloatField("unit_price", f.UnitPrice, 0)
	if err != nil {
		return a, err
	}
	if price < 0 {
		return a, &ValidationError{Field: "unit_price", Message: "must not be negative"}
	}

	a = model.Assignment{
		VehicleID:      vehicleID,
		PartID:         partID,
		Quantity:       quantity,
		Condition:      condition,
		ExtractionDate: date,
		UnitPrice:      price,
		Notes:          strings.TrimSpace(f.Notes),
	}
	return a, nil
}

// FromAssignment converts a persisted assignment back to its form
// representation.
func FromAssignment(a model.Assignment) AssignmentForm {
	return AssignmentForm{
		VehicleID:      strconv.FormatInt(a.VehicleID, 10),
		PartID:         strconv.FormatInt(a.PartID, 10),
		Quantity:       strconv.Itoa(a.Quantity),
		Condition:      string(a.Condition),
		ExtractionDate: a.ExtractionDate,
		UnitPrice:      formatFloat(a.UnitPrice),
		Notes:          a.Notes,
	}
}
