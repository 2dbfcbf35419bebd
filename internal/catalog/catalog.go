// Package catalog exposes the bundled read-only reference data: known
// makes with their models and the yard's storage locations. The data layer
// never writes to these.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
)

//go:embed data/vehicles.json
var vehiclesJSON []byte

//go:embed data/locations.json
var locationsJSON []byte

var makeModels map[string][]string

var storageLocations struct {
	Vehicles []string `json:"vehicles"`
	Parts    []string `json:"parts"`
}

func init() {
	if err := json.Unmarshal(vehiclesJSON, &makeModels); err != nil {
		panic(fmt.Sprintf("catalog: invalid vehicles.json: %v", err))
	}
	if err := json.Unmarshal(locationsJSON, &storageLocations); err != nil {
		panic(fmt.Sprintf("catalog: invalid locations.json: %v", err))
	}
}

// Makes returns every known make, sorted alphabetically.
func Makes() []string {
	makes := make([]string, 0, len(makeModels))
	for m := range makeModels {
		makes = append(makes, m)
	}
	sort.Strings(makes)
	return makes
}

// Models returns the models of one make, empty when the make is unknown.
func Models(makeName string) []string {
	models := makeModels[makeName]
	out := make([]string, len(models))
	copy(out, models)
	return out
}

func MakeExists(make string) bool {
	_, ok := makeModels[make]
	return ok
}

func ModelExists(make, model string) bool {
	for _, m := range makeModels[make] {
		if m == model {
			return true
		}
	}
	return false
}

// VehicleLocations returns the yard areas where whole vehicles are kept.
func VehicleLocations() []string {
	out := make([]string, len(storageLocations.Vehicles))
	copy(out, storageLocations.Vehicles)
	return out
}

// PartLocations returns the warehouse locations for harvested parts.
func PartLocations() []string {
	out := make([]string, len(storageLocations.Parts))
	copy(out, storageLocations.Parts)
	return out
}
