package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakesAreSorted(t *testing.T) {
	makes := Makes()
	require.NotEmpty(t, makes)
	assert.True(t, sort.StringsAreSorted(makes))
}

func TestModels(t *testing.T) {
	require.True(t, MakeExists("Seat"))
	models := Models("Seat")
	require.NotEmpty(t, models)
	assert.True(t, ModelExists("Seat", models[0]))

	assert.Empty(t, Models("NoSuchMake"))
	assert.False(t, MakeExists("NoSuchMake"))
	assert.False(t, ModelExists("Seat", "NoSuchModel"))
}

func TestModelsReturnsACopy(t *testing.T) {
	models := Models("Seat")
	require.NotEmpty(t, models)

	models[0] = "mutated"
	assert.NotEqual(t, "mutated", Models("Seat")[0])
}

func TestLocations(t *testing.T) {
	assert.NotEmpty(t, VehicleLocations())
	assert.NotEmpty(t, PartLocations())
}
