package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"desguace-service/internal/model"
)

func TestVehicleCreateAndGet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	id, err := env.vehicleService.Create(ctx, testVehicle("1234BCD"))
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	got, err := env.vehicleService.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "1234BCD", got.Plate)
	assert.Equal(t, model.VehicleStatusComplete, got.Status)
}

func TestVehicleCreateRejectsDuplicatePlate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.vehicleService.Create(ctx, testVehicle("1234BCD"))
	require.NoError(t, err)

	_, err = env.vehicleService.Create(ctx, testVehicle("1234BCD"))
	assert.ErrorIs(t, err, ErrDuplicatePlate)
}

func TestVehicleCreateRejectsUnknownStatus(t *testing.T) {
	env := newTestEnv(t)

	v := testVehicle("1234BCD")
	v.Status = "scrapped"
	_, err := env.vehicleService.Create(context.Background(), v)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestVehicleGetByIDMissingReturnsNil(t *testing.T) {
	env := newTestEnv(t)

	got, err := env.vehicleService.GetByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestVehicleListPagination(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		v := testVehicle(fmt.Sprintf("%04dBCD", i+1))
		v.EntryDate = fmt.Sprintf("2024-01-%02d", i+1)
		_, err := env.vehicleService.Create(ctx, v)
		require.NoError(t, err)
	}

	page, err := env.vehicleService.List(ctx, ListVehiclesInput{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(12), page.Total)
	require.Len(t, page.Vehicles, DefaultPageSize)
	// Newest entry date first.
	assert.Equal(t, "2024-01-12", page.Vehicles[0].EntryDate)

	page, err = env.vehicleService.List(ctx, ListVehiclesInput{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(12), page.Total)
	assert.Len(t, page.Vehicles, 2)
}

func TestVehicleListFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	complete := testVehicle("1234BCD")
	_, err := env.vehicleService.Create(ctx, complete)
	require.NoError(t, err)

	dismantling := testVehicle("5678FGH")
	dismantling.Make = "Renault"
	dismantling.Model = "Clio"
	dismantling.Status = model.VehicleStatusDismantling
	_, err = env.vehicleService.Create(ctx, dismantling)
	require.NoError(t, err)

	status := model.VehicleStatusDismantling
	page, err := env.vehicleService.List(ctx, ListVehiclesInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Vehicles, 1)
	assert.Equal(t, "5678FGH", page.Vehicles[0].Plate)

	page, err = env.vehicleService.List(ctx, ListVehiclesInput{SearchTerm: "Clio"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
}

func TestVehicleListEmptyPageIsNotNil(t *testing.T) {
	env := newTestEnv(t)

	page, err := env.vehicleService.List(context.Background(), ListVehiclesInput{})
	require.NoError(t, err)
	assert.NotNil(t, page.Vehicles)
	assert.Empty(t, page.Vehicles)
	assert.Zero(t, page.Total)
}

func TestVehicleUpdateKeepsPlate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	id, err := env.vehicleService.Create(ctx, testVehicle("1234BCD"))
	require.NoError(t, err)

	updated := testVehicle("9999ZZZ")
	updated.Color = "azul"
	updated.Status = model.VehicleStatusDismantled
	require.NoError(t, env.vehicleService.Update(ctx, id, updated))

	got, err := env.vehicleService.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "1234BCD", got.Plate, "plate is immutable")
	assert.Equal(t, "azul", got.Color)
	assert.Equal(t, model.VehicleStatusDismantled, got.Status)
}

func TestVehicleDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	id, err := env.vehicleService.Create(ctx, testVehicle("1234BCD"))
	require.NoError(t, err)

	require.NoError(t, env.vehicleService.Delete(ctx, id))

	got, err := env.vehicleService.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestVehicleExistsPlateExcludesSelf(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	id, err := env.vehicleService.Create(ctx, testVehicle("1234BCD"))
	require.NoError(t, err)

	exists, err := env.vehicleService.ExistsPlate(ctx, "1234BCD", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = env.vehicleService.ExistsPlate(ctx, "1234BCD", id)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestVehicleSearch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.vehicleService.Create(ctx, testVehicle("1234BCD"))
	require.NoError(t, err)

	other := testVehicle("5678FGH")
	other.Make = "Renault"
	other.Model = "Clio"
	_, err = env.vehicleService.Create(ctx, other)
	require.NoError(t, err)

	found, err := env.vehicleService.Search(ctx, "Ibiza")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "1234BCD", found[0].Plate)

	found, err = env.vehicleService.Search(ctx, "5678")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "5678FGH", found[0].Plate)
}

func TestVehicleCountByMake(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i, make := range []string{"Seat", "Seat", "Renault"} {
		v := testVehicle(fmt.Sprintf("%04dBCD", i+1))
		v.Make = make
		_, err := env.vehicleService.Create(ctx, v)
		require.NoError(t, err)
	}

	counts, err := env.vehicleService.CountByMake(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, "Seat", counts[0].Make)
	assert.Equal(t, 2, counts[0].Total)
	assert.Equal(t, "Renault", counts[1].Make)
	assert.Equal(t, 1, counts[1].Total)
}

func TestVehicleTopByMileage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i, mileage := range []int{50000, 250000, 120000} {
		v := testVehicle(fmt.Sprintf("%04dBCD", i+1))
		v.Mileage = mileage
		_, err := env.vehicleService.Create(ctx, v)
		require.NoError(t, err)
	}

	top, err := env.vehicleService.TopByMileage(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, 250000, top[0].Mileage)
	assert.Equal(t, 120000, top[1].Mileage)
}
