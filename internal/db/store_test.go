package db

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"desguace-service/internal/config"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	cfg := &config.Config{DB: config.DBConfig{Path: ":memory:"}}
	store, err := New(cfg, zerolog.Nop())
	require.NoError(t, err)
	return store
}

func insertVehicle(t *testing.T, store *Store, plate string) int64 {
	t.Helper()
	id, err := store.InsertReturningID(context.Background(),
		`INSERT INTO vehicles (plate, make, model, year, entry_date, status)
		 VALUES (?, 'Seat', 'Ibiza', 2015, '2024-01-10', 'complete')
		 RETURNING id`, plate)
	require.NoError(t, err)
	return id
}

func TestExecuteReportsAffectedRows(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	insertVehicle(t, store, "1234BCD")
	insertVehicle(t, store, "5678FGH")

	affected, err := store.Execute(ctx, `UPDATE vehicles SET color = 'red'`)
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)
}

func TestInsertReturningID(t *testing.T) {
	store := newTestStore(t)

	first := insertVehicle(t, store, "1234BCD")
	second := insertVehicle(t, store, "5678FGH")

	assert.Greater(t, first, int64(0))
	assert.Greater(t, second, first)
}

func TestQueryOneNotFoundIsNotAnError(t *testing.T) {
	store := newTestStore(t)

	var plate string
	found, err := store.QueryOne(context.Background(), &plate,
		`SELECT plate FROM vehicles WHERE id = ?`, 999)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestQueryOneFindsRow(t *testing.T) {
	store := newTestStore(t)
	id := insertVehicle(t, store, "1234BCD")

	var plate string
	found, err := store.QueryOne(context.Background(), &plate,
		`SELECT plate FROM vehicles WHERE id = ?`, id)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "1234BCD", plate)
}

func TestExecuteWrapsErrors(t *testing.T) {
	store := newTestStore(t)

	insertVehicle(t, store, "1234BCD")
	_, err := store.Execute(context.Background(),
		`INSERT INTO vehicles (plate, make, model, year, entry_date, status)
		 VALUES ('1234BCD', 'Seat', 'Ibiza', 2015, '2024-01-10', 'complete')`)
	require.Error(t, err)

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "execute", storageErr.Op)
}

func TestExists(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	id := insertVehicle(t, store, "1234BCD")

	exists, err := store.Exists(ctx, "vehicles", "plate", "1234BCD", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.Exists(ctx, "vehicles", "plate", "9999ZZZ", 0)
	require.NoError(t, err)
	assert.False(t, exists)

	// Excluding the matching row itself: the edit flow.
	exists, err = store.Exists(ctx, "vehicles", "plate", "1234BCD", id)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestInTransactionRollsBackOnError(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := store.InTransaction(ctx, func(tx *Store) error {
		if _, err := tx.Execute(ctx,
			`INSERT INTO vehicles (plate, make, model, year, entry_date, status)
			 VALUES ('1234BCD', 'Seat', 'Ibiza', 2015, '2024-01-10', 'complete')`); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var count int64
	_, err = store.QueryOne(ctx, &count, `SELECT COUNT(*) AS count FROM vehicles`)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestInTransactionCommits(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.InTransaction(ctx, func(tx *Store) error {
		_, err := tx.Execute(ctx,
			`INSERT INTO vehicles (plate, make, model, year, entry_date, status)
			 VALUES ('1234BCD', 'Seat', 'Ibiza', 2015, '2024-01-10', 'complete')`)
		return err
	})
	require.NoError(t, err)

	var count int64
	_, err = store.QueryOne(ctx, &count, `SELECT COUNT(*) AS count FROM vehicles`)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestForeignKeyCascade(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	vehicleID := insertVehicle(t, store, "1234BCD")
	partID, err := store.InsertReturningID(ctx,
		`INSERT INTO parts (code, name, category) VALUES ('MOT-01', 'Motor', 'engine') RETURNING id`)
	require.NoError(t, err)

	_, err = store.Execute(ctx,
		`INSERT INTO inventory_assignments (vehicle_id, part_id, quantity, condition, extraction_date)
		 VALUES (?, ?, 1, 'used', '2024-01-12')`, vehicleID, partID)
	require.NoError(t, err)

	_, err = store.Execute(ctx, `DELETE FROM vehicles WHERE id = ?`, vehicleID)
	require.NoError(t, err)

	var count int64
	_, err = store.QueryOne(ctx, &count, `SELECT COUNT(*) AS count FROM inventory_assignments`)
	require.NoError(t, err)
	assert.Zero(t, count, "assignments must go with their vehicle")
}

func TestSchemaRejectsUnknownStatus(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Execute(context.Background(),
		`INSERT INTO vehicles (plate, make, model, year, entry_date, status)
		 VALUES ('1234BCD', 'Seat', 'Ibiza', 2015, '2024-01-10', 'scrapped')`)
	require.Error(t, err)
}

func TestSchemaRejectsDuplicateAssignmentPair(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	vehicleID := insertVehicle(t, store, "1234BCD")
	partID, err := store.InsertReturningID(ctx,
		`INSERT INTO parts (code, name, category) VALUES ('MOT-01', 'Motor', 'engine') RETURNING id`)
	require.NoError(t, err)

	insert := `INSERT INTO inventory_assignments (vehicle_id, part_id, quantity, condition, extraction_date)
		 VALUES (?, ?, 1, 'used', '2024-01-12')`
	_, err = store.Execute(ctx, insert, vehicleID, partID)
	require.NoError(t, err)
	_, err = store.Execute(ctx, insert, vehicleID, partID)
	require.Error(t, err)
}

func TestResetRecreatesEmptySchema(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	insertVehicle(t, store, "1234BCD")
	require.NoError(t, store.Reset())

	var count int64
	_, err := store.QueryOne(ctx, &count, `SELECT COUNT(*) AS count FROM vehicles`)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Schema is back: inserts work again.
	insertVehicle(t, store, "5678FGH")
}
