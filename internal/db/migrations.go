package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS vehicles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		plate TEXT UNIQUE NOT NULL,
		make TEXT NOT NULL,
		model TEXT NOT NULL,
		year INTEGER NOT NULL,
		color TEXT,
		entry_date TEXT NOT NULL,
		status TEXT NOT NULL CHECK(status IN ('complete', 'dismantling', 'dismantled')),
		purchase_price REAL DEFAULT 0,
		mileage INTEGER DEFAULT 0,
		gps_location TEXT,
		notes TEXT
	);`,
	`CREATE TABLE IF NOT EXISTS parts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		code TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		category TEXT NOT NULL CHECK(category IN ('engine', 'body', 'interior', 'electronics', 'wheels', 'other')),
		sale_price REAL DEFAULT 0,
		available_stock INTEGER DEFAULT 0,
		minimum_stock INTEGER DEFAULT 1,
		storage_location TEXT,
		compatible_makes TEXT,
		image TEXT,
		description TEXT
	);`,
	`CREATE TABLE IF NOT EXISTS inventory_assignments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		vehicle_id INTEGER NOT NULL,
		part_id INTEGER NOT NULL,
		quantity INTEGER NOT NULL DEFAULT 1,
		condition TEXT NOT NULL CHECK(condition IN ('new', 'used', 'repaired')),
		extraction_date TEXT NOT NULL,
		unit_price REAL DEFAULT 0,
		notes TEXT,
		UNIQUE (vehicle_id, part_id),
		FOREIGN KEY (vehicle_id) REFERENCES vehicles(id) ON DELETE CASCADE,
		FOREIGN KEY (part_id) REFERENCES parts(id) ON DELETE CASCADE
	);`,
	`CREATE INDEX IF NOT EXISTS idx_vehicles_plate ON vehicles (plate);`,
	`CREATE INDEX IF NOT EXISTS idx_vehicles_status ON vehicles (status);`,
	`CREATE INDEX IF NOT EXISTS idx_vehicles_make ON vehicles (make);`,
	`CREATE INDEX IF NOT EXISTS idx_parts_code ON parts (code);`,
	`CREATE INDEX IF NOT EXISTS idx_parts_category ON parts (category);`,
	`CREATE INDEX IF NOT EXISTS idx_parts_name ON parts (name);`,
	`CREATE INDEX IF NOT EXISTS idx_assignments_vehicle ON inventory_assignments (vehicle_id);`,
	`CREATE INDEX IF NOT EXISTS idx_assignments_part ON inventory_assignments (part_id);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}

// Drop order respects the foreign keys: assignments first, vehicles last.
var dropStatements = []string{
	`DROP TABLE IF EXISTS inventory_assignments;`,
	`DROP TABLE IF EXISTS parts;`,
	`DROP TABLE IF EXISTS vehicles;`,
}

// Reset drops all three tables and recreates the schema. Destructive,
// development only.
func (s *Store) Reset() error {
	for _, stmt := range dropStatements {
		if err := s.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
	}
	s.log.Warn().Msg("database reset, recreating schema")
	return runMigrations(s.db)
}
