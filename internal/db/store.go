package db

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Store wraps the shared database handle with parameterized execution
// primitives. It is constructed once by New and injected into every
// repository; inside InTransaction a transaction-scoped Store is used
// instead.
type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Execute runs an INSERT, UPDATE or DELETE and returns the number of
// affected rows.
func (s *Store) Execute(ctx context.Context, query string, args ...any) (int64, error) {
	res := s.db.WithContext(ctx).Exec(query, args...)
	if res.Error != nil {
		return 0, s.fail("execute", query, res.Error)
	}
	return res.RowsAffected, nil
}

// InsertReturningID runs an INSERT ... RETURNING id statement and returns the
// generated key.
func (s *Store) InsertReturningID(ctx context.Context, query string, args ...any) (int64, error) {
	var id int64
	res := s.db.WithContext(ctx).Raw(query, args...).Scan(&id)
	if res.Error != nil {
		return 0, s.fail("insert", query, res.Error)
	}
	return id, nil
}

// QueryOne scans the first row into dest. It reports false when the query
// matched no rows; that is not an error.
func (s *Store) QueryOne(ctx context.Context, dest any, query string, args ...any) (bool, error) {
	res := s.db.WithContext(ctx).Raw(query, args...).Scan(dest)
	if res.Error != nil {
		return false, s.fail("query one", query, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// QueryMany scans all rows into dest, which must be a pointer to a slice.
// Row order is whatever the SQL specifies.
func (s *Store) QueryMany(ctx context.Context, dest any, query string, args ...any) error {
	if err := s.db.WithContext(ctx).Raw(query, args...).Scan(dest).Error; err != nil {
		return s.fail("query many", query, err)
	}
	return nil
}

// Exists reports whether a row with column = value exists in table,
// optionally excluding one id (pass 0 to exclude nothing, for edit flows).
// Table and column are trusted identifiers supplied by repositories, never
// user input; value is always bound as a parameter.
func (s *Store) Exists(ctx context.Context, table, column string, value any, excludeID int64) (bool, error) {
	query := fmt.Sprintf("SELECT COUNT(*) AS count FROM %s WHERE %s = ?", table, column)
	args := []any{value}
	if excludeID != 0 {
		query += " AND id != ?"
		args = append(args, excludeID)
	}

	var count int64
	if _, err := s.QueryOne(ctx, &count, query, args...); err != nil {
		return false, err
	}
	return count > 0, nil
}

// InTransaction runs fn with every contained write atomic. An error (or
// panic) inside rolls the whole transaction back and the error is returned
// to the caller; otherwise the transaction commits.
func (s *Store) InTransaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx, log: s.log})
	})
}

func (s *Store) fail(op, query string, err error) error {
	s.log.Error().Err(err).Str("query", query).Msg("query failed")
	return &StorageError{Op: op, Query: query, Err: err}
}
