package db

import "fmt"

// StorageError wraps an engine failure with the statement that caused it.
type StorageError struct {
	Op    string
	Query string
	Err   error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s failed: %v (query: %s)", e.Op, e.Err, e.Query)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
