package service

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrDuplicatePlate      = errors.New("plate already exists")
	ErrDuplicateCode       = errors.New("part code already exists")
	ErrDuplicateAssignment = errors.New("part already assigned to this vehicle")
)

// DefaultPageSize matches the page length used by the listing screens.
const DefaultPageSize = 10
