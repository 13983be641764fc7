package stipple

import "errors"

// Error taxonomy. All validation happens before any iteration begins:
// either an operation returns fully valid results or it returns one of
// these errors (possibly wrapped) and no partial output.
var (
	// ErrShape is returned when two grids expected to be congruent have
	// different dimensions, or when a grid is empty where content is
	// required.
	ErrShape = errors.New("stipple: shape mismatch")

	// ErrParameter is returned when a numeric argument lies outside its
	// documented valid range.
	ErrParameter = errors.New("stipple: parameter out of range")

	// ErrIO is returned when a raster file cannot be read, decoded, or
	// written.
	ErrIO = errors.New("stipple: image i/o failed")
)
