package core

import "errors"

var (
	// ErrDegenerateGeometry is returned for zero-length vectors and zero-area polygons
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrSingularMatrix is returned when a transform has no inverse
	ErrSingularMatrix = errors.New("singular matrix")

	// ErrInvalidDimensions is returned for render sizes the pixel grid cannot span
	ErrInvalidDimensions = errors.New("invalid image dimensions")
)
