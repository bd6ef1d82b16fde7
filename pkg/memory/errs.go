package memory

import "errors"

var (
	// ErrUnsupportedCellType indicates a cell type missing from the estimator's table.
	ErrUnsupportedCellType = errors.New("memory: unsupported cell type")

	// ErrBadGeometry indicates a non-positive width, depth or line count.
	ErrBadGeometry = errors.New("memory: array dimensions must be > 0")

	// ErrBadClock indicates a non-positive cycle time or time bin.
	ErrBadClock = errors.New("memory: cycle time must be > 0")
)
