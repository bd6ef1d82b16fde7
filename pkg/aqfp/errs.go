package aqfp

import "errors"

var (
	// ErrUnsupportedCellNode indicates a cell node missing from the cell library.
	ErrUnsupportedCellNode = errors.New("aqfp: unsupported cell node")

	// ErrUnsupportedForecast indicates a forecast mode other than conservative, moderate or aggressive.
	ErrUnsupportedForecast = errors.New("aqfp: unsupported forecast mode")

	// ErrBadDepth indicates a bit depth that is not a positive multiple of 4.
	ErrBadDepth = errors.New("aqfp: bit depth must be a positive multiple of 4")

	// ErrBadClock indicates a non-positive cycle time or clock derate.
	ErrBadClock = errors.New("aqfp: cycle time and clock derate must be > 0")

	// ErrBadGeometry indicates a non-positive array dimension.
	ErrBadGeometry = errors.New("aqfp: array dimensions must be > 0")
)
