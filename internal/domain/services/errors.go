// Package services implements the puzzle generation engine.
package services

import "errors"

// Generation failures. All of them are fatal to the current Generate call.
var (
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrInfeasibleSpatial = errors.New("spatial relations require at least two people")
	ErrUnsatisfiable     = errors.New("no valid relations can be formed with the current configuration")
	ErrPathTooLong       = errors.New("requested path length exceeds available unique relations")
	ErrPathStalled       = errors.New("unable to find a valid relation for path construction")
)
