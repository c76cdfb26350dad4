package simulation

import "errors"

var (
	// ErrInvalidViewport is returned when a width or height is not strictly positive.
	ErrInvalidViewport = errors.New("viewport must have a positive width and height")
	// ErrInvalidSpawn is returned for a spawn count or position the world cannot take.
	ErrInvalidSpawn = errors.New("invalid spawn request")
	// ErrStopped is returned by every Simulation call made after Stop.
	ErrStopped = errors.New("simulation is stopped")
	// ErrInvalidConfig wraps every configuration failure.
	ErrInvalidConfig = errors.New("invalid configuration")
)
