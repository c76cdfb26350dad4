// Package flock implements the boids flocking model: a population of
// simple agents that move across a bounded viewport and, on every tick,
// steer toward the centre of the others (cohesion), away from anyone too
// close (separation) and toward the average heading (alignment).
//
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds, and related group motion.
// The name "boid" corresponds to a shortened version of "bird-oid object".
// https://en.wikipedia.org/wiki/Boids
//
// The package is a pure state update. It owns no goroutine, no clock and no
// renderer; callers drive it one Tick at a time and must serialise access.
package flock

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

// Default physics constants.
const (
	DefaultMaxSpeed         = 7.0
	DefaultSeparationRadius = 10.0
	DefaultCohesionDivisor  = 100.0
	DefaultAlignmentDivisor = 8.0
)

// ErrInvalidSettings is wrapped by Settings.Validate.
var ErrInvalidSettings = errors.New("invalid flock settings")

// Boid is a single member of the flock.
// Fields are exported so renderers and codecs can read them directly.
type Boid struct {
	Pos   geometry.Vector2D
	Vel   geometry.Vector2D
	Color color.RGBA
}

// Speed is the length of the velocity.
func (b Boid) Speed() float64 {
	return b.Vel.Len()
}

// Viewport is the drawable area. It is read fresh on every tick and every
// random spawn so the host can resize it at will.
type Viewport struct {
	Width  int
	Height int
}

// Valid reports whether both dimensions are strictly positive.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

func (v Viewport) String() string {
	return fmt.Sprintf("%dx%d", v.Width, v.Height)
}

// Settings controls the physics constants of the simulation.
type Settings struct {
	MaxSpeed         float64 // hard upper bound on |velocity| after the force pass
	SeparationRadius float64 // others strictly closer than this push the boid away
	CohesionDivisor  float64 // larger is a weaker pull toward the centre of the others
	AlignmentDivisor float64 // larger is a weaker pull toward the mean velocity
}

// DefaultSettings returns the classic constants.
func DefaultSettings() Settings {
	return Settings{
		MaxSpeed:         DefaultMaxSpeed,
		SeparationRadius: DefaultSeparationRadius,
		CohesionDivisor:  DefaultCohesionDivisor,
		AlignmentDivisor: DefaultAlignmentDivisor,
	}
}

// Validate checks every constant is strictly positive.
func (s Settings) Validate() error {
	switch {
	case !(s.MaxSpeed > 0):
		return fmt.Errorf("%w: maxSpeed must be > 0, got %v", ErrInvalidSettings, s.MaxSpeed)
	case !(s.SeparationRadius > 0):
		return fmt.Errorf("%w: separationRadius must be > 0, got %v", ErrInvalidSettings, s.SeparationRadius)
	case !(s.CohesionDivisor > 0):
		return fmt.Errorf("%w: cohesionDivisor must be > 0, got %v", ErrInvalidSettings, s.CohesionDivisor)
	case !(s.AlignmentDivisor > 0):
		return fmt.Errorf("%w: alignmentDivisor must be > 0, got %v", ErrInvalidSettings, s.AlignmentDivisor)
	}
	return nil
}
