package flock

import (
	"image/color"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

// Flock is an ordered, append-only population of boids plus the random
// source used to place and colour newcomers. It is an explicit value, so
// any number of independent simulations can live in the same process.
//
// A Flock is not safe for concurrent use; the owner serialises every call.
type Flock struct {
	boids    []Boid
	settings Settings
	rng      *rand.Rand
	stepper  Stepper
	ticks    uint64
}

// Option configures a Flock at construction time.
type Option func(*Flock)

// WithSeed makes spawning reproducible: two flocks built with the same seed
// and fed the same calls hold identical boids.
func WithSeed(seed uint64) Option {
	return func(f *Flock) {
		f.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithSettings replaces the default physics constants.
func WithSettings(s Settings) Option {
	return func(f *Flock) {
		f.settings = s
	}
}

// New returns an empty flock.
func New(opts ...Option) *Flock {
	f := &Flock{settings: DefaultSettings()}
	for _, opt := range opts {
		opt(f)
	}
	if f.rng == nil {
		f.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return f
}

// Settings returns the physics constants in use.
func (f *Flock) Settings() Settings { return f.settings }

// SetSettings swaps the physics constants; the next Tick uses them.
func (f *Flock) SetSettings(s Settings) { f.settings = s }

// Len is the population size.
func (f *Flock) Len() int { return len(f.boids) }

// Ticks is the number of ticks that actually advanced the flock.
func (f *Flock) Ticks() uint64 { return f.ticks }

// Boids returns a copy of the population in insertion order.
func (f *Flock) Boids() []Boid {
	return f.Snapshot(nil)
}

// Snapshot copies the population into dst, reusing its capacity.
func (f *Flock) Snapshot(dst []Boid) []Boid {
	return append(dst[:0], f.boids...)
}

// SpawnRandom appends count boids at uniformly random positions inside vp,
// at rest, each with its own random colour. It returns how many were added;
// count <= 0 adds nothing. The viewport is not validated: a zero viewport
// puts every newcomer at the origin.
func (f *Flock) SpawnRandom(vp Viewport, count int) int {
	if count <= 0 {
		return 0
	}
	w, h := float64(vp.Width), float64(vp.Height)
	f.boids = growBy(f.boids, count)
	for range count {
		f.boids = append(f.boids, Boid{
			Pos:   geometry.Vector2D{X: f.rng.Float64() * w, Y: f.rng.Float64() * h},
			Color: f.randomColor(),
		})
	}
	return count
}

// SpawnAt appends one boid at rest at exactly (x, y). Zero is a valid
// coordinate like any other.
func (f *Flock) SpawnAt(x, y float64) {
	f.boids = append(f.boids, Boid{
		Pos:   geometry.Vector2D{X: x, Y: y},
		Color: f.randomColor(),
	})
}

// Tick advances the flock one step inside vp. It reports false, and changes
// nothing, when there are fewer than two boids.
func (f *Flock) Tick(vp Viewport) bool {
	if !f.stepper.Step(f.boids, vp, f.settings) {
		return false
	}
	f.ticks++
	return true
}

func (f *Flock) randomColor() color.RGBA {
	return color.RGBA{
		R: uint8(f.rng.IntN(256)),
		G: uint8(f.rng.IntN(256)),
		B: uint8(f.rng.IntN(256)),
		A: 255,
	}
}

func growBy(s []Boid, n int) []Boid {
	if cap(s)-len(s) >= n {
		return s
	}
	out := make([]Boid, len(s), len(s)+n)
	copy(out, s)
	return out
}
