package flock

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlock_SpawnRandomPlacement(t *testing.T) {
	f := New(WithSeed(3))
	added := f.SpawnRandom(screen, 500)
	require.Equal(t, 500, added)
	require.Equal(t, 500, f.Len())

	for i, b := range f.Boids() {
		if b.Pos.X < 0 || b.Pos.X >= float64(screen.Width) || b.Pos.Y < 0 || b.Pos.Y >= float64(screen.Height) {
			t.Errorf("boid %d spawned outside the viewport at %v", i, b.Pos)
		}
		assert.Zero(t, b.Vel.LenSqr(), "boid %d must start at rest", i)
		assert.Equal(t, uint8(255), b.Color.A, "boid %d must be opaque", i)
	}
}

func TestFlock_SpawnRandomNonPositiveCount(t *testing.T) {
	f := New(WithSeed(3))
	assert.Zero(t, f.SpawnRandom(screen, 0))
	assert.Zero(t, f.SpawnRandom(screen, -4))
	assert.Zero(t, f.Len())
}

func TestFlock_SpawnRandomZeroViewport(t *testing.T) {
	f := New(WithSeed(3))
	require.NotPanics(t, func() { f.SpawnRandom(Viewport{}, 3) })
	for _, b := range f.Boids() {
		assert.Zero(t, b.Pos.X)
		assert.Zero(t, b.Pos.Y)
	}
}

func TestFlock_SpawnAt(t *testing.T) {
	f := New(WithSeed(3))
	f.SpawnAt(0, 250)
	f.SpawnAt(0, 250)
	f.SpawnAt(-10, 1e4)

	got := f.Boids()
	require.Len(t, got, 3)
	assert.Equal(t, vec(0, 250), got[0].Pos, "zero is a valid coordinate")
	assert.Equal(t, got[0].Pos, got[1].Pos, "duplicates are allowed")
	assert.Equal(t, vec(-10, 1e4), got[2].Pos)
	for _, b := range got {
		assert.Zero(t, b.Vel.LenSqr())
	}
}

func TestFlock_PopulationNeverShrinks(t *testing.T) {
	f := New(WithSeed(11))
	prev := 0
	for i := range 100 {
		switch i % 3 {
		case 0:
			f.SpawnRandom(screen, i%5)
		case 1:
			f.SpawnAt(float64(i), float64(i))
		default:
			f.Tick(screen)
		}
		require.GreaterOrEqual(t, f.Len(), prev, "step %d", i)
		prev = f.Len()
	}
}

func TestFlock_InsertionOrderIsStable(t *testing.T) {
	f := New(WithSeed(5))
	f.SpawnAt(1, 1)
	f.SpawnAt(2, 2)
	f.SpawnAt(700, 500)
	colors := []uint32{}
	for _, b := range f.Boids() {
		colors = append(colors, uint32(b.Color.R)<<16|uint32(b.Color.G)<<8|uint32(b.Color.B))
	}
	for range 30 {
		f.Tick(screen)
	}
	for i, b := range f.Boids() {
		got := uint32(b.Color.R)<<16 | uint32(b.Color.G)<<8 | uint32(b.Color.B)
		assert.Equal(t, colors[i], got, "boid %d changed slot", i)
	}
}

func TestFlock_Deterministic(t *testing.T) {
	run := func() []Boid {
		f := New(WithSeed(2024))
		f.SpawnRandom(screen, 30)
		for i := range 90 {
			if i%10 == 0 {
				f.SpawnAt(float64(10*i), 300)
			}
			f.Tick(screen)
		}
		return f.Boids()
	}

	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Errorf("same seed produced different flocks (-first +second):\n%s", diff)
	}
}

func TestFlock_DifferentSeedsDiffer(t *testing.T) {
	a, b := New(WithSeed(1)), New(WithSeed(2))
	a.SpawnRandom(screen, 5)
	b.SpawnRandom(screen, 5)
	assert.NotEmpty(t, cmp.Diff(a.Boids(), b.Boids()))
}

func TestFlock_TickCounts(t *testing.T) {
	f := New(WithSeed(9))
	assert.False(t, f.Tick(screen))
	f.SpawnAt(100, 100)
	assert.False(t, f.Tick(screen), "a lone boid does not step")
	assert.Equal(t, vec(100, 100), f.Boids()[0].Pos)
	assert.Zero(t, f.Ticks())

	f.SpawnAt(150, 100)
	assert.True(t, f.Tick(screen))
	assert.True(t, f.Tick(screen))
	assert.Equal(t, uint64(2), f.Ticks())
}

func TestFlock_BoidsIsACopy(t *testing.T) {
	f := New(WithSeed(9))
	f.SpawnAt(1, 2)
	got := f.Boids()
	got[0].Pos.X = 99
	assert.Equal(t, 1.0, f.Boids()[0].Pos.X)

	buf := make([]Boid, 0, 8)
	buf = f.Snapshot(buf)
	assert.Len(t, buf, 1)
	assert.Equal(t, 8, cap(buf))
}

func TestFlock_WithSettings(t *testing.T) {
	s := DefaultSettings()
	s.MaxSpeed = 0.5
	f := New(WithSeed(9), WithSettings(s))
	f.SpawnAt(0, 0)
	f.SpawnAt(300, 0)
	f.Tick(screen)
	for _, b := range f.Boids() {
		assert.InDelta(t, 0.5, b.Speed(), 1e-9)
	}
	assert.Equal(t, s, f.Settings())
}

func TestSettings_Validate(t *testing.T) {
	require.NoError(t, DefaultSettings().Validate())

	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero max speed", func(s *Settings) { s.MaxSpeed = 0 }},
		{"negative radius", func(s *Settings) { s.SeparationRadius = -1 }},
		{"zero cohesion divisor", func(s *Settings) { s.CohesionDivisor = 0 }},
		{"zero alignment divisor", func(s *Settings) { s.AlignmentDivisor = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			err := s.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidSettings))
		})
	}
}

func TestViewport_Valid(t *testing.T) {
	assert.True(t, screen.Valid())
	assert.False(t, Viewport{Width: 0, Height: 600}.Valid())
	assert.False(t, Viewport{Width: 800, Height: -1}.Valid())
	assert.Equal(t, "800x600", screen.String())
}
