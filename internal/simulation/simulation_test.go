package simulation

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/protobuf/proto"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.Seed = 1
	cfg.InitialBoids = 0
	cfg.SpawnIntervalMs = 1
	cfg.TickRate = 1000
	return cfg
}

func newTestSimulation(t *testing.T, cfg *Config) *Simulation {
	t.Helper()
	ctx := context.Background()
	sim, err := New(ctx, cfg, WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, sim.Stop(ctx))
	})
	return sim
}

func snapshotLen(t *testing.T, sim *Simulation) int {
	t.Helper()
	snap, err := sim.Snapshot(context.Background())
	require.NoError(t, err)
	return len(snap.GetBoids())
}

func TestSimulation_TickThroughActor(t *testing.T) {
	ctx := context.Background()
	sim := newTestSimulation(t, testConfig())

	require.NoError(t, sim.SpawnAt(ctx, 0, 0))
	require.NoError(t, sim.SpawnAt(ctx, 100, 0))
	require.NoError(t, sim.Tick(ctx))

	snap, err := sim.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.GetBoids(), 2)
	assert.Equal(t, uint64(1), snap.GetTicks())
	assert.InDelta(t, 0.875, snap.GetBoids()[0].GetX(), 1e-12)
	assert.InDelta(t, 0.875, snap.GetBoids()[0].GetVx(), 1e-12)
	assert.InDelta(t, 99.125, snap.GetBoids()[1].GetX(), 1e-12)
	assert.Equal(t, int32(800), snap.GetWidth())

	select {
	case pushed := <-sim.Snapshots():
		assert.True(t, pushed.GetStepped())
		assert.Len(t, pushed.GetBoids(), 2)
	case <-time.After(time.Second):
		t.Fatal("no snapshot pushed after a tick")
	}
}

func TestSimulation_LoneBoidDoesNotMove(t *testing.T) {
	ctx := context.Background()
	sim := newTestSimulation(t, testConfig())

	require.NoError(t, sim.SpawnAt(ctx, 50, 60))
	require.NoError(t, sim.Tick(ctx))

	snap, err := sim.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.GetBoids(), 1)
	assert.Equal(t, 50.0, snap.GetBoids()[0].GetX())
	assert.Zero(t, snap.GetTicks())

	pushed := <-sim.Snapshots()
	assert.False(t, pushed.GetStepped())
}

func TestSimulation_SpawnRandomUsesViewport(t *testing.T) {
	ctx := context.Background()
	sim := newTestSimulation(t, testConfig())

	require.NoError(t, sim.Resize(ctx, 50, 40))
	require.NoError(t, sim.SpawnRandom(ctx, 25))
	require.NoError(t, sim.SpawnRandom(ctx, 0))

	snap, err := sim.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.GetBoids(), 25)
	assert.Equal(t, int32(50), snap.GetWidth())
	for _, b := range snap.GetBoids() {
		assert.Less(t, b.GetX(), 50.0)
		assert.Less(t, b.GetY(), 40.0)
	}
}

func TestSimulation_ResizeRejectsInvalidViewport(t *testing.T) {
	ctx := context.Background()
	sim := newTestSimulation(t, testConfig())

	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 100},
		{"negative height", 100, -1},
		{"width beyond int32", math.MaxInt32 + 1, 100},
		{"height beyond int32", 100, math.MaxInt32 + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, sim.Resize(ctx, tt.width, tt.height), ErrInvalidViewport)
		})
	}

	snap, err := sim.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(800), snap.GetWidth())
	assert.Equal(t, int32(600), snap.GetHeight())
}

func TestSimulation_RejectsInvalidSpawns(t *testing.T) {
	ctx := context.Background()
	sim := newTestSimulation(t, testConfig())

	assert.ErrorIs(t, sim.SpawnRandom(ctx, math.MaxInt32+1), ErrInvalidSpawn)
	assert.ErrorIs(t, sim.SpawnAt(ctx, math.NaN(), 1), ErrInvalidSpawn)
	assert.ErrorIs(t, sim.SpawnAt(ctx, 1, math.Inf(-1)), ErrInvalidSpawn)
	require.NoError(t, sim.SpawnAt(ctx, -1e300, 1e300))

	assert.Equal(t, 1, snapshotLen(t, sim))
}

func TestSimulation_UpdateSettings(t *testing.T) {
	ctx := context.Background()
	sim := newTestSimulation(t, testConfig())

	s := flock.DefaultSettings()
	s.MaxSpeed = 0.5
	require.NoError(t, sim.UpdateSettings(ctx, s))
	require.NoError(t, sim.SpawnAt(ctx, 0, 0))
	require.NoError(t, sim.SpawnAt(ctx, 300, 0))
	require.NoError(t, sim.Tick(ctx))

	snap, err := sim.Snapshot(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, snap.GetBoids()[0].GetVx(), 1e-9)

	s.CohesionDivisor = 0
	assert.ErrorIs(t, sim.UpdateSettings(ctx, s), flock.ErrInvalidSettings)
}

func TestSimulation_SpawnStreamLimit(t *testing.T) {
	sim := newTestSimulation(t, testConfig())

	at := geometry.Vector2D{X: 12, Y: 34}
	id, err := sim.StartSpawnStream(StreamSpec{At: &at, Limit: 5})
	require.NoError(t, err)
	assert.NotZero(t, id)

	require.Eventually(t, func() bool { return sim.ActiveStreams() == 0 }, 2*time.Second, 5*time.Millisecond)
	snap, err := sim.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.GetBoids(), 5)
	for _, b := range snap.GetBoids() {
		assert.Equal(t, 12.0, b.GetX())
		assert.Equal(t, 34.0, b.GetY())
	}
	assert.False(t, sim.StopSpawnStream(id), "finished streams are forgotten")
}

func TestSimulation_StopSpawnStream(t *testing.T) {
	sim := newTestSimulation(t, testConfig())

	id, err := sim.StartSpawnStream(StreamSpec{})
	require.NoError(t, err)
	require.Eventually(t, func() bool { return snapshotLen(t, sim) >= 3 }, 2*time.Second, 5*time.Millisecond)

	assert.True(t, sim.StopSpawnStream(id))
	assert.Zero(t, sim.ActiveStreams())

	// let in-flight messages land, then the population must hold still
	time.Sleep(20 * time.Millisecond)
	n := snapshotLen(t, sim)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, n, snapshotLen(t, sim))
}

func TestSimulation_StopAllStreams(t *testing.T) {
	sim := newTestSimulation(t, testConfig())
	for range 3 {
		_, err := sim.StartSpawnStream(StreamSpec{Interval: 5 * time.Millisecond})
		require.NoError(t, err)
	}
	assert.Equal(t, 3, sim.ActiveStreams())
	sim.StopAllStreams()
	assert.Zero(t, sim.ActiveStreams())
}

func TestSimulation_StartStreamsInitialPopulation(t *testing.T) {
	cfg := testConfig()
	cfg.InitialBoids = 4
	sim := newTestSimulation(t, cfg)

	id, err := sim.Start()
	require.NoError(t, err)
	assert.NotZero(t, id)
	require.Eventually(t, func() bool { return snapshotLen(t, sim) == 4 }, 2*time.Second, 5*time.Millisecond)
}

func TestSimulation_StartWithoutInitialBoids(t *testing.T) {
	sim := newTestSimulation(t, testConfig())
	id, err := sim.Start()
	require.NoError(t, err)
	assert.Zero(t, id)
	assert.Zero(t, sim.ActiveStreams())
}

func TestSimulation_RunClock(t *testing.T) {
	ctx := context.Background()
	sim := newTestSimulation(t, testConfig())
	require.NoError(t, sim.SpawnAt(ctx, 10, 10))
	require.NoError(t, sim.SpawnAt(ctx, 20, 20))

	require.NoError(t, sim.RunClock(ctx, 5))
	snap, err := sim.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), snap.GetTicks())
}

func TestSimulation_RunClockCancelled(t *testing.T) {
	sim := newTestSimulation(t, testConfig())
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, sim.RunClock(ctx, 0), context.DeadlineExceeded)
}

func TestSimulation_Deterministic(t *testing.T) {
	run := func() *FlockSnapshot {
		ctx := context.Background()
		sim := newTestSimulation(t, testConfig())
		require.NoError(t, sim.SpawnRandom(ctx, 20))
		for range 30 {
			require.NoError(t, sim.Tick(ctx))
		}
		snap, err := sim.Snapshot(ctx)
		require.NoError(t, err)
		return snap
	}
	a, b := run(), run()
	assert.True(t, proto.Equal(a, b), "same seed must give the same flock")
}

func TestSimulation_Stopped(t *testing.T) {
	ctx := context.Background()
	sim, err := New(ctx, testConfig())
	require.NoError(t, err)
	_, err = sim.StartSpawnStream(StreamSpec{})
	require.NoError(t, err)

	require.NoError(t, sim.Stop(ctx))
	require.NoError(t, sim.Stop(ctx), "Stop is idempotent")
	assert.Zero(t, sim.ActiveStreams())

	assert.ErrorIs(t, sim.Tick(ctx), ErrStopped)
	assert.ErrorIs(t, sim.SpawnAt(ctx, 1, 1), ErrStopped)
	_, err = sim.Snapshot(ctx)
	assert.ErrorIs(t, err, ErrStopped)
	_, err = sim.StartSpawnStream(StreamSpec{})
	assert.ErrorIs(t, err, ErrStopped)
	assert.ErrorIs(t, sim.RunClock(ctx, 1), ErrStopped)
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.ViewportWidth = -1
	_, err := New(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSimulations_Coexist(t *testing.T) {
	ctx := context.Background()
	a := newTestSimulation(t, testConfig())
	b := newTestSimulation(t, testConfig())

	require.NoError(t, a.SpawnAt(ctx, 1, 1))
	assert.Equal(t, 1, snapshotLen(t, a))
	assert.Equal(t, 0, snapshotLen(t, b))
}

func TestRunHeadless(t *testing.T) {
	cfg := testConfig()
	cfg.InitialBoids = 5

	snaps, err := RunHeadless(context.Background(), cfg, HeadlessOptions{
		Ticks:       40,
		Sims:        2,
		ReportEvery: 10 * time.Millisecond,
		Logger:      zaptest.NewLogger(t),
	})
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	for _, s := range snaps {
		require.NotNil(t, s)
		assert.LessOrEqual(t, len(s.GetBoids()), 5)
		assert.LessOrEqual(t, s.GetTicks(), uint64(40))
	}
}

func TestRunHeadless_Cancelled(t *testing.T) {
	cfg := testConfig()
	cfg.InitialBoids = 3
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	snaps, err := RunHeadless(ctx, cfg, HeadlessOptions{})
	require.NoError(t, err)
	require.Len(t, snaps, 1)
}
