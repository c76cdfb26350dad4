package simulation

import (
	"time"

	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
)

// WorldActor is the "Brain". It exclusively owns the flock and the current
// viewport; goakt hands it one message at a time, which serialises every
// tick, spawn, resize and snapshot request.
type WorldActor struct {
	flock    *flock.Flock
	viewport flock.Viewport
	// Communication with UI
	snapshotCh chan<- *pb.FlockSnapshot
	// reused between ticks, never shared with a snapshot
	scratch []flock.Boid
	// --- Benchmark Stats ---
	tickCount   int
	spawnCount  int
	lastLogTime time.Time
}

// NewWorldActor creates the world logic unit around an existing flock.
func NewWorldActor(snapshotCh chan<- *pb.FlockSnapshot, f *flock.Flock, vp flock.Viewport) *WorldActor {
	return &WorldActor{
		flock:       f,
		viewport:    vp,
		snapshotCh:  snapshotCh,
		lastLogTime: time.Now(),
	}
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("World is starting with %d boids in %s", w.flock.Len(), w.viewport)
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		ctx.Logger().Info("World Started.")

	// The Main Simulation Step (Driven by the clock)
	case *Tick:
		w.tickCount++
		w.logBenchmarks(ctx)
		stepped := w.flock.Tick(w.viewport)
		w.pushSnapshot(stepped)

	case *SpawnRandom:
		if !w.viewport.Valid() {
			ctx.Logger().Warnf("ignoring random spawn of %d: viewport %s is invalid", msg.GetCount(), w.viewport)
			return
		}
		w.spawnCount += w.flock.SpawnRandom(w.viewport, int(msg.GetCount()))

	case *SpawnAt:
		w.flock.SpawnAt(msg.GetX(), msg.GetY())
		w.spawnCount++

	case *Resize:
		vp := flock.Viewport{Width: int(msg.GetWidth()), Height: int(msg.GetHeight())}
		if !vp.Valid() {
			ctx.Logger().Warnf("ignoring resize to %s", vp)
			return
		}
		if vp != w.viewport {
			ctx.Logger().Debugf("viewport %s -> %s", w.viewport, vp)
			w.viewport = vp
		}

	case *UpdateSettings:
		s := SettingsFromProto(msg)
		if err := s.Validate(); err != nil {
			ctx.Logger().Warnf("ignoring settings update: %v", err)
			return
		}
		w.flock.SetSettings(s)

	case *GetSnapshot:
		ctx.Response(w.buildSnapshot(false))

	default:
		ctx.Unhandled()
	}
}

func (w *WorldActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(w.lastLogTime) >= time.Second {
		ctx.Logger().Infof("📊 TICK RATE: %d/sec (Spawned: %d) | Boids: %d",
			w.tickCount, w.spawnCount, w.flock.Len())
		w.tickCount = 0
		w.spawnCount = 0
		w.lastLogTime = time.Now()
	}
}

func (w *WorldActor) pushSnapshot(stepped bool) {
	if w.snapshotCh == nil {
		return
	}
	select {
	case w.snapshotCh <- w.buildSnapshot(stepped):
	default:
		// UI busy, skip frame
	}
}

func (w *WorldActor) buildSnapshot(stepped bool) *FlockSnapshot {
	w.scratch = w.flock.Snapshot(w.scratch)
	return NewSnapshot(w.scratch, w.viewport, w.flock.Ticks(), stepped)
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("World is shutdown with %d boids after %d ticks", w.flock.Len(), w.flock.Ticks())
	return nil
}
