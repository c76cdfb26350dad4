package simulation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/kamstrup/intmap"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

const askTimeout = 5 * time.Second

// Simulation is the front door to one running flock: an actor system that
// hosts the world actor, the snapshot channel the world pushes into, and the
// spawn streams feeding it. Every method is safe for concurrent use.
type Simulation struct {
	cfg       *Config
	logger    *zap.Logger
	actorLog  golog.Logger
	system    actor.ActorSystem
	world     *actor.PID
	snapshots chan *FlockSnapshot
	sequence  atomic.Uint64

	// streams live on base, not on the caller's context
	base       context.Context
	cancelBase context.CancelFunc

	mu      sync.Mutex
	streams *intmap.Map[uint64, *Repeater]
	nextID  uint64
	stopped bool
	reapers sync.WaitGroup
}

type Option func(*Simulation)

// WithLogger sets the zap logger used outside the actor system.
func WithLogger(l *zap.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithActorLogger sets the logger handed to the goakt actor system.
func WithActorLogger(l golog.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.actorLog = l
		}
	}
}

// New validates cfg, starts a dedicated actor system and spawns the world
// actor in it. The flock starts empty; call Start to stream in the initial
// population. cfg nil means DefaultConfig.
func New(ctx context.Context, cfg *Config, opts ...Option) (*Simulation, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Simulation{
		cfg:       cfg,
		logger:    zap.NewNop(),
		actorLog:  golog.DiscardLogger,
		snapshots: make(chan *FlockSnapshot, cfg.SnapshotBuffer),
		streams:   intmap.New[uint64, *Repeater](8),
	}
	for _, opt := range opts {
		opt(s)
	}

	flockOpts := []flock.Option{flock.WithSettings(cfg.Settings())}
	if cfg.Seed != 0 {
		flockOpts = append(flockOpts, flock.WithSeed(cfg.Seed))
	}
	f := flock.New(flockOpts...)

	name := "flock-" + uuid.NewString()
	system, err := actor.NewActorSystem(name,
		actor.WithLogger(s.actorLog),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		return nil, fmt.Errorf("failed to create actor system: %w", err)
	}
	if err := system.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start actor system: %w", err)
	}
	world, err := system.Spawn(ctx, "world", NewWorldActor(s.snapshots, f, cfg.Viewport()))
	if err != nil {
		_ = system.Stop(ctx)
		return nil, fmt.Errorf("failed to spawn world: %w", err)
	}

	s.system = system
	s.world = world
	s.base, s.cancelBase = context.WithCancel(context.Background())
	s.logger = s.logger.With(zap.String("system", name))
	s.logger.Debug("simulation started",
		zap.Stringer("viewport", cfg.Viewport()),
		zap.Int("tickRate", cfg.TickRate),
		zap.Uint64("seed", cfg.Seed))
	return s, nil
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() *Config { return s.cfg }

// Snapshots delivers one snapshot per tick. Frames are dropped, never
// queued, while the reader is busy.
func (s *Simulation) Snapshots() <-chan *FlockSnapshot { return s.snapshots }

func (s *Simulation) tell(ctx context.Context, msg proto.Message) error {
	s.mu.Lock()
	stopped := s.stopped
	s.mu.Unlock()
	if stopped {
		return ErrStopped
	}
	return actor.Tell(ctx, s.world, msg)
}

// Tick advances the flock one step.
func (s *Simulation) Tick(ctx context.Context) error {
	return s.tell(ctx, &Tick{Sequence: s.sequence.Add(1)})
}

// SpawnRandom appends count boids at random positions in the current
// viewport. count <= 0 does nothing.
func (s *Simulation) SpawnRandom(ctx context.Context, count int) error {
	if count <= 0 {
		return nil
	}
	if count > math.MaxInt32 {
		return fmt.Errorf("spawn %d boids: %w", count, ErrInvalidSpawn)
	}
	return s.tell(ctx, &SpawnRandom{Count: int32(count)})
}

// SpawnAt appends one boid at (x, y). Both coordinates must be finite.
func (s *Simulation) SpawnAt(ctx context.Context, x, y float64) error {
	if p := (geometry.Vector2D{X: x, Y: y}); !p.IsFinite() {
		return fmt.Errorf("spawn at %v: %w", p, ErrInvalidSpawn)
	}
	return s.tell(ctx, &SpawnAt{X: x, Y: y})
}

// Resize replaces the viewport used by the following ticks and spawns.
func (s *Simulation) Resize(ctx context.Context, width, height int) error {
	vp := flock.Viewport{Width: width, Height: height}
	if !vp.Valid() || width > math.MaxInt32 || height > math.MaxInt32 {
		return fmt.Errorf("resize to %s: %w", vp, ErrInvalidViewport)
	}
	return s.tell(ctx, &Resize{Width: int32(width), Height: int32(height)})
}

// UpdateSettings swaps the physics constants of the running flock.
func (s *Simulation) UpdateSettings(ctx context.Context, set flock.Settings) error {
	if err := set.Validate(); err != nil {
		return err
	}
	return s.tell(ctx, SettingsToProto(set))
}

// Snapshot asks the world for its current state. Unlike Snapshots it
// always answers, even when no tick ran.
func (s *Simulation) Snapshot(ctx context.Context) (*FlockSnapshot, error) {
	s.mu.Lock()
	stopped := s.stopped
	s.mu.Unlock()
	if stopped {
		return nil, ErrStopped
	}
	resp, err := actor.Ask(ctx, s.world, &GetSnapshot{}, askTimeout)
	if err != nil {
		return nil, fmt.Errorf("snapshot request failed: %w", err)
	}
	snap, ok := resp.(*FlockSnapshot)
	if !ok {
		return nil, fmt.Errorf("snapshot request: unexpected reply %T", resp)
	}
	return snap, nil
}

// StreamSpec describes a spawn stream: one boid every Interval.
type StreamSpec struct {
	At       *geometry.Vector2D // nil spawns at random positions in the viewport
	Limit    int                // number of boids, 0 runs until stopped
	Interval time.Duration      // 0 uses the configured spawn interval
}

// StartSpawnStream starts feeding boids to the flock in the background and
// returns an id for StopSpawnStream. The stream outlives ctx; it ends on
// its limit, on StopSpawnStream, or on Stop.
func (s *Simulation) StartSpawnStream(spec StreamSpec) (uint64, error) {
	interval := spec.Interval
	if interval <= 0 {
		interval = s.cfg.SpawnInterval()
	}
	var at *geometry.Vector2D
	if spec.At != nil {
		p := *spec.At
		at = &p
	}
	spawn := func(ctx context.Context) error {
		if at != nil {
			return s.SpawnAt(ctx, at.X, at.Y)
		}
		return s.SpawnRandom(ctx, 1)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return 0, ErrStopped
	}
	s.nextID++
	id := s.nextID
	r := Every(s.base, interval, spec.Limit, spawn)
	s.streams.Put(id, r)

	s.reapers.Add(1)
	go s.reap(id, r)

	s.logger.Debug("spawn stream started",
		zap.Uint64("stream", id),
		zap.Int("limit", spec.Limit),
		zap.Duration("interval", interval),
		zap.Bool("random", at == nil))
	return id, nil
}

// reap forgets a stream once it has ended on its own.
func (s *Simulation) reap(id uint64, r *Repeater) {
	defer s.reapers.Done()
	<-r.Done()
	if err := r.Err(); err != nil && !errors.Is(err, ErrStopped) {
		s.logger.Warn("spawn stream failed", zap.Uint64("stream", id), zap.Error(err))
	}
	s.mu.Lock()
	if cur, ok := s.streams.Get(id); ok && cur == r {
		s.streams.Del(id)
	}
	s.mu.Unlock()
}

// StopSpawnStream ends a stream. It reports whether the stream was running.
func (s *Simulation) StopSpawnStream(id uint64) bool {
	s.mu.Lock()
	r, ok := s.streams.Get(id)
	if ok {
		s.streams.Del(id)
	}
	s.mu.Unlock()
	if ok {
		r.Stop()
	}
	return ok
}

// StopAllStreams ends every running stream.
func (s *Simulation) StopAllStreams() {
	for _, r := range s.drainStreams() {
		r.Stop()
	}
}

func (s *Simulation) drainStreams() []*Repeater {
	s.mu.Lock()
	defer s.mu.Unlock()
	rs := make([]*Repeater, 0, s.streams.Len())
	s.streams.ForEach(func(_ uint64, r *Repeater) bool {
		rs = append(rs, r)
		return true
	})
	s.streams.Clear()
	return rs
}

// ActiveStreams counts the streams still running.
func (s *Simulation) ActiveStreams() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streams.Len()
}

// Start streams in the configured initial population, one boid per spawn
// interval at random positions. It returns the stream id, or 0 when no
// initial boids are configured.
func (s *Simulation) Start() (uint64, error) {
	if s.cfg.InitialBoids == 0 {
		return 0, nil
	}
	return s.StartSpawnStream(StreamSpec{Limit: s.cfg.InitialBoids})
}

// RunClock ticks the flock at the configured rate and blocks until ctx is
// done, the simulation stops, or maxTicks ticks were sent (0 means no limit).
// Reaching maxTicks returns nil.
func (s *Simulation) RunClock(ctx context.Context, maxTicks int) error {
	s.mu.Lock()
	stopped := s.stopped
	s.mu.Unlock()
	if stopped {
		return ErrStopped
	}

	clock := Every(ctx, s.cfg.TickInterval(), maxTicks, s.Tick)
	select {
	case <-clock.Done():
	case <-s.base.Done():
		clock.Stop()
		<-clock.Done()
	}
	if err := clock.Err(); err != nil {
		return err
	}
	if maxTicks > 0 && clock.Runs() >= maxTicks {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return ErrStopped
}

// Stop ends every stream and shuts the actor system down. Calling it
// again is a no-op.
func (s *Simulation) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil
	}
	s.stopped = true
	s.mu.Unlock()

	rs := s.drainStreams()
	for _, r := range rs {
		r.Stop()
	}
	s.cancelBase()
	for _, r := range rs {
		<-r.Done()
	}
	s.reapers.Wait()

	if err := s.system.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop actor system: %w", err)
	}
	s.logger.Debug("simulation stopped")
	return nil
}
