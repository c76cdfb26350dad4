package simulation

import (
	"context"
	"errors"
	"time"

	golog "github.com/tochemey/goakt/v3/log"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
)

// HeadlessOptions tunes RunHeadless.
type HeadlessOptions struct {
	Ticks       int           // ticks per simulation, 0 runs until ctx is done
	Sims        int           // independent simulations run side by side, default 1
	ReportEvery time.Duration // progress log period, default 1s
	Logger      *zap.Logger
	ActorLogger golog.Logger
}

// RunHeadless runs one or more simulations without any display: each one
// streams in its initial population, ticks at the configured rate and logs
// its population and mean speed every ReportEvery. It returns the final
// snapshot of every simulation, in order. Cancelling ctx ends the run
// early without an error.
func RunHeadless(ctx context.Context, cfg *Config, opts HeadlessOptions) ([]*FlockSnapshot, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Sims < 1 {
		opts.Sims = 1
	}
	if opts.ReportEvery <= 0 {
		opts.ReportEvery = time.Second
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	results := make([]*FlockSnapshot, opts.Sims)
	g, gctx := errgroup.WithContext(ctx)
	for i := range opts.Sims {
		simCfg := *cfg
		if simCfg.Seed != 0 {
			simCfg.Seed += uint64(i)
		}
		logger := opts.Logger.With(zap.Int("sim", i))
		g.Go(func() error {
			snap, err := runOne(gctx, &simCfg, opts, logger)
			if err != nil {
				return err
			}
			results[i] = snap
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(ctx context.Context, cfg *Config, opts HeadlessOptions, logger *zap.Logger) (*FlockSnapshot, error) {
	sim, err := New(ctx, cfg, WithLogger(logger), WithActorLogger(opts.ActorLogger))
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := sim.Stop(context.Background()); err != nil {
			logger.Warn("stop failed", zap.Error(err))
		}
	}()

	if _, err := sim.Start(); err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	clockDone := make(chan struct{})
	g.Go(func() error {
		defer close(clockDone)
		err := sim.RunClock(gctx, opts.Ticks)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		report(sim, clockDone, opts.ReportEvery, logger)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	askCtx, cancel := context.WithTimeout(context.Background(), askTimeout)
	defer cancel()
	final, err := sim.Snapshot(askCtx)
	if err != nil {
		return nil, err
	}
	st := flock.Stats(SnapshotBoids(final))
	logger.Info("simulation finished",
		zap.Int("boids", st.Count),
		zap.Uint64("ticks", final.GetTicks()),
		zap.Float64("meanSpeed", st.MeanSpeed))
	return final, nil
}

// report keeps the latest pushed snapshot and logs a summary of it
// periodically until done is closed.
func report(sim *Simulation, done <-chan struct{}, every time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	var latest *FlockSnapshot
	for {
		select {
		case <-done:
			return
		case snap := <-sim.Snapshots():
			latest = snap
		case <-ticker.C:
			if latest == nil {
				continue
			}
			st := flock.Stats(SnapshotBoids(latest))
			logger.Info("flock",
				zap.Int("boids", st.Count),
				zap.Uint64("ticks", latest.GetTicks()),
				zap.Float64("meanSpeed", st.MeanSpeed),
				zap.Float64("maxSpeed", st.MaxSpeed),
				zap.Stringer("centroid", st.Centroid))
		}
	}
}
