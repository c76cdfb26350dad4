package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	golog "github.com/tochemey/goakt/v3/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lao-tseu-is-alive/go-flock-simulation/internal/simulation"
	"github.com/lao-tseu-is-alive/go-flock-simulation/internal/terminal"
	"github.com/lao-tseu-is-alive/go-flock-simulation/internal/view"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
)

var (
	// Global flags
	verbose    bool
	configFile string
	seed       uint64
	boids      int

	// Headless flags
	ticks       int
	sims        int
	reportEvery time.Duration

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "boids",
	Short: "2D flocking simulation",
	Long: `Simulates a flock of boids driven by cohesion, separation and alignment.

Without a subcommand a window opens. Hold the left mouse button to stream new
boids at the pointer; the panel on the left edits the physics live.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runWindow,
}

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Run the simulation in the terminal",
	Long: `Draws every boid as a coloured dot. Drag with the mouse to stream boids,
press r for a random burst and q, Esc or Ctrl-C to quit.`,
	RunE: runTerminal,
}

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run simulations without a display and log their progress",
	Example: `  boids headless --ticks 600
  boids headless --sims 4 --seed 42 --config flock.yaml`,
	RunE: runHeadless,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML or JSON configuration file")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Random seed, 0 seeds from the clock")
	rootCmd.PersistentFlags().IntVarP(&boids, "boids", "n", 0, "Initial population (overrides the config)")

	headlessCmd.Flags().IntVar(&ticks, "ticks", 300, "Ticks per simulation, 0 runs until interrupted")
	headlessCmd.Flags().IntVar(&sims, "sims", 1, "Number of independent simulations")
	headlessCmd.Flags().DurationVar(&reportEvery, "report", time.Second, "Progress log period")

	rootCmd.AddCommand(termCmd, headlessCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads --config and applies the flag overrides.
func loadConfig(cmd *cobra.Command) (*simulation.Config, error) {
	cfg := simulation.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = simulation.LoadConfig(configFile); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("boids") {
		cfg.InitialBoids = boids
	}
	return cfg, cfg.Validate()
}

func actorLogger() golog.Logger {
	if verbose {
		return golog.DefaultLogger
	}
	return golog.DiscardLogger
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// startSimulation builds a simulation and streams in its initial population.
func startSimulation(ctx context.Context, cfg *simulation.Config, l *zap.Logger, al golog.Logger) (*simulation.Simulation, error) {
	sim, err := simulation.New(ctx, cfg,
		simulation.WithLogger(l),
		simulation.WithActorLogger(al))
	if err != nil {
		return nil, err
	}
	if _, err := sim.Start(); err != nil {
		_ = sim.Stop(ctx)
		return nil, err
	}
	return sim, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	sim, err := startSimulation(ctx, cfg, logger, actorLogger())
	if err != nil {
		return err
	}
	defer sim.Stop(context.Background())

	return view.Run(ctx, sim, logger)
}

func runTerminal(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	// the screen owns the terminal while the view runs, so nothing may log to it
	sim, err := startSimulation(ctx, cfg, zap.NewNop(), golog.DiscardLogger)
	if err != nil {
		return err
	}
	defer sim.Stop(context.Background())

	return terminal.NewView(screen, sim, zap.NewNop()).Run(ctx)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	logger.Info("Starting headless run",
		zap.Int("sims", sims),
		zap.Int("ticks", ticks),
		zap.Int("boids", cfg.InitialBoids),
		zap.Uint64("seed", cfg.Seed))

	snaps, err := simulation.RunHeadless(ctx, cfg, simulation.HeadlessOptions{
		Ticks:       ticks,
		Sims:        sims,
		ReportEvery: reportEvery,
		Logger:      logger,
		ActorLogger: actorLogger(),
	})
	if err != nil {
		return err
	}
	for i, snap := range snaps {
		sum := flock.Stats(simulation.SnapshotBoids(snap))
		fmt.Printf("sim %d: %d boids after %d ticks, mean speed %.3f, centroid %s\n",
			i, sum.Count, snap.GetTicks(), sum.MeanSpeed, sum.Centroid)
	}
	return nil
}
