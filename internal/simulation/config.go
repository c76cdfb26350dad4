package simulation

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
)

//go:embed config.schema.json
var configSchema string

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString("config.schema.json", configSchema)
})

type Config struct {
	// Viewport
	ViewportWidth  int `json:"viewportWidth" yaml:"viewportWidth"`
	ViewportHeight int `json:"viewportHeight" yaml:"viewportHeight"`

	// Population
	InitialBoids    int    `json:"initialBoids" yaml:"initialBoids"`
	SpawnIntervalMs int    `json:"spawnIntervalMs" yaml:"spawnIntervalMs"` // one boid per interval while a stream runs
	Seed            uint64 `json:"seed" yaml:"seed"`                       // 0 picks a random seed

	// Clock
	TickRate int `json:"tickRate" yaml:"tickRate"` // ticks per second

	// Physics
	MaxSpeed         float64 `json:"maxSpeed" yaml:"maxSpeed"`
	SeparationRadius float64 `json:"separationRadius" yaml:"separationRadius"`
	CohesionDivisor  float64 `json:"cohesionDivisor" yaml:"cohesionDivisor"`
	AlignmentDivisor float64 `json:"alignmentDivisor" yaml:"alignmentDivisor"`

	// Rendering
	BoidRadius         float64 `json:"boidRadius" yaml:"boidRadius"`
	TerminalCellWidth  float64 `json:"terminalCellWidth" yaml:"terminalCellWidth"`   // world units per terminal column
	TerminalCellHeight float64 `json:"terminalCellHeight" yaml:"terminalCellHeight"` // world units per terminal row
	SnapshotBuffer     int     `json:"snapshotBuffer" yaml:"snapshotBuffer"`
}

func DefaultConfig() *Config {
	return &Config{
		ViewportWidth:      800,
		ViewportHeight:     600,
		InitialBoids:       30,
		SpawnIntervalMs:    10,
		TickRate:           30,
		MaxSpeed:           flock.DefaultMaxSpeed,
		SeparationRadius:   flock.DefaultSeparationRadius,
		CohesionDivisor:    flock.DefaultCohesionDivisor,
		AlignmentDivisor:   flock.DefaultAlignmentDivisor,
		BoidRadius:         2.5,
		TerminalCellWidth:  8,
		TerminalCellHeight: 16,
		SnapshotBuffer:     4,
	}
}

// LoadConfig reads a JSON or YAML file (chosen by extension), validates it
// against the embedded schema and decodes it over DefaultConfig, so a file
// only needs the keys it changes.
func LoadConfig(configFile string) (*Config, error) {
	sch, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var (
		v         interface{}
		unmarshal func([]byte, any) error
	)
	switch strings.ToLower(filepath.Ext(configFile)) {
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	default:
		unmarshal = json.Unmarshal
	}

	if err := unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", configFile, err)
	}
	if v == nil {
		v = map[string]interface{}{}
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cfg := DefaultConfig()
	if err := unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate re-checks what the schema enforces, for configs built in code.
func (c *Config) Validate() error {
	if !c.Viewport().Valid() || c.ViewportWidth > math.MaxInt32 || c.ViewportHeight > math.MaxInt32 {
		return fmt.Errorf("%w: viewport %s: %w", ErrInvalidConfig, c.Viewport(), ErrInvalidViewport)
	}
	if err := c.Settings().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch {
	case c.InitialBoids < 0:
		return fmt.Errorf("%w: initialBoids must be >= 0, got %d", ErrInvalidConfig, c.InitialBoids)
	case c.SpawnIntervalMs <= 0:
		return fmt.Errorf("%w: spawnIntervalMs must be > 0, got %d", ErrInvalidConfig, c.SpawnIntervalMs)
	case c.TickRate <= 0 || c.TickRate > 1000:
		return fmt.Errorf("%w: tickRate must be in 1..1000, got %d", ErrInvalidConfig, c.TickRate)
	case c.BoidRadius <= 0:
		return fmt.Errorf("%w: boidRadius must be > 0, got %v", ErrInvalidConfig, c.BoidRadius)
	case c.TerminalCellWidth <= 0 || c.TerminalCellHeight <= 0:
		return fmt.Errorf("%w: terminal cells must be > 0, got %vx%v", ErrInvalidConfig, c.TerminalCellWidth, c.TerminalCellHeight)
	case c.SnapshotBuffer < 1:
		return fmt.Errorf("%w: snapshotBuffer must be >= 1, got %d", ErrInvalidConfig, c.SnapshotBuffer)
	}
	return nil
}

// Settings is the physics part of the config.
func (c *Config) Settings() flock.Settings {
	return flock.Settings{
		MaxSpeed:         c.MaxSpeed,
		SeparationRadius: c.SeparationRadius,
		CohesionDivisor:  c.CohesionDivisor,
		AlignmentDivisor: c.AlignmentDivisor,
	}
}

// Viewport is the initial viewport.
func (c *Config) Viewport() flock.Viewport {
	return flock.Viewport{Width: c.ViewportWidth, Height: c.ViewportHeight}
}

// TickInterval is the clock period derived from TickRate.
func (c *Config) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(c.TickRate)
}

// SpawnInterval is the delay between two boids of a spawn stream.
func (c *Config) SpawnInterval() time.Duration {
	return time.Duration(c.SpawnIntervalMs) * time.Millisecond
}
