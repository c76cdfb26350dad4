package simulation

import (
	"sync"

	"go.uber.org/zap"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

// StreamController is the part of Simulation a Pointer drives.
type StreamController interface {
	StartSpawnStream(spec StreamSpec) (uint64, error)
	StopSpawnStream(id uint64) bool
}

// Pointer turns press/release input into a spawn stream: while the button
// is held, one boid appears at the press point every spawn interval.
// Both front ends (window and terminal) share it.
type Pointer struct {
	streams StreamController
	logger  *zap.Logger

	mu      sync.Mutex
	stream  uint64
	pressed bool
}

func NewPointer(streams StreamController, logger *zap.Logger) *Pointer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pointer{streams: streams, logger: logger}
}

// Press starts a stream at (x, y). A press while already pressed moves the
// stream to the new point.
func (p *Pointer) Press(x, y float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pressed {
		p.streams.StopSpawnStream(p.stream)
		p.pressed = false
	}
	id, err := p.streams.StartSpawnStream(StreamSpec{At: &geometry.Vector2D{X: x, Y: y}})
	if err != nil {
		return err
	}
	p.stream, p.pressed = id, true
	p.logger.Debug("pointer pressed", zap.Float64("x", x), zap.Float64("y", y), zap.Uint64("stream", id))
	return nil
}

// Release stops the stream started by the last Press, if any.
func (p *Pointer) Release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.pressed {
		return
	}
	p.streams.StopSpawnStream(p.stream)
	p.pressed = false
	p.logger.Debug("pointer released", zap.Uint64("stream", p.stream))
}

// Pressed reports whether a stream is running on behalf of the pointer.
func (p *Pointer) Pressed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pressed
}
