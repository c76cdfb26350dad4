// Package terminal renders a running simulation as coloured dots in a
// terminal using tcell. One terminal cell covers CellWidth x CellHeight
// world units; the top row is kept for the status line.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lao-tseu-is-alive/go-flock-simulation/internal/simulation"
)

const (
	boidGlyph   = '●'
	statusRows  = 1
	burstSpawns = 10
)

var (
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleEmpty  = tcell.StyleDefault
)

// View drives a simulation from a tcell screen.
type View struct {
	screen  tcell.Screen
	sim     *simulation.Simulation
	pointer *simulation.Pointer
	logger  *zap.Logger

	cellW, cellH float64
	cols, rows   int
	last         *simulation.FlockSnapshot
	quit         bool
}

// NewView binds sim to screen. The screen must not be initialised yet;
// Run owns its lifecycle.
func NewView(screen tcell.Screen, sim *simulation.Simulation, logger *zap.Logger) *View {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := sim.Config()
	return &View{
		screen:  screen,
		sim:     sim,
		pointer: simulation.NewPointer(sim, logger),
		logger:  logger,
		cellW:   cfg.TerminalCellWidth,
		cellH:   cfg.TerminalCellHeight,
		last:    &simulation.FlockSnapshot{},
	}
}

// Run initialises the screen and loops until the user quits, ctx is done or
// the simulation stops. It restores the terminal before returning.
func (v *View) Run(ctx context.Context) error {
	if err := v.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer v.screen.Fini()
	v.screen.EnableMouse()
	v.screen.HideCursor()
	v.screen.SetStyle(styleEmpty)

	if err := v.resize(ctx); err != nil {
		return err
	}

	events := make(chan tcell.Event, 16)
	stop := make(chan struct{})
	defer close(stop)
	go v.screen.ChannelEvents(events, stop)

	ticker := time.NewTicker(v.sim.Config().TickInterval())
	defer ticker.Stop()
	defer v.pointer.Release()

	for !v.quit {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := v.handleEvent(ctx, ev); err != nil {
				return err
			}
		case <-ticker.C:
			if err := v.sim.Tick(ctx); err != nil {
				if errors.Is(err, simulation.ErrStopped) {
					return nil
				}
				v.logger.Warn("tick failed", zap.Error(err))
			}
			v.drain()
			v.draw()
		}
	}
	return nil
}

func (v *View) handleEvent(ctx context.Context, ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
		return v.resize(ctx)
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			v.quit = true
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			v.quit = true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
			if err := v.sim.SpawnRandom(ctx, burstSpawns); err != nil {
				v.logger.Warn("spawn refused", zap.Error(err))
			}
		}
	case *tcell.EventMouse:
		v.handleMouse(ev)
	}
	return nil
}

func (v *View) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	held := ev.Buttons()&tcell.Button1 != 0
	switch {
	case held && !v.pointer.Pressed():
		if row < statusRows {
			return
		}
		x, y := v.cellCenter(col, row)
		if err := v.pointer.Press(x, y); err != nil {
			v.logger.Warn("press ignored", zap.Error(err))
		}
	case !held && v.pointer.Pressed():
		v.pointer.Release()
	}
}

// resize maps the current terminal size onto a world viewport.
func (v *View) resize(ctx context.Context) error {
	v.cols, v.rows = v.screen.Size()
	w, h := v.worldSize()
	if w <= 0 || h <= 0 {
		return nil
	}
	if err := v.sim.Resize(ctx, w, h); err != nil && !errors.Is(err, simulation.ErrInvalidViewport) {
		return fmt.Errorf("terminal resize: %w", err)
	}
	return nil
}

func (v *View) worldSize() (int, int) {
	return int(float64(v.cols) * v.cellW), int(float64(v.rows-statusRows) * v.cellH)
}

// cellCenter converts a screen cell to the world point in its middle.
func (v *View) cellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * v.cellW, (float64(row-statusRows) + 0.5) * v.cellH
}

func (v *View) drain() {
	for {
		select {
		case snap := <-v.sim.Snapshots():
			v.last = snap
		default:
			return
		}
	}
}

func (v *View) draw() {
	drawFrame(v.screen, v.last, v.cellW, v.cellH)
	v.screen.Show()
}

// drawFrame paints snap onto screen without showing it.
func drawFrame(screen tcell.Screen, snap *simulation.FlockSnapshot, cellW, cellH float64) {
	screen.Clear()
	cols, rows := screen.Size()

	for _, b := range snap.GetBoids() {
		// floor, so boids just left of or above the world stay off screen;
		// bounds are checked before the int conversion
		fc := math.Floor(b.GetX() / cellW)
		fr := math.Floor(b.GetY()/cellH) + statusRows
		if !(fc >= 0 && fc < float64(cols) && fr >= statusRows && fr < float64(rows)) {
			continue
		}
		col, row := int(fc), int(fr)
		st := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(b.GetRed()), int32(b.GetGreen()), int32(b.GetBlue())))
		screen.SetContent(col, row, boidGlyph, nil, st)
	}

	status := fmt.Sprintf(" Count : %d | Ticks : %d | %dx%d | drag to spawn, r adds %d, q quits ",
		len(snap.GetBoids()), snap.GetTicks(), snap.GetWidth(), snap.GetHeight(), burstSpawns)
	for x := 0; x < cols; x++ {
		screen.SetContent(x, 0, ' ', nil, styleStatus)
	}
	for x, r := range []rune(status) {
		if x >= cols {
			break
		}
		screen.SetContent(x, 0, r, nil, styleStatus)
	}
}
