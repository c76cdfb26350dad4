// Package view renders a running simulation in a desktop window with ebiten
// and turns mouse input into spawn streams.
package view

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/lao-tseu-is-alive/go-flock-simulation/internal/simulation"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/ui"
)

var background = color.RGBA{R: 10, G: 10, B: 30, A: 255}

type Game struct {
	ctx       context.Context
	sim       *simulation.Simulation
	pointer   *simulation.Pointer
	cfg       *simulation.Config
	logger    *zap.Logger
	lastState *simulation.FlockSnapshot

	width, height int

	// UI Controls
	panel                  *ui.UIPanel
	widgetMaxSpeed         *ui.Slider
	widgetSeparationRadius *ui.Slider
	widgetCohesionDivisor  *ui.Slider
	widgetAlignmentDivisor *ui.Slider
	widgetShowSeparation   *ui.Checkbox
	settings               flock.Settings
	panelGrab              bool // the current press started on the panel

	// Timing instrumentation
	updateAvg float64 // Rolling average in ms
	drawAvg   float64 // Rolling average in ms
}

// NewGame wires a window to sim. The simulation keeps running after the
// window closes; the caller owns it.
func NewGame(ctx context.Context, sim *simulation.Simulation, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := sim.Config()
	g := &Game{
		ctx:       ctx,
		sim:       sim,
		pointer:   simulation.NewPointer(sim, logger),
		cfg:       cfg,
		logger:    logger,
		lastState: &simulation.FlockSnapshot{},
		width:     cfg.ViewportWidth,
		height:    cfg.ViewportHeight,
		settings:  cfg.Settings(),
	}

	panel := ui.NewUIPanel(10, 60, 220, "Flock (Tab hides)")
	panel.AddSection("Physics")
	g.widgetMaxSpeed = panel.AddSlider("Max Speed", 0.5, 20, cfg.MaxSpeed)
	g.widgetSeparationRadius = panel.AddSlider("Separation Radius", 1, 50, cfg.SeparationRadius)
	g.widgetCohesionDivisor = panel.AddSlider("Cohesion Divisor", 10, 500, cfg.CohesionDivisor)
	g.widgetAlignmentDivisor = panel.AddSlider("Alignment Divisor", 1, 50, cfg.AlignmentDivisor)
	panel.AddSection("Population")
	panel.AddButton(fmt.Sprintf("Stream %d boids", max(cfg.InitialBoids, 1)), func() {
		if _, err := sim.StartSpawnStream(simulation.StreamSpec{Limit: max(cfg.InitialBoids, 1)}); err != nil {
			logger.Warn("spawn stream refused", zap.Error(err))
		}
	})
	panel.AddSection("Visualization")
	g.widgetShowSeparation = panel.AddCheckbox("Show separation radius", false)
	g.panel = panel
	return g
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.pointer.Release()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.panel.Visible = !g.panel.Visible
	}

	in := ui.CurrentInput()
	g.panel.Update(in)
	g.pushSettings()
	g.handlePointer(in)

	// Retrieve Latest State (Non-blocking)
	for drained := false; !drained; {
		select {
		case snap := <-g.sim.Snapshots():
			g.lastState = snap
		default:
			drained = true
		}
	}

	// Trigger Simulation Step
	if err := g.sim.Tick(g.ctx); err != nil {
		if errors.Is(err, simulation.ErrStopped) {
			return ebiten.Termination
		}
		g.logger.Warn("tick failed", zap.Error(err))
	}
	return nil
}

func (g *Game) handlePointer(in ui.Input) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.panelGrab = g.panel.Contains(in.X, in.Y)
		if !g.panelGrab {
			if err := g.pointer.Press(in.X, in.Y); err != nil {
				g.logger.Warn("press ignored", zap.Error(err))
			}
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.pointer.Release()
		g.panelGrab = false
	}
}

func (g *Game) pushSettings() {
	s := flock.Settings{
		MaxSpeed:         g.widgetMaxSpeed.Value,
		SeparationRadius: g.widgetSeparationRadius.Value,
		CohesionDivisor:  g.widgetCohesionDivisor.Value,
		AlignmentDivisor: g.widgetAlignmentDivisor.Value,
	}
	if s == g.settings {
		return
	}
	if err := g.sim.UpdateSettings(g.ctx, s); err != nil {
		g.logger.Warn("settings update refused", zap.Error(err))
		return
	}
	g.settings = s
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.drawAvg = g.drawAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	screen.Fill(background)

	radius := float32(g.cfg.BoidRadius)
	for _, b := range g.lastState.GetBoids() {
		x, y := float32(b.GetX()), float32(b.GetY())
		clr := color.RGBA{R: uint8(b.GetRed()), G: uint8(b.GetGreen()), B: uint8(b.GetBlue()), A: 255}
		if g.widgetShowSeparation.Value {
			vector.StrokeCircle(screen, x, y, float32(g.settings.SeparationRadius), 1,
				color.RGBA{R: 50, G: 100, B: 255, A: 80}, true)
		}
		vector.FillCircle(screen, x, y, radius, clr, true)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Count : %d", len(g.lastState.GetBoids())), 20, 40)

	g.panel.Draw(screen)

	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\n\nUpdate: %.2fms\nDraw:   %.2fms",
		ebiten.ActualFPS(), ebiten.ActualTPS(), g.updateAvg, g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, g.width-150, 10)
}

// Layout keeps one world unit per pixel and forwards window resizes to
// the simulation.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.width || outsideHeight != g.height) {
		if err := g.sim.Resize(g.ctx, outsideWidth, outsideHeight); err != nil {
			g.logger.Warn("resize refused", zap.Error(err))
		} else {
			g.width, g.height = outsideWidth, outsideHeight
		}
	}
	return g.width, g.height
}

// Run opens the window and blocks until it is closed or ctx is done.
func Run(ctx context.Context, sim *simulation.Simulation, logger *zap.Logger) error {
	cfg := sim.Config()
	ebiten.SetWindowSize(cfg.ViewportWidth, cfg.ViewportHeight)
	ebiten.SetWindowTitle("Boids")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(NewGame(ctx, sim, logger)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
