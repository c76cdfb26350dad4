package ui

import "github.com/hajimehoshi/ebiten/v2"

// Input is the pointer state widgets react to during one frame.
type Input struct {
	X, Y    float64
	Pressed bool // left button held
}

// CurrentInput reads the mouse from ebiten.
func CurrentInput() Input {
	mx, my := ebiten.CursorPosition()
	return Input{
		X:       float64(mx),
		Y:       float64(my),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}

// press tracks one button across frames and remembers whether the
// current press started on the widget that owns it.
type press struct {
	down    bool
	grabbed bool
}

// update reports whether this frame starts a press on the widget.
func (p *press) update(in Input, over bool) (started bool) {
	started = in.Pressed && !p.down && over
	if in.Pressed && !p.down {
		p.grabbed = over
	}
	if !in.Pressed {
		p.grabbed = false
	}
	p.down = in.Pressed
	return started
}

func inside(in Input, x, y, w, h float64) bool {
	return in.X >= x && in.X <= x+w && in.Y >= y && in.Y <= y+h
}
