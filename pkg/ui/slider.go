package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider is a horizontal bar editing a float in [Min, Max].
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	X, Y     float64
	W, H     float64
	press    press
}

// NewSlider creates a slider. The range grows to include value, so the
// slider never rewrites a starting value it was given.
func NewSlider(x, y, w float64, label string, min, max, value float64) *Slider {
	return &Slider{
		Label: label,
		Value: value,
		Min:   math.Min(min, value),
		Max:   math.Max(max, value),
		X:     x,
		Y:     y,
		W:     w,
		H:     10,
	}
}

func (s *Slider) clamp(v float64) float64 {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

// Update drags the value while a press that started on the bar is held.
// Dragging past either end pins the value to Min or Max.
func (s *Slider) Update(in Input) {
	s.press.update(in, inside(in, s.X, s.Y, s.W, s.H))
	if !s.press.grabbed {
		return
	}
	p := (in.X - s.X) / s.W
	s.Value = s.clamp(s.Min + p*(s.Max-s.Min))
}

// Draw renders the slider
func (s *Slider) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), color.RGBA{R: 80, G: 80, B: 80, A: 255}, true)

	ratio := 0.0
	if s.Max > s.Min {
		ratio = (s.Value - s.Min) / (s.Max - s.Min)
	}
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*ratio), float32(s.H), color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
}
