package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	titleHeight   = 25.0
	sectionHeight = 25.0
	margin        = 10.0
)

// UIWidget is an interface for all UI widgets
type UIWidget interface {
	Update(in Input)
	Draw(screen *ebiten.Image)
}

type panelRow struct {
	label   string
	widget  UIWidget // nil for a section header
	y       float64
	height  float64
	section bool
}

// UIPanel stacks labelled widgets in a column. Widgets get their final
// position when they are added.
type UIPanel struct {
	X, Y    float64
	Width   float64
	Title   string
	Visible bool

	rows   []panelRow
	cursor float64 // y of the next row, relative to the panel

	BGColor     color.RGBA
	BorderColor color.RGBA
	SectionBG   color.RGBA
}

// NewUIPanel creates a new, visible, empty panel.
func NewUIPanel(x, y, width float64, title string) *UIPanel {
	return &UIPanel{
		X:           x,
		Y:           y,
		Width:       width,
		Title:       title,
		Visible:     true,
		cursor:      titleHeight,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
		SectionBG:   color.RGBA{R: 60, G: 60, B: 70, A: 255},
	}
}

func (p *UIPanel) push(label string, w UIWidget, height float64, section bool) {
	p.rows = append(p.rows, panelRow{label: label, widget: w, y: p.cursor, height: height, section: section})
	p.cursor += height
}

// AddSection adds a section header
func (p *UIPanel) AddSection(title string) {
	p.push(title, nil, sectionHeight, true)
}

// AddSlider adds a labelled slider and returns it so the caller can read Value.
func (p *UIPanel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(p.X+margin, p.Y+p.cursor+15, p.Width-2*margin, label, min, max, value)
	p.push(label, s, s.H+25, false)
	return s
}

// AddCheckbox adds a checkbox with its label on the right.
func (p *UIPanel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+margin, p.Y+p.cursor, label, value)
	p.push(label, c, c.Size+8, false)
	return c
}

// AddButton adds a full-width button.
func (p *UIPanel) AddButton(label string, onClick func()) *Button {
	b := NewButton(p.X+margin, p.Y+p.cursor, p.Width-2*margin, 20, label, onClick)
	p.push("", b, b.Height+8, false)
	return b
}

// Height is the panel height needed by its rows.
func (p *UIPanel) Height() float64 {
	return p.cursor + margin
}

// Contains reports whether (x, y) falls on the visible panel, so the caller
// can keep clicks on the panel away from the scene below.
func (p *UIPanel) Contains(x, y float64) bool {
	return p.Visible && x >= p.X && x <= p.X+p.Width && y >= p.Y && y <= p.Y+p.Height()
}

// Update handles input for all widgets
func (p *UIPanel) Update(in Input) {
	if !p.Visible {
		return
	}
	for _, r := range p.rows {
		if r.widget != nil {
			r.widget.Update(in)
		}
	}
}

// Draw renders the panel and all widgets
func (p *UIPanel) Draw(screen *ebiten.Image) {
	if !p.Visible {
		return
	}
	h := p.Height()
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(h), p.BGColor, true)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(h), 2, p.BorderColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+margin), int(p.Y+5))

	for _, r := range p.rows {
		y := p.Y + r.y
		switch w := r.widget.(type) {
		case nil:
			vector.FillRect(screen, float32(p.X+5), float32(y), float32(p.Width-10), 20, p.SectionBG, true)
			ebitenutil.DebugPrintAt(screen, r.label, int(p.X+margin), int(y+3))
		case *Checkbox:
			w.Draw(screen)
			ebitenutil.DebugPrintAt(screen, r.label, int(w.X+w.Size+8), int(y))
		case *Button:
			w.Draw(screen)
		default:
			ebitenutil.DebugPrintAt(screen, r.label, int(p.X+margin), int(y))
			w.Draw(screen)
		}
	}
}
