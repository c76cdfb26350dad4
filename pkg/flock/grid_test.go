package flock

import (
	"math"
	"slices"
	"testing"
)

func TestGrid_rebuild(t *testing.T) {
	g := newGrid()
	boids := []Boid{
		{Pos: vec(5, 5)},   // cell (0,0)
		{Pos: vec(15, 5)},  // cell (1,0)
		{Pos: vec(5, 15)},  // cell (0,1)
		{Pos: vec(25, 25)}, // cell (2,2)
		{Pos: vec(-3, 4)},  // cell (-1,0)
		{Pos: vec(9.9, 0)}, // cell (0,0)
	}
	g.rebuild(boids, 10)

	tests := []struct {
		key  gridKey
		want []int
	}{
		{gridKey{x: 0, y: 0}, []int{0, 5}},
		{gridKey{x: 1, y: 0}, []int{1}},
		{gridKey{x: 0, y: 1}, []int{2}},
		{gridKey{x: 2, y: 2}, []int{3}},
		{gridKey{x: -1, y: 0}, []int{4}},
	}
	for _, tt := range tests {
		if got := g.cells[tt.key]; !slices.Equal(got, tt.want) {
			t.Errorf("cell %v = %v; want %v", tt.key, got, tt.want)
		}
	}
}

func TestGrid_rebuildDropsStaleCells(t *testing.T) {
	g := newGrid()
	boids := []Boid{{Pos: vec(5, 5)}, {Pos: vec(500, 500)}}
	g.rebuild(boids, 10)

	boids[1].Pos = vec(6, 6)
	g.rebuild(boids, 10) // cell (50,50) is emptied
	if got := g.cells[gridKey{x: 50, y: 50}]; len(got) != 0 {
		t.Errorf("stale cell still holds %v", got)
	}
	g.rebuild(boids, 10) // and forgotten
	if _, ok := g.cells[gridKey{x: 50, y: 50}]; ok {
		t.Error("empty cell was not dropped")
	}
	if got := g.cells[gridKey{x: 0, y: 0}]; !slices.Equal(got, []int{0, 1}) {
		t.Errorf("cell (0,0) = %v; want [0 1]", got)
	}
}

func TestGrid_forEachNear(t *testing.T) {
	g := newGrid()
	boids := []Boid{
		{Pos: vec(15, 15)}, // centre cell (1,1)
		{Pos: vec(5, 5)},   // neighbour (0,0)
		{Pos: vec(35, 35)}, // far away (3,3)
		{Pos: vec(29, 11)}, // neighbour (2,1)
	}
	g.rebuild(boids, 10)

	var got []int
	g.forEachNear(15, 15, func(j int) { got = append(got, j) })
	slices.Sort(got)
	if want := []int{0, 1, 3}; !slices.Equal(got, want) {
		t.Errorf("forEachNear(15,15) = %v; want %v", got, want)
	}
}

func TestGrid_cellSizeChange(t *testing.T) {
	g := newGrid()
	boids := []Boid{{Pos: vec(15, 15)}}
	g.rebuild(boids, 10)
	g.rebuild(boids, 20)
	if got := g.cells[gridKey{x: 0, y: 0}]; !slices.Equal(got, []int{0}) {
		t.Errorf("after resize cell (0,0) = %v; want [0]", got)
	}
	if _, ok := g.cells[gridKey{x: 1, y: 1}]; ok {
		t.Error("cells from the old size survived")
	}
}

func TestFitsGrid(t *testing.T) {
	tests := []struct {
		name string
		pos  float64
		want bool
	}{
		{"origin", 0, true},
		{"viewport", 799.5, true},
		{"negative", -1e9, true},
		{"large", 1e15, true},
		{"at the limit", 10 * maxCell, false},
		{"far negative", -1e20, false},
		{"infinite", math.Inf(1), false},
		{"nan", math.NaN(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			boids := []Boid{{Pos: vec(1, 1)}, {Pos: vec(1, tt.pos)}}
			if got := fitsGrid(boids, 10); got != tt.want {
				t.Errorf("fitsGrid(y=%v) = %v; want %v", tt.pos, got, tt.want)
			}
		})
	}
}
