package flock

import "math"

// maxCell bounds cell coordinates so that a cell index and its neighbours
// stay exact in both float64 and int.
const maxCell = 1 << 52

type gridKey struct {
	x, y int
}

// grid is a uniform spatial hash of boid indices.
// With a cell as wide as the separation radius, every boid closer than that
// radius lives in the 3x3 block of cells around the query point.
type grid struct {
	cellSize float64
	cells    map[gridKey][]int
}

func newGrid() *grid {
	return &grid{cells: make(map[gridKey][]int)}
}

// rebuild indexes boids by cell. Slices are truncated, not freed, so a
// steady-state flock reuses the same backing arrays tick after tick.
// Cells left empty for a whole tick are dropped to bound the map.
func (g *grid) rebuild(boids []Boid, cellSize float64) {
	if cellSize != g.cellSize {
		clear(g.cells)
		g.cellSize = cellSize
	}
	for k, v := range g.cells {
		if len(v) == 0 {
			delete(g.cells, k)
			continue
		}
		g.cells[k] = v[:0]
	}
	for i := range boids {
		key := g.cellOf(boids[i].Pos.X, boids[i].Pos.Y)
		g.cells[key] = append(g.cells[key], i)
	}
}

// fitsGrid reports whether every boid maps to a cell the grid can index.
// NaN and infinite positions never fit.
func fitsGrid(boids []Boid, cellSize float64) bool {
	for i := range boids {
		cx, cy := boids[i].Pos.X/cellSize, boids[i].Pos.Y/cellSize
		if !(math.Abs(cx) < maxCell) || !(math.Abs(cy) < maxCell) {
			return false
		}
	}
	return true
}

func (g *grid) cellOf(x, y float64) gridKey {
	return gridKey{
		x: int(math.Floor(x / g.cellSize)),
		y: int(math.Floor(y / g.cellSize)),
	}
}

// forEachNear calls fn with the index of every boid stored in the 3x3 block
// of cells around (x, y). Cells are visited in a fixed order and indices
// within a cell in flock order, so repeated runs sum in the same order.
func (g *grid) forEachNear(x, y float64, fn func(j int)) {
	c := g.cellOf(x, y)
	for i := c.x - 1; i <= c.x+1; i++ {
		for j := c.y - 1; j <= c.y+1; j++ {
			for _, idx := range g.cells[gridKey{x: i, y: j}] {
				fn(idx)
			}
		}
	}
}
