package flock

import "github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"

// Stepper advances a flock by one tick. It keeps scratch buffers between
// calls, so a long-running simulation reuses one Stepper. The zero value is
// ready to use. A Stepper is not safe for concurrent use.
type Stepper struct {
	grid *grid
	next []geometry.Vector2D
}

// Step is a convenience wrapper that runs a single tick with a throw-away
// Stepper.
func Step(boids []Boid, vp Viewport, s Settings) bool {
	var st Stepper
	return st.Step(boids, vp, s)
}

// Step updates boids in place and reports whether anything moved.
//
// Fewer than two boids is a no-op: the rules average over "the others",
// which do not exist.
//
// The force pass reads only pre-tick positions and velocities, so the
// result does not depend on the order of the slice. The move pass then
// reflects every boid heading out of the viewport and integrates.
func (st *Stepper) Step(boids []Boid, vp Viewport, s Settings) bool {
	n := len(boids)
	if n < 2 {
		return false
	}
	if st.grid == nil {
		st.grid = newGrid()
	}
	if cap(st.next) < n {
		st.next = make([]geometry.Vector2D, n)
	}
	next := st.next[:n]

	var sumPos, sumVel geometry.Vector2D
	for i := range boids {
		sumPos = sumPos.Add(boids[i].Pos)
		sumVel = sumVel.Add(boids[i].Vel)
	}
	others := float64(n - 1)

	separate := s.SeparationRadius > 0
	indexed := separate && fitsGrid(boids, s.SeparationRadius)
	if indexed {
		st.grid.rebuild(boids, s.SeparationRadius)
	}
	radiusSq := s.SeparationRadius * s.SeparationRadius

	for i := range boids {
		me := boids[i]
		v := me.Vel

		// cohesion
		if s.CohesionDivisor != 0 {
			center := sumPos.Sub(me.Pos).Mul(1 / others)
			v = v.Add(center.Sub(me.Pos).Mul(1 / s.CohesionDivisor))
		}

		// separation
		repel := func(j int) {
			if j != i && me.Pos.DistanceSquaredTo(boids[j].Pos) < radiusSq {
				v = v.Sub(boids[j].Pos.Sub(me.Pos))
			}
		}
		switch {
		case indexed:
			st.grid.forEachNear(me.Pos.X, me.Pos.Y, repel)
		case separate:
			// positions too far out for cell indices: scan every pair
			for j := range boids {
				repel(j)
			}
		}

		// alignment, against the velocity already nudged above
		if s.AlignmentDivisor != 0 {
			avg := sumVel.Sub(me.Vel).Mul(1 / others)
			v = v.Add(avg.Sub(v).Mul(1 / s.AlignmentDivisor))
		}

		if s.MaxSpeed > 0 {
			v = v.Limit(s.MaxSpeed)
		}
		next[i] = v
	}

	for i := range boids {
		boids[i].Vel = next[i]
		bounce(&boids[i], vp)
		boids[i].Pos = boids[i].Pos.Add(boids[i].Vel)
	}
	return true
}

// bounce reverses each velocity component that points further out of the
// viewport. The position itself is left alone: a boid that overshot keeps
// travelling back in on the following ticks.
func bounce(b *Boid, vp Viewport) {
	w, h := float64(vp.Width), float64(vp.Height)
	if (b.Pos.X < 0 && b.Vel.X < 0) || (b.Pos.X > w && b.Vel.X > 0) {
		b.Vel.X = -b.Vel.X
	}
	if (b.Pos.Y < 0 && b.Vel.Y < 0) || (b.Pos.Y > h && b.Vel.Y > 0) {
		b.Vel.Y = -b.Vel.Y
	}
}
