package flock

import "github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"

// Summary holds aggregate figures about a population.
type Summary struct {
	Count     int
	MeanSpeed float64
	MaxSpeed  float64
	Centroid  geometry.Vector2D
}

// Stats summarises boids. An empty slice yields the zero Summary.
func Stats(boids []Boid) Summary {
	s := Summary{Count: len(boids)}
	if s.Count == 0 {
		return s
	}
	var sumSpeed float64
	for _, b := range boids {
		sp := b.Speed()
		sumSpeed += sp
		if sp > s.MaxSpeed {
			s.MaxSpeed = sp
		}
		s.Centroid = s.Centroid.Add(b.Pos)
	}
	n := float64(s.Count)
	s.MeanSpeed = sumSpeed / n
	s.Centroid = s.Centroid.Mul(1 / n)
	return s
}
