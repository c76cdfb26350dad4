package simulation

import (
	"image/color"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

// Actor messages travel as protobuf values.
type (
	Tick           = pb.Tick
	SpawnRandom    = pb.SpawnRandom
	SpawnAt        = pb.SpawnAt
	Resize         = pb.Resize
	UpdateSettings = pb.UpdateSettings
	GetSnapshot    = pb.GetSnapshot
	FlockSnapshot  = pb.FlockSnapshot
	BoidState      = pb.BoidState
)

// BoidToProto converts a boid into its protobuf "Envelope".
func BoidToProto(b flock.Boid) *BoidState {
	return &BoidState{
		X:     b.Pos.X,
		Y:     b.Pos.Y,
		Vx:    b.Vel.X,
		Vy:    b.Vel.Y,
		Red:   uint32(b.Color.R),
		Green: uint32(b.Color.G),
		Blue:  uint32(b.Color.B),
	}
}

// BoidFromProto is the inverse of BoidToProto. Colour channels above 255
// are saturated.
func BoidFromProto(p *BoidState) flock.Boid {
	return flock.Boid{
		Pos:   geometry.Vector2D{X: p.GetX(), Y: p.GetY()},
		Vel:   geometry.Vector2D{X: p.GetVx(), Y: p.GetVy()},
		Color: color.RGBA{R: channel(p.GetRed()), G: channel(p.GetGreen()), B: channel(p.GetBlue()), A: 255},
	}
}

func channel(v uint32) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// NewSnapshot copies boids into a fresh snapshot; the caller may reuse the
// slice afterwards.
func NewSnapshot(boids []flock.Boid, vp flock.Viewport, ticks uint64, stepped bool) *FlockSnapshot {
	states := make([]*BoidState, len(boids))
	for i := range boids {
		states[i] = BoidToProto(boids[i])
	}
	return &FlockSnapshot{
		Boids:   states,
		Width:   int32(vp.Width),
		Height:  int32(vp.Height),
		Ticks:   ticks,
		Stepped: stepped,
	}
}

// SnapshotBoids decodes the ordered population carried by s.
func SnapshotBoids(s *FlockSnapshot) []flock.Boid {
	states := s.GetBoids()
	out := make([]flock.Boid, len(states))
	for i, p := range states {
		out[i] = BoidFromProto(p)
	}
	return out
}

// SettingsToProto wraps physics constants into an actor message.
func SettingsToProto(s flock.Settings) *UpdateSettings {
	return &UpdateSettings{
		MaxSpeed:         s.MaxSpeed,
		SeparationRadius: s.SeparationRadius,
		CohesionDivisor:  s.CohesionDivisor,
		AlignmentDivisor: s.AlignmentDivisor,
	}
}

// SettingsFromProto is the inverse of SettingsToProto.
func SettingsFromProto(p *UpdateSettings) flock.Settings {
	return flock.Settings{
		MaxSpeed:         p.GetMaxSpeed(),
		SeparationRadius: p.GetSeparationRadius(),
		CohesionDivisor:  p.GetCohesionDivisor(),
		AlignmentDivisor: p.GetAlignmentDivisor(),
	}
}
