package app

import (
	"math"

	"github.com/irfansharif/polyhedra/internal/render"
	"github.com/irfansharif/polyhedra/internal/solid"
)

const spinRate = 0.6 // radians per second while spinning

// CatalogEntry pairs a solid's display name with its generated shape.
type CatalogEntry struct {
	Name  string
	Shape solid.Shape
}

// Scene holds the model-side state of the viewer: the solid catalog,
// the active selection, its orientation, and the projection mode.
type Scene struct {
	Catalog []CatalogEntry
	Current int

	Yaw   float64
	Pitch float64
	Spin  bool
	Mode  render.ProjectionMode

	Seed int64
}

// NewScene builds the six-solid catalog. The generators are cheap,
// deterministic closed-form constructions, so everything is built
// eagerly.
func NewScene(seed int64) *Scene {
	return &Scene{
		Catalog: []CatalogEntry{
			{Name: "cube", Shape: solid.Cube()},
			{Name: "tetrahedron", Shape: solid.Tetrahedron()},
			{Name: "dodecahedron", Shape: solid.Dodecahedron()},
			{Name: "icosahedron", Shape: solid.Icosahedron()},
			{Name: "cuboctahedron", Shape: solid.Cuboctahedron()},
			{Name: "icosidodecahedron", Shape: solid.Icosidodecahedron()},
		},
		Pitch: 0.4, // slight initial tilt so faces read as 3D
		Yaw:   0.5,
		Spin:  true,
		Seed:  seed,
	}
}

// Entry returns the active catalog entry.
func (s *Scene) Entry() CatalogEntry {
	return s.Catalog[s.Current]
}

// Select switches the active solid; out-of-range indices are ignored.
func (s *Scene) Select(i int) bool {
	if i < 0 || i >= len(s.Catalog) {
		return false
	}
	s.Current = i
	return true
}

// Rotate nudges the orientation by the given yaw/pitch deltas, keeping
// both angles wrapped.
func (s *Scene) Rotate(dYaw, dPitch float64) {
	s.Yaw = math.Mod(s.Yaw+dYaw, 2*math.Pi)
	s.Pitch = math.Mod(s.Pitch+dPitch, 2*math.Pi)
}

// Step advances the spin animation by dt seconds.
func (s *Scene) Step(dt float64) {
	if !s.Spin {
		return
	}
	s.Rotate(spinRate*dt, spinRate*dt*0.35)
}

// ToggleSpin flips the spin animation on or off.
func (s *Scene) ToggleSpin() {
	s.Spin = !s.Spin
}

// ToggleMode cycles between the perspective and radial-explode
// projections.
func (s *Scene) ToggleMode() {
	if s.Mode == render.ModePerspective {
		s.Mode = render.ModeRadialExplode
	} else {
		s.Mode = render.ModePerspective
	}
}

// ResetOrientation restores the initial tilt.
func (s *Scene) ResetOrientation() {
	s.Yaw, s.Pitch = 0.5, 0.4
}
