package project_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfansharif/polyhedra/internal/geom"
	"github.com/irfansharif/polyhedra/internal/project"
)

func TestRadialExplode(t *testing.T) {
	points := []geom.Vertex{
		geom.MakeVertex("near", 0, 3, 4),
		geom.MakeVertex("mid", 1, 0, 2),
		geom.MakeVertex("far", 2, 5, 0),
	}

	out := project.RadialExplode(points, 1, 3, project.ExplodeOptions{KeepAxisOrder: true})
	require.Len(t, out, len(points))

	// Depths 0, 1, 2 span the range, so the radii land on 1, 2, 3.
	wantRadius := []float64{1, 2, 3}
	for i, p := range out {
		assert.Equal(t, points[i].Label, p.Label)
		require.Equal(t, 2, p.Dim())
		assert.InDelta(t, wantRadius[i], geom.Norm(p.Coords), 1e-12)
	}

	// Direction is preserved: (3, 4)/5 scaled to radius 1.
	assert.InDelta(t, 0.6, out[0].Coords[0], 1e-12)
	assert.InDelta(t, 0.8, out[0].Coords[1], 1e-12)
}

func TestRadialExplodeAxisSwap(t *testing.T) {
	points := []geom.Vertex{geom.MakeVertex("p", 0, 3, 4)}

	// Default behavior swaps the (y, z) pair before exploding.
	out := project.RadialExplode(points, 1, 3, project.ExplodeOptions{})
	require.Len(t, out, 1)
	assert.InDelta(t, 0.8, out[0].Coords[0], 1e-12)
	assert.InDelta(t, 0.6, out[0].Coords[1], 1e-12)
}

func TestRadialExplodeRotation(t *testing.T) {
	// A single point has a degenerate depth range, so t=0: the radius
	// pins at rMin and the rotation at AngleMin.
	points := []geom.Vertex{geom.MakeVertex("p", 5, 1, 0)}

	out := project.RadialExplode(points, 2, 4, project.ExplodeOptions{
		AngleMin:      math.Pi / 2,
		AngleMax:      math.Pi,
		Rotate:        true,
		KeepAxisOrder: true,
	})
	require.Len(t, out, 1)

	// (1, 0) at radius 2, rotated a quarter turn: (0, 2).
	assert.InDelta(t, 0, out[0].Coords[0], 1e-12)
	assert.InDelta(t, 2, out[0].Coords[1], 1e-12)
}

func TestRadialExplodeOnDepthAxis(t *testing.T) {
	points := []geom.Vertex{
		geom.MakeVertex("axis", 0, 0, 0),
		geom.MakeVertex("off", 1, 1, 1),
	}

	out := project.RadialExplode(points, 1, 3, project.ExplodeOptions{})
	require.Len(t, out, 2)

	// No direction to explode along: the point collapses to the origin.
	assert.Equal(t, []float64{0, 0}, out[0].Coords)
	assert.Equal(t, "axis", out[0].Label)
}

func TestRadialExplodeN(t *testing.T) {
	points := []geom.Vertex{
		geom.MakeVertex("a", 0, 1, 0, 0),
		geom.MakeVertex("b", 2, 0, 3, 4),
	}

	out := project.RadialExplodeN(points, 1, 3)
	require.Len(t, out, 2)

	for i, p := range out {
		assert.Equal(t, points[i].Label, p.Label)
		require.Equal(t, 3, p.Dim())
	}

	// The shallow point sits at radius rMin, the deep one at rMax.
	assert.InDelta(t, 1, geom.Norm(out[0].Coords), 1e-12)
	assert.InDelta(t, 3, geom.Norm(out[1].Coords), 1e-12)

	// Tail direction preserved: (0, 3, 4)/5 scaled to radius 3.
	assert.InDelta(t, 0, out[1].Coords[0], 1e-12)
	assert.InDelta(t, 1.8, out[1].Coords[1], 1e-12)
	assert.InDelta(t, 2.4, out[1].Coords[2], 1e-12)
}

func TestRadialExplodeNZeroTail(t *testing.T) {
	points := []geom.Vertex{
		geom.MakeVertex("axis", 0, 0, 0, 0),
		geom.MakeVertex("off", 1, 1, 0, 0),
	}

	out := project.RadialExplodeN(points, 1, 3)
	assert.Equal(t, []float64{0, 0, 0}, out[0].Coords)
}

func TestPerspective(t *testing.T) {
	points := []geom.Vertex{
		geom.MakeVertex("a", 4, 8, 6),
		geom.MakeVertex("b", 2, 2, 2),
	}

	out := project.Perspective(points, project.DefaultMinDepth)
	require.Len(t, out, 2)

	// xMin is 2, so depths become 4 and 2 after translation.
	require.Equal(t, 2, out[0].Dim())
	assert.InDelta(t, 2, out[0].Coords[0], 1e-12)
	assert.InDelta(t, 1.5, out[0].Coords[1], 1e-12)
	assert.InDelta(t, 1, out[1].Coords[0], 1e-12)
	assert.InDelta(t, 1, out[1].Coords[1], 1e-12)

	for i, p := range out {
		assert.Equal(t, points[i].Label, p.Label)
	}
}

func TestPerspectiveUniformDepth(t *testing.T) {
	// All points at the same depth divide by minDepth exactly.
	points := []geom.Vertex{
		geom.MakeVertex("", 5, 10),
		geom.MakeVertex("", 5, -6),
	}

	out := project.Perspective(points, 2)
	require.Len(t, out, 2)
	require.Equal(t, 1, out[0].Dim())
	assert.InDelta(t, 5, out[0].Coords[0], 1e-12)
	assert.InDelta(t, -3, out[1].Coords[0], 1e-12)
}

func TestPerspectiveNegativeDepths(t *testing.T) {
	// Depths behind the origin still translate to ≥ minDepth, keeping
	// the divide safe.
	points := []geom.Vertex{
		geom.MakeVertex("", -7, 3, 3),
		geom.MakeVertex("", -3, 6, 0),
	}

	out := project.Perspective(points, 2)
	assert.InDelta(t, 1.5, out[0].Coords[0], 1e-12)
	assert.InDelta(t, 1, out[1].Coords[0], 1e-12)
	assert.InDelta(t, 0, out[1].Coords[1], 1e-12)
}
