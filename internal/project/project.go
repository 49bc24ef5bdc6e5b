// Package project flattens labeled N-dimensional point sets to lower
// dimensions for display. All transforms are pure, preserve the 1:1
// input/output correspondence (same count, same order), and carry each
// point's label through unchanged.
//
// The first coordinate always acts as the depth axis: radial explode
// maps it to an output radius, perspective divides the remaining
// coordinates by it.
package project

import (
	"math"

	"github.com/irfansharif/polyhedra/internal/geom"
)

// DefaultMinDepth is the default post-translation depth floor for
// Perspective.
const DefaultMinDepth = 2

// ExplodeOptions configures RadialExplode.
type ExplodeOptions struct {
	// AngleMin and AngleMax bound the rotation applied to each output
	// point, interpolated over the observed depth range. Only applied
	// when Rotate is set.
	AngleMin float64
	AngleMax float64
	Rotate   bool

	// KeepAxisOrder maps (y, z) to the output axes as-is; when unset
	// the two are swapped.
	KeepAxisOrder bool
}

// RadialExplode maps 3D points to 2D by turning each point's first
// coordinate into a radius: the observed depth range [xMin, xMax] is
// linearly remapped to [rMin, rMax], and the point's (y, z) pair is
// rescaled to sit at that radius. With opts.Rotate set, each output
// point is additionally rotated by an angle interpolated from AngleMin
// to AngleMax over the same depth range.
//
// A point lying exactly on the depth axis has no direction to explode
// along; it maps to the origin.
func RadialExplode(points []geom.Vertex, rMin, rMax float64, opts ExplodeOptions) []geom.Vertex {
	xMin, xMax := depthRange(points)

	out := make([]geom.Vertex, len(points))
	for i, p := range points {
		t := unitLerp(p.Coords[0], xMin, xMax)
		r := rMin + t*(rMax-rMin)

		a, b := p.Coords[1], p.Coords[2]
		if !opts.KeepAxisOrder {
			a, b = b, a
		}

		length := math.Sqrt(a*a + b*b)
		if length == 0 {
			out[i] = geom.Vertex{Coords: []float64{0, 0}, Label: p.Label}
			continue
		}
		a, b = a/length*r, b/length*r

		if opts.Rotate {
			angle := opts.AngleMin + t*(opts.AngleMax-opts.AngleMin)
			cos, sin := math.Cos(angle), math.Sin(angle)
			a, b = a*cos-b*sin, a*sin+b*cos
		}

		out[i] = geom.Vertex{Coords: []float64{a, b}, Label: p.Label}
	}
	return out
}

// RadialExplodeN is the N-dimensional generalization of RadialExplode,
// without the rotation and axis-swap features: the first coordinate is
// mapped to a radius in [rMin, rMax] and the remaining N−1 coordinates
// are uniformly rescaled, as a vector, to that radius. Zero-length
// tails map to the origin.
func RadialExplodeN(points []geom.Vertex, rMin, rMax float64) []geom.Vertex {
	xMin, xMax := depthRange(points)

	out := make([]geom.Vertex, len(points))
	for i, p := range points {
		t := unitLerp(p.Coords[0], xMin, xMax)
		r := rMin + t*(rMax-rMin)

		tail := p.Coords[1:]
		coords := make([]float64, len(tail))
		if length := geom.Norm(tail); length != 0 {
			for j, c := range tail {
				coords[j] = c / length * r
			}
		}
		out[i] = geom.Vertex{Coords: coords, Label: p.Label}
	}
	return out
}

// Perspective collapses N-dimensional points to N−1 dimensions with a
// camera-style perspective divide: all points are translated along the
// first coordinate so its minimum equals minDepth, then each point's
// remaining coordinates are divided by its translated depth. The
// translated depth is always ≥ minDepth, so the divide is safe for any
// minDepth > 0.
func Perspective(points []geom.Vertex, minDepth float64) []geom.Vertex {
	xMin := math.MaxFloat64
	for _, p := range points {
		xMin = math.Min(xMin, p.Coords[0])
	}

	out := make([]geom.Vertex, len(points))
	for i, p := range points {
		depth := p.Coords[0] - xMin + minDepth
		tail := p.Coords[1:]
		coords := make([]float64, len(tail))
		for j, c := range tail {
			coords[j] = c / depth
		}
		out[i] = geom.Vertex{Coords: coords, Label: p.Label}
	}
	return out
}

// depthRange returns the observed range of first coordinates.
func depthRange(points []geom.Vertex) (float64, float64) {
	xMin, xMax := math.MaxFloat64, -math.MaxFloat64
	for _, p := range points {
		xMin = math.Min(xMin, p.Coords[0])
		xMax = math.Max(xMax, p.Coords[0])
	}
	return xMin, xMax
}

// unitLerp maps x from [lo, hi] to [0, 1]. A degenerate range (all
// depths equal) maps to 0, pinning the radius at rMin.
func unitLerp(x, lo, hi float64) float64 {
	if hi == lo {
		return 0
	}
	return (x - lo) / (hi - lo)
}
