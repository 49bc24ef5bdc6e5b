package solid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfansharif/polyhedra/internal/geom"
	"github.com/irfansharif/polyhedra/internal/solid"
)

func TestSolidCombinatorics(t *testing.T) {
	phi := geom.Phi
	tests := []struct {
		name       string
		build      func() solid.Shape
		vertices   int
		edges      int
		faces      int
		edgeLength float64
		faceSizes  map[int]int // face vertex count -> number of such faces
	}{
		{"cube", solid.Cube, 8, 12, 6, 2, map[int]int{4: 6}},
		{"tetrahedron", solid.Tetrahedron, 4, 6, 4, 2 * math.Sqrt2, map[int]int{3: 4}},
		{"dodecahedron", solid.Dodecahedron, 20, 30, 12, 2 / phi, map[int]int{5: 12}},
		{"icosahedron", solid.Icosahedron, 12, 30, 20, 2, map[int]int{3: 20}},
		{"cuboctahedron", solid.Cuboctahedron, 12, 24, 14, math.Sqrt2, map[int]int{3: 8, 4: 6}},
		{"icosidodecahedron", solid.Icosidodecahedron, 30, 60, 32, 1, map[int]int{3: 20, 5: 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape := tt.build()
			require.Len(t, shape.Points, tt.vertices)
			require.Len(t, shape.Edges, tt.edges)
			require.Len(t, shape.Faces, tt.faces)

			// Euler characteristic of a convex polyhedron: V - E + F = 2.
			assert.Equal(t, 2, len(shape.Points)-len(shape.Edges)+len(shape.Faces))

			for _, e := range shape.Edges {
				require.NotEqual(t, e.From, e.To)
				require.GreaterOrEqual(t, e.From, 0)
				require.Less(t, e.To, len(shape.Points))
				assert.InDelta(t, tt.edgeLength,
					geom.Dist(shape.Points[e.From], shape.Points[e.To]), geom.Tolerance)
			}

			sizes := map[int]int{}
			for _, f := range shape.Faces {
				require.GreaterOrEqual(t, len(f), 3)
				for _, pi := range f {
					require.GreaterOrEqual(t, pi, 0)
					require.Less(t, pi, len(shape.Points))
				}
				sizes[len(f)]++
				assertCoplanar(t, shape, f)
			}
			assert.Equal(t, tt.faceSizes, sizes)
		})
	}
}

// assertCoplanar checks that all of a face's points lie on the plane
// spanned by its first three points, within the derivation tolerance.
func assertCoplanar(t *testing.T, shape solid.Shape, face solid.Face) {
	t.Helper()

	p0 := shape.Points[face[0]].Coords
	u := sub(shape.Points[face[1]].Coords, p0)
	v := sub(shape.Points[face[2]].Coords, p0)
	n := cross(u, v)
	length := geom.Norm(n)
	require.Greater(t, length, geom.Tolerance, "first three face points are collinear")
	for i := range n {
		n[i] /= length
	}

	for _, pi := range face {
		offset := geom.DotCoords(n, sub(shape.Points[pi].Coords, p0))
		assert.InDelta(t, 0, offset, geom.Tolerance)
	}
}

func sub(a, b []float64) []float64 {
	return []float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross(a, b []float64) []float64 {
	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func TestCubeGeometry(t *testing.T) {
	shape := solid.Cube()

	// Exactly 8 distinct corners, each a combination of (±1, ±1, ±1).
	corners := map[[3]float64]bool{}
	for _, p := range shape.Points {
		require.Equal(t, 3, p.Dim())
		for _, c := range p.Coords {
			require.Equal(t, 1.0, math.Abs(c))
		}
		corners[[3]float64{p.Coords[0], p.Coords[1], p.Coords[2]}] = true
	}
	require.Len(t, corners, 8)

	// Each edge connects corners differing in exactly one coordinate sign.
	for _, e := range shape.Edges {
		differing := 0
		for axis := 0; axis < 3; axis++ {
			if shape.Points[e.From].Coords[axis] != shape.Points[e.To].Coords[axis] {
				differing++
			}
		}
		assert.Equal(t, 1, differing)
	}

	// Each face has exactly 4 corners sharing one fixed coordinate value.
	for _, f := range shape.Faces {
		require.Len(t, f, 4)
		shared := false
		for axis := 0; axis < 3; axis++ {
			same := true
			for _, pi := range f {
				if shape.Points[pi].Coords[axis] != shape.Points[f[0]].Coords[axis] {
					same = false
					break
				}
			}
			if same {
				shared = true
			}
		}
		assert.True(t, shared, "face %v shares no coordinate", f)
	}
}

func TestVertexDegrees(t *testing.T) {
	tests := []struct {
		name   string
		build  func() solid.Shape
		degree int
	}{
		{"cube", solid.Cube, 3},
		{"tetrahedron", solid.Tetrahedron, 3},
		{"dodecahedron", solid.Dodecahedron, 3},
		{"icosahedron", solid.Icosahedron, 5},
		{"cuboctahedron", solid.Cuboctahedron, 4},
		{"icosidodecahedron", solid.Icosidodecahedron, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape := tt.build()
			degrees := make([]int, len(shape.Points))
			for _, e := range shape.Edges {
				degrees[e.From]++
				degrees[e.To]++
			}
			for i, d := range degrees {
				assert.Equal(t, tt.degree, d, "vertex %d", i)
			}
		})
	}
}

func TestGeneratorsAreDeterministic(t *testing.T) {
	a, b := solid.Dodecahedron(), solid.Dodecahedron()
	require.Equal(t, a.Edges, b.Edges)
	require.Equal(t, a.Faces, b.Faces)
	for i := range a.Points {
		require.Equal(t, a.Points[i].Coords, b.Points[i].Coords)
	}
}
