package solid

import (
	"math"

	"github.com/irfansharif/polyhedra/internal/geom"
)

// Cube returns the unit-radius cube: 8 vertices at (±1, ±1, ±1), 12
// edges, 6 square faces. Edges are constructed directly (two corners
// are adjacent iff they differ in exactly one coordinate); faces are
// grouped by shared coordinate value per axis.
func Cube() Shape {
	var points []geom.Vertex
	for _, x := range signs {
		for _, y := range signs {
			for _, z := range signs {
				points = append(points, geom.Vertex{Coords: []float64{x, y, z}})
			}
		}
	}

	var edges []Edge
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			differing := 0
			for axis := 0; axis < 3; axis++ {
				if points[i].Coords[axis] != points[j].Coords[axis] {
					differing++
				}
			}
			if differing == 1 {
				edges = append(edges, Edge{From: i, To: j})
			}
		}
	}

	var faces []Face
	for axis := 0; axis < 3; axis++ {
		for _, s := range signs {
			var f Face
			for i, p := range points {
				if p.Coords[axis] == s {
					f = append(f, i)
				}
			}
			faces = append(faces, f)
		}
	}

	return Shape{Points: points, Edges: edges, Faces: faces}
}

// Tetrahedron returns the regular tetrahedron inscribed in the cube:
// the 4 corners with positive coordinate product. Every vertex pair is
// an edge and every triple is a face. Edge length 2√2.
func Tetrahedron() Shape {
	points := verticesOf([][]float64{
		{1, 1, 1},
		{1, -1, -1},
		{-1, 1, -1},
		{-1, -1, 1},
	})

	var edges []Edge
	var faces []Face
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			edges = append(edges, Edge{From: i, To: j})
			for k := j + 1; k < len(points); k++ {
				faces = append(faces, Face{i, j, k})
			}
		}
	}

	return Shape{Points: points, Edges: edges, Faces: faces}
}

// Dodecahedron returns the regular dodecahedron: the 8 cube corners
// (±1, ±1, ±1) plus the 12 cyclic permutations of (0, ±1/φ, ±φ).
// Edges are matched at length 2/φ; the 12 pentagonal faces are the
// vertex sets of the planes ⟨n, p⟩ = φ+1 with n ranging over the
// cyclic permutations of (0, ±φ, ±1).
func Dodecahedron() Shape {
	phi := geom.Phi

	var coords [][]float64
	for _, x := range signs {
		for _, y := range signs {
			for _, z := range signs {
				coords = append(coords, []float64{x, y, z})
			}
		}
	}
	coords = append(coords, cyclicSigned(0, 1/phi, phi)...)
	points := verticesOf(coords)

	edges := edgesByLength(points, 2/phi)
	faces := facesOnPlanes(points, cyclicSigned(0, phi, 1), phi+1)

	return Shape{Points: points, Edges: edges, Faces: faces}
}

// Icosahedron returns the regular icosahedron: the 12 cyclic
// permutations of (0, ±1, ±φ). Edges are matched at length 2; the 20
// triangular faces are found by exhaustive triangle closure.
func Icosahedron() Shape {
	phi := geom.Phi
	points := verticesOf(cyclicSigned(0, 1, phi))

	edges := edgesByLength(points, 2)
	faces := trianglesByLength(points, 2)

	return Shape{Points: points, Edges: edges, Faces: faces}
}

// Cuboctahedron returns the cuboctahedron: the 12 permutations of
// (±1, ±1, 0). Edges are matched at length √2. The 6 square faces sit
// on the axis planes (coordinate = ±1); the 8 triangles are found by
// closure.
func Cuboctahedron() Shape {
	points := verticesOf(cyclicSigned(1, 1, 0))

	edgeLength := math.Sqrt(2)
	edges := edgesByLength(points, edgeLength)

	var faces []Face
	for axis := 0; axis < 3; axis++ {
		for _, s := range signs {
			var f Face
			for i, p := range points {
				if geom.Close(p.Coords[axis], s) {
					f = append(f, i)
				}
			}
			faces = append(faces, f)
		}
	}
	faces = append(faces, trianglesByLength(points, edgeLength)...)

	return Shape{Points: points, Edges: edges, Faces: faces}
}

// Icosidodecahedron returns the icosidodecahedron: the 6 cyclic
// permutations of (0, 0, ±φ) plus the 24 cyclic permutations of
// (±1/2, ±φ/2, ±φ²/2). Edges are matched at length 1. The 20
// triangles are found by closure; the 12 pentagons are the vertex
// sets of the planes ⟨n, p⟩ = φ+1 with n ranging over the cyclic
// permutations of (±1, 0, ±φ).
func Icosidodecahedron() Shape {
	phi := geom.Phi

	coords := cyclicSigned(0, 0, phi)
	coords = append(coords, cyclicSigned(0.5, phi/2, phi*phi/2)...)
	points := verticesOf(coords)

	edges := edgesByLength(points, 1)

	faces := trianglesByLength(points, 1)
	faces = append(faces, facesOnPlanes(points, cyclicSigned(1, 0, phi), phi+1)...)

	return Shape{Points: points, Edges: edges, Faces: faces}
}
