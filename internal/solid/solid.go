// Package solid constructs the vertex, edge, and face data of regular
// and semi-regular convex polyhedra from closed-form coordinates.
//
// Each generator works in two or three stages:
//   - Enumerate vertices over the solid's sign/axis symmetry group using
//     exact algebraic constants (the golden ratio and friends).
//   - Derive edges, either analytically while walking the known
//     combinatorial structure (cube, tetrahedron) or by matching every
//     vertex pair against the solid's known edge length.
//   - Derive faces by axis-plane grouping, by exhaustive triangle
//     closure, or by face-plane membership.
//
// The pairwise and triple scans are O(n²)/O(n³) on purpose: n never
// exceeds 30, and the exhaustive form keeps the derivations obviously
// correct. Implementation is verbose for clarity.
package solid

import (
	"github.com/irfansharif/polyhedra/internal/geom"
)

// Edge is an unordered pair of indices into a Shape's point list.
// From and To are always distinct; edges are not deduplicated beyond
// the i<j enumeration order.
type Edge struct {
	From int
	To   int
}

// Face is an ordered list of point indices forming a polygon boundary.
// The order is the derivation's enumeration order, not a geometrically
// sorted ring; faces are consumed for display only.
type Face []int

// Shape is the (points, edges, faces) triple returned by a generator.
// Edges and faces always index into the accompanying point list; the
// three travel together. Shapes are value data, never mutated in place.
type Shape struct {
	Points []geom.Vertex
	Edges  []Edge
	Faces  []Face
}

var signs = []float64{-1, 1}

// edgesByLength emits an edge for every vertex pair whose distance is
// within geom.Tolerance of the given edge length, enumerated with i<j.
func edgesByLength(points []geom.Vertex, length float64) []Edge {
	var edges []Edge
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if geom.Close(geom.Dist(points[i], points[j]), length) {
				edges = append(edges, Edge{From: i, To: j})
			}
		}
	}
	return edges
}

// trianglesByLength emits a face for every index triple i<j<k whose
// three pairwise distances all equal the given edge length.
func trianglesByLength(points []geom.Vertex, length float64) []Face {
	var faces []Face
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if !geom.Close(geom.Dist(points[i], points[j]), length) {
				continue
			}
			for k := j + 1; k < len(points); k++ {
				if geom.Close(geom.Dist(points[i], points[k]), length) &&
					geom.Close(geom.Dist(points[j], points[k]), length) {
					faces = append(faces, Face{i, j, k})
				}
			}
		}
	}
	return faces
}

// facesOnPlanes emits, for each plane normal n, the face of all vertex
// indices i satisfying ⟨n, pᵢ⟩ ≈ offset, in ascending index order.
func facesOnPlanes(points []geom.Vertex, normals [][]float64, offset float64) []Face {
	var faces []Face
	for _, n := range normals {
		var f Face
		for i, p := range points {
			if geom.Close(geom.DotCoords(n, p.Coords), offset) {
				f = append(f, i)
			}
		}
		faces = append(faces, f)
	}
	return faces
}

// cyclicSigned returns the cyclic permutations of (a, b, c) with every
// sign combination applied to the non-zero entries. Zero entries keep a
// single sign so no duplicate vertices are produced.
func cyclicSigned(a, b, c float64) [][]float64 {
	base := []float64{a, b, c}
	var out [][]float64
	for axis := 0; axis < 3; axis++ {
		perm := []float64{
			base[(3-axis)%3],
			base[(4-axis)%3],
			base[(5-axis)%3],
		}
		out = append(out, signedCombos(perm)...)
	}
	return out
}

// signedCombos expands a coordinate triple into all sign combinations
// of its non-zero entries.
func signedCombos(c []float64) [][]float64 {
	out := [][]float64{{c[0], c[1], c[2]}}
	for axis := 0; axis < 3; axis++ {
		if c[axis] == 0 {
			continue
		}
		flipped := make([][]float64, 0, len(out)*2)
		for _, v := range out {
			neg := []float64{v[0], v[1], v[2]}
			neg[axis] = -neg[axis]
			flipped = append(flipped, v, neg)
		}
		out = flipped
	}
	return out
}

// verticesOf wraps raw coordinate triples as unlabeled vertices.
func verticesOf(coords [][]float64) []geom.Vertex {
	points := make([]geom.Vertex, len(coords))
	for i, c := range coords {
		points[i] = geom.Vertex{Coords: c}
	}
	return points
}
