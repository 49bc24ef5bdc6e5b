// Package geom provides the geometric primitives shared by the solid
// generators, the projection transforms, and the viewer:
// - Labeled N-dimensional vertices with distance/closeness helpers
// - 2D points and affine transformations (screen mapping)
// - 3D axis rotations
package geom

import (
	"fmt"
	"log"
	"math"
)

// Tolerance is the absolute closeness threshold used for exact-distance
// edge matching and face-plane membership. Coordinates are O(1) in
// magnitude, so an absolute comparison is adequate.
const Tolerance = 1e-5

// Phi is the golden ratio, used in the dodecahedron, icosahedron and
// icosidodecahedron coordinate formulas.
var Phi = (1 + math.Sqrt(5)) / 2

// Close reports whether two scalars are within Tolerance of each other.
func Close(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Vertex is an immutable N-dimensional point with an optional display
// label. The label is auxiliary metadata, not part of the numeric
// identity. All vertices within one point set share a dimension.
type Vertex struct {
	Coords []float64
	Label  string
}

// MakeVertex constructs a labeled vertex from explicit coordinates.
func MakeVertex(label string, coords ...float64) Vertex {
	return Vertex{Coords: coords, Label: label}
}

// Dim returns the vertex's dimension.
func (v Vertex) Dim() int { return len(v.Coords) }

// Dist returns the Euclidean distance between two vertices of the same
// dimension.
func Dist(a, b Vertex) float64 {
	if a.Dim() != b.Dim() {
		log.Fatalf("dimension mismatch: %d vs %d", a.Dim(), b.Dim())
	}
	sum := 0.0
	for i := range a.Coords {
		d := a.Coords[i] - b.Coords[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Norm returns the Euclidean norm of a coordinate vector.
func Norm(coords []float64) float64 {
	sum := 0.0
	for _, c := range coords {
		sum += c * c
	}
	return math.Sqrt(sum)
}

// DotCoords returns the dot product of two coordinate vectors of equal
// length.
func DotCoords(a, b []float64) float64 {
	if len(a) != len(b) {
		log.Fatalf("dimension mismatch: %d vs %d", len(a), len(b))
	}
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// RotateX rotates a 3D coordinate vector around the x axis.
func RotateX(c []float64, angle float64) []float64 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return []float64{c[0], c[1]*cos - c[2]*sin, c[1]*sin + c[2]*cos}
}

// RotateY rotates a 3D coordinate vector around the y axis.
func RotateY(c []float64, angle float64) []float64 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return []float64{c[0]*cos + c[2]*sin, c[1], -c[0]*sin + c[2]*cos}
}

// RotateZ rotates a 3D coordinate vector around the z axis.
func RotateZ(c []float64, angle float64) []float64 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return []float64{c[0]*cos - c[1]*sin, c[0]*sin + c[1]*cos, c[2]}
}

// Point represents a 2D point or vector in Cartesian coordinates.
type Point struct {
	X float64
	Y float64
}

// Box represents an axis-aligned rectangle.
type Box struct {
	X float64
	Y float64
	W float64
	H float64
}

// Affine represents a 2D affine transform in row-major form:
// [ a b c ]
// [ d e f ]
// where (x', y') = (a*x + b*y + c, d*x + e*y + f)
type Affine struct {
	A float64
	B float64
	C float64
	D float64
	E float64
	F float64
}

func MakePoint(x, y float64) Point               { return Point{X: x, Y: y} }
func MakeBox(x, y, w, h float64) Box             { return Box{X: x, Y: y, W: w, H: h} }
func MakeAffine(a, b, c, d, e, f float64) Affine { return Affine{A: a, B: b, C: c, D: d, E: e, F: f} }

func (p Point) Add(q Point) Point     { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point     { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

func Dot(p, q Point) float64 { return p.X*q.X + p.Y*q.Y }

func DistPoint(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// MulPoint applies the affine transform to a point.
func (t Affine) MulPoint(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.C,
		Y: t.D*p.X + t.E*p.Y + t.F,
	}
}

// Mul composes two affine transforms (applies u then t).
func (t Affine) Mul(u Affine) Affine {
	return MakeAffine(
		t.A*u.A+t.B*u.D,
		t.A*u.B+t.B*u.E,
		t.A*u.C+t.B*u.F+t.C,
		t.D*u.A+t.E*u.D,
		t.D*u.B+t.E*u.E,
		t.D*u.C+t.E*u.F+t.F,
	)
}

// Inv returns the inverse of the affine transform.
// Returns an error if the transform is not invertible (determinant is zero).
func (t Affine) Inv() (Affine, error) {
	det := t.A*t.E - t.B*t.D
	if math.Abs(det) < 1e-10 {
		return Affine{}, fmt.Errorf("affine transform is not invertible (determinant ≈ 0)")
	}
	return MakeAffine(
		t.E/det, -t.B/det, (t.B*t.F-t.C*t.E)/det,
		-t.D/det, t.A/det, (t.C*t.D-t.A*t.F)/det,
	), nil
}

// FillBox returns a transform that maps box b1 into b2, optionally allowing a
// 90-degree rotation.
func FillBox(b1, b2 Box, allowRotate bool) Affine {
	if b1.W <= 0 || b1.H <= 0 {
		log.Fatalf("source box must have positive width and height, got W=%v H=%v", b1.W, b1.H)
	}
	if b2.W <= 0 || b2.H <= 0 {
		log.Fatalf("destination box must have positive width and height, got W=%v H=%v", b2.W, b2.H)
	}

	sc := math.Min(b2.W/b1.W, b2.H/b1.H)
	rsc := math.Min(b2.W/b1.H, b2.H/b1.W)
	centerDst := MakeAffine(1, 0, b2.X+0.5*b2.W, 0, 1, b2.Y+0.5*b2.H)
	centerSrc := MakeAffine(1, 0, -(b1.X + 0.5*b1.W), 0, 1, -(b1.Y + 0.5*b1.H))
	if !allowRotate || sc > rsc {
		return centerDst.Mul(MakeAffine(sc, 0, 0, 0, sc, 0)).Mul(centerSrc)
	}
	rot := MakeAffine(0, -1, 0, 1, 0, 0)
	return centerDst.Mul(MakeAffine(rsc, 0, 0, 0, rsc, 0)).Mul(rot).Mul(centerSrc)
}
