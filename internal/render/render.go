// Package render handles the visual presentation of generated solids.
//
// It takes a Shape from the solid package and:
//  1. Rotates its vertices by the scene's yaw/pitch angles.
//  2. Flattens them to 2D via the selected projection transform.
//  3. Maps the result into the viewport, depth-sorts the faces
//     back-to-front, triangulates them, and uploads interleaved vertex
//     data (filled faces plus a wireframe) for OpenGL drawing.
package render

import (
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/irfansharif/polyhedra/internal/geom"
	"github.com/irfansharif/polyhedra/internal/memory"
	"github.com/irfansharif/polyhedra/internal/project"
	"github.com/irfansharif/polyhedra/internal/solid"
)

const viewportScaleFactor = 0.7

// Radial-explode radius bounds used by the viewer. The solids span
// roughly [-φ, φ] along the depth axis; these keep the exploded rings
// comfortably inside the viewport box.
const (
	radialRMin = 0.5
	radialRMax = 2.0
)

// ProjectionMode selects how the rotated solid is flattened to 2D.
type ProjectionMode int

const (
	ModePerspective ProjectionMode = iota
	ModeRadialExplode
)

func (m ProjectionMode) String() string {
	switch m {
	case ModePerspective:
		return "perspective"
	case ModeRadialExplode:
		return "radial explode"
	default:
		return "unknown"
	}
}

// SolidRenderData carries everything needed to draw one solid.
type SolidRenderData struct {
	Shape      solid.Shape
	Yaw        float64 // rotation around the z axis
	Pitch      float64 // rotation around the y axis
	Mode       ProjectionMode
	FaceColors []colorful.Color
	EdgeColor  colorful.Color
}

// Stats tracks rendering performance metrics.
type Stats struct {
	LastPrepareTimeMs float64 // time spent in last Prepare() call in milliseconds
	LastDrawTimeUs    float64 // time spent in last Draw() call in microseconds
	LastTriangles     int
}

type Renderer struct {
	w, h             int
	zoom, panX, panY float64

	memController *memory.MeshController
	shaderManager *ShaderManager
	stats         Stats
}

func NewRenderer(memController *memory.MeshController) *Renderer {
	return &Renderer{
		zoom:          1.0,
		shaderManager: NewShaderManager(),
		memController: memController,
	}
}

func (r *Renderer) SetView(w, h int, zoom, panX, panY float64) {
	r.w, r.h = w, h
	r.zoom = zoom
	r.panX, r.panY = panX, panY
}

// Prepare regenerates the GPU geometry for the given solid.
func (r *Renderer) Prepare(data SolidRenderData, w, h int) error {
	startTime := time.Now()

	if w <= 0 || h <= 0 {
		log.Fatalf("cannot prepare renderer: invalid viewport dimensions %dx%d", w, h)
	}
	r.w, r.h = w, h

	screen, depths, err := ProjectSolid(data, w, h)
	if err != nil {
		return err
	}

	faceVertices, triangles := prepareFaces(data, depths, screen)
	edgeVertices := prepareWireframe(data, screen)

	if err := r.memController.Upload(memory.MeshFaces, faceVertices, memory.Triangles); err != nil {
		return fmt.Errorf("uploading faces: %v", err)
	}
	if err := r.memController.Upload(memory.MeshWireframe, edgeVertices, memory.Lines); err != nil {
		return fmt.Errorf("uploading wireframe: %v", err)
	}

	r.stats.LastTriangles = triangles
	r.stats.LastPrepareTimeMs = float64(time.Since(startTime).Microseconds()) / 1000.0
	return nil
}

// ProjectSolid runs the shared display pipeline: rotate the solid's
// vertices by yaw/pitch, flatten them with the selected projection,
// and map the result into the central portion of a w×h viewport. It
// returns the screen-space points alongside each vertex's rotated
// depth (used for painter's-algorithm face sorting).
func ProjectSolid(data SolidRenderData, w, h int) ([]geom.Point, []float64, error) {
	rotated := rotate(data.Shape.Points, data.Yaw, data.Pitch)
	projected := flatten(rotated, data.Mode)

	screen, err := mapToViewport(projected, w, h)
	if err != nil {
		return nil, nil, err
	}

	depths := make([]float64, len(rotated))
	for i, p := range rotated {
		depths[i] = p.Coords[0]
	}
	return screen, depths, nil
}

// rotate applies yaw (around z) then pitch (around y) to every vertex.
func rotate(points []geom.Vertex, yaw, pitch float64) []geom.Vertex {
	out := make([]geom.Vertex, len(points))
	for i, p := range points {
		coords := geom.RotateY(geom.RotateZ(p.Coords, yaw), pitch)
		out[i] = geom.Vertex{Coords: coords, Label: p.Label}
	}
	return out
}

// flatten projects the rotated vertices to 2D with the selected mode.
// The first coordinate is the depth axis for both transforms.
func flatten(points []geom.Vertex, mode ProjectionMode) []geom.Vertex {
	switch mode {
	case ModeRadialExplode:
		return project.RadialExplode(points, radialRMin, radialRMax, project.ExplodeOptions{
			KeepAxisOrder: true,
		})
	default:
		return project.Perspective(points, project.DefaultMinDepth)
	}
}

// mapToViewport maps the projected 2D points into the central portion
// of the viewport.
func mapToViewport(projected []geom.Vertex, w, h int) ([]geom.Point, error) {
	bounds, err := computeBounds(projected)
	if err != nil {
		return nil, err
	}

	marginW := float64(w) * (1 - viewportScaleFactor) / 2
	marginH := float64(h) * (1 - viewportScaleFactor) / 2
	target := geom.MakeBox(marginW, marginH, float64(w)-2*marginW, float64(h)-2*marginH)
	toScreen := geom.FillBox(bounds, target, false)

	screen := make([]geom.Point, len(projected))
	for i, p := range projected {
		screen[i] = toScreen.MulPoint(geom.MakePoint(p.Coords[0], p.Coords[1]))
	}
	return screen, nil
}

// FaceOrder returns face indices sorted back-to-front by mean vertex
// depth, so nearer faces paint over farther ones.
func FaceOrder(faces []solid.Face, depths []float64) []int {
	type faceInfo struct {
		idx      int
		avgDepth float64
	}
	order := make([]faceInfo, len(faces))
	for i, face := range faces {
		depth := 0.0
		for _, pi := range face {
			depth += depths[pi]
		}
		order[i] = faceInfo{idx: i, avgDepth: depth / float64(len(face))}
	}
	sort.SliceStable(order, func(i, j int) bool { return order[i].avgDepth > order[j].avgDepth })

	indices := make([]int, len(order))
	for i, fi := range order {
		indices[i] = fi.idx
	}
	return indices
}

// FaceRing returns a face's screen points in ring (boundary) order.
func FaceRing(face solid.Face, screen []geom.Point) []geom.Point {
	facePoints := make([]geom.Point, len(face))
	for j, pi := range face {
		facePoints[j] = screen[pi]
	}
	ring := geom.RingOrder(facePoints)
	ordered := make([]geom.Point, len(ring))
	for j, k := range ring {
		ordered[j] = facePoints[k]
	}
	return ordered
}

// prepareFaces emits the filled-face triangle vertices, back-to-front.
func prepareFaces(data SolidRenderData, depths []float64, screen []geom.Point) ([]float32, int) {
	var vertices []float32
	triangleCount := 0
	for _, fi := range FaceOrder(data.Shape.Faces, depths) {
		ordered := FaceRing(data.Shape.Faces[fi], screen)

		triangles, err := triangulate(ordered)
		if err != nil {
			log.Printf("WARNING: skipping face %d: %v", fi, err)
			continue
		}

		color := data.FaceColors[fi%len(data.FaceColors)]
		for _, tri := range triangles {
			for _, vi := range tri {
				vertices = append(vertices,
					float32(ordered[vi].X), float32(ordered[vi].Y),
					float32(color.R), float32(color.G), float32(color.B), 1.0,
				)
			}
			triangleCount++
		}
	}
	return vertices, triangleCount
}

// prepareWireframe emits one line segment per edge.
func prepareWireframe(data SolidRenderData, screen []geom.Point) []float32 {
	c := data.EdgeColor
	vertices := make([]float32, 0, len(data.Shape.Edges)*12)
	for _, e := range data.Shape.Edges {
		for _, pi := range []int{e.From, e.To} {
			vertices = append(vertices,
				float32(screen[pi].X), float32(screen[pi].Y),
				float32(c.R), float32(c.G), float32(c.B), 1.0,
			)
		}
	}
	return vertices
}

// computeBounds calculates the axis-aligned bounding box of the
// projected points. Returns an error when the points collapse to a
// degenerate box (nothing sensible to draw).
func computeBounds(points []geom.Vertex) (geom.Box, error) {
	if len(points) == 0 {
		return geom.Box{}, fmt.Errorf("no projected points")
	}

	xmin, xmax := math.MaxFloat64, -math.MaxFloat64
	ymin, ymax := math.MaxFloat64, -math.MaxFloat64
	for _, p := range points {
		xmin = math.Min(xmin, p.Coords[0])
		xmax = math.Max(xmax, p.Coords[0])
		ymin = math.Min(ymin, p.Coords[1])
		ymax = math.Max(ymax, p.Coords[1])
	}

	if math.IsInf(xmin, 0) || math.IsInf(xmax, 0) || math.IsInf(ymin, 0) || math.IsInf(ymax, 0) {
		return geom.Box{}, fmt.Errorf("projected bounds contain infinite values: x[%f,%f] y[%f,%f]", xmin, xmax, ymin, ymax)
	}
	if xmin >= xmax || ymin >= ymax {
		return geom.Box{}, fmt.Errorf("projected bounds are degenerate: x[%f,%f] y[%f,%f]", xmin, xmax, ymin, ymax)
	}
	return geom.MakeBox(xmin, ymin, xmax-xmin, ymax-ymin), nil
}

func (r *Renderer) Draw() {
	startTime := time.Now()

	matrix := r.computeTransformMatrix()
	r.shaderManager.SetTransform(matrix)
	r.memController.Draw()

	r.stats.LastDrawTimeUs = float64(time.Since(startTime).Microseconds())
}

// Stats returns the current performance statistics.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// computeTransformMatrix computes the complete transformation matrix
// from screen coordinates to OpenGL NDC, including zoom and pan.
func (r *Renderer) computeTransformMatrix() [16]float32 {
	transform := geom.MakeAffine(1, 0, 0, 0, 1, 0)
	transform = r.applyZoomTransform(transform)
	transform = r.applyPanTransform(transform)
	transform = r.applyScreenToNDCTransform(transform)
	return affineToMatrix4(transform)
}

// applyZoomTransform applies zoom scaling around the viewport center.
func (r *Renderer) applyZoomTransform(baseTransform geom.Affine) geom.Affine {
	viewportCenterX := float64(r.w) / 2.0
	viewportCenterY := float64(r.h) / 2.0

	translateToOrigin := geom.MakeAffine(1, 0, -viewportCenterX, 0, 1, -viewportCenterY)
	uniformScale := geom.MakeAffine(r.zoom, 0, 0, 0, r.zoom, 0)
	translateBack := geom.MakeAffine(1, 0, viewportCenterX, 0, 1, viewportCenterY)

	return translateBack.Mul(uniformScale.Mul(translateToOrigin.Mul(baseTransform)))
}

// applyPanTransform applies pan translation in screen space.
func (r *Renderer) applyPanTransform(baseTransform geom.Affine) geom.Affine {
	panTranslation := geom.MakeAffine(1, 0, r.panX, 0, 1, r.panY)
	return panTranslation.Mul(baseTransform)
}

// applyScreenToNDCTransform converts screen coordinates to OpenGL NDC.
func (r *Renderer) applyScreenToNDCTransform(baseTransform geom.Affine) geom.Affine {
	screenToNDC := geom.MakeAffine(
		2.0/float64(r.w), 0, -1,
		0, -2.0/float64(r.h), 1,
	)
	return screenToNDC.Mul(baseTransform)
}

// affineToMatrix4 converts an affine transform to OpenGL 4x4 matrix format.
func affineToMatrix4(transform geom.Affine) [16]float32 {
	return [16]float32{
		float32(transform.A), float32(transform.B), 0, 0,
		float32(transform.D), float32(transform.E), 0, 0,
		0, 0, 1, 0,
		float32(transform.C), float32(transform.F), 0, 1,
	}
}
