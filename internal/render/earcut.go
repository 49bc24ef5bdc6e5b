package render

import (
	"fmt"

	"github.com/rclancey/earcut"

	"github.com/irfansharif/polyhedra/internal/geom"
)

// triangulate triangulates a polygon using the earcut algorithm. It
// takes the polygon's screen-space vertices and returns index triples
// into that slice, one per triangle. Polygons that collapse under
// projection (fewer than 3 distinct vertices) come back as an error so
// the caller can skip them.
func triangulate(polygon []geom.Point) ([][3]int, error) {
	if len(polygon) < 3 {
		return nil, fmt.Errorf("degenerate polygon (%d vertices < 3)", len(polygon))
	}

	// Flat coordinate array required by earcut: [x0, y0, x1, y1, ...].
	coords := make([]float64, len(polygon)*2)
	for i, p := range polygon {
		coords[i*2] = p.X
		coords[i*2+1] = p.Y
	}

	indices, err := earcut.Earcut(coords, nil /* holeIndices */, 2 /* dim */)
	if err != nil {
		return nil, fmt.Errorf("triangulation failed for %d-vertex polygon: %v", len(polygon), err)
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("invalid triangle count (indices: %d, not divisible by 3)", len(indices))
	}

	triangles := make([][3]int, len(indices)/3)
	for i := range triangles {
		triangles[i] = [3]int{indices[i*3], indices[i*3+1], indices[i*3+2]}
	}
	return triangles, nil
}
