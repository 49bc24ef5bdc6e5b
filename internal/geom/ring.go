package geom

import (
	"math"
	"sort"
)

// RingOrder returns the indices of the given 2D points sorted
// counterclockwise by angle around their centroid. Generated faces
// list their points in derivation order, not boundary order; for a
// convex polygon the angular sort recovers the ring.
func RingOrder(points []Point) []int {
	var cx, cy float64
	for _, p := range points {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(points))
	cy /= float64(len(points))

	indices := make([]int, len(points))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(i, j int) bool {
		a := math.Atan2(points[indices[i]].Y-cy, points[indices[i]].X-cx)
		b := math.Atan2(points[indices[j]].Y-cy, points[indices[j]].X-cx)
		return a < b
	})
	return indices
}
