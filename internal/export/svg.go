// Package export writes projected solids as SVG snapshots: filled,
// depth-sorted faces with a wireframe overlay, using the same display
// pipeline as the OpenGL renderer.
package export

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/irfansharif/polyhedra/internal/palette"
	"github.com/irfansharif/polyhedra/internal/render"
)

// backgroundColor matches the viewer's clear color.
var backgroundColor = colorful.Color{R: 1, G: 1, B: 1}

// WriteSVG renders the given solid to w as a width×height SVG
// document. Faces are painted back-to-front with their palette colors;
// edges are drawn on top as a wireframe. Vertices carrying labels get
// a small text annotation.
func WriteSVG(w io.Writer, data render.SolidRenderData, width, height int) error {
	screen, depths, err := render.ProjectSolid(data, width, height)
	if err != nil {
		return fmt.Errorf("projecting solid: %v", err)
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:"+palette.FormatHex(backgroundColor))

	for _, fi := range render.FaceOrder(data.Shape.Faces, depths) {
		ring := render.FaceRing(data.Shape.Faces[fi], screen)
		xs := make([]int, len(ring))
		ys := make([]int, len(ring))
		for j, p := range ring {
			xs[j] = int(p.X)
			ys[j] = int(p.Y)
		}
		fill := palette.FormatHex(data.FaceColors[fi%len(data.FaceColors)])
		canvas.Polygon(xs, ys, fmt.Sprintf("fill:%s;fill-opacity:0.9", fill))
	}

	stroke := palette.FormatHex(data.EdgeColor)
	for _, e := range data.Shape.Edges {
		p, q := screen[e.From], screen[e.To]
		canvas.Line(int(p.X), int(p.Y), int(q.X), int(q.Y),
			fmt.Sprintf("stroke:%s;stroke-width:1", stroke))
	}

	for i, vertex := range data.Shape.Points {
		if vertex.Label == "" {
			continue
		}
		canvas.Text(int(screen[i].X)+4, int(screen[i].Y)-4, vertex.Label,
			"font-size:10px;fill:"+stroke)
	}

	canvas.End()
	return nil
}
