package export_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfansharif/polyhedra/internal/export"
	"github.com/irfansharif/polyhedra/internal/render"
	"github.com/irfansharif/polyhedra/internal/solid"
)

func TestWriteSVG(t *testing.T) {
	shape := solid.Cube()
	shape.Points[0].Label = "origin"

	data := render.SolidRenderData{
		Shape:      shape,
		Yaw:        0.5,
		Pitch:      0.4,
		Mode:       render.ModePerspective,
		FaceColors: []colorful.Color{{R: 1}},
		EdgeColor:  colorful.Color{},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteSVG(&buf, data, 640, 480))
	out := buf.String()

	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	assert.Contains(t, out, `width="640"`)
	assert.Contains(t, out, `height="480"`)

	// One filled polygon per face, one line per edge.
	assert.Equal(t, len(shape.Faces), strings.Count(out, "<polygon"))
	assert.Equal(t, len(shape.Edges), strings.Count(out, "<line"))

	assert.Contains(t, out, "fill:#ff0000")
	assert.Contains(t, out, "stroke:#000000")

	// The labeled vertex gets a text annotation.
	assert.Contains(t, out, ">origin</text>")
}

func TestWriteSVGRadialExplode(t *testing.T) {
	data := render.SolidRenderData{
		Shape:      solid.Icosahedron(),
		Mode:       render.ModeRadialExplode,
		FaceColors: []colorful.Color{{G: 1}},
		EdgeColor:  colorful.Color{R: 0.2, G: 0.2, B: 0.2},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteSVG(&buf, data, 800, 600))
	assert.Equal(t, len(data.Shape.Faces), strings.Count(buf.String(), "<polygon"))
}
