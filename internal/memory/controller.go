// Package memory owns the GPU-side buffers for the viewer. Each mesh
// (the solid's filled faces, its wireframe) gets a dedicated VAO/VBO
// pair with interleaved [x y r g b a] float32 vertices; uploads reuse
// the existing buffer when the new data fits and reallocate otherwise.
package memory

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var memoryLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	if os.Getenv("POLYHEDRA_DEBUG_MEMORY") == "1" {
		memoryLogger = log.New(os.Stdout, "[memory] ", log.Ltime|log.Lmsgprefix)
	}
}

// floatsPerVertex is the interleaved layout: 2 position + 4 color.
const floatsPerVertex = 6

// MeshID identifies a mesh slot owned by the controller.
type MeshID int

// Mesh slots used by the renderer.
const (
	MeshFaces MeshID = iota
	MeshWireframe
)

// Mode selects the draw primitive for a mesh.
type Mode uint32

const (
	Triangles Mode = Mode(gl.TRIANGLES)
	Lines     Mode = Mode(gl.LINES)
)

type mesh struct {
	vao           uint32
	vbo           uint32
	mode          Mode
	vertexCount   int
	floatCapacity int
}

// Stats tracks controller-level counters.
type Stats struct {
	TotalMeshes   int
	TotalVertices int
	TotalGPUBytes int64
	UploadEvents  int
	Reallocations int
}

// MeshController manages the GPU buffers for all meshes.
type MeshController struct {
	meshes map[MeshID]*mesh
	stats  Stats
}

// NewMeshController creates an empty controller.
func NewMeshController() *MeshController {
	return &MeshController{meshes: make(map[MeshID]*mesh)}
}

// Upload replaces the vertex data for the given mesh, creating its
// VAO/VBO on first use. len(vertices) must be a multiple of the
// interleaved vertex layout.
func (mc *MeshController) Upload(id MeshID, vertices []float32, mode Mode) error {
	if len(vertices)%floatsPerVertex != 0 {
		return fmt.Errorf("vertex data length %d is not a multiple of %d", len(vertices), floatsPerVertex)
	}

	m, ok := mc.meshes[id]
	if !ok {
		m = &mesh{}
		mc.allocate(m, len(vertices))
		mc.meshes[id] = m
	} else if len(vertices) > m.floatCapacity {
		mc.release(m)
		mc.allocate(m, len(vertices))
		mc.stats.Reallocations++
	}

	m.mode = mode
	m.vertexCount = len(vertices) / floatsPerVertex
	if len(vertices) > 0 {
		gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, gl.Ptr(vertices))
		gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	}

	mc.stats.UploadEvents++
	memoryLogger.Printf("uploaded mesh %d: %d vertices (%d bytes)", id, m.vertexCount, len(vertices)*4)
	return nil
}

// Draw issues one draw call per non-empty mesh, in MeshID order.
func (mc *MeshController) Draw() {
	for _, id := range []MeshID{MeshFaces, MeshWireframe} {
		m, ok := mc.meshes[id]
		if !ok || m.vertexCount == 0 {
			continue
		}
		gl.BindVertexArray(m.vao)
		gl.DrawArrays(uint32(m.mode), 0, int32(m.vertexCount))
	}
	gl.BindVertexArray(0)
}

// Remove deletes a mesh's GPU buffers.
func (mc *MeshController) Remove(id MeshID) {
	m, ok := mc.meshes[id]
	if !ok {
		return
	}
	mc.release(m)
	delete(mc.meshes, id)
}

// Stats returns current controller counters.
func (mc *MeshController) Stats() Stats {
	s := mc.stats
	s.TotalMeshes = len(mc.meshes)
	for _, m := range mc.meshes {
		s.TotalVertices += m.vertexCount
		s.TotalGPUBytes += int64(m.floatCapacity) * 4
	}
	return s
}

// allocate creates the VAO/VBO pair and configures the interleaved
// vertex layout (location 0: vec2 position, location 1: vec4 color).
func (mc *MeshController) allocate(m *mesh, floatCount int) {
	if floatCount < floatsPerVertex {
		floatCount = floatsPerVertex
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, floatCount*4, nil, gl.DYNAMIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, floatsPerVertex*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, floatsPerVertex*4, gl.PtrOffset(8))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	m.floatCapacity = floatCount
}

func (mc *MeshController) release(m *mesh) {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	m.vao, m.vbo, m.floatCapacity, m.vertexCount = 0, 0, 0, 0
}
