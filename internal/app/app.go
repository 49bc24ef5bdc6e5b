package app

import (
	"log"
	"math/rand"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/irfansharif/polyhedra/internal/memory"
	"github.com/irfansharif/polyhedra/internal/palette"
	"github.com/irfansharif/polyhedra/internal/render"
)

// wireframeColor is the edge color drawn over the filled faces.
var wireframeColor = colorful.Color{R: 0.15, G: 0.15, B: 0.2}

// App encapsulates the main application state and logic.
type App struct {
	Window           *glfw.Window
	Renderer         *render.Renderer
	Scene            *Scene
	View             *View
	MemoryController *memory.MeshController
}

// NewApp creates a new application instance.
func NewApp(window *glfw.Window, scene *Scene, view *View) *App {
	memController := memory.NewMeshController()
	renderer := render.NewRenderer(memController)
	return &App{
		Window:           window,
		Renderer:         renderer,
		Scene:            scene,
		View:             view,
		MemoryController: memController,
	}
}

// PrepareRenderer regenerates the GPU geometry for the active solid.
func (app *App) PrepareRenderer(cw, ch int) {
	// Sync renderer view state BEFORE generating geometry: Prepare maps
	// the projected solid into the current viewport.
	app.Renderer.SetView(cw, ch, app.View.Zoom, app.View.PanX, app.View.PanY)

	if err := app.Renderer.Prepare(app.RenderData(), cw, ch); err != nil {
		log.Fatalf("Failed to prepare renderer: %v", err)
	}
}

// RenderData assembles the renderer input for the active solid. Face
// colors are derived deterministically from the scene seed and the
// selection, so a given solid keeps its palette across rotations.
func (app *App) RenderData() render.SolidRenderData {
	scene := app.Scene
	entry := scene.Entry()
	rng := rand.New(rand.NewSource(scene.Seed + int64(scene.Current)))
	return render.SolidRenderData{
		Shape:      entry.Shape,
		Yaw:        scene.Yaw,
		Pitch:      scene.Pitch,
		Mode:       scene.Mode,
		FaceColors: palette.FacePalette(rng, len(entry.Shape.Faces)),
		EdgeColor:  wireframeColor,
	}
}
