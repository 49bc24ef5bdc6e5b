package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/polyhedra/internal/app"
	"github.com/irfansharif/polyhedra/internal/export"
	"github.com/irfansharif/polyhedra/internal/geom"
)

const rotationStep = 0.12 // radians per keypress

// EventHandlers manages all event handling for the application.
type EventHandlers struct {
	application *app.App

	// Drag/pan state (per-gesture), captured on mouse press.
	isDragging                       bool
	dragStartMouseX, dragStartMouseY float64
	dragStartPanX, dragStartPanY     float64
}

// NewEventHandlers creates a new event handlers manager.
func NewEventHandlers(application *app.App) *EventHandlers {
	eh := &EventHandlers{application: application}
	eh.SetupCallbacks(application.Window)
	return eh
}

// SetupCallbacks configures all GLFW event callbacks.
func (eh *EventHandlers) SetupCallbacks(window *glfw.Window) {
	window.SetKeyCallback(func(wnd *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		eh.handleKey(key, action)
	})
	window.SetMouseButtonCallback(func(wnd *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		eh.handleMouseButton(button, action) // for panning
	})
	window.SetCursorPosCallback(func(wnd *glfw.Window, xpos, ypos float64) {
		eh.updatePanning(xpos, ypos)
	})
	window.SetScrollCallback(func(wnd *glfw.Window, _, zoomDelta float64) {
		eh.performZoom(zoomDelta)
	})
	window.SetFramebufferSizeCallback(func(wnd *glfw.Window, newW, newH int) {
		eh.application.View.SetViewport(newW, newH)
		eh.updateRendererView()
	})
}

// updateRendererView updates the renderer with the current view state and
// framebuffer size.
func (eh *EventHandlers) updateRendererView() {
	view := eh.application.View
	cw, ch := eh.application.Window.GetFramebufferSize()
	eh.application.Renderer.SetView(cw, ch, view.Zoom, view.PanX, view.PanY)
}

// handleKey handles keyboard input events. Repeats are accepted for
// the rotation keys so holding an arrow keeps turning the solid.
func (eh *EventHandlers) handleKey(key glfw.Key, action glfw.Action) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}

	scene := eh.application.Scene
	switch key {
	case glfw.Key1, glfw.Key2, glfw.Key3, glfw.Key4, glfw.Key5, glfw.Key6:
		if action == glfw.Press {
			scene.Select(int(key - glfw.Key1))
		}
	case glfw.KeySpace:
		if action == glfw.Press {
			scene.ToggleSpin()
		}
	case glfw.KeyP:
		if action == glfw.Press {
			scene.ToggleMode()
		}
	case glfw.KeyR:
		if action == glfw.Press {
			eh.handleResetKey()
		}
	case glfw.KeyS:
		if action == glfw.Press {
			eh.handleSnapshotKey()
		}
	case glfw.KeyLeft, glfw.KeyH:
		scene.Rotate(-rotationStep, 0)
	case glfw.KeyRight, glfw.KeyL:
		scene.Rotate(rotationStep, 0)
	case glfw.KeyUp, glfw.KeyK:
		scene.Rotate(0, -rotationStep)
	case glfw.KeyDown, glfw.KeyJ:
		scene.Rotate(0, rotationStep)
	case glfw.KeyEscape:
		eh.application.Window.SetShouldClose(true)
	}
}

// handleResetKey handles R key press: reset zoom, pan, and the solid's
// orientation.
func (eh *EventHandlers) handleResetKey() {
	view := eh.application.View
	cw, ch := eh.application.Window.GetFramebufferSize()
	view.ResetTo(geom.MakePoint(float64(cw)/2, float64(ch)/2))
	eh.application.Scene.ResetOrientation()
	eh.updateRendererView()
}

// handleSnapshotKey handles S key press: write the current solid, in
// its current orientation and projection, to an SVG file next to the
// binary.
func (eh *EventHandlers) handleSnapshotKey() {
	application := eh.application
	name := fmt.Sprintf("%s-%d.svg", application.Scene.Entry().Name, time.Now().Unix())

	f, err := os.Create(name)
	if err != nil {
		log.Printf("WARNING: cannot create snapshot %s: %v", name, err)
		return
	}
	defer f.Close()

	w, h := application.Window.GetFramebufferSize()
	if err := export.WriteSVG(f, application.RenderData(), w, h); err != nil {
		log.Printf("WARNING: cannot write snapshot %s: %v", name, err)
		return
	}
	log.Printf("Wrote snapshot %s", name)
}

// handleMouseButton handles mouse button events for panning.
func (eh *EventHandlers) handleMouseButton(button glfw.MouseButton, action glfw.Action) {
	if button != glfw.MouseButtonLeft {
		return // nothing to do
	}

	switch action {
	case glfw.Press:
		eh.startPanning()
	case glfw.Release:
		eh.stopPanning()
	}
}

// startPanning starts the panning operation.
func (eh *EventHandlers) startPanning() {
	eh.isDragging = true
	eh.dragStartMouseX, eh.dragStartMouseY = eh.application.Window.GetCursorPos()
	view := eh.application.View
	eh.dragStartPanX, eh.dragStartPanY = view.PanX, view.PanY
}

// stopPanning ends panning operation.
func (eh *EventHandlers) stopPanning() {
	eh.isDragging = false
}

// updatePanning updates pan position based on mouse movement.
func (eh *EventHandlers) updatePanning(xpos, ypos float64) {
	if !eh.isDragging {
		return
	}

	scaleX, scaleY := eh.application.Window.GetContentScale()
	dx := (xpos - eh.dragStartMouseX) * float64(scaleX)
	dy := (ypos - eh.dragStartMouseY) * float64(scaleY)

	eh.application.View.SetPan(eh.dragStartPanX+dx, eh.dragStartPanY+dy)
	eh.updateRendererView() // direct update for maximum smoothness
}

// performZoom handles zoom operations with cursor-centered zooming.
func (eh *EventHandlers) performZoom(zoomDelta float64) {
	wnd := eh.application.Window
	cw, ch := wnd.GetFramebufferSize()
	centerX, centerY := float64(cw)/2, float64(ch)/2
	mouseX, mouseY := wnd.GetCursorPos()

	scaleX, scaleY := wnd.GetContentScale()
	fbMouseX, fbMouseY := mouseX*float64(scaleX), mouseY*float64(scaleY)

	// Apply zoom with responsive increments for smooth zooming
	zoomFactor := 1.0 + zoomDelta*0.15
	view := eh.application.View
	oldZoom := view.Zoom

	// Cursor position relative to viewport center.
	cursorOffsetX, cursorOffsetY := fbMouseX-centerX, fbMouseY-centerY

	// What canvas point (relative to center) is under the cursor right now?
	canvasOffsetX, canvasOffsetY := (cursorOffsetX-view.PanX)/oldZoom, (cursorOffsetY-view.PanY)/oldZoom

	// Update zoom.
	view.SetZoom(oldZoom * zoomFactor)

	// Calculate new pan to keep that canvas point at the cursor.
	newZoom := view.Zoom
	view.SetPan(cursorOffsetX-canvasOffsetX*newZoom, cursorOffsetY-canvasOffsetY*newZoom)
	eh.updateRendererView() // direct update for maximum smoothness
}
