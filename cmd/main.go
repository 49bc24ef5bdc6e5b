package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/polyhedra/internal/app"
	"github.com/irfansharif/polyhedra/internal/memory"
	"github.com/irfansharif/polyhedra/internal/render"
)

const logFlags = log.Ltime | log.Lshortfile

var runtimeLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	// OpenGL contexts are tied to specific OS threads - let's pin to just one.
	runtime.LockOSThread()
	log.SetFlags(logFlags)

	if os.Getenv("POLYHEDRA_DEBUG_RUNTIME") == "1" {
		runtimeLogger = log.New(os.Stdout, "[runtime] ", log.Ltime|log.Lmsgprefix)
	}
}

func makeTitle(scene *app.Scene, fps, avgFrameTime float64, renderStats render.Stats, memStats memory.Stats) string {
	entry := scene.Entry()
	return fmt.Sprintf("Polyhedra — %s (%s, %dV %dE %dF, %.1f FPS, %.2fms/frame, %d triangles, %.2fms/prepare)",
		entry.Name,
		scene.Mode,
		len(entry.Shape.Points),
		len(entry.Shape.Edges),
		len(entry.Shape.Faces),
		fps,
		avgFrameTime,
		renderStats.LastTriangles,
		renderStats.LastPrepareTimeMs,
	)
}

func main() {
	flag.Parse()

	if err := glfw.Init(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glfw.Terminate()

	// Configure GLFW window hints - use OpenGL 4.1.
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	window, err := glfw.CreateWindow(
		1280, // width
		960,  // height
		"Polyhedra",
		nil, nil,
	)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		log.Fatalf("Failed to initialize OpenGL: %v", err)
	}

	cw, ch := window.GetFramebufferSize()
	scene := app.NewScene(seed())
	application := app.NewApp(window, scene, app.NewView(cw, ch))
	application.PrepareRenderer(cw, ch)

	// Initialize event handlers.
	eventHandlers := NewEventHandlers(application)

	frameCount, frameTimeSum := 0, 0.0
	lastFPSUpdate := time.Now()
	lastFrame := time.Now()

	// Main loop.
	for !application.Window.ShouldClose() {
		frameStart := time.Now()
		scene.Step(frameStart.Sub(lastFrame).Seconds())
		lastFrame = frameStart

		w, h := application.Window.GetFramebufferSize()
		application.PrepareRenderer(w, h)

		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(1, 1, 1, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		application.Renderer.Draw()
		application.Window.SwapBuffers()
		glfw.PollEvents()

		frameTime := time.Since(frameStart).Seconds() * 1000.0 // ms
		frameTimeSum += frameTime

		frameCount++
		now := time.Now()
		if now.Sub(lastFPSUpdate) >= time.Second {
			fps := float64(frameCount) / now.Sub(lastFPSUpdate).Seconds()
			avgFrameTime := frameTimeSum / float64(frameCount)
			frameCount, frameTimeSum = 0, 0.0
			lastFPSUpdate = now

			memStats := application.MemoryController.Stats()
			renderStats := application.Renderer.Stats()

			application.Window.SetTitle(
				makeTitle(scene, fps, avgFrameTime, renderStats, memStats),
			)

			runtimeLogger.Println("=== Performance statistics ===")
			runtimeLogger.Printf("Frame rate:     %.1f FPS (%.2f ms/frame)", fps, avgFrameTime)
			runtimeLogger.Printf("Solid:          %s (%s projection)", scene.Entry().Name, scene.Mode)
			runtimeLogger.Printf("Geometry:       %d triangles, %d GPU vertices", renderStats.LastTriangles, memStats.TotalVertices)
			runtimeLogger.Printf("GPU memory:     %.2f KiB (%d uploads, %d reallocations)", float64(memStats.TotalGPUBytes)/1024.0, memStats.UploadEvents, memStats.Reallocations)
			runtimeLogger.Printf("Render time:    %.2f µs (last draw), %.2f ms (last prepare)", renderStats.LastDrawTimeUs, renderStats.LastPrepareTimeMs)
			runtimeLogger.Println("==============================")
		}
	}
}

func seed() int64 {
	seedStr := os.Getenv("POLYHEDRA_SEED")
	now := time.Now().Unix()
	if seedStr == "" {
		return now
	}
	seed, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil {
		log.Fatalf("Invalid POLYHEDRA_SEED value '%s': %v", seedStr, err)
	}
	return seed
}
