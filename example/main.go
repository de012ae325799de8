// Example renders two reflowable grids in a GLFW window: a row-major
// icon wall that reflows against the region width, and a column-major
// strip that packs against the region height and scrolls sideways.
//
// Keys:
//
//	D  toggle the grid debug overlay
//	F  toggle fit-to-contents on the icon wall
//	O  swap the icon wall between row-major and column-major order
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-cellgrid/gui"
	"github.com/go-cellgrid/gui/backend/opengl"
)

const (
	windowWidth  = 900
	windowHeight = 640
	windowTitle  = "grid example"
)

// tile is a demo item with its own footprint and color.
type tile struct {
	label string
	size  gui.Vec2
	color uint32
}

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func makeTiles(n int) []tile {
	palette := []uint32{
		gui.RGBA(204, 92, 92, 255),
		gui.RGBA(92, 160, 204, 255),
		gui.RGBA(110, 190, 120, 255),
		gui.RGBA(220, 180, 90, 255),
		gui.RGBA(170, 120, 210, 255),
	}
	tiles := make([]tile, n)
	for i := range tiles {
		// Deterministic but uneven sizes so reflow is visible
		w := float32(60 + (i*17)%50)
		h := float32(40 + (i*29)%40)
		tiles[i] = tile{
			label: fmt.Sprintf("%02d", i),
			size:  gui.Vec2{X: w, Y: h},
			color: palette[i%len(palette)],
		}
	}
	return tiles
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)

	ui := gui.New(renderer, gui.WithStyle(gui.DarkStyle()))

	tiles := makeTiles(40)
	order := gui.GridRowMajor
	fit := false

	drawTile := func(ctx *gui.Context) func(t tile, cell, size gui.Vec2) {
		return func(t tile, cell, size gui.Vec2) {
			pos := ctx.GetCursorPos()
			ctx.DrawList.AddRect(pos.X, pos.Y, size.X, size.Y, t.color)
			ctx.TextColored(t.label, gui.ColorWhite)
		}
	}

	for !window.ShouldClose() {
		glfw.PollEvents()
		input := inputAdapter.Update()

		if input.KeyPressed(gui.KeyEscape) {
			window.SetShouldClose(true)
		}
		if input.KeyPressed(gui.KeyF) {
			fit = !fit
		}
		if input.KeyPressed(gui.KeyO) {
			if order == gui.GridRowMajor {
				order = gui.GridColumnMajor
			} else {
				order = gui.GridRowMajor
			}
		}
		if input.KeyPressed(gui.KeyD) {
			style := ui.Style()
			style.DebugGrid = !style.DebugGrid
			ui.SetStyle(style)
		}

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.10, 0.10, 0.12, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		displaySize := gui.Vec2{X: float32(w), Y: float32(h)}
		ctx := ui.Begin(input, displaySize, 1.0/60.0)

		ctx.SetCursorPos(20, 20)
		ctx.Text("[D] debug overlay  [F] fit-to-contents  [O] order")

		// Row-major icon wall: reflows when the window gets narrower
		ctx.SetCursorPos(20, 44)
		opts := []gui.Option{}
		if fit {
			opts = append(opts, gui.FitToContents())
		}
		geom, err := gui.Grid(ctx, "icon-wall", tiles,
			func(t tile) gui.Vec2 { return t.size },
			drawTile(ctx),
			order, gui.Vec2{X: displaySize.X - 40, Y: 380}, opts...)
		if err != nil {
			return fmt.Errorf("icon wall: %w", err)
		}

		ctx.SetCursorPos(20, 450)
		ctx.Label("grid", fmt.Sprintf("%d cols x %d rows (span %d)",
			geom.Cols(), geom.Rows(), geom.Span))

		// Column-major strip: fixed height, grows sideways and scrolls
		ctx.SetCursorPos(20, 474)
		if _, err := gui.Grid(ctx, "strip", tiles[:12],
			func(t tile) gui.Vec2 { return gui.Vec2{X: 70, Y: 46} },
			drawTile(ctx),
			gui.GridColumnMajor, gui.Vec2{X: displaySize.X - 40, Y: 130}); err != nil {
			return fmt.Errorf("strip: %w", err)
		}

		if err := ui.End(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}
		inputAdapter.EndFrame()

		window.SwapBuffers()
	}

	return nil
}
