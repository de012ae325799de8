package gui_test

import (
	"testing"

	"github.com/go-cellgrid/gui"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
}

func (m *mockRenderer) Render(dl *gui.DrawList) error {
	m.renderCalls++
	return nil
}

func (m *mockRenderer) FontTextureID() uint32 {
	return 1
}

func (m *mockRenderer) Resize(width, height int) {}

func TestGUIBasicUsage(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer, gui.WithStyle(gui.DarkStyle()))

	input := gui.NewInputState()
	displaySize := gui.Vec2{X: 1920, Y: 1080}

	ctx := ui.Begin(input, displaySize, 0.016)
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}

	ctx.Text("Hello World")
	ctx.TextColored("Colored", gui.ColorYellow)
	ctx.Label("frames", "60")

	err := ui.End()
	if err != nil {
		t.Fatalf("End() returned error: %v", err)
	}

	if renderer.renderCalls != 1 {
		t.Errorf("expected 1 render call, got %d", renderer.renderCalls)
	}
}

func TestButton(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	input := gui.NewInputState()

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)

	clicked := ctx.Button("Test Button")
	if clicked {
		t.Error("button should not be clicked without mouse input")
	}

	_ = ui.End()
}

func TestButtonClick(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	input := gui.NewInputState()

	// Click inside the button drawn at the origin
	input.SetMousePos(10, 5)
	input.SetMouseButton(gui.MouseButtonLeft, true)

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.SetCursorPos(0, 0)

	if !ctx.Button("Click Me") {
		t.Error("button under the mouse should report a click")
	}
	if !ctx.WantCaptureMouse {
		t.Error("hovered button should set WantCaptureMouse")
	}

	_ = ui.End()
}

func TestPanelWithGrid(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	input := gui.NewInputState()

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)

	var gridErr error
	ctx.Panel("Items", gui.Gap(8), gui.Padding(12))(func() {
		ctx.Text("header")
		_, gridErr = gui.Grid(ctx, "panel-grid", []int{0, 1, 2, 3},
			func(int) gui.Vec2 { return gui.Vec2{X: 40, Y: 40} },
			func(int, gui.Vec2, gui.Vec2) {},
			gui.GridRowMajor, gui.Vec2{X: 200, Y: 120})
	})
	if gridErr != nil {
		t.Fatalf("grid inside panel: %v", gridErr)
	}

	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}
}

func TestPushPopStyle(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	ctx := ui.Begin(gui.NewInputState(), gui.Vec2{X: 800, Y: 600}, 0.016)

	base := ctx.Style()
	alt := gui.LightStyle()
	ctx.PushStyle(alt)
	if ctx.Style().TextColor != alt.TextColor {
		t.Error("PushStyle did not apply")
	}
	ctx.PopStyle()
	if ctx.Style().TextColor != base.TextColor {
		t.Error("PopStyle did not restore")
	}

	_ = ui.End()
}

func TestMeasureText(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	ctx := ui.Begin(gui.NewInputState(), gui.Vec2{X: 800, Y: 600}, 0.016)

	style := ctx.Style()
	size := ctx.MeasureText("hello")
	if want := 5 * style.CharWidth * style.FontScale; size.X != want {
		t.Errorf("width = %v, want %v", size.X, want)
	}
	if size.Y != ctx.LineHeight() {
		t.Errorf("height = %v, want line height %v", size.Y, ctx.LineHeight())
	}

	_ = ui.End()
}
