package gui_test

import (
	"errors"
	"testing"

	"github.com/go-cellgrid/gui"
)

// setupGridTest returns a GUI with item spacing zeroed so geometry
// assertions work with round numbers.
func setupGridTest() (*gui.GUI, *gui.InputState) {
	style := gui.DefaultStyle()
	style.ItemSpacing = gui.Vec2{}

	renderer := &mockRenderer{}
	ui := gui.New(renderer, gui.WithStyle(style))
	return ui, gui.NewInputState()
}

func TestGridRowMajorDrawsEveryItem(t *testing.T) {
	ui, input := setupGridTest()
	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)

	items := []string{"a", "b", "c", "d", "e", "f"}
	var drawn []string
	var cells []gui.Vec2

	geom, err := gui.Grid(ctx, "grid", items,
		func(s string) gui.Vec2 { return gui.Vec2{X: 50, Y: 50} },
		func(s string, cell, size gui.Vec2) {
			drawn = append(drawn, s)
			cells = append(cells, cell)
		},
		gui.GridRowMajor, gui.Vec2{X: 160, Y: 400})
	if err != nil {
		t.Fatalf("Grid returned error: %v", err)
	}
	_ = ui.End()

	if len(drawn) != len(items) {
		t.Fatalf("draw called %d times, want %d", len(drawn), len(items))
	}
	for i, s := range items {
		if drawn[i] != s {
			t.Errorf("draw order broken at %d: got %q, want %q", i, drawn[i], s)
		}
	}
	if geom.Span != 3 {
		t.Errorf("span = %d, want 3", geom.Span)
	}
	for i, cell := range cells {
		if cell.X != 50 || cell.Y != 50 {
			t.Errorf("item %d cell = %v, want {50 50}", i, cell)
		}
	}
}

func TestGridEmptyItems(t *testing.T) {
	ui, input := setupGridTest()
	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)

	calls := 0
	geom, err := gui.Grid(ctx, "grid", []int{},
		func(int) gui.Vec2 { return gui.Vec2{X: 10, Y: 10} },
		func(int, gui.Vec2, gui.Vec2) { calls++ },
		gui.GridRowMajor, gui.Vec2{X: 100, Y: 100})

	if err != nil {
		t.Fatalf("empty slice should not error, got %v", err)
	}
	if calls != 0 {
		t.Errorf("draw called %d times for empty slice", calls)
	}
	if geom.Span != 0 || geom.Cols() != 0 {
		t.Errorf("empty geometry = %+v", geom)
	}

	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}
}

func TestGridNilArguments(t *testing.T) {
	ui, input := setupGridTest()
	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	defer func() { _ = ui.End() }()

	measure := func(int) gui.Vec2 { return gui.Vec2{X: 10, Y: 10} }
	draw := func(int, gui.Vec2, gui.Vec2) {}
	size := gui.Vec2{X: 100, Y: 100}

	var nilItems []int
	if _, err := gui.Grid(ctx, "g", nilItems, measure, draw, gui.GridRowMajor, size); !errors.Is(err, gui.ErrNilItems) {
		t.Errorf("nil items: got %v, want ErrNilItems", err)
	}
	if _, err := gui.Grid(ctx, "g", []int{1}, nil, draw, gui.GridRowMajor, size); !errors.Is(err, gui.ErrNilMeasure) {
		t.Errorf("nil measure: got %v, want ErrNilMeasure", err)
	}
	if _, err := gui.Grid(ctx, "g", []int{1}, measure, nil, gui.GridRowMajor, size); !errors.Is(err, gui.ErrNilDraw) {
		t.Errorf("nil draw: got %v, want ErrNilDraw", err)
	}
	if _, err := gui.Grid(ctx, "g", []int{1}, measure, draw, gui.GridOrder(9), size); !errors.Is(err, gui.ErrGridOrder) {
		t.Errorf("bad order: got %v, want ErrGridOrder", err)
	}
}

func TestGridItemSpacingPadsCells(t *testing.T) {
	style := gui.DefaultStyle()
	style.ItemSpacing = gui.Vec2{X: 10, Y: 6}
	ui := gui.New(&mockRenderer{}, gui.WithStyle(style))
	ctx := ui.Begin(gui.NewInputState(), gui.Vec2{X: 800, Y: 600}, 0.016)

	var cell gui.Vec2
	var raw gui.Vec2
	_, err := gui.Grid(ctx, "grid", []int{1},
		func(int) gui.Vec2 { return gui.Vec2{X: 50, Y: 50} },
		func(_ int, c, s gui.Vec2) { cell, raw = c, s },
		gui.GridRowMajor, gui.Vec2{X: 400, Y: 400})
	if err != nil {
		t.Fatalf("Grid returned error: %v", err)
	}
	_ = ui.End()

	if cell.X != 60 || cell.Y != 56 {
		t.Errorf("cell = %v, want padded {60 56}", cell)
	}
	if raw.X != 50 || raw.Y != 50 {
		t.Errorf("draw size = %v, want raw measured {50 50}", raw)
	}
}

func TestGridColumnMajorOrderAndGeometry(t *testing.T) {
	ui, input := setupGridTest()
	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)

	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	var positions []gui.Vec2
	ctx.SetCursorPos(0, 0)

	geom, err := gui.Grid(ctx, "grid", items,
		func(int) gui.Vec2 { return gui.Vec2{X: 30, Y: 40} },
		func(_ int, _, _ gui.Vec2) {
			positions = append(positions, ctx.GetCursorPos())
		},
		gui.GridColumnMajor, gui.Vec2{X: 600, Y: 200})
	if err != nil {
		t.Fatalf("Grid returned error: %v", err)
	}
	_ = ui.End()

	if geom.Span != 5 {
		t.Fatalf("span = %d, want 5", geom.Span)
	}

	// Items 0-4 fill the first column top-to-bottom, item 5 wraps to
	// the second column.
	if positions[1].X != positions[0].X || positions[1].Y <= positions[0].Y {
		t.Errorf("item 1 should be below item 0: %v -> %v", positions[0], positions[1])
	}
	if positions[5].X <= positions[4].X {
		t.Errorf("item 5 should start a new column: %v -> %v", positions[4], positions[5])
	}
	if positions[5].Y != positions[0].Y {
		t.Errorf("item 5 should return to the top row: %v vs %v", positions[5], positions[0])
	}
}

func TestGridStableAcrossFrames(t *testing.T) {
	ui, input := setupGridTest()
	items := []int{0, 1, 2, 3, 4, 5}
	measure := func(int) gui.Vec2 { return gui.Vec2{X: 50, Y: 50} }
	draw := func(int, gui.Vec2, gui.Vec2) {}

	var spans []int
	for frame := 0; frame < 3; frame++ {
		ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
		geom, err := gui.Grid(ctx, "grid", items, measure, draw,
			gui.GridRowMajor, gui.Vec2{X: 160, Y: 400})
		if err != nil {
			t.Fatalf("frame %d: %v", frame, err)
		}
		spans = append(spans, geom.Span)
		_ = ui.End()
	}

	for i := 1; i < len(spans); i++ {
		if spans[i] != spans[0] {
			t.Errorf("span changed between frames: %v", spans)
		}
	}
}

func TestGridFitToContents(t *testing.T) {
	ui, input := setupGridTest()
	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)

	// Without the option the viewport is the requested 300x300; with
	// it the region shrinks to the 150x100 content, which cannot
	// scroll. Content never overflows a fitted region by definition,
	// so the geometry must match the plan for the original bound.
	geom, err := gui.Grid(ctx, "grid", []int{0, 1, 2, 3, 4, 5},
		func(int) gui.Vec2 { return gui.Vec2{X: 50, Y: 50} },
		func(int, gui.Vec2, gui.Vec2) {},
		gui.GridRowMajor, gui.Vec2{X: 160, Y: 300},
		gui.FitToContents())
	if err != nil {
		t.Fatalf("Grid returned error: %v", err)
	}
	_ = ui.End()

	content := geom.ContentSize()
	if content.X != 150 || content.Y != 100 {
		t.Errorf("content = %v, want {150 100}", content)
	}
}

func TestGridDebugOverlayDoesNotChangeGeometry(t *testing.T) {
	run := func(debug bool) gui.GridGeometry {
		style := gui.DefaultStyle()
		style.ItemSpacing = gui.Vec2{}
		style.DebugGrid = debug
		ui := gui.New(&mockRenderer{}, gui.WithStyle(style))
		ctx := ui.Begin(gui.NewInputState(), gui.Vec2{X: 800, Y: 600}, 0.016)
		geom, err := gui.Grid(ctx, "grid", []int{0, 1, 2, 3, 4, 5},
			func(int) gui.Vec2 { return gui.Vec2{X: 50, Y: 50} },
			func(int, gui.Vec2, gui.Vec2) {},
			gui.GridRowMajor, gui.Vec2{X: 160, Y: 400})
		if err != nil {
			t.Fatalf("Grid returned error: %v", err)
		}
		_ = ui.End()
		return geom
	}

	plain := run(false)
	overlaid := run(true)
	if plain.Span != overlaid.Span || plain.Cols() != overlaid.Cols() || plain.Rows() != overlaid.Rows() {
		t.Errorf("debug overlay changed geometry: %+v vs %+v", plain, overlaid)
	}
}

func TestGridSizeFallsBackToAvailableRegion(t *testing.T) {
	ui, input := setupGridTest()
	ctx := ui.Begin(input, gui.Vec2{X: 160, Y: 600}, 0.016)
	ctx.SetCursorPos(0, 0)

	// Zero size: the bound comes from the display, 160 wide
	geom, err := gui.Grid(ctx, "grid", []int{0, 1, 2, 3, 4, 5},
		func(int) gui.Vec2 { return gui.Vec2{X: 50, Y: 50} },
		func(int, gui.Vec2, gui.Vec2) {},
		gui.GridRowMajor, gui.Vec2{})
	if err != nil {
		t.Fatalf("Grid returned error: %v", err)
	}
	_ = ui.End()

	if geom.Span != 3 {
		t.Errorf("span = %d, want 3 (150 fits in 160, 200 does not)", geom.Span)
	}
}
