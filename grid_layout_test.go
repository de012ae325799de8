package gui_test

import (
	"testing"

	"github.com/go-cellgrid/gui"
)

func uniformExtents(n int, w, h float32) []gui.Vec2 {
	extents := make([]gui.Vec2, n)
	for i := range extents {
		extents[i] = gui.Vec2{X: w, Y: h}
	}
	return extents
}

func TestCellIndexRowMajor(t *testing.T) {
	// 3 columns: items fill left-to-right, then wrap down
	cases := []struct {
		i, row, col int
	}{
		{0, 0, 0}, {1, 0, 1}, {2, 0, 2},
		{3, 1, 0}, {4, 1, 1}, {5, 1, 2},
		{6, 2, 0},
	}
	for _, c := range cases {
		row, col := gui.CellIndex(c.i, 3, gui.GridRowMajor)
		if row != c.row || col != c.col {
			t.Errorf("item %d: got (%d,%d), want (%d,%d)", c.i, row, col, c.row, c.col)
		}
	}
}

func TestCellIndexColumnMajor(t *testing.T) {
	// 3 rows: items fill top-to-bottom, then wrap right
	cases := []struct {
		i, row, col int
	}{
		{0, 0, 0}, {1, 1, 0}, {2, 2, 0},
		{3, 0, 1}, {4, 1, 1}, {5, 2, 1},
		{6, 0, 2},
	}
	for _, c := range cases {
		row, col := gui.CellIndex(c.i, 3, gui.GridColumnMajor)
		if row != c.row || col != c.col {
			t.Errorf("item %d: got (%d,%d), want (%d,%d)", c.i, row, col, c.row, c.col)
		}
	}
}

func TestCellIndexBijective(t *testing.T) {
	// No two items may share a slot
	for _, order := range []gui.GridOrder{gui.GridRowMajor, gui.GridColumnMajor} {
		seen := make(map[[2]int]int)
		for i := 0; i < 30; i++ {
			row, col := gui.CellIndex(i, 7, order)
			slot := [2]int{row, col}
			if prev, ok := seen[slot]; ok {
				t.Fatalf("order %d: items %d and %d both map to (%d,%d)", order, prev, i, row, col)
			}
			seen[slot] = i
		}
	}
}

func TestPlanRowMajorReflow(t *testing.T) {
	// Six 50x50 items against a 160 bound: 3 columns fit (150),
	// 4 would overflow (200)
	extents := uniformExtents(6, 50, 50)
	geom := gui.PlanRowMajor(extents, 160)

	if geom.Span != 3 {
		t.Fatalf("span = %d, want 3", geom.Span)
	}
	if geom.Cols() != 3 || geom.Rows() != 2 {
		t.Errorf("got %d cols x %d rows, want 3x2", geom.Cols(), geom.Rows())
	}
	content := geom.ContentSize()
	if content.X != 150 || content.Y != 100 {
		t.Errorf("content size = %v, want {150 100}", content)
	}
}

func TestPlanRowMajorWiderBoundMoreColumns(t *testing.T) {
	extents := uniformExtents(6, 50, 50)

	narrow := gui.PlanRowMajor(extents, 120)
	wide := gui.PlanRowMajor(extents, 320)

	if narrow.Span != 2 {
		t.Errorf("narrow span = %d, want 2", narrow.Span)
	}
	if wide.Span != 6 {
		t.Errorf("wide span = %d, want 6 (single row)", wide.Span)
	}
	if wide.Rows() != 1 {
		t.Errorf("wide rows = %d, want 1", wide.Rows())
	}
}

func TestPlanRowMajorSingleColumnFloor(t *testing.T) {
	// A single column is accepted even when it alone overflows the
	// bound; the layout cannot shrink below one column.
	extents := []gui.Vec2{{X: 200, Y: 40}, {X: 180, Y: 40}}
	geom := gui.PlanRowMajor(extents, 100)

	if geom.Span != 1 {
		t.Fatalf("span = %d, want 1", geom.Span)
	}
	if got := geom.ContentSize().X; got != 200 {
		t.Errorf("content width = %v, want 200 (widest item)", got)
	}
}

func TestPlanRowMajorHeterogeneousCells(t *testing.T) {
	// Each column is as wide as its widest member, each row as tall
	// as its tallest
	extents := []gui.Vec2{
		{X: 30, Y: 10}, {X: 50, Y: 20},
		{X: 40, Y: 30}, {X: 20, Y: 15},
	}
	geom := gui.PlanRowMajor(extents, 100)

	if geom.Span != 2 {
		t.Fatalf("span = %d, want 2", geom.Span)
	}
	// Col 0 holds items 0,2; col 1 holds items 1,3
	if geom.ColWidths[0] != 40 || geom.ColWidths[1] != 50 {
		t.Errorf("col widths = %v, want [40 50]", geom.ColWidths)
	}
	// Row 0 holds items 0,1; row 1 holds items 2,3
	if geom.RowHeights[0] != 20 || geom.RowHeights[1] != 30 {
		t.Errorf("row heights = %v, want [20 30]", geom.RowHeights)
	}
}

func TestPlanRowMajorBoundInvariant(t *testing.T) {
	// For any multi-column result the total width stays within the
	// bound; only the single-column floor may exceed it.
	extents := []gui.Vec2{
		{X: 35, Y: 12}, {X: 61, Y: 30}, {X: 22, Y: 44},
		{X: 80, Y: 9}, {X: 47, Y: 26}, {X: 13, Y: 18},
		{X: 55, Y: 33}, {X: 29, Y: 21},
	}
	for _, bound := range []float32{10, 90, 150, 250, 400} {
		geom := gui.PlanRowMajor(extents, bound)
		width := geom.ContentSize().X
		if geom.Span > 1 && width > bound {
			t.Errorf("bound %v: span %d overflows with width %v", bound, geom.Span, width)
		}
	}
}

func TestPlanRowMajorEmpty(t *testing.T) {
	geom := gui.PlanRowMajor(nil, 100)
	if geom.Span != 0 || geom.Cols() != 0 || geom.Rows() != 0 {
		t.Errorf("empty input produced non-empty geometry: %+v", geom)
	}
	if content := geom.ContentSize(); content != (gui.Vec2{}) {
		t.Errorf("empty content size = %v, want zero", content)
	}
}

func TestPlanRowMajorDeterministic(t *testing.T) {
	extents := []gui.Vec2{
		{X: 30, Y: 10}, {X: 50, Y: 20}, {X: 40, Y: 30}, {X: 20, Y: 15},
	}
	a := gui.PlanRowMajor(extents, 100)
	b := gui.PlanRowMajor(extents, 100)

	if a.Span != b.Span || a.Cols() != b.Cols() || a.Rows() != b.Rows() {
		t.Fatalf("repeated plans differ: %+v vs %+v", a, b)
	}
	for i := range a.ColWidths {
		if a.ColWidths[i] != b.ColWidths[i] {
			t.Errorf("col %d differs: %v vs %v", i, a.ColWidths[i], b.ColWidths[i])
		}
	}
}

func TestPlanColumnMajorRevert(t *testing.T) {
	// One row (height 50) fits a 65 bound; two rows (50+40) overflow,
	// so the search settles on the single-row layout.
	extents := []gui.Vec2{{X: 30, Y: 50}, {X: 30, Y: 40}, {X: 30, Y: 30}}
	geom := gui.PlanColumnMajor(extents, 65)

	if geom.Span != 1 {
		t.Fatalf("span = %d, want 1", geom.Span)
	}
	if geom.Rows() != 1 || geom.Cols() != 3 {
		t.Errorf("got %d rows x %d cols, want 1x3", geom.Rows(), geom.Cols())
	}
}

func TestPlanRowMajorOversizedSingleItem(t *testing.T) {
	geom := gui.PlanRowMajor([]gui.Vec2{{X: 500, Y: 500}}, 100)
	if geom.Span != 1 {
		t.Fatalf("span = %d, want 1", geom.Span)
	}
	if geom.ColWidths[0] != 500 {
		t.Errorf("col width = %v, want the item's own 500", geom.ColWidths[0])
	}
}

func TestPlanColumnMajorGrowthStopsAtBound(t *testing.T) {
	// Heights 10..50 against a 65 bound: one row (50) fits, two rows
	// (50+40) overflow, so the accepted geometry stays at one row.
	extents := []gui.Vec2{
		{X: 20, Y: 10}, {X: 20, Y: 20}, {X: 20, Y: 30},
		{X: 20, Y: 40}, {X: 20, Y: 50},
	}
	geom := gui.PlanColumnMajor(extents, 65)

	if geom.Span != 1 {
		t.Fatalf("span = %d, want 1", geom.Span)
	}
	if sum := geom.ContentSize().Y; sum != 50 {
		t.Errorf("row height sum = %v, want 50", sum)
	}
	if geom.Cols() != 5 {
		t.Errorf("cols = %d, want 5 (one per item)", geom.Cols())
	}
}

func TestPlanColumnMajorPacksTallBound(t *testing.T) {
	// Nine 40-tall items in a 200 bound: rows grow while the height
	// total fits, but never reach the item count.
	extents := uniformExtents(9, 30, 40)
	geom := gui.PlanColumnMajor(extents, 200)

	if geom.Span != 5 {
		t.Fatalf("span = %d, want 5 (5 rows * 40 = 200)", geom.Span)
	}
	if geom.Cols() != 2 {
		t.Errorf("cols = %d, want 2", geom.Cols())
	}
}

func TestPlanColumnMajorStopsBeforeItemCount(t *testing.T) {
	// With an unbounded height the row count still stops short of one
	// row per item.
	extents := uniformExtents(4, 30, 40)
	geom := gui.PlanColumnMajor(extents, 1e9)

	if geom.Span >= 4 {
		t.Errorf("span = %d, want < item count 4", geom.Span)
	}
	if geom.Span != 3 {
		t.Errorf("span = %d, want 3", geom.Span)
	}
}

func TestPlanColumnMajorSingleItem(t *testing.T) {
	geom := gui.PlanColumnMajor([]gui.Vec2{{X: 25, Y: 15}}, 5)
	if geom.Span != 1 || geom.Rows() != 1 || geom.Cols() != 1 {
		t.Errorf("single item geometry = %+v, want 1x1 span 1", geom)
	}
}

func TestPlanColumnMajorBoundInvariant(t *testing.T) {
	extents := []gui.Vec2{
		{X: 35, Y: 12}, {X: 61, Y: 30}, {X: 22, Y: 44},
		{X: 80, Y: 9}, {X: 47, Y: 26}, {X: 13, Y: 18},
	}
	for _, bound := range []float32{5, 40, 80, 160, 300} {
		geom := gui.PlanColumnMajor(extents, bound)
		height := geom.ContentSize().Y
		if geom.Span > 1 && height > bound {
			t.Errorf("bound %v: span %d overflows with height %v", bound, geom.Span, height)
		}
	}
}

func BenchmarkPlanRowMajor(b *testing.B) {
	extents := make([]gui.Vec2, 100)
	for i := range extents {
		extents[i] = gui.Vec2{X: float32(20 + i%37), Y: float32(15 + i%23)}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gui.PlanRowMajor(extents, 500)
	}
}
