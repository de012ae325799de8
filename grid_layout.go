package gui

// GridOrder selects the traversal direction of a grid layout.
type GridOrder uint8

const (
	// GridRowMajor flows items left-to-right, wrapping to a new row
	// when the current row is full.
	GridRowMajor GridOrder = iota
	// GridColumnMajor flows items top-to-bottom, wrapping to a new
	// column when the current column is full.
	GridColumnMajor
)

// GridGeometry is the result of one grid layout pass: the extent of
// every column and row, plus the span count the planner settled on
// (columns for row-major order, rows for column-major order).
//
// Geometry is a plain value aggregate rebuilt from scratch each pass;
// nothing in it survives between frames.
type GridGeometry struct {
	ColWidths  []float32
	RowHeights []float32
	Span       int
}

// Cols returns the number of columns in the geometry.
func (g GridGeometry) Cols() int { return len(g.ColWidths) }

// Rows returns the number of rows in the geometry.
func (g GridGeometry) Rows() int { return len(g.RowHeights) }

// ContentSize returns the summed column widths and row heights, the
// exact region the grid occupies.
func (g GridGeometry) ContentSize() Vec2 {
	return Vec2{X: sumf(g.ColWidths), Y: sumf(g.RowHeights)}
}

// CellIndex maps a linear item index to its (row, column) slot.
// span is the column count for row-major order and the row count for
// column-major order; callers guarantee span >= 1.
func CellIndex(i, span int, order GridOrder) (row, col int) {
	if order == GridColumnMajor {
		return i % span, i / span
	}
	return i / span, i % span
}

// PlanRowMajor searches for the largest column count whose total width
// stays within maxWidth. Candidates grow from one column; the first
// overflowing candidate reverts the search to the previous geometry.
// A single column is accepted even when it alone exceeds the bound,
// since the layout cannot shrink further.
//
// Each candidate recomputes the per-column and per-row maxima from
// scratch: items reshuffle between columns as the count changes, so
// total width is not monotone and no incremental update is attempted.
func PlanRowMajor(extents []Vec2, maxWidth float32) GridGeometry {
	n := len(extents)
	if n == 0 {
		return GridGeometry{}
	}

	prev := measureGrid(extents, 1, GridRowMajor)
	for cols := 2; cols <= n; cols++ {
		cur := measureGrid(extents, cols, GridRowMajor)
		if sumf(cur.ColWidths) > maxWidth {
			return prev
		}
		prev = cur
	}
	// Every item fits in one row.
	return prev
}

// PlanColumnMajor is the dual of PlanRowMajor for top-to-bottom
// layouts: it grows the row count from the trivial one-row layout
// (one column per item) while the total row height stays within
// maxHeight. Growing rows is the knob that packs a fixed height more
// densely, since each added row reduces the columns needed.
//
// Growth stops before the row count reaches the item count; at that
// point every item would occupy its own row and no candidate can pack
// tighter.
func PlanColumnMajor(extents []Vec2, maxHeight float32) GridGeometry {
	n := len(extents)
	if n == 0 {
		return GridGeometry{}
	}

	prev := measureGrid(extents, 1, GridColumnMajor)
	for rows := 2; rows < n; rows++ {
		cur := measureGrid(extents, rows, GridColumnMajor)
		if sumf(cur.RowHeights) > maxHeight {
			return prev
		}
		prev = cur
	}
	return prev
}

// measureGrid computes the geometry for a fixed span: each column is
// as wide as its widest member, each row as tall as its tallest. The
// two dimensions are independent; an item influences only its own
// column's width and its own row's height.
func measureGrid(extents []Vec2, span int, order GridOrder) GridGeometry {
	n := len(extents)
	major := (n + span - 1) / span
	minor := span
	if minor > n {
		minor = n
	}

	rows, cols := major, minor
	if order == GridColumnMajor {
		rows, cols = minor, major
	}

	g := GridGeometry{
		ColWidths:  make([]float32, cols),
		RowHeights: make([]float32, rows),
		Span:       span,
	}
	for i, ext := range extents {
		row, col := CellIndex(i, span, order)
		g.ColWidths[col] = maxf(g.ColWidths[col], ext.X)
		g.RowHeights[row] = maxf(g.RowHeights[row], ext.Y)
	}
	return g
}

// sumf returns the sum of a float32 slice.
func sumf(vals []float32) float32 {
	var total float32
	for _, v := range vals {
		total += v
	}
	return total
}
