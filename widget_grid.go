package gui

import (
	"errors"
	"fmt"
)

// Grid input validation errors. Misuse is reported immediately rather
// than producing a silently empty layout.
var (
	ErrNilItems   = errors.New("gui: grid item slice is nil")
	ErrNilMeasure = errors.New("gui: grid measure callback is nil")
	ErrNilDraw    = errors.New("gui: grid draw callback is nil")
	ErrGridOrder  = errors.New("gui: unknown grid order")
)

// Grid lays out items in a reflowable grid inside a scrollable region
// at the cursor. Every item is measured via the measure callback, a
// geometry is planned against the region bound (width for row-major
// order, height for column-major order), and draw is invoked once per
// item with the cell extent and the item's own measured size.
//
// size gives the region viewport; a non-positive axis falls back to
// the space available at the cursor. Style.ItemSpacing pads every
// measured extent before planning, so cells never touch.
//
// An empty (non-nil) items slice is valid: the region is still opened
// and closed, no draw calls happen, and the returned geometry is
// empty. A nil slice, nil callback, or out-of-range order returns an
// error without touching the frame. The draw callback may issue any
// drawing calls but must not mutate the items slice being walked.
//
// Usage:
//
//	_, err := gui.Grid(ctx, "inventory", items,
//		func(it Item) gui.Vec2 { return it.IconSize() },
//		func(it Item, cell, size gui.Vec2) { drawIcon(ctx, it, size) },
//		gui.GridRowMajor, gui.Vec2{X: 400, Y: 300})
func Grid[T any](ctx *Context, id string, items []T, measure func(T) Vec2, draw func(item T, cell, size Vec2), order GridOrder, size Vec2, opts ...Option) (GridGeometry, error) {
	if items == nil {
		return GridGeometry{}, ErrNilItems
	}
	if measure == nil {
		return GridGeometry{}, ErrNilMeasure
	}
	if draw == nil {
		return GridGeometry{}, ErrNilDraw
	}
	if order != GridRowMajor && order != GridColumnMajor {
		return GridGeometry{}, fmt.Errorf("%w: %d", ErrGridOrder, order)
	}

	o := applyOptions(opts)
	if w := GetOpt(o, OptWidth); w > 0 {
		size.X = w
	}
	if h := GetOpt(o, OptHeight); h > 0 {
		size.Y = h
	}
	avail := ctx.AvailableRegion()
	if size.X <= 0 {
		size.X = avail.X
	}
	if size.Y <= 0 {
		size.Y = avail.Y
	}

	// Measure every item once; spacing pads the planned extents only,
	// the draw callback still receives the raw measured size.
	spacing := ctx.style.ItemSpacing
	raw := make([]Vec2, len(items))
	padded := make([]Vec2, len(items))
	for i, item := range items {
		raw[i] = measure(item)
		padded[i] = raw[i].Add(spacing)
	}

	var geom GridGeometry
	if order == GridRowMajor {
		geom = PlanRowMajor(padded, size.X)
	} else {
		geom = PlanColumnMajor(padded, size.Y)
	}

	content := geom.ContentSize()
	if GetOpt(o, OptFitToContents) {
		size = content
	}

	viewport := ctx.GetCursorPos()
	ctx.BeginRegion(id, size, order == GridColumnMajor, opts...)
	defer ctx.EndRegion()
	ctx.setRegionContent(content)

	origin := ctx.GetCursorPos()

	// Cumulative edge offsets so each cell's position is a lookup
	colX := make([]float32, geom.Cols())
	for c := 1; c < len(colX); c++ {
		colX[c] = colX[c-1] + geom.ColWidths[c-1]
	}
	rowY := make([]float32, geom.Rows())
	for r := 1; r < len(rowY); r++ {
		rowY[r] = rowY[r-1] + geom.RowHeights[r-1]
	}

	for i, item := range items {
		row, col := CellIndex(i, geom.Span, order)
		cell := Vec2{X: geom.ColWidths[col], Y: geom.RowHeights[row]}
		ctx.SetCursorPos(origin.X+colX[col], origin.Y+rowY[row])
		draw(item, cell, raw[i])
	}

	if ctx.style.DebugGrid {
		lineColor := ctx.style.GridLineColor
		for i := range items {
			row, col := CellIndex(i, geom.Span, order)
			ctx.DrawList.AddRectOutline(
				origin.X+colX[col], origin.Y+rowY[row],
				geom.ColWidths[col], geom.RowHeights[row],
				lineColor, 1)
		}
		ctx.DrawList.AddRectOutline(viewport.X, viewport.Y, size.X, size.Y, lineColor, 1)
	}

	return geom, nil
}
