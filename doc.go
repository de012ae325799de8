/*
Package gui provides an immediate-mode GUI toolkit built around a
reflowable grid layout, designed as idiomatic Go with a dedicated
Context type.

# Overview

The UI is rebuilt every frame. Nothing is retained between frames:
items are measured, a grid geometry is planned against the available
region, and every cell is drawn, all inside the one call. Scroll
offsets are the only state that survives, keyed by widget ID and
dropped automatically when a widget stops being drawn.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(900, 640)
	ui := gui.New(renderer, gui.WithStyle(gui.DarkStyle()))

	// Frame loop
	for !window.ShouldClose() {
	    ctx := ui.Begin(input, gui.Vec2{X: 900, Y: 640}, deltaTime)

	    gui.Grid(ctx, "icons", items,
	        func(it Item) gui.Vec2 { return it.Size() },
	        func(it Item, cell, size gui.Vec2) { drawIcon(ctx, it, size) },
	        gui.GridRowMajor, gui.Vec2{X: 400, Y: 300})

	    ui.End()
	    window.SwapBuffers()
	}

# Grid Layout

The grid is the core of the package. Items keep their submission
order; only their arrangement reflows:

	gui.Grid(ctx, id, items, measure, draw, order, size, opts...)

Row-major order flows items left-to-right and wraps to new rows; the
planner grows the column count until the total width would exceed the
region width, then settles on the previous candidate. Column-major
order flows top-to-bottom and wraps to new columns; the planner grows
the row count against the region height instead. In both orders a
column is as wide as its widest member and a row as tall as its
tallest, so mixed item sizes produce a ragged-free grid.

One column (or one row) is always accepted, even when a single item
overflows the bound; the layout cannot shrink further. An overflowing
grid scrolls inside its region: vertically for row-major order,
horizontally for column-major order.

CellIndex exposes the index-to-slot mapping, and PlanRowMajor /
PlanColumnMajor expose the planners, for hosts that need geometry
without drawing:

	row, col := gui.CellIndex(i, geom.Span, order)
	geom := gui.PlanRowMajor(extents, maxWidth)

# Regions

BeginRegion / EndRegion give a clipped scrollable viewport to any
content, with mouse wheel, PageUp/PageDown, Home/End, and a draggable
scrollbar:

	ctx.BeginRegion("log", gui.Vec2{X: 300, Y: 200}, false)
	// ... draw content ...
	ctx.EndRegion()

# Supporting Widgets

	ctx.Text(s)                 Basic text
	ctx.TextColored(s, color)   Colored text
	ctx.TextDisabled(s)         Dimmed text
	ctx.Label(name, value)      "name: value" pair
	ctx.Button(label) bool      Clickable button
	ctx.Panel(title)(func(){})  Titled container
	ctx.VStack()(func(){})      Vertical layout
	ctx.HStack()(func(){})      Horizontal layout
	ctx.Separator()             Horizontal rule
	ctx.Spacing(px)             Vertical space

# Widget Options

	WithID(id)          Explicit ID (use in loops)
	WithWidth(w)        Fixed width
	WithHeight(h)       Fixed height
	FitToContents()     Shrink a grid's region to its content
	ShowScrollbar(b)    Scrollbar visibility

# Style

Style carries colors, font metrics, ItemSpacing (the pad added to
every grid extent before planning), and the DebugGrid toggle that
outlines regions and cell boundaries without affecting geometry.
DefaultStyle, DarkStyle and LightStyle are provided.

# Performance

  - sync.Pool for DrawList buffer reuse
  - Batched rendering by texture and clip rect
  - Stale widget state cleaned automatically each frame

The planners recompute each candidate span from scratch; the layout
pass is quadratic in the item count. For the item counts a UI panel
holds this is well below a frame budget, and it keeps candidate
geometries exact when items reshuffle between columns.
*/
package gui
