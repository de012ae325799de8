package gui

// regionStore persists scroll state per region across frames.
var regionStore = NewFrameStore[regionState]()

// regionNameToID lets state be found by name after the fact; GetID
// output depends on call order, so the ID is recorded when the region
// is opened.
var regionNameToID = make(map[string]ID)

// regionState is the per-region state that survives between frames.
type regionState struct {
	ScrollX, ScrollY   float32
	ContentW, ContentH float32

	Dragging     bool
	DragStartY   float32
	DragStartScr float32
}

// regionFrame is the per-frame bookkeeping for an open region.
type regionFrame struct {
	id         ID
	origin     Vec2
	size       Vec2
	horizontal bool
	scrollbars ScrollbarVisibility
	state      *regionState
}

// BeginRegion opens a clipped, scrollable viewport at the cursor.
// Content drawn until the matching EndRegion is offset by the region's
// scroll position and clipped to the viewport. The returned bool
// reports whether the viewport is visible on screen at all; callers
// may skip drawing when it is false but must still call EndRegion.
//
// horizontal enables sideways scrolling for content flowing past the
// right edge, as column-major grids produce.
func (ctx *Context) BeginRegion(id string, size Vec2, horizontal bool, opts ...Option) bool {
	o := applyOptions(opts)
	regionID := ctx.GetID(id + "_region")
	state := regionStore.Get(regionID, regionState{})
	regionNameToID[id+"_region"] = regionID

	origin := ctx.cursor

	frame := &regionFrame{
		id:         regionID,
		origin:     origin,
		size:       size,
		horizontal: horizontal,
		scrollbars: GetOpt(o, OptScrollbarVisibility),
		state:      state,
	}
	ctx.regionStack = append(ctx.regionStack, frame)

	viewport := Rect{X: origin.X, Y: origin.Y, W: size.X, H: size.Y}
	if ctx.isHovered(viewport) {
		ctx.WantCaptureMouse = true
	}

	ctx.DrawList.PushClipRect(origin.X, origin.Y, origin.X+size.X, origin.Y+size.Y)

	// Content cursor starts at the origin shifted by the scroll offset
	ctx.cursor = Vec2{
		X: origin.X - state.ScrollX,
		Y: origin.Y - state.ScrollY,
	}

	display := Rect{X: 0, Y: 0, W: ctx.DisplaySize.X, H: ctx.DisplaySize.Y}
	return viewport.Intersects(display)
}

// setRegionContent records the content extent of the innermost open
// region, used by EndRegion for scroll clamping and scrollbar sizing.
func (ctx *Context) setRegionContent(size Vec2) {
	if n := len(ctx.regionStack); n > 0 {
		frame := ctx.regionStack[n-1]
		frame.state.ContentW = size.X
		frame.state.ContentH = size.Y
	}
}

// EndRegion closes the innermost region opened by BeginRegion: it
// handles scroll input, draws scrollbars when the recorded content
// overflows the viewport, pops the clip rect, and places the cursor
// just below the viewport.
func (ctx *Context) EndRegion() {
	n := len(ctx.regionStack)
	if n == 0 {
		guiLogger.Warn("EndRegion called with no open region")
		return
	}
	frame := ctx.regionStack[n-1]
	ctx.regionStack = ctx.regionStack[:n-1]

	ctx.DrawList.PopClipRect()

	origin, size, state := frame.origin, frame.size, frame.state
	maxScrollY := maxf(0, state.ContentH-size.Y)
	maxScrollX := maxf(0, state.ContentW-size.X)

	viewport := Rect{X: origin.X, Y: origin.Y, W: size.X, H: size.Y}
	if ctx.Input != nil && ctx.isHovered(viewport) {
		if ctx.Input.MouseWheelY != 0 {
			state.ScrollY = clampf(state.ScrollY-ctx.Input.MouseWheelY*30, 0, maxScrollY)
		}
		if frame.horizontal && ctx.Input.MouseWheelX != 0 {
			state.ScrollX = clampf(state.ScrollX-ctx.Input.MouseWheelX*30, 0, maxScrollX)
		}

		// Page keys scroll 80% of a viewport
		page := size.Y * 0.8
		if ctx.Input.KeyPressed(KeyPageDown) {
			state.ScrollY = clampf(state.ScrollY+page, 0, maxScrollY)
		}
		if ctx.Input.KeyPressed(KeyPageUp) {
			state.ScrollY = clampf(state.ScrollY-page, 0, maxScrollY)
		}
		if ctx.Input.KeyPressed(KeyHome) {
			state.ScrollY = 0
		}
		if ctx.Input.KeyPressed(KeyEnd) {
			state.ScrollY = maxScrollY
		}
	}

	showV := frame.scrollbars == ScrollbarAlways ||
		(frame.scrollbars == ScrollbarAuto && maxScrollY > 0)
	showH := frame.horizontal && maxScrollX > 0 && frame.scrollbars != ScrollbarNever
	if showV && state.ContentH > 0 {
		ctx.drawVerticalScrollbar(frame, maxScrollY)
	}
	if showH {
		ctx.drawHorizontalScrollbar(frame, maxScrollX)
	}

	ctx.cursor = Vec2{X: origin.X, Y: origin.Y + size.Y}
}

func (ctx *Context) drawVerticalScrollbar(frame *regionFrame, maxScroll float32) {
	origin, size, state := frame.origin, frame.size, frame.state
	barW := ctx.style.ScrollbarSize
	barX := origin.X + size.X - barW

	thumbH := minf(size.Y, maxf(20, size.Y*size.Y/state.ContentH))
	track := size.Y - thumbH
	thumbY := origin.Y
	if maxScroll > 0 {
		thumbY += (state.ScrollY / maxScroll) * track
	}

	ctx.DrawList.AddRect(barX, origin.Y, barW, size.Y, ctx.style.ScrollbarBgColor)

	thumbRect := Rect{X: barX, Y: thumbY, W: barW, H: thumbH}
	thumbHovered := ctx.isHovered(thumbRect)

	if ctx.Input != nil {
		if thumbHovered && ctx.Input.MouseClicked(MouseButtonLeft) {
			state.Dragging = true
			state.DragStartY = ctx.Input.MouseY
			state.DragStartScr = state.ScrollY
		}
		if state.Dragging {
			if ctx.Input.MouseDown(MouseButtonLeft) {
				if track > 0 {
					delta := (ctx.Input.MouseY - state.DragStartY) * (maxScroll / track)
					state.ScrollY = clampf(state.DragStartScr+delta, 0, maxScroll)
				}
			} else {
				state.Dragging = false
			}
		}

		// Track click pages toward the click
		barRect := Rect{X: barX, Y: origin.Y, W: barW, H: size.Y}
		if !thumbHovered && ctx.isHovered(barRect) && ctx.Input.MouseClicked(MouseButtonLeft) {
			if ctx.Input.MouseY < thumbY {
				state.ScrollY = clampf(state.ScrollY-size.Y, 0, maxScroll)
			} else if ctx.Input.MouseY > thumbY+thumbH {
				state.ScrollY = clampf(state.ScrollY+size.Y, 0, maxScroll)
			}
		}
	}

	color := ctx.style.ScrollbarGrabColor
	if state.Dragging || thumbHovered {
		color = ctx.style.ScrollbarGrabHovered
	}
	ctx.DrawList.AddRect(barX, thumbY, barW, thumbH, color)
}

func (ctx *Context) drawHorizontalScrollbar(frame *regionFrame, maxScroll float32) {
	origin, size, state := frame.origin, frame.size, frame.state
	barH := ctx.style.ScrollbarSize
	barY := origin.Y + size.Y - barH

	thumbW := minf(size.X, maxf(20, size.X*size.X/state.ContentW))
	track := size.X - thumbW
	thumbX := origin.X
	if maxScroll > 0 {
		thumbX += (state.ScrollX / maxScroll) * track
	}

	ctx.DrawList.AddRect(origin.X, barY, size.X, barH, ctx.style.ScrollbarBgColor)
	ctx.DrawList.AddRect(thumbX, barY, thumbW, barH, ctx.style.ScrollbarGrabColor)
}

// RegionScroll returns the current scroll offset of a region by name.
// Returns the zero vector when the region has not been rendered yet.
func RegionScroll(id string) Vec2 {
	if regionID, ok := regionNameToID[id+"_region"]; ok {
		if state := regionStore.GetIfExists(regionID); state != nil {
			return Vec2{X: state.ScrollX, Y: state.ScrollY}
		}
	}
	return Vec2{}
}
