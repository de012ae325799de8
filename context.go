package gui

import (
	"log/slog"
	"os"
)

// guiLogger reports API misuse that cannot surface as an error value,
// such as an unbalanced EndRegion call.
var guiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

// Context holds all state for UI rendering in a single frame.
// This is NOT context.Context - it's a dedicated GUI context type.
// Everything here is rebuilt by Reset at the start of each frame;
// persistent widget state lives in FrameStores keyed by widget ID.
type Context struct {
	// Drawing output
	DrawList *DrawList

	// Styling
	style      Style
	styleStack []Style // For PushStyle/PopStyle

	// Layout
	cursor      Vec2
	layoutStack []*Layout
	regionStack []*regionFrame

	// Input (read-only during frame)
	Input *InputState

	// IDs
	idStack   []ID
	idCounter uint32 // Auto-increment for call-site IDs

	// Screen
	DisplaySize Vec2

	// Frame info
	FrameCount uint64
	DeltaTime  float32

	// Font texture ID (set by renderer) for the built-in bitmap font
	FontTextureID uint32

	// WantCaptureMouse is true when the mouse is over a GUI region;
	// the application should not also consume the event.
	WantCaptureMouse bool
}

// NewContext creates a new GUI context with default settings.
func NewContext() *Context {
	return &Context{
		styleStack:  make([]Style, 0, 8),
		layoutStack: make([]*Layout, 0, 16),
		regionStack: make([]*regionFrame, 0, 4),
		idStack:     make([]ID, 0, 32),
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the base style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// PushStyle temporarily overrides the style.
func (ctx *Context) PushStyle(style Style) {
	ctx.styleStack = append(ctx.styleStack, ctx.style)
	ctx.style = style
}

// PopStyle restores the previous style.
func (ctx *Context) PopStyle() {
	n := len(ctx.styleStack)
	if n > 0 {
		ctx.style = ctx.styleStack[n-1]
		ctx.styleStack = ctx.styleStack[:n-1]
	}
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	// Advance frame counter and clean up stale FrameStore entries
	NextFrame()

	ctx.cursor = Vec2{0, 0}
	ctx.layoutStack = ctx.layoutStack[:0]
	ctx.regionStack = ctx.regionStack[:0]
	ctx.styleStack = ctx.styleStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.idCounter = 0
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.FrameCount++

	// Widgets set this during the frame
	ctx.WantCaptureMouse = false
}

// SetCursorPos sets the cursor position for the next widget.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// GetCursorPos returns the current cursor position.
func (ctx *Context) GetCursorPos() Vec2 {
	return ctx.cursor
}

// AvailableRegion returns the drawable space left in the current
// container, measured from the cursor to the container's far edge.
// Outside any layout the container is the whole display.
func (ctx *Context) AvailableRegion() Vec2 {
	if layout := ctx.currentLayout(); layout != nil {
		return Vec2{
			X: maxf(0, layout.StartX+layout.Width-ctx.cursor.X),
			Y: maxf(0, layout.StartY+layout.Height-ctx.cursor.Y),
		}
	}
	return Vec2{
		X: maxf(0, ctx.DisplaySize.X-ctx.cursor.X),
		Y: maxf(0, ctx.DisplaySize.Y-ctx.cursor.Y),
	}
}

// lineHeight returns the height of a single line of text.
func (ctx *Context) lineHeight() float32 {
	return ctx.style.CharHeight * ctx.style.FontScale
}

// LineHeight returns the height of a single line of text (public API).
func (ctx *Context) LineHeight() float32 {
	return ctx.lineHeight()
}

// MeasureText returns the size of rendered text using the built-in
// monospace font metrics.
func (ctx *Context) MeasureText(text string) Vec2 {
	charW := ctx.style.CharWidth * ctx.style.FontScale
	charH := ctx.style.CharHeight * ctx.style.FontScale
	return Vec2{X: float32(len(text)) * charW, Y: charH}
}

// addText is a helper to draw text with the built-in font.
func (ctx *Context) addText(x, y float32, text string, color uint32) {
	ctx.DrawList.SetTexture(ctx.FontTextureID)
	ctx.DrawList.AddText(x, y, text, color, ctx.style.FontScale, ctx.style.CharWidth, ctx.style.CharHeight)
	ctx.DrawList.SetTexture(0)
}

// isHovered returns true if the widget area is under the mouse cursor.
func (ctx *Context) isHovered(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return rect.Contains(Vec2{ctx.Input.MouseX, ctx.Input.MouseY})
}

// IsHovered returns true if the widget area is under the mouse cursor (public API).
func (ctx *Context) IsHovered(rect Rect) bool {
	return ctx.isHovered(rect)
}

// isClicked returns true if the widget was clicked this frame.
func (ctx *Context) isClicked(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return ctx.isHovered(rect) && ctx.Input.MouseClicked(MouseButtonLeft)
}

// isPressed returns true if the widget is being held down.
func (ctx *Context) isPressed(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return ctx.isHovered(rect) && ctx.Input.MouseDown(MouseButtonLeft)
}

// beginItem applies gap spacing before drawing an item.
func (ctx *Context) beginItem() {
	layout := ctx.currentLayout()
	if layout == nil {
		return
	}

	if layout.ItemCount > 0 {
		gap := layout.Gap
		if gap == 0 {
			gap = ctx.style.ItemSpacing.Y
		}
		if layout.Type == LayoutVertical {
			ctx.cursor.Y += gap
		} else {
			ctx.cursor.X += gap
		}
	}
}

// ItemPos returns the position for the next widget with gap applied.
func (ctx *Context) ItemPos() Vec2 {
	ctx.beginItem()
	return ctx.cursor
}

// AdvanceCursor moves the cursor after drawing an item and updates the
// enclosing layout's content tracking.
func (ctx *Context) AdvanceCursor(size Vec2) {
	layout := ctx.currentLayout()
	if layout == nil {
		ctx.cursor.Y += size.Y + ctx.style.ItemSpacing.Y
		return
	}

	if layout.Type == LayoutVertical {
		ctx.cursor.Y += size.Y
		layout.MaxWidth = maxf(layout.MaxWidth, size.X)
		layout.MaxHeight = ctx.cursor.Y - layout.StartY
	} else {
		ctx.cursor.X += size.X
		layout.MaxWidth = ctx.cursor.X - layout.StartX
		layout.MaxHeight = maxf(layout.MaxHeight, size.Y)
	}

	layout.ItemCount++
}

// advanceCursor moves the cursor after drawing an item.
func (ctx *Context) advanceCursor(size Vec2) {
	ctx.AdvanceCursor(size)
}

// currentLayoutWidth returns the available width in the current layout.
func (ctx *Context) currentLayoutWidth() float32 {
	if layout := ctx.currentLayout(); layout != nil {
		return layout.Width - layout.Padding*2
	}
	return ctx.DisplaySize.X
}

// currentLayoutHeight returns the available height in the current layout.
func (ctx *Context) currentLayoutHeight() float32 {
	if layout := ctx.currentLayout(); layout != nil {
		return layout.Height - layout.Padding*2
	}
	return ctx.DisplaySize.Y
}

// currentLayout returns the current layout or nil.
func (ctx *Context) currentLayout() *Layout {
	if len(ctx.layoutStack) > 0 {
		return ctx.layoutStack[len(ctx.layoutStack)-1]
	}
	return nil
}
