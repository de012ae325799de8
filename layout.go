package gui

// LayoutType defines the direction of a layout.
type LayoutType uint8

const (
	LayoutVertical   LayoutType = iota // Items stack vertically (default)
	LayoutHorizontal                   // Items stack horizontally
)

// Layout tracks the current layout state.
type Layout struct {
	Type LayoutType

	// Position tracking
	StartX, StartY   float32
	CursorX, CursorY float32

	// Sizing
	Width, Height       float32 // Available size
	MaxWidth, MaxHeight float32 // Accumulated content size

	// Spacing
	Gap     float32 // Space between children
	Padding float32 // Inner padding

	// State
	ItemCount int // For gap calculation
}

// LayoutOption configures a layout container.
type LayoutOption func(*Layout)

// Gap sets spacing between children.
func Gap(pixels float32) LayoutOption {
	return func(l *Layout) { l.Gap = pixels }
}

// Padding sets inner padding.
func Padding(pixels float32) LayoutOption {
	return func(l *Layout) { l.Padding = pixels }
}

// Width sets a fixed width for the layout.
func Width(w float32) LayoutOption {
	return func(l *Layout) { l.Width = w }
}

// Height sets a fixed height for the layout.
func Height(h float32) LayoutOption {
	return func(l *Layout) { l.Height = h }
}

// pushLayoutWith fills a layout's start position and default size,
// then pushes it onto the stack.
func (ctx *Context) pushLayoutWith(layout *Layout) {
	layout.StartX = ctx.cursor.X
	layout.StartY = ctx.cursor.Y
	if layout.Width == 0 {
		layout.Width = ctx.currentLayoutWidth()
	}
	if layout.Height == 0 {
		layout.Height = ctx.currentLayoutHeight()
	}
	ctx.layoutStack = append(ctx.layoutStack, layout)
}

// popLayout removes the current layout and returns its content bounds.
func (ctx *Context) popLayout() Rect {
	n := len(ctx.layoutStack)
	if n == 0 {
		return Rect{}
	}

	layout := ctx.layoutStack[n-1]
	ctx.layoutStack = ctx.layoutStack[:n-1]

	bounds := Rect{
		X: layout.StartX,
		Y: layout.StartY,
		W: layout.MaxWidth,
		H: layout.MaxHeight,
	}

	// Treat the popped layout as a single item in the parent
	if len(ctx.layoutStack) > 0 {
		parent := ctx.layoutStack[len(ctx.layoutStack)-1]

		if parent.ItemCount > 0 {
			gap := parent.Gap
			if gap == 0 {
				gap = ctx.style.ItemSpacing.Y
			}
			if parent.Type == LayoutVertical {
				ctx.cursor.Y += gap
			} else {
				ctx.cursor.X += gap
			}
		}

		if parent.Type == LayoutVertical {
			ctx.cursor.X = parent.StartX + parent.Padding
			ctx.cursor.Y = layout.StartY + layout.MaxHeight
			parent.MaxWidth = maxf(parent.MaxWidth, layout.MaxWidth)
			parent.MaxHeight = ctx.cursor.Y - parent.StartY
		} else {
			ctx.cursor.X = layout.StartX + layout.MaxWidth
			ctx.cursor.Y = parent.StartY + parent.Padding
			parent.MaxWidth = ctx.cursor.X - parent.StartX
			parent.MaxHeight = maxf(parent.MaxHeight, layout.MaxHeight)
		}

		parent.ItemCount++
	}

	return bounds
}

// Panel draws a titled panel around its contents.
// Returns a function that should be called with the content closure.
//
// Usage:
//
//	ctx.Panel("Inventory", gui.Gap(8), gui.Padding(12))(func() {
//	    ctx.Text("Hello")
//	})
func (ctx *Context) Panel(title string, opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{
			Type:    LayoutVertical,
			Padding: ctx.style.PanelPadding,
			Gap:     ctx.style.ItemSpacing.Y,
		}
		for _, opt := range opts {
			opt(layout)
		}

		pad := layout.Padding
		userWidth := layout.Width
		userHeight := layout.Height

		startX := ctx.cursor.X
		startY := ctx.cursor.Y

		headerH := float32(0)
		if title != "" {
			headerH = ctx.lineHeight() + pad*2
		}

		ctx.cursor.X += pad
		ctx.cursor.Y += pad + headerH

		ctx.pushLayoutWith(layout)
		contents()
		bounds := ctx.popLayout()

		panelW := bounds.W + pad*2
		panelH := bounds.H + pad*2 + headerH

		// User-specified dimensions act as a minimum; 0 means auto-size
		if userWidth > 0 && panelW < userWidth {
			panelW = userWidth
		}
		if userHeight > 0 && panelH < userHeight {
			panelH = userHeight
		}

		// Background behind content
		ctx.DrawList.InsertRect(startX, startY, panelW, panelH, ctx.style.PanelColor)

		if title != "" {
			ctx.DrawList.AddRect(startX, startY, panelW, headerH, ctx.style.PanelHeaderBgColor)
			textY := startY + (headerH-ctx.lineHeight())/2
			ctx.addText(startX+pad, textY, title, ctx.style.TextColor)
		}

		if ctx.style.BorderSize > 0 {
			ctx.DrawList.AddRectOutline(startX, startY, panelW, panelH,
				ctx.style.PanelBorderColor, ctx.style.BorderSize)
		}

		if ctx.isHovered(Rect{X: startX, Y: startY, W: panelW, H: panelH}) {
			ctx.WantCaptureMouse = true
		}

		ctx.cursor.X = startX
		ctx.cursor.Y = startY + panelH
	}
}

// VStack creates a vertical layout container.
func (ctx *Context) VStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{Type: LayoutVertical, Gap: ctx.style.ItemSpacing.Y}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.pushLayoutWith(layout)
		contents()
		ctx.popLayout()
	}
}

// HStack creates a horizontal layout container.
func (ctx *Context) HStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{Type: LayoutHorizontal, Gap: ctx.style.ItemSpacing.X}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.pushLayoutWith(layout)
		contents()
		ctx.popLayout()
	}
}

// Spacing adds vertical space.
func (ctx *Context) Spacing(pixels float32) {
	ctx.cursor.Y += pixels
}

// Separator draws a horizontal line.
func (ctx *Context) Separator() {
	w := ctx.currentLayoutWidth()
	y := ctx.cursor.Y + 2
	ctx.DrawList.AddLine(ctx.cursor.X, y, ctx.cursor.X+w, y, ctx.style.SeparatorColor, 1)
	ctx.cursor.Y += 4
}
