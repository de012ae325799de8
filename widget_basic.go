package gui

// Text draws a line of text at the current layout position.
func (ctx *Context) Text(text string) {
	ctx.TextColored(text, ctx.style.TextColor)
}

// TextColored draws a line of text with a specific color.
func (ctx *Context) TextColored(text string, color uint32) {
	pos := ctx.ItemPos()
	size := ctx.MeasureText(text)

	ctx.addText(pos.X, pos.Y, text, color)
	ctx.advanceCursor(size)
}

// TextDisabled draws dimmed text.
func (ctx *Context) TextDisabled(text string) {
	ctx.TextColored(text, ctx.style.TextDisabledColor)
}

// Label draws "name: value" with the value in the standard text color
// and the name dimmed.
func (ctx *Context) Label(name, value string) {
	pos := ctx.ItemPos()
	nameText := name + ": "
	nameSize := ctx.MeasureText(nameText)

	ctx.addText(pos.X, pos.Y, nameText, ctx.style.TextDisabledColor)
	ctx.addText(pos.X+nameSize.X, pos.Y, value, ctx.style.TextColor)

	valueSize := ctx.MeasureText(value)
	ctx.advanceCursor(Vec2{X: nameSize.X + valueSize.X, Y: nameSize.Y})
}

// Button draws a clickable button and returns true when clicked.
func (ctx *Context) Button(label string, opts ...Option) bool {
	o := applyOptions(opts)
	pos := ctx.ItemPos()

	textSize := ctx.MeasureText(label)
	pad := ctx.style.ButtonPadding
	w := textSize.X + pad*2
	h := textSize.Y + pad*2
	if width := GetOpt(o, OptWidth); width > 0 {
		w = width
	}
	if height := GetOpt(o, OptHeight); height > 0 {
		h = height
	}

	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}
	hovered := ctx.isHovered(rect)
	pressed := ctx.isPressed(rect)
	clicked := ctx.isClicked(rect)

	bg := ctx.style.ButtonColor
	if pressed {
		bg = ctx.style.ButtonActiveColor
	} else if hovered {
		bg = ctx.style.ButtonHoveredColor
	}

	ctx.DrawList.AddRect(pos.X, pos.Y, w, h, bg)
	if ctx.style.BorderSize > 0 {
		ctx.DrawList.AddRectOutline(pos.X, pos.Y, w, h, ctx.style.PanelBorderColor, ctx.style.BorderSize)
	}

	// Center the label
	textX := pos.X + (w-textSize.X)/2
	textY := pos.Y + (h-textSize.Y)/2
	ctx.addText(textX, textY, label, ctx.style.TextColor)

	if hovered {
		ctx.WantCaptureMouse = true
	}

	ctx.advanceCursor(Vec2{X: w, Y: h})
	return clicked
}
