package m3ui

// ButtonOptions configures Button. Zero-alpha colors use the variant's
// theme colors.
type ButtonOptions struct {
	Variant  ButtonVariant
	Disabled bool
	Icon     string // leading icon name

	Background Color
	TextColor  Color
	Outline    Color

	// ID overrides the label for identity, so two buttons with the same
	// label in one scope stay distinct.
	ID string
}

const (
	buttonPadX     = 24
	buttonIconSize = 18
)

// Button draws a Material button filling bounds and reports whether it
// was activated this frame.
func (ctx *Context) Button(bounds Rect, label string, opts ButtonOptions) bool {
	key := label
	if opts.ID != "" {
		key = opts.ID
	}
	id := ctx.GetID(key)
	it := ctx.Interact(id, bounds, opts.Disabled)

	c := ctx.theme.ButtonColors(opts.Variant, it.State)
	if it.State != StateDisabled {
		c.Background = pick(opts.Background, c.Background)
		c.Text = pick(opts.TextColor, c.Text)
		c.Outline = pick(opts.Outline, c.Outline)
	}

	dl := ctx.target()
	radius := minf(bounds.H/2, ctx.theme.Shape.Full)
	if opts.Variant == ButtonElevated && it.State != StateDisabled {
		shadow := bounds
		shadow.Y++
		dl.AddRoundedRect(shadow, radius, ctx.theme.Colors.Shadow.WithAlpha(0.2))
	}
	if !c.Background.IsUnset() {
		dl.AddRoundedRect(bounds, radius, c.Background)
	}
	if !c.Outline.IsUnset() {
		dl.AddRoundedRectOutline(bounds, radius, c.Outline, 1)
	}

	size := ctx.theme.Type.Label
	avail := bounds.W - 2*buttonPadX
	iconW := float32(0)
	if opts.Icon != "" {
		iconW = buttonIconSize + SpaceMD
		avail -= iconW
	}
	text := ctx.TruncateText(label, maxf(0, avail), size, FontWeightMedium)
	m := ctx.MeasureText(text, size, FontWeightMedium)

	x := bounds.X + (bounds.W-m.X-iconW)/2
	if opts.Icon != "" {
		ctx.Icon(Rect{X: x, Y: bounds.Y + (bounds.H-buttonIconSize)/2, W: buttonIconSize, H: buttonIconSize}, opts.Icon, c.Text)
		x += iconW
	}
	ctx.DrawText(text, Vec2{X: x, Y: bounds.Y + (bounds.H-m.Y)/2}, size, FontWeightMedium, c.Text)

	if it.Clicked && uiVerbose() {
		uiLogger.Debug("button clicked", "label", label)
	}
	return it.Clicked
}

// IconButtonOptions configures IconButton.
type IconButtonOptions struct {
	// Variant uses the button color tables; ButtonText is the standard
	// (unfilled) icon button.
	Variant  ButtonVariant
	Disabled bool
	Color    Color
	ID       string
}

// IconButton draws a circular icon-only button and reports activation.
func (ctx *Context) IconButton(bounds Rect, icon string, opts IconButtonOptions) bool {
	key := icon
	if opts.ID != "" {
		key = opts.ID
	}
	id := ctx.GetID(key)
	it := ctx.Interact(id, bounds, opts.Disabled)

	c := ctx.theme.ButtonColors(opts.Variant, it.State)
	if opts.Variant == ButtonText && it.State != StateDisabled {
		c.Text = pick(opts.Color, ctx.theme.Colors.OnSurfaceVariant)
		if it.State != StateDefault {
			c.Background = c.Text.WithAlpha(stateOpacity(it.State))
		}
	}

	dl := ctx.target()
	center := bounds.Center()
	radius := minf(bounds.W, bounds.H) / 2
	if !c.Background.IsUnset() {
		dl.AddCircle(center, radius, c.Background)
	}
	if !c.Outline.IsUnset() {
		dl.AddArc(center, radius, 0, 360, 24, c.Outline, 1)
	}
	side := radius * 1.2
	ctx.Icon(Rect{X: center.X - side/2, Y: center.Y - side/2, W: side, H: side}, icon, c.Text)
	return it.Clicked
}

// stateOpacity returns the state-layer opacity for s.
func stateOpacity(s ComponentState) float32 {
	switch s {
	case StateHovered:
		return hoverOpacity
	case StatePressed:
		return pressOpacity
	case StateFocused:
		return focusOpacity
	}
	return 0
}
