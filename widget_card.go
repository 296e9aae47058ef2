package m3ui

// CardOptions configures Card and BeginCard.
type CardOptions struct {
	Variant   CardVariant
	Clickable bool // show state layers and report clicks
	Disabled  bool

	Background Color
	Outline    Color

	ID string
}

// Card draws a card surface filling bounds and registers it as an
// occupied region, so widgets under it do not receive the pointer.
// It reports a click only when Clickable is set.
func (ctx *Context) Card(bounds Rect, opts CardOptions) bool {
	id := ctx.GetID("card:" + opts.ID)
	state := StateDefault
	clicked := false
	if opts.Clickable {
		it := ctx.Interact(id, bounds, opts.Disabled)
		state, clicked = it.State, it.Clicked
	} else {
		ctx.RegisterRegion(id, bounds)
		if opts.Disabled {
			state = StateDisabled
		}
	}

	c := ctx.theme.CardColors(opts.Variant, state)
	if state != StateDisabled {
		c.Background = pick(opts.Background, c.Background)
		c.Outline = pick(opts.Outline, c.Outline)
	}
	dl := ctx.target()
	radius := ctx.theme.Shape.Medium
	if opts.Variant == CardElevated && state != StateDisabled {
		for i, a := range []float32{0.12, 0.06} {
			s := bounds
			s.Y += float32(i + 1)
			dl.AddRoundedRect(s, radius, ctx.theme.Colors.Shadow.WithAlpha(a))
		}
	}
	dl.AddRoundedRect(bounds, radius, c.Background)
	if !c.Outline.IsUnset() {
		dl.AddRoundedRectOutline(bounds, radius, c.Outline, 1)
	}
	return clicked
}

// BeginCard allocates a card from the current layout, draws it and opens
// a container inside it laid out with inner. inner.Padding defaults to
// 16. Fit-sized cards are drawn at last frame's measured size. Close with
// EndCard.
func (ctx *Context) BeginCard(spec SizeSpec, opts CardOptions, inner LayoutStyle) Rect {
	style := inner
	style.Width, style.Height, style.FlexGrow = spec.Width, spec.Height, spec.FlexGrow
	if style.Padding == 0 {
		style.Padding = SpaceXL
	}
	if style.ID == "" {
		style.ID = opts.ID
	}
	r := ctx.BeginContainer(style)
	ctx.Card(r, opts)
	return r
}

// EndCard closes the container opened by BeginCard and returns the
// card's final rectangle.
func (ctx *Context) EndCard() Rect {
	return ctx.EndContainer()
}
