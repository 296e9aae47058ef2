package m3ui

// TextOptions controls Text. Zero values use the theme's body style.
type TextOptions struct {
	Size     float32
	Weight   FontWeight
	Color    Color
	Center   bool // center in bounds instead of top-left
	Truncate bool // shorten with an ellipsis to fit bounds.W
	Wrap     bool // break into lines at word boundaries
}

// Text draws text inside bounds and returns the size it occupied.
func (ctx *Context) Text(bounds Rect, text string, opts TextOptions) Vec2 {
	size := opts.Size
	if size <= 0 {
		size = ctx.theme.Type.Body
	}
	color := pick(opts.Color, ctx.theme.Colors.OnSurface)

	if opts.Wrap {
		lineH := ctx.LineHeight(size)
		var used Vec2
		for i, line := range ctx.WrapText(text, bounds.W, size, opts.Weight) {
			pos := Vec2{X: bounds.X, Y: bounds.Y + float32(i)*lineH}
			ctx.DrawText(line, pos, size, opts.Weight, color)
			used.X = maxf(used.X, ctx.MeasureText(line, size, opts.Weight).X)
			used.Y += lineH
		}
		return used
	}

	if opts.Truncate {
		text = ctx.TruncateText(text, bounds.W, size, opts.Weight)
	}
	m := ctx.MeasureText(text, size, opts.Weight)
	if opts.Center {
		ctx.DrawTextCentered(text, bounds, size, opts.Weight, color)
	} else {
		ctx.DrawText(text, Vec2{X: bounds.X, Y: bounds.Y}, size, opts.Weight, color)
	}
	return m
}

// Label allocates a row from the current layout sized to text and
// draws it. Text is truncated to the row unless opts.Wrap is set, in
// which case the row is as tall as the wrapped lines.
func (ctx *Context) Label(text string, opts TextOptions) Rect {
	size := opts.Size
	if size <= 0 {
		size = ctx.theme.Type.Body
	}
	h := ctx.LineHeight(size)
	if opts.Wrap {
		lines := len(ctx.WrapText(text, ctx.Current().W, size, opts.Weight))
		h *= float32(max(1, lines))
	} else {
		opts.Truncate = true
	}
	r := ctx.Alloc(Fixed(-1, h))
	ctx.Text(r, text, opts)
	return r
}
