package m3ui

// CheckboxOptions configures Checkbox.
type CheckboxOptions struct {
	Disabled bool
	Error    bool  // draw in the error color
	Color    Color // checked fill
	ID       string
}

const checkboxSize = 18

// Checkbox draws a box at the left of bounds followed by label and
// returns the new checked value. The whole of bounds is clickable.
func (ctx *Context) Checkbox(bounds Rect, label string, checked bool, opts CheckboxOptions) bool {
	key := label
	if opts.ID != "" {
		key = opts.ID
	}
	id := ctx.GetID(key)
	it := ctx.Interact(id, bounds, opts.Disabled)

	cs := &ctx.theme.Colors
	accent := pick(opts.Color, cs.Primary)
	outline := cs.OnSurfaceVariant
	if opts.Error {
		accent, outline = cs.Error, cs.Error
	}
	labelColor := cs.OnSurface
	if it.State == StateDisabled {
		accent = cs.OnSurface.WithAlpha(disabledContent)
		outline = accent
		labelColor = accent
	}

	dl := ctx.target()
	box := Rect{
		X: bounds.X + SpaceLG,
		Y: bounds.Y + (bounds.H-checkboxSize)/2,
		W: checkboxSize, H: checkboxSize,
	}
	if o := stateOpacity(it.State); o > 0 {
		layer := cs.OnSurface
		if checked {
			layer = accent
		}
		dl.AddCircle(box.Center(), 20, layer.WithAlpha(o))
	}
	if checked {
		dl.AddRoundedRect(box, 2, accent)
		check := cs.OnPrimary
		if opts.Error {
			check = cs.OnError
		}
		if it.State == StateDisabled {
			check = cs.Surface
		}
		ctx.Icon(box.Inset(1), "check", check)
	} else {
		dl.AddRoundedRectOutline(box, 2, outline, 2)
	}

	if label != "" {
		size := ctx.theme.Type.Body
		tx := box.X + box.W + SpaceLG
		text := ctx.TruncateText(label, bounds.X+bounds.W-tx, size, FontWeightRegular)
		m := ctx.MeasureText(text, size, FontWeightRegular)
		ctx.DrawText(text, Vec2{X: tx, Y: bounds.Y + (bounds.H-m.Y)/2}, size, FontWeightRegular, labelColor)
	}

	if it.Clicked {
		return !checked
	}
	return checked
}
