package m3ui

// TextFieldOptions configures TextField. Zero-alpha colors use the
// variant's theme colors.
type TextFieldOptions struct {
	Variant     TextFieldVariant
	Placeholder string // shown while focused and empty

	Password bool // draw one bullet per character; copy and cut are disabled
	ReadOnly bool // focusable and selectable, not editable
	Disabled bool

	// InputMask constrains entry: '9' takes a digit, 'A' a letter, '*' a
	// letter or digit, and any other character is a literal inserted
	// automatically. Masked fields edit at the end only.
	InputMask string

	// MaxUndoHistory bounds the undo ring; DefaultMaxUndoHistory when 0.
	MaxUndoHistory int

	LeadingIcon     string
	TrailingIcon    string
	OnLeadingIcon   Action
	OnTrailingIcon  Action
	Background      Color
	Outline         Color
	TextColor       Color
	IconColor       Color
	HideOutline     bool
	HideBackground  bool

	ID string
}

const (
	textFieldPadX     = 16
	textFieldIconSize = 24
	textFieldIconPad  = 12
)

// TextField draws a single-line text field and returns the edited value
// and whether it changed this frame. label is the floating label and the
// field's identity unless ID is set.
func (ctx *Context) TextField(bounds Rect, label, value string, opts TextFieldOptions) (string, bool) {
	id := ctx.fieldIDFor(opts.ID, label, FieldKindTextField)
	it := ctx.InteractField(id, bounds, opts.Disabled)

	st := ctx.textEdits.Get(id, newTextEditState(opts.MaxUndoHistory, len(value)))

	var mask []rune
	if opts.InputMask != "" {
		mask = []rune(opts.InputMask)
		value = conformMask(mask, value)
	}
	st.cursor = snapBoundary(value, st.cursor)
	if st.selAnchor > len(value) {
		st.clearSelection()
	}

	// Geometry.
	inner := bounds
	inner.X += textFieldPadX
	inner.W -= 2 * textFieldPadX
	var leading, trailing Rect
	if opts.LeadingIcon != "" {
		leading = Rect{X: bounds.X + textFieldIconPad, Y: bounds.Y + (bounds.H-textFieldIconSize)/2, W: textFieldIconSize, H: textFieldIconSize}
		inner.X = leading.X + leading.W + textFieldIconPad
		inner.W = bounds.X + bounds.W - textFieldPadX - inner.X
	}
	if opts.TrailingIcon != "" {
		trailing = Rect{X: bounds.X + bounds.W - textFieldIconPad - textFieldIconSize, Y: bounds.Y + (bounds.H-textFieldIconSize)/2, W: textFieldIconSize, H: textFieldIconSize}
		inner.W = trailing.X - textFieldIconPad - inner.X
	}
	inner.W = maxf(0, inner.W)

	size := ctx.theme.Type.Body
	display := value
	if opts.Password {
		display = obscure(value)
	}
	// caretX maps a byte offset in value to an x offset in the drawn text.
	caretX := func(i int) float32 {
		if opts.Password {
			return ctx.MeasureText(obscure(value[:i]), size, FontWeightRegular).X
		}
		return ctx.MeasureText(value[:i], size, FontWeightRegular).X
	}

	// Pointer placement of the caret.
	in := ctx.Input
	if in != nil && !opts.Disabled && ctx.activeID == id && (it.PressedNow || it.Pressed) {
		local := in.MouseX - inner.X + st.scrollX
		best, bestDist := 0, float32(-1)
		for _, b := range clusterStarts(value) {
			d := absf(caretX(b) - local)
			if bestDist < 0 || d < bestDist {
				best, bestDist = b, d
			}
		}
		if mask != nil {
			best = len(value)
		}
		extend := it.Pressed && !it.PressedNow || in.ModShift
		ed := textEdit{value: value, st: st}
		ed.moveTo(best, extend)
	}

	changed := false
	if it.Focused && in != nil && !opts.Disabled {
		ed := textEdit{
			value:    value,
			st:       st,
			mask:     mask,
			readOnly: opts.ReadOnly,
			password: opts.Password,
			clip:     ctx.clipboard,
		}
		changed = ed.handleKeys(in)
		value = ed.value
		if in.KeyPressed(KeyEscape) {
			ctx.ClearFocus()
		}
		if opts.Password {
			display = obscure(value)
		} else {
			display = value
		}
	}

	// Keep the caret inside the visible text area.
	cx := caretX(st.cursor)
	if cx-st.scrollX > inner.W {
		st.scrollX = cx - inner.W
	}
	if cx < st.scrollX {
		st.scrollX = cx
	}
	st.scrollX = maxf(0, st.scrollX)

	ctx.drawTextField(bounds, inner, label, display, value, it, st, caretX, opts)

	// Icons take their own clicks; the field behind them is occluded
	// by draw order on the next frame.
	iconColor := pick(opts.IconColor, ctx.theme.Colors.OnSurfaceVariant)
	if it.State == StateDisabled {
		iconColor = ctx.theme.Colors.OnSurface.WithAlpha(disabledContent)
	}
	if opts.LeadingIcon != "" {
		ctx.textFieldIcon(leading, opts.LeadingIcon, opts.OnLeadingIcon, iconColor, opts.Disabled)
	}
	if opts.TrailingIcon != "" {
		ctx.textFieldIcon(trailing, opts.TrailingIcon, opts.OnTrailingIcon, iconColor, opts.Disabled)
	}
	return value, changed
}

func (ctx *Context) textFieldIcon(r Rect, icon string, action Action, color Color, disabled bool) {
	if action == nil {
		ctx.Icon(r, icon, color)
		return
	}
	hit := r.Inset(-SpaceMD)
	it := ctx.Interact(ctx.GetID(icon), hit, disabled)
	if o := stateOpacity(it.State); o > 0 {
		ctx.target().AddCircle(hit.Center(), hit.W/2, color.WithAlpha(o))
	}
	ctx.Icon(r, icon, color)
	if it.Clicked {
		invokeAction(icon, action)
	}
}

func (ctx *Context) drawTextField(bounds, inner Rect, label, display, value string, it Interaction, st *textEditState, caretX func(int) float32, opts TextFieldOptions) {
	cs := &ctx.theme.Colors
	c := ctx.theme.TextFieldColors(opts.Variant, it.State)
	if it.State != StateDisabled {
		c.Background = pick(opts.Background, c.Background)
		c.Outline = pick(opts.Outline, c.Outline)
		c.Text = pick(opts.TextColor, c.Text)
	}
	focused := it.Focused
	dl := ctx.target()
	radius := ctx.theme.Shape.Small

	if opts.Variant == TextFieldFilled {
		if !opts.HideBackground && !c.Background.IsUnset() {
			dl.AddRoundedRect(bounds, radius, c.Background)
			dl.AddRect(Rect{X: bounds.X, Y: bounds.Y + bounds.H - radius, W: bounds.W, H: radius}, c.Background)
		}
		if !opts.HideOutline {
			thick := float32(1)
			if focused {
				thick = 2
			}
			dl.AddRect(Rect{X: bounds.X, Y: bounds.Y + bounds.H - thick, W: bounds.W, H: thick}, c.Outline)
		}
	} else {
		if !opts.HideBackground && !opts.Background.IsUnset() {
			dl.AddRoundedRect(bounds, radius, opts.Background)
		}
		if !opts.HideOutline {
			thick := float32(1)
			if focused {
				thick = 2
			}
			dl.AddRoundedRectOutline(bounds, radius, c.Outline, thick)
		}
	}

	labelColor := cs.OnSurfaceVariant
	switch {
	case it.State == StateDisabled:
		labelColor = c.Text
	case focused:
		labelColor = cs.Primary
	}

	small := ctx.theme.Type.Small
	floating := label != "" && (focused || value != "")
	textY := bounds.Y + (bounds.H-ctx.MeasureText("M", ctx.theme.Type.Body, FontWeightRegular).Y)/2
	if label != "" && !floating {
		ctx.DrawText(ctx.TruncateText(label, inner.W, ctx.theme.Type.Body, FontWeightRegular),
			Vec2{X: inner.X, Y: textY}, ctx.theme.Type.Body, FontWeightRegular, labelColor)
	}
	if floating {
		m := ctx.MeasureText(label, small, FontWeightRegular)
		if opts.Variant == TextFieldFilled {
			ctx.DrawText(label, Vec2{X: inner.X, Y: bounds.Y + SpaceMD}, small, FontWeightRegular, labelColor)
			textY += SpaceMD
		} else {
			notch := Rect{X: inner.X - SpaceXS, Y: bounds.Y - m.Y/2, W: m.X + 2*SpaceXS, H: m.Y}
			dl.AddRect(notch, pick(opts.Background, cs.Surface))
			ctx.DrawText(label, Vec2{X: inner.X, Y: notch.Y}, small, FontWeightRegular, labelColor)
		}
	}

	ctx.PushClipRect(Rect{X: inner.X, Y: bounds.Y, W: inner.W, H: bounds.H})
	defer ctx.PopClipRect()
	origin := inner.X - st.scrollX
	size := ctx.theme.Type.Body
	lineH := ctx.MeasureText("M", size, FontWeightRegular).Y

	if focused && st.hasSelection() {
		lo, hi := st.selection()
		x0, x1 := caretX(lo), caretX(hi)
		dl.AddRect(Rect{X: origin + x0, Y: textY, W: x1 - x0, H: lineH}, cs.Primary.WithAlpha(0.3))
	}
	switch {
	case display != "":
		ctx.DrawText(display, Vec2{X: origin, Y: textY}, size, FontWeightRegular, c.Text)
	case focused && opts.Placeholder != "":
		ctx.DrawText(opts.Placeholder, Vec2{X: inner.X, Y: textY}, size, FontWeightRegular, cs.OnSurfaceVariant)
	}
	if focused && !opts.ReadOnly {
		x := origin + caretX(st.cursor)
		dl.AddRect(Rect{X: x, Y: textY, W: 2, H: lineH}, cs.Primary)
	}
}
