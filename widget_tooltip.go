package m3ui

// TooltipOptions configures Tooltip. Setting Title or ActionText makes a
// rich tooltip; otherwise it is a plain one-line label.
type TooltipOptions struct {
	Title      string
	ActionText string
	OnAction   Action
	ID         string
}

const (
	tooltipGap       = 4
	tooltipPlainH    = 24
	tooltipRichWidth = 312
	tooltipPad       = 8
	tooltipRichPad   = 16
)

// Tooltip shows text near anchor while the pointer is over anchor and
// nothing at a higher layer covers it. Call it after drawing the anchor
// widget.
//
// Tooltips are drawn to the overlay list at LayerTooltip. A rich tooltip
// registers its region and stays open while the pointer is over the
// tooltip itself, so its action can be clicked; the action runs
// synchronously in the frame its click is released.
func (ctx *Context) Tooltip(anchor Rect, text string, opts TooltipOptions) {
	id := ctx.fieldIDFor(opts.ID, text, FieldKindTooltip)
	st := ctx.tooltips.Get(id, tooltipState{})
	rich := opts.Title != "" || opts.ActionText != ""

	show := ctx.pointerOverLayer(anchor)
	if !show && rich && st.visible && ctx.Input != nil {
		show = st.bounds.Inset(-tooltipGap * 2).Contains(ctx.Input.MousePos())
	}
	st.visible = show
	if !show {
		return
	}

	ctx.PushLayer(LayerTooltip)
	ctx.pushTarget(ctx.OverlayDrawList)
	defer func() {
		ctx.popTarget()
		ctx.PopLayer()
	}()

	if !rich {
		st.bounds = ctx.plainTooltip(anchor, text)
		return
	}
	st.bounds = ctx.richTooltip(id, anchor, text, opts, st)
}

// placeTooltip puts a box of size below anchor, or above when it would
// leave the display, centered on the anchor and kept on screen.
func (ctx *Context) placeTooltip(anchor Rect, size Vec2) Rect {
	r := Rect{
		X: anchor.X + (anchor.W-size.X)/2,
		Y: anchor.Y + anchor.H + tooltipGap,
		W: size.X,
		H: size.Y,
	}
	if ctx.DisplaySize.Y > 0 && r.Y+r.H > ctx.DisplaySize.Y {
		r.Y = anchor.Y - tooltipGap - size.Y
	}
	if ctx.DisplaySize.X > 0 {
		r.X = clampf(r.X, 0, maxf(0, ctx.DisplaySize.X-r.W))
	}
	r.Y = maxf(0, r.Y)
	return r
}

func (ctx *Context) plainTooltip(anchor Rect, text string) Rect {
	cs := &ctx.theme.Colors
	size := ctx.theme.Type.Small
	m := ctx.MeasureText(text, size, FontWeightRegular)
	r := ctx.placeTooltip(anchor, Vec2{X: m.X + 2*tooltipPad, Y: tooltipPlainH})
	ctx.target().AddRoundedRect(r, ctx.theme.Shape.Small, cs.InverseSurface)
	ctx.DrawTextCentered(text, r, size, FontWeightRegular, cs.InverseOnSurface)
	return r
}

func (ctx *Context) richTooltip(id FieldID, anchor Rect, text string, opts TooltipOptions, st *tooltipState) Rect {
	cs := &ctx.theme.Colors
	body, label := ctx.theme.Type.Body, ctx.theme.Type.Label
	textW := float32(tooltipRichWidth - 2*tooltipRichPad)
	lines := ctx.WrapText(text, textW, body, FontWeightRegular)

	h := float32(tooltipRichPad)
	if opts.Title != "" {
		h += ctx.LineHeight(label) + SpaceSM
	}
	h += float32(len(lines)) * ctx.LineHeight(body)
	if opts.ActionText != "" {
		h += SpaceMD + modalButtonHeight
	} else {
		h += tooltipRichPad
	}

	r := ctx.placeTooltip(anchor, Vec2{X: tooltipRichWidth, Y: h})
	ctx.RegisterRegion(id, r)
	dl := ctx.target()
	dl.AddRoundedRect(Rect{X: r.X, Y: r.Y + 1, W: r.W, H: r.H}, ctx.theme.Shape.Medium, cs.Shadow.WithAlpha(0.15))
	dl.AddRoundedRect(r, ctx.theme.Shape.Medium, cs.SurfaceContainer)

	x, y := r.X+tooltipRichPad, r.Y+tooltipRichPad
	if opts.Title != "" {
		ctx.DrawText(ctx.TruncateText(opts.Title, textW, label, FontWeightMedium), Vec2{X: x, Y: y}, label, FontWeightMedium, cs.OnSurfaceVariant)
		y += ctx.LineHeight(label) + SpaceSM
	}
	for _, line := range lines {
		ctx.DrawText(line, Vec2{X: x, Y: y}, body, FontWeightRegular, cs.OnSurfaceVariant)
		y += ctx.LineHeight(body)
	}

	if opts.ActionText != "" {
		w := ctx.MeasureText(opts.ActionText, label, FontWeightMedium).X + 2*SpaceLG
		btn := Rect{X: x - SpaceLG, Y: y + SpaceMD, W: w, H: modalButtonHeight}
		ctx.PushIDInt(int(id))
		clicked := ctx.Button(btn, opts.ActionText, ButtonOptions{ID: "action"})
		ctx.PopID()
		if clicked {
			invokeAction(opts.ActionText, opts.OnAction)
			st.visible = false
		}
	}
	return r
}
