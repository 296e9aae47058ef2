package m3ui

// BeginScrollContainer is BeginContainer for a clipped viewport whose
// children are offset by a scroll position. horizontal and vertical
// select the axes the wheel scrolls. The offset is clamped per axis to
// [0, max(0, content-viewport)]. Close it with EndContainer.
//
// Wheel input goes to the innermost scroll area that was under the
// pointer on the previous frame, so nested areas do not both scroll.
func (ctx *Context) BeginScrollContainer(style LayoutStyle, horizontal, vertical bool) Rect {
	r := ctx.BeginContainer(style)
	e := &ctx.layout
	n := e.top()
	n.fitW, n.fitH = false, false

	st := ctx.scrolls.Get(n.key.fieldID(), scrollState{})
	st.viewport = Vec2{X: r.W, Y: r.H}

	if ctx.pointerOverLayer(r) {
		e.wheelTarget, e.hasWheelTarget = n.key, true
		if e.prevHasTarget && e.prevWheelTarget == n.key && ctx.Input != nil {
			step := ctx.theme.ScrollStep
			dx, dy := ctx.Input.MouseWheelX, ctx.Input.MouseWheelY
			if horizontal && !vertical && dx == 0 {
				dx = dy
			}
			if vertical {
				st.offset.Y -= dy * step
			}
			if horizontal {
				st.offset.X -= dx * step
			}
		}
	}
	if !horizontal {
		st.offset.X = 0
	}
	if !vertical {
		st.offset.Y = 0
	}
	st.clamp()

	n.scroll = st
	ctx.PushClipRect(r)
	return r
}

// endScroll records the measured content extent, re-clamps the offset and
// draws scrollbars.
func (ctx *Context) endScroll(n *layoutNode, content Vec2) {
	st := n.scroll
	ctx.PopClipRect()
	st.content = content
	st.viewport = Vec2{X: n.outer.W, Y: n.outer.H}
	st.clamp()

	size := ctx.theme.ScrollbarSize
	thumb := ctx.theme.Colors.OnSurfaceVariant.WithAlpha(0.5)
	dl := ctx.target()
	v := n.outer
	if content.Y > v.H && v.H > 0 {
		h := maxf(size*2, v.H*v.H/content.Y)
		y := v.Y + (v.H-h)*st.offset.Y/(content.Y-v.H)
		dl.AddRoundedRect(Rect{X: v.X + v.W - size - 2, Y: y, W: size, H: h}, size/2, thumb)
	}
	if content.X > v.W && v.W > 0 {
		w := maxf(size*2, v.W*v.W/content.X)
		x := v.X + (v.W-w)*st.offset.X/(content.X-v.W)
		dl.AddRoundedRect(Rect{X: x, Y: v.Y + v.H - size - 2, W: w, H: size}, size/2, thumb)
	}
}

// ScrollOffset returns the offset of the scroll container with style ID id.
func (ctx *Context) ScrollOffset(id string) Vec2 {
	if st := ctx.scrolls.Lookup(ctx.FieldIDOf(id)); st != nil {
		return st.offset
	}
	return Vec2{}
}

// SetScrollOffset requests an offset for the scroll container with style
// ID id. The request is clamped against the last measured extent.
func (ctx *Context) SetScrollOffset(id string, offset Vec2) {
	st := ctx.scrolls.Get(ctx.FieldIDOf(id), scrollState{})
	st.offset = offset
	st.clamp()
}

// ScrollExtent returns the last measured content and viewport sizes of the
// scroll container with style ID id.
func (ctx *Context) ScrollExtent(id string) (content, viewport Vec2) {
	if st := ctx.scrolls.Lookup(ctx.FieldIDOf(id)); st != nil {
		return st.content, st.viewport
	}
	return Vec2{}, Vec2{}
}
