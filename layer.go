package m3ui

// Well-known layers. Any int works; higher wins.
const (
	LayerBase    = 0
	LayerPopover = 100
	LayerModal   = 1000
	LayerTooltip = 2000
)

// OccupiedRegion is a widget's bounds registered for occlusion testing.
// Order is the registration index within its frame.
type OccupiedRegion struct {
	Bounds Rect
	Layer  int
	ID     ID
	Order  int
}

// PushLayer makes n the active layer for widgets drawn until the
// matching PopLayer.
func (ctx *Context) PushLayer(n int) {
	ctx.layerStack = append(ctx.layerStack, n)
}

// PopLayer restores the previous layer. Popping the implicit base
// layer is a protocol violation.
func (ctx *Context) PopLayer() {
	n := len(ctx.layerStack)
	if n == 0 {
		protocolViolation("PopLayer", "no layer pushed")
	}
	ctx.layerStack = ctx.layerStack[:n-1]
}

// ActiveLayer returns the layer widgets are currently drawn at.
func (ctx *Context) ActiveLayer() int {
	if n := len(ctx.layerStack); n > 0 {
		return ctx.layerStack[n-1]
	}
	return LayerBase
}

// LayerDepth returns the number of pushed layers above the base.
func (ctx *Context) LayerDepth() int {
	return len(ctx.layerStack)
}

// RegisterRegion records bounds at the active layer. Interactive widgets
// register every frame whether or not the pointer is over them. Bounds
// are cut to the current clip; a fully clipped widget registers nothing.
func (ctx *Context) RegisterRegion(id ID, bounds Rect) {
	bounds = bounds.Intersect(ctx.clipRect())
	if bounds.Empty() {
		return
	}
	ctx.regions = append(ctx.regions, OccupiedRegion{
		Bounds: bounds,
		Layer:  ctx.ActiveLayer(),
		ID:     id,
		Order:  len(ctx.regions),
	})
}

// Regions returns the regions registered so far this frame.
func (ctx *Context) Regions() []OccupiedRegion {
	return ctx.regions
}

// TopmostAt returns the region that owns point p: the highest layer
// containing p, and among equal layers the last registered.
func TopmostAt(regions []OccupiedRegion, p Vec2) (OccupiedRegion, bool) {
	var best OccupiedRegion
	found := false
	for _, r := range regions {
		if !r.Bounds.Contains(p) {
			continue
		}
		if !found || r.Layer >= best.Layer {
			best = r
			found = true
		}
	}
	return best, found
}

// pointerEligible reports whether the widget id at the active layer owns
// the pointer inside bounds.
//
// A widget is blocked by any region registered earlier this frame at a
// higher layer, and by last frame's regions that covered it: higher
// layers, or the same layer drawn after the widget's own entry. The
// previous frame is consulted because a modal drawn later in this frame
// has not registered yet.
func (ctx *Context) pointerEligible(id ID, bounds Rect) bool {
	if ctx.Input == nil {
		return false
	}
	p := ctx.Input.MousePos()
	if !bounds.Contains(p) || !ctx.clipRect().Contains(p) {
		return false
	}
	layer := ctx.ActiveLayer()
	for _, r := range ctx.regions {
		if r.ID != id && r.Layer > layer && r.Bounds.Contains(p) {
			return false
		}
	}
	own, seen := ctx.prevOrder[id]
	for _, r := range ctx.prevRegions {
		if r.ID == id || !r.Bounds.Contains(p) {
			continue
		}
		if r.Layer > layer {
			return false
		}
		if seen && r.Layer == layer && r.Order > own {
			return false
		}
	}
	return true
}

// pointerOverLayer is like pointerEligible but ignores same-layer
// regions, for containers whose children cover them (scroll areas).
func (ctx *Context) pointerOverLayer(bounds Rect) bool {
	if ctx.Input == nil {
		return false
	}
	p := ctx.Input.MousePos()
	if !bounds.Contains(p) || !ctx.clipRect().Contains(p) {
		return false
	}
	layer := ctx.ActiveLayer()
	for _, r := range ctx.regions {
		if r.Layer > layer && r.Bounds.Contains(p) {
			return false
		}
	}
	for _, r := range ctx.prevRegions {
		if r.Layer > layer && r.Bounds.Contains(p) {
			return false
		}
	}
	return true
}

// HoveredID returns the topmost widget under the pointer as of the last
// completed frame, or 0.
func (ctx *Context) HoveredID() ID {
	return ctx.hoveredID
}

// swapRegions moves this frame's regions to the previous-frame buffer.
func (ctx *Context) swapRegions() {
	ctx.prevRegions, ctx.regions = ctx.regions, ctx.prevRegions[:0]
	clear(ctx.prevOrder)
	for _, r := range ctx.prevRegions {
		ctx.prevOrder[r.ID] = r.Order
	}
}
