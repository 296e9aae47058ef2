package m3ui

// Context holds all UI state for one GUI. It is NOT context.Context.
//
// A Context is created once by New, reset by BeginFrame and passed to
// every layout and widget call until EndFrame. It is not safe for
// concurrent use; one goroutine drives the whole frame.
type Context struct {
	// Draw lists, rendered in this order at EndFrame.
	DrawList           *DrawList // regular content
	ForegroundDrawList *DrawList // modals and popovers
	OverlayDrawList    *DrawList // tooltips
	targets            []*DrawList

	// Input is read-only during the frame.
	Input *InputState

	DisplaySize Vec2
	DeltaTime   float32
	FrameCount  uint64

	// FontTextureID is the renderer's built-in bitmap font, used when no
	// FontProvider is configured.
	FontTextureID uint32
	fontProvider  FontProvider
	clipboard     ClipboardProvider
	theme         Theme

	idStack      []ID
	idCounter    uint32
	kindCounters map[FieldKind]int

	// Input layers and occlusion.
	layerStack  []int
	regions     []OccupiedRegion
	prevRegions []OccupiedRegion
	prevOrder   map[ID]int
	hoveredID   ID
	activeID    ID // widget the current primary press began on

	// Keyboard focus.
	focusedID      FieldID
	focusClaimed   bool
	focusOrder     []FieldID
	prevFocusOrder []FieldID

	layout layoutEngine

	// Transient per-field state.
	stores    []evictor
	textEdits *FieldStore[textEditState]
	sliders   *FieldStore[sliderState]
	scrolls   *FieldStore[scrollState]
	modals    *FieldStore[modalState]
	tooltips  *FieldStore[tooltipState]
	tabBars   *FieldStore[tabBarState]

	modalStack []*modalFrame

	inFrame bool

	// Outputs for the application: whether the UI wants this frame's
	// pointer or keyboard input.
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// NewContext creates a Context with the light theme.
// Most programs use New, which also wires a Renderer.
func NewContext() *Context {
	ctx := &Context{
		idStack:      make([]ID, 0, 32),
		kindCounters: make(map[FieldKind]int),
		layerStack:   make([]int, 0, 8),
		regions:      make([]OccupiedRegion, 0, 128),
		prevOrder:    make(map[ID]int, 128),
		theme:        LightTheme(),
		layout:       newLayoutEngine(),
	}
	ctx.textEdits = NewFieldStore[textEditState](ctx)
	ctx.sliders = NewFieldStore[sliderState](ctx)
	ctx.scrolls = NewFieldStore[scrollState](ctx)
	ctx.modals = NewFieldStore[modalState](ctx)
	ctx.tooltips = NewFieldStore[tooltipState](ctx)
	ctx.tabBars = NewFieldStore[tabBarState](ctx)
	return ctx
}

// target returns the draw list widgets currently paint into.
func (ctx *Context) target() *DrawList {
	if n := len(ctx.targets); n > 0 {
		return ctx.targets[n-1]
	}
	return ctx.DrawList
}

// pushTarget redirects drawing to dl until popTarget.
func (ctx *Context) pushTarget(dl *DrawList) {
	ctx.targets = append(ctx.targets, dl)
}

func (ctx *Context) popTarget() {
	if n := len(ctx.targets); n > 0 {
		ctx.targets = ctx.targets[:n-1]
	}
}

// clipRect returns the active clip, unbounded outside a frame.
func (ctx *Context) clipRect() Rect {
	if dl := ctx.target(); dl != nil {
		return dl.CurrentClip()
	}
	return Rect{X: noClip[0], Y: noClip[1], W: noClip[2] - noClip[0], H: noClip[3] - noClip[1]}
}

// Target returns the draw list for custom drawing at the current depth.
func (ctx *Context) Target() *DrawList {
	return ctx.target()
}

// PushClipRect clips subsequent drawing and hit testing to r.
func (ctx *Context) PushClipRect(r Rect) {
	ctx.target().PushClipRect(r)
}

// PopClipRect removes the innermost clip rectangle.
func (ctx *Context) PopClipRect() {
	ctx.target().PopClipRect()
}

// FontProvider returns the configured FontProvider, or nil.
func (ctx *Context) FontProvider() FontProvider {
	return ctx.fontProvider
}

// beginFrame resets per-frame scratch state.
func (ctx *Context) beginFrame(input *InputState, displaySize Vec2, dt float32) {
	ctx.FrameCount++
	ctx.Input = input
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = dt
	ctx.inFrame = true

	ctx.DrawList = AcquireDrawList()
	ctx.ForegroundDrawList = AcquireDrawList()
	ctx.OverlayDrawList = AcquireDrawList()
	ctx.targets = ctx.targets[:0]
	ctx.modalStack = ctx.modalStack[:0]

	ctx.idStack = ctx.idStack[:0]
	ctx.idCounter = 0
	clear(ctx.kindCounters)

	if len(ctx.layerStack) > 0 {
		uiLogger.Warn("layer stack not empty at frame start", "depth", len(ctx.layerStack))
	}
	ctx.layerStack = ctx.layerStack[:0]
	ctx.regions = ctx.regions[:0]

	if input != nil {
		input.UpdateKeyRepeat(dt)
		if input.MousePressed(MouseButtonLeft) ||
			(!input.MouseDown(MouseButtonLeft) && !input.MouseReleased(MouseButtonLeft)) {
			ctx.activeID = 0
		}
	} else {
		ctx.activeID = 0
	}

	ctx.focusClaimed = false
	ctx.prevFocusOrder, ctx.focusOrder = ctx.focusOrder, ctx.prevFocusOrder[:0]
	if input != nil && ctx.focusedID != 0 && input.KeyPressed(KeyTab) {
		ctx.advanceFocus(input.ModShift)
	}

	ctx.layout.reset()
	ctx.WantCaptureMouse = false
	ctx.WantCaptureKeyboard = false

	if uiVerbose() {
		uiLogger.Debug("begin frame", "frame", ctx.FrameCount, "display", displaySize)
	}
}

// endFrame checks call balance and resolves hover and focus for the
// next frame. Draw lists are left for the caller to render.
func (ctx *Context) endFrame() {
	ctx.inFrame = false
	if ctx.layout.active {
		protocolViolation("EndFrame", "layout Begin without End (depth %d)", len(ctx.layout.stack))
	}
	if len(ctx.modalStack) > 0 {
		protocolViolation("EndFrame", "BeginModal without EndModal")
	}
	if len(ctx.layerStack) > 0 {
		uiLogger.Warn("unbalanced PushLayer at frame end", "depth", len(ctx.layerStack), "top", ctx.ActiveLayer())
		ctx.layerStack = ctx.layerStack[:0]
	}
	ctx.targets = ctx.targets[:0]

	ctx.hoveredID = 0
	if ctx.Input != nil {
		if r, ok := TopmostAt(ctx.regions, ctx.Input.MousePos()); ok {
			ctx.hoveredID = r.ID
			ctx.WantCaptureMouse = true
		}
		if ctx.Input.MousePressed(MouseButtonLeft) && !ctx.focusClaimed && ctx.focusedID != 0 {
			if uiVerbose() {
				uiLogger.Debug("focus cleared by press", "id", ctx.focusedID)
			}
			ctx.focusedID = 0
		}
	}
	ctx.WantCaptureKeyboard = ctx.focusedID != 0

	ctx.swapRegions()
	ctx.layout.swap()

	if uiVerbose() {
		uiLogger.Debug("end frame", "frame", ctx.FrameCount, "regions", len(ctx.prevRegions), "hovered", ctx.hoveredID)
	}
}

// releaseLists returns the frame's draw lists to the pool.
func (ctx *Context) releaseLists() {
	for _, dl := range []**DrawList{&ctx.DrawList, &ctx.ForegroundDrawList, &ctx.OverlayDrawList} {
		if *dl != nil {
			ReleaseDrawList(*dl)
			*dl = nil
		}
	}
}
