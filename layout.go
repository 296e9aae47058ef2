package m3ui

// Direction is a container's main axis.
type Direction uint8

const (
	DirectionColumn Direction = iota // children stack top to bottom
	DirectionRow                     // children stack left to right
)

// Justification places children along the main axis when no child
// flexes.
type Justification uint8

const (
	JustifyStart Justification = iota
	JustifyCenter
	JustifyEnd
	JustifyBetween
)

// Alignment places fixed-size children on the cross axis.
// Children with a stretch (<= 0) cross size always fill it.
type Alignment uint8

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// LayoutStyle describes a container.
//
// Width and Height follow the size convention used everywhere in the
// layout engine: > 0 is fixed, < 0 stretches to the space the parent has
// left, 0 fits the content.
type LayoutStyle struct {
	Direction Direction
	Width     float32
	Height    float32
	FlexGrow  float32 // share of the parent's leftover main-axis space
	Padding   float32
	Gap       float32
	Justify   Justification
	Align     Alignment

	// ID keys the container's remembered measurements and scroll offset.
	// Without one, containers are keyed by their order in the frame.
	ID string
}

// Row returns a horizontal container style that fills the parent's width.
func Row() LayoutStyle {
	return LayoutStyle{Direction: DirectionRow, Width: -1}
}

// Column returns a vertical container style that fills the parent's width.
func Column() LayoutStyle {
	return LayoutStyle{Direction: DirectionColumn, Width: -1}
}

// SizeSpec is a leaf allocation request. Sizes follow LayoutStyle's
// convention, except that a zero cross size also stretches.
type SizeSpec struct {
	Width    float32
	Height   float32
	FlexGrow float32
}

// Fixed requests an exact size. Pass -1 for a dimension to stretch it.
func Fixed(w, h float32) SizeSpec {
	return SizeSpec{Width: w, Height: h}
}

// Flex requests a weighted share of the leftover main-axis space,
// stretched on the cross axis.
func Flex(weight float32) SizeSpec {
	return SizeSpec{Width: -1, Height: -1, FlexGrow: weight}
}

// FlexFixed is Flex with a fixed cross-axis size.
func FlexFixed(weight, cross float32) SizeSpec {
	return SizeSpec{Width: cross, Height: cross, FlexGrow: weight}
}

// layoutKey identifies a container across frames.
type layoutKey struct {
	id      FieldID
	ordinal int
}

func (k layoutKey) fieldID() FieldID {
	if k.id != 0 {
		return k.id
	}
	return FieldID(0x9E3779B97F4A7C15 * uint64(k.ordinal+1))
}

// layoutDemand is what a container measured about its children. The next
// frame reads it to size flex children before their siblings are known.
type layoutDemand struct {
	fixed  float32 // main-axis size of non-flex children
	weight float32 // total flex weight
	count  int     // children, for gaps
	size   Vec2    // final outer size
}

type layoutNode struct {
	key   layoutKey
	style LayoutStyle
	outer Rect
	inner Rect

	cursor   float32 // main-axis offset of the next child from inner
	extraGap float32 // JustifyBetween spacing
	count    int

	contentMain  float32
	contentCross float32
	demand       layoutDemand

	prev    layoutDemand
	hasPrev bool

	fitW, fitH bool
	crossFixed bool // recorded into the parent's contentCross

	scroll *scrollState
}

func (n *layoutNode) row() bool { return n.style.Direction == DirectionRow }

func (n *layoutNode) mainExtent() float32 {
	if n.row() {
		return n.inner.W
	}
	return n.inner.H
}

func (n *layoutNode) crossExtent() float32 {
	if n.row() {
		return n.inner.H
	}
	return n.inner.W
}

// axes splits a width/height pair into this node's main and cross.
func (n *layoutNode) axes(w, h float32) (main, cross float32) {
	if n.row() {
		return w, h
	}
	return h, w
}

func (n *layoutNode) startChild() {
	if n.count > 0 {
		n.cursor += n.style.Gap + n.extraGap
	}
}

// mainSize resolves a child's main-axis size. Flex children split the
// free space measured last frame; without a measurement they take
// whatever is left after the siblings allocated so far.
func (n *layoutNode) mainSize(spec, grow float32) float32 {
	remaining := maxf(0, n.mainExtent()-n.cursor)
	switch {
	case grow > 0:
		if n.hasPrev && n.prev.weight > 0 {
			gaps := n.style.Gap * float32(max(n.prev.count-1, 0))
			free := maxf(0, n.mainExtent()-n.prev.fixed-gaps)
			return free * grow / n.prev.weight
		}
		return remaining
	case spec < 0:
		return remaining
	default:
		return spec
	}
}

// crossPlace returns the size and offset of a fixed cross size.
func (n *layoutNode) crossPlace(size float32) (float32, float32) {
	switch n.style.Align {
	case AlignCenter:
		return size, (n.crossExtent() - size) / 2
	case AlignEnd:
		return size, n.crossExtent() - size
	default:
		return size, 0
	}
}

func (n *layoutNode) rectAt(mainPos, crossPos, mainSize, crossSize float32) Rect {
	x0, y0 := n.inner.X, n.inner.Y
	if n.scroll != nil {
		x0 -= n.scroll.offset.X
		y0 -= n.scroll.offset.Y
	}
	if n.row() {
		return Rect{X: x0 + mainPos, Y: y0 + crossPos, W: mainSize, H: crossSize}
	}
	return Rect{X: x0 + crossPos, Y: y0 + mainPos, W: crossSize, H: mainSize}
}

// advance moves the cursor past a child. crossRecord is the child's
// intrinsic cross size, 0 when it stretched.
func (n *layoutNode) advance(mainSize, crossRecord, grow float32) {
	n.cursor += mainSize
	n.contentMain = n.cursor
	n.contentCross = maxf(n.contentCross, crossRecord)
	if grow > 0 {
		n.demand.weight += grow
	} else {
		n.demand.fixed += mainSize
	}
	n.demand.count++
	n.count++
}

// applyJustify offsets the first child when last frame had no flex
// children and left space over.
func (n *layoutNode) applyJustify() {
	if !n.hasPrev || n.prev.weight > 0 || n.prev.count == 0 || n.style.Justify == JustifyStart {
		return
	}
	gaps := n.style.Gap * float32(n.prev.count-1)
	leftover := n.mainExtent() - n.prev.fixed - gaps
	if leftover <= 0 {
		return
	}
	switch n.style.Justify {
	case JustifyCenter:
		n.cursor = leftover / 2
	case JustifyEnd:
		n.cursor = leftover
	case JustifyBetween:
		if n.prev.count > 1 {
			n.extraGap = leftover / float32(n.prev.count-1)
		}
	}
}

type layoutEngine struct {
	active     bool
	stack      []*layoutNode
	ordinal    int
	demand     map[layoutKey]layoutDemand
	prevDemand map[layoutKey]layoutDemand

	wheelTarget     layoutKey // innermost scroll area under the pointer this frame
	prevWheelTarget layoutKey
	hasWheelTarget  bool
	prevHasTarget   bool
}

func newLayoutEngine() layoutEngine {
	return layoutEngine{
		stack:      make([]*layoutNode, 0, 16),
		demand:     make(map[layoutKey]layoutDemand),
		prevDemand: make(map[layoutKey]layoutDemand),
	}
}

func (e *layoutEngine) reset() {
	e.active = false
	e.stack = e.stack[:0]
	e.ordinal = 0
	e.hasWheelTarget = false
}

// swap makes this frame's measurements the reference for the next one.
func (e *layoutEngine) swap() {
	e.prevDemand, e.demand = e.demand, e.prevDemand
	clear(e.demand)
	e.prevWheelTarget, e.prevHasTarget = e.wheelTarget, e.hasWheelTarget
}

func (e *layoutEngine) top() *layoutNode {
	if n := len(e.stack); n > 0 {
		return e.stack[n-1]
	}
	return nil
}

func (ctx *Context) nextLayoutKey(id string) layoutKey {
	e := &ctx.layout
	e.ordinal++
	if id != "" {
		return layoutKey{id: ctx.FieldIDOf(id)}
	}
	return layoutKey{ordinal: e.ordinal}
}

// Begin opens the frame's layout tree with root as a column.
// Calling Begin twice without End is a protocol violation.
func (ctx *Context) Begin(root Rect) {
	e := &ctx.layout
	if e.active {
		protocolViolation("Begin", "layout already begun")
	}
	e.active = true
	key := ctx.nextLayoutKey("")
	prev, ok := e.prevDemand[key]
	e.stack = append(e.stack, &layoutNode{
		key:     key,
		style:   LayoutStyle{Direction: DirectionColumn},
		outer:   root,
		inner:   root,
		prev:    prev,
		hasPrev: ok,
	})
}

// End closes the layout tree. Every BeginContainer must have been
// closed; an End with no Begin or with open containers is a protocol
// violation.
func (ctx *Context) End() {
	e := &ctx.layout
	if !e.active {
		protocolViolation("End", "no matching Begin")
	}
	if len(e.stack) != 1 {
		protocolViolation("End", "%d containers still open", len(e.stack)-1)
	}
	root := e.stack[0]
	root.demand.size = Vec2{X: root.outer.W, Y: root.outer.H}
	e.demand[root.key] = root.demand
	e.stack = e.stack[:0]
	e.active = false
}

// BeginContainer reserves the next slot in the current container for a
// nested box and returns its rectangle. Fit-sized dimensions are
// provisional (last frame's size, or the space left) until EndContainer.
func (ctx *Context) BeginContainer(style LayoutStyle) Rect {
	e := &ctx.layout
	parent := e.top()
	if parent == nil {
		protocolViolation("BeginContainer", "no open layout; call Begin first")
	}
	parent.startChild()

	key := ctx.nextLayoutKey(style.ID)
	prev, hasPrev := e.prevDemand[key]

	mainSpec, crossSpec := parent.axes(style.Width, style.Height)
	prevMain, prevCross := parent.axes(prev.size.X, prev.size.Y)

	fitMain := style.FlexGrow <= 0 && mainSpec == 0
	mainSz := parent.mainSize(mainSpec, style.FlexGrow)
	if fitMain {
		mainSz = maxf(0, parent.mainExtent()-parent.cursor)
		if hasPrev && prevMain > 0 {
			mainSz = prevMain
		}
	}

	var crossSz, crossPos float32
	crossFixed := true
	switch {
	case crossSpec < 0:
		crossSz = parent.crossExtent()
		crossFixed = false
	case crossSpec > 0:
		crossSz, crossPos = parent.crossPlace(crossSpec)
	default:
		crossSz = parent.crossExtent()
		if hasPrev && prevCross > 0 {
			crossSz, crossPos = parent.crossPlace(prevCross)
		}
	}

	r := parent.rectAt(parent.cursor, crossPos, mainSz, crossSz)
	n := &layoutNode{
		key:        key,
		style:      style,
		outer:      r,
		inner:      r.Inset(style.Padding),
		prev:       prev,
		hasPrev:    hasPrev,
		crossFixed: crossFixed,
	}
	if parent.row() {
		n.fitW, n.fitH = fitMain, crossSpec == 0
	} else {
		n.fitW, n.fitH = crossSpec == 0, fitMain
	}
	n.applyJustify()
	e.stack = append(e.stack, n)
	return r
}

// EndContainer closes the innermost container, advances its parent and
// returns the container's final rectangle. Closing the root (or nothing)
// is a protocol violation.
func (ctx *Context) EndContainer() Rect {
	e := &ctx.layout
	if len(e.stack) <= 1 {
		protocolViolation("EndContainer", "no open container")
	}
	n := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	parent := e.top()

	pad := n.style.Padding
	contentW, contentH := n.contentMain, n.contentCross
	if !n.row() {
		contentW, contentH = n.contentCross, n.contentMain
	}

	final := n.outer
	if n.scroll != nil {
		ctx.endScroll(n, Vec2{X: contentW + 2*pad, Y: contentH + 2*pad})
	} else {
		if n.fitW && contentW > 0 {
			final.W = contentW + 2*pad
		}
		if n.fitH && contentH > 0 {
			final.H = contentH + 2*pad
		}
	}

	n.demand.size = Vec2{X: final.W, Y: final.H}
	e.demand[n.key] = n.demand

	mainSz, crossSz := parent.axes(final.W, final.H)
	if !n.crossFixed {
		crossSz = 0
	}
	parent.advance(mainSz, crossSz, n.style.FlexGrow)
	return final
}

// Alloc takes the next slot from the current container.
//
// Flex children are only exact when their siblings' sizes are known in
// advance: the engine allocates in call order and has no lookahead, so a
// flex share is computed from the previous frame's measurements of the
// same container. The first time a container is seen, a flex child gets
// whatever space remains after the siblings already allocated.
//
// In a 300 wide row, Fixed(100, 40), Flex(1), Flex(1) yield widths
// 100, 200, 0 on the first frame and 100, 100, 100 from the second on.
func (ctx *Context) Alloc(spec SizeSpec) Rect {
	n := ctx.layout.top()
	if n == nil {
		protocolViolation("Alloc", "no open container")
	}
	n.startChild()
	mainSpec, crossSpec := n.axes(spec.Width, spec.Height)
	mainSz := n.mainSize(mainSpec, spec.FlexGrow)

	crossSz, crossPos, record := n.crossExtent(), float32(0), float32(0)
	if crossSpec > 0 {
		crossSz, crossPos = n.crossPlace(crossSpec)
		record = crossSz
	}
	r := n.rectAt(n.cursor, crossPos, mainSz, crossSz)
	n.advance(mainSz, record, spec.FlexGrow)
	return r
}

// Current returns the content box of the innermost container.
func (ctx *Context) Current() Rect {
	if n := ctx.layout.top(); n != nil {
		return n.inner
	}
	return Rect{W: ctx.DisplaySize.X, H: ctx.DisplaySize.Y}
}

// Depth returns the number of open layout nodes, root included.
func (ctx *Context) Depth() int {
	return len(ctx.layout.stack)
}

// InLayout reports whether a layout tree is open.
func (ctx *Context) InLayout() bool {
	return ctx.layout.active
}
