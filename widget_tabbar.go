package m3ui

import "strconv"

// TabItem is one tab. The caller owns the slice and applies the clicks
// and closes TabBar reports.
type TabItem struct {
	ID        string // stable identity; the index is used when empty
	Title     string
	Icon      string
	Closeable bool
}

// TabBarOptions configures TabBar. Zero-alpha colors use the theme.
type TabBarOptions struct {
	MinTabWidth  float32 // 72 when 0
	MaxTabWidth  float32 // 240 when 0
	TabHeight    float32 // bounds.H when 0
	CornerRadius float32 // 8 when 0

	HideDividers bool
	// AlwaysShowClose shows the close glyph on every closeable tab. By
	// default inactive tabs show it only while hovered; the active tab
	// always shows it.
	AlwaysShowClose bool

	ActiveTabColor    Color
	InactiveTabColor  Color
	ActiveTextColor   Color
	InactiveTextColor Color
	DividerColor      Color

	ID string
}

const (
	tabPadding     = 8
	tabIconSize    = 16
	tabCloseSize   = 16
	tabGap         = 8
	tabDividerH    = 20
	defaultTabMinW = 72
	defaultTabMaxW = 240
)

// TabWidth returns the width of each of count tabs sharing available:
// an even split clamped to [minWidth, maxWidth].
func TabWidth(available float32, count int, minWidth, maxWidth float32) float32 {
	if count <= 0 {
		return 0
	}
	if minWidth > maxWidth {
		minWidth, maxWidth = maxWidth, minWidth
	}
	return clampf(available/float32(count), minWidth, maxWidth)
}

// tabBarColors holds the resolved colors of one TabBar call.
type tabBarColors struct {
	activeTab, inactiveTab, activeText, inactiveText, divider Color
}

// TabBar draws a single-row strip of tabs and returns the index of the
// tab clicked this frame and the index whose close glyph was clicked,
// each -1 when none. An empty items slice draws nothing and returns -1,
// -1.
//
// Tabs share the width evenly within [MinTabWidth, MaxTabWidth] and never
// wrap; space past the last tab is left as strip background. Inactive
// tabs are drawn first and the selected tab last, so its rounded top
// covers neighboring dividers. A close click wins over a select click on
// the same tab.
func (ctx *Context) TabBar(bounds Rect, items []TabItem, selected int, opts TabBarOptions) (clicked, closed int) {
	clicked, closed = -1, -1
	if len(items) == 0 {
		return clicked, closed
	}

	minW, maxW := opts.MinTabWidth, opts.MaxTabWidth
	if minW <= 0 {
		minW = defaultTabMinW
	}
	if maxW <= 0 {
		maxW = defaultTabMaxW
	}
	tabW := TabWidth(bounds.W, len(items), minW, maxW)
	tabH := opts.TabHeight
	if tabH <= 0 {
		tabH = bounds.H
	}
	radius := opts.CornerRadius
	if radius <= 0 {
		radius = 8
	}
	radius = minf(radius, minf(tabW/2, tabH/2))

	cs := &ctx.theme.Colors
	c := tabBarColors{
		activeTab:    pick(opts.ActiveTabColor, cs.Surface),
		inactiveTab:  pick(opts.InactiveTabColor, cs.SurfaceContainerHighest),
		activeText:   pick(opts.ActiveTextColor, cs.OnSurface),
		inactiveText: pick(opts.InactiveTextColor, cs.OnSurfaceVariant),
		divider:      pick(opts.DividerColor, cs.OutlineVariant),
	}

	barID := ctx.fieldIDFor(opts.ID, "", FieldKindTabBar)
	st := ctx.tabBars.Get(barID, tabBarState{hovered: -1})
	st.hovered = -1
	ctx.idStack = append(ctx.idStack, barID)
	defer ctx.PopID()

	ctx.target().AddRect(bounds, c.inactiveTab)
	tabRect := func(i int) Rect {
		return Rect{X: bounds.X + float32(i)*tabW, Y: bounds.Y, W: tabW, H: tabH}
	}

	for i := range items {
		if i == selected {
			continue
		}
		tc, cl := ctx.tab(items[i], i, tabRect(i), false, selected, radius, c, opts, st)
		if cl {
			closed = i
		} else if tc {
			clicked = i
		}
	}
	if selected >= 0 && selected < len(items) {
		tc, cl := ctx.tab(items[selected], selected, tabRect(selected), true, selected, radius, c, opts, st)
		if cl {
			closed = selected
		} else if tc {
			clicked = selected
		}
	}

	if !opts.HideDividers {
		total := float32(len(items)) * tabW
		if total < bounds.W {
			x := bounds.X + total
			y := bounds.Y + (tabH-tabDividerH)/2
			ctx.target().AddLine(Vec2{X: x, Y: y}, Vec2{X: x, Y: y + tabDividerH}, c.divider, 1)
		}
	}

	if clicked >= 0 || closed >= 0 {
		if uiVerbose() {
			uiLogger.Debug("tab bar", "clicked", clicked, "closed", closed)
		}
	}
	return clicked, closed
}

// tab draws one tab and reports its select and close clicks.
func (ctx *Context) tab(item TabItem, i int, r Rect, active bool, selected int, radius float32, c tabBarColors, opts TabBarOptions, st *tabBarState) (clicked, closed bool) {
	key := item.ID
	if key == "" {
		key = strconv.Itoa(i)
	}
	it := ctx.Interact(ctx.FieldIDOf("tab:"+key), r, false)
	hot := ctx.pointerOverLayer(r)
	if hot {
		st.hovered = i
	}

	dl := ctx.target()
	text := c.inactiveText
	weight := FontWeightRegular
	if active {
		text = c.activeText
		weight = FontWeightMedium
		dl.AddRect(Rect{X: r.X, Y: r.Y + radius, W: r.W, H: r.H - radius}, c.activeTab)
		dl.AddCircleSector(Vec2{X: r.X + radius, Y: r.Y + radius}, radius, 180, 270, 16, c.activeTab)
		dl.AddCircleSector(Vec2{X: r.X + r.W - radius, Y: r.Y + radius}, radius, 270, 360, 16, c.activeTab)
		dl.AddRect(Rect{X: r.X + radius, Y: r.Y, W: r.W - 2*radius, H: radius}, c.activeTab)
	} else {
		if hot {
			dl.AddRect(r, ctx.theme.Colors.OnSurface.WithAlpha(hoverOpacity))
		}
		if !opts.HideDividers && i > 0 && i-1 != selected {
			y := r.Y + (r.H-tabDividerH)/2
			dl.AddLine(Vec2{X: r.X, Y: y}, Vec2{X: r.X, Y: y + tabDividerH}, c.divider, 1)
		}
	}

	x := r.X + tabPadding
	if item.Icon != "" {
		ctx.Icon(Rect{X: x, Y: r.Y + (r.H-tabIconSize)/2, W: tabIconSize, H: tabIconSize}, item.Icon, text)
		x += tabIconSize + tabGap
	}
	showClose := item.Closeable && (active || hot || opts.AlwaysShowClose)
	closeSpace := float32(0)
	if showClose {
		closeSpace = tabCloseSize + tabGap
	}
	size := ctx.theme.Type.Small
	avail := r.W - (x - r.X) - tabPadding - closeSpace
	title := ctx.TruncateText(item.Title, avail, size, weight)
	m := ctx.MeasureText(title, size, weight)
	ctx.DrawText(title, Vec2{X: x, Y: r.Y + (r.H-m.Y)/2}, size, weight, text)

	if showClose {
		cr := Rect{X: r.X + r.W - tabPadding - tabCloseSize, Y: r.Y + (r.H-tabCloseSize)/2, W: tabCloseSize, H: tabCloseSize}
		ci := ctx.Interact(ctx.FieldIDOf("close:"+key), cr, false)
		col := text
		if ci.Hovered {
			col = ctx.theme.Colors.Error
		}
		ctx.Icon(cr, "close", col)
		closed = ci.Clicked
	}
	return it.Clicked && !closed, closed
}

// TabContentBegin fills bounds with bg (the surface color when unset)
// and clips drawing to it until TabContentEnd.
func (ctx *Context) TabContentBegin(bounds Rect, bg Color) {
	ctx.target().AddRect(bounds, pick(bg, ctx.theme.Colors.Surface))
	ctx.PushClipRect(bounds)
}

// TabContentEnd removes the clip set by TabContentBegin.
func (ctx *Context) TabContentEnd() {
	ctx.PopClipRect()
}

// HoveredTab returns the tab index the pointer was over during the last
// TabBar call with the given options ID, or -1. An empty id selects the
// first bar drawn without one in the current scope.
func (ctx *Context) HoveredTab(id string) int {
	if id == "" {
		id = string(FieldKindTabBar)
	}
	if st := ctx.tabBars.Lookup(ctx.FieldIDOf(id)); st != nil {
		return st.hovered
	}
	return -1
}
