package m3ui

// ComponentState is the visual state of an interactive widget.
type ComponentState int

const (
	StateDefault ComponentState = iota
	StateHovered
	StatePressed
	StateFocused
	StateDisabled
	stateCount
)

var componentStateNames = [...]string{
	StateDefault:  "Default",
	StateHovered:  "Hovered",
	StatePressed:  "Pressed",
	StateFocused:  "Focused",
	StateDisabled: "Disabled",
}

func (s ComponentState) String() string {
	if s < 0 || s >= stateCount {
		return "Unknown"
	}
	return componentStateNames[s]
}

// Interaction is the result of resolving one widget's pointer state.
type Interaction struct {
	State ComponentState

	Hovered    bool // pointer is over the widget and nothing covers it
	Pressed    bool // primary button held after a press that began here
	Clicked    bool // primary button released here after a press that began here
	PressedNow bool // primary press went down on the widget this frame
	Focused    bool // the widget's field holds keyboard focus
}

// Interact registers bounds as an occupied region at the active layer and
// resolves the widget's state.
//
// Precedence is Disabled, Pressed, Hovered, Default. A click needs both
// the press and the release to land on the widget while nothing at a
// higher layer covers it, so dragging off and releasing elsewhere does
// not activate.
func (ctx *Context) Interact(id ID, bounds Rect, disabled bool) Interaction {
	var it Interaction
	defer ctx.RegisterRegion(id, bounds)

	if disabled {
		if ctx.activeID == id {
			ctx.activeID = 0
		}
		it.State = StateDisabled
		return it
	}

	in := ctx.Input
	it.Hovered = ctx.pointerEligible(id, bounds)
	if in != nil && it.Hovered && in.MousePressed(MouseButtonLeft) {
		ctx.activeID = id
		it.PressedNow = true
		if uiVerbose() {
			uiLogger.Debug("press", "id", id, "layer", ctx.ActiveLayer())
		}
	}
	if in != nil && ctx.activeID == id && it.Hovered {
		it.Pressed = in.MouseDown(MouseButtonLeft)
		it.Clicked = in.MouseReleased(MouseButtonLeft)
	}

	switch {
	case it.Pressed:
		it.State = StatePressed
	case it.Hovered:
		it.State = StateHovered
	default:
		it.State = StateDefault
	}
	return it
}

// InteractField is Interact for focusable fields. A press on the field
// takes focus; a focused field reports StateFocused unless pressed.
func (ctx *Context) InteractField(id FieldID, bounds Rect, disabled bool) Interaction {
	it := ctx.Interact(id, bounds, disabled)
	if disabled {
		if ctx.focusedID == id {
			ctx.ClearFocus()
		}
		return it
	}
	ctx.focusOrder = append(ctx.focusOrder, id)
	if it.PressedNow {
		ctx.Focus(id)
	}
	it.Focused = ctx.focusedID == id
	if it.Focused && it.State != StatePressed {
		it.State = StateFocused
	}
	return it
}

// Focus gives keyboard focus to a field. It also counts as this frame's
// focus claim, so a press elsewhere in the same frame does not clear it.
func (ctx *Context) Focus(id FieldID) {
	if ctx.focusedID != id && uiVerbose() {
		uiLogger.Debug("focus", "from", ctx.focusedID, "to", id)
	}
	ctx.focusedID = id
	ctx.focusClaimed = true
}

// IsFocused reports whether id holds keyboard focus.
func (ctx *Context) IsFocused(id FieldID) bool {
	return id != 0 && ctx.focusedID == id
}

// FocusedID returns the focused field, or 0.
func (ctx *Context) FocusedID() FieldID {
	return ctx.focusedID
}

// ClearFocus drops keyboard focus.
func (ctx *Context) ClearFocus() {
	ctx.focusedID = 0
}

// advanceFocus moves focus through last frame's field order.
func (ctx *Context) advanceFocus(reverse bool) {
	order := ctx.prevFocusOrder
	if len(order) == 0 {
		return
	}
	idx := -1
	for i, id := range order {
		if id == ctx.focusedID {
			idx = i
			break
		}
	}
	switch {
	case idx < 0 && reverse:
		idx = len(order) - 1
	case idx < 0:
		idx = 0
	case reverse:
		idx = (idx - 1 + len(order)) % len(order)
	default:
		idx = (idx + 1) % len(order)
	}
	ctx.Focus(order[idx])
}
