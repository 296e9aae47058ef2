package m3ui

import "hash/fnv"

// ModalResult is the outcome of a Modal call.
type ModalResult int

const (
	ModalPending   ModalResult = iota // still open, or not open at all
	ModalConfirmed                    // confirm button or Enter
	ModalCancelled                    // cancel button or Escape
)

// ModalOptions configures the Modal text prompt.
type ModalOptions struct {
	ConfirmText string // "OK" when empty
	CancelText  string // "Cancel" when empty
	Width       float32
	Placeholder string
}

// modalFrame is one BeginModal awaiting its EndModal.
type modalFrame struct {
	title  string
	st     *modalState
	dialog Rect
}

const (
	modalPadding      = 24
	modalButtonHeight = 40
	modalMinWidth     = 280
	modalScrimOpacity = 0.32
)

// modalID keys a modal by title alone, so OpenModal and BeginModal may
// run under different ID scopes.
func (ctx *Context) modalID(title string) FieldID {
	h := fnv.New64a()
	h.Write([]byte("modal:" + title))
	return FieldID(h.Sum64() | 1)
}

// OpenModal shows the modal with the given title from the next
// BeginModal call on.
func (ctx *Context) OpenModal(title string) {
	st := ctx.modals.Get(ctx.modalID(title), modalState{})
	if !st.open {
		st.open, st.opened = true, true
		if uiVerbose() {
			uiLogger.Debug("modal open", "title", title)
		}
	}
}

// CloseModal hides the modal with the given title.
func (ctx *Context) CloseModal(title string) {
	if st := ctx.modals.Lookup(ctx.modalID(title)); st != nil {
		st.open, st.opened = false, false
	}
}

// IsModalOpen reports whether the modal with the given title is showing.
func (ctx *Context) IsModalOpen(title string) bool {
	st := ctx.modals.Lookup(ctx.modalID(title))
	return st != nil && st.open
}

// BeginModal draws an open modal dialog and returns the rectangle left
// for custom content. It returns false, and draws nothing, when the modal
// is not open; EndModal must be called only after a true return.
//
// The dialog is drawn to the foreground list at LayerModal behind a scrim
// that covers the display, so nothing below it receives the pointer from
// the next frame on. A dimension <= 0 is sized to fit.
func (ctx *Context) BeginModal(title, message string, width, height float32) (Rect, bool) {
	return ctx.beginModal(title, message, width, height, 0)
}

// beginModal is BeginModal with room for contentH of custom content when
// the height is fitted.
func (ctx *Context) beginModal(title, message string, width, height, contentH float32) (Rect, bool) {
	st := ctx.modals.Lookup(ctx.modalID(title))
	if st == nil || !st.open {
		return Rect{}, false
	}
	cs := &ctx.theme.Colors
	id := ctx.modalID(title)

	ctx.PushLayer(LayerModal)
	ctx.pushTarget(ctx.ForegroundDrawList)
	ctx.PushID("modal:" + title)

	display := Rect{W: ctx.DisplaySize.X, H: ctx.DisplaySize.Y}
	ctx.RegisterRegion(id, display)
	ctx.target().AddRect(display, cs.Scrim.WithAlpha(modalScrimOpacity))

	if width <= 0 {
		width = maxf(modalMinWidth, minf(560, display.W-2*modalPadding))
	}
	textW := width - 2*modalPadding
	titleSize, bodySize := ctx.theme.Type.Title, ctx.theme.Type.Body
	lines := ctx.WrapText(message, textW, bodySize, FontWeightRegular)
	headerH := ctx.LineHeight(titleSize) + SpaceXL + float32(len(lines))*ctx.LineHeight(bodySize)
	if height <= 0 {
		height = modalPadding + headerH + SpaceXL + modalButtonHeight + modalPadding
		if contentH > 0 {
			height += contentH + SpaceXL
		}
	}

	dialog := Rect{
		X: display.X + (display.W-width)/2,
		Y: display.Y + (display.H-height)/2,
		W: width,
		H: height,
	}
	ctx.RegisterRegion(ctx.GetID("dialog"), dialog)
	ctx.target().AddRoundedRect(dialog, ctx.theme.Shape.Large, cs.SurfaceContainerHigh)

	x, y := dialog.X+modalPadding, dialog.Y+modalPadding
	ctx.DrawText(ctx.TruncateText(title, textW, titleSize, FontWeightRegular), Vec2{X: x, Y: y}, titleSize, FontWeightRegular, cs.OnSurface)
	y += ctx.LineHeight(titleSize) + SpaceXL
	for _, line := range lines {
		ctx.DrawText(line, Vec2{X: x, Y: y}, bodySize, FontWeightRegular, cs.OnSurfaceVariant)
		y += ctx.LineHeight(bodySize)
	}
	if len(lines) > 0 {
		y += SpaceXL
	}

	content := Rect{
		X: x,
		Y: y,
		W: textW,
		H: maxf(0, dialog.Y+dialog.H-modalPadding-modalButtonHeight-SpaceXL-y),
	}
	ctx.modalStack = append(ctx.modalStack, &modalFrame{title: title, st: st, dialog: dialog})
	return content, true
}

// EndModal draws the action buttons of the innermost open modal and
// closes the frame opened by BeginModal. It reports whether the modal
// was dismissed this frame and whether that was a confirmation. Escape
// cancels and Enter confirms, except on the frame the modal opened.
// An empty cancel label omits the cancel button.
func (ctx *Context) EndModal(confirm, cancel string) (closed, confirmed bool) {
	n := len(ctx.modalStack)
	if n == 0 {
		protocolViolation("EndModal", "no matching BeginModal")
	}
	f := ctx.modalStack[n-1]
	ctx.modalStack = ctx.modalStack[:n-1]

	if confirm == "" {
		confirm = "OK"
	}
	size := ctx.theme.Type.Label
	btnW := func(label string) float32 {
		return ctx.MeasureText(label, size, FontWeightMedium).X + 2*buttonPadX
	}
	x := f.dialog.X + f.dialog.W - modalPadding
	y := f.dialog.Y + f.dialog.H - modalPadding - modalButtonHeight

	w := btnW(confirm)
	x -= w
	if ctx.Button(Rect{X: x, Y: y, W: w, H: modalButtonHeight}, confirm, ButtonOptions{ID: "confirm"}) {
		closed, confirmed = true, true
	}
	if cancel != "" {
		w = btnW(cancel)
		x -= w + SpaceMD
		if ctx.Button(Rect{X: x, Y: y, W: w, H: modalButtonHeight}, cancel, ButtonOptions{ID: "cancel"}) {
			closed = true
		}
	}

	if in := ctx.Input; in != nil && !f.st.opened && !closed {
		switch {
		case in.KeyPressed(KeyEscape):
			closed = true
		case in.KeyPressed(KeyEnter):
			closed, confirmed = true, true
		}
	}
	f.st.opened = false
	if closed {
		f.st.open = false
		if uiVerbose() {
			uiLogger.Debug("modal closed", "title", f.title, "confirmed", confirmed)
		}
	}

	ctx.PopID()
	ctx.popTarget()
	ctx.PopLayer()
	return closed, confirmed
}

// Modal shows a text prompt with a single field when the modal titled
// title is open (see OpenModal). It returns the edited value and the
// outcome; the field takes focus when the modal opens.
func (ctx *Context) Modal(title, message, fieldLabel, value string, opts ModalOptions) (string, ModalResult) {
	st := ctx.modals.Lookup(ctx.modalID(title))
	opening := st != nil && st.opened
	width := opts.Width
	if width <= 0 {
		width = 360
	}
	const fieldH = 56
	content, ok := ctx.beginModal(title, message, width, 0, fieldH)
	if !ok {
		return value, ModalPending
	}
	field := Rect{X: content.X, Y: content.Y + SpaceSM, W: content.W, H: fieldH}
	if opening {
		ctx.Focus(ctx.FieldIDOf("field"))
	}
	value, _ = ctx.TextField(field, fieldLabel, value, TextFieldOptions{
		Variant:     TextFieldOutlined,
		Placeholder: opts.Placeholder,
		Background:  ctx.theme.Colors.SurfaceContainerHigh,
		ID:          "field",
	})

	cancel := opts.CancelText
	if cancel == "" {
		cancel = "Cancel"
	}
	closed, confirmed := ctx.EndModal(opts.ConfirmText, cancel)
	switch {
	case confirmed:
		return value, ModalConfirmed
	case closed:
		return value, ModalCancelled
	}
	return value, ModalPending
}
