package m3ui

import (
	"errors"
	"testing"
)

// fakeRenderer records what EndFrame hands it.
type fakeRenderer struct {
	renders       int
	vertices      int
	width, height int
	err           error
}

func (r *fakeRenderer) Render(dl *DrawList) error {
	r.renders++
	r.vertices += len(dl.VtxBuffer)
	return r.err
}

func (r *fakeRenderer) FontTextureID() uint32 { return 1 }

func (r *fakeRenderer) Resize(width, height int) {
	r.width, r.height = width, height
}

// harness drives frames against a GUI with a shared InputState.
// Without a FontProvider text measures size*0.5 per character.
type harness struct {
	t    *testing.T
	r    *fakeRenderer
	ui   *GUI
	in   *InputState
	size Vec2
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	r := &fakeRenderer{}
	return &harness{
		t:    t,
		r:    r,
		ui:   New(r, opts...),
		in:   NewInputState(),
		size: Vec2{X: 800, Y: 600},
	}
}

func (h *harness) ctx() *Context { return h.ui.Context() }

// frame runs one frame and clears this frame's input edges afterwards.
func (h *harness) frame(draw func(ctx *Context)) {
	h.t.Helper()
	ctx := h.ui.BeginFrame(h.in, h.size, 1.0/60)
	draw(ctx)
	if err := h.ui.EndFrame(); err != nil {
		h.t.Fatalf("EndFrame: %v", err)
	}
	h.in.Reset()
}

func (h *harness) moveTo(x, y float32) { h.in.SetMousePos(x, y) }
func (h *harness) press()             { h.in.SetMouseButton(MouseButtonLeft, true) }
func (h *harness) release()           { h.in.SetMouseButton(MouseButtonLeft, false) }

// click runs a press frame and a release frame at (x, y).
func (h *harness) click(x, y float32, draw func(ctx *Context)) {
	h.t.Helper()
	h.moveTo(x, y)
	h.press()
	h.frame(draw)
	h.release()
	h.frame(draw)
}

// tap runs one frame with key pressed and one with it released.
func (h *harness) tap(key Key, draw func(ctx *Context)) {
	h.t.Helper()
	h.in.SetKey(key, true)
	h.frame(draw)
	h.in.SetKey(key, false)
	h.frame(draw)
}

// typeText runs one frame with s as typed characters.
func (h *harness) typeText(s string, draw func(ctx *Context)) {
	h.t.Helper()
	for _, r := range s {
		h.in.AddInputChar(r)
	}
	h.frame(draw)
}

// expectProtocolError fails unless fn panics with a *ProtocolError for op.
func expectProtocolError(t *testing.T, op string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("%s: expected panic", op)
		}
		err, ok := r.(error)
		var pe *ProtocolError
		if !ok || !errors.As(err, &pe) {
			t.Fatalf("%s: panic %v, want *ProtocolError", op, r)
		}
		if pe.Op != op {
			t.Fatalf("panic op = %q, want %q", pe.Op, op)
		}
	}()
	fn()
}
