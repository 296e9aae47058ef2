package m3ui

import "testing"

// modalPrompt draws a base button under the "Rename" prompt and records
// the last non-pending result.
type modalPrompt struct {
	value   string
	result  ModalResult
	results int
	behind  int
}

func (m *modalPrompt) draw(ctx *Context) {
	if ctx.Button(Rect{W: 100, H: 40}, "Behind", ButtonOptions{}) {
		m.behind++
	}
	var res ModalResult
	m.value, res = ctx.Modal("Rename", "Pick a name.", "Name", m.value, ModalOptions{})
	if res != ModalPending {
		m.result = res
		m.results++
	}
}

func TestModalClosedDrawsNothing(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *Context) {
		v, res := ctx.Modal("Rename", "", "Name", "x", ModalOptions{})
		if v != "x" || res != ModalPending {
			t.Errorf("closed modal = %q, %v", v, res)
		}
		if !ctx.ForegroundDrawList.Empty() {
			t.Error("closed modal drew to the foreground list")
		}
	})
	if h.ctx().IsModalOpen("Rename") {
		t.Fatal("modal open without OpenModal")
	}
}

func TestModalBlocksLowerLayers(t *testing.T) {
	h := newHarness(t)
	m := &modalPrompt{}

	h.click(50, 20, m.draw)
	if m.behind != 1 {
		t.Fatalf("button clicks before the modal = %d, want 1", m.behind)
	}

	h.ctx().OpenModal("Rename")
	h.moveTo(700, 500)
	h.frame(m.draw)
	h.click(50, 20, m.draw)
	if m.behind != 1 {
		t.Fatal("button under an open modal was clicked")
	}
	if !h.ctx().IsModalOpen("Rename") {
		t.Fatal("scrim click dismissed the modal")
	}
}

func TestModalEnterConfirms(t *testing.T) {
	h := newHarness(t)
	m := &modalPrompt{}
	h.ctx().OpenModal("Rename")
	h.frame(m.draw)

	h.typeText("abc", m.draw)
	if m.value != "abc" {
		t.Fatalf("modal field did not take focus: value %q", m.value)
	}
	h.tap(KeyEnter, m.draw)
	if m.results != 1 || m.result != ModalConfirmed || m.value != "abc" {
		t.Fatalf("results %d last %v value %q", m.results, m.result, m.value)
	}
	if h.ctx().IsModalOpen("Rename") {
		t.Fatal("modal still open after confirm")
	}
}

func TestModalEscapeCancels(t *testing.T) {
	h := newHarness(t)
	m := &modalPrompt{}
	h.ctx().OpenModal("Rename")

	// Keys held on the opening frame are ignored.
	h.in.SetKey(KeyEscape, true)
	h.frame(m.draw)
	if !h.ctx().IsModalOpen("Rename") {
		t.Fatal("Escape on the opening frame closed the modal")
	}
	h.in.SetKey(KeyEscape, false)
	h.frame(m.draw)

	h.tap(KeyEscape, m.draw)
	if m.results != 1 || m.result != ModalCancelled {
		t.Fatalf("results %d last %v", m.results, m.result)
	}
	if h.ctx().IsModalOpen("Rename") {
		t.Fatal("modal still open after Escape")
	}
}

func TestModalConfirmButton(t *testing.T) {
	h := newHarness(t)
	var closed, confirmed bool
	draw := func(ctx *Context) {
		if _, ok := ctx.BeginModal("Delete", "", 400, 200); ok {
			c, ok := ctx.EndModal("", "")
			if c {
				closed, confirmed = c, ok
			}
		}
	}
	h.ctx().OpenModal("Delete")
	h.moveTo(0, 0)
	h.frame(draw)

	// Dialog 200,200 400x200; the "OK" button spans x 514..576, y 336..376.
	h.click(570, 356, draw)
	if !closed || !confirmed {
		t.Fatalf("closed %v confirmed %v", closed, confirmed)
	}
	h.ctx().CloseModal("Delete")
}

func TestCloseModal(t *testing.T) {
	ctx := NewContext()
	ctx.OpenModal("A")
	if !ctx.IsModalOpen("A") {
		t.Fatal("not open")
	}
	ctx.CloseModal("A")
	if ctx.IsModalOpen("A") {
		t.Fatal("still open")
	}
	ctx.CloseModal("never opened")
}

func TestModalProtocolViolations(t *testing.T) {
	t.Run("EndModal without BeginModal", func(t *testing.T) {
		ctx := NewContext()
		expectProtocolError(t, "EndModal", func() { ctx.EndModal("", "") })
	})
	t.Run("EndFrame with open BeginModal", func(t *testing.T) {
		h := newHarness(t)
		ctx := h.ui.BeginFrame(h.in, h.size, 0)
		ctx.OpenModal("A")
		if _, ok := ctx.BeginModal("A", "", 0, 0); !ok {
			t.Fatal("BeginModal on an open modal returned false")
		}
		expectProtocolError(t, "EndFrame", func() { h.ui.EndFrame() })
	})
}
