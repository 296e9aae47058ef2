package m3ui

import "testing"

func TestFieldStore(t *testing.T) {
	ctx := NewContext()
	s := NewFieldStore[int](ctx)
	id := ctx.FieldIDOf("count")

	if s.Lookup(id) != nil {
		t.Fatal("Lookup on empty store")
	}
	p := s.Get(id, 5)
	if *p != 5 {
		t.Fatalf("Get default = %d", *p)
	}
	*p = 7
	if got := *s.Get(id, 0); got != 7 {
		t.Fatalf("Get after write = %d", got)
	}
	s.Set(id, 9)
	if *p != 9 {
		t.Fatal("Set replaced the pointer instead of the value")
	}
	s.Set(ctx.FieldIDOf("other"), 1)
	if s.Len() != 2 {
		t.Fatalf("Len = %d", s.Len())
	}
	s.Delete(id)
	if s.Lookup(id) != nil || s.Len() != 1 {
		t.Fatal("Delete kept the entry")
	}
}

func TestResetFieldID(t *testing.T) {
	h := newHarness(t)
	value := "hello"
	draw := func(ctx *Context) {
		value, _ = ctx.TextField(Rect{W: 200, H: 56}, "Name", value, TextFieldOptions{})
	}
	h.click(20, 20, draw)
	ctx := h.ctx()
	id := ctx.FieldIDOf("Name")
	if ctx.textEdits.Lookup(id) == nil || !ctx.IsFocused(id) {
		t.Fatal("field has no state after a click")
	}
	extra := NewFieldStore[bool](ctx)
	extra.Set(id, true)

	ctx.ResetFieldID(id)
	if ctx.textEdits.Lookup(id) != nil || extra.Lookup(id) != nil {
		t.Fatal("ResetFieldID kept state")
	}
	if ctx.IsFocused(id) {
		t.Fatal("ResetFieldID kept focus")
	}

	h.frame(draw)
	if ctx.textEdits.Lookup(id) == nil {
		t.Fatal("state not recreated on the next frame")
	}
}

func TestResetFieldIDsRenumbersKind(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *Context) {
		first := ctx.fieldIDFor("", "", FieldKindRangeSlider)
		second := ctx.fieldIDFor("", "", FieldKindRangeSlider)
		if first == second {
			t.Fatal("unnamed widgets of one kind share an id")
		}
		if ctx.fieldIDFor("", "", FieldKindSlider) == first {
			t.Fatal("kinds share numbering")
		}
		ctx.ResetFieldIDs(FieldKindRangeSlider)
		if got := ctx.fieldIDFor("", "", FieldKindRangeSlider); got != first {
			t.Fatalf("after reset got %v, want %v", got, first)
		}
		if got := ctx.fieldIDFor("", "", FieldKindSlider); got == ctx.FieldIDOf(string(FieldKindSlider)) {
			t.Fatal("reset of one kind restarted another")
		}
		if got := ctx.fieldIDFor("named", "", FieldKindRangeSlider); got != ctx.FieldIDOf("named") {
			t.Fatal("explicit id ignored")
		}
	})
	h.frame(func(ctx *Context) {
		if ctx.fieldIDFor("", "", FieldKindRangeSlider) != ctx.FieldIDOf(string(FieldKindRangeSlider)) {
			t.Fatal("numbering did not restart with the frame")
		}
	})
}

func TestResetFieldIDsKeepsOtherState(t *testing.T) {
	h := newHarness(t)
	var first Rect
	h.frame(scrollList(&first))
	ctx := h.ctx()
	ctx.SetScrollOffset("list", Vec2{Y: 100})
	ctx.OpenModal("Confirm")
	text := "hello"

	var a, b []float32
	h.frame(func(ctx *Context) {
		text, _ = ctx.TextField(Rect{Y: 400, W: 200, H: 56}, "Name", text, TextFieldOptions{})
		a = ctx.RangeSlider(Rect{Y: 300, W: 200, H: 40}, "", []float32{10, 20}, 0, 100, RangeSliderOptions{})
		ctx.ResetFieldIDs(FieldKindRangeSlider)
		b = ctx.RangeSlider(Rect{Y: 300, W: 200, H: 40}, "", []float32{30, 40}, 0, 100, RangeSliderOptions{})
	})
	if len(a) != 2 || len(b) != 2 {
		t.Fatalf("range sliders returned %v and %v", a, b)
	}
	if got := ctx.ScrollOffset("list"); got.Y != 100 {
		t.Errorf("scroll offset = %v, want 100", got)
	}
	if !ctx.IsModalOpen("Confirm") {
		t.Error("modal closed by ResetFieldIDs")
	}
	if ctx.textEdits.Lookup(ctx.FieldIDOf("Name")) == nil {
		t.Error("text field state dropped by ResetFieldIDs")
	}
}
