package m3ui

import "testing"

func TestTabWidth(t *testing.T) {
	tests := []struct {
		avail    float32
		count    int
		min, max float32
		want     float32
	}{
		{300, 3, 72, 240, 100},
		{1000, 2, 72, 240, 240},
		{100, 5, 72, 240, 72},
		{300, 0, 72, 240, 0},
		{300, 3, 240, 72, 100},
	}
	for _, tt := range tests {
		if got := TabWidth(tt.avail, tt.count, tt.min, tt.max); got != tt.want {
			t.Errorf("TabWidth(%v, %d, %v, %v) = %v, want %v", tt.avail, tt.count, tt.min, tt.max, got, tt.want)
		}
	}
}

// tabBarHarness draws a 300x40 bar and keeps the last reported click
// and close.
type tabBarHarness struct {
	*harness
	items           []TabItem
	selected        int
	clicked, closed int
	clicks, closes  int
}

func newTabBarHarness(t *testing.T, items []TabItem, selected int) *tabBarHarness {
	return &tabBarHarness{harness: newHarness(t), items: items, selected: selected, clicked: -1, closed: -1}
}

func (b *tabBarHarness) draw(ctx *Context) {
	clicked, closed := ctx.TabBar(Rect{W: 300, H: 40}, b.items, b.selected, TabBarOptions{ID: "main"})
	if clicked >= 0 {
		b.clicked = clicked
		b.clicks++
	}
	if closed >= 0 {
		b.closed = closed
		b.closes++
	}
}

func TestTabBarClick(t *testing.T) {
	b := newTabBarHarness(t, []TabItem{{Title: "One"}, {Title: "Two"}, {Title: "Three"}}, 0)
	b.moveTo(700, 500)
	b.frame(b.draw)

	b.click(150, 20, b.draw)
	if b.clicks != 1 || b.clicked != 1 {
		t.Fatalf("clicks %d, last %d; want one click on tab 1", b.clicks, b.clicked)
	}
	if b.closes != 0 {
		t.Fatalf("unexpected close %d", b.closed)
	}
}

func TestTabBarClickActiveTab(t *testing.T) {
	b := newTabBarHarness(t, []TabItem{{Title: "One"}, {Title: "Two"}}, 0)
	b.moveTo(700, 500)
	b.frame(b.draw)
	b.click(20, 20, b.draw)
	if b.clicks != 1 || b.clicked != 0 {
		t.Fatalf("clicks %d, last %d; want the active tab's click reported", b.clicks, b.clicked)
	}
}

func TestTabBarCloseWinsOverSelect(t *testing.T) {
	items := []TabItem{
		{ID: "a", Title: "One"},
		{ID: "b", Title: "Two", Closeable: true},
		{ID: "c", Title: "Three"},
	}
	b := newTabBarHarness(t, items, 1)
	b.moveTo(700, 500)
	b.frame(b.draw)

	// Close glyph of tab 1: x 176..192, y 12..28.
	b.click(184, 20, b.draw)
	if b.closes != 1 || b.closed != 1 {
		t.Fatalf("closes %d, last %d; want a close of tab 1", b.closes, b.closed)
	}
	if b.clicks != 0 {
		t.Fatalf("close also reported a select of %d", b.clicked)
	}
}

func TestTabBarHover(t *testing.T) {
	b := newTabBarHarness(t, []TabItem{{Title: "One"}, {Title: "Two"}, {Title: "Three"}}, 0)
	b.moveTo(250, 20)
	b.frame(b.draw)
	if got := b.ctx().HoveredTab("main"); got != 2 {
		t.Fatalf("HoveredTab = %d, want 2", got)
	}
	b.moveTo(250, 200)
	b.frame(b.draw)
	if got := b.ctx().HoveredTab("main"); got != -1 {
		t.Fatalf("HoveredTab = %d, want -1", got)
	}
}

func TestTabBarHoverWithoutID(t *testing.T) {
	h := newHarness(t)
	items := []TabItem{{Title: "One"}, {Title: "Two"}, {Title: "Three"}}
	draw := func(ctx *Context) {
		ctx.Button(Rect{Y: 100, W: 100, H: 40}, "Before", ButtonOptions{})
		ctx.TabBar(Rect{W: 300, H: 40}, items, 0, TabBarOptions{})
		ctx.TabBar(Rect{Y: 200, W: 300, H: 40}, items, 0, TabBarOptions{})
	}
	h.moveTo(150, 20)
	h.frame(draw)
	if got := h.ctx().HoveredTab(""); got != 1 {
		t.Fatalf("HoveredTab(\"\") = %d, want 1 from the first unnamed bar", got)
	}
}

func TestTabBarEmpty(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *Context) {
		before := len(ctx.DrawList.VtxBuffer)
		clicked, closed := ctx.TabBar(Rect{W: 300, H: 40}, nil, 0, TabBarOptions{})
		if clicked != -1 || closed != -1 {
			t.Errorf("TabBar(nil) = %d, %d", clicked, closed)
		}
		if len(ctx.DrawList.VtxBuffer) != before {
			t.Error("empty tab bar drew something")
		}
	})
}

func TestTabBarStableIdentity(t *testing.T) {
	// A press on a tab that goes away does not click the tab that takes
	// its place under the pointer.
	items := []TabItem{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}, {ID: "c", Title: "C"}}
	b := newTabBarHarness(t, items, 0)
	b.moveTo(700, 500)
	b.frame(b.draw)

	b.moveTo(250, 20)
	b.press()
	b.frame(b.draw)
	b.items = items[:2]
	b.release()
	b.frame(b.draw)
	if b.clicks != 0 {
		t.Fatalf("tab %d clicked after its neighbor moved under the pointer", b.clicked)
	}
}

func TestTabContentClips(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *Context) {
		body := Rect{Y: 40, W: 300, H: 200}
		depth := ctx.DrawList.ClipDepth()
		ctx.TabContentBegin(body, 0)
		if ctx.DrawList.CurrentClip() != body {
			t.Errorf("clip = %+v, want %+v", ctx.DrawList.CurrentClip(), body)
		}
		ctx.TabContentEnd()
		if ctx.DrawList.ClipDepth() != depth {
			t.Errorf("clip depth %d after TabContentEnd, want %d", ctx.DrawList.ClipDepth(), depth)
		}
	})
}
