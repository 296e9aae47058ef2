package m3ui

import "testing"

func TestNewListClipper(t *testing.T) {
	tests := []struct {
		total          int
		item, vis, off float32
		start, end     int
	}{
		{100, 32, 300, 0, 0, 11},
		{100, 32, 300, 1000, 31, 42},
		{10, 32, 300, 0, 0, 10},
		{100, 32, 300, 5000, 100, 100},
		{0, 32, 300, 0, 0, 0},
		{100, 0, 300, 0, 0, 0},
		{100, 32, 300, -50, 0, 11},
	}
	for _, tt := range tests {
		c := NewListClipper(tt.total, tt.item, tt.vis, tt.off)
		if c.Start != tt.start || c.End != tt.end {
			t.Errorf("NewListClipper(%d, %v, %v, %v) = [%d, %d), want [%d, %d)",
				tt.total, tt.item, tt.vis, tt.off, c.Start, c.End, tt.start, tt.end)
		}
	}
}

func TestListClipperHeights(t *testing.T) {
	c := NewListClipper(100, 32, 300, 1000)
	if got := c.Before() + float32(c.End-c.Start)*c.ItemHeight + c.After(); got != c.ContentHeight() {
		t.Fatalf("spacers and rows = %v, want %v", got, c.ContentHeight())
	}
	if !c.Visible(31) || c.Visible(30) || c.Visible(42) {
		t.Fatal("Visible disagrees with the range")
	}
}

func TestListClipperScrollToItem(t *testing.T) {
	c := NewListClipper(100, 32, 300, 0)
	tests := []struct {
		item      int
		off, want float32
	}{
		{5, 0, 0},
		{20, 0, 372},
		{2, 200, 64},
		{-1, 40, 40},
		{100, 40, 40},
	}
	for _, tt := range tests {
		if got := c.ScrollToItem(tt.item, tt.off, 300); got != tt.want {
			t.Errorf("ScrollToItem(%d, %v) = %v, want %v", tt.item, tt.off, got, tt.want)
		}
	}
}

func TestClipListInScrollContainer(t *testing.T) {
	h := newHarness(t)
	var c ListClipper
	var firstRow Rect
	draw := func(ctx *Context) {
		ctx.Begin(root300)
		col := Column()
		col.Height, col.ID = 300, "rows"
		ctx.BeginScrollContainer(col, false, true)
		c = ctx.ClipList("rows", 100, 32)
		ctx.Alloc(Fixed(-1, c.Before()))
		for i := c.Start; i < c.End; i++ {
			r := ctx.Alloc(Fixed(-1, 32))
			if i == c.Start {
				firstRow = r
			}
		}
		ctx.Alloc(Fixed(-1, c.After()))
		ctx.EndContainer()
		ctx.End()
	}
	h.frame(draw)
	if content, _ := h.ctx().ScrollExtent("rows"); content.Y != 3200 {
		t.Fatalf("content height = %v, want 3200", content.Y)
	}

	h.ctx().SetScrollOffset("rows", Vec2{Y: 1000})
	h.frame(draw)
	if c.Start != 31 || c.End != 42 {
		t.Fatalf("range = [%d, %d), want [31, 42)", c.Start, c.End)
	}
	if firstRow.Y != -8 {
		t.Errorf("first visible row at y %v, want -8", firstRow.Y)
	}
	if content, _ := h.ctx().ScrollExtent("rows"); content.Y != 3200 {
		t.Errorf("content height changed to %v", content.Y)
	}
}
