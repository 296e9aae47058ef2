package m3ui

// ListClipper computes the visible slice of a uniform-height list inside a
// vertical scroll container, so long lists only lay out the rows that can
// be seen.
//
//	ctx.BeginScrollContainer(LayoutStyle{ID: "rows", Direction: DirectionColumn, Width: -1, Height: 300}, false, true)
//	c := ctx.ClipList("rows", len(rows), 32)
//	ctx.Alloc(Fixed(-1, c.Before()))
//	for i := c.Start; i < c.End; i++ {
//	    ctx.Text(ctx.Alloc(Fixed(-1, 32)), rows[i], TextOptions{})
//	}
//	ctx.Alloc(Fixed(-1, c.After()))
//	ctx.EndContainer()
//
// Rows must be laid out without a gap; ItemHeight is the full row pitch.
type ListClipper struct {
	Start      int // first visible row, inclusive
	End        int // last visible row, exclusive
	ItemHeight float32
	Total      int
}

// NewListClipper returns the rows visible in a viewport of height visible
// scrolled to offset. One extra row is kept on each edge for partial rows.
func NewListClipper(total int, itemHeight, visible, offset float32) ListClipper {
	c := ListClipper{ItemHeight: itemHeight, Total: total}
	if total <= 0 || itemHeight <= 0 {
		return c
	}
	start := max(int(offset/itemHeight), 0)
	end := start + int(visible/itemHeight) + 2
	c.Start = min(start, total)
	c.End = min(end, total)
	return c
}

// ClipList builds a ListClipper from the last measured viewport and the
// current offset of the scroll container with style ID id. Before the
// container has been measured the first screenful is assumed.
func (ctx *Context) ClipList(id string, total int, itemHeight float32) ListClipper {
	_, viewport := ctx.ScrollExtent(id)
	if viewport.Y <= 0 {
		viewport.Y = ctx.DisplaySize.Y
	}
	return NewListClipper(total, itemHeight, viewport.Y, ctx.ScrollOffset(id).Y)
}

// Visible reports whether row i is inside the clipped range.
func (c ListClipper) Visible(i int) bool {
	return i >= c.Start && i < c.End
}

// Before is the height of the rows skipped above the range.
func (c ListClipper) Before() float32 {
	return float32(c.Start) * c.ItemHeight
}

// After is the height of the rows skipped below the range.
func (c ListClipper) After() float32 {
	return float32(c.Total-c.End) * c.ItemHeight
}

// ContentHeight is the height of the whole list.
func (c ListClipper) ContentHeight() float32 {
	return float32(c.Total) * c.ItemHeight
}

// ScrollToItem returns the offset that brings row i into a viewport of
// height visible currently scrolled to offset. A row already in view
// leaves the offset unchanged.
func (c ListClipper) ScrollToItem(i int, offset, visible float32) float32 {
	if i < 0 || i >= c.Total {
		return offset
	}
	top := float32(i) * c.ItemHeight
	bottom := top + c.ItemHeight
	switch {
	case top < offset:
		return top
	case bottom > offset+visible:
		return bottom - visible
	}
	return offset
}
