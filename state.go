package m3ui

// DefaultMaxUndoHistory is the undo depth used when a TextField does not
// set one.
const DefaultMaxUndoHistory = 15

// undoRing is a bounded stack of text snapshots. Pushing onto a full
// ring evicts the oldest entry. The buffer is allocated on first Push.
type undoRing struct {
	limit int
	buf   []string
	start int
	n     int
}

func newUndoRing(capacity int) undoRing {
	if capacity <= 0 {
		capacity = DefaultMaxUndoHistory
	}
	return undoRing{limit: capacity}
}

// Push records a snapshot, dropping the oldest when full.
func (r *undoRing) Push(s string) {
	if r.buf == nil {
		if r.limit <= 0 {
			r.limit = DefaultMaxUndoHistory
		}
		r.buf = make([]string, r.limit)
	}
	if r.n == len(r.buf) {
		r.buf[r.start] = s
		r.start = (r.start + 1) % len(r.buf)
		return
	}
	r.buf[(r.start+r.n)%len(r.buf)] = s
	r.n++
}

// Pop removes and returns the newest snapshot.
func (r *undoRing) Pop() (string, bool) {
	if r.n == 0 {
		return "", false
	}
	r.n--
	idx := (r.start + r.n) % len(r.buf)
	s := r.buf[idx]
	r.buf[idx] = ""
	return s, true
}

// Len returns the number of retained snapshots.
func (r *undoRing) Len() int { return r.n }

// Clear drops every snapshot.
func (r *undoRing) Clear() {
	clear(r.buf)
	r.start, r.n = 0, 0
}

// textEditState is the transient state of one TextField.
// Offsets are byte offsets into the field's raw value and always sit on
// character boundaries.
type textEditState struct {
	cursor    int
	selAnchor int // -1 means no selection
	scrollX   float32
	undo      undoRing
	redo      undoRing
}

func newTextEditState(maxUndo, cursor int) textEditState {
	return textEditState{
		cursor:    cursor,
		selAnchor: -1,
		undo:      newUndoRing(maxUndo),
		redo:      newUndoRing(maxUndo),
	}
}

// hasSelection reports whether a non-empty range is selected.
func (s *textEditState) hasSelection() bool {
	return s.selAnchor >= 0 && s.selAnchor != s.cursor
}

// selection returns the ordered selection range.
func (s *textEditState) selection() (lo, hi int) {
	if s.selAnchor < s.cursor {
		return s.selAnchor, s.cursor
	}
	return s.cursor, s.selAnchor
}

func (s *textEditState) clearSelection() {
	s.selAnchor = -1
}

// recordEdit snapshots the value before a change and invalidates redo.
func (s *textEditState) recordEdit(before string) {
	s.undo.Push(before)
	s.redo.Clear()
}

// sliderState tracks a drag across frames. thumb is the dragged thumb
// index for range sliders.
type sliderState struct {
	dragging bool
	thumb    int
}

// scrollState is a scroll container's offset and last measured extent.
type scrollState struct {
	offset   Vec2
	content  Vec2
	viewport Vec2
}

// maxScroll returns the largest valid offset per axis.
func (s *scrollState) maxScroll() Vec2 {
	return Vec2{
		X: maxf(0, s.content.X-s.viewport.X),
		Y: maxf(0, s.content.Y-s.viewport.Y),
	}
}

// clamp keeps the offset inside [0, content-viewport].
func (s *scrollState) clamp() {
	m := s.maxScroll()
	s.offset.X = clampf(s.offset.X, 0, m.X)
	s.offset.Y = clampf(s.offset.Y, 0, m.Y)
}

// modalState records whether a modal is showing.
type modalState struct {
	open   bool
	opened bool // set by OpenModal until the modal has been drawn once
}

// tooltipState keeps a tooltip's last bounds so hovering the tooltip
// itself keeps it open.
type tooltipState struct {
	visible bool
	bounds  Rect
}

// tabBarState remembers which tab was hovered last frame.
type tabBarState struct {
	hovered int
}
