package m3ui

import "testing"

func newEdit(value string) *textEdit {
	st := newTextEditState(0, len(value))
	return &textEdit{value: value, st: &st}
}

func TestUndoRing(t *testing.T) {
	r := newUndoRing(DefaultMaxUndoHistory)
	for i := 0; i < 20; i++ {
		r.Push(string(rune('a' + i)))
	}
	if r.Len() != DefaultMaxUndoHistory {
		t.Fatalf("Len = %d, want %d", r.Len(), DefaultMaxUndoHistory)
	}
	for i := 19; i >= 5; i-- {
		s, ok := r.Pop()
		if !ok || s != string(rune('a'+i)) {
			t.Fatalf("Pop = %q, %v; want %q", s, ok, string(rune('a'+i)))
		}
	}
	if _, ok := r.Pop(); ok {
		t.Fatal("Pop on empty ring succeeded")
	}
	r.Push("x")
	r.Clear()
	if r.Len() != 0 {
		t.Fatal("Clear kept entries")
	}
}

func TestUndoRingZeroValue(t *testing.T) {
	var r undoRing
	r.Push("a")
	if s, ok := r.Pop(); !ok || s != "a" {
		t.Fatalf("Pop = %q, %v", s, ok)
	}
}

func TestTextEditInsertAndBackspace(t *testing.T) {
	e := newEdit("hello")
	e.moveTo(2, false)
	e.insert([]rune("XY"))
	if e.value != "heXYllo" || e.st.cursor != 4 {
		t.Fatalf("insert: %q cursor %d", e.value, e.st.cursor)
	}
	e.backspace()
	if e.value != "heXllo" || e.st.cursor != 3 {
		t.Fatalf("backspace: %q cursor %d", e.value, e.st.cursor)
	}
	e.deleteForward()
	if e.value != "heXlo" {
		t.Fatalf("delete: %q", e.value)
	}
	e.insert([]rune{'\n', 0x7f})
	if e.value != "heXlo" {
		t.Fatalf("control characters inserted: %q", e.value)
	}
}

func TestTextEditSelection(t *testing.T) {
	e := newEdit("hello world")
	e.moveTo(0, false)
	e.moveTo(5, true)
	if got := e.selectedText(); got != "hello" {
		t.Fatalf("selection = %q", got)
	}
	e.insert([]rune("bye"))
	if e.value != "bye world" || e.st.hasSelection() {
		t.Fatalf("replace selection: %q", e.value)
	}
	e.selectAll()
	e.backspace()
	if e.value != "" {
		t.Fatalf("select all + backspace: %q", e.value)
	}
}

func TestTextEditCombiningMarks(t *testing.T) {
	s := "ae\u0301b"
	if got := prevBoundary(s, 4); got != 1 {
		t.Errorf("prevBoundary = %d, want 1", got)
	}
	if got := nextBoundary(s, 1); got != 4 {
		t.Errorf("nextBoundary = %d, want 4", got)
	}
	if got := snapBoundary(s, 2); got != 1 {
		t.Errorf("snapBoundary = %d, want 1", got)
	}
	e := newEdit(s)
	e.moveTo(4, false)
	e.backspace()
	if e.value != "ab" {
		t.Errorf("backspace over combining mark: %q", e.value)
	}
}

func TestTextEditClipboard(t *testing.T) {
	clip := &MemoryClipboard{}
	e := newEdit("secret")
	e.clip = clip
	e.selectAll()
	e.cut()
	if e.value != "" || clip.GetText() != "secret" {
		t.Fatalf("cut: value %q clipboard %q", e.value, clip.GetText())
	}
	clip.SetText("line one\nline two")
	e.paste()
	if e.value != "line one line two" {
		t.Fatalf("paste: %q", e.value)
	}
}

func TestTextEditPasswordBlocksCopy(t *testing.T) {
	clip := &MemoryClipboard{}
	clip.SetText("before")
	e := newEdit("hunter2")
	e.clip, e.password = clip, true
	e.selectAll()
	e.copySelection()
	e.cut()
	if clip.GetText() != "before" {
		t.Fatalf("password leaked to clipboard: %q", clip.GetText())
	}
	if e.value != "hunter2" {
		t.Fatalf("cut edited a password field: %q", e.value)
	}
	e.paste()
	if e.value != "before" {
		t.Fatalf("paste into password field: %q", e.value)
	}
}

func TestTextEditReadOnly(t *testing.T) {
	e := newEdit("fixed")
	e.readOnly = true
	e.insert([]rune("x"))
	e.backspace()
	e.deleteForward()
	if e.value != "fixed" {
		t.Fatalf("read-only edited: %q", e.value)
	}
	e.selectAll()
	if e.selectedText() != "fixed" {
		t.Fatal("read-only field not selectable")
	}
}

func TestInputMask(t *testing.T) {
	mask := []rune("(999) 999-9999")
	tests := []struct {
		value, typed, want string
	}{
		{"", "5551234567", "(555) 123-4567"},
		{"", "555", "(555"},
		{"(555", "1", "(555) 1"},
		{"", "5a5", "(55"},
		{"(555) 123-4567", "8", "(555) 123-4567"},
	}
	for _, tt := range tests {
		if got := appendMasked(mask, tt.value, []rune(tt.typed)); got != tt.want {
			t.Errorf("appendMasked(%q, %q) = %q, want %q", tt.value, tt.typed, got, tt.want)
		}
	}

	if got := conformMask(mask, "5551234567"); got != "(555) 123-4567" {
		t.Errorf("conformMask = %q", got)
	}
	if got := conformMask(mask, "(555) 12"); got != "(555) 12" {
		t.Errorf("conformMask keeps literals: %q", got)
	}
	if got := conformMask([]rune("AA-99"), "ab12"); got != "ab-12" {
		t.Errorf("conformMask letters = %q", got)
	}

	for value, want := range map[string]string{
		"(555) ": "(55",
		"(555) 1": "(555",
		"(5":      "",
		"":        "",
	} {
		if got := trimMaskedBackspace(mask, value); got != want {
			t.Errorf("trimMaskedBackspace(%q) = %q, want %q", value, got, want)
		}
	}
}

func TestObscure(t *testing.T) {
	if got := obscure("ae\u0301"); got != "••" {
		t.Errorf("obscure = %q", got)
	}
}

func TestTextFieldUndoKeepsNewestEdits(t *testing.T) {
	tests := []struct {
		name    string
		maxUndo int
		edits   int
		want    string
	}{
		{"custom depth", 3, 5, "ab"},
		{"default depth", 0, DefaultMaxUndoHistory + 2, "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			value := ""
			draw := func(ctx *Context) {
				value, _ = ctx.TextField(Rect{W: 300, H: 56}, "Notes", value, TextFieldOptions{MaxUndoHistory: tt.maxUndo})
			}
			h.click(20, 20, draw)
			for i := 0; i < tt.edits; i++ {
				h.typeText(string(rune('a'+i)), draw)
			}
			if len(value) != tt.edits {
				t.Fatalf("typed %q", value)
			}

			depth := tt.maxUndo
			if depth == 0 {
				depth = DefaultMaxUndoHistory
			}
			h.in.ModCtrl = true
			for j := 0; j < depth; j++ {
				h.tap(KeyZ, draw)
			}
			if value != tt.want {
				t.Fatalf("after %d undos value = %q, want %q", depth, value, tt.want)
			}
			h.tap(KeyZ, draw)
			if value != tt.want {
				t.Fatalf("undo past the oldest entry changed the value to %q", value)
			}
		})
	}
}

func TestTextFieldEditing(t *testing.T) {
	h := newHarness(t)
	value := ""
	changed := false
	draw := func(ctx *Context) {
		value, changed = ctx.TextField(Rect{W: 200, H: 56}, "Name", value, TextFieldOptions{})
	}
	h.click(20, 20, draw)
	if !h.ctx().IsFocused(h.ctx().FieldIDOf("Name")) {
		t.Fatal("click did not focus the field")
	}

	h.typeText("hi", draw)
	if value != "hi" || !changed {
		t.Fatalf("typed: %q changed=%v", value, changed)
	}
	h.frame(draw)
	if changed {
		t.Fatal("changed reported without input")
	}

	h.tap(KeyBackspace, draw)
	if value != "h" {
		t.Fatalf("backspace: %q", value)
	}

	h.in.ModCtrl = true
	h.tap(KeyZ, draw)
	if value != "hi" {
		t.Fatalf("undo: %q", value)
	}
	h.tap(KeyZ, draw)
	if value != "" {
		t.Fatalf("second undo: %q", value)
	}
	h.tap(KeyY, draw)
	if value != "hi" {
		t.Fatalf("redo: %q", value)
	}
	h.in.ModCtrl = false

	h.tap(KeyEscape, draw)
	if h.ctx().FocusedID() != 0 {
		t.Fatal("Escape kept focus")
	}
	h.typeText("x", draw)
	if value != "hi" {
		t.Fatalf("unfocused field edited: %q", value)
	}
}

func TestTextFieldMaskedEntry(t *testing.T) {
	h := newHarness(t)
	value := "555"
	draw := func(ctx *Context) {
		value, _ = ctx.TextField(Rect{W: 300, H: 56}, "Phone", value, TextFieldOptions{InputMask: "(999) 999-9999"})
	}
	h.moveTo(700, 500)
	h.frame(draw)
	if value != "(555" {
		t.Fatalf("initial value conformed to %q", value)
	}
	h.click(20, 20, draw)
	h.typeText("12x34567", draw)
	if value != "(555) 123-4567" {
		t.Fatalf("masked entry = %q", value)
	}
}

func TestTextFieldTrailingAction(t *testing.T) {
	h := newHarness(t)
	value := "clear me"
	cleared := 0
	draw := func(ctx *Context) {
		value, _ = ctx.TextField(Rect{W: 200, H: 56}, "Search", value, TextFieldOptions{
			TrailingIcon:   "close",
			OnTrailingIcon: ActionFunc(func() { cleared++ }),
		})
	}
	h.moveTo(700, 500)
	h.frame(draw)
	// Trailing icon is centered at x = 200-12-12, y = 28.
	h.click(176, 28, draw)
	if cleared != 1 {
		t.Fatalf("trailing action ran %d times, want 1", cleared)
	}
}

func TestTextFieldDisabled(t *testing.T) {
	h := newHarness(t)
	value := "keep"
	draw := func(ctx *Context) {
		value, _ = ctx.TextField(Rect{W: 200, H: 56}, "Name", value, TextFieldOptions{Disabled: true})
	}
	h.click(20, 20, draw)
	h.typeText("x", draw)
	if value != "keep" || h.ctx().FocusedID() != 0 {
		t.Fatalf("disabled field: %q focused=%d", value, h.ctx().FocusedID())
	}
}
