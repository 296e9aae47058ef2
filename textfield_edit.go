package m3ui

import (
	"strings"
	"unicode"
)

// Input mask placeholders. Any other mask character is a literal that is
// inserted automatically.
const (
	maskDigit        = '9'
	maskLetter       = 'A'
	maskAlphanumeric = '*'
)

func isMaskSlot(m rune) bool {
	return m == maskDigit || m == maskLetter || m == maskAlphanumeric
}

// maskAccepts reports whether r may fill mask slot m.
func maskAccepts(m, r rune) bool {
	switch m {
	case maskDigit:
		return unicode.IsDigit(r)
	case maskLetter:
		return unicode.IsLetter(r)
	case maskAlphanumeric:
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}
	return false
}

// appendMasked appends typed runes to value under mask. Literals are
// inserted ahead of the next slot; runes a slot rejects are dropped, and
// input past the end of the mask is ignored.
func appendMasked(mask []rune, value string, typed []rune) string {
	out := []rune(value)
	for _, r := range typed {
		for len(out) < len(mask) && !isMaskSlot(mask[len(out)]) {
			out = append(out, mask[len(out)])
		}
		if len(out) >= len(mask) {
			break
		}
		if maskAccepts(mask[len(out)], r) {
			out = append(out, r)
		}
	}
	return string(out)
}

// conformMask re-applies mask to value, dropping characters that do not
// fit. Literals in value are accepted where the mask has them.
func conformMask(mask []rune, value string) string {
	var out []rune
	for _, r := range value {
		if len(out) >= len(mask) {
			break
		}
		if !isMaskSlot(mask[len(out)]) && mask[len(out)] == r {
			out = append(out, r)
			continue
		}
		out = []rune(appendMasked(mask, string(out), []rune{r}))
	}
	return string(out)
}

// trimMaskedBackspace removes the last entered character under mask
// along with the literals that trail it.
func trimMaskedBackspace(mask []rune, value string) string {
	out := []rune(value)
	for len(out) > 0 && len(out) <= len(mask) && !isMaskSlot(mask[len(out)-1]) {
		out = out[:len(out)-1]
	}
	if len(out) > 0 {
		out = out[:len(out)-1]
	}
	for len(out) > 0 && len(out) <= len(mask) && !isMaskSlot(mask[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return string(out)
}

// clusterStarts returns the byte offsets where characters begin in s,
// followed by len(s).
func clusterStarts(s string) []int {
	starts := make([]int, 0, len(s)+1)
	off := 0
	for _, c := range clusters(s) {
		starts = append(starts, off)
		off += len(c)
	}
	return append(starts, len(s))
}

// prevBoundary returns the character boundary before i.
func prevBoundary(s string, i int) int {
	prev := 0
	for _, b := range clusterStarts(s) {
		if b >= i {
			break
		}
		prev = b
	}
	return prev
}

// nextBoundary returns the character boundary after i.
func nextBoundary(s string, i int) int {
	for _, b := range clusterStarts(s) {
		if b > i {
			return b
		}
	}
	return len(s)
}

// snapBoundary moves i back onto a character boundary.
func snapBoundary(s string, i int) int {
	if i >= len(s) {
		return len(s)
	}
	if i <= 0 {
		return 0
	}
	last := 0
	for _, b := range clusterStarts(s) {
		if b > i {
			break
		}
		last = b
	}
	return last
}

// obscure returns one bullet per character of s.
func obscure(s string) string {
	return strings.Repeat("•", len(clusters(s)))
}

// textEdit applies keyboard edits to one field value. It is a plain
// value type so the editing rules are testable without drawing.
type textEdit struct {
	value string
	st    *textEditState
	mask  []rune

	readOnly bool
	password bool
	clip     ClipboardProvider
}

func (e *textEdit) replaceSelection(insert string) {
	lo, hi := e.st.cursor, e.st.cursor
	if e.st.hasSelection() {
		lo, hi = e.st.selection()
	}
	e.value = e.value[:lo] + insert + e.value[hi:]
	e.st.cursor = lo + len(insert)
	e.st.clearSelection()
}

// insert types runes at the caret. Masked fields always append.
func (e *textEdit) insert(runes []rune) {
	if e.readOnly || len(runes) == 0 {
		return
	}
	if e.mask != nil {
		e.value = appendMasked(e.mask, e.value, runes)
		e.st.cursor = len(e.value)
		e.st.clearSelection()
		return
	}
	var b strings.Builder
	for _, r := range runes {
		if r >= 0x20 && r != 0x7f {
			b.WriteRune(r)
		}
	}
	if b.Len() > 0 {
		e.replaceSelection(b.String())
	}
}

func (e *textEdit) backspace() {
	switch {
	case e.readOnly:
	case e.mask != nil:
		e.value = trimMaskedBackspace(e.mask, e.value)
		e.st.cursor = len(e.value)
		e.st.clearSelection()
	case e.st.hasSelection():
		e.replaceSelection("")
	case e.st.cursor > 0:
		lo := prevBoundary(e.value, e.st.cursor)
		e.value = e.value[:lo] + e.value[e.st.cursor:]
		e.st.cursor = lo
	}
}

func (e *textEdit) deleteForward() {
	switch {
	case e.readOnly, e.mask != nil:
	case e.st.hasSelection():
		e.replaceSelection("")
	case e.st.cursor < len(e.value):
		hi := nextBoundary(e.value, e.st.cursor)
		e.value = e.value[:e.st.cursor] + e.value[hi:]
	}
}

// moveTo places the caret at i, extending the selection when extend is
// set.
func (e *textEdit) moveTo(i int, extend bool) {
	if extend {
		if e.st.selAnchor < 0 {
			e.st.selAnchor = e.st.cursor
		}
	} else {
		e.st.clearSelection()
	}
	e.st.cursor = i
}

func (e *textEdit) selectAll() {
	e.st.selAnchor = 0
	e.st.cursor = len(e.value)
}

func (e *textEdit) selectedText() string {
	if !e.st.hasSelection() {
		return ""
	}
	lo, hi := e.st.selection()
	return e.value[lo:hi]
}

func (e *textEdit) copySelection() {
	if e.password || e.clip == nil {
		return
	}
	if s := e.selectedText(); s != "" {
		e.clip.SetText(s)
	}
}

func (e *textEdit) cut() {
	if e.readOnly || e.password {
		return
	}
	e.copySelection()
	if e.st.hasSelection() {
		e.replaceSelection("")
	}
}

func (e *textEdit) paste() {
	if e.readOnly || e.clip == nil {
		return
	}
	text := e.clip.GetText()
	text = strings.NewReplacer("\r\n", " ", "\n", " ", "\t", " ").Replace(text)
	if text != "" {
		e.insert([]rune(text))
	}
}

// undo restores the newest snapshot and moves the current value to the
// redo ring.
func (e *textEdit) undo() bool {
	prev, ok := e.st.undo.Pop()
	if !ok {
		return false
	}
	e.st.redo.Push(e.value)
	e.value = prev
	e.st.cursor = len(prev)
	e.st.clearSelection()
	return true
}

func (e *textEdit) redo() bool {
	next, ok := e.st.redo.Pop()
	if !ok {
		return false
	}
	e.st.undo.Push(e.value)
	e.value = next
	e.st.cursor = len(next)
	e.st.clearSelection()
	return true
}

// handleKeys applies this frame's keyboard input. It returns true when
// the value changed.
func (e *textEdit) handleKeys(in *InputState) bool {
	before := e.value
	if !e.readOnly {
		switch {
		case in.Shortcut(KeyZ) && in.ModShift, in.Shortcut(KeyY):
			return e.redo()
		case in.Shortcut(KeyZ):
			return e.undo()
		}
	}

	shortcut := in.ModCtrl || in.ModSuper
	switch {
	case in.Shortcut(KeyA):
		e.selectAll()
	case in.Shortcut(KeyC):
		e.copySelection()
	case in.Shortcut(KeyX):
		e.cut()
	case in.Shortcut(KeyV):
		e.paste()
	}

	if in.KeyRepeated(KeyBackspace) {
		e.backspace()
	}
	if in.KeyRepeated(KeyDelete) {
		e.deleteForward()
	}
	if in.KeyRepeated(KeyLeft) {
		i := prevBoundary(e.value, e.st.cursor)
		if e.st.hasSelection() && !in.ModShift {
			i, _ = e.st.selection()
		}
		e.moveTo(i, in.ModShift)
	}
	if in.KeyRepeated(KeyRight) {
		i := nextBoundary(e.value, e.st.cursor)
		if e.st.hasSelection() && !in.ModShift {
			_, i = e.st.selection()
		}
		e.moveTo(i, in.ModShift)
	}
	if in.KeyPressed(KeyHome) {
		e.moveTo(0, in.ModShift)
	}
	if in.KeyPressed(KeyEnd) {
		e.moveTo(len(e.value), in.ModShift)
	}
	if !shortcut {
		e.insert(in.InputChars)
	}

	if e.value != before {
		e.st.recordEdit(before)
		return true
	}
	return false
}
