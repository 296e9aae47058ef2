package m3ui

// ClipboardProvider abstracts system clipboard access.
// backend/opengl.GLFWClipboard implements it for GLFW windows.
type ClipboardProvider interface {
	// GetText returns the clipboard text, or "" when empty or not text.
	GetText() string

	// SetText replaces the clipboard text.
	SetText(text string)
}

// MemoryClipboard is an in-process ClipboardProvider, used when no
// system clipboard is available.
type MemoryClipboard struct {
	text string
}

// GetText returns the stored text.
func (c *MemoryClipboard) GetText() string { return c.text }

// SetText stores text.
func (c *MemoryClipboard) SetText(text string) { c.text = text }

// Clipboard returns the configured clipboard, or nil.
func (ctx *Context) Clipboard() ClipboardProvider {
	return ctx.clipboard
}
