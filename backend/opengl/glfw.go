package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/m3ui"
)

// GLFWInputAdapter feeds m3ui.InputState from GLFW window callbacks.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *m3ui.InputState
}

// NewGLFWInputAdapter installs key, char, mouse and scroll callbacks on
// window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	a := &GLFWInputAdapter{
		window: window,
		input:  m3ui.NewInputState(),
	}
	window.SetKeyCallback(a.keyCallback)
	window.SetCharCallback(a.charCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	return a
}

// Update starts a new input frame. Call it before glfw.PollEvents so the
// polled events land in the new frame.
func (a *GLFWInputAdapter) Update() *m3ui.InputState {
	a.input.Reset()

	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	down := func(l, r glfw.Key) bool {
		return a.window.GetKey(l) == glfw.Press || a.window.GetKey(r) == glfw.Press
	}
	a.input.ModCtrl = down(glfw.KeyLeftControl, glfw.KeyRightControl)
	a.input.ModShift = down(glfw.KeyLeftShift, glfw.KeyRightShift)
	a.input.ModAlt = down(glfw.KeyLeftAlt, glfw.KeyRightAlt)
	a.input.ModSuper = down(glfw.KeyLeftSuper, glfw.KeyRightSuper)
	return a.input
}

// Input returns the adapter's input state.
func (a *GLFWInputAdapter) Input() *m3ui.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	a.setMods(mods)
	k := glfwKey(key)
	if k == m3ui.KeyNone {
		return
	}
	switch action {
	case glfw.Press:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

// setMods refreshes modifiers from an event; Update polls them too.
func (a *GLFWInputAdapter) setMods(mods glfw.ModifierKey) {
	a.input.ModCtrl = mods&glfw.ModControl != 0
	a.input.ModShift = mods&glfw.ModShift != 0
	a.input.ModAlt = mods&glfw.ModAlt != 0
	a.input.ModSuper = mods&glfw.ModSuper != 0
}

func (a *GLFWInputAdapter) charCallback(_ *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	a.setMods(mods)
	b, ok := glfwMouseButton(button)
	if !ok {
		return
	}
	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(float32(xoff), float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(_ *glfw.Window, x, y float64) {
	a.input.SetMousePos(float32(x), float32(y))
}

var glfwKeys = map[glfw.Key]m3ui.Key{
	glfw.KeyTab:       m3ui.KeyTab,
	glfw.KeyLeft:      m3ui.KeyLeft,
	glfw.KeyRight:     m3ui.KeyRight,
	glfw.KeyUp:        m3ui.KeyUp,
	glfw.KeyDown:      m3ui.KeyDown,
	glfw.KeyPageUp:    m3ui.KeyPageUp,
	glfw.KeyPageDown:  m3ui.KeyPageDown,
	glfw.KeyHome:      m3ui.KeyHome,
	glfw.KeyEnd:       m3ui.KeyEnd,
	glfw.KeyDelete:    m3ui.KeyDelete,
	glfw.KeyBackspace: m3ui.KeyBackspace,
	glfw.KeySpace:     m3ui.KeySpace,
	glfw.KeyEnter:     m3ui.KeyEnter,
	glfw.KeyKPEnter:   m3ui.KeyEnter,
	glfw.KeyEscape:    m3ui.KeyEscape,
	glfw.KeyA:         m3ui.KeyA,
	glfw.KeyC:         m3ui.KeyC,
	glfw.KeyV:         m3ui.KeyV,
	glfw.KeyX:         m3ui.KeyX,
	glfw.KeyY:         m3ui.KeyY,
	glfw.KeyZ:         m3ui.KeyZ,
}

func glfwKey(key glfw.Key) m3ui.Key {
	if k, ok := glfwKeys[key]; ok {
		return k
	}
	return m3ui.KeyNone
}

func glfwMouseButton(button glfw.MouseButton) (m3ui.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return m3ui.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return m3ui.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return m3ui.MouseButtonMiddle, true
	}
	return 0, false
}

// GLFWClipboard is an m3ui.ClipboardProvider backed by the system
// clipboard through a GLFW window.
type GLFWClipboard struct {
	Window *glfw.Window
}

var _ m3ui.ClipboardProvider = GLFWClipboard{}

// GetText returns the clipboard text, or "" when it holds no text.
func (c GLFWClipboard) GetText() string {
	if c.Window == nil {
		return ""
	}
	return c.Window.GetClipboardString()
}

// SetText replaces the clipboard text.
func (c GLFWClipboard) SetText(text string) {
	if c.Window != nil {
		c.Window.SetClipboardString(text)
	}
}
