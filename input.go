package m3ui

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key the widgets react to.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyX
	KeyY
	KeyZ
	KeyCount
)

// Key repeat timing (seconds).
const (
	KeyRepeatDelay    float32 = 0.4
	KeyRepeatInterval float32 = 0.03
)

// InputState is the raw input snapshot for one frame.
// Backends fill it from window events; the Context only reads it.
type InputState struct {
	MouseX, MouseY float32

	mouseDown     [MouseButtonCount]bool
	mousePressed  [MouseButtonCount]bool // went down this frame
	mouseReleased [MouseButtonCount]bool // went up this frame

	MouseWheelX float32
	MouseWheelY float32

	keyDown     [KeyCount]bool
	keyPressed  [KeyCount]bool
	keyReleased [KeyCount]bool
	keyHold     [KeyCount]float32
	keyHoldPrev [KeyCount]float32

	// Unicode characters typed this frame.
	InputChars []rune

	ModCtrl  bool
	ModShift bool
	ModAlt   bool
	ModSuper bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{
		InputChars: make([]rune, 0, 16),
	}
}

// Reset clears per-frame edges, typed characters and wheel deltas.
// Held buttons and keys persist.
func (s *InputState) Reset() {
	s.mousePressed = [MouseButtonCount]bool{}
	s.mouseReleased = [MouseButtonCount]bool{}
	s.keyPressed = [KeyCount]bool{}
	s.keyReleased = [KeyCount]bool{}
	s.InputChars = s.InputChars[:0]
	s.MouseWheelX = 0
	s.MouseWheelY = 0
}

// SetMousePos sets the pointer position in window coordinates.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// MousePos returns the pointer position.
func (s *InputState) MousePos() Vec2 {
	return Vec2{X: s.MouseX, Y: s.MouseY}
}

// SetMouseButton records a button transition.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}
	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down
	if down && !wasDown {
		s.mousePressed[button] = true
	}
	if !down && wasDown {
		s.mouseReleased[button] = true
	}
}

// SetKey records a key transition.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	wasDown := s.keyDown[key]
	s.keyDown[key] = down
	if down && !wasDown {
		s.keyPressed[key] = true
		s.keyHold[key] = 0
		s.keyHoldPrev[key] = 0
	}
	if !down && wasDown {
		s.keyReleased[key] = true
		s.keyHold[key] = 0
		s.keyHoldPrev[key] = 0
	}
}

// UpdateKeyRepeat advances hold timers by dt.
// The frame controller calls this once per BeginFrame.
func (s *InputState) UpdateKeyRepeat(dt float32) {
	for key := Key(0); key < KeyCount; key++ {
		s.keyHoldPrev[key] = s.keyHold[key]
		if s.keyDown[key] && !s.keyPressed[key] {
			s.keyHold[key] += dt
		}
	}
}

// SetMouseWheel sets the wheel delta for this frame.
func (s *InputState) SetMouseWheel(x, y float32) {
	s.MouseWheelX = x
	s.MouseWheelY = y
}

// AddInputChar appends a typed character.
func (s *InputState) AddInputChar(ch rune) {
	s.InputChars = append(s.InputChars, ch)
}

// MouseDown reports whether a button is held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MousePressed reports whether a button went down this frame.
func (s *InputState) MousePressed(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mousePressed[button]
}

// MouseReleased reports whether a button went up this frame.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseReleased[button]
}

// KeyDown reports whether a key is held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed reports whether a key went down this frame.
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyReleased reports whether a key went up this frame.
func (s *InputState) KeyReleased(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyReleased[key]
}

// KeyRepeated is true on the initial press, then once every
// KeyRepeatInterval after KeyRepeatDelay while the key stays held.
func (s *InputState) KeyRepeated(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	if s.keyPressed[key] {
		return true
	}
	if !s.keyDown[key] || s.keyHold[key] < KeyRepeatDelay {
		return false
	}
	now := int((s.keyHold[key] - KeyRepeatDelay) / KeyRepeatInterval)
	if s.keyHoldPrev[key] < KeyRepeatDelay {
		return true
	}
	prev := int((s.keyHoldPrev[key] - KeyRepeatDelay) / KeyRepeatInterval)
	return now > prev
}

// Shortcut reports whether Ctrl (or Super) plus key went down this frame.
func (s *InputState) Shortcut(key Key) bool {
	return (s.ModCtrl || s.ModSuper) && s.KeyPressed(key)
}
