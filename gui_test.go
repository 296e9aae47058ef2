package m3ui_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/m3ui"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls   int
	width, height int
	err           error
}

func (m *mockRenderer) Render(dl *m3ui.DrawList) error {
	m.renderCalls++
	return m.err
}

func (m *mockRenderer) FontTextureID() uint32 {
	return 1
}

func (m *mockRenderer) Resize(width, height int) {
	m.width, m.height = width, height
}

var display = m3ui.Vec2{X: 800, Y: 600}

func TestGUIBasicUsage(t *testing.T) {
	renderer := &mockRenderer{}
	ui := m3ui.New(renderer, m3ui.WithDarkMode(true))
	input := m3ui.NewInputState()

	ctx := ui.BeginFrame(input, display, 0.016)
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}
	ctx.Begin(m3ui.Rect{W: display.X, H: display.Y})
	ctx.Label("Hello World", m3ui.TextOptions{})
	ctx.Button(ctx.Alloc(m3ui.Fixed(120, 40)), "OK", m3ui.ButtonOptions{})
	ctx.End()

	if err := ui.EndFrame(); err != nil {
		t.Fatalf("EndFrame() returned error: %v", err)
	}
	if renderer.renderCalls != 1 {
		t.Errorf("expected 1 render call, got %d", renderer.renderCalls)
	}
}

func TestEmptyFrameRendersNothing(t *testing.T) {
	renderer := &mockRenderer{}
	ui := m3ui.New(renderer)
	ui.BeginFrame(nil, display, 0.016)
	if err := ui.EndFrame(); err != nil {
		t.Fatal(err)
	}
	if renderer.renderCalls != 0 {
		t.Errorf("empty frame rendered %d lists", renderer.renderCalls)
	}
}

func TestLayeredListsRendered(t *testing.T) {
	renderer := &mockRenderer{}
	ui := m3ui.New(renderer)
	input := m3ui.NewInputState()
	input.SetMousePos(50, 20)

	anchor := m3ui.Rect{W: 100, H: 40}
	ctx := ui.BeginFrame(input, display, 0.016)
	ctx.OpenModal("Confirm")
	ctx.Button(anchor, "Save", m3ui.ButtonOptions{})
	ctx.Tooltip(anchor, "Save the file", m3ui.TooltipOptions{})
	if _, ok := ctx.BeginModal("Confirm", "Really?", 0, 0); ok {
		ctx.EndModal("Yes", "No")
	}
	if err := ui.EndFrame(); err != nil {
		t.Fatal(err)
	}
	if renderer.renderCalls != 3 {
		t.Errorf("expected main, foreground and overlay lists, got %d render calls", renderer.renderCalls)
	}
}

func TestEndFrameRenderError(t *testing.T) {
	boom := errors.New("device lost")
	renderer := &mockRenderer{err: boom}
	ui := m3ui.New(renderer)
	ctx := ui.BeginFrame(nil, display, 0.016)
	ctx.Card(m3ui.Rect{W: 100, H: 100}, m3ui.CardOptions{})
	err := ui.EndFrame()
	if !errors.Is(err, boom) {
		t.Fatalf("EndFrame error = %v, want wrapped %v", err, boom)
	}
}

func TestEndFrameOutsideFrame(t *testing.T) {
	ui := m3ui.New(&mockRenderer{})
	if err := ui.EndFrame(); err != nil {
		t.Fatalf("EndFrame without BeginFrame = %v", err)
	}
}

func TestBeginFrameTwice(t *testing.T) {
	renderer := &mockRenderer{}
	ui := m3ui.New(renderer)
	ui.BeginFrame(nil, display, 0.016)
	ctx := ui.BeginFrame(nil, display, 0.016)
	ctx.Card(m3ui.Rect{W: 10, H: 10}, m3ui.CardOptions{})
	if err := ui.EndFrame(); err != nil {
		t.Fatal(err)
	}
	if ctx.FrameCount != 2 {
		t.Errorf("FrameCount = %d, want 2", ctx.FrameCount)
	}
}

func TestThemeOptions(t *testing.T) {
	dark := m3ui.New(nil, m3ui.WithDarkMode(true))
	if dark.Theme().Colors != m3ui.DarkScheme() {
		t.Error("WithDarkMode(true) did not select the dark scheme")
	}
	light := m3ui.New(nil)
	if light.Theme().Colors != m3ui.LightScheme() {
		t.Error("default theme is not light")
	}

	custom := m3ui.LightTheme()
	custom.Colors.Primary = m3ui.Hex(0x00FF00)
	ui := m3ui.New(nil, m3ui.WithTheme(custom), m3ui.WithScrollStep(25))
	if ui.Theme().Colors.Primary != m3ui.Hex(0x00FF00) {
		t.Error("WithTheme ignored")
	}
	if ui.Theme().ScrollStep != 25 {
		t.Errorf("ScrollStep = %v, want 25", ui.Theme().ScrollStep)
	}
	ui.SetTheme(m3ui.DarkTheme())
	if ui.Context().Theme().Colors != m3ui.DarkScheme() {
		t.Error("SetTheme not visible through the context")
	}
}

func TestResizeForwards(t *testing.T) {
	renderer := &mockRenderer{}
	ui := m3ui.New(renderer)
	ui.Resize(1280, 720)
	if renderer.width != 1280 || renderer.height != 720 {
		t.Errorf("renderer size = %dx%d", renderer.width, renderer.height)
	}
	m3ui.New(nil).Resize(1, 1)
}

func TestClipboardOption(t *testing.T) {
	clip := &m3ui.MemoryClipboard{}
	ui := m3ui.New(nil, m3ui.WithClipboard(clip))
	if ui.Context().Clipboard() != clip {
		t.Fatal("WithClipboard not applied")
	}
}

func TestShutdown(t *testing.T) {
	ui := m3ui.New(&mockRenderer{})
	input := m3ui.NewInputState()
	ctx := ui.BeginFrame(input, display, 0.016)
	ctx.TextField(m3ui.Rect{W: 200, H: 56}, "Name", "x", m3ui.TextFieldOptions{})
	if err := ui.EndFrame(); err != nil {
		t.Fatal(err)
	}
	ui.Shutdown()
	if ui.EndFrame() != nil {
		t.Error("EndFrame after Shutdown")
	}
}

func TestWantCaptureMouse(t *testing.T) {
	ui := m3ui.New(&mockRenderer{})
	input := m3ui.NewInputState()
	input.SetMousePos(10, 10)
	ctx := ui.BeginFrame(input, display, 0.016)
	ctx.Button(m3ui.Rect{W: 100, H: 40}, "Hit", m3ui.ButtonOptions{})
	if err := ui.EndFrame(); err != nil {
		t.Fatal(err)
	}
	if !ctx.WantCaptureMouse {
		t.Error("pointer over a widget should set WantCaptureMouse")
	}
}
