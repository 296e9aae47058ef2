package m3ui

import "fmt"

// Renderer draws a finished DrawList.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// GUI owns a Context and a Renderer and drives the frame lifecycle:
// New once, then BeginFrame / widget calls / EndFrame every frame, and
// Shutdown at exit.
type GUI struct {
	renderer Renderer
	ctx      *Context
}

// Option configures a GUI instance.
type Option func(*GUI)

// WithTheme sets the theme.
func WithTheme(t Theme) Option {
	return func(g *GUI) { g.ctx.theme = t }
}

// WithDarkMode selects the dark or light default theme.
func WithDarkMode(dark bool) Option {
	return func(g *GUI) {
		if dark {
			g.ctx.theme = DarkTheme()
		} else {
			g.ctx.theme = LightTheme()
		}
	}
}

// WithFontProvider sets the font used for measuring and drawing text.
func WithFontProvider(fp FontProvider) Option {
	return func(g *GUI) { g.ctx.fontProvider = fp }
}

// WithScrollStep sets the scroll distance of one wheel notch in pixels.
func WithScrollStep(px float32) Option {
	return func(g *GUI) {
		if px > 0 {
			g.ctx.theme.ScrollStep = px
		}
	}
}

// WithClipboard sets the clipboard used by text fields.
func WithClipboard(cp ClipboardProvider) Option {
	return func(g *GUI) { g.ctx.clipboard = cp }
}

// New creates a GUI drawing through renderer.
func New(renderer Renderer, opts ...Option) *GUI {
	g := &GUI{
		renderer: renderer,
		ctx:      NewContext(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// BeginFrame starts a frame and returns the Context for widget calls.
// input may be nil for a frame without pointer or keyboard.
func (g *GUI) BeginFrame(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := g.ctx
	if ctx.inFrame {
		uiLogger.Warn("BeginFrame without EndFrame", "frame", ctx.FrameCount)
		ctx.releaseLists()
	}
	if g.renderer != nil {
		ctx.FontTextureID = g.renderer.FontTextureID()
	}
	ctx.beginFrame(input, displaySize, deltaTime)
	return ctx
}

// EndFrame finishes the frame and renders the main, foreground and
// overlay lists in that order. Calling EndFrame outside a frame is a no-op.
func (g *GUI) EndFrame() error {
	ctx := g.ctx
	if !ctx.inFrame {
		return nil
	}
	ctx.endFrame()
	defer ctx.releaseLists()

	if g.renderer == nil {
		return nil
	}
	lists := []struct {
		name string
		dl   *DrawList
	}{
		{"main", ctx.DrawList},
		{"foreground", ctx.ForegroundDrawList},
		{"overlay", ctx.OverlayDrawList},
	}
	for _, l := range lists {
		l.dl.Finalize()
		if l.dl.Empty() {
			continue
		}
		if err := g.renderer.Render(l.dl); err != nil {
			return fmt.Errorf("render %s list: %w", l.name, err)
		}
	}
	return nil
}

// Shutdown drops all transient state. The GUI must not be used after.
func (g *GUI) Shutdown() {
	ctx := g.ctx
	ctx.releaseLists()
	for _, s := range ctx.stores {
		s.clear()
	}
	ctx.regions, ctx.prevRegions = nil, nil
	clear(ctx.prevOrder)
	ctx.inFrame = false
	uiLogger.Debug("gui shutdown", "frames", ctx.FrameCount)
}

// Context returns the GUI's Context.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Theme returns the active theme.
func (g *GUI) Theme() Theme {
	return g.ctx.theme
}

// SetTheme replaces the theme from the next widget call on.
func (g *GUI) SetTheme(t Theme) {
	g.ctx.theme = t
}

// Resize notifies the renderer of a framebuffer size change.
func (g *GUI) Resize(width, height int) {
	if g.renderer != nil {
		g.renderer.Resize(width, height)
	}
}
