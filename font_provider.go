package m3ui

// FontWeight selects a face weight when measuring and drawing text.
type FontWeight int

const (
	FontWeightRegular FontWeight = iota
	FontWeightThin
	FontWeightLight
	FontWeightMedium
	FontWeightSemibold
	FontWeightBold
	FontWeightBlack
)

// FontProvider measures text and produces glyph quads from a texture atlas.
//
// The root package does not depend on any concrete font implementation.
// The fontatlas package provides one backed by golang.org/x/image; tests
// use a fixed-advance fake.
//
//	atlas, err := fontatlas.New(fontatlas.Options{Sizes: []float32{12, 14, 16}})
//	ui := m3ui.New(renderer, m3ui.WithFontProvider(atlas))
type FontProvider interface {
	// TextureID returns the renderer texture holding the atlas.
	// It is 0 until the atlas has been uploaded.
	TextureID() uint32

	// MeasureText returns the pixel size of text at size and weight.
	MeasureText(text string, size float32, weight FontWeight) Vec2

	// GlyphQuads lays out text with its top-left corner at (x, y).
	// The returned slice is only valid until the next call.
	GlyphQuads(text string, x, y, size float32, weight FontWeight) []GlyphQuad

	// LineHeight returns the line height at size.
	LineHeight(size float32) float32
}

// monoAdvance is the advance ratio used when no FontProvider is set.
const monoAdvance = 0.5

// MeasureText returns the size of text at size and weight.
// Without a FontProvider it falls back to fixed-advance metrics.
func (ctx *Context) MeasureText(text string, size float32, weight FontWeight) Vec2 {
	if ctx.fontProvider != nil {
		return ctx.fontProvider.MeasureText(text, size, weight)
	}
	n := 0
	for range text {
		n++
	}
	return Vec2{X: float32(n) * size * monoAdvance, Y: size}
}

// LineHeight returns the line height for size.
func (ctx *Context) LineHeight(size float32) float32 {
	if ctx.fontProvider != nil {
		return ctx.fontProvider.LineHeight(size)
	}
	return size * 1.25
}

// DrawText draws text with its top-left corner at pos into the current
// draw target.
func (ctx *Context) DrawText(text string, pos Vec2, size float32, weight FontWeight, color Color) {
	ctx.drawTextTo(ctx.target(), text, pos, size, weight, color)
}

func (ctx *Context) drawTextTo(dl *DrawList, text string, pos Vec2, size float32, weight FontWeight, color Color) {
	if dl == nil || text == "" || color.IsUnset() {
		return
	}
	if ctx.fontProvider != nil {
		dl.SetTexture(ctx.fontProvider.TextureID())
		dl.AddGlyphQuads(ctx.fontProvider.GlyphQuads(text, pos.X, pos.Y, size, weight), color)
		dl.SetTexture(0)
		return
	}
	dl.SetTexture(ctx.FontTextureID)
	dl.AddMonoText(pos, text, color, size*monoAdvance, size)
	dl.SetTexture(0)
}

// DrawTextCentered draws text centered inside r.
func (ctx *Context) DrawTextCentered(text string, r Rect, size float32, weight FontWeight, color Color) {
	m := ctx.MeasureText(text, size, weight)
	ctx.DrawText(text, Vec2{X: r.X + (r.W-m.X)/2, Y: r.Y + (r.H-m.Y)/2}, size, weight, color)
}
