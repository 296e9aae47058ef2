// Package fontatlas rasterizes TrueType faces into a single alpha texture
// atlas and implements m3ui.FontProvider on top of it.
//
// The Go fonts are built in, so an Atlas needs no files:
//
//	atlas, err := fontatlas.New(fontatlas.Options{Sizes: []float32{12, 14, 20}})
//	if err != nil { ... }
//	atlas.SetTextureID(renderer.UploadAtlas(atlas.Pixels(), atlas.Width(), atlas.Height()))
//	ui := m3ui.New(renderer, m3ui.WithFontProvider(atlas))
//
// Text requested at a size that was not rasterized is drawn from the
// nearest rasterized size, scaled.
package fontatlas

import (
	"errors"
	"fmt"
	"image"
	"slices"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/m3ui"
)

// Options configures New.
type Options struct {
	// Sizes are the pixel sizes to rasterize. Defaults to 12, 14 and 20.
	Sizes []float32

	// Regular, Medium and Bold replace the built-in Go fonts for the
	// respective weight class. Each must be TrueType or OpenType data.
	Regular []byte
	Medium  []byte
	Bold    []byte

	// ExtraRunes are rasterized in addition to U+0020..U+00FF, the
	// bullet and the ellipsis.
	ExtraRunes []rune
}

// weightClass groups m3ui weights onto the faces that are rasterized.
type weightClass int

const (
	classRegular weightClass = iota
	classMedium
	classBold
	classCount
)

func classOf(w m3ui.FontWeight) weightClass {
	switch w {
	case m3ui.FontWeightMedium, m3ui.FontWeightSemibold:
		return classMedium
	case m3ui.FontWeightBold, m3ui.FontWeightBlack:
		return classBold
	default:
		return classRegular
	}
}

const (
	atlasPadding = 2
	atlasMinSize = 256
	atlasMaxSize = 4096
	fallbackRune = '?'
)

// glyph is one rasterized rune in atlas pixel units.
type glyph struct {
	advance float32
	x0, y0  float32 // offset of the bitmap from the pen, y0 relative to the baseline
	w, h    int
	u0, v0  float32
	u1, v1  float32
}

// sizedFace is one weight class rasterized at one pixel size.
type sizedFace struct {
	size    float32
	ascent  float32
	descent float32
	lineEm  float32 // unrounded line height per pixel of size
	face    font.Face
	glyphs  map[rune]glyph
	kern    map[[2]rune]float32
}

// Atlas is a rasterized set of faces sharing one alpha texture. It is
// not safe for concurrent use.
type Atlas struct {
	faces     [classCount][]*sizedFace // sorted by size
	img       *image.Alpha
	textureID uint32
	quads     []m3ui.GlyphQuad
}

var _ m3ui.FontProvider = (*Atlas)(nil)

// New parses the configured fonts and rasterizes them into an atlas.
func New(opts Options) (*Atlas, error) {
	sizes := slices.Clone(opts.Sizes)
	if len(sizes) == 0 {
		sizes = []float32{12, 14, 20}
	}
	slices.Sort(sizes)
	sizes = slices.Compact(sizes)
	if sizes[0] <= 0 {
		return nil, fmt.Errorf("fontatlas: invalid size %v", sizes[0])
	}

	sources := [classCount][]byte{
		classRegular: pickTTF(opts.Regular, goregular.TTF),
		classMedium:  pickTTF(opts.Medium, gomedium.TTF),
		classBold:    pickTTF(opts.Bold, gobold.TTF),
	}

	a := &Atlas{}
	for class, src := range sources {
		ft, err := opentype.Parse(src)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("fontatlas: parse font: %w", err)
		}
		lineEm, err := unitLineHeight(ft)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("fontatlas: font metrics: %w", err)
		}
		for _, size := range sizes {
			face, err := opentype.NewFace(ft, &opentype.FaceOptions{
				Size:    float64(size),
				DPI:     72,
				Hinting: font.HintingFull,
			})
			if err != nil {
				a.Close()
				return nil, fmt.Errorf("fontatlas: new face %vpx: %w", size, err)
			}
			sf := newSizedFace(face, size)
			sf.lineEm = lineEm
			a.faces[class] = append(a.faces[class], sf)
		}
	}
	if err := a.build(runeSet(opts.ExtraRunes)); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// NewBasic builds an atlas from the fixed 7x13 bitmap face, used for
// every weight. It cannot fail and is meant for tests and headless tools.
func NewBasic() *Atlas {
	a := &Atlas{}
	sf := newSizedFace(basicfont.Face7x13, 13)
	for class := range a.faces {
		a.faces[class] = []*sizedFace{sf}
	}
	if err := a.build(runeSet(nil)); err != nil {
		// A 7x13 face always fits the minimum atlas.
		panic(err)
	}
	return a
}

func pickTTF(custom, builtin []byte) []byte {
	if len(custom) > 0 {
		return custom
	}
	return builtin
}

func runeSet(extra []rune) []rune {
	runes := make([]rune, 0, 226+len(extra))
	for r := rune(32); r <= 255; r++ {
		if r >= 127 && r < 160 {
			continue
		}
		runes = append(runes, r)
	}
	runes = append(runes, '•', '…')
	runes = append(runes, extra...)
	slices.Sort(runes)
	return slices.Compact(runes)
}

// unitLineHeight returns the unhinted line height per pixel of size.
// Hinted face metrics are rounded per size and would not scale linearly.
func unitLineHeight(ft *opentype.Font) (float32, error) {
	upem := ft.UnitsPerEm()
	m, err := ft.Metrics(nil, fixed.I(int(upem)), font.HintingNone)
	if err != nil {
		return 0, err
	}
	line := max(fixedToFloat(m.Height), fixedToFloat(m.Ascent)+fixedToFloat(m.Descent))
	return line / float32(upem), nil
}

func newSizedFace(face font.Face, size float32) *sizedFace {
	m := face.Metrics()
	ascent := float32(m.Ascent.Ceil())
	descent := float32(m.Descent.Ceil())
	line := max(fixedToFloat(m.Height), fixedToFloat(m.Ascent)+fixedToFloat(m.Descent))
	return &sizedFace{
		size:    size,
		ascent:  ascent,
		descent: descent,
		lineEm:  line / size,
		face:    face,
		glyphs:  make(map[rune]glyph),
		kern:    make(map[[2]rune]float32),
	}
}

// pending is a glyph waiting for a place in the atlas.
type pending struct {
	sf       *sizedFace
	r        rune
	bx, top  int
	w, h     int
	advance  float32
	position image.Point
}

// build measures every rune of every face, shelf-packs the bitmaps and
// draws them into a fresh alpha image.
func (a *Atlas) build(runes []rune) error {
	var items []*pending
	seen := make(map[*sizedFace]bool)
	for class := range a.faces {
		for _, sf := range a.faces[class] {
			if seen[sf] {
				continue
			}
			seen[sf] = true
			for _, r := range runes {
				b, adv, ok := sf.face.GlyphBounds(r)
				if !ok {
					continue
				}
				bx, top := b.Min.X.Floor(), b.Min.Y.Floor()
				items = append(items, &pending{
					sf:      sf,
					r:       r,
					bx:      bx,
					top:     top,
					w:       b.Max.X.Ceil() - bx,
					h:       b.Max.Y.Ceil() - top,
					advance: float32(adv.Round()),
				})
			}
		}
	}

	// Taller glyphs first keeps shelves dense.
	slices.SortStableFunc(items, func(x, y *pending) int { return y.h - x.h })

	size := atlasMinSize
	for !pack(items, size) {
		size *= 2
		if size > atlasMaxSize {
			return fmt.Errorf("fontatlas: glyphs do not fit a %dx%d atlas", atlasMaxSize, atlasMaxSize)
		}
	}

	a.img = image.NewAlpha(image.Rect(0, 0, size, size))
	inv := 1 / float32(size)
	for _, it := range items {
		g := glyph{
			advance: it.advance,
			x0:      float32(it.bx),
			y0:      float32(it.top),
			w:       it.w,
			h:       it.h,
		}
		if it.w > 0 && it.h > 0 {
			p := it.position
			d := font.Drawer{
				Dst:  a.img,
				Src:  image.Opaque,
				Face: it.sf.face,
				Dot:  fixed.P(p.X-it.bx, p.Y-it.top),
			}
			d.DrawString(string(it.r))
			g.u0, g.v0 = float32(p.X)*inv, float32(p.Y)*inv
			g.u1, g.v1 = float32(p.X+it.w)*inv, float32(p.Y+it.h)*inv
		}
		it.sf.glyphs[it.r] = g
	}
	return nil
}

// pack assigns positions with a row shelf packer and reports whether
// everything fits in a size x size square.
func pack(items []*pending, size int) bool {
	x, y, rowH := atlasPadding, atlasPadding, 0
	for _, it := range items {
		if it.w == 0 || it.h == 0 {
			continue
		}
		if it.w+2*atlasPadding > size {
			return false
		}
		if x+it.w+atlasPadding > size {
			x = atlasPadding
			y += rowH + atlasPadding
			rowH = 0
		}
		if y+it.h+atlasPadding > size {
			return false
		}
		it.position = image.Pt(x, y)
		x += it.w + atlasPadding
		rowH = max(rowH, it.h)
	}
	return true
}

// Close releases the parsed faces. The atlas image stays usable.
func (a *Atlas) Close() error {
	var errs []error
	seen := make(map[*sizedFace]bool)
	for class := range a.faces {
		for _, sf := range a.faces[class] {
			if seen[sf] {
				continue
			}
			seen[sf] = true
			errs = append(errs, sf.face.Close())
		}
	}
	return errors.Join(errs...)
}

// Image returns the atlas as an alpha image.
func (a *Atlas) Image() *image.Alpha { return a.img }

// Pixels returns the atlas coverage, one byte per pixel, rows tightly packed.
func (a *Atlas) Pixels() []byte { return a.img.Pix }

// Width returns the atlas width in pixels.
func (a *Atlas) Width() int { return a.img.Rect.Dx() }

// Height returns the atlas height in pixels.
func (a *Atlas) Height() int { return a.img.Rect.Dy() }

// SetTextureID records the renderer texture the atlas was uploaded to.
func (a *Atlas) SetTextureID(id uint32) { a.textureID = id }

// TextureID implements m3ui.FontProvider.
func (a *Atlas) TextureID() uint32 { return a.textureID }

// face returns the rasterized face closest to size and the scale from
// it to size.
func (a *Atlas) face(size float32, weight m3ui.FontWeight) (*sizedFace, float32) {
	faces := a.faces[classOf(weight)]
	best := faces[0]
	for _, sf := range faces[1:] {
		if absf(sf.size-size) < absf(best.size-size) {
			best = sf
		}
	}
	if size <= 0 {
		return best, 1
	}
	return best, size / best.size
}

func (sf *sizedFace) lookup(r rune) (glyph, rune) {
	if g, ok := sf.glyphs[r]; ok {
		return g, r
	}
	return sf.glyphs[fallbackRune], fallbackRune
}

func (sf *sizedFace) kerning(prev, r rune) float32 {
	if prev < 0 {
		return 0
	}
	key := [2]rune{prev, r}
	k, ok := sf.kern[key]
	if !ok {
		k = float32(sf.face.Kern(prev, r).Round())
		sf.kern[key] = k
	}
	return k
}

// MeasureText implements m3ui.FontProvider. The height is the ascent
// plus descent at size, whatever the text.
func (a *Atlas) MeasureText(text string, size float32, weight m3ui.FontWeight) m3ui.Vec2 {
	sf, scale := a.face(size, weight)
	var w float32
	prev := rune(-1)
	for _, r := range text {
		g, r := sf.lookup(r)
		w += sf.kerning(prev, r) + g.advance
		prev = r
	}
	return m3ui.Vec2{X: w * scale, Y: (sf.ascent + sf.descent) * scale}
}

// GlyphQuads implements m3ui.FontProvider.
func (a *Atlas) GlyphQuads(text string, x, y, size float32, weight m3ui.FontWeight) []m3ui.GlyphQuad {
	sf, scale := a.face(size, weight)
	a.quads = a.quads[:0]
	baseline := sf.ascent
	pen := float32(0)
	prev := rune(-1)
	for _, r := range text {
		g, r := sf.lookup(r)
		pen += sf.kerning(prev, r)
		prev = r
		if g.w > 0 && g.h > 0 {
			x0 := x + (pen+g.x0)*scale
			y0 := y + (baseline+g.y0)*scale
			a.quads = append(a.quads, m3ui.GlyphQuad{
				X0: x0, Y0: y0,
				X1: x0 + float32(g.w)*scale, Y1: y0 + float32(g.h)*scale,
				U0: g.u0, V0: g.v0, U1: g.u1, V1: g.v1,
			})
		}
		pen += g.advance
	}
	return a.quads
}

// LineHeight implements m3ui.FontProvider. It scales linearly with size
// whichever rasterized face serves it.
func (a *Atlas) LineHeight(size float32) float32 {
	sf, _ := a.face(size, m3ui.FontWeightRegular)
	return sf.lineEm * size
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
