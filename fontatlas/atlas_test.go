package fontatlas

import (
	"testing"

	"github.com/go-theft-auto/m3ui"
)

func newTestAtlas(t *testing.T) *Atlas {
	t.Helper()
	a, err := New(Options{Sizes: []float32{14, 20}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func TestNewRejectsBadSize(t *testing.T) {
	if _, err := New(Options{Sizes: []float32{0, 14}}); err == nil {
		t.Fatal("expected error for size 0")
	}
}

func TestNewRejectsBadFont(t *testing.T) {
	if _, err := New(Options{Regular: []byte("not a font")}); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestAtlasImage(t *testing.T) {
	a := newTestAtlas(t)
	w, h := a.Width(), a.Height()
	if w < atlasMinSize || w != h {
		t.Fatalf("atlas size = %dx%d", w, h)
	}
	if len(a.Pixels()) != w*h {
		t.Fatalf("len(Pixels) = %d, want %d", len(a.Pixels()), w*h)
	}
	covered := 0
	for _, p := range a.Pixels() {
		if p != 0 {
			covered++
		}
	}
	if covered == 0 {
		t.Fatal("atlas has no coverage")
	}
}

func TestMeasureText(t *testing.T) {
	a := newTestAtlas(t)

	if got := a.MeasureText("", 14, m3ui.FontWeightRegular).X; got != 0 {
		t.Errorf("empty width = %v", got)
	}
	one := a.MeasureText("a", 14, m3ui.FontWeightRegular)
	two := a.MeasureText("aa", 14, m3ui.FontWeightRegular)
	if one.X <= 0 || two.X <= one.X {
		t.Errorf("widths: a=%v aa=%v", one.X, two.X)
	}
	if one.Y <= 0 {
		t.Errorf("height = %v", one.Y)
	}

	// 28 is drawn from the 20px face scaled by 1.4.
	big := a.MeasureText("a", 28, m3ui.FontWeightRegular)
	base := a.MeasureText("a", 20, m3ui.FontWeightRegular)
	if d := big.X - base.X*1.4; d > 0.01 || d < -0.01 {
		t.Errorf("scaled width = %v, want %v", big.X, base.X*1.4)
	}
}

func TestUnknownRuneUsesFallback(t *testing.T) {
	a := newTestAtlas(t)
	q := a.MeasureText("?", 14, m3ui.FontWeightRegular)
	u := a.MeasureText("世", 14, m3ui.FontWeightRegular)
	if q != u {
		t.Errorf("unknown rune measured %v, want %v", u, q)
	}
}

func TestGlyphQuads(t *testing.T) {
	a := newTestAtlas(t)
	quads := a.GlyphQuads("a b", 10, 20, 14, m3ui.FontWeightRegular)
	if len(quads) != 2 {
		t.Fatalf("got %d quads, want 2 (space has no bitmap)", len(quads))
	}
	if quads[1].X0 <= quads[0].X0 {
		t.Errorf("quads not advancing: %v then %v", quads[0].X0, quads[1].X0)
	}
	for i, q := range quads {
		if q.X0 < 10 || q.Y0 < 20 {
			t.Errorf("quad %d starts before origin: %+v", i, q)
		}
		if q.X1 <= q.X0 || q.Y1 <= q.Y0 {
			t.Errorf("quad %d empty: %+v", i, q)
		}
		for _, uv := range []float32{q.U0, q.V0, q.U1, q.V1} {
			if uv < 0 || uv > 1 {
				t.Errorf("quad %d uv out of range: %+v", i, q)
			}
		}
	}
	end := quads[len(quads)-1].X1
	if w := a.MeasureText("a b", 14, m3ui.FontWeightRegular).X; end > 10+w+1 {
		t.Errorf("last quad ends at %v past measured width %v", end, w)
	}
}

func TestLineHeightScales(t *testing.T) {
	a := newTestAtlas(t)
	h14 := a.LineHeight(14)
	h28 := a.LineHeight(28)
	if h14 < 14 {
		t.Errorf("LineHeight(14) = %v", h14)
	}
	if d := h28 - 2*h14; d > 0.01 || d < -0.01 {
		t.Errorf("LineHeight(28) = %v, want %v", h28, 2*h14)
	}
	// 19 is served by the 20px face.
	if h19, want := a.LineHeight(19), h14*19/14; absf(h19-want) > 0.05 {
		t.Errorf("LineHeight(19) = %v, want %v", h19, want)
	}
}

func TestWeightClasses(t *testing.T) {
	for w, want := range map[m3ui.FontWeight]weightClass{
		m3ui.FontWeightThin:     classRegular,
		m3ui.FontWeightRegular:  classRegular,
		m3ui.FontWeightSemibold: classMedium,
		m3ui.FontWeightBlack:    classBold,
	} {
		if got := classOf(w); got != want {
			t.Errorf("classOf(%d) = %d, want %d", w, got, want)
		}
	}
}

func TestTextureID(t *testing.T) {
	a := NewBasic()
	if a.TextureID() != 0 {
		t.Fatal("texture id set before upload")
	}
	a.SetTextureID(7)
	if a.TextureID() != 7 {
		t.Fatalf("TextureID = %d", a.TextureID())
	}
	if w := a.MeasureText("abc", 13, m3ui.FontWeightBold).X; w != 21 {
		t.Errorf("basic width = %v, want 21", w)
	}
}
