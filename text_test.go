package m3ui

import (
	"slices"
	"testing"
)

// byteWidth measures one unit per byte.
func byteWidth(s string) float32 { return float32(len(s)) }

func TestTruncateText(t *testing.T) {
	tests := []struct {
		text  string
		width float32
		want  string
	}{
		{"abc", 5, "abc"},
		{"abcdefgh", 5, "ab..."},
		{"abcdefgh", 2, "..."},
		{"", 0, ""},
	}
	for _, tt := range tests {
		if got := TruncateText(byteWidth, tt.text, tt.width); got != tt.want {
			t.Errorf("TruncateText(%q, %v) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestTruncateKeepsCombiningMarks(t *testing.T) {
	// "e" + U+0301 is one character; it is dropped whole.
	got := TruncateText(byteWidth, "abe\u0301cd", 6)
	if got != "ab..." {
		t.Fatalf("got %q", got)
	}
}

func TestClusters(t *testing.T) {
	got := clusters("ae\u0301b")
	want := []string{"a", "e\u0301", "b"}
	if !slices.Equal(got, want) {
		t.Fatalf("clusters = %q, want %q", got, want)
	}
}

func TestWrapText(t *testing.T) {
	ctx := NewContext()
	// 10px per character at size 20.
	lines := ctx.WrapText("the quick brown fox", 100, 20, FontWeightRegular)
	want := []string{"the quick", "brown fox"}
	if !slices.Equal(lines, want) {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
	if got := ctx.WrapText("   ", 100, 20, FontWeightRegular); got != nil {
		t.Errorf("blank text = %q", got)
	}
	if got := ctx.WrapText("extraordinarily long", 50, 20, FontWeightRegular); !slices.Equal(got, []string{"extraordinarily", "long"}) {
		t.Errorf("long word = %q", got)
	}
}

func TestLabelWrapHeight(t *testing.T) {
	h := newHarness(t)
	var wrapped, single Rect
	h.frame(func(ctx *Context) {
		ctx.Begin(Rect{W: 100, H: 300})
		wrapped = ctx.Label("the quick brown fox", TextOptions{Size: 20, Wrap: true})
		single = ctx.Label("the quick brown fox", TextOptions{Size: 20})
		ctx.End()
	})
	if wrapped.H != 50 {
		t.Errorf("wrapped label height = %v, want two lines of 25", wrapped.H)
	}
	if single.H != 25 {
		t.Errorf("single label height = %v, want 25", single.H)
	}
}

func TestTextSize(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *Context) {
		got := ctx.Text(Rect{W: 100, H: 20}, "abcd", TextOptions{Size: 10})
		if got != (Vec2{X: 20, Y: 10}) {
			t.Errorf("Text size = %v", got)
		}
		got = ctx.Text(Rect{W: 30, H: 20}, "abcdefgh", TextOptions{Size: 10, Truncate: true})
		if got.X > 30 {
			t.Errorf("truncated width %v exceeds bounds", got.X)
		}
	})
}
