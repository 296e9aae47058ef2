package m3ui

import (
	"strings"
	"unicode/utf8"
)

// iconPainter draws an icon inside a square.
type iconPainter func(dl *DrawList, r Rect, c Color)

// icons are drawn from primitives, so no icon font is needed.
var icons = map[string]iconPainter{
	"close": func(dl *DrawList, r Rect, c Color) {
		t := r.W / 10
		dl.AddLine(Vec2{r.X + r.W*0.2, r.Y + r.H*0.2}, Vec2{r.X + r.W*0.8, r.Y + r.H*0.8}, c, t)
		dl.AddLine(Vec2{r.X + r.W*0.8, r.Y + r.H*0.2}, Vec2{r.X + r.W*0.2, r.Y + r.H*0.8}, c, t)
	},
	"check": func(dl *DrawList, r Rect, c Color) {
		t := r.W / 8
		mid := Vec2{r.X + r.W*0.4, r.Y + r.H*0.72}
		dl.AddLine(Vec2{r.X + r.W*0.18, r.Y + r.H*0.5}, mid, c, t)
		dl.AddLine(mid, Vec2{r.X + r.W*0.82, r.Y + r.H*0.28}, c, t)
	},
	"add": func(dl *DrawList, r Rect, c Color) {
		t := r.W / 9
		dl.AddLine(Vec2{r.X + r.W*0.2, r.Y + r.H/2}, Vec2{r.X + r.W*0.8, r.Y + r.H/2}, c, t)
		dl.AddLine(Vec2{r.X + r.W/2, r.Y + r.H*0.2}, Vec2{r.X + r.W/2, r.Y + r.H*0.8}, c, t)
	},
	"remove": func(dl *DrawList, r Rect, c Color) {
		dl.AddLine(Vec2{r.X + r.W*0.2, r.Y + r.H/2}, Vec2{r.X + r.W*0.8, r.Y + r.H/2}, c, r.W/9)
	},
	"search": func(dl *DrawList, r Rect, c Color) {
		t := r.W / 10
		center := Vec2{r.X + r.W*0.42, r.Y + r.H*0.42}
		dl.AddArc(center, r.W*0.24, 0, 360, 16, c, t)
		dl.AddLine(Vec2{r.X + r.W*0.6, r.Y + r.H*0.6}, Vec2{r.X + r.W*0.85, r.Y + r.H*0.85}, c, t*1.4)
	},
	"settings": func(dl *DrawList, r Rect, c Color) {
		center := r.Center()
		for i := 0; i < 8; i++ {
			a := float32(i) * 45
			dl.AddLine(arcPoint(center, r.W*0.2, a), arcPoint(center, r.W*0.42, a), c, r.W/7)
		}
		dl.AddCircle(center, r.W*0.3, c)
	},
	"delete": func(dl *DrawList, r Rect, c Color) {
		dl.AddRect(Rect{X: r.X + r.W*0.18, Y: r.Y + r.H*0.2, W: r.W * 0.64, H: r.H * 0.08}, c)
		dl.AddRect(Rect{X: r.X + r.W*0.4, Y: r.Y + r.H*0.12, W: r.W * 0.2, H: r.H * 0.08}, c)
		dl.AddRect(Rect{X: r.X + r.W*0.26, Y: r.Y + r.H*0.32, W: r.W * 0.48, H: r.H * 0.52}, c)
	},
	"help": func(dl *DrawList, r Rect, c Color) {
		center := r.Center()
		dl.AddArc(center, r.W*0.4, 0, 360, 20, c, r.W/10)
		dl.AddArc(Vec2{center.X, r.Y + r.H*0.4}, r.W*0.12, 180, 405, 8, c, r.W/10)
		dl.AddLine(Vec2{center.X, r.Y + r.H*0.5}, Vec2{center.X, r.Y + r.H*0.62}, c, r.W/10)
		dl.AddCircle(Vec2{center.X, r.Y + r.H*0.73}, r.W*0.05, c)
	},
	"person": func(dl *DrawList, r Rect, c Color) {
		dl.AddCircle(Vec2{r.X + r.W/2, r.Y + r.H*0.33}, r.W*0.18, c)
		dl.AddCircleSector(Vec2{r.X + r.W/2, r.Y + r.H*0.9}, r.W*0.34, 180, 360, 12, c)
	},
	"dashboard": func(dl *DrawList, r Rect, c Color) {
		g := r.W * 0.08
		w := (r.W*0.76 - g) / 2
		x0, y0 := r.X+r.W*0.12, r.Y+r.H*0.12
		dl.AddRect(Rect{X: x0, Y: y0, W: w, H: w * 1.3}, c)
		dl.AddRect(Rect{X: x0 + w + g, Y: y0, W: w, H: w * 0.7}, c)
		dl.AddRect(Rect{X: x0, Y: y0 + w*1.3 + g, W: w, H: w * 0.7}, c)
		dl.AddRect(Rect{X: x0 + w + g, Y: y0 + w*0.7 + g, W: w, H: w * 1.3}, c)
	},
	"menu": func(dl *DrawList, r Rect, c Color) {
		for _, f := range []float32{0.28, 0.5, 0.72} {
			dl.AddLine(Vec2{r.X + r.W*0.18, r.Y + r.H*f}, Vec2{r.X + r.W*0.82, r.Y + r.H*f}, c, r.W/10)
		}
	},
	"visibility": func(dl *DrawList, r Rect, c Color) {
		center := r.Center()
		dl.AddArc(Vec2{center.X, center.Y + r.H*0.3}, r.W*0.45, 220, 320, 10, c, r.W/12)
		dl.AddArc(Vec2{center.X, center.Y - r.H*0.3}, r.W*0.45, 40, 140, 10, c, r.W/12)
		dl.AddCircle(center, r.W*0.14, c)
	},
	"arrow_left": func(dl *DrawList, r Rect, c Color) {
		dl.AddTriangle(Vec2{r.X + r.W*0.3, r.Y + r.H/2}, Vec2{r.X + r.W*0.65, r.Y + r.H*0.25}, Vec2{r.X + r.W*0.65, r.Y + r.H*0.75}, c)
	},
	"arrow_right": func(dl *DrawList, r Rect, c Color) {
		dl.AddTriangle(Vec2{r.X + r.W*0.7, r.Y + r.H/2}, Vec2{r.X + r.W*0.35, r.Y + r.H*0.75}, Vec2{r.X + r.W*0.35, r.Y + r.H*0.25}, c)
	},
	"arrow_up": func(dl *DrawList, r Rect, c Color) {
		dl.AddTriangle(Vec2{r.X + r.W/2, r.Y + r.H*0.3}, Vec2{r.X + r.W*0.75, r.Y + r.H*0.65}, Vec2{r.X + r.W*0.25, r.Y + r.H*0.65}, c)
	},
	"arrow_down": func(dl *DrawList, r Rect, c Color) {
		dl.AddTriangle(Vec2{r.X + r.W/2, r.Y + r.H*0.7}, Vec2{r.X + r.W*0.25, r.Y + r.H*0.35}, Vec2{r.X + r.W*0.75, r.Y + r.H*0.35}, c)
	},
}

// HasIcon reports whether name is a built-in icon.
func HasIcon(name string) bool {
	_, ok := icons[name]
	return ok
}

// Icon draws the named icon centered in bounds. Unknown names draw
// their first letter.
func (ctx *Context) Icon(bounds Rect, name string, color Color) {
	if name == "" || bounds.Empty() {
		return
	}
	color = pick(color, ctx.theme.Colors.OnSurfaceVariant)
	side := minf(bounds.W, bounds.H)
	sq := Rect{X: bounds.X + (bounds.W-side)/2, Y: bounds.Y + (bounds.H-side)/2, W: side, H: side}
	if paint, ok := icons[name]; ok {
		paint(ctx.target(), sq, color)
		return
	}
	r, _ := utf8.DecodeRuneInString(name)
	ctx.DrawTextCentered(strings.ToUpper(string(r)), sq, side*0.8, FontWeightMedium, color)
}
