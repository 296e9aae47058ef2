// Package m3ui is an immediate-mode Material-style widget toolkit.
// State lives in a dedicated Context type (not context.Context) that is
// rebuilt every frame and passed to every layout and widget call.
package m3ui

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Contains returns true if the point is inside the rectangle.
// Empty rectangles contain nothing.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Intersect returns the overlapping area of two rectangles.
// The result has zero size when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := maxf(r.X, other.X)
	y0 := maxf(r.Y, other.Y)
	x1 := minf(r.X+r.W, other.X+other.W)
	y1 := minf(r.Y+r.H, other.Y+other.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Inset shrinks the rectangle by d on every side.
func (r Rect) Inset(d float32) Rect {
	out := Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Vertex represents a vertex for UI rendering.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    Color      // RGBA packed color
}

// DrawCmd represents a single draw command.
// Commands are batched by texture and clip rectangle.
type DrawCmd struct {
	ElemCount    uint32     // Number of indices to draw
	ClipRect     [4]float32 // Clip rectangle (x1, y1, x2, y2)
	TextureID    uint32     // Texture ID (0 = no texture)
	VertexOffset uint32     // Offset into vertex buffer
	IndexOffset  uint32     // Offset into index buffer
}

// Color is a packed RGBA color laid out as 0xAABBGGRR.
// A color with zero alpha is "unset": widgets substitute the theme color.
type Color uint32

// Color constants
const (
	ColorWhite       Color = 0xFFFFFFFF
	ColorBlack       Color = 0xFF000000
	ColorTransparent Color = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

// Hex creates an opaque color from a 0xRRGGBB literal.
func Hex(rgb uint32) Color {
	return RGBA(uint8(rgb>>16), uint8(rgb>>8), uint8(rgb), 0xFF)
}

// RGBA extracts the components of a packed color.
func (c Color) RGBA() (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// IsUnset reports whether the color has zero alpha.
func (c Color) IsUnset() bool {
	return c&0xFF000000 == 0
}

// WithAlpha returns the color with its alpha scaled to a (0..1).
func (c Color) WithAlpha(a float32) Color {
	r, g, b, _ := c.RGBA()
	return RGBA(r, g, b, uint8(clampf(a, 0, 1)*255))
}

// Blend composites overlay on top of c with the given opacity.
// Used for Material state layers (hover/press tints).
func (c Color) Blend(overlay Color, opacity float32) Color {
	r0, g0, b0, a0 := c.RGBA()
	r1, g1, b1, _ := overlay.RGBA()
	t := clampf(opacity, 0, 1)
	mix := func(a, b uint8) uint8 {
		return uint8(float32(a)*(1-t) + float32(b)*t)
	}
	return RGBA(mix(r0, r1), mix(g0, g1), mix(b0, b1), a0)
}

// pick returns override unless it is unset.
func pick(override, fallback Color) Color {
	if override.IsUnset() {
		return fallback
	}
	return override
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// minf returns the minimum of two float32 values.
func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
