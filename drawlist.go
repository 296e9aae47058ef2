package m3ui

import (
	"math"
	"sync"
)

// drawListPool reuses DrawList buffers between frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// noClip is the clip rectangle used when nothing is pushed.
var noClip = [4]float32{-1e9, -1e9, 1e9, 1e9}

// DrawList accumulates draw commands for a frame.
// Primitives are batched by texture and clip rectangle.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint16  // Index data

	clipStack    [][4]float32
	currentClip  [4]float32
	textureID    uint32
	cmdOffset    uint32 // Vertex offset for current command
	idxCmdOffset uint32 // Index offset for current command
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = noClip
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// PushClipRect pushes a scissor rectangle, intersected with the current one.
func (dl *DrawList) PushClipRect(r Rect) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	cur := dl.currentClip
	dl.currentClip = [4]float32{
		maxf(cur[0], r.X),
		maxf(cur[1], r.Y),
		minf(cur[2], r.X+r.W),
		minf(cur[3], r.Y+r.H),
	}
	dl.splitDraw()
}

// PopClipRect pops the clip rectangle stack.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw()
	}
}

// ClipDepth returns the number of pushed clip rectangles.
func (dl *DrawList) ClipDepth() int {
	return len(dl.clipStack)
}

// CurrentClip returns the active clip rectangle.
func (dl *DrawList) CurrentClip() Rect {
	c := dl.currentClip
	return Rect{X: c[0], Y: c[1], W: c[2] - c[0], H: c[3] - c[1]}
}

// SetTexture sets the current texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID != textureID {
		dl.textureID = textureID
		dl.splitDraw()
	}
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// addVertices adds vertices and returns the starting index
// relative to the current command.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.cmdOffset)+len(verts) > math.MaxUint16 {
		dl.splitDraw()
	}
	startIdx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return startIdx
}

func (dl *DrawList) addIndices(indices ...uint16) {
	dl.IdxBuffer = append(dl.IdxBuffer, indices...)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(r Rect, color Color) {
	if color.IsUnset() || r.Empty() {
		return
	}
	idx := dl.addVertices(
		Vertex{Pos: [2]float32{r.X, r.Y}, Color: color},
		Vertex{Pos: [2]float32{r.X + r.W, r.Y}, Color: color},
		Vertex{Pos: [2]float32{r.X + r.W, r.Y + r.H}, Color: color},
		Vertex{Pos: [2]float32{r.X, r.Y + r.H}, Color: color},
	)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRectOutline draws a rectangle outline.
func (dl *DrawList) AddRectOutline(r Rect, color Color, thickness float32) {
	if color.IsUnset() {
		return
	}
	dl.AddRect(Rect{X: r.X, Y: r.Y, W: r.W, H: thickness}, color)
	dl.AddRect(Rect{X: r.X, Y: r.Y + r.H - thickness, W: r.W, H: thickness}, color)
	dl.AddRect(Rect{X: r.X, Y: r.Y + thickness, W: thickness, H: r.H - 2*thickness}, color)
	dl.AddRect(Rect{X: r.X + r.W - thickness, Y: r.Y + thickness, W: thickness, H: r.H - 2*thickness}, color)
}

// AddRoundedRect draws a filled rectangle with circular corners.
func (dl *DrawList) AddRoundedRect(r Rect, radius float32, color Color) {
	if color.IsUnset() || r.Empty() {
		return
	}
	radius = minf(radius, minf(r.W, r.H)/2)
	if radius <= 0.5 {
		dl.AddRect(r, color)
		return
	}
	// Center cross plus four quarter discs.
	dl.AddRect(Rect{X: r.X + radius, Y: r.Y, W: r.W - 2*radius, H: r.H}, color)
	dl.AddRect(Rect{X: r.X, Y: r.Y + radius, W: radius, H: r.H - 2*radius}, color)
	dl.AddRect(Rect{X: r.X + r.W - radius, Y: r.Y + radius, W: radius, H: r.H - 2*radius}, color)
	dl.AddCircleSector(Vec2{r.X + radius, r.Y + radius}, radius, 180, 270, 8, color)
	dl.AddCircleSector(Vec2{r.X + r.W - radius, r.Y + radius}, radius, 270, 360, 8, color)
	dl.AddCircleSector(Vec2{r.X + r.W - radius, r.Y + r.H - radius}, radius, 0, 90, 8, color)
	dl.AddCircleSector(Vec2{r.X + radius, r.Y + r.H - radius}, radius, 90, 180, 8, color)
}

// AddRoundedRectOutline draws the outline of a rounded rectangle.
func (dl *DrawList) AddRoundedRectOutline(r Rect, radius float32, color Color, thickness float32) {
	if color.IsUnset() || r.Empty() {
		return
	}
	radius = minf(radius, minf(r.W, r.H)/2)
	dl.AddLine(Vec2{r.X + radius, r.Y}, Vec2{r.X + r.W - radius, r.Y}, color, thickness)
	dl.AddLine(Vec2{r.X + radius, r.Y + r.H}, Vec2{r.X + r.W - radius, r.Y + r.H}, color, thickness)
	dl.AddLine(Vec2{r.X, r.Y + radius}, Vec2{r.X, r.Y + r.H - radius}, color, thickness)
	dl.AddLine(Vec2{r.X + r.W, r.Y + radius}, Vec2{r.X + r.W, r.Y + r.H - radius}, color, thickness)
	dl.AddArc(Vec2{r.X + radius, r.Y + radius}, radius, 180, 270, 8, color, thickness)
	dl.AddArc(Vec2{r.X + r.W - radius, r.Y + radius}, radius, 270, 360, 8, color, thickness)
	dl.AddArc(Vec2{r.X + r.W - radius, r.Y + r.H - radius}, radius, 0, 90, 8, color, thickness)
	dl.AddArc(Vec2{r.X + radius, r.Y + r.H - radius}, radius, 90, 180, 8, color, thickness)
}

// AddLine draws a line between two points as a quad.
func (dl *DrawList) AddLine(p1, p2 Vec2, color Color, thickness float32) {
	if color.IsUnset() {
		return
	}
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	inv := float32(1)
	if dx != 0 || dy != 0 {
		inv = 1 / float32(math.Sqrt(float64(dx*dx+dy*dy)))
	}
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{p1.X + nx, p1.Y + ny}, Color: color},
		Vertex{Pos: [2]float32{p2.X + nx, p2.Y + ny}, Color: color},
		Vertex{Pos: [2]float32{p2.X - nx, p2.Y - ny}, Color: color},
		Vertex{Pos: [2]float32{p1.X - nx, p1.Y - ny}, Color: color},
	)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddTriangle draws a filled triangle.
func (dl *DrawList) AddTriangle(p1, p2, p3 Vec2, color Color) {
	if color.IsUnset() {
		return
	}
	idx := dl.addVertices(
		Vertex{Pos: [2]float32{p1.X, p1.Y}, Color: color},
		Vertex{Pos: [2]float32{p2.X, p2.Y}, Color: color},
		Vertex{Pos: [2]float32{p3.X, p3.Y}, Color: color},
	)
	dl.addIndices(idx, idx+1, idx+2)
}

// AddCircleSector draws a filled pie slice. Angles are in degrees,
// measured clockwise from +X in screen space.
func (dl *DrawList) AddCircleSector(center Vec2, radius, startDeg, endDeg float32, segments int, color Color) {
	if color.IsUnset() || radius <= 0 {
		return
	}
	if segments < 1 {
		segments = 1
	}
	verts := make([]Vertex, 0, segments+2)
	verts = append(verts, Vertex{Pos: [2]float32{center.X, center.Y}, Color: color})
	for i := 0; i <= segments; i++ {
		p := arcPoint(center, radius, startDeg+(endDeg-startDeg)*float32(i)/float32(segments))
		verts = append(verts, Vertex{Pos: [2]float32{p.X, p.Y}, Color: color})
	}
	idx := dl.addVertices(verts...)
	for i := 1; i <= segments; i++ {
		dl.addIndices(idx, idx+uint16(i), idx+uint16(i+1))
	}
}

// AddCircle draws a filled circle.
func (dl *DrawList) AddCircle(center Vec2, radius float32, color Color) {
	segments := int(radius)
	if segments < 12 {
		segments = 12
	}
	if segments > 48 {
		segments = 48
	}
	dl.AddCircleSector(center, radius, 0, 360, segments, color)
}

// AddArc draws an arc outline as connected line quads.
func (dl *DrawList) AddArc(center Vec2, radius, startDeg, endDeg float32, segments int, color Color, thickness float32) {
	if color.IsUnset() || radius <= 0 || segments < 1 {
		return
	}
	prev := arcPoint(center, radius, startDeg)
	for i := 1; i <= segments; i++ {
		p := arcPoint(center, radius, startDeg+(endDeg-startDeg)*float32(i)/float32(segments))
		dl.AddLine(prev, p, color, thickness)
		prev = p
	}
}

func arcPoint(center Vec2, radius, deg float32) Vec2 {
	rad := float64(deg) * math.Pi / 180
	return Vec2{
		X: center.X + radius*float32(math.Cos(rad)),
		Y: center.Y + radius*float32(math.Sin(rad)),
	}
}

// AddMonoText draws text with a renderer's built-in bitmap font: a
// texture holding ASCII 32-127 as a 16x6 grid of equal cells.
func (dl *DrawList) AddMonoText(pos Vec2, text string, color Color, charWidth, charHeight float32) {
	if color.IsUnset() || len(text) == 0 {
		return
	}
	i := 0
	for _, r := range text {
		char := r
		if char < 32 || char > 127 {
			char = '?'
		}
		idx := int(char - 32)
		col := float32(idx % 16)
		row := float32(idx / 16)

		u0 := col * 8 / 128
		v0 := row * 8 / 48
		u1 := (col + 1) * 8 / 128
		v1 := (row + 1) * 8 / 48

		px := pos.X + float32(i)*charWidth
		vtxIdx := dl.addVertices(
			Vertex{Pos: [2]float32{px, pos.Y}, TexCoord: [2]float32{u0, v0}, Color: color},
			Vertex{Pos: [2]float32{px + charWidth, pos.Y}, TexCoord: [2]float32{u1, v0}, Color: color},
			Vertex{Pos: [2]float32{px + charWidth, pos.Y + charHeight}, TexCoord: [2]float32{u1, v1}, Color: color},
			Vertex{Pos: [2]float32{px, pos.Y + charHeight}, TexCoord: [2]float32{u0, v1}, Color: color},
		)
		dl.addIndices(vtxIdx, vtxIdx+1, vtxIdx+2, vtxIdx, vtxIdx+2, vtxIdx+3)
		i++
	}
}

// GlyphQuad is a single glyph's screen and atlas rectangle.
type GlyphQuad struct {
	X0, Y0 float32 // Screen coordinates (top-left)
	X1, Y1 float32 // Screen coordinates (bottom-right)
	U0, V0 float32 // Texture coordinates (top-left)
	U1, V1 float32 // Texture coordinates (bottom-right)
}

// AddGlyphQuads draws glyph quads produced by a FontProvider.
func (dl *DrawList) AddGlyphQuads(quads []GlyphQuad, color Color) {
	if color.IsUnset() || len(quads) == 0 {
		return
	}
	for _, q := range quads {
		vtxIdx := dl.addVertices(
			Vertex{Pos: [2]float32{q.X0, q.Y0}, TexCoord: [2]float32{q.U0, q.V0}, Color: color},
			Vertex{Pos: [2]float32{q.X1, q.Y0}, TexCoord: [2]float32{q.U1, q.V0}, Color: color},
			Vertex{Pos: [2]float32{q.X1, q.Y1}, TexCoord: [2]float32{q.U1, q.V1}, Color: color},
			Vertex{Pos: [2]float32{q.X0, q.Y1}, TexCoord: [2]float32{q.U0, q.V1}, Color: color},
		)
		dl.addIndices(vtxIdx, vtxIdx+1, vtxIdx+2, vtxIdx, vtxIdx+2, vtxIdx+3)
	}
}

// Finalize closes the last command and drops empty ones. It must be
// called after all primitives are added and may be called again.
func (dl *DrawList) Finalize() {
	if n := len(dl.CmdBuffer); n > 0 && dl.CmdBuffer[n-1].IndexOffset == dl.idxCmdOffset {
		dl.CmdBuffer[n-1].ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}

// Empty reports whether nothing was drawn.
func (dl *DrawList) Empty() bool {
	return len(dl.IdxBuffer) == 0
}
