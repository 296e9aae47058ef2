// Package opengl draws m3ui draw lists with OpenGL 4.1 core and feeds
// m3ui input from GLFW windows.
package opengl

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/m3ui"
)

// Renderer implements m3ui.Renderer.
type Renderer struct {
	shader       uint32
	vao, vbo     uint32
	ebo          uint32
	fontTex      uint32
	projLoc      int32
	texLoc       int32
	useTexLoc    int32
	isRGBATexLoc int32
	width        int
	height       int

	textures     []uint32 // owned, deleted by Delete
	rgbaTextures map[uint32]bool
}

var _ m3ui.Renderer = (*Renderer)(nil)

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
` + "\x00"

// Alpha-only textures carry coverage in R and take their color from the
// vertex; RGBA textures are modulated by it.
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D tex0;
uniform bool useTexture;
uniform bool isRGBATexture;

void main() {
    if (!useTexture) {
        FragColor = Color;
        return;
    }
    vec4 t = texture(tex0, TexCoord);
    if (isRGBATexture) {
        FragColor = t * Color;
    } else {
        FragColor = vec4(Color.rgb, Color.a * t.r);
    }
}
` + "\x00"

// NewRenderer creates a renderer for a framebuffer of the given size.
// A current OpenGL 4.1 context is required.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:        width,
		height:       height,
		rgbaTextures: make(map[uint32]bool),
	}

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("create shader: %w", err)
	}
	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("tex0\x00"))
	r.useTexLoc = gl.GetUniformLocation(r.shader, gl.Str("useTexture\x00"))
	r.isRGBATexLoc = gl.GetUniformLocation(r.shader, gl.Str("isRGBATexture\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Pos (2 floats), TexCoord (2 floats), Color (packed 0xAABBGGRR).
	stride := int32(unsafe.Sizeof(m3ui.Vertex{}))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(m3ui.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(m3ui.Vertex{}.Color))
	gl.EnableVertexAttribArray(2)
	gl.BindVertexArray(0)

	r.fontTex = r.createFontTexture()
	return r, nil
}

// FontTextureID returns the built-in bitmap font texture.
func (r *Renderer) FontTextureID() uint32 {
	return r.fontTex
}

// RegisterRGBATexture marks a texture as full color. Textures default to
// alpha-only coverage tinted by the vertex color.
func (r *Renderer) RegisterRGBATexture(textureID uint32) {
	r.rgbaTextures[textureID] = true
}

// UnregisterRGBATexture forgets a texture passed to RegisterRGBATexture.
func (r *Renderer) UnregisterRGBATexture(textureID uint32) {
	delete(r.rgbaTextures, textureID)
}

// Resize updates the framebuffer size used for projection and scissors.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// glState is the pipeline state Render changes and restores.
type glState struct {
	program            int32
	blendSrc, blendDst int32
	scissorBox         [4]int32
	blend, depth, cull bool
	scissor            bool
}

func saveState() glState {
	var s glState
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &s.program)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &s.blendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &s.blendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &s.scissorBox[0])
	s.blend = gl.IsEnabled(gl.BLEND)
	s.depth = gl.IsEnabled(gl.DEPTH_TEST)
	s.cull = gl.IsEnabled(gl.CULL_FACE)
	s.scissor = gl.IsEnabled(gl.SCISSOR_TEST)
	return s
}

func setEnabled(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

func (s glState) restore() {
	gl.UseProgram(uint32(s.program))
	gl.BlendFunc(uint32(s.blendSrc), uint32(s.blendDst))
	setEnabled(gl.BLEND, s.blend)
	setEnabled(gl.DEPTH_TEST, s.depth)
	setEnabled(gl.CULL_FACE, s.cull)
	setEnabled(gl.SCISSOR_TEST, s.scissor)
	gl.Scissor(s.scissorBox[0], s.scissorBox[1], s.scissorBox[2], s.scissorBox[3])
	gl.BindVertexArray(0)
}

// scissorRect converts a top-left clip rectangle to a GL scissor box,
// clamped to the framebuffer. ok is false when nothing is visible.
func scissorRect(clip [4]float32, fbHeight int) (x, y, w, h int32, ok bool) {
	x = int32(clip[0])
	y = int32(float32(fbHeight) - clip[3])
	w = int32(clip[2] - clip[0])
	h = int32(clip[3] - clip[1])
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	return x, y, w, h, w > 0 && h > 0
}

// Render draws a finalized draw list over the current framebuffer and
// restores the GL state it touched.
func (r *Renderer) Render(dl *m3ui.DrawList) error {
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}
	if r.shader == 0 {
		return fmt.Errorf("render: renderer deleted")
	}
	dl.Finalize()

	saved := saveState()
	defer saved.restore()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.shader)
	proj := orthoMatrix(0, float32(r.width), float32(r.height), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(m3ui.Vertex{})),
		gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2,
		gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}
		x, y, w, h, ok := scissorRect(cmd.ClipRect, r.height)
		if !ok {
			continue
		}
		gl.Scissor(x, y, w, h)

		if cmd.TextureID != 0 {
			gl.BindTexture(gl.TEXTURE_2D, cmd.TextureID)
			gl.Uniform1i(r.useTexLoc, 1)
			rgba := int32(0)
			if r.rgbaTextures[cmd.TextureID] {
				rgba = 1
			}
			gl.Uniform1i(r.isRGBATexLoc, rgba)
		} else {
			gl.Uniform1i(r.useTexLoc, 0)
			gl.Uniform1i(r.isRGBATexLoc, 0)
		}

		gl.DrawElementsBaseVertexWithOffset(
			gl.TRIANGLES,
			int32(cmd.ElemCount),
			gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2,
			int32(cmd.VertexOffset),
		)
	}
	return nil
}

// Delete releases every GL object the renderer created, including
// textures from UploadAtlas.
func (r *Renderer) Delete() {
	for i := range r.textures {
		gl.DeleteTextures(1, &r.textures[i])
	}
	r.textures, r.fontTex = nil, 0
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
		r.shader = 0
	}
}

// Built-in font grid: ASCII 32-127 in 16 columns by 6 rows of 7x13 cells,
// rasterized from the x/image basic face. m3ui.DrawList.AddMonoText
// addresses cells by grid fraction, so the cell size is free.
const (
	monoCols  = 16
	monoRows  = 6
	monoCellW = 7
	monoCellH = 13
)

// monoFontImage rasterizes the built-in bitmap font into an alpha image.
func monoFontImage() *image.Alpha {
	face := basicfont.Face7x13
	img := image.NewAlpha(image.Rect(0, 0, monoCols*monoCellW, monoRows*monoCellH))
	ascent := face.Metrics().Ascent.Ceil()
	d := font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for ch := rune(32); ch < 128; ch++ {
		idx := int(ch - 32)
		col, row := idx%monoCols, idx/monoCols
		d.Dot = fixed.P(col*monoCellW, row*monoCellH+ascent)
		d.DrawString(string(ch))
	}
	return img
}

// createFontTexture uploads the built-in bitmap font.
func (r *Renderer) createFontTexture() uint32 {
	img := monoFontImage()
	return r.uploadAlpha(img.Pix, img.Rect.Dx(), img.Rect.Dy(), gl.NEAREST)
}

// UploadAtlas creates an alpha-only texture from one coverage byte per
// pixel, such as a fontatlas.Atlas, and returns its id. Uploaded textures
// are released by Delete.
func (r *Renderer) UploadAtlas(pix []byte, width, height int) uint32 {
	return r.uploadAlpha(pix, width, height, gl.LINEAR)
}

func (r *Renderer) uploadAlpha(pix []byte, width, height int, filter int32) uint32 {
	if width <= 0 || height <= 0 || len(pix) < width*height {
		return 0
	}
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(width), int32(height), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	r.textures = append(r.textures, tex)
	return tex
}

func compileShader(kind uint32, source, name string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
		log := make([]byte, n+1)
		gl.GetShaderInfoLog(shader, n, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile %s shader: %s", name, log)
	}
	return shader, nil
}

// createShaderProgram compiles and links a program from two sources.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexSource, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
		log := make([]byte, n+1)
		gl.GetProgramInfoLog(program, n, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link shader program: %s", log)
	}
	return program, nil
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
