// Command gen renders each widget with sample data in a hidden window,
// reads back the framebuffer and saves JPEG screenshots to doc/imgs/,
// once per theme.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/m3ui"
	"github.com/go-theft-auto/m3ui/backend/opengl"
	"github.com/go-theft-auto/m3ui/fontatlas"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		slog.Error("screenshot generation failed", "err", err)
		os.Exit(1)
	}
}

// screenshot is one widget capture.
type screenshot struct {
	name          string
	width, height int
	draw          func(ctx *m3ui.Context)
	frames        int // frames to render before capture; 2 when 0
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	atlas, err := fontatlas.New(fontatlas.Options{})
	if err != nil {
		return err
	}
	defer atlas.Close()
	atlas.SetTextureID(renderer.UploadAtlas(atlas.Pixels(), atlas.Width(), atlas.Height()))

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, dark := range []bool{false, true} {
		suffix := "light"
		if dark {
			suffix = "dark"
		}
		for _, s := range shots {
			// Fresh GUI per capture so widget state does not leak.
			ui := m3ui.New(renderer, m3ui.WithDarkMode(dark), m3ui.WithFontProvider(atlas))
			name := s.name + "-" + suffix
			if err := capture(renderer, ui, s, filepath.Join(outDir, name+".jpg")); err != nil {
				return fmt.Errorf("capture %s: %w", name, err)
			}
			slog.Info("captured", "file", name+".jpg", "width", s.width, "height", s.height)
		}
	}
	slog.Info("done", "count", 2*len(shots), "dir", outDir)
	return nil
}

// capture renders s and writes it to path. Only the renderer projection
// is resized: the hidden window stays 800x600, larger than every shot.
func capture(renderer *opengl.Renderer, ui *m3ui.GUI, s screenshot, path string) error {
	renderer.Resize(s.width, s.height)
	frames := s.frames
	if frames <= 0 {
		frames = 2
	}
	bg := ui.Theme().Colors.Surface
	for f := 0; f < frames; f++ {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		r, g, b, _ := bg.RGBA()
		gl.ClearColor(float32(r)/255, float32(g)/255, float32(b)/255, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.BeginFrame(m3ui.NewInputState(), m3ui.Vec2{X: float32(s.width), Y: float32(s.height)}, 1.0/60.0)
		s.draw(ctx)
		if err := ui.EndFrame(); err != nil {
			return err
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	flipRows(img)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// flipRows turns a bottom-up GL readback into a top-down image.
func flipRows(img *image.RGBA) {
	h, stride := img.Rect.Dy(), img.Stride
	tmp := make([]byte, stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*stride : (y+1)*stride]
		bot := img.Pix[(h-1-y)*stride : (h-y)*stride]
		copy(tmp, top)
		copy(top, bot)
		copy(bot, tmp)
	}
}

// inset is the margin every shot leaves around its widget.
const inset = 16

// at returns a w x h rectangle offset by (dx, dy) from the margin.
func at(dx, dy, w, h float32) m3ui.Rect {
	return m3ui.Rect{X: inset + dx, Y: inset + dy, W: w, H: h}
}

func buildScreenshots() []screenshot {
	tabs := []m3ui.TabItem{
		{ID: "home", Title: "Home", Icon: "dashboard"},
		{ID: "profile", Title: "Profile", Icon: "person", Closeable: true},
		{ID: "settings", Title: "A rather long settings title", Icon: "settings", Closeable: true},
	}
	return []screenshot{
		{
			name: "buttons", width: 640, height: 72,
			draw: func(ctx *m3ui.Context) {
				variants := []m3ui.ButtonVariant{m3ui.ButtonFilled, m3ui.ButtonTonal, m3ui.ButtonOutlined, m3ui.ButtonElevated, m3ui.ButtonText}
				names := []string{"Filled", "Tonal", "Outlined", "Elevated", "Text"}
				for i, v := range variants {
					ctx.Button(at(float32(i)*116, 0, 104, 40), names[i], m3ui.ButtonOptions{Variant: v})
				}
			},
		},
		{
			name: "icon-buttons", width: 240, height: 72,
			draw: func(ctx *m3ui.Context) {
				for i, icon := range []string{"add", "search", "delete", "menu"} {
					ctx.IconButton(at(float32(i)*52, 0, 40, 40), icon, m3ui.IconButtonOptions{Variant: m3ui.ButtonVariant(i % 3)})
				}
			},
		},
		{
			name: "text-fields", width: 360, height: 170,
			draw: func(ctx *m3ui.Context) {
				ctx.TextField(at(0, 0, 328, 56), "Name", "Ada Lovelace", m3ui.TextFieldOptions{LeadingIcon: "person"})
				ctx.TextField(at(0, 76, 328, 56), "Password", "hunter2", m3ui.TextFieldOptions{
					Variant:      m3ui.TextFieldOutlined,
					Password:     true,
					TrailingIcon: "visibility",
				})
			},
		},
		{
			name: "sliders", width: 360, height: 150,
			draw: func(ctx *m3ui.Context) {
				ctx.Slider(at(0, 0, 328, 48), "Volume", 65, 0, 100, m3ui.SliderOptions{StepValue: 10, ShowTickMarks: true})
				ctx.RangeSlider(at(0, 64, 328, 48), "Price", []float32{20, 70}, 0, 100, m3ui.RangeSliderOptions{ShowStopIndicators: true})
			},
		},
		{
			name: "checkboxes", width: 240, height: 120,
			draw: func(ctx *m3ui.Context) {
				ctx.Checkbox(at(0, 0, 208, 32), "Checked", true, m3ui.CheckboxOptions{})
				ctx.Checkbox(at(0, 36, 208, 32), "Unchecked", false, m3ui.CheckboxOptions{})
				ctx.Checkbox(at(0, 72, 208, 32), "Disabled", true, m3ui.CheckboxOptions{Disabled: true})
			},
		},
		{
			name: "tab-bar", width: 560, height: 120,
			draw: func(ctx *m3ui.Context) {
				bar := at(0, 0, 528, 40)
				ctx.TabBar(bar, tabs, 1, m3ui.TabBarOptions{})
				ctx.TabContentBegin(m3ui.Rect{X: bar.X, Y: bar.Y + bar.H, W: bar.W, H: 48}, 0)
				ctx.Text(m3ui.Rect{X: bar.X + 12, Y: bar.Y + bar.H + 12, W: 300, H: 20}, "Profile content", m3ui.TextOptions{})
				ctx.TabContentEnd()
			},
		},
		{
			name: "cards", width: 560, height: 160,
			draw: func(ctx *m3ui.Context) {
				for i, v := range []m3ui.CardVariant{m3ui.CardElevated, m3ui.CardFilled, m3ui.CardOutlined} {
					r := at(float32(i)*176, 0, 160, 120)
					ctx.Card(r, m3ui.CardOptions{Variant: v, ID: fmt.Sprint(i)})
					ctx.Text(r.Inset(16), []string{"Elevated", "Filled", "Outlined"}[i], m3ui.TextOptions{Size: 20})
				}
			},
		},
		{
			name: "modal", width: 520, height: 320,
			draw: func(ctx *m3ui.Context) {
				ctx.OpenModal("Rename file")
				ctx.Modal("Rename file", "Enter a new name for report.pdf.", "File name", "report-final.pdf", m3ui.ModalOptions{ConfirmText: "Rename"})
			},
			frames: 3,
		},
	}
}
