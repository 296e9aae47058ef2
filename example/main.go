// Example opens a GLFW window and shows most m3ui widgets: a tab bar,
// cards in a scrolling column, buttons, sliders, a text field, a
// checkbox, tooltips and a modal prompt.
//
//	go run ./example/ -dark -verbose
//	go run ./example/ -font /path/to/Roboto-Regular.ttf
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/m3ui"
	"github.com/go-theft-auto/m3ui/backend/opengl"
	"github.com/go-theft-auto/m3ui/fontatlas"
)

const (
	windowWidth  = 960
	windowHeight = 720
	windowTitle  = "m3ui example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	dark := flag.Bool("dark", false, "use the dark theme")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	fontPath := flag.String("font", "", "TrueType font for regular text (default: Go Regular)")
	flag.Parse()

	m3ui.SetVerbose(*verbose)
	if err := run(*dark, *fontPath); err != nil {
		slog.Error("example failed", "err", err)
		os.Exit(1)
	}
}

// demo is the application state the widgets edit.
type demo struct {
	tabs     []m3ui.TabItem
	selected int

	clicks    int
	volume    float32
	price     []float32
	name      string
	clearName bool
	phone     string
	password  string
	subscribe bool

	renameTo string
	status   string
	nextTab  int
}

func newDemo() *demo {
	return &demo{
		tabs: []m3ui.TabItem{
			{ID: "controls", Title: "Controls", Icon: "dashboard"},
			{ID: "forms", Title: "Forms", Icon: "person", Closeable: true},
			{ID: "about", Title: "About", Icon: "help", Closeable: true},
		},
		volume:  40,
		price:   []float32{20, 80},
		nextTab: 1,
	}
}

func run(dark bool, fontPath string) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	fbw, fbh := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(fbw, fbh)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	opts := fontatlas.Options{Sizes: []float32{12, 14, 20}}
	if fontPath != "" {
		data, err := os.ReadFile(fontPath)
		if err != nil {
			return fmt.Errorf("read font: %w", err)
		}
		opts.Regular = data
	}
	atlas, err := fontatlas.New(opts)
	if err != nil {
		return err
	}
	defer atlas.Close()
	atlas.SetTextureID(renderer.UploadAtlas(atlas.Pixels(), atlas.Width(), atlas.Height()))

	input := opengl.NewGLFWInputAdapter(window)
	ui := m3ui.New(renderer,
		m3ui.WithDarkMode(dark),
		m3ui.WithFontProvider(atlas),
		m3ui.WithClipboard(opengl.GLFWClipboard{Window: window}),
	)
	defer ui.Shutdown()

	app := newDemo()
	last := time.Now()
	for !window.ShouldClose() {
		input.Update()
		glfw.PollEvents()

		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		w, h := window.GetFramebufferSize()
		ui.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		r, g, b, _ := ui.Theme().Colors.Surface.RGBA()
		gl.ClearColor(float32(r)/255, float32(g)/255, float32(b)/255, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.BeginFrame(input.Input(), m3ui.Vec2{X: float32(w), Y: float32(h)}, dt)
		app.frame(ctx)
		if err := ui.EndFrame(); err != nil {
			return err
		}
		window.SwapBuffers()
	}
	return nil
}

func (d *demo) frame(ctx *m3ui.Context) {
	display := m3ui.Rect{W: ctx.DisplaySize.X, H: ctx.DisplaySize.Y}
	ctx.Begin(display)
	defer ctx.End()

	bar := ctx.Alloc(m3ui.Fixed(-1, 40))
	clicked, closed := ctx.TabBar(bar, d.tabs, d.selected, m3ui.TabBarOptions{ID: "main-tabs"})
	switch {
	case closed >= 0:
		d.closeTab(closed)
	case clicked >= 0:
		d.selected = clicked
	}

	body := ctx.Current()
	body.Y, body.H = bar.Y+bar.H, body.H-bar.H
	ctx.TabContentBegin(body, 0)
	defer ctx.TabContentEnd()

	style := m3ui.Column()
	style.Height, style.FlexGrow = -1, 1
	style.Padding, style.Gap = m3ui.Space2XL, m3ui.SpaceXL
	style.ID = "content"
	ctx.BeginScrollContainer(style, false, true)
	if len(d.tabs) > 0 {
		switch d.tabs[d.selected].ID {
		case "controls":
			d.controls(ctx)
		case "forms":
			d.forms(ctx)
		default:
			d.about(ctx)
		}
	}
	ctx.EndContainer()

	d.rename(ctx)
}

func (d *demo) closeTab(i int) {
	d.tabs = append(d.tabs[:i], d.tabs[i+1:]...)
	if d.selected >= len(d.tabs) || d.selected > i {
		d.selected = max(0, d.selected-1)
	}
}

func (d *demo) controls(ctx *m3ui.Context) {
	ctx.BeginCard(m3ui.SizeSpec{Width: -1}, m3ui.CardOptions{ID: "buttons"}, m3ui.LayoutStyle{Gap: m3ui.SpaceMD})
	ctx.Label("Buttons", m3ui.TextOptions{Size: 20})

	row := m3ui.Row()
	row.Gap, row.ID = m3ui.SpaceMD, "button-row"
	ctx.BeginContainer(row)
	variants := []struct {
		name string
		v    m3ui.ButtonVariant
	}{
		{"Filled", m3ui.ButtonFilled},
		{"Tonal", m3ui.ButtonTonal},
		{"Outlined", m3ui.ButtonOutlined},
		{"Elevated", m3ui.ButtonElevated},
		{"Text", m3ui.ButtonText},
	}
	for _, v := range variants {
		r := ctx.Alloc(m3ui.Fixed(112, 40))
		if ctx.Button(r, v.name, m3ui.ButtonOptions{Variant: v.v}) {
			d.clicks++
		}
	}
	r := ctx.Alloc(m3ui.Fixed(40, 40))
	if ctx.IconButton(r, "add", m3ui.IconButtonOptions{Variant: m3ui.ButtonTonal}) {
		d.clicks++
	}
	ctx.Tooltip(r, "Add one", m3ui.TooltipOptions{})
	ctx.EndContainer()
	ctx.Label("Clicks: "+strconv.Itoa(d.clicks), m3ui.TextOptions{})
	ctx.EndCard()

	ctx.BeginCard(m3ui.SizeSpec{Width: -1}, m3ui.CardOptions{Variant: m3ui.CardFilled, ID: "sliders"}, m3ui.LayoutStyle{Gap: m3ui.SpaceMD})
	ctx.Label("Sliders", m3ui.TextOptions{Size: 20})
	d.volume = ctx.Slider(ctx.Alloc(m3ui.Fixed(-1, 48)), "Volume", d.volume, 0, 100, m3ui.SliderOptions{
		StartIcon:          "remove",
		EndIcon:            "add",
		ShowValueIndicator: true,
		StepValue:          5,
		ShowTickMarks:      true,
	})
	d.price = ctx.RangeSlider(ctx.Alloc(m3ui.Fixed(-1, 48)), "Price", d.price, 0, 100, m3ui.RangeSliderOptions{
		ShowValueIndicators: true,
		ValueFormat:         "$%.0f",
		MinDistance:         10,
	})
	ctx.EndCard()
}

func (d *demo) forms(ctx *m3ui.Context) {
	ctx.BeginCard(m3ui.SizeSpec{Width: -1}, m3ui.CardOptions{Variant: m3ui.CardOutlined, ID: "profile"}, m3ui.LayoutStyle{Gap: m3ui.SpaceLG})
	ctx.Label("Profile", m3ui.TextOptions{Size: 20})
	d.name, _ = ctx.TextField(ctx.Alloc(m3ui.Fixed(-1, 56)), "Name", d.name, m3ui.TextFieldOptions{
		LeadingIcon:    "person",
		TrailingIcon:   "close",
		OnTrailingIcon: m3ui.ActionFunc(func() { d.clearName = true }),
	})
	if d.clearName {
		d.name, d.clearName = "", false
	}
	d.phone, _ = ctx.TextField(ctx.Alloc(m3ui.Fixed(-1, 56)), "Phone", d.phone, m3ui.TextFieldOptions{
		Variant:     m3ui.TextFieldOutlined,
		InputMask:   "(999) 999-9999",
		Placeholder: "(555) 123-4567",
	})
	d.password, _ = ctx.TextField(ctx.Alloc(m3ui.Fixed(-1, 56)), "Password", d.password, m3ui.TextFieldOptions{
		Variant:  m3ui.TextFieldOutlined,
		Password: true,
	})
	d.subscribe = ctx.Checkbox(ctx.Alloc(m3ui.Fixed(-1, 40)), "Send me updates", d.subscribe, m3ui.CheckboxOptions{})
	ctx.EndCard()
}

func (d *demo) about(ctx *m3ui.Context) {
	ctx.BeginCard(m3ui.SizeSpec{Width: -1}, m3ui.CardOptions{ID: "about"}, m3ui.LayoutStyle{Gap: m3ui.SpaceMD})
	ctx.Label("About", m3ui.TextOptions{Size: 20})
	ctx.Label("An immediate-mode Material toolkit. Widgets are plain function calls made every frame.", m3ui.TextOptions{Wrap: true})
	r := ctx.Alloc(m3ui.Fixed(160, 40))
	if ctx.Button(r, "Rename tab", m3ui.ButtonOptions{Variant: m3ui.ButtonFilled, Icon: "settings"}) {
		d.renameTo = d.tabs[d.selected].Title
		ctx.OpenModal("Rename tab")
	}
	ctx.Tooltip(r, "Give this tab a new title.", m3ui.TooltipOptions{
		Title:      "Rename",
		ActionText: "Add tab",
		OnAction: m3ui.ActionFunc(func() {
			d.nextTab++
			id := "extra-" + strconv.Itoa(d.nextTab)
			d.tabs = append(d.tabs, m3ui.TabItem{ID: id, Title: "Tab " + strconv.Itoa(d.nextTab), Closeable: true})
		}),
	})
	if d.status != "" {
		ctx.Label(d.status, m3ui.TextOptions{Size: 12})
	}
	ctx.EndCard()
}

func (d *demo) rename(ctx *m3ui.Context) {
	value, res := ctx.Modal("Rename tab", "Choose a new title for the current tab.", "Title", d.renameTo, m3ui.ModalOptions{
		ConfirmText: "Rename",
	})
	d.renameTo = value
	switch res {
	case m3ui.ModalConfirmed:
		if value != "" && d.selected < len(d.tabs) {
			d.tabs[d.selected].Title = value
			d.status = "Renamed to " + value
		}
	case m3ui.ModalCancelled:
		d.status = "Rename cancelled"
	}
}
