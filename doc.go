/*
Package m3ui is an immediate-mode GUI core with Material 3 styled
widgets. The UI is rebuilt every frame: widgets are function calls that
draw into a DrawList and return what the user did, and whatever state a
widget needs between frames (caret, scroll offset, drag) is kept by the
Context under the widget's ID.

# Quick Start

	renderer, _ := opengl.NewRenderer(width, height)
	atlas, _ := fontatlas.New(fontatlas.Options{})
	atlas.SetTextureID(renderer.UploadAtlas(atlas.Pixels(), atlas.Width(), atlas.Height()))
	ui := m3ui.New(renderer, m3ui.WithFontProvider(atlas), m3ui.WithDarkMode(true))

	for !window.ShouldClose() {
	    input.Update()
	    glfw.PollEvents()

	    ctx := ui.BeginFrame(input.Input(), m3ui.Vec2{X: w, Y: h}, dt)
	    ctx.Begin(m3ui.Rect{W: w, H: h})
	    if ctx.Button(ctx.Alloc(m3ui.Fixed(120, 40)), "Save", m3ui.ButtonOptions{Variant: m3ui.ButtonFilled}) {
	        save()
	    }
	    ctx.End()
	    ui.EndFrame()
	}

# Layers and occlusion

Every interactive widget registers the rectangle it occupies together
with the active layer (LayerBase, LayerPopover, LayerModal,
LayerTooltip). A widget receives the pointer only when no region on a
higher layer, or later on the same layer, covered the pointer on the
previous frame. Modals push LayerModal and register a full-display
scrim, so everything beneath them stops reacting from the frame after
they open.

# Layout

Begin opens a column covering the root rectangle. BeginContainer,
BeginScrollContainer and Alloc hand out rectangles in call order; sizes
> 0 are fixed, < 0 stretch and 0 fits the content. Flex shares are
computed from the previous frame's measurements of the same container.
Misusing the Begin/End pairs panics with a *ProtocolError.

# Keyboard

Text fields:

	Left, Right          Move by one character (Shift extends the selection)
	Home, End            Jump to start or end
	Ctrl+A               Select all
	Ctrl+C, Ctrl+X       Copy or cut the selection (not in password fields)
	Ctrl+V               Paste
	Ctrl+Z               Undo
	Ctrl+Y, Ctrl+Shift+Z Redo
	Backspace, Delete    Delete the selection or one character
	Escape               Unfocus

Sliders (when focused):

	Left, Down           Decrease by one step
	Right, Up            Increase by one step
	Page Down, Page Up   Ten steps
	Home, End            Minimum or maximum

Modals:

	Enter                Confirm
	Escape               Cancel

Tab and Shift+Tab move focus between focusable widgets in last frame's
order.
*/
package m3ui
