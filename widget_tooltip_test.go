package m3ui

import "testing"

var tooltipAnchor = Rect{X: 100, Y: 100, W: 100, H: 40}

func TestPlainTooltipFollowsHover(t *testing.T) {
	h := newHarness(t)
	shown := false
	draw := func(ctx *Context) {
		ctx.Button(tooltipAnchor, "Save", ButtonOptions{})
		ctx.Tooltip(tooltipAnchor, "Save the file", TooltipOptions{})
		shown = !ctx.OverlayDrawList.Empty()
	}
	h.moveTo(10, 10)
	h.frame(draw)
	if shown {
		t.Fatal("tooltip shown without hover")
	}
	h.moveTo(150, 120)
	h.frame(draw)
	if !shown {
		t.Fatal("tooltip hidden while the anchor is hovered")
	}
	if h.ctx().LayerDepth() != 0 {
		t.Fatalf("tooltip left %d layers pushed", h.ctx().LayerDepth())
	}
}

func TestTooltipHiddenUnderModal(t *testing.T) {
	h := newHarness(t)
	shown := false
	draw := func(ctx *Context) {
		ctx.Tooltip(tooltipAnchor, "Save the file", TooltipOptions{})
		shown = !ctx.OverlayDrawList.Empty()
		ctx.PushLayer(LayerModal)
		ctx.RegisterRegion(ctx.GetID("scrim"), Rect{W: 800, H: 600})
		ctx.PopLayer()
	}
	h.moveTo(150, 120)
	h.frame(draw)
	h.frame(draw)
	if shown {
		t.Fatal("tooltip shown through a modal")
	}
}

func TestPlaceTooltip(t *testing.T) {
	ctx := NewContext()
	ctx.DisplaySize = Vec2{X: 800, Y: 600}

	below := ctx.placeTooltip(tooltipAnchor, Vec2{X: 60, Y: 24})
	if below != (Rect{X: 120, Y: 144, W: 60, H: 24}) {
		t.Errorf("below = %+v", below)
	}
	above := ctx.placeTooltip(Rect{X: 100, Y: 570, W: 100, H: 20}, Vec2{X: 60, Y: 24})
	if above.Y != 570-tooltipGap-24 {
		t.Errorf("flipped Y = %v", above.Y)
	}
	edge := ctx.placeTooltip(Rect{X: 780, Y: 100, W: 20, H: 20}, Vec2{X: 100, Y: 24})
	if edge.X != 700 {
		t.Errorf("clamped X = %v, want 700", edge.X)
	}
}

func TestRichTooltipAction(t *testing.T) {
	h := newHarness(t)
	invoked := 0
	shown := false
	draw := func(ctx *Context) {
		ctx.Button(tooltipAnchor, "Rename", ButtonOptions{})
		ctx.Tooltip(tooltipAnchor, "Give it a name.", TooltipOptions{
			Title:      "Rename",
			ActionText: "Add",
			OnAction:   ActionFunc(func() { invoked++ }),
		})
		shown = !ctx.OverlayDrawList.Empty()
	}

	h.moveTo(150, 120)
	h.frame(draw)
	if !shown {
		t.Fatal("rich tooltip not shown on hover")
	}

	// The tooltip sits at 0,144 (312x103); its action button spans
	// x 4..49, y 207..247. Moving onto it keeps the tooltip open.
	h.moveTo(26, 227)
	h.frame(draw)
	if !shown {
		t.Fatal("rich tooltip closed while the pointer is over it")
	}

	h.click(26, 227, draw)
	if invoked != 1 {
		t.Fatalf("action invoked %d times, want 1", invoked)
	}
	h.frame(draw)
	if shown {
		t.Fatal("rich tooltip still shown after its action ran")
	}
}
