package m3ui

import "testing"

func TestLayerStack(t *testing.T) {
	ctx := NewContext()
	if ctx.ActiveLayer() != LayerBase {
		t.Fatalf("ActiveLayer = %d, want base", ctx.ActiveLayer())
	}
	ctx.PushLayer(LayerPopover)
	ctx.PushLayer(LayerModal)
	if ctx.ActiveLayer() != LayerModal || ctx.LayerDepth() != 2 {
		t.Fatalf("after pushes: layer %d depth %d", ctx.ActiveLayer(), ctx.LayerDepth())
	}
	ctx.PopLayer()
	if ctx.ActiveLayer() != LayerPopover {
		t.Fatalf("after pop: layer %d", ctx.ActiveLayer())
	}
	ctx.PopLayer()
	if ctx.ActiveLayer() != LayerBase || ctx.LayerDepth() != 0 {
		t.Fatalf("after second pop: layer %d depth %d", ctx.ActiveLayer(), ctx.LayerDepth())
	}
}

func TestPopLayerEmpty(t *testing.T) {
	ctx := NewContext()
	expectProtocolError(t, "PopLayer", ctx.PopLayer)
}

func TestTopmostAt(t *testing.T) {
	regions := []OccupiedRegion{
		{ID: 1, Layer: LayerBase, Bounds: Rect{W: 100, H: 100}, Order: 0},
		{ID: 2, Layer: LayerPopover, Bounds: Rect{X: 50, Y: 50, W: 100, H: 100}, Order: 1},
		{ID: 3, Layer: LayerBase, Bounds: Rect{W: 100, H: 100}, Order: 2},
	}
	tests := []struct {
		p    Vec2
		want ID
		ok   bool
	}{
		{Vec2{X: 60, Y: 60}, 2, true},
		{Vec2{X: 10, Y: 10}, 3, true},
		{Vec2{X: 140, Y: 140}, 2, true},
		{Vec2{X: 500, Y: 500}, 0, false},
	}
	for _, tt := range tests {
		r, ok := TopmostAt(regions, tt.p)
		if ok != tt.ok || r.ID != tt.want {
			t.Errorf("TopmostAt(%v) = %d, %v; want %d, %v", tt.p, r.ID, ok, tt.want, tt.ok)
		}
	}
}

func TestRegisterRegionSkipsEmpty(t *testing.T) {
	ctx := NewContext()
	ctx.RegisterRegion(1, Rect{W: 0, H: 10})
	ctx.PushLayer(LayerTooltip)
	ctx.RegisterRegion(2, Rect{W: 10, H: 10})
	ctx.PopLayer()
	regions := ctx.Regions()
	if len(regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(regions))
	}
	if regions[0].ID != 2 || regions[0].Layer != LayerTooltip {
		t.Errorf("region = %+v", regions[0])
	}
}

func TestHigherLayerOccludes(t *testing.T) {
	h := newHarness(t)
	h.moveTo(10, 10)

	var below Interaction
	coverID := ID(0)
	draw := func(ctx *Context) {
		below = ctx.Interact(ctx.GetID("below"), Rect{W: 100, H: 40}, false)
		ctx.PushLayer(LayerPopover)
		coverID = ctx.GetID("cover")
		ctx.Interact(coverID, Rect{W: 200, H: 200}, false)
		ctx.PopLayer()
	}

	// The cover registers after the widget below on the first frame.
	h.frame(draw)
	if !below.Hovered {
		t.Fatal("frame 1: widget below should be hovered before the cover is known")
	}
	if h.ctx().HoveredID() != coverID {
		t.Errorf("HoveredID = %d, want cover %d", h.ctx().HoveredID(), coverID)
	}

	h.press()
	h.frame(draw)
	if below.Hovered || below.PressedNow {
		t.Fatalf("frame 2: widget below reacts under a higher layer: %+v", below)
	}
}

func TestLaterSameLayerOccludes(t *testing.T) {
	h := newHarness(t)
	h.moveTo(60, 20)

	var first, second Interaction
	draw := func(ctx *Context) {
		first = ctx.Interact(ctx.GetID("first"), Rect{W: 100, H: 40}, false)
		second = ctx.Interact(ctx.GetID("second"), Rect{X: 50, W: 100, H: 40}, false)
	}
	h.frame(draw)
	h.frame(draw)
	if first.Hovered {
		t.Error("earlier overlapping widget should be occluded")
	}
	if !second.Hovered {
		t.Error("later overlapping widget should be hovered")
	}
}

func TestHigherLayerSameFrameOccludes(t *testing.T) {
	h := newHarness(t)
	h.moveTo(10, 10)

	var below Interaction
	h.frame(func(ctx *Context) {
		ctx.PushLayer(LayerModal)
		ctx.RegisterRegion(ctx.GetID("scrim"), Rect{W: 800, H: 600})
		ctx.PopLayer()
		below = ctx.Interact(ctx.GetID("below"), Rect{W: 100, H: 40}, false)
	})
	if below.Hovered {
		t.Error("widget under an already registered modal region is hovered")
	}
}
