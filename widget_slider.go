package m3ui

import (
	"fmt"
	"math"
)

// SliderOptions configures Slider. Zero-alpha colors use the theme.
type SliderOptions struct {
	StartIcon string
	EndIcon   string
	StartText string
	EndText   string

	// HideEndDot removes the dot at the end of the inactive track. The
	// dot is also omitted when an end icon or end text is shown.
	HideEndDot bool

	ShowValueIndicator bool   // bubble above the handle while dragging or focused
	ValueFormat        string // fmt verb for the bubble, "%.0f" when empty

	ActiveTrackColor   Color
	InactiveTrackColor Color
	HandleColor        Color

	ShowStopIndicators bool    // dots at the min and max positions
	StepValue          float32 // > 0 makes the slider discrete
	ShowTickMarks      bool    // dots at every step, discrete mode only

	Disabled bool
	ID       string
}

const (
	sliderTrackHeight = 16
	sliderHandleWidth = 4
	sliderHandleGap   = 6
	sliderAdornSize   = 20
	maxTickMarks      = 100
)

// sliderTrack maps values to x positions on a track.
type sliderTrack struct {
	r        Rect
	min, max float32
}

func (t sliderTrack) xOf(v float32) float32 {
	if t.max <= t.min {
		return t.r.X
	}
	return t.r.X + (v-t.min)/(t.max-t.min)*t.r.W
}

func (t sliderTrack) valueAt(x float32) float32 {
	if t.r.W <= 0 {
		return t.min
	}
	f := clampf((x-t.r.X)/t.r.W, 0, 1)
	return t.min + f*(t.max-t.min)
}

// snapStep rounds v to the nearest multiple of step from min, within
// [min, max]. A non-positive step leaves v unchanged.
func snapStep(v, min, max, step float32) float32 {
	if step <= 0 {
		return clampf(v, min, max)
	}
	n := float32(math.Round(float64((v - min) / step)))
	return clampf(min+n*step, min, max)
}

// orderRange swaps min and max when they are reversed.
func orderRange(min, max float32) (float32, float32) {
	if min > max {
		return max, min
	}
	return min, max
}

// sliderColors resolves a slider's track and handle colors.
type sliderColors struct {
	active, inactive, handle, stopOn, stopOff Color
}

func (ctx *Context) resolveSliderColors(active, inactive, handle Color, disabled bool) sliderColors {
	cs := &ctx.theme.Colors
	c := sliderColors{
		active:   pick(active, cs.Primary),
		inactive: pick(inactive, cs.SecondaryContainer),
		handle:   pick(handle, cs.Primary),
	}
	if disabled {
		c.active = cs.OnSurface.WithAlpha(disabledContent)
		c.inactive = cs.OnSurface.WithAlpha(disabledFill)
		c.handle = c.active
	}
	c.stopOn = cs.OnPrimary
	c.stopOff = cs.OnSecondaryContainer
	if disabled {
		c.stopOn, c.stopOff = cs.Surface, cs.OnSurface.WithAlpha(disabledContent)
	}
	return c
}

// sliderArea draws the label and start/end adornments inside bounds and
// returns the rectangle left for the track.
func (ctx *Context) sliderArea(bounds Rect, label, startIcon, startText, endIcon, endText string, disabled bool) Rect {
	cs := &ctx.theme.Colors
	content := cs.OnSurfaceVariant
	if disabled {
		content = cs.OnSurface.WithAlpha(disabledContent)
	}
	area := bounds
	if label != "" {
		size := ctx.theme.Type.Small
		lh := ctx.LineHeight(size)
		ctx.DrawText(ctx.TruncateText(label, bounds.W, size, FontWeightMedium), Vec2{X: bounds.X, Y: bounds.Y}, size, FontWeightMedium, content)
		area.Y += lh
		area.H = maxf(0, area.H-lh)
	}

	size := ctx.theme.Type.Label
	adorn := func(icon, text string, atEnd bool) {
		var w float32
		switch {
		case icon != "":
			w = sliderAdornSize
		case text != "":
			w = ctx.MeasureText(text, size, FontWeightRegular).X
		default:
			return
		}
		x := area.X
		if atEnd {
			x = area.X + area.W - w
		}
		r := Rect{X: x, Y: area.Y, W: w, H: area.H}
		if icon != "" {
			ctx.Icon(r, icon, content)
		} else {
			ctx.DrawTextCentered(text, r, size, FontWeightRegular, content)
		}
		if !atEnd {
			area.X += w + SpaceMD
		}
		area.W = maxf(0, area.W-w-SpaceMD)
	}
	adorn(startIcon, startText, false)
	adorn(endIcon, endText, true)

	h := minf(sliderTrackHeight, area.H)
	return Rect{X: area.X, Y: area.Y + (area.H-h)/2, W: area.W, H: h}
}

// drawSliderTrack draws the track split around handles at xs. Segment i
// runs from handle i-1 to handle i; active reports its fill.
func (ctx *Context) drawSliderTrack(track Rect, xs []float32, active func(i int) bool, c sliderColors) {
	dl := ctx.target()
	left := track.X
	for i := 0; i <= len(xs); i++ {
		right := track.X + track.W
		if i < len(xs) {
			right = xs[i] - sliderHandleWidth/2 - sliderHandleGap
		}
		if right > left {
			col := c.inactive
			if active(i) {
				col = c.active
			}
			seg := Rect{X: left, Y: track.Y, W: right - left, H: track.H}
			dl.AddRoundedRect(seg, minf(track.H/2, seg.W/2), col)
		}
		if i < len(xs) {
			left = xs[i] + sliderHandleWidth/2 + sliderHandleGap
		}
	}
}

// drawSliderDots draws stop indicators and tick marks.
func (ctx *Context) drawSliderDots(t sliderTrack, stops, ticks bool, step float32, isActive func(v float32) bool, c sliderColors) {
	dl := ctx.target()
	cy := t.r.Y + t.r.H/2
	dot := func(v float32) {
		col := c.stopOff
		if isActive(v) {
			col = c.stopOn
		}
		x := clampf(t.xOf(v), t.r.X+t.r.H/2, t.r.X+t.r.W-t.r.H/2)
		dl.AddCircle(Vec2{X: x, Y: cy}, 2, col)
	}
	if ticks && step > 0 && t.max > t.min {
		n := int((t.max - t.min) / step)
		if n <= maxTickMarks {
			for i := 0; i <= n; i++ {
				dot(t.min + float32(i)*step)
			}
			return
		}
	}
	if stops {
		dot(t.min)
		dot(t.max)
	}
}

func (ctx *Context) drawSliderHandle(x float32, track Rect, bounds Rect, col Color, pressed bool) {
	h := minf(44, bounds.H)
	w := float32(sliderHandleWidth)
	if pressed {
		w = 2
	}
	r := Rect{X: x - w/2, Y: track.Y + track.H/2 - h/2, W: w, H: h}
	ctx.target().AddRoundedRect(r, w/2, col)
}

func (ctx *Context) drawValueBubble(x float32, track Rect, format string, v float32) {
	if format == "" {
		format = "%.0f"
	}
	text := fmt.Sprintf(format, v)
	size := ctx.theme.Type.Label
	m := ctx.MeasureText(text, size, FontWeightMedium)
	w := maxf(48, m.X+2*SpaceLG)
	h := float32(44)
	r := Rect{X: x - w/2, Y: track.Y - h - SpaceLG - 22 + track.H/2, W: w, H: h}
	cs := &ctx.theme.Colors
	ctx.target().AddRoundedRect(r, h/2, cs.InverseSurface)
	ctx.DrawTextCentered(text, r, size, FontWeightMedium, cs.InverseOnSurface)
}

// sliderKeyDelta returns the keyboard adjustment for a focused slider.
func sliderKeyDelta(in *InputState, min, max, step float32) (delta float32, toMin, toMax bool) {
	if in == nil {
		return 0, false, false
	}
	if step <= 0 {
		step = (max - min) / 100
	}
	switch {
	case in.KeyRepeated(KeyLeft), in.KeyRepeated(KeyDown):
		delta = -step
	case in.KeyRepeated(KeyRight), in.KeyRepeated(KeyUp):
		delta = step
	case in.KeyRepeated(KeyPageDown):
		delta = -10 * step
	case in.KeyRepeated(KeyPageUp):
		delta = 10 * step
	}
	return delta, in.KeyPressed(KeyHome), in.KeyPressed(KeyEnd)
}

// Slider draws a single-value slider and returns the new value.
//
// label identifies the slider and is drawn above the track when set.
// A reversed range is swapped; a slider with no room for a track returns
// min. With StepValue > 0 the value snaps to min + k*StepValue.
func (ctx *Context) Slider(bounds Rect, label string, value, min, max float32, opts SliderOptions) float32 {
	min, max = orderRange(min, max)
	id := ctx.fieldIDFor(opts.ID, label, FieldKindSlider)
	it := ctx.InteractField(id, bounds, opts.Disabled)

	trackRect := ctx.sliderArea(bounds, label, opts.StartIcon, opts.StartText, opts.EndIcon, opts.EndText, opts.Disabled)
	if trackRect.W <= 0 || max == min {
		return min
	}
	t := sliderTrack{r: trackRect, min: min, max: max}
	value = snapStep(value, min, max, opts.StepValue)

	st := ctx.sliders.Get(id, sliderState{})
	in := ctx.Input
	if opts.Disabled {
		st.dragging = false
	} else if in != nil {
		if it.PressedNow {
			st.dragging = true
		}
		if st.dragging {
			if in.MouseDown(MouseButtonLeft) && ctx.activeID == id {
				value = snapStep(t.valueAt(in.MouseX), min, max, opts.StepValue)
			} else {
				st.dragging = false
			}
		}
		if it.Focused {
			delta, toMin, toMax := sliderKeyDelta(in, min, max, opts.StepValue)
			switch {
			case toMin:
				value = min
			case toMax:
				value = max
			case delta != 0:
				value = snapStep(value+delta, min, max, opts.StepValue)
			}
		}
	}

	c := ctx.resolveSliderColors(opts.ActiveTrackColor, opts.InactiveTrackColor, opts.HandleColor, opts.Disabled)
	x := t.xOf(value)
	ctx.drawSliderTrack(trackRect, []float32{x}, func(i int) bool { return i == 0 }, c)
	ctx.drawSliderDots(t, opts.ShowStopIndicators, opts.ShowTickMarks, opts.StepValue, func(v float32) bool { return v <= value }, c)
	if !opts.HideEndDot && opts.EndIcon == "" && opts.EndText == "" && !opts.ShowStopIndicators && !opts.ShowTickMarks {
		end := Vec2{X: trackRect.X + trackRect.W - trackRect.H/2, Y: trackRect.Y + trackRect.H/2}
		if end.X > x+sliderHandleGap+sliderHandleWidth {
			ctx.target().AddCircle(end, 2, c.stopOff)
		}
	}
	ctx.drawSliderHandle(x, trackRect, bounds, c.handle, st.dragging)
	if opts.ShowValueIndicator && (st.dragging || it.Focused) {
		ctx.drawValueBubble(x, trackRect, opts.ValueFormat, value)
	}
	return value
}
