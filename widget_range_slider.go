package m3ui

import (
	"math"
	"slices"
)

// RangeSliderOptions configures RangeSlider. Zero-alpha colors use the
// theme.
type RangeSliderOptions struct {
	ShowValueIndicators bool
	ValueFormat         string

	ActiveTrackColor   Color // fill between thumbs
	InactiveTrackColor Color
	HandleColor        Color

	ShowStopIndicators bool
	StepValue          float32
	ShowTickMarks      bool

	// MinDistance is the smallest allowed gap between adjacent thumbs.
	// It is reduced to fit when the range cannot hold every thumb.
	MinDistance float32

	Disabled bool
	ID       string
}

// RangeSlider draws a slider with any number of thumbs and returns the
// updated values. The caller's slice is not modified.
//
// The result is always sorted ascending, inside [min, max], with adjacent
// values at least MinDistance apart. This holds on every call, not only
// while dragging. A drag moves the thumb nearest the pointer and clamps it
// between its neighbors.
func (ctx *Context) RangeSlider(bounds Rect, label string, values []float32, min, max float32, opts RangeSliderOptions) []float32 {
	min, max = orderRange(min, max)
	id := ctx.fieldIDFor(opts.ID, label, FieldKindRangeSlider)
	it := ctx.InteractField(id, bounds, opts.Disabled)

	out := normalizeThumbs(values, min, max, opts.MinDistance)
	trackRect := ctx.sliderArea(bounds, label, "", "", "", "", opts.Disabled)
	if len(out) == 0 {
		return out
	}
	if trackRect.W <= 0 || max == min {
		for i := range out {
			out[i] = min
		}
		return out
	}
	t := sliderTrack{r: trackRect, min: min, max: max}
	d := thumbDistance(len(out), min, max, opts.MinDistance)

	st := ctx.sliders.Get(id, sliderState{})
	if st.thumb >= len(out) {
		st.thumb = len(out) - 1
	}
	in := ctx.Input
	if opts.Disabled {
		st.dragging = false
	} else if in != nil {
		if it.PressedNow {
			st.dragging = true
			st.thumb = ClosestThumbIndex(trackRect, out, min, max, in.MousePos())
		}
		if st.dragging {
			if in.MouseDown(MouseButtonLeft) && ctx.activeID == id {
				v := snapStep(t.valueAt(in.MouseX), min, max, opts.StepValue)
				out[st.thumb] = clampThumb(out, st.thumb, v, min, max, d)
			} else {
				st.dragging = false
			}
		}
		if it.Focused {
			delta, toMin, toMax := sliderKeyDelta(in, min, max, opts.StepValue)
			v := out[st.thumb]
			switch {
			case toMin:
				v = min
			case toMax:
				v = max
			default:
				v = snapStep(v+delta, min, max, opts.StepValue)
			}
			out[st.thumb] = clampThumb(out, st.thumb, v, min, max, d)
		}
	}

	c := ctx.resolveSliderColors(opts.ActiveTrackColor, opts.InactiveTrackColor, opts.HandleColor, opts.Disabled)
	xs := make([]float32, len(out))
	for i, v := range out {
		xs[i] = t.xOf(v)
	}
	n := len(out)
	ctx.drawSliderTrack(trackRect, xs, func(i int) bool { return n == 1 && i == 0 || i > 0 && i < n }, c)
	lo, hi := out[0], out[n-1]
	ctx.drawSliderDots(t, opts.ShowStopIndicators, opts.ShowTickMarks, opts.StepValue, func(v float32) bool { return v >= lo && v <= hi }, c)
	for i, x := range xs {
		ctx.drawSliderHandle(x, trackRect, bounds, c.handle, st.dragging && st.thumb == i)
	}
	if opts.ShowValueIndicators && (st.dragging || it.Focused) {
		ctx.drawValueBubble(xs[st.thumb], trackRect, opts.ValueFormat, out[st.thumb])
	}
	return out
}

// ClosestThumbIndex returns the thumb whose handle is nearest p on a
// track drawn in track. When thumbs coincide, a pointer right of them
// picks the last and otherwise the first, so stacked thumbs can be pulled
// apart in either direction. It returns -1 for no values.
func ClosestThumbIndex(track Rect, values []float32, min, max float32, p Vec2) int {
	t := sliderTrack{r: track, min: min, max: max}
	cy := track.Y + track.H/2
	best, bestDist := -1, float32(math.MaxFloat32)
	for i, v := range values {
		x := t.xOf(v)
		dx, dy := float64(p.X-x), float64(p.Y-cy)
		dist := float32(math.Hypot(dx, dy))
		if dist < bestDist || dist == bestDist && p.X > x {
			best, bestDist = i, dist
		}
	}
	return best
}

// thumbDistance returns the enforceable minimum gap for n thumbs.
func thumbDistance(n int, min, max, minDistance float32) float32 {
	d := maxf(0, minDistance)
	if n > 1 && d*float32(n-1) > max-min {
		d = (max - min) / float32(n-1)
	}
	return d
}

// normalizeThumbs returns a sorted copy of values clamped to [min, max]
// with adjacent values at least the enforceable minimum gap apart.
func normalizeThumbs(values []float32, min, max, minDistance float32) []float32 {
	out := slices.Clone(values)
	if len(out) == 0 {
		return out
	}
	slices.Sort(out)
	d := thumbDistance(len(out), min, max, minDistance)
	for i := range out {
		out[i] = clampf(out[i], min, max)
	}
	for i := 1; i < len(out); i++ {
		out[i] = maxf(out[i], out[i-1]+d)
	}
	last := len(out) - 1
	if out[last] > max {
		out[last] = max
		for i := last - 1; i >= 0; i-- {
			out[i] = minf(out[i], out[i+1]-d)
		}
	}
	return out
}

// clampThumb keeps thumb i between its neighbors, d apart. Order wins
// over step snapping when both cannot hold.
func clampThumb(values []float32, i int, v, min, max, d float32) float32 {
	lo, hi := min, max
	if i > 0 {
		lo = values[i-1] + d
	}
	if i < len(values)-1 {
		hi = values[i+1] - d
	}
	if lo > hi {
		return values[i]
	}
	return clampf(v, lo, hi)
}
