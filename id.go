package m3ui

import (
	"hash/fnv"
	"strconv"
)

// ID identifies a widget within a frame. IDs are stable across frames as
// long as the call sequence under the same parent is unchanged.
type ID uint64

// FieldID identifies a stateful field (text field, slider, tab bar)
// across frames. Unlike ID it does not depend on call order.
type FieldID = ID

// GetID derives an ID from a label, the parent on the ID stack and a
// per-frame call counter, so identical labels in a loop stay distinct.
func (ctx *Context) GetID(label string) ID {
	ctx.idCounter++
	h := fnv.New64a()
	h.Write([]byte(label))
	return ID(uint64(ctx.CurrentID())<<32 | uint64(ctx.idCounter&0xFFFF)<<16 | h.Sum64()&0xFFFF)
}

// FieldIDOf derives a FieldID from a label and the parent only.
// Two calls with the same label under the same parent share state.
func (ctx *Context) FieldIDOf(label string) FieldID {
	h := fnv.New64a()
	var parent [8]byte
	p := uint64(ctx.CurrentID())
	for i := range parent {
		parent[i] = byte(p >> (8 * i))
	}
	h.Write(parent[:])
	h.Write([]byte(label))
	id := ID(h.Sum64())
	if id == 0 {
		id = 1
	}
	return id
}

// PushID pushes a label-derived scope onto the ID stack.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.FieldIDOf(label))
}

// PushIDInt pushes an integer scope, for items in slices.
func (ctx *Context) PushIDInt(n int) {
	h := fnv.New64a()
	var b [16]byte
	p, v := uint64(ctx.CurrentID()), uint64(n)
	for i := 0; i < 8; i++ {
		b[i] = byte(p >> (8 * i))
		b[8+i] = byte(v >> (8 * i))
	}
	h.Write(b[:])
	ctx.idStack = append(ctx.idStack, ID(h.Sum64()))
}

// PopID removes the innermost scope.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

// CurrentID returns the innermost scope, or 0 at the root.
func (ctx *Context) CurrentID() ID {
	if len(ctx.idStack) > 0 {
		return ctx.idStack[len(ctx.idStack)-1]
	}
	return 0
}

// FieldKind names a stateful widget kind. Instances drawn without an ID
// or label are numbered by call order within their kind.
type FieldKind string

const (
	FieldKindSlider      FieldKind = "slider"
	FieldKindRangeSlider FieldKind = "range-slider"
	FieldKindTextField   FieldKind = "text-field"
	FieldKindTabBar      FieldKind = "tab-bar"
	FieldKindTooltip     FieldKind = "tooltip"
)

// fieldIDFor picks a stateful widget's FieldID: the explicit id if set,
// else the label, else the kind's call order under the current scope.
// The first unnamed instance of a kind is keyed by the kind name alone.
func (ctx *Context) fieldIDFor(id, label string, kind FieldKind) FieldID {
	switch {
	case id != "":
		return ctx.FieldIDOf(id)
	case label != "":
		return ctx.FieldIDOf(label)
	}
	n := ctx.kindCounters[kind]
	ctx.kindCounters[kind] = n + 1
	if n == 0 {
		return ctx.FieldIDOf(string(kind))
	}
	return ctx.FieldIDOf(string(kind) + "#" + strconv.Itoa(n))
}

// ResetFieldIDs restarts the call-order numbering of unnamed widgets of
// kind, so drawing the same widgets again within one frame reuses their
// state. Numbering restarts on its own every frame. Widgets with an ID or
// label are unaffected and no state is dropped; use ResetFieldID for that.
func (ctx *Context) ResetFieldIDs(kind FieldKind) {
	delete(ctx.kindCounters, kind)
}
