package m3ui

// evictor is implemented by every FieldStore so the Context can drop
// a field's state from all stores at once.
type evictor interface {
	evict(id FieldID)
	clear()
}

// FieldStore keeps per-field widget state across frames.
//
// Entries are never collected implicitly: a field that is not drawn keeps
// its state until ResetFieldID is called. Stores belong to one Context and
// are only touched from the UI goroutine.
//
//	expanded := m3ui.NewFieldStore[bool](ui.Context())
//	open := expanded.Get(ctx.FieldIDOf("advanced"), false)
type FieldStore[T any] struct {
	states map[FieldID]*T
}

// NewFieldStore creates a store and registers it with ctx for
// ResetFieldID and Shutdown.
func NewFieldStore[T any](ctx *Context) *FieldStore[T] {
	s := &FieldStore[T]{states: make(map[FieldID]*T)}
	if ctx != nil {
		ctx.stores = append(ctx.stores, s)
	}
	return s
}

// ResetFieldID drops id's transient state from every store, for a widget
// reused for a semantically different value.
func (ctx *Context) ResetFieldID(id FieldID) {
	for _, s := range ctx.stores {
		s.evict(id)
	}
	if ctx.focusedID == id {
		ctx.focusedID = 0
	}
	if ctx.activeID == id {
		ctx.activeID = 0
	}
}

// Get returns the state for id, creating it from defaultVal on first use.
// The pointer stays valid until the entry is evicted.
func (s *FieldStore[T]) Get(id FieldID, defaultVal T) *T {
	if st, ok := s.states[id]; ok {
		return st
	}
	st := new(T)
	*st = defaultVal
	s.states[id] = st
	return st
}

// Lookup returns the state for id or nil.
func (s *FieldStore[T]) Lookup(id FieldID) *T {
	return s.states[id]
}

// Set replaces the state for id.
func (s *FieldStore[T]) Set(id FieldID, value T) {
	if st, ok := s.states[id]; ok {
		*st = value
		return
	}
	st := new(T)
	*st = value
	s.states[id] = st
}

// Delete removes the state for id.
func (s *FieldStore[T]) Delete(id FieldID) {
	delete(s.states, id)
}

// Len returns the number of stored entries.
func (s *FieldStore[T]) Len() int {
	return len(s.states)
}

func (s *FieldStore[T]) evict(id FieldID) { delete(s.states, id) }
func (s *FieldStore[T]) clear()           { clear(s.states) }
