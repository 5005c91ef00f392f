package ecs

import "github.com/milk9111/dontescape/ecs/component"

// ForEach calls fn for every live entity holding kind. The callback may add
// or remove components; iteration runs over a snapshot of the store.
func ForEach[A any](w *World, ka component.ComponentKind[A], fn func(Entity, *A)) {
	sa := w.store(ka.ID(), false)
	for _, id := range sa.snapshot() {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		a, ok := sa.Get(id).(*A)
		if !ok {
			continue
		}
		fn(e, a)
	}
}

// ForEach2 iterates entities holding both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := w.store(ka.ID(), false)
	sb := w.store(kb.ID(), false)
	if sa == nil || sb == nil {
		return
	}
	for _, id := range sa.snapshot() {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		a, okA := sa.Get(id).(*A)
		b, okB := sb.Get(id).(*B)
		if !okA || !okB {
			continue
		}
		fn(e, a, b)
	}
}

// ForEach3 iterates entities holding all three kinds.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa := w.store(ka.ID(), false)
	sb := w.store(kb.ID(), false)
	sc := w.store(kc.ID(), false)
	if sa == nil || sb == nil || sc == nil {
		return
	}
	for _, id := range sa.snapshot() {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		a, okA := sa.Get(id).(*A)
		b, okB := sb.Get(id).(*B)
		c, okC := sc.Get(id).(*C)
		if !okA || !okB || !okC {
			continue
		}
		fn(e, a, b, c)
	}
}

// ForEach4 iterates entities holding all four kinds.
func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	sa := w.store(ka.ID(), false)
	sb := w.store(kb.ID(), false)
	sc := w.store(kc.ID(), false)
	sd := w.store(kd.ID(), false)
	if sa == nil || sb == nil || sc == nil || sd == nil {
		return
	}
	for _, id := range sa.snapshot() {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		a, okA := sa.Get(id).(*A)
		b, okB := sb.Get(id).(*B)
		c, okC := sc.Get(id).(*C)
		d, okD := sd.Get(id).(*D)
		if !okA || !okB || !okC || !okD {
			continue
		}
		fn(e, a, b, c, d)
	}
}

// First returns the first live entity holding kind.
func First[A any](w *World, ka component.ComponentKind[A]) (Entity, bool) {
	sa := w.store(ka.ID(), false)
	if sa == nil {
		return 0, false
	}
	for _, id := range sa.denseEntities {
		if e, ok := w.entities.handle(id); ok {
			return e, true
		}
	}
	return 0, false
}

// Count returns how many entities hold kind.
func Count[A any](w *World, ka component.ComponentKind[A]) int {
	return w.store(ka.ID(), false).Len()
}
