package ecs

import "github.com/milk9111/dontescape/ecs/component"

// Add attaches value to e, replacing any existing component of the same kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	w.store(kind.ID(), true).Set(e.id(), value)
	return nil
}

// Remove detaches the component of kind from e.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return w.store(kind.ID(), false).Remove(e.id())
}

// Has reports whether e carries a component of kind.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return w.store(kind.ID(), false).Has(e.id())
}

// Get returns the component of kind stored on e.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	v, ok := w.store(kind.ID(), false).Get(e.id()).(*T)
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}
