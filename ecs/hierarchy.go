package ecs

import "github.com/milk9111/blockdash/ecs/component"

// Children returns the live entities whose Parent points at e.
func Children(w *World, e Entity) []Entity {
	var out []Entity
	ForEach(w, component.ParentComponent.Kind(), func(child Entity, p *component.Parent) {
		if Entity(p.Entity) == e {
			out = append(out, child)
		}
	})
	return out
}

// DestroyRecursive destroys e and its whole subtree, children first. It
// returns the number of entities destroyed.
func DestroyRecursive(w *World, e Entity) int {
	if !w.IsAlive(e) {
		return 0
	}
	n := 0
	for _, child := range Children(w, e) {
		n += DestroyRecursive(w, child)
	}
	if w.DestroyEntity(e) {
		n++
	}
	return n
}
