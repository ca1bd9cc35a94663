package ecs

import (
	"fmt"

	"github.com/milk9111/blockdash/ecs/component"
)

// System updates a world each tick.
type System interface {
	Update(w *World)
}

// World owns entities, component stores, the per-tick event queue, the
// contact set filled by physics and the block kind index.
type World struct {
	entities  entityStore
	stores    map[component.ComponentID]*SparseSet
	events    EventQueue
	contacts  ContactSet
	blocks    BlockIndex
	scheduler Scheduler
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot. It returns
// false when e was not alive.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e)
	}
	w.blocks.remove(e)
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Count returns the number of live entities.
func (w *World) Count() int {
	if w == nil {
		return 0
	}
	return w.entities.count
}

// AddSystem registers a system in the given stage.
func (w *World) AddSystem(stage Stage, s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(stage, s)
}

// Update runs all systems once in stage order, then drops this tick's events.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.scheduler.Update(w)
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Contacts returns the contact pairs reported by physics for this tick.
func (w *World) Contacts() *ContactSet {
	if w == nil {
		return nil
	}
	return &w.contacts
}

// Blocks returns the block kind index.
func (w *World) Blocks() *BlockIndex {
	if w == nil {
		return nil
	}
	return &w.blocks
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		if !create {
			return nil
		}
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s := w.stores[id]
	if s == nil && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// AddComponent stores value for e under the given kind, replacing any
// previous value.
func (w *World) AddComponent(e Entity, kind component.Kind, value any) error {
	if w == nil || !w.IsAlive(e) {
		return fmt.Errorf("add component to %v: %w", e, component.ErrEntityNotAlive)
	}
	if kind == nil || !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	w.store(kind.ID(), true).Set(e, value)
	return nil
}

// RemoveComponent deletes the component of the given kind from e.
func (w *World) RemoveComponent(e Entity, kind component.Kind) bool {
	if w == nil || kind == nil || !w.IsAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).Remove(e)
}

// HasComponent reports whether e carries the given kind.
func (w *World) HasComponent(e Entity, kind component.Kind) bool {
	if w == nil || kind == nil || !w.IsAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).Has(e)
}

// GetComponent returns the raw value stored for e.
func (w *World) GetComponent(e Entity, kind component.Kind) (any, bool) {
	if w == nil || kind == nil || !w.IsAlive(e) {
		return nil, false
	}
	return w.store(kind.ID(), false).Get(e)
}

// Query returns live entities carrying every kind, ordered like the first
// kind's store. The slice is a fresh copy and safe to hold across mutations.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		if k == nil {
			return nil
		}
		s := w.store(k.ID(), false)
		if s == nil {
			return nil
		}
		stores = append(stores, s)
	}
	out := make([]Entity, 0, stores[0].Len())
	for _, e := range stores[0].Entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		ok := true
		for _, s := range stores[1:] {
			if !s.Has(e) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns one live entity carrying kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	if w == nil || kind == nil {
		return 0, false
	}
	for _, e := range w.store(kind.ID(), false).Entities() {
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}

// MustFirst is First for invariant-checked singletons; it panics when the
// singleton is missing.
func (w *World) MustFirst(kind component.Kind) Entity {
	e, ok := w.First(kind)
	if !ok {
		panic(fmt.Sprintf("ecs: required singleton with component %d is missing", kind.ID()))
	}
	return e
}

func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

func DestroyEntity(w *World, e Entity) bool {
	return w.DestroyEntity(e)
}

func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}
