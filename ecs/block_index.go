package ecs

import (
	"slices"

	"github.com/milk9111/blockdash/ecs/component"
)

// BlockIndex maps a block kind to the set of live block entities of that
// kind, so systems can filter by kind without scanning every block.
type BlockIndex struct {
	byKind map[component.BlockKind]map[Entity]struct{}
	kindOf map[Entity]component.BlockKind
}

// Insert files e under kind, moving it if it was indexed under another kind.
func (b *BlockIndex) Insert(e Entity, kind component.BlockKind) {
	if b == nil || !e.Valid() {
		return
	}
	if b.byKind == nil {
		b.byKind = make(map[component.BlockKind]map[Entity]struct{})
		b.kindOf = make(map[Entity]component.BlockKind)
	}
	b.remove(e)
	set := b.byKind[kind]
	if set == nil {
		set = make(map[Entity]struct{})
		b.byKind[kind] = set
	}
	set[e] = struct{}{}
	b.kindOf[e] = kind
}

func (b *BlockIndex) remove(e Entity) {
	if b == nil || b.kindOf == nil {
		return
	}
	kind, ok := b.kindOf[e]
	if !ok {
		return
	}
	delete(b.byKind[kind], e)
	delete(b.kindOf, e)
}

// Of returns the entities of kind in ascending handle order.
func (b *BlockIndex) Of(kind component.BlockKind) []Entity {
	if b == nil || b.byKind == nil {
		return nil
	}
	set := b.byKind[kind]
	out := make([]Entity, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	slices.Sort(out)
	return out
}

// KindOf returns the kind e was indexed under.
func (b *BlockIndex) KindOf(e Entity) (component.BlockKind, bool) {
	if b == nil || b.kindOf == nil {
		return 0, false
	}
	k, ok := b.kindOf[e]
	return k, ok
}

func (b *BlockIndex) Len(kind component.BlockKind) int {
	if b == nil || b.byKind == nil {
		return 0
	}
	return len(b.byKind[kind])
}
