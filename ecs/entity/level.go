package entity

import (
	"fmt"

	"github.com/milk9111/blockdash/ecs"
	"github.com/milk9111/blockdash/ecs/component"
	"github.com/milk9111/blockdash/levels"
	"github.com/milk9111/blockdash/prefabs"
)

// SpawnLevel spawns one block per record, in order, at the recorded
// coordinates. On failure every block it created is destroyed again.
func SpawnLevel(w *ecs.World, d levels.Descriptor, catalog *prefabs.BlockCatalog, owner component.Mode) ([]ecs.Entity, error) {
	spawned := make([]ecs.Entity, 0, len(d))
	for i, r := range d {
		e, err := NewBlock(w, catalog, BlockParams{
			ID:    r.BlockID,
			Name:  r.Name,
			Kind:  component.BlockKind(r.Purpose),
			X:     float64(r.Position[0]),
			Y:     float64(r.Position[1]),
			Owner: owner,
			Order: i,
		})
		if err != nil {
			for _, s := range spawned {
				w.DestroyEntity(s)
			}
			return nil, fmt.Errorf("spawn level: record %d: %w", i, err)
		}
		spawned = append(spawned, e)
	}
	return spawned, nil
}

// DescribeBlocks builds a descriptor from the given block entities in order.
// Positions are rounded to whole units.
func DescribeBlocks(w *ecs.World, blocks []ecs.Entity) levels.Descriptor {
	out := make(levels.Descriptor, 0, len(blocks))
	for _, e := range blocks {
		b, ok := ecs.Get(w, e, component.BlockComponent.Kind())
		if !ok {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		out = append(out, levels.Record{
			BlockID:  b.ID,
			Name:     b.Name,
			Purpose:  levels.Purpose(b.Kind),
			Position: [2]int{roundInt(t.X), roundInt(t.Y)},
		})
	}
	return out
}

func roundInt(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}
