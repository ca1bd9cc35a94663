package entity

import (
	"fmt"

	"github.com/milk9111/blockdash/ecs"
	"github.com/milk9111/blockdash/ecs/component"
	"github.com/milk9111/blockdash/prefabs"
)

// NewBlockSelector spawns the selector root and one child button per
// catalog block, all owned by the Editor session.
func NewBlockSelector(w *ecs.World, catalog *prefabs.BlockCatalog) (ecs.Entity, error) {
	if catalog == nil {
		return 0, fmt.Errorf("selector: nil catalog")
	}

	root := ecs.CreateEntity(w)
	if err := ecs.Add(w, root, component.UINodeComponent.Kind(), &component.UINode{Name: "block_selector"}); err != nil {
		return 0, fmt.Errorf("selector: add ui node: %w", err)
	}
	if err := own(w, root, component.ModeEditor); err != nil {
		return 0, fmt.Errorf("selector: add session owner: %w", err)
	}

	for _, b := range catalog.Blocks {
		btn := ecs.CreateEntity(w)
		if err := ecs.Add(w, btn, component.BlockButtonComponent.Kind(), &component.BlockButton{BlockID: b.ID, Label: b.Name}); err != nil {
			ecs.DestroyRecursive(w, root)
			return 0, fmt.Errorf("selector: add button %d: %w", b.ID, err)
		}
		if err := ecs.Add(w, btn, component.ParentComponent.Kind(), &component.Parent{Entity: uint64(root)}); err != nil {
			ecs.DestroyRecursive(w, root)
			return 0, fmt.Errorf("selector: add parent: %w", err)
		}
		if err := own(w, btn, component.ModeEditor); err != nil {
			ecs.DestroyRecursive(w, root)
			return 0, fmt.Errorf("selector: add session owner: %w", err)
		}
	}
	return root, nil
}
