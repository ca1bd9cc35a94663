package entity

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/milk9111/blockdash/ecs"
	"github.com/milk9111/blockdash/ecs/component"
	"github.com/milk9111/blockdash/prefabs"
)

var ErrUnknownBlock = errors.New("entity: unknown block id")

var defaultBlockColor = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

// BlockParams describes one block to place. Name falls back to the
// catalog name when empty.
type BlockParams struct {
	ID    int
	Name  string
	Kind  component.BlockKind
	X, Y  float64
	Owner component.Mode
	Order int
}

// NewBlock spawns a static block centred at (X, Y) using the catalog entry
// for ID. Hazard and clipped blocks get sensor shapes.
func NewBlock(w *ecs.World, catalog *prefabs.BlockCatalog, p BlockParams) (ecs.Entity, error) {
	spec, ok := catalog.Lookup(p.ID)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownBlock, p.ID)
	}
	if !p.Kind.Valid() {
		return 0, fmt.Errorf("block %d: invalid kind %d", p.ID, int(p.Kind))
	}
	name := p.Name
	if name == "" {
		name = spec.Name
	}

	e := ecs.CreateEntity(w)
	if err := addBlockComponents(w, e, catalog, spec, name, p); err != nil {
		w.DestroyEntity(e)
		return 0, err
	}
	w.Blocks().Insert(e, p.Kind)
	return e, nil
}

func addBlockComponents(w *ecs.World, e ecs.Entity, catalog *prefabs.BlockCatalog, spec prefabs.BlockSpec, name string, p BlockParams) error {
	if err := ecs.Add(w, e, component.BlockComponent.Kind(), &component.Block{ID: p.ID, Name: name, Kind: p.Kind, Order: p.Order}); err != nil {
		return fmt.Errorf("block: add block: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:      p.X,
		Y:      p.Y,
		ScaleX: catalog.VisualScale,
		ScaleY: catalog.VisualScale,
	}); err != nil {
		return fmt.Errorf("block: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:  spec.Collider.Width,
		Height: spec.Collider.Height,
		Static: true,
		Sensor: p.Kind != component.BlockGround,
	}); err != nil {
		return fmt.Errorf("block: add physics body: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Color:  spec.Color.NRGBA(defaultBlockColor),
		Width:  catalog.VisualSize,
		Height: catalog.VisualSize,
		Spike:  spec.Spike,
	}); err != nil {
		return fmt.Errorf("block: add sprite: %w", err)
	}
	if err := own(w, e, p.Owner); err != nil {
		return fmt.Errorf("block: add session owner: %w", err)
	}
	return nil
}
