package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/blockdash/ecs"
	"github.com/milk9111/blockdash/ecs/component"
	"github.com/milk9111/blockdash/prefabs"
)

var defaultPlayerColor = color.NRGBA{R: 0x7d, G: 0xff, B: 0x85, A: 0xff}

// NewPlayer spawns the player at the configured start position, owned by the
// Level session.
func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: nil spec")
	}

	width, height := spec.Collider.Width, spec.Collider.Height
	if width <= 0 || height <= 0 {
		width, height = 50, 50
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		RunSpeed:     spec.RunSpeed,
		JumpImpulse:  spec.JumpImpulse,
		RotationRate: spec.RotationRate,
		JumpOnHold:   spec.JumpOnHold,
		StartX:       spec.Start.X,
		StartY:       spec.Start.Y,
		KillY:        spec.KillY,
	}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, e, component.JumpStateComponent.Kind(), component.NewJumpState()); err != nil {
		return 0, fmt.Errorf("player: add jump state: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spec.Start.X, Y: spec.Start.Y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{X: spec.RunSpeed}); err != nil {
		return 0, fmt.Errorf("player: add velocity: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:  width,
		Height: height,
		Mass:   1,
		Radius: spec.Radius,
	}); err != nil {
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Color:  spec.Color.NRGBA(defaultPlayerColor),
		Width:  width,
		Height: height,
	}); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}
	if err := own(w, e, component.ModeLevel); err != nil {
		return 0, fmt.Errorf("player: add session owner: %w", err)
	}
	return e, nil
}
