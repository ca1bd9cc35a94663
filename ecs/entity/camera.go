package entity

import (
	"fmt"

	"github.com/milk9111/blockdash/ecs"
	"github.com/milk9111/blockdash/ecs/component"
)

// NewCamera spawns a camera centred at (x, y). Level cameras follow the
// player horizontally; editor cameras only move through the controls.
func NewCamera(w *ecs.World, owner component.Mode, x, y, scale float64) (ecs.Entity, error) {
	if scale <= 0 {
		scale = 1
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Scale:  scale,
		Follow: owner == component.ModeLevel,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	if err := own(w, camera, owner); err != nil {
		return 0, fmt.Errorf("camera: add session owner: %w", err)
	}
	return camera, nil
}
