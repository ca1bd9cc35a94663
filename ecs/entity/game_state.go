package entity

import (
	"fmt"

	"github.com/milk9111/blockdash/common"
	"github.com/milk9111/blockdash/ecs"
	"github.com/milk9111/blockdash/ecs/component"
)

// NewGameState creates the process-wide singleton. It is created once at
// startup and never owned by a session.
func NewGameState(w *ecs.World, start component.Mode, selected int) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.GameStateTagComponent.Kind(), &component.GameStateTag{}); err != nil {
		return 0, fmt.Errorf("game state: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.ModeStateComponent.Kind(), &component.ModeState{Desired: start}); err != nil {
		return 0, fmt.Errorf("game state: add mode state: %w", err)
	}
	if err := ecs.Add(w, e, component.EditorSelectionComponent.Kind(), &component.EditorSelection{Selected: selected}); err != nil {
		return 0, fmt.Errorf("game state: add editor selection: %w", err)
	}
	if err := ecs.Add(w, e, component.AttemptCounterComponent.Kind(), &component.AttemptCounter{}); err != nil {
		return 0, fmt.Errorf("game state: add attempt counter: %w", err)
	}
	if err := ecs.Add(w, e, component.FrameTimeComponent.Kind(), &component.FrameTime{Delta: 1.0 / common.TicksPerSecond}); err != nil {
		return 0, fmt.Errorf("game state: add frame time: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("game state: add input: %w", err)
	}
	return e, nil
}

func own(w *ecs.World, e ecs.Entity, mode component.Mode) error {
	return ecs.Add(w, e, component.SessionOwnerComponent.Kind(), &component.SessionOwner{Mode: mode})
}
