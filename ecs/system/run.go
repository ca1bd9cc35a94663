package system

import (
	"github.com/milk9111/blockdash/ecs"
	"github.com/milk9111/blockdash/ecs/component"
)

// RunSystem keeps every player moving right at its run speed.
type RunSystem struct{}

func NewRunSystem() *RunSystem { return &RunSystem{} }

func (s *RunSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.VelocityComponent.Kind(), func(_ ecs.Entity, p *component.Player, v *component.Velocity) {
		v.X = p.RunSpeed
	})
}
