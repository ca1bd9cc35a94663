package system

import (
	"github.com/milk9111/blockdash/ecs"
	"github.com/milk9111/blockdash/ecs/component"
)

// CollisionSystem turns this tick's physics contacts into gameplay events:
// one grounded event per touching ground block and at most one respawn
// request per player.
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem { return &CollisionSystem{} }

func (s *CollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	contacts := w.Contacts()
	grounds := w.Blocks().Of(component.BlockGround)
	hazards := w.Blocks().Of(component.BlockHazard)

	ecs.ForEach3(w, component.PlayerTagComponent.Kind(), component.PlayerComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, _ *component.PlayerTag, p *component.Player, t *component.Transform) {
			for _, g := range grounds {
				if contacts.Touching(e, g) {
					ecs.Emit(w, ecs.EventCollision, ecs.CollisionEvent{Player: e, Other: g, Kind: ecs.CollisionEventGrounded})
				}
			}

			cause, respawn := ecs.RespawnCause(""), false
			for _, h := range hazards {
				if contacts.Touching(e, h) {
					ecs.Emit(w, ecs.EventCollision, ecs.CollisionEvent{Player: e, Other: h, Kind: ecs.CollisionEventHitHazard})
					if !respawn {
						cause, respawn = ecs.RespawnHazard, true
					}
				}
			}
			// A zero kill plane disables the check.
			if !respawn && p.KillY != 0 && t.Y < p.KillY {
				cause, respawn = ecs.RespawnKillPlane, true
			}
			if respawn {
				ecs.Emit(w, ecs.EventRespawnRequested, ecs.RespawnRequestedEvent{Player: e, Cause: cause})
			}
		})
}
