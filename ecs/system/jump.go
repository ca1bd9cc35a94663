package system

import (
	"github.com/milk9111/blockdash/common"
	"github.com/milk9111/blockdash/ecs"
	"github.com/milk9111/blockdash/ecs/component"
)

// JumpSystem runs the grounded/airborne machine of every player: roll while
// airborne, land on a ground event with the roll snapped to a quarter turn,
// and jump from the ground on input.
type JumpSystem struct{}

func NewJumpSystem() *JumpSystem { return &JumpSystem{} }

func (s *JumpSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := frameDelta(w)

	grounded := make(map[ecs.Entity]bool)
	for _, evt := range ecs.EventsOf[ecs.CollisionEvent](w) {
		if evt.Kind == ecs.CollisionEventGrounded {
			grounded[evt.Player] = true
		}
	}

	var jump, jumpHeld bool
	if in, ok := inputState(w); ok {
		jump, jumpHeld = in.JumpPressed, in.Jump
	}

	ecs.ForEach4(w, component.PlayerComponent.Kind(), component.JumpStateComponent.Kind(), component.VelocityComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, p *component.Player, js *component.JumpState, v *component.Velocity, t *component.Transform) {
			if js.Airborne {
				js.Rotation -= p.RotationRate * dt
				if grounded[e] {
					js.Airborne = false
					js.Rotation = CeilToFullRotation(js.Rotation)
				}
			}

			if !js.Airborne && (jump || (p.JumpOnHold && jumpHeld)) {
				js.Airborne = true
				v.Y = p.JumpImpulse
			}

			t.Rotation = common.DegToRad(js.Rotation)
		})
}

// CeilToFullRotation snaps an accumulated roll in degrees to the quarter
// turn below its truncated integer value: 233 -> 90, -233 -> -270,
// -90 -> -180.
func CeilToFullRotation(v float64) float64 {
	i := int(v)
	i = i - 90 - i%90
	return float64(i)
}
