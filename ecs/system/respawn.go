package system

import (
	"github.com/jakecoffman/cp"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/blockdash/ecs"
	"github.com/milk9111/blockdash/ecs/component"
	"github.com/milk9111/blockdash/logging"
)

// RespawnSystem handles respawn requests: it counts the attempt, puts the
// player back at the level start unrotated and airborne, and recentres the
// level camera.
type RespawnSystem struct {
	res *Resources
	log *logrus.Entry
}

func NewRespawnSystem(res *Resources) *RespawnSystem {
	return &RespawnSystem{res: res, log: logging.System("respawn")}
}

func (s *RespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	handled := make(map[ecs.Entity]bool)
	for _, req := range ecs.EventsOf[ecs.RespawnRequestedEvent](w) {
		if handled[req.Player] || !w.IsAlive(req.Player) {
			continue
		}
		handled[req.Player] = true
		s.respawn(w, req)
	}
}

func (s *RespawnSystem) respawn(w *ecs.World, req ecs.RespawnRequestedEvent) {
	e := req.Player
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return
	}

	if ac, ok := attemptCounter(w); ok {
		ac.Attempts++
		s.log.WithFields(logrus.Fields{"attempts": ac.Attempts, "cause": req.Cause}).Debug("player respawned")
	}

	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.X = p.StartX
		t.Y = p.StartY
		t.Rotation = 0
	}
	if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		v.X = p.RunSpeed
		v.Y = 0
	}
	if js, ok := ecs.Get(w, e, component.JumpStateComponent.Kind()); ok {
		*js = *component.NewJumpState()
	}
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Body != nil && !body.Static {
		body.Body.SetPosition(cp.Vector{X: p.StartX, Y: p.StartY})
		body.Body.SetVelocityVector(cp.Vector{X: p.RunSpeed})
	}

	ox, oy := 0.0, 0.0
	if s.res != nil && s.res.Camera != nil {
		ox, oy = s.res.Camera.LevelOffset.X, s.res.Camera.LevelOffset.Y
	}
	if _, cam, t, ok := sessionCamera(w, component.ModeLevel); ok {
		t.X = p.StartX + ox
		t.Y = p.StartY + oy
		cam.LastTargetX = p.StartX
		cam.HasTarget = true
	}
}
