package system

import (
	"github.com/sirupsen/logrus"

	"github.com/milk9111/blockdash/common"
	"github.com/milk9111/blockdash/ecs"
	"github.com/milk9111/blockdash/ecs/component"
	"github.com/milk9111/blockdash/logging"
)

const (
	defaultPanSpeed  = 1000.0
	defaultZoomSpeed = 10.0
	defaultMinScale  = 0.1
	defaultMaxScale  = 10.0
)

// CameraSystem moves following cameras by the player's horizontal delta and
// applies the pan and zoom controls to every camera.
type CameraSystem struct {
	res *Resources
	log *logrus.Entry
}

func NewCameraSystem(res *Resources) *CameraSystem {
	return &CameraSystem{res: res, log: logging.System("camera")}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := frameDelta(w)
	in, hasInput := inputState(w)

	var target *component.Transform
	if p, ok := w.First(component.PlayerTagComponent.Kind()); ok {
		target, _ = ecs.Get(w, p, component.TransformComponent.Kind())
	}

	ecs.ForEach3(w, component.CameraTagComponent.Kind(), component.CameraComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, _ *component.CameraTag, cam *component.Camera, t *component.Transform) {
			if cam.Follow && target != nil {
				followTarget(cam, t, target.X)
			}
			if hasInput {
				cs.applyControls(cam, t, in, dt)
			}
		})
}

func followTarget(cam *component.Camera, t *component.Transform, targetX float64) {
	if !cam.HasTarget {
		cam.LastTargetX = targetX
		cam.HasTarget = true
		return
	}
	t.X += targetX - cam.LastTargetX
	cam.LastTargetX = targetX
}

func (cs *CameraSystem) applyControls(cam *component.Camera, t *component.Transform, in *component.Input, dt float64) {
	pan, zoom := defaultPanSpeed, defaultZoomSpeed
	minScale, maxScale := defaultMinScale, defaultMaxScale
	if cs.res != nil && cs.res.Camera != nil {
		spec := cs.res.Camera
		if spec.PanSpeed > 0 {
			pan = spec.PanSpeed
		}
		if spec.ZoomSpeed > 0 {
			zoom = spec.ZoomSpeed
		}
		if spec.MinScale > 0 {
			minScale = spec.MinScale
		}
		if spec.MaxScale > 0 {
			maxScale = spec.MaxScale
		}
	}

	t.X += in.PanX * pan * dt
	t.Y += in.PanY * pan * dt

	if in.ScrollY == 0 {
		return
	}
	if in.ScrollUnit == component.ScrollPixel {
		cs.log.WithField("delta", in.ScrollY).Debug("ignoring pixel scroll")
		return
	}
	cam.Scale = common.Clamp(cam.EffectiveScale()-dt*zoom*in.ScrollY, minScale, maxScale)
}
