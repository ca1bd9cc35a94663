package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/blockdash/ecs"
	"github.com/milk9111/blockdash/ecs/component"
	"github.com/milk9111/blockdash/ecs/entity"
)

func TestCameraFollowsPlayerHorizontally(t *testing.T) {
	res := testResources(t, "")
	w := newTestWorld(t, component.ModeLevel)
	p := spawnTestPlayer(t, w, res)
	cam, err := entity.NewCamera(w, component.ModeLevel, 0, 0, 1)
	require.NoError(t, err)

	cs := NewCameraSystem(res)
	cs.Update(w)
	camT, _ := ecs.Get(w, cam, component.TransformComponent.Kind())
	assert.Zero(t, camT.X)

	pt, _ := ecs.Get(w, p, component.TransformComponent.Kind())
	pt.X += 50
	pt.Y -= 80
	cs.Update(w)
	assert.Equal(t, 50.0, camT.X)
	assert.Zero(t, camT.Y)
}

func TestCameraPanAndZoom(t *testing.T) {
	res := testResources(t, "")
	w := newTestWorld(t, component.ModeEditor)
	cam, err := entity.NewCamera(w, component.ModeEditor, 0, 0, 1)
	require.NoError(t, err)
	c, _ := ecs.Get(w, cam, component.CameraComponent.Kind())
	camT, _ := ecs.Get(w, cam, component.TransformComponent.Kind())
	dt := frameDelta(w)
	cs := NewCameraSystem(res)

	in := mustInput(t, w)
	in.PanX, in.PanY = 1, -1
	cs.Update(w)
	assert.InDelta(t, 1000*dt, camT.X, 1e-9)
	assert.InDelta(t, -1000*dt, camT.Y, 1e-9)

	*in = component.Input{ScrollY: 3, ScrollUnit: component.ScrollLine}
	cs.Update(w)
	assert.InDelta(t, 1-dt*10*3, c.Scale, 1e-9)

	before := c.Scale
	*in = component.Input{ScrollY: 120, ScrollUnit: component.ScrollPixel}
	cs.Update(w)
	assert.Equal(t, before, c.Scale)

	*in = component.Input{ScrollY: 1000, ScrollUnit: component.ScrollLine}
	cs.Update(w)
	assert.Equal(t, 0.1, c.Scale)

	*in = component.Input{ScrollY: -1000, ScrollUnit: component.ScrollLine}
	cs.Update(w)
	assert.Equal(t, 10.0, c.Scale)
}

func TestCameraScreenToWorld(t *testing.T) {
	c := &component.Camera{Scale: 0.5}
	x, y, ok := c.ScreenToWorld(100, 50, 640, 360, 1280, 720)
	require.True(t, ok)
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 50.0, y)

	x, y, ok = c.ScreenToWorld(100, 50, 740, 260, 1280, 720)
	require.True(t, ok)
	assert.Equal(t, 150.0, x)
	assert.Equal(t, 100.0, y)

	sx, sy := c.WorldToScreen(100, 50, x, y, 1280, 720)
	assert.Equal(t, 740.0, sx)
	assert.Equal(t, 260.0, sy)

	_, _, ok = c.ScreenToWorld(0, 0, 1280, 0, 1280, 720)
	assert.False(t, ok)
}
