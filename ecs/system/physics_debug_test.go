package system

import (
	"image/color"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func TestToNRGBAClamps(t *testing.T) {
	got := toNRGBA(cp.FColor{R: 2, G: -1, B: 0.5, A: 1})
	assert.Equal(t, color.NRGBA{R: 255, G: 0, B: 127, A: 255}, got)
}

func TestShapeColorMarksSensors(t *testing.T) {
	space := cp.NewSpace()
	solid := cp.NewBox2(space.StaticBody, cp.BB{L: 0, B: 0, R: 64, T: 64}, 0)
	sensor := cp.NewBox2(space.StaticBody, cp.BB{L: 64, B: 0, R: 128, T: 64}, 0)
	sensor.SetSensor(true)

	d := &physicsDebugDrawer{}
	assert.NotEqual(t, d.ShapeColor(solid, nil), d.ShapeColor(sensor, nil))
	assert.Equal(t, d.ShapeColor(sensor, nil), d.ShapeColor(sensor, nil))
}
