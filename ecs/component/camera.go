package component

// Camera describes a 2D camera centred on its Transform.
//
// Scale is world units per screen pixel, so larger values zoom out. A
// following camera adds the target's per-tick horizontal delta to its own X.
type Camera struct {
	Scale       float64
	Follow      bool
	LastTargetX float64
	HasTarget   bool
}

var CameraComponent = NewComponent[Camera]()

// ScreenToWorld maps a screen pixel to world space for a camera centred at
// (camX, camY) on a viewport of vw x vh pixels. It fails when the pixel lies
// outside the viewport.
func (c *Camera) ScreenToWorld(camX, camY, sx, sy, vw, vh float64) (float64, float64, bool) {
	if c == nil || sx < 0 || sy < 0 || sx >= vw || sy >= vh {
		return 0, 0, false
	}
	scale := c.EffectiveScale()
	wx := camX + (sx-vw/2)*scale
	wy := camY - (sy-vh/2)*scale
	return wx, wy, true
}

// WorldToScreen is the inverse of ScreenToWorld without the viewport check.
func (c *Camera) WorldToScreen(camX, camY, wx, wy, vw, vh float64) (float64, float64) {
	scale := c.EffectiveScale()
	return (wx-camX)/scale + vw/2, (camY-wy)/scale + vh/2
}

func (c *Camera) EffectiveScale() float64 {
	if c == nil || c.Scale <= 0 {
		return 1
	}
	return c.Scale
}
