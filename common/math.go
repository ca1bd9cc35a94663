package common

import "math"

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// SnapToGrid moves c onto the nearest grid point of the lattice cell*k + offset.
// A coordinate exactly halfway between two points snaps up.
func SnapToGrid(c, cell, offset float64) float64 {
	if cell <= 0 {
		return c
	}
	r := math.Mod(c-offset, cell)
	if r < 0 {
		r += cell
	}
	if r < cell/2 {
		return c - r
	}
	return c + (cell - r)
}

// SnapPoint snaps both axes independently.
func SnapPoint(x, y, cell, offset float64) (float64, float64) {
	return SnapToGrid(x, cell, offset), SnapToGrid(y, cell, offset)
}
