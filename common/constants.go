package common

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// Gravity is the downward acceleration applied by the physics space, in px/s^2.
// World space is y-up: the ground row sits below the origin.
const Gravity = 3000.0

// BlockSize is the edge length of a placement grid cell in world units.
const BlockSize = 64.0

const TicksPerSecond = 60
