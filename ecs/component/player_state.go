package component

// JumpState is the per-player grounded/airborne machine plus its visual roll.
//
// Rotation is an unbounded accumulator in degrees; it decreases while airborne
// (clockwise roll in y-up space) and is snapped to a quarter turn on landing.
type JumpState struct {
	Airborne bool
	Rotation float64
}

var JumpStateComponent = NewComponent[JumpState]()

// NewJumpState returns the spawn-time state: airborne and unrotated.
func NewJumpState() *JumpState {
	return &JumpState{Airborne: true}
}
