package component

// Player holds the tuning of an auto-running player.
type Player struct {
	RunSpeed     float64
	JumpImpulse  float64
	RotationRate float64
	JumpOnHold   bool
	StartX       float64
	StartY       float64
	KillY        float64
}

var PlayerComponent = NewComponent[Player]()
