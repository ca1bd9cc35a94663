package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Body and Shape are owned by the physics system and filled on first sync.
type PhysicsBody struct {
	Body       *cp.Body
	Shape      *cp.Shape
	Width      float64
	Height     float64
	Mass       float64
	Friction   float64
	Elasticity float64
	// Radius bevels box corners so dynamic bodies slide over tile seams.
	Radius float64
	Static bool
	// Sensor shapes report contacts without producing a collision response.
	Sensor bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// Velocity is the linear velocity in world units per second. The physics
// system pushes it into the body before each step and reads it back after.
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()
