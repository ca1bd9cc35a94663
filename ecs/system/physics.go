package system

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/blockdash/common"
	"github.com/milk9111/blockdash/ecs"
	"github.com/milk9111/blockdash/ecs/component"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeGround
	collisionTypeHazard
	collisionTypeDecor
)

// groundNormalY is how far the contact normal (player to block) must point
// downward before a ground contact counts as standing on it.
const groundNormalY = -0.5

// PhysicsSystem mirrors entities with a PhysicsBody into a Chipmunk space,
// steps it, and records player contacts into the world's ContactSet.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool

	entities     map[ecs.Entity]*bodyInfo
	playerShapes map[*cp.Shape]ecs.Entity
	blockShapes  map[*cp.Shape]ecs.Entity

	contacts *ecs.ContactSet
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:        newSpace(),
		entities:     make(map[ecs.Entity]*bodyInfo),
		playerShapes: make(map[*cp.Shape]ecs.Entity),
		blockShapes:  make(map[*cp.Shape]ecs.Entity),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: -common.Gravity})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.ensureHandlers()
	ps.syncEntities(w)

	ps.contacts = w.Contacts()
	ps.contacts.Reset()

	ps.pushDynamic(w)
	ps.space.Step(frameDelta(w))
	ps.pullDynamic(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	groundHandler := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypeGround)
	groundHandler.UserData = ps
	groundHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		player, block, n, ok := sys.resolvePair(arb)
		if !ok {
			return true
		}
		// Only count as ground when the block is below the player.
		if n.Y < groundNormalY {
			sys.contacts.Add(player, block)
		}
		return true
	}

	hazardHandler := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypeHazard)
	hazardHandler.UserData = ps
	hazardHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		if player, block, _, ok := sys.resolvePair(arb); ok {
			sys.contacts.Add(player, block)
		}
		return true
	}

	ps.handlersReady = true
}

// resolvePair returns the player and block of an arbiter and the contact
// normal pointing from the player toward the block.
func (ps *PhysicsSystem) resolvePair(arb *cp.Arbiter) (ecs.Entity, ecs.Entity, cp.Vector, bool) {
	shapeA, shapeB := arb.Shapes()
	n := arb.Normal()
	player, playerIsA := ps.playerShapes[shapeA]
	other := shapeB
	if !playerIsA {
		var ok bool
		player, ok = ps.playerShapes[shapeB]
		if !ok {
			return 0, 0, n, false
		}
		other = shapeA
		n = n.Neg()
	}
	block, ok := ps.blockShapes[other]
	if !ok || ps.contacts == nil {
		return 0, 0, n, false
	}
	return player, block, n, true
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	entities := w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		if _, ok := ps.entities[e]; ok {
			continue
		}
		bodyComp, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())

		isPlayer := ecs.Has(w, e, component.PlayerTagComponent.Kind())
		kind, isBlock := w.Blocks().KindOf(e)

		info := ps.createBodyInfo(transform, bodyComp)
		if info == nil {
			continue
		}
		switch {
		case isPlayer:
			info.shape.SetCollisionType(collisionTypePlayer)
			ps.playerShapes[info.shape] = e
		case isBlock:
			info.shape.SetCollisionType(blockCollisionType(kind))
			ps.blockShapes[info.shape] = e
		}

		ps.entities[e] = info
		bodyComp.Body = info.body
		bodyComp.Shape = info.shape
	}
}

func blockCollisionType(kind component.BlockKind) cp.CollisionType {
	switch kind {
	case component.BlockGround:
		return collisionTypeGround
	case component.BlockHazard:
		return collisionTypeHazard
	default:
		return collisionTypeDecor
	}
}

func (ps *PhysicsSystem) createBodyInfo(transform *component.Transform, bodyComp *component.PhysicsBody) *bodyInfo {
	width, height := bodyComp.Width, bodyComp.Height
	if width <= 0 || height <= 0 {
		width, height = common.BlockSize, common.BlockSize
	}

	if bodyComp.Static {
		bb := cp.BB{
			L: transform.X - width/2,
			B: transform.Y - height/2,
			R: transform.X + width/2,
			T: transform.Y + height/2,
		}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetElasticity(bodyComp.Elasticity)
		shape.SetSensor(bodyComp.Sensor)
		ps.space.AddShape(shape)
		return &bodyInfo{body: ps.space.StaticBody, shape: shape, static: true}
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}
	// Infinite moment: the visual roll is driven by the jump state machine.
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})

	radius := bodyComp.Radius
	shape := cp.NewBox(body, width-2*radius, height-2*radius, radius)
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetSensor(bodyComp.Sensor)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	return &bodyInfo{body: body, shape: shape}
}

// pushDynamic copies Transform and Velocity into dynamic bodies so systems
// that teleport or steer an entity are honoured by the next step.
func (ps *PhysicsSystem) pushDynamic(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static {
			continue
		}
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			info.body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
		}
		if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			info.body.SetVelocityVector(cp.Vector{X: v.X, Y: v.Y})
		}
	}
}

func (ps *PhysicsSystem) pullDynamic(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static {
			continue
		}
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			pos := info.body.Position()
			t.X = pos.X
			t.Y = pos.Y
		}
		if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			vel := info.body.Velocity()
			v.X = vel.X
			v.Y = vel.Y
		}
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}

		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
			delete(ps.playerShapes, info.shape)
			delete(ps.blockShapes, info.shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}
