package wordarena

import (
	"github.com/jakecoffman/cp"
)

// BodyState is a snapshot of one word body.
type BodyState struct {
	ID       WordID
	Text     string
	Position Vec2
	Velocity Vec2
	Radius   float64
}

// World is the physics engine as seen by the arena: static walls, dynamic
// word bubbles and a fixed-step advance. Implementations own collision
// response, integration and damping.
type World interface {
	AddWall(w Wall)
	AddBubble(word Word, pos, vel Vec2)
	RemoveBubble(id WordID) bool
	Bubble(id WordID) (BodyState, bool)
	// Bubbles returns every word body in insertion order.
	Bubbles() []BodyState
	Step(dt float64)
}

// PhysicsConfig holds the engine parameters used by NewPhysicsWorld.
type PhysicsConfig struct {
	BubbleRadius float64
	Restitution  float64
	// Damping is the fraction of velocity kept after one second.
	Damping float64
	Gravity Vec2
}

type bubbleBody struct {
	word  Word
	body  *cp.Body
	shape *cp.Shape
}

// PhysicsWorld implements World on top of a Chipmunk2D space.
type PhysicsWorld struct {
	space   *cp.Space
	cfg     PhysicsConfig
	walls   []*cp.Shape
	bubbles map[WordID]*bubbleBody
	order   []WordID
}

const (
	bubbleMass     = 1.0
	bubbleFriction = 0.1
	wallFriction   = 0.1
	solverPasses   = 10
)

// NewPhysicsWorld creates an empty Chipmunk2D space configured from cfg.
func NewPhysicsWorld(cfg PhysicsConfig) *PhysicsWorld {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: cfg.Gravity.X, Y: cfg.Gravity.Y})
	space.SetDamping(cfg.Damping)
	space.Iterations = solverPasses
	return &PhysicsWorld{
		space:   space,
		cfg:     cfg,
		bubbles: make(map[WordID]*bubbleBody),
	}
}

// AddWall inserts a static box.
func (w *PhysicsWorld) AddWall(wall Wall) {
	body := cp.NewStaticBody()
	body.SetPosition(cp.Vector{X: wall.Center.X, Y: wall.Center.Y})
	body.SetAngle(wall.Angle)
	w.space.AddBody(body)

	shape := w.space.AddShape(cp.NewBox(body, wall.Thickness, wall.Length, 0))
	shape.SetElasticity(1)
	shape.SetFriction(wallFriction)
	w.walls = append(w.walls, shape)
}

// AddBubble inserts a dynamic circle for word. An existing body for the same
// ID is replaced.
func (w *PhysicsWorld) AddBubble(word Word, pos, vel Vec2) {
	w.RemoveBubble(word.ID)

	r := w.cfg.BubbleRadius
	body := cp.NewBody(bubbleMass, cp.MomentForCircle(bubbleMass, 0, r, cp.Vector{}))
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	body.SetVelocity(vel.X, vel.Y)
	body.UserData = word.ID
	w.space.AddBody(body)

	shape := w.space.AddShape(cp.NewCircle(body, r, cp.Vector{}))
	shape.SetElasticity(w.cfg.Restitution)
	shape.SetFriction(bubbleFriction)

	w.bubbles[word.ID] = &bubbleBody{word: word, body: body, shape: shape}
	w.order = append(w.order, word.ID)
}

// RemoveBubble deletes the body for id.
func (w *PhysicsWorld) RemoveBubble(id WordID) bool {
	b, ok := w.bubbles[id]
	if !ok {
		return false
	}
	w.space.RemoveShape(b.shape)
	w.space.RemoveBody(b.body)
	delete(w.bubbles, id)
	for i, oid := range w.order {
		if oid == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	return true
}

// Bubble returns the current state of the body for id.
func (w *PhysicsWorld) Bubble(id WordID) (BodyState, bool) {
	b, ok := w.bubbles[id]
	if !ok {
		return BodyState{}, false
	}
	return w.state(b), true
}

// Bubbles returns every word body in insertion order.
func (w *PhysicsWorld) Bubbles() []BodyState {
	out := make([]BodyState, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.state(w.bubbles[id]))
	}
	return out
}

// WallCount returns the number of static walls.
func (w *PhysicsWorld) WallCount() int { return len(w.walls) }

// Step advances the simulation by dt seconds.
func (w *PhysicsWorld) Step(dt float64) {
	w.space.Step(dt)
}

func (w *PhysicsWorld) state(b *bubbleBody) BodyState {
	p := b.body.Position()
	v := b.body.Velocity()
	return BodyState{
		ID:       b.word.ID,
		Text:     b.word.Text,
		Position: Vec2{X: p.X, Y: p.Y},
		Velocity: Vec2{X: v.X, Y: v.Y},
		Radius:   w.cfg.BubbleRadius,
	}
}
