package virtual

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/oomph-ac/webxr/game"
	"github.com/oomph-ac/webxr/interact"
	"github.com/oomph-ac/webxr/proximity"
	"github.com/sirupsen/logrus"
)

// Body is a free-flying rigid body without gravity or collisions.
type Body struct {
	id      uuid.UUID
	tag     string
	size    float32
	pos     mgl32.Vec3
	vel     mgl32.Vec3
	angular mgl32.Vec3
}

func (b *Body) ID() uuid.UUID                   { return b.id }
func (b *Body) Tag() string                     { return b.tag }
func (b *Body) Position() mgl32.Vec3            { return b.pos }
func (b *Body) Velocity() mgl32.Vec3            { return b.vel }
func (b *Body) AngularVelocity() mgl32.Vec3     { return b.angular }
func (b *Body) SetPosition(pos mgl32.Vec3)      { b.pos = pos }
func (b *Body) SetVelocity(v mgl32.Vec3)        { b.vel = v }
func (b *Body) SetAngularVelocity(v mgl32.Vec3) { b.angular = v }

// Joint holds a connected body at its interaction point.
type Joint struct {
	point interact.Point
	body  interact.Body
}

// Connect attaches the body passed, replacing any body already attached.
func (j *Joint) Connect(b interact.Body) { j.body = b }

// Disconnect releases the attached body.
func (j *Joint) Disconnect() { j.body = nil }

// Connected returns the attached body, if any.
func (j *Joint) Connected() (interact.Body, bool) {
	return j.body, j.body != nil
}

// World keeps track of every body and joint of a headless scene.
type World struct {
	log *logrus.Logger

	bodies []*Body
	joints []*Joint
}

// NewWorld creates an empty world.
func NewWorld(log *logrus.Logger) *World {
	return &World{log: log}
}

// Spawn adds a cubic body with the given edge length and tag.
func (w *World) Spawn(pos mgl32.Vec3, size float32, tag string) *Body {
	b := &Body{id: uuid.New(), tag: tag, size: size, pos: pos}
	w.bodies = append(w.bodies, b)
	w.log.Debugf("spawned %s body %s at %v", tag, b.id, pos)
	return b
}

// NewJoint creates a joint anchored to the interaction point passed.
func (w *World) NewJoint(point interact.Point) *Joint {
	j := &Joint{point: point}
	w.joints = append(w.joints, j)
	return j
}

// Step advances the world by dt seconds. Held bodies follow their joint; all others drift with
// their velocity.
func (w *World) Step(dt float32) {
	held := make(map[uuid.UUID]struct{}, len(w.joints))
	for _, j := range w.joints {
		if j.body == nil {
			continue
		}
		j.body.SetPosition(j.point.Position())
		held[j.body.ID()] = struct{}{}
	}
	for _, b := range w.bodies {
		if _, ok := held[b.id]; ok {
			continue
		}
		b.pos = b.pos.Add(b.vel.Mul(dt))
	}
}

// Candidates returns every body as a proximity candidate.
func (w *World) Candidates() []proximity.Candidate {
	candidates := make([]proximity.Candidate, 0, len(w.bodies))
	for _, b := range w.bodies {
		candidates = append(candidates, proximity.Candidate{
			Body: b,
			Tag:  b.tag,
			Box:  game.CenteredBox(b.size),
		})
	}
	return candidates
}
