package proximity

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/google/uuid"
	"github.com/oomph-ac/webxr/game"
	"github.com/oomph-ac/webxr/interact"
)

// InteractableTag marks bodies that may be picked up.
const InteractableTag = "Interactable"

// Candidate is a body the physics host reports near an interaction point.
type Candidate struct {
	Body interact.Body
	Tag  string
	// Box is the body's collision box relative to its position.
	Box cube.BBox
}

// Listener receives proximity transitions. *interact.Controller implements it.
type Listener interface {
	ProximityEnter(b interact.Body)
	ProximityExit(b interact.Body)
}

// Sensor is a trigger volume that follows an interaction point and turns overlap tests into
// enter and exit events. Only bodies tagged InteractableTag are ever reported.
type Sensor struct {
	point    interact.Point
	volume   cube.BBox
	listener Listener

	inside *orderedmap.OrderedMap[uuid.UUID, interact.Body]
}

// NewSensor returns a Sensor with a cubic trigger volume of the given edge length centered on
// the point.
func NewSensor(point interact.Point, size float32, listener Listener) *Sensor {
	return &Sensor{
		point:    point,
		volume:   game.CenteredBox(size),
		listener: listener,
		inside:   orderedmap.NewOrderedMap[uuid.UUID, interact.Body](),
	}
}

// Update tests every candidate against the trigger volume. Enter events are emitted in the
// order candidates are passed; bodies that left the volume, lost their tag or are no longer
// reported exit afterwards in the order they entered.
func (s *Sensor) Update(candidates []Candidate) {
	trigger := game.BoxAround(s.volume, s.point.Position())
	present := make(map[uuid.UUID]struct{}, len(candidates))

	for _, c := range candidates {
		if c.Tag != InteractableTag {
			continue
		}
		if !trigger.IntersectsWith(c.Box.Translate(c.Body.Position())) {
			continue
		}
		id := c.Body.ID()
		present[id] = struct{}{}
		if _, ok := s.inside.Get(id); ok {
			continue
		}
		s.inside.Set(id, c.Body)
		s.listener.ProximityEnter(c.Body)
	}

	var left []interact.Body
	for el := s.inside.Front(); el != nil; el = el.Next() {
		if _, ok := present[el.Key]; !ok {
			left = append(left, el.Value)
		}
	}
	for _, b := range left {
		s.inside.Delete(b.ID())
		s.listener.ProximityExit(b)
	}
}

// Inside returns the amount of bodies currently inside the trigger volume.
func (s *Sensor) Inside() int {
	return s.inside.Len()
}
