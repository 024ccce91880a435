package interact

import (
	"math"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/google/uuid"
	"github.com/oomph-ac/webxr/game"
	"github.com/oomph-ac/webxr/oerror"
)

// Controller picks up the nearest interactable body in range of its interaction point and
// throws it on release with the controller's velocity.
//
// Candidates are kept in the order they entered range, which is also how ties in distance are
// broken. Picking up while already holding a body releases the held body without handing off
// any velocity and attaches the nearest candidate instead.
type Controller struct {
	point Point
	joint Joint

	candidates *orderedmap.OrderedMap[uuid.UUID, Body]
	attached   Body
}

// NewController returns a Controller for the interaction point and joint passed. Both are
// required.
func NewController(point Point, joint Joint) (*Controller, error) {
	if point == nil {
		return nil, oerror.NewConfigurationError("interact", "no interaction point bound")
	}
	if joint == nil {
		return nil, oerror.NewConfigurationError("interact", "no joint bound to interaction point")
	}
	return &Controller{
		point:      point,
		joint:      joint,
		candidates: orderedmap.NewOrderedMap[uuid.UUID, Body](),
	}, nil
}

// ProximityEnter adds a body to the candidates. Entering twice keeps the original position in
// the order.
func (c *Controller) ProximityEnter(b Body) {
	if _, ok := c.candidates.Get(b.ID()); ok {
		return
	}
	c.candidates.Set(b.ID(), b)
}

// ProximityExit removes a body from the candidates. Bodies that never entered are ignored.
func (c *Controller) ProximityExit(b Body) {
	c.candidates.Delete(b.ID())
}

// Candidates returns the bodies in range, in the order they entered.
func (c *Controller) Candidates() []Body {
	bodies := make([]Body, 0, c.candidates.Len())
	for el := c.candidates.Front(); el != nil; el = el.Next() {
		bodies = append(bodies, el.Value)
	}
	return bodies
}

// Attached returns the body currently held, if any.
func (c *Controller) Attached() (Body, bool) {
	return c.attached, c.attached != nil
}

// Pickup attaches the candidate nearest to the interaction point. It reports false, and leaves
// any current attachment in place, if there is nothing in range.
func (c *Controller) Pickup() bool {
	nearest := c.nearest()
	if nearest == nil {
		return false
	}
	if c.attached != nil {
		c.joint.Disconnect()
		c.attached = nil
	}
	nearest.SetPosition(c.point.Position())
	c.joint.Connect(nearest)
	c.attached = nearest
	return true
}

func (c *Controller) nearest() Body {
	var (
		nearest Body
		minDist = float32(math.MaxFloat32)
		origin  = c.point.Position()
	)
	for el := c.candidates.Front(); el != nil; el = el.Next() {
		if dist := game.DistSqr(el.Value.Position(), origin); dist < minDist {
			minDist = dist
			nearest = el.Value
		}
	}
	return nearest
}

// Drop releases the held body, reporting false if nothing was held. The body receives the
// controller's linear velocity as reported and its angular velocity transformed by the
// calibration matrix. If src has no data for the point's hand the body is released without
// touching its velocity.
func (c *Controller) Drop(src TrackingSource) bool {
	if c.attached == nil {
		return false
	}
	body := c.attached
	if ctrl, ok := src.Controller(c.point.Hand()); ok {
		// Only the angular velocity is moved into room space; linear velocity stays as reported.
		angular := game.MultiplyPoint(src.Calibration(), ctrl.AngularVelocity)
		body.SetVelocity(ctrl.LinearVelocity)
		body.SetAngularVelocity(angular)
	}
	c.joint.Disconnect()
	c.attached = nil
	return true
}
