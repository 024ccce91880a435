package interact

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/oomph-ac/webxr/game"
	"github.com/oomph-ac/webxr/oerror"
	"github.com/oomph-ac/webxr/tracking"
)

type mockBody struct {
	id      uuid.UUID
	pos     mgl32.Vec3
	vel     mgl32.Vec3
	angular mgl32.Vec3
}

func newBody(pos mgl32.Vec3) *mockBody {
	return &mockBody{id: uuid.New(), pos: pos}
}

func (b *mockBody) ID() uuid.UUID                   { return b.id }
func (b *mockBody) Position() mgl32.Vec3            { return b.pos }
func (b *mockBody) SetPosition(pos mgl32.Vec3)      { b.pos = pos }
func (b *mockBody) SetVelocity(v mgl32.Vec3)        { b.vel = v }
func (b *mockBody) SetAngularVelocity(v mgl32.Vec3) { b.angular = v }

type mockJoint struct {
	connected   Body
	disconnects int
}

func (j *mockJoint) Connect(b Body) { j.connected = b }
func (j *mockJoint) Disconnect() {
	j.connected = nil
	j.disconnects++
}

type mockPoint struct {
	hand tracking.Hand
	pos  mgl32.Vec3
}

func (p mockPoint) Hand() tracking.Hand  { return p.hand }
func (p mockPoint) Position() mgl32.Vec3 { return p.pos }

type mockSource struct {
	controllers map[tracking.Hand]tracking.Controller
	calibration mgl32.Mat4
}

func (s mockSource) Controller(h tracking.Hand) (tracking.Controller, bool) {
	c, ok := s.controllers[h]
	return c, ok
}

func (s mockSource) Calibration() mgl32.Mat4 { return s.calibration }

func newController(t *testing.T) (*Controller, *mockJoint) {
	t.Helper()
	joint := &mockJoint{}
	c, err := NewController(mockPoint{hand: tracking.HandRight}, joint)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	return c, joint
}

func TestNewControllerRequiresCollaborators(t *testing.T) {
	var ce *oerror.ConfigurationError
	if _, err := NewController(nil, &mockJoint{}); !errors.As(err, &ce) {
		t.Fatalf("expected ConfigurationError without a point, got %v", err)
	}
	if _, err := NewController(mockPoint{}, nil); !errors.As(err, &ce) {
		t.Fatalf("expected ConfigurationError without a joint, got %v", err)
	}
}

func TestProximitySet(t *testing.T) {
	c, _ := newController(t)
	a, b, never := newBody(mgl32.Vec3{1, 0, 0}), newBody(mgl32.Vec3{2, 0, 0}), newBody(mgl32.Vec3{})

	c.ProximityEnter(a)
	c.ProximityEnter(b)
	c.ProximityEnter(b)
	c.ProximityExit(a)
	if got := c.Candidates(); len(got) != 1 || got[0] != b {
		t.Fatalf("expected exactly {B}, got %v", got)
	}

	c.ProximityExit(never)
	if got := c.Candidates(); len(got) != 1 || got[0] != b {
		t.Fatalf("exiting an unknown body must be a no-op, got %v", got)
	}
}

func TestPickupSelectsNearestRegardlessOfOrder(t *testing.T) {
	orders := [][]int{{0, 1, 2}, {2, 1, 0}, {1, 2, 0}}
	for _, order := range orders {
		c, joint := newController(t)
		// Squared distances 4, 1 and 9 from the origin.
		bodies := []*mockBody{
			newBody(mgl32.Vec3{2, 0, 0}),
			newBody(mgl32.Vec3{0, 1, 0}),
			newBody(mgl32.Vec3{0, 0, 3}),
		}
		for _, i := range order {
			c.ProximityEnter(bodies[i])
		}
		if !c.Pickup() {
			t.Fatalf("order %v: expected a pickup", order)
		}
		if joint.connected != bodies[1] {
			t.Fatalf("order %v: expected the distance 1 body, got %v", order, joint.connected)
		}
		if bodies[1].pos != (mgl32.Vec3{}) {
			t.Fatalf("order %v: picked body must be moved to the interaction point, got %v", order, bodies[1].pos)
		}
	}
}

func TestPickupTieGoesToFirstEntered(t *testing.T) {
	c, joint := newController(t)
	first, second := newBody(mgl32.Vec3{1, 0, 0}), newBody(mgl32.Vec3{-1, 0, 0})
	c.ProximityEnter(first)
	c.ProximityEnter(second)
	c.Pickup()
	if joint.connected != first {
		t.Fatal("ties must go to the body that entered first")
	}
}

func TestPickupWithoutCandidatesIsNoop(t *testing.T) {
	c, joint := newController(t)
	if c.Pickup() {
		t.Fatal("expected nothing to pick up")
	}
	if _, ok := c.Attached(); ok || joint.connected != nil {
		t.Fatal("an empty pickup must not attach anything")
	}
}

func TestPickupReplacesAttachment(t *testing.T) {
	c, joint := newController(t)
	held := newBody(mgl32.Vec3{0, 0, 1})
	c.ProximityEnter(held)
	c.Pickup()
	c.ProximityExit(held)

	if c.Pickup() {
		t.Fatal("expected nothing to pick up")
	}
	if got, _ := c.Attached(); got != held {
		t.Fatal("an empty pickup must keep the current attachment")
	}

	next := newBody(mgl32.Vec3{0, 2, 0})
	c.ProximityEnter(next)
	if !c.Pickup() {
		t.Fatal("expected a pickup")
	}
	if got, _ := c.Attached(); got != next || joint.connected != next {
		t.Fatal("pickup while holding must switch to the new body")
	}
	if joint.disconnects != 1 {
		t.Fatalf("expected the held body to be disconnected once, got %d", joint.disconnects)
	}
	if held.vel != (mgl32.Vec3{}) || held.angular != (mgl32.Vec3{}) {
		t.Fatal("a replaced body must not receive a velocity hand-off")
	}
}

func TestDropWithNothingAttachedIsNoop(t *testing.T) {
	c, joint := newController(t)
	if c.Drop(mockSource{calibration: mgl32.Ident4()}) {
		t.Fatal("expected nothing to drop")
	}
	if joint.disconnects != 0 {
		t.Fatal("joint must not be touched")
	}
}

func TestDropHandsOffVelocity(t *testing.T) {
	linear := mgl32.Vec3{0, 0, 3}
	angular := mgl32.Vec3{0, 0, 2}
	cases := map[string]struct {
		calibration mgl32.Mat4
		wantAngular mgl32.Vec3
	}{
		"identity":  {mgl32.Ident4(), angular},
		"yaw by 90": {game.YawMatrix(90), mgl32.Vec3{2, 0, 0}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c, joint := newController(t)
			body := newBody(mgl32.Vec3{0, 0, 0.1})
			c.ProximityEnter(body)
			c.Pickup()

			src := mockSource{
				calibration: tc.calibration,
				controllers: map[tracking.Hand]tracking.Controller{
					tracking.HandRight: {Hand: tracking.HandRight, LinearVelocity: linear, AngularVelocity: angular},
				},
			}
			if !c.Drop(src) {
				t.Fatal("expected a drop")
			}
			if !game.Vec3ApproxEq(body.angular, tc.wantAngular) {
				t.Fatalf("angular velocity got %v, want %v", body.angular, tc.wantAngular)
			}
			if body.vel != linear {
				t.Fatalf("linear velocity must pass through unchanged, got %v", body.vel)
			}
			if _, ok := c.Attached(); ok || joint.connected != nil {
				t.Fatal("drop must break the attachment")
			}
		})
	}
}

func TestDropWithoutControllerDataStillReleases(t *testing.T) {
	c, joint := newController(t)
	body := newBody(mgl32.Vec3{})
	body.vel = mgl32.Vec3{1, 1, 1}
	c.ProximityEnter(body)
	c.Pickup()

	if !c.Drop(mockSource{calibration: mgl32.Ident4()}) {
		t.Fatal("expected a drop")
	}
	if joint.connected != nil {
		t.Fatal("joint must be disconnected")
	}
	if body.vel != (mgl32.Vec3{1, 1, 1}) {
		t.Fatal("velocity must be left alone without controller data")
	}
}
