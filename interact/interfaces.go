package interact

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/oomph-ac/webxr/tracking"
)

// Body bridges a rigid body owned by the physics host.
type Body interface {
	ID() uuid.UUID
	Position() mgl32.Vec3
	SetPosition(pos mgl32.Vec3)
	SetVelocity(v mgl32.Vec3)
	SetAngularVelocity(v mgl32.Vec3)
}

// Joint bridges the physical constraint that holds a picked up body to the interaction point.
type Joint interface {
	Connect(b Body)
	Disconnect()
}

// Point is the interaction point, usually a hand-held controller proxy.
type Point interface {
	Hand() tracking.Hand
	Position() mgl32.Vec3
}

// TrackingSource provides the controller motion and calibration a drop hands off to the body.
type TrackingSource interface {
	Controller(h tracking.Hand) (tracking.Controller, bool)
	Calibration() mgl32.Mat4
}
