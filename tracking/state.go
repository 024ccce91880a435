package tracking

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Pose is a position and orientation in engine room space.
type Pose struct {
	Position    mgl32.Vec3
	Orientation mgl32.Quat
}

// StereoMatrices holds the projection and view matrix of both eyes.
type StereoMatrices struct {
	LeftProjection  mgl32.Mat4
	RightProjection mgl32.Mat4
	LeftView        mgl32.Mat4
	RightView       mgl32.Mat4
}

// IdentityStereo returns stereo matrices that are all identity.
func IdentityStereo() StereoMatrices {
	return StereoMatrices{
		LeftProjection:  mgl32.Ident4(),
		RightProjection: mgl32.Ident4(),
		LeftView:        mgl32.Ident4(),
		RightView:       mgl32.Ident4(),
	}
}

// Controller is the reconciled state of one hand for a single update. Velocities are kept in
// device space as reported; consumers decide which space they need them in.
type Controller struct {
	Hand            Hand
	Pose            Pose
	LinearVelocity  mgl32.Vec3
	AngularVelocity mgl32.Vec3
	Buttons         []ButtonSample
}

func (c Controller) clone() Controller {
	c.Buttons = slices.Clone(c.Buttons)
	return c
}

// Snapshot is an immutable view of the latest published tracking state.
type Snapshot struct {
	// ID is a fingerprint of the identifier array of the payload the snapshot was built from.
	ID          uint64
	Stereo      StereoMatrices
	Calibration mgl32.Mat4

	controllers [HandCount]Controller
	tracked     [HandCount]bool
}

// Controller returns the controller state of the hand passed, or false if that hand was never
// reported.
func (s *Snapshot) Controller(h Hand) (Controller, bool) {
	i := h.index()
	if !s.tracked[i] {
		return Controller{}, false
	}
	return s.controllers[i].clone(), true
}

// Pose returns the pose of the hand passed, or false if that hand was never reported.
func (s *Snapshot) Pose(h Hand) (Pose, bool) {
	i := h.index()
	return s.controllers[i].Pose, s.tracked[i]
}
