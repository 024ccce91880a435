package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/webxr/tracking"
)

// Camera bridges a camera owned by the rendering backend.
type Camera interface {
	SetEnabled(enabled bool)
	SetWorldToCamera(m mgl32.Mat4)
	SetProjection(m mgl32.Mat4)
}

// Anchor bridges a scene object that visualises a tracked hand.
type Anchor interface {
	SetPosition(pos mgl32.Vec3)
	SetRotation(rot mgl32.Quat)
}

// Rig bridges the scene object every camera and hand anchor is parented to.
type Rig interface {
	Position() mgl32.Vec3
	WorldToLocal() mgl32.Mat4
}

// Host is the embedding environment that presents frames.
type Host interface {
	// FrameReady tells the host the frame has been fully drawn and may be presented.
	FrameReady()
}

// SnapshotSource provides the tracking state a frame is rendered from.
type SnapshotSource interface {
	Snapshot() *tracking.Snapshot
}

// Bindings are the scene references the controller drives. Cameras only need to be bound for
// the modes that are entered; anchors are optional.
type Bindings struct {
	Mono  Camera
	Left  Camera
	Right Camera

	LeftHand  Anchor
	RightHand Anchor

	Rig Rig
}

func (b Bindings) anchor(h tracking.Hand) Anchor {
	if h == tracking.HandLeft {
		return b.LeftHand
	}
	return b.RightHand
}
