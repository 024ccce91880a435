package virtual

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/webxr/render"
	"github.com/oomph-ac/webxr/tracking"
)

// Camera is a camera that only records what it was told to render.
type Camera struct {
	Name string

	enabled       bool
	worldToCamera mgl32.Mat4
	projection    mgl32.Mat4
}

func (c *Camera) SetEnabled(enabled bool)       { c.enabled = enabled }
func (c *Camera) SetWorldToCamera(m mgl32.Mat4) { c.worldToCamera = m }
func (c *Camera) SetProjection(m mgl32.Mat4)    { c.projection = m }

// Enabled returns whether the camera is rendering.
func (c *Camera) Enabled() bool { return c.enabled }

// WorldToCamera returns the last view matrix the camera received.
func (c *Camera) WorldToCamera() mgl32.Mat4 { return c.worldToCamera }

// Projection returns the last projection matrix the camera received.
func (c *Camera) Projection() mgl32.Mat4 { return c.projection }

// Hand is a hand anchor that doubles as the interaction point of that hand.
type Hand struct {
	hand tracking.Hand
	pos  mgl32.Vec3
	rot  mgl32.Quat
}

func (h *Hand) Hand() tracking.Hand        { return h.hand }
func (h *Hand) Position() mgl32.Vec3       { return h.pos }
func (h *Hand) Rotation() mgl32.Quat       { return h.rot }
func (h *Hand) SetPosition(pos mgl32.Vec3) { h.pos = pos }
func (h *Hand) SetRotation(rot mgl32.Quat) { h.rot = rot }

// Player is the rig of a tracked user: the object its cameras and hands are parented to.
type Player struct {
	pos mgl32.Vec3

	Mono, Left, Right   *Camera
	LeftHand, RightHand *Hand
}

// NewPlayer creates a rig at the position passed with a full set of cameras and hands.
func NewPlayer(pos mgl32.Vec3) *Player {
	return &Player{
		pos:       pos,
		Mono:      &Camera{Name: "CameraMain"},
		Left:      &Camera{Name: "CameraL"},
		Right:     &Camera{Name: "CameraR"},
		LeftHand:  &Hand{hand: tracking.HandLeft, rot: mgl32.QuatIdent()},
		RightHand: &Hand{hand: tracking.HandRight, rot: mgl32.QuatIdent()},
	}
}

// Position returns the world position of the rig.
func (p *Player) Position() mgl32.Vec3 {
	return p.pos
}

// Move moves the rig by the delta passed.
func (p *Player) Move(delta mgl32.Vec3) {
	p.pos = p.pos.Add(delta)
}

// WorldToLocal returns the matrix that maps world space into the rig's local space.
func (p *Player) WorldToLocal() mgl32.Mat4 {
	return mgl32.Translate3D(-p.pos.X(), -p.pos.Y(), -p.pos.Z())
}

// Bindings returns the render bindings of the rig.
func (p *Player) Bindings() render.Bindings {
	return render.Bindings{
		Mono:      p.Mono,
		Left:      p.Left,
		Right:     p.Right,
		LeftHand:  p.LeftHand,
		RightHand: p.RightHand,
		Rig:       p,
	}
}
