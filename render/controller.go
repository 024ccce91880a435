package render

import (
	"time"

	"github.com/oomph-ac/webxr/assert"
	"github.com/oomph-ac/webxr/oerror"
	"github.com/oomph-ac/webxr/tracking"
)

// ErrFrameInFlight is returned by Tick while the previous frame has not been resumed yet.
var ErrFrameInFlight = oerror.New("render: previous frame has not been submitted")

// Options configure a Controller.
type Options struct {
	// Embedded enables the frame submission handshake with Host.
	Embedded bool
	Host     Host

	// Debugf receives mode switch traces for callers that want them.
	Debugf func(format string, args ...any)
}

// Controller switches between mono and stereo rendering and feeds the active cameras and hand
// anchors from the latest tracking snapshot once per tick.
type Controller struct {
	source   SnapshotSource
	bindings Bindings
	opts     Options

	mode    Mode
	pending *PendingFrame
	stats   Stats
}

// New returns a Controller in mono mode. It fails with a *oerror.ConfigurationError if the rig,
// the mono camera or, in embedded mode, the host is missing.
func New(source SnapshotSource, b Bindings, opts Options) (*Controller, error) {
	if source == nil {
		return nil, oerror.NewConfigurationError("render", "no tracking source bound")
	}
	if b.Rig == nil {
		return nil, oerror.NewConfigurationError("render", "no rig bound")
	}
	if opts.Embedded && opts.Host == nil {
		return nil, oerror.NewConfigurationError("render", "embedded mode requires a host")
	}
	c := &Controller{source: source, bindings: b, opts: opts, mode: ModeMono}
	if err := c.apply(ModeMono); err != nil {
		return nil, err
	}
	return c, nil
}

// Mode returns the active mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Stats returns the smoothed frame time.
func (c *Controller) Stats() Stats {
	return c.stats
}

// EnterStereo switches to stereo rendering. Entering the active mode again only re-asserts
// which cameras are enabled.
func (c *Controller) EnterStereo() error {
	return c.apply(ModeStereo)
}

// ExitStereo switches back to mono rendering.
func (c *Controller) ExitStereo() error {
	return c.apply(ModeMono)
}

func (c *Controller) apply(mode Mode) error {
	b := c.bindings
	switch mode {
	case ModeMono:
		if b.Mono == nil {
			return oerror.NewConfigurationError("render", "no mono camera bound")
		}
		setEnabled(b.Left, false)
		setEnabled(b.Right, false)
		b.Mono.SetEnabled(true)
	case ModeStereo:
		if b.Left == nil || b.Right == nil {
			return oerror.NewConfigurationError("render", "stereo mode requires both eye cameras")
		}
		setEnabled(b.Mono, false)
		b.Left.SetEnabled(true)
		b.Right.SetEnabled(true)
	default:
		assert.IsTrue(false, "unknown render mode %d", mode)
	}
	if c.opts.Debugf != nil && c.mode != mode {
		c.opts.Debugf("render mode %v -> %v", c.mode, mode)
	}
	c.mode = mode
	return nil
}

func setEnabled(cam Camera, enabled bool) {
	if cam != nil {
		cam.SetEnabled(enabled)
	}
}

// Tick updates cameras and hand anchors for a frame that took dt. In embedded mode it returns
// the frame's continuation, which the host must resume after the frame is flushed and before
// the next Tick. Otherwise the returned frame is nil.
func (c *Controller) Tick(dt time.Duration) (*PendingFrame, error) {
	if c.pending != nil && !c.pending.resumed() {
		return nil, ErrFrameInFlight
	}
	c.pending = nil
	c.stats.update(dt)

	snap := c.source.Snapshot()
	rig := c.bindings.Rig
	rigPos := rig.Position()
	for _, h := range tracking.Hands {
		anchor := c.bindings.anchor(h)
		if anchor == nil {
			continue
		}
		pose, ok := snap.Pose(h)
		if !ok {
			continue
		}
		anchor.SetPosition(pose.Position.Add(rigPos))
		anchor.SetRotation(pose.Orientation)
	}

	// Calibration is validated to be invertible before it is published.
	roomToRig := snap.Calibration.Inv().Mul4(rig.WorldToLocal())
	switch c.mode {
	case ModeMono:
		c.bindings.Mono.SetWorldToCamera(snap.Stereo.LeftView.Mul4(roomToRig))
	case ModeStereo:
		c.bindings.Left.SetWorldToCamera(snap.Stereo.LeftView.Mul4(roomToRig))
		c.bindings.Left.SetProjection(snap.Stereo.LeftProjection)
		c.bindings.Right.SetWorldToCamera(snap.Stereo.RightView.Mul4(roomToRig))
		c.bindings.Right.SetProjection(snap.Stereo.RightProjection)
	}

	if !c.opts.Embedded {
		return nil, nil
	}
	c.pending = newPendingFrame(c.opts.Host)
	return c.pending, nil
}

