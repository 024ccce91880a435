package webxr

import (
	"fmt"
	"time"

	"github.com/oomph-ac/webxr/input"
	"github.com/oomph-ac/webxr/interact"
	"github.com/oomph-ac/webxr/oerror"
	"github.com/oomph-ac/webxr/proximity"
	"github.com/oomph-ac/webxr/render"
	"github.com/oomph-ac/webxr/settings"
	"github.com/oomph-ac/webxr/tracking"
	"github.com/sirupsen/logrus"
)

// Host is the page or process embedding the engine.
type Host interface {
	render.Host
	// FinishLoading tells the host the engine is ready to receive tracking data.
	FinishLoading()
	// TestTimeReturn answers a latency probe.
	TestTimeReturn()
}

// Interaction binds the interaction point of one hand to the joint that holds picked up bodies.
type Interaction struct {
	Point interact.Point
	Joint interact.Joint
}

// Bindings are the scene references the engine drives.
type Bindings struct {
	Render       render.Bindings
	Host         Host
	Interactions []Interaction
}

// Engine ingests tracking payloads and drives cameras, hand anchors, button queries and object
// pickup from them. It is not safe for concurrent use: hosts that call it from several
// goroutines serialise calls through a worker.Loop.
type Engine struct {
	log  *logrus.Logger
	host Host

	store       *tracking.Store
	buttons     *input.Tracker
	transformer *tracking.Transformer
	render      *render.Controller

	interactions [tracking.HandCount]*interact.Controller
	sensors      [tracking.HandCount]*proximity.Sensor

	embedded bool
	loaded   bool
	showPerf bool
}

// New composes an Engine. It returns a *oerror.ConfigurationError if a required binding is
// missing.
func New(log *logrus.Logger, s settings.Settings, b Bindings) (*Engine, error) {
	store := tracking.NewStore()
	buttons := input.NewTracker()
	e := &Engine{
		log:         log,
		host:        b.Host,
		store:       store,
		buttons:     buttons,
		transformer: tracking.NewTransformer(store, buttons),
		embedded:    s.Render.Embedded,
		showPerf:    s.Render.ShowPerf,
	}

	r, err := render.New(store, b.Render, render.Options{
		Embedded: s.Render.Embedded,
		Host:     b.Host,
		Debugf:   log.Debugf,
	})
	if err != nil {
		return nil, err
	}
	e.render = r

	for _, in := range b.Interactions {
		c, err := interact.NewController(in.Point, in.Joint)
		if err != nil {
			return nil, err
		}
		h := in.Point.Hand()
		if e.interactions[h] != nil {
			return nil, oerror.NewConfigurationError("engine", "%v hand has more than one interaction point", h)
		}
		e.interactions[h] = c
		e.sensors[h] = proximity.NewSensor(in.Point, s.Interaction.TriggerSize, c)
	}
	return e, nil
}

// Loaded tells an embedding host that the engine is ready. Only the first call has an effect.
func (e *Engine) Loaded() {
	if e.loaded || !e.embedded {
		return
	}
	e.loaded = true
	e.host.FinishLoading()
}

// Ingest applies a tracking payload. A malformed payload is dropped and the previous state is
// kept, so rendering continues from the last good pose.
func (e *Engine) Ingest(p *tracking.Payload) error {
	if err := e.transformer.Apply(p); err != nil {
		e.log.Warnf("dropping tracking payload: %v", err)
		return fmt.Errorf("ingest: %w", err)
	}
	return nil
}

// Begin switches to stereo rendering when the host starts a VR session.
func (e *Engine) Begin() error {
	e.log.Infof("switching to %v", render.ModeStereo)
	return e.render.EnterStereo()
}

// End switches back to mono rendering when the host ends the VR session.
func (e *Engine) End() error {
	e.log.Infof("switching to %v", render.ModeMono)
	return e.render.ExitStereo()
}

// Mode returns the active render mode.
func (e *Engine) Mode() render.Mode {
	return e.render.Mode()
}

// Frame runs the per-frame camera and anchor update. In embedded mode the returned frame must be
// resumed once the frame is flushed.
func (e *Engine) Frame(dt time.Duration) (*render.PendingFrame, error) {
	return e.render.Tick(dt)
}

// Store returns the tracking state store.
func (e *Engine) Store() *tracking.Store {
	return e.store
}

// Key reports whether a button is held down.
func (e *Engine) Key(h tracking.Hand, button int) bool {
	return e.buttons.Pressed(h, button)
}

// KeyDown reports whether a button went down on the latest payload.
func (e *Engine) KeyDown(h tracking.Hand, button int) bool {
	return e.buttons.PressedThisFrame(h, button)
}

// KeyUp reports whether a button went up on the latest payload.
func (e *Engine) KeyUp(h tracking.Hand, button int) bool {
	return e.buttons.ReleasedThisFrame(h, button)
}

// Interaction returns the attachment controller of the hand passed, if one is bound.
func (e *Engine) Interaction(h tracking.Hand) (*interact.Controller, bool) {
	c := e.interactions[h]
	return c, c != nil
}

// UpdateProximity runs the trigger volume of the hand passed against the candidates reported by
// the physics host.
func (e *Engine) UpdateProximity(h tracking.Hand, candidates []proximity.Candidate) {
	if s := e.sensors[h]; s != nil {
		s.Update(candidates)
	}
}

// Pickup picks up the nearest body in range of the hand passed.
func (e *Engine) Pickup(h tracking.Hand) bool {
	c, ok := e.Interaction(h)
	if !ok {
		e.log.Debugf("pickup ignored: no interaction point bound to %v hand", h)
		return false
	}
	return c.Pickup()
}

// Drop releases whatever the hand passed holds, handing off the controller's velocity.
func (e *Engine) Drop(h tracking.Hand) bool {
	c, ok := e.Interaction(h)
	if !ok {
		e.log.Debugf("drop ignored: no interaction point bound to %v hand", h)
		return false
	}
	return c.Drop(e.store)
}

// TogglePerf toggles the frame time readout.
func (e *Engine) TogglePerf() {
	e.showPerf = !e.showPerf
}

// PerfText returns the frame time readout and whether it should be shown.
func (e *Engine) PerfText() (string, bool) {
	return e.render.Stats().String(), e.showPerf
}

// TestTime answers a latency probe from the host.
func (e *Engine) TestTime() {
	e.log.Debug("time tester received")
	if e.host != nil {
		e.host.TestTimeReturn()
	}
}
