package input

import "github.com/oomph-ac/webxr/tracking"

type buttonKey struct {
	hand  tracking.Hand
	index int
}

type buttonHistory struct {
	current, previous bool
}

// Tracker keeps the press history of every controller button it has observed and derives
// level and edge queries from it. Queries never consume an edge: asking twice between two
// observations gives the same answer.
type Tracker struct {
	history map[buttonKey]*buttonHistory
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{history: make(map[buttonKey]*buttonHistory)}
}

// Observe records the latest pressed state of a button. A button seen for the first time is
// treated as if it was released before.
func (t *Tracker) Observe(hand tracking.Hand, index int, pressed bool) {
	key := buttonKey{hand: hand, index: index}
	h, ok := t.history[key]
	if !ok {
		h = &buttonHistory{}
		t.history[key] = h
	}
	h.previous = h.current
	h.current = pressed
}

// ObserveController observes every button of the controller passed, in order.
func (t *Tracker) ObserveController(c tracking.Controller) {
	for i, b := range c.Buttons {
		t.Observe(c.Hand, i, b.Pressed)
	}
}

// Pressed reports whether the button is currently held down.
func (t *Tracker) Pressed(hand tracking.Hand, index int) bool {
	h, ok := t.history[buttonKey{hand: hand, index: index}]
	return ok && h.current
}

// PressedThisFrame reports whether the button went down on the latest observation.
func (t *Tracker) PressedThisFrame(hand tracking.Hand, index int) bool {
	h, ok := t.history[buttonKey{hand: hand, index: index}]
	return ok && h.current && h.current != h.previous
}

// ReleasedThisFrame reports whether the button went up on the latest observation.
func (t *Tracker) ReleasedThisFrame(hand tracking.Hand, index int) bool {
	h, ok := t.history[buttonKey{hand: hand, index: index}]
	return ok && !h.current && h.current != h.previous
}
