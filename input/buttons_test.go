package input

import (
	"testing"

	"github.com/oomph-ac/webxr/tracking"
)

func TestEdgeSequence(t *testing.T) {
	tr := NewTracker()
	inputs := []bool{true, true, false, false}
	wantDown := []bool{true, false, false, false}
	wantUp := []bool{false, false, true, false}

	for step, pressed := range inputs {
		tr.Observe(tracking.HandLeft, 0, pressed)

		if got := tr.Pressed(tracking.HandLeft, 0); got != pressed {
			t.Fatalf("step %d: Pressed = %v, want %v", step+1, got, pressed)
		}
		if got := tr.PressedThisFrame(tracking.HandLeft, 0); got != wantDown[step] {
			t.Fatalf("step %d: PressedThisFrame = %v, want %v", step+1, got, wantDown[step])
		}
		if got := tr.ReleasedThisFrame(tracking.HandLeft, 0); got != wantUp[step] {
			t.Fatalf("step %d: ReleasedThisFrame = %v, want %v", step+1, got, wantUp[step])
		}
	}
}

func TestEdgeQueriesDoNotConsume(t *testing.T) {
	tr := NewTracker()
	tr.Observe(tracking.HandRight, 1, true)
	for i := 0; i < 3; i++ {
		if !tr.PressedThisFrame(tracking.HandRight, 1) {
			t.Fatalf("query %d: rising edge must persist until the next observation", i)
		}
	}
}

func TestUnobservedButtonsReportFalse(t *testing.T) {
	tr := NewTracker()
	tr.Observe(tracking.HandLeft, 0, true)

	if tr.Pressed(tracking.HandRight, 0) || tr.PressedThisFrame(tracking.HandRight, 0) || tr.ReleasedThisFrame(tracking.HandRight, 0) {
		t.Fatal("a button of another hand must not share history")
	}
	if tr.Pressed(tracking.HandLeft, 3) {
		t.Fatal("an unobserved index must report released")
	}
}

func TestObserveController(t *testing.T) {
	tr := NewTracker()
	tr.ObserveController(tracking.Controller{
		Hand:    tracking.HandRight,
		Buttons: []tracking.ButtonSample{{Pressed: false}, {Pressed: true}},
	})
	if tr.Pressed(tracking.HandRight, 0) || !tr.Pressed(tracking.HandRight, 1) {
		t.Fatal("buttons must be keyed by their index in the controller")
	}
}
