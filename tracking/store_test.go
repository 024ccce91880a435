package tracking

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewStoreDefaults(t *testing.T) {
	s := NewStore()
	if s.Calibration() != mgl32.Ident4() {
		t.Fatalf("expected identity calibration, got %v", s.Calibration())
	}
	for _, h := range Hands {
		if _, ok := s.Controller(h); ok {
			t.Fatalf("expected %v hand to be untracked", h)
		}
	}
}

func TestPublishedSnapshotIsImmutable(t *testing.T) {
	s := NewStore()
	buttons := []ButtonSample{{Pressed: true}}
	s.Publish(7, IdentityStereo(), mgl32.Ident4(), []Controller{{Hand: HandLeft, Buttons: buttons}})

	old := s.Snapshot()
	buttons[0].Pressed = false
	c, _ := old.Controller(HandLeft)
	if !c.Buttons[0].Pressed {
		t.Fatal("published buttons must not alias the caller's slice")
	}
	c.Buttons[0].Pressed = false
	if again, _ := old.Controller(HandLeft); !again.Buttons[0].Pressed {
		t.Fatal("controllers handed out must not alias the snapshot")
	}

	s.Publish(8, IdentityStereo(), mgl32.Translate3D(0, 1, 0), nil)
	if old.ID != 7 || old.Calibration != mgl32.Ident4() {
		t.Fatal("publishing must not mutate earlier snapshots")
	}
	if _, ok := s.Pose(HandLeft); !ok {
		t.Fatal("left hand should be retained across publishes")
	}
}

func TestParseHand(t *testing.T) {
	for name, want := range map[string]Hand{"left": HandLeft, "right": HandRight} {
		got, ok := ParseHand(name)
		if !ok || got != want || got.String() != name {
			t.Fatalf("ParseHand(%q) = %v, %v", name, got, ok)
		}
	}
	if _, ok := ParseHand("Left"); ok {
		t.Fatal("hand names are case-sensitive")
	}
}

func TestFingerprint(t *testing.T) {
	if Fingerprint(nil) != 0 {
		t.Fatal("empty identifier must fingerprint to zero")
	}
	a, b := Fingerprint([]float32{1, 2}), Fingerprint([]float32{1, 2})
	if a != b {
		t.Fatal("fingerprint must be deterministic")
	}
	if a == Fingerprint([]float32{2, 1}) {
		t.Fatal("fingerprint must depend on order")
	}
}
