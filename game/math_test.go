package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestMat4FromRowMajorTransposesIntoColumns(t *testing.T) {
	vals := []float32{
		1, 0, 0, 5,
		0, 1, 0, 6,
		0, 0, 1, 7,
		0, 0, 0, 1,
	}
	m, ok := Mat4FromRowMajor(vals)
	if !ok {
		t.Fatal("expected 16 values to decode")
	}
	if got := m.Col(3).Vec3(); got != (mgl32.Vec3{5, 6, 7}) {
		t.Fatalf("expected translation column {5 6 7}, got %v", got)
	}
	if got := RowMajor(m); len(got) != 16 || got[3] != 5 || got[7] != 6 || got[11] != 7 {
		t.Fatalf("RowMajor did not restore the input layout: %v", got)
	}
}

func TestMat4FromRowMajorRejectsWrongLength(t *testing.T) {
	for _, n := range []int{0, 9, 15, 17} {
		if _, ok := Mat4FromRowMajor(make([]float32, n)); ok {
			t.Fatalf("expected %d values to be rejected", n)
		}
	}
}

func TestLookRotationIdentity(t *testing.T) {
	q, ok := LookRotation(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0})
	if !ok {
		t.Fatal("expected a rotation")
	}
	if !q.OrientationEqual(mgl32.QuatIdent()) {
		t.Fatalf("expected identity, got %v", q)
	}
}

func TestCalibrationRotationMatchesYaw(t *testing.T) {
	m := YawMatrix(90)
	q, ok := CalibrationRotation(m)
	if !ok {
		t.Fatal("expected a rotation")
	}
	got := q.Rotate(mgl32.Vec3{0, 0, 1})
	if !Vec3ApproxEq(got, mgl32.Vec3{1, 0, 0}) {
		t.Fatalf("expected forward to rotate onto +X, got %v", got)
	}
}

func TestLookRotationDegenerate(t *testing.T) {
	if _, ok := LookRotation(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}); ok {
		t.Fatal("expected zero forward to be rejected")
	}
	if _, ok := LookRotation(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 2, 0}); ok {
		t.Fatal("expected parallel forward and up to be rejected")
	}
}

func TestMultiplyPointAppliesTranslation(t *testing.T) {
	m := mgl32.Translate3D(0, 1.2, 0)
	got := MultiplyPoint(m, mgl32.Vec3{1, 0, 0})
	if !Vec3ApproxEq(got, mgl32.Vec3{1, 1.2, 0}) {
		t.Fatalf("got %v", got)
	}
}


func TestBoxAround(t *testing.T) {
	box := BoxAround(CenteredBox(2), mgl32.Vec3{0, 1, 0})
	if box.Min() != (mgl32.Vec3{-1, 0, -1}) || box.Max() != (mgl32.Vec3{1, 2, 1}) {
		t.Fatalf("unexpected box %v", box)
	}
}
