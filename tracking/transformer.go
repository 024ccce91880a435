package tracking

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/webxr/game"
	"github.com/oomph-ac/webxr/internal"
	"github.com/oomph-ac/webxr/oerror"
	"github.com/zeebo/xxh3"
)

// ButtonObserver receives every button sample of an applied payload, in payload order.
type ButtonObserver interface {
	Observe(hand Hand, index int, pressed bool)
}

// Transformer converts payloads from device space into engine room space and publishes the
// result to a Store.
type Transformer struct {
	store   *Store
	buttons ButtonObserver
}

// NewTransformer returns a Transformer publishing to store. buttons may be nil.
func NewTransformer(store *Store, buttons ButtonObserver) *Transformer {
	return &Transformer{store: store, buttons: buttons}
}

// Apply validates and transforms the payload passed, then publishes it. A malformed payload
// returns a *oerror.FormatError and leaves the store and button history untouched.
func (t *Transformer) Apply(p *Payload) error {
	if p == nil {
		return oerror.NewFormatError("payload", "missing")
	}
	stereo, err := decodeStereo(p)
	if err != nil {
		return err
	}

	calibration := t.store.Calibration()
	if len(p.SitStand) > 0 {
		m, ok := game.Mat4FromRowMajor(p.SitStand)
		if !ok {
			return oerror.NewFormatError("sitStand", "expected %d values, got %d", game.MatrixElements, len(p.SitStand))
		}
		if m.Det() == 0 {
			return oerror.NewFormatError("sitStand", "matrix is not invertible")
		}
		calibration = m
	}
	calibrationRot, ok := game.CalibrationRotation(calibration)
	if !ok {
		return oerror.NewFormatError("sitStand", "forward and up columns do not form a basis")
	}

	controllers := make([]Controller, 0, len(p.Controllers))
	for i, rec := range p.Controllers {
		c, err := decodeController(i, rec, calibration, calibrationRot)
		if err != nil {
			return err
		}
		controllers = append(controllers, c)
	}

	t.store.Publish(Fingerprint(p.ID), stereo, calibration, controllers)
	if t.buttons != nil {
		for _, c := range controllers {
			for index, b := range c.Buttons {
				t.buttons.Observe(c.Hand, index, b.Pressed)
			}
		}
	}
	return nil
}

// Fingerprint hashes a payload identifier array. An empty identifier fingerprints to zero.
func Fingerprint(id []float32) uint64 {
	if len(id) == 0 {
		return 0
	}
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	var scratch [4]byte
	for _, v := range id {
		binary.LittleEndian.PutUint32(scratch[:], math.Float32bits(v))
		buf.Write(scratch[:])
	}
	return xxh3.Hash(buf.Bytes())
}

func decodeStereo(p *Payload) (StereoMatrices, error) {
	var (
		s   StereoMatrices
		err error
	)
	if s.LeftProjection, err = decodeMatrix("leftProjectionMatrix", p.LeftProjectionMatrix); err != nil {
		return s, err
	}
	if s.RightProjection, err = decodeMatrix("rightProjectionMatrix", p.RightProjectionMatrix); err != nil {
		return s, err
	}
	if s.LeftView, err = decodeMatrix("leftViewMatrix", p.LeftViewMatrix); err != nil {
		return s, err
	}
	if s.RightView, err = decodeMatrix("rightViewMatrix", p.RightViewMatrix); err != nil {
		return s, err
	}
	return s, nil
}

func decodeMatrix(field string, vals []float32) (mgl32.Mat4, error) {
	m, ok := game.Mat4FromRowMajor(vals)
	if !ok {
		return m, oerror.NewFormatError(field, "expected %d values, got %d", game.MatrixElements, len(vals))
	}
	return m, nil
}

func decodeController(i int, rec ControllerRecord, calibration mgl32.Mat4, calibrationRot mgl32.Quat) (Controller, error) {
	field := func(name string) string {
		return fmt.Sprintf("controllers[%d].%s", i, name)
	}

	hand, ok := ParseHand(rec.Hand)
	if !ok {
		return Controller{}, oerror.NewFormatError(field("hand"), "unknown hand %q", rec.Hand)
	}
	rot, ok := game.QuatFromSlice(rec.Orientation)
	if !ok {
		return Controller{}, oerror.NewFormatError(field("orientation"), "expected 4 values, got %d", len(rec.Orientation))
	}
	pos, ok := game.Vec3FromSlice(rec.Position)
	if !ok {
		return Controller{}, oerror.NewFormatError(field("position"), "expected 3 values, got %d", len(rec.Position))
	}
	linear, ok := game.Vec3FromSlice(rec.LinearVelocity)
	if !ok {
		return Controller{}, oerror.NewFormatError(field("linearVelocity"), "expected 3 values, got %d", len(rec.LinearVelocity))
	}
	angular, ok := game.Vec3FromSlice(rec.AngularVelocity)
	if !ok {
		return Controller{}, oerror.NewFormatError(field("angularVelocity"), "expected 3 values, got %d", len(rec.AngularVelocity))
	}

	return Controller{
		Hand: hand,
		Pose: Pose{
			Position:    game.MultiplyPoint(calibration, pos),
			Orientation: calibrationRot.Mul(rot),
		},
		LinearVelocity:  linear,
		AngularVelocity: angular,
		Buttons:         rec.Buttons,
	}, nil
}
