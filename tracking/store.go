package tracking

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/atomic"
)

// Store holds the latest reconciled tracking state. Every Publish swaps in a fresh immutable
// Snapshot, so a reader always sees one complete update.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore returns a Store with identity matrices and no tracked hands.
func NewStore() *Store {
	s := &Store{}
	s.current.Store(&Snapshot{
		Stereo:      IdentityStereo(),
		Calibration: mgl32.Ident4(),
	})
	return s
}

// Publish replaces the current snapshot. Controllers overwrite the previous state of their hand;
// hands not present keep whatever was published for them before.
func (s *Store) Publish(id uint64, stereo StereoMatrices, calibration mgl32.Mat4, controllers []Controller) {
	prev := s.current.Load()
	next := &Snapshot{
		ID:          id,
		Stereo:      stereo,
		Calibration: calibration,
		controllers: prev.controllers,
		tracked:     prev.tracked,
	}
	for _, c := range controllers {
		i := c.Hand.index()
		next.controllers[i] = c.clone()
		next.tracked[i] = true
	}
	s.current.Store(next)
}

// Snapshot returns the snapshot currently published.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Stereo returns the latest stereo matrices.
func (s *Store) Stereo() StereoMatrices {
	return s.current.Load().Stereo
}

// Calibration returns the latest sit-stand calibration transform.
func (s *Store) Calibration() mgl32.Mat4 {
	return s.current.Load().Calibration
}

// Pose returns the latest pose of the hand passed, or false if it was never tracked.
func (s *Store) Pose(h Hand) (Pose, bool) {
	return s.current.Load().Pose(h)
}

// Controller returns the latest controller state of the hand passed, or false if it was never
// tracked.
func (s *Store) Controller(h Hand) (Controller, bool) {
	return s.current.Load().Controller(h)
}
