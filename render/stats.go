package render

import (
	"fmt"
	"time"
)

// statsSmoothing is the weight of the newest sample in the frame time average.
const statsSmoothing = 0.1

// Stats is a smoothed frame time measurement.
type Stats struct {
	delta float64
}

func (s *Stats) update(dt time.Duration) {
	s.delta += (dt.Seconds() - s.delta) * statsSmoothing
}

// FrameTime returns the smoothed frame time.
func (s Stats) FrameTime() time.Duration {
	return time.Duration(s.delta * float64(time.Second))
}

// FPS returns the frame rate matching the smoothed frame time, or zero before the first frame.
func (s Stats) FPS() float64 {
	if s.delta <= 0 {
		return 0
	}
	return 1 / s.delta
}

func (s Stats) String() string {
	return fmt.Sprintf("%.1f ms (%.0f fps)", s.delta*1000, s.FPS())
}
