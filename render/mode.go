package render

// Mode is the camera configuration currently rendered.
type Mode uint8

const (
	// ModeMono renders through a single camera.
	ModeMono Mode = iota
	// ModeStereo renders through one camera per eye.
	ModeStereo
)

func (m Mode) String() string {
	switch m {
	case ModeMono:
		return "mono"
	case ModeStereo:
		return "stereo"
	}
	return "unknown"
}
