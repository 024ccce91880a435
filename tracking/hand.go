package tracking

import "github.com/oomph-ac/webxr/assert"

// Hand identifies which tracked controller a record belongs to.
type Hand uint8

const (
	HandLeft Hand = iota
	HandRight
)

// HandCount is the amount of hands the engine tracks.
const HandCount = 2

// Hands lists every hand in a stable order.
var Hands = [HandCount]Hand{HandLeft, HandRight}

// ParseHand parses the hand name used by the payload ("left" or "right").
func ParseHand(s string) (Hand, bool) {
	switch s {
	case "left":
		return HandLeft, true
	case "right":
		return HandRight, true
	}
	return 0, false
}

func (h Hand) String() string {
	switch h {
	case HandLeft:
		return "left"
	case HandRight:
		return "right"
	}
	return "unknown"
}

func (h Hand) index() int {
	assert.IsTrue(h < HandCount, "hand %d out of range", h)
	return int(h)
}
