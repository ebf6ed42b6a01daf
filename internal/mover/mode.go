package mover

// Mode selects the motion algorithm the animation engine runs for a mover.
// Tags other than the ones below are passed through untouched.
type Mode string

const (
	ModeSpring Mode = "spring"
	ModeSlide  Mode = "slide"
	ModeDrag   Mode = "drag"
	ModePush   Mode = "push"
)

// DefaultMode is used when no mode is given.
const DefaultMode = ModeSpring

func (m Mode) Known() bool {
	switch m {
	case ModeSpring, ModeSlide, ModeDrag, ModePush:
		return true
	}
	return false
}
