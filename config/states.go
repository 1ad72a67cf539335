package config

// StateID identifies a character animation state.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Running
	Jump
	Fall
	WallSlide
)

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Jump:
		return "jump"
	case Fall:
		return "fall"
	case WallSlide:
		return "wallslide"
	default:
		return "none"
	}
}
