package components

import (
	cfg "github.com/pinerift/clamber/config"
	"github.com/pinerift/clamber/controller"
	"github.com/yohamta/donburi"
)

// AnimationData is the controller's ParamSink: it stores the published
// booleans, latches the jump trigger, and derives the animation state the
// renderer draws. Squash/stretch gives jumps and landings some feel without
// sprite sheets.
type AnimationData struct {
	Running     bool
	Grounded    bool
	WallSliding bool

	jumpLatched bool

	CurrentState cfg.StateID
	StateTimer   int

	ScaleX, ScaleY float64 // current squash/stretch scale, lerps back to 1
}

var Animation = donburi.NewComponentType[AnimationData]()

// NewAnimationData returns sink state with neutral scale.
func NewAnimationData() AnimationData {
	return AnimationData{CurrentState: cfg.Idle, ScaleX: 1, ScaleY: 1}
}

func (a *AnimationData) SetBool(name string, value bool) {
	switch name {
	case controller.ParamRunning:
		a.Running = value
	case controller.ParamGrounded:
		a.Grounded = value
	case controller.ParamWallSliding:
		a.WallSliding = value
	}
}

func (a *AnimationData) Trigger(name string) {
	if name == controller.TriggerJump {
		a.jumpLatched = true
	}
}

// ConsumeJump reports whether a jump trigger fired since the last call.
func (a *AnimationData) ConsumeJump() bool {
	fired := a.jumpLatched
	a.jumpLatched = false
	return fired
}

// Resolve derives the animation state from the published parameters and the
// current vertical speed, and resets the state timer on transitions.
func (a *AnimationData) Resolve(speedY float64) {
	next := cfg.Idle
	switch {
	case a.WallSliding:
		next = cfg.WallSlide
	case !a.Grounded && speedY < 0:
		next = cfg.Jump
	case !a.Grounded:
		next = cfg.Fall
	case a.Running:
		next = cfg.Running
	}
	if next != a.CurrentState {
		a.CurrentState = next
		a.StateTimer = 0
	} else {
		a.StateTimer++
	}
}

// TriggerSquashStretch sets an immediate scale that lerps back to neutral.
func (a *AnimationData) TriggerSquashStretch(scaleX, scaleY float64) {
	a.ScaleX = scaleX
	a.ScaleY = scaleY
}

// StepSquashStretch lerps the scale back toward neutral.
func (a *AnimationData) StepSquashStretch(lerp float64) {
	a.ScaleX += (1 - a.ScaleX) * lerp
	a.ScaleY += (1 - a.ScaleY) * lerp
}
