package components

import (
	"testing"

	cfg "github.com/pinerift/clamber/config"
	"github.com/pinerift/clamber/controller"
)

func TestResolveStatePriority(t *testing.T) {
	tests := []struct {
		name        string
		running     bool
		grounded    bool
		wallSliding bool
		speedY      float64
		want        cfg.StateID
	}{
		{name: "idle", grounded: true, want: cfg.Idle},
		{name: "running", grounded: true, running: true, want: cfg.Running},
		{name: "rising", speedY: -4, want: cfg.Jump},
		{name: "falling", speedY: 3, want: cfg.Fall},
		{name: "wall_slide_beats_fall", wallSliding: true, speedY: 3, want: cfg.WallSlide},
		{name: "wall_slide_beats_jump", wallSliding: true, speedY: -4, want: cfg.WallSlide},
		{name: "running_flag_ignored_in_air", running: true, speedY: 3, want: cfg.Fall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anim := NewAnimationData()
			anim.Running = tt.running
			anim.Grounded = tt.grounded
			anim.WallSliding = tt.wallSliding

			anim.Resolve(tt.speedY)

			if anim.CurrentState != tt.want {
				t.Errorf("state = %v, want %v", anim.CurrentState, tt.want)
			}
		})
	}
}

func TestResolveResetsTimerOnTransition(t *testing.T) {
	anim := NewAnimationData()
	anim.Grounded = true

	anim.Resolve(0)
	anim.Resolve(0)
	if anim.StateTimer != 1 {
		t.Fatalf("timer after two idle ticks = %d, want 1", anim.StateTimer)
	}

	anim.Running = true
	anim.Resolve(0)
	if anim.CurrentState != cfg.Running {
		t.Fatalf("state = %v, want %v", anim.CurrentState, cfg.Running)
	}
	if anim.StateTimer != 0 {
		t.Errorf("timer after transition = %d, want 0", anim.StateTimer)
	}
}

func TestParamSinkRouting(t *testing.T) {
	anim := NewAnimationData()

	anim.SetBool(controller.ParamRunning, true)
	anim.SetBool(controller.ParamGrounded, true)
	anim.SetBool(controller.ParamWallSliding, true)

	if !anim.Running || !anim.Grounded || !anim.WallSliding {
		t.Errorf("params not routed: running=%v grounded=%v sliding=%v",
			anim.Running, anim.Grounded, anim.WallSliding)
	}

	anim.SetBool("unknown", true) // ignored, must not panic
}

func TestConsumeJumpLatch(t *testing.T) {
	anim := NewAnimationData()

	if anim.ConsumeJump() {
		t.Fatal("jump latched before any trigger")
	}

	anim.Trigger(controller.TriggerJump)
	if !anim.ConsumeJump() {
		t.Fatal("jump trigger not latched")
	}
	if anim.ConsumeJump() {
		t.Error("jump latch not cleared by consume")
	}
}

func TestSquashStretchRecovers(t *testing.T) {
	anim := NewAnimationData()
	anim.TriggerSquashStretch(0.7, 1.25)

	for i := 0; i < 60; i++ {
		anim.StepSquashStretch(0.2)
	}

	if diff := anim.ScaleX - 1; diff < -0.01 || diff > 0.01 {
		t.Errorf("ScaleX = %v, want ~1", anim.ScaleX)
	}
	if diff := anim.ScaleY - 1; diff < -0.01 || diff > 0.01 {
		t.Errorf("ScaleY = %v, want ~1", anim.ScaleY)
	}
}
