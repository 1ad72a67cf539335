package controller

import (
	"testing"
)

const dt = 1.0 / 60.0

func testConfig() Config {
	return Config{
		MoveSpeed:             5,
		JumpForce:             12,
		WallJumpForce:         8,
		DirectedWallJumpForce: 10,
		WallSlideSpeed:        2,
		WallCheckDistance:     6,
		WallJumpTime:          0.2,
		WallLayer:             "wall",
	}
}

type fakeBody struct {
	vel      Vec2
	sets     []Vec2
	impulses []Vec2
}

func (b *fakeBody) Velocity() Vec2 { return b.vel }

func (b *fakeBody) SetVelocity(v Vec2) {
	b.vel = v
	b.sets = append(b.sets, v)
}

func (b *fakeBody) ApplyImpulse(dv Vec2) {
	b.vel.X += dv.X
	b.vel.Y += dv.Y
	b.impulses = append(b.impulses, dv)
}

type fakeProbe struct {
	left, right  bool
	lastLayer    string
	lastDistance float64
}

func (p *fakeProbe) Cast(dirX, distance float64, layer string) bool {
	p.lastLayer = layer
	p.lastDistance = distance
	if dirX > 0 {
		return p.right
	}
	return p.left
}

type boolCall struct {
	name  string
	value bool
}

type fakeSink struct {
	calls    []boolCall
	bools    map[string]bool
	triggers []string
}

func newFakeSink() *fakeSink {
	return &fakeSink{bools: map[string]bool{}}
}

func (s *fakeSink) SetBool(name string, value bool) {
	s.calls = append(s.calls, boolCall{name, value})
	s.bools[name] = value
}

func (s *fakeSink) Trigger(name string) {
	s.triggers = append(s.triggers, name)
}

func newTestController() (*Controller, *fakeBody, *fakeProbe, *fakeSink) {
	body := &fakeBody{}
	probe := &fakeProbe{}
	sink := newFakeSink()
	return New(testConfig(), body, probe, sink), body, probe, sink
}

func ground(c *Controller) {
	c.OnContactBegin([]Contact{{Normal: Vec2{X: 0, Y: -1}}})
}

func TestGroundJump(t *testing.T) {
	c, body, _, sink := newTestController()
	ground(c)
	body.vel = Vec2{X: 3, Y: 0.5}

	c.DecisionTick(Input{MoveX: 0, JumpPressed: true}, dt)

	if body.vel.Y != -12 {
		t.Fatalf("vertical velocity = %v, want -12", body.vel.Y)
	}
	if body.vel.X != 3 {
		t.Fatalf("horizontal velocity = %v, want unchanged 3", body.vel.X)
	}
	if c.Grounded() {
		t.Fatal("grounded should clear on jump initiation")
	}
	if !c.Jumping() {
		t.Fatal("jumping should be set")
	}
	if len(sink.triggers) != 1 || sink.triggers[0] != TriggerJump {
		t.Fatalf("triggers = %v, want one %q", sink.triggers, TriggerJump)
	}
}

func TestNoAirJump(t *testing.T) {
	cases := []struct {
		name    string
		jumping bool
	}{
		{"falling", false},
		{"already_jumping", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, body, _, sink := newTestController()
			c.jumping = tc.jumping
			body.vel = Vec2{X: 0, Y: 4}

			c.DecisionTick(Input{JumpPressed: true}, dt)

			if body.vel.Y != 4 {
				t.Fatalf("vertical velocity = %v, want untouched 4", body.vel.Y)
			}
			if len(sink.triggers) != 0 {
				t.Fatalf("no jump trigger expected, got %v", sink.triggers)
			}
		})
	}
}

func TestWallSensorRightPriority(t *testing.T) {
	c, _, probe, _ := newTestController()
	probe.left = true
	probe.right = true

	c.DecisionTick(Input{}, dt)

	touching, dir := c.TouchingWall()
	if !touching || dir != 1 {
		t.Fatalf("touching=%v dir=%v, want right wall to win", touching, dir)
	}
	if probe.lastLayer != "wall" || probe.lastDistance != 6 {
		t.Fatalf("probe got layer=%q distance=%v, want wall/6", probe.lastLayer, probe.lastDistance)
	}
}

func TestWallSlideEligibility(t *testing.T) {
	cases := []struct {
		name     string
		left     bool
		right    bool
		grounded bool
		moveX    float64
		want     bool
	}{
		{"pushing_into_right_wall", false, true, false, 1, true},
		{"pushing_into_left_wall", true, false, false, -1, true},
		{"no_input_on_wall", false, true, false, 0, true},
		{"pulling_away_from_wall", false, true, false, -1, false},
		{"grounded_on_wall", false, true, true, 1, false},
		{"no_wall", false, false, false, 1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _, probe, _ := newTestController()
			probe.left, probe.right = tc.left, tc.right
			if tc.grounded {
				ground(c)
			}

			c.DecisionTick(Input{MoveX: tc.moveX}, dt)

			if c.WallSliding() != tc.want {
				t.Fatalf("wallSliding = %v, want %v", c.WallSliding(), tc.want)
			}
		})
	}
}

func TestWallSlideClampsFallSpeed(t *testing.T) {
	cases := []struct {
		name  string
		velY  float64
		wantY float64
	}{
		{"falling_fast", 9, 2},
		{"falling_slower_than_cap", 1.5, 1.5},
		{"moving_up", -4, -4}, // upward speed is never touched
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, body, probe, _ := newTestController()
			probe.right = true
			body.vel = Vec2{X: 0, Y: tc.velY}

			c.DecisionTick(Input{MoveX: 1}, dt)

			if body.vel.Y != tc.wantY {
				t.Fatalf("velocity Y = %v, want %v", body.vel.Y, tc.wantY)
			}
		})
	}
}

func TestWallSlideSuppressedDuringLock(t *testing.T) {
	c, body, probe, _ := newTestController()
	probe.right = true
	body.vel = Vec2{Y: 9}
	c.wallJumping = true
	c.wallJumpCounter = 0.2

	c.DecisionTick(Input{MoveX: 1}, dt)

	if c.WallSliding() {
		t.Fatal("wall slide must be forced off while the lock is active")
	}
	if body.vel.Y != 9 {
		t.Fatalf("fall speed clamped to %v during lock, want untouched 9", body.vel.Y)
	}
}

func TestDirectedWallJump(t *testing.T) {
	c, body, probe, _ := newTestController()
	probe.right = true
	// Attach to the wall first so the slide flag is up.
	body.vel = Vec2{Y: 3}
	c.DecisionTick(Input{MoveX: 0}, dt)
	if !c.WallSliding() {
		t.Fatal("setup: expected wall slide")
	}

	c.DecisionTick(Input{MoveX: -1, JumpPressed: true}, dt)

	if len(body.impulses) != 1 {
		t.Fatalf("impulses = %v, want exactly one", body.impulses)
	}
	imp := body.impulses[0]
	if imp.X != -10 || imp.Y != -12 {
		t.Fatalf("impulse = %+v, want {-10 -12}", imp)
	}
	// Velocity zeroed before the impulse: final velocity equals the impulse.
	if body.vel != imp {
		t.Fatalf("velocity = %+v, want reset then impulse %+v", body.vel, imp)
	}
	if c.FacingRight() {
		t.Fatal("should face the jump direction (left)")
	}
	if !c.WallJumping() || !c.Jumping() {
		t.Fatal("wall jump flags not set")
	}
}

func TestPlainWallJump(t *testing.T) {
	c, body, probe, sink := newTestController()
	probe.right = true
	body.vel = Vec2{Y: 3}
	c.DecisionTick(Input{MoveX: 0}, dt)

	c.DecisionTick(Input{MoveX: 0, JumpPressed: true}, dt)

	if len(body.impulses) != 1 {
		t.Fatalf("impulses = %v, want exactly one", body.impulses)
	}
	imp := body.impulses[0]
	if imp.X != -8 || imp.Y != -12 {
		t.Fatalf("impulse = %+v, want {-8 -12}", imp)
	}
	if c.FacingRight() {
		t.Fatal("should face away from the wall (left)")
	}
	if c.WallSliding() {
		t.Fatal("slide flag should clear on wall jump")
	}
	if got := len(sink.triggers); got != 1 {
		t.Fatalf("jump trigger fired %d times, want 1", got)
	}
}

func TestDirectedRequiresInputAwayFromWall(t *testing.T) {
	// Input toward the wall is a plain jump, not a directed one.
	c, body, probe, _ := newTestController()
	probe.right = true
	body.vel = Vec2{Y: 3}
	c.DecisionTick(Input{MoveX: 1}, dt)
	if !c.WallSliding() {
		t.Fatal("setup: expected wall slide")
	}

	c.DecisionTick(Input{MoveX: 1, JumpPressed: true}, dt)

	if len(body.impulses) != 1 || body.impulses[0].X != -8 {
		t.Fatalf("impulses = %v, want plain wall jump {-8 -12}", body.impulses)
	}
}

func TestWallJumpCounterInvariant(t *testing.T) {
	c, body, probe, _ := newTestController()
	probe.right = true
	body.vel = Vec2{Y: 3}

	script := []Input{
		{MoveX: 1},                    // slide on
		{MoveX: 0, JumpPressed: true}, // plain wall jump
		{MoveX: 1}, {MoveX: -1}, {MoveX: 0},
		{MoveX: 1, JumpPressed: true}, // ignored mid-lock (not sliding)
		{}, {}, {}, {}, {}, {}, {}, {}, {}, {},
	}
	for i, in := range script {
		c.DecisionTick(in, dt)
		if c.WallJumping() != (c.wallJumpCounter > 0) {
			t.Fatalf("tick %d: wallJumping=%v counter=%v, must be equivalent",
				i, c.WallJumping(), c.wallJumpCounter)
		}
	}
	if c.WallJumping() {
		t.Fatal("lock should have expired after the script")
	}
}

func TestLockExpirySameTickFlipNextTick(t *testing.T) {
	c, body, probe, _ := newTestController()
	probe.right = true
	body.vel = Vec2{Y: 3}
	c.DecisionTick(Input{MoveX: 0}, dt)
	c.DecisionTick(Input{MoveX: 0, JumpPressed: true}, dt) // faces left, lock 0.2s
	probe.right = false

	// Hold right: facing disagrees with input, but the lock wins.
	ticks := 0
	for c.WallJumping() {
		c.DecisionTick(Input{MoveX: 1}, dt)
		ticks++
		if ticks > 60 {
			t.Fatal("lock never expired")
		}
	}
	// The tick that cleared the lock must not have flipped yet.
	if c.FacingRight() {
		t.Fatal("flip happened in the same tick the lock expired")
	}
	c.DecisionTick(Input{MoveX: 1}, dt)
	if !c.FacingRight() {
		t.Fatal("flip should happen on the first tick after the lock expires")
	}
}

func TestNoFlipDuringLock(t *testing.T) {
	c, body, probe, _ := newTestController()
	probe.left = true
	body.vel = Vec2{Y: 3}
	c.DecisionTick(Input{MoveX: 0}, dt)
	c.DecisionTick(Input{JumpPressed: true}, dt) // plain jump off left wall, faces right

	c.DecisionTick(Input{MoveX: -1}, dt)
	if !c.FacingRight() {
		t.Fatal("flip must not respond to input while the lock is active")
	}
}

func TestLandingClearsJumpState(t *testing.T) {
	c, _, _, _ := newTestController()
	c.jumping = true
	c.wallJumping = true
	c.wallJumpCounter = 0.15

	ground(c)

	if !c.Grounded() {
		t.Fatal("grounded should be set")
	}
	if c.Jumping() || c.WallJumping() || c.wallJumpCounter != 0 {
		t.Fatal("landing must clear jumping, wallJumping, and the counter in the same event")
	}
}

func TestShallowContactDoesNotGround(t *testing.T) {
	c, _, _, _ := newTestController()
	c.OnContactBegin([]Contact{
		{Normal: Vec2{X: -0.95, Y: -0.3}}, // wall-ish, up component below threshold
		{Normal: Vec2{X: 0, Y: 1}},        // ceiling
	})
	if c.Grounded() {
		t.Fatal("contact normals below the up threshold must not ground")
	}
}

func TestContactEndClearsGrounded(t *testing.T) {
	c, _, _, _ := newTestController()
	ground(c)
	c.OnContactEnd()
	if c.Grounded() {
		t.Fatal("contact end clears grounded unconditionally")
	}
}

func TestFlipPreservesRunning(t *testing.T) {
	c, _, _, sink := newTestController()
	ground(c)
	c.DecisionTick(Input{MoveX: 1}, dt)

	sink.calls = nil
	c.DecisionTick(Input{MoveX: -1}, dt)

	if c.FacingRight() {
		t.Fatal("expected flip to the left")
	}
	// The flip re-asserts running before the regular end-of-tick publish.
	if len(sink.calls) == 0 || sink.calls[0] != (boolCall{ParamRunning, true}) {
		t.Fatalf("calls = %v, want running=true re-asserted first", sink.calls)
	}
}

func TestPublishedParams(t *testing.T) {
	c, _, probe, sink := newTestController()
	probe.right = true
	c.DecisionTick(Input{MoveX: 1}, dt)

	want := map[string]bool{
		ParamRunning:     true,
		ParamGrounded:    false,
		ParamWallSliding: true,
	}
	for name, v := range want {
		if sink.bools[name] != v {
			t.Fatalf("param %q = %v, want %v", name, sink.bools[name], v)
		}
	}
}

func TestNilSink(t *testing.T) {
	body := &fakeBody{}
	c := New(testConfig(), body, &fakeProbe{}, nil)
	ground(c)
	c.DecisionTick(Input{MoveX: 1, JumpPressed: true}, dt) // must not panic
	if body.vel.Y != -12 {
		t.Fatalf("jump should still dispatch without a sink, velY = %v", body.vel.Y)
	}
}

func TestPhysicsTickHorizontalControl(t *testing.T) {
	c, body, _, _ := newTestController()
	body.vel = Vec2{X: 1, Y: -7}
	c.DecisionTick(Input{MoveX: -1}, dt)

	c.PhysicsTick()

	if body.vel.X != -5 {
		t.Fatalf("velocity X = %v, want input*moveSpeed = -5", body.vel.X)
	}
	if body.vel.Y != -7 {
		t.Fatalf("velocity Y = %v, want preserved -7", body.vel.Y)
	}
}

func TestPhysicsTickSuspendedDuringLock(t *testing.T) {
	c, body, _, _ := newTestController()
	body.vel = Vec2{X: 8, Y: -12}
	c.in = Input{MoveX: -1}
	c.wallJumping = true
	c.wallJumpCounter = 0.1

	c.PhysicsTick()

	if body.vel.X != 8 {
		t.Fatalf("velocity X = %v, lock must suspend horizontal control", body.vel.X)
	}
}

func TestPhysicsTickHoldsWallSlide(t *testing.T) {
	c, body, _, _ := newTestController()
	body.vel = Vec2{X: 0, Y: 2}
	c.wallSliding = true
	c.facingRight = true
	c.in = Input{MoveX: -1} // steering disagrees with facing: keep the slide

	c.PhysicsTick()

	if len(body.sets) != 0 {
		t.Fatalf("velocity writes = %v, want none while the slide holds", body.sets)
	}
}
