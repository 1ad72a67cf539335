// Package controller implements the wall-jump character controller that
// drives the player: run/jump movement, wall detection, wall slide, and the
// plain/directed wall-jump variants with their lock timer. It is
// engine-agnostic; the host injects the physics body, the wall probe, and an
// optional animation sink, and drives the controller through three entry
// points: DecisionTick once per frame, PhysicsTick once per fixed physics
// step, and OnContactBegin/OnContactEnd from the collision event feed.
//
// Coordinates follow the screen convention: +Y is down, so jumps apply a
// negative vertical velocity and an upward-facing surface normal has Y <= 0.
package controller

// Vec2 is a 2D vector in screen coordinates (+Y down).
type Vec2 struct {
	X, Y float64
}

// Config holds the immutable per-character movement tuning.
// WallJumpTime is in seconds; the rest are velocity units per tick.
// Values are not validated; authors are expected to supply sane numbers.
type Config struct {
	MoveSpeed             float64
	JumpForce             float64
	WallJumpForce         float64
	DirectedWallJumpForce float64
	WallSlideSpeed        float64
	WallCheckDistance     float64
	WallJumpTime          float64
	WallLayer             string
}

// Input is one frame's input sample.
type Input struct {
	MoveX       float64 // horizontal axis in [-1, 1]
	JumpPressed bool    // true only on the frame jump was pressed
}

// Contact is a single collision contact point's surface normal.
type Contact struct {
	Normal Vec2
}

// Body is the injected physics body. ApplyImpulse adds an instantaneous
// velocity change.
type Body interface {
	Velocity() Vec2
	SetVelocity(v Vec2)
	ApplyImpulse(dv Vec2)
}

// WallProbe casts a horizontal probe from the character's position.
// dirX is -1 or 1, layer is an opaque filter naming what counts as wall.
type WallProbe interface {
	Cast(dirX, distance float64, layer string) bool
}

// ParamSink receives the animation parameters published every decision tick.
type ParamSink interface {
	SetBool(name string, value bool)
	Trigger(name string)
}

// Published parameter names.
const (
	ParamRunning     = "running"
	ParamGrounded    = "grounded"
	ParamWallSliding = "wallSliding"
	TriggerJump      = "jump"
)

// A contact supports the character when its normal's upward component is at
// least half of unit length. Screen up is -Y.
const groundNormalY = -0.5

// Controller owns the movement state machine for one character.
// Not safe for concurrent use; all entry points run on the simulation thread.
type Controller struct {
	cfg   Config
	body  Body
	probe WallProbe
	anim  ParamSink // may be nil

	in Input // last sampled input, used by PhysicsTick

	facingRight     bool
	grounded        bool
	touchingWall    bool
	wallDirX        float64 // -1, 0, or 1
	wallSliding     bool
	wallJumping     bool
	wallJumpCounter float64 // seconds remaining; wallJumping iff > 0
	jumping         bool
}

// New creates a controller in its spawn state: facing right, airborne,
// all timers zero. A nil anim sink disables parameter publishing.
func New(cfg Config, body Body, probe WallProbe, anim ParamSink) *Controller {
	return &Controller{
		cfg:         cfg,
		body:        body,
		probe:       probe,
		anim:        anim,
		facingRight: true,
	}
}

// DecisionTick runs the per-frame decision layer. The stage order is a fixed
// invariant: wall sensing, wall-slide evaluation, jump dispatch, facing
// update, wall-jump lock countdown, parameter publish. The countdown runs
// after the facing stage, so a lock that expires this tick re-enables
// horizontal control for the next physics step but defers any flip to the
// next decision tick.
func (c *Controller) DecisionTick(in Input, dt float64) {
	c.in = in
	c.senseWalls()
	c.evalWallSlide()
	if in.JumpPressed {
		c.dispatchJump()
	}
	c.updateFacing()
	c.tickWallJumpLock(dt)
	c.publish()
}

// PhysicsTick runs the fixed-step layer: it overwrites horizontal velocity
// from the last input sample, unless an active wall-jump lock owns the
// trajectory, or a wall slide is held and the player is not steering away
// from the wall.
func (c *Controller) PhysicsTick() {
	if c.wallJumping {
		return
	}
	if c.wallSliding && c.in.MoveX*c.facingSign() < 0 {
		return
	}
	v := c.body.Velocity()
	c.body.SetVelocity(Vec2{X: c.in.MoveX * c.cfg.MoveSpeed, Y: v.Y})
}

// OnContactBegin consumes a collision contact event. Any contact point with
// an upward-facing normal grounds the character and cancels both the jump
// flag and any in-flight wall-jump lock.
func (c *Controller) OnContactBegin(contacts []Contact) {
	for _, ct := range contacts {
		if ct.Normal.Y <= groundNormalY {
			c.grounded = true
			c.jumping = false
			c.wallJumping = false
			c.wallJumpCounter = 0
			return
		}
	}
}

// OnContactEnd clears grounded unconditionally. Continued support is
// re-asserted by the next contact-begin event; no independent re-check here.
func (c *Controller) OnContactEnd() {
	c.grounded = false
}

// senseWalls probes both horizontal directions. Right wins the degenerate
// case where both report a hit (standing in a narrow gap). A missed probe
// just reads as no wall for this tick.
func (c *Controller) senseWalls() {
	switch {
	case c.probe.Cast(1, c.cfg.WallCheckDistance, c.cfg.WallLayer):
		c.touchingWall, c.wallDirX = true, 1
	case c.probe.Cast(-1, c.cfg.WallCheckDistance, c.cfg.WallLayer):
		c.touchingWall, c.wallDirX = true, -1
	default:
		c.touchingWall, c.wallDirX = false, 0
	}
}

// evalWallSlide derives the sliding flag and caps fall speed while sliding.
// A wall-jump lock forces the flag off so the jump arc is left alone.
func (c *Controller) evalWallSlide() {
	if c.wallJumping {
		c.wallSliding = false
		return
	}
	pushingIntoWall := c.in.MoveX != 0 && sign(c.in.MoveX) == c.wallDirX
	c.wallSliding = c.touchingWall && !c.grounded && (pushingIntoWall || c.in.MoveX == 0)
	if !c.wallSliding {
		return
	}
	// Clamp here rather than in the physics step so the cap wins over the
	// gravity accumulated this tick. Only downward speed is capped; an
	// upward velocity is never touched.
	v := c.body.Velocity()
	if v.Y > c.cfg.WallSlideSpeed {
		c.body.SetVelocity(Vec2{X: v.X, Y: c.cfg.WallSlideSpeed})
	}
}

// dispatchJump picks the jump variant, first match wins: ground jump, then
// wall jump off a slide. Airborne without a slide does nothing; there is no
// double jump.
func (c *Controller) dispatchJump() {
	switch {
	case c.grounded:
		v := c.body.Velocity()
		c.body.SetVelocity(Vec2{X: v.X, Y: -c.cfg.JumpForce})
		c.grounded = false
		c.jumping = true
		c.trigger(TriggerJump)
	case c.wallSliding:
		c.dispatchWallJump()
	}
}

// dispatchWallJump fires the directed variant when the player is pressing
// away from the wall they slide on, the plain variant otherwise. Velocity is
// zeroed before the impulse so the arc is deterministic regardless of the
// speed carried into the wall.
func (c *Controller) dispatchWallJump() {
	directed := c.in.MoveX != 0 && sign(c.in.MoveX) == -c.wallDirX
	c.body.SetVelocity(Vec2{})
	if directed {
		c.body.ApplyImpulse(Vec2{X: c.in.MoveX * c.cfg.DirectedWallJumpForce, Y: -c.cfg.JumpForce})
		c.face(c.in.MoveX > 0)
	} else {
		c.body.ApplyImpulse(Vec2{X: -c.wallDirX * c.cfg.WallJumpForce, Y: -c.cfg.JumpForce})
		c.face(c.wallDirX < 0)
	}
	c.wallSliding = false
	c.wallJumping = true
	c.wallJumpCounter = c.cfg.WallJumpTime
	c.jumping = true
	c.trigger(TriggerJump)
}

// updateFacing flips toward the input direction, never while a wall-jump
// lock is active.
func (c *Controller) updateFacing() {
	if c.wallJumping {
		return
	}
	if (c.in.MoveX > 0 && !c.facingRight) || (c.in.MoveX < 0 && c.facingRight) {
		c.flip()
	}
}

func (c *Controller) tickWallJumpLock(dt float64) {
	if !c.wallJumping {
		return
	}
	c.wallJumpCounter -= dt
	if c.wallJumpCounter <= 0 {
		c.wallJumpCounter = 0
		c.wallJumping = false
	}
}

func (c *Controller) face(right bool) {
	if c.facingRight != right {
		c.flip()
	}
}

// flip mirrors the facing direction. Running state is captured before the
// flip and re-asserted right after, so a flip never drops the running
// animation for a frame.
func (c *Controller) flip() {
	wasRunning := c.running()
	c.facingRight = !c.facingRight
	if wasRunning {
		c.setBool(ParamRunning, true)
	}
}

func (c *Controller) publish() {
	c.setBool(ParamRunning, c.running())
	c.setBool(ParamGrounded, c.grounded)
	c.setBool(ParamWallSliding, c.wallSliding)
}

func (c *Controller) running() bool {
	return c.in.MoveX != 0
}

func (c *Controller) facingSign() float64 {
	if c.facingRight {
		return 1
	}
	return -1
}

func (c *Controller) setBool(name string, value bool) {
	if c.anim != nil {
		c.anim.SetBool(name, value)
	}
}

func (c *Controller) trigger(name string) {
	if c.anim != nil {
		c.anim.Trigger(name)
	}
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// FacingRight reports the visual mirror state; the host applies it as a
// transform-scale sign flip.
func (c *Controller) FacingRight() bool { return c.facingRight }

// Grounded reports whether a qualifying ground contact is active.
func (c *Controller) Grounded() bool { return c.grounded }

// Jumping reports whether a jump is in flight (set at dispatch, cleared on
// the next ground contact).
func (c *Controller) Jumping() bool { return c.jumping }

// WallSliding reports whether the character is sliding on a wall this tick.
func (c *Controller) WallSliding() bool { return c.wallSliding }

// WallJumping reports whether the wall-jump lock is active.
func (c *Controller) WallJumping() bool { return c.wallJumping }

// TouchingWall reports the last wall-sensor result and the wall's side.
func (c *Controller) TouchingWall() (bool, float64) {
	return c.touchingWall, c.wallDirX
}
