package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pinerift/clamber/components"
	cfg "github.com/pinerift/clamber/config"
	"github.com/pinerift/clamber/controller"
	"github.com/pinerift/clamber/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer runs the controller decision tick for each player, then
// resolves the animation state and queues the sound effects for any edges
// it produced. Must run AFTER UpdateInput and BEFORE UpdatePhysics.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	dt := 1.0 / float64(ebiten.TPS())

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		ctrl := components.Controller.Get(e)
		physics := components.Physics.Get(e)
		anim := components.Animation.Get(e)

		wasGrounded := anim.Grounded
		wasSliding := anim.WallSliding

		ctrl.DecisionTick(controller.Input{
			MoveX:       input.AxisX,
			JumpPressed: input.Action(cfg.ActionJump).JustPressed,
		}, dt)

		anim.Resolve(physics.SpeedY)
		anim.StepSquashStretch(cfg.Player.SquashRecovery)

		if anim.ConsumeJump() {
			anim.TriggerSquashStretch(cfg.Player.JumpSquashX, cfg.Player.JumpSquashY)
			PlaySFX(ecs, components.SoundJump)
		}
		if anim.Grounded && !wasGrounded {
			anim.TriggerSquashStretch(cfg.Player.LandSquashX, cfg.Player.LandSquashY)
			PlaySFX(ecs, components.SoundLand)
		}
		if anim.WallSliding && !wasSliding {
			PlaySFX(ecs, components.SoundWallAttach)
		}
	})
}
