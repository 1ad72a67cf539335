package factory

import (
	"github.com/pinerift/clamber/archetypes"
	"github.com/pinerift/clamber/components"
	cfg "github.com/pinerift/clamber/config"
	"github.com/pinerift/clamber/controller"
	"github.com/pinerift/clamber/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight))
	obj.SetShape(resolv.NewRectangle(0, 0, float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight)))
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})
	components.Animation.SetValue(player, components.NewAnimationData())

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	AttachController(player)

	return player
}

// AttachController builds the movement core from the current tuning and
// wires it to the entity's physics, collision object, and animation sink.
// Called again by the tuning reload to rebuild the controller with fresh
// config (the config is immutable per controller instance).
func AttachController(player *donburi.Entry) {
	ctrl := controller.New(
		ControllerConfig(),
		components.SpeedBody{Physics: components.Physics.Get(player)},
		components.ResolvProbe{Object: components.Object.Get(player).Object},
		components.Animation.Get(player),
	)
	components.Controller.SetValue(player, components.ControllerData{Controller: ctrl})
}

// ControllerConfig maps the player tuning onto the controller config.
func ControllerConfig() controller.Config {
	return controller.Config{
		MoveSpeed:             cfg.Player.MoveSpeed,
		JumpForce:             cfg.Player.JumpForce,
		WallJumpForce:         cfg.Player.WallJumpForce,
		DirectedWallJumpForce: cfg.Player.DirectedWallJumpForce,
		WallSlideSpeed:        cfg.Player.WallSlideSpeed,
		WallCheckDistance:     cfg.Player.WallCheckDistance,
		WallJumpTime:          cfg.Player.WallJumpTime,
		WallLayer:             tags.ResolvWall,
	}
}
