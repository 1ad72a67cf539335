package systems

import (
	"github.com/pinerift/clamber/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies gravity and runs the controller physics tick.
// Runs after UpdatePlayer so the decision tick's velocity writes land first;
// the wall-slide clamp re-caps the accumulated fall speed on the next
// decision tick.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)

		physics.SpeedY += physics.Gravity
		if physics.SpeedY > physics.MaxFallSpeed {
			physics.SpeedY = physics.MaxFallSpeed
		}

		if e.HasComponent(components.Controller) {
			components.Controller.Get(e).PhysicsTick()
		}
	})
}
