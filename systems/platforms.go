package systems

import (
	"github.com/pinerift/clamber/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms advances the tween sequence of each floating platform and
// moves its collision object along it. The sequence restarts when it
// completes, so the platform bobs forever.
func UpdatePlatforms(ecs *ecs.ECS) {
	components.Tween.Each(ecs.World, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		obj := components.Object.Get(e)

		y, _, seqDone := tw.Update(1.0 / 60.0)
		obj.Y = float64(y)
		if seqDone {
			tw.Reset()
		}
	})
}
