package factory

import (
	"github.com/pinerift/clamber/archetypes"
	"github.com/pinerift/clamber/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Position: components.Vector{X: x, Y: y},
	})
	return camera
}
