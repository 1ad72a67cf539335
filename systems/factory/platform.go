package factory

import (
	"github.com/pinerift/clamber/archetypes"
	"github.com/pinerift/clamber/components"
	"github.com/pinerift/clamber/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform creates a one-way platform the player can jump through
// from below and land on from above.
func CreatePlatform(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	attachPlatformObject(ecs, platform, x, y, w, h)
	return platform
}

// CreateFloatingPlatform creates a one-way platform that bobs vertically
// over floatRange pixels using a looping tween sequence.
func CreateFloatingPlatform(ecs *ecs.ECS, x, y, w, h, floatRange float64) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(ecs)
	attachPlatformObject(ecs, platform, x, y, w, h)

	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(y), float32(y-floatRange), 2, ease.Linear),
		gween.New(float32(y-floatRange), float32(y), 2, ease.Linear),
	)
	components.Tween.Set(platform, tw)

	return platform
}

func attachPlatformObject(ecs *ecs.ECS, platform *donburi.Entry, x, y, w, h float64) {
	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = platform

	components.Object.SetValue(platform, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
