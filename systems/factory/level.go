package factory

import (
	"fmt"

	"github.com/pinerift/clamber/archetypes"
	"github.com/pinerift/clamber/assets"
	"github.com/pinerift/clamber/components"
	"github.com/pinerift/clamber/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the shipped TMX map into a level entity.
func CreateLevel(ecs *ecs.ECS) (*donburi.Entry, error) {
	lvl, err := leveldata.Load(assets.FS, assets.LevelPath)
	if err != nil {
		return nil, fmt.Errorf("create level: %w", err)
	}

	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{CurrentLevel: lvl})
	return entry, nil
}
