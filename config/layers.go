package config

import "github.com/yohamta/donburi/ecs"

// Default is the ecs layer all systems and renderers run on.
const Default = ecs.LayerDefault
