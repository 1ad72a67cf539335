package tags

import "github.com/yohamta/donburi"

var (
	Player           = donburi.NewTag().SetName("Player")
	Wall             = donburi.NewTag().SetName("Wall")
	Platform         = donburi.NewTag().SetName("Platform")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvWall     = "wall"
	ResolvPlatform = "platform"
	ResolvPlayer   = "player"
)
