package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	cfg "github.com/pinerift/clamber/config"
	"github.com/pinerift/clamber/fonts"
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 8

// DrawHUD renders the controls hint and the mute indicator.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Default()

	text.Draw(screen, "A/D move  Space jump  F1 debug  M mute  Esc menu",
		face, hudMargin, screen.Bounds().Dy()-hudMargin, cfg.White)

	settings := GetOrCreateSettings(ecs)
	if settings.Muted {
		text.Draw(screen, "muted", face, screen.Bounds().Dx()-50, 16, cfg.Yellow)
	}
}
