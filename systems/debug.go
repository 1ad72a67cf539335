package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pinerift/clamber/components"
	cfg "github.com/pinerift/clamber/config"
	"github.com/pinerift/clamber/fonts"
	"github.com/pinerift/clamber/tags"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug renders collision box outlines and the controller state readout
// when the debug overlay is enabled.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	camera, ok := currentCamera(ecs)
	if !ok {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX := float64(width)/2 - camera.Position.X
	camY := float64(height)/2 - camera.Position.Y

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		viewX := camera.Position.X - float64(width)/2
		viewY := camera.Position.Y - float64(height)/2

		for _, obj := range space.Objects() {
			if obj.X+obj.W < viewX || obj.X > viewX+float64(width) ||
				obj.Y+obj.H < viewY || obj.Y > viewY+float64(height) {
				continue
			}

			x := obj.X + camX
			y := obj.Y + camY

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvWall) {
				c = color.RGBA{255, 160, 0, 255} // Orange
			} else if obj.HasTags(tags.ResolvPlatform) {
				c = color.RGBA{0, 255, 0, 255} // Green
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			}

			vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)
			vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false)
			vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)
			vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false)
		}
	}

	drawControllerState(ecs, screen)
}

func drawControllerState(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	ctrl := components.Controller.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	anim := components.Animation.Get(playerEntry)

	touching, wallDir := ctrl.TouchingWall()
	lines := []string{
		fmt.Sprintf("state: %s", anim.CurrentState),
		fmt.Sprintf("speed: %.2f, %.2f", physics.SpeedX, physics.SpeedY),
		fmt.Sprintf("grounded: %v  wall: %v (%.0f)", ctrl.Grounded(), touching, wallDir),
		fmt.Sprintf("sliding: %v  wallJumping: %v", ctrl.WallSliding(), ctrl.WallJumping()),
		fmt.Sprintf("facingRight: %v", ctrl.FacingRight()),
	}

	face := fonts.Default()
	for i, line := range lines {
		text.Draw(screen, line, face, 8, 40+i*14, cfg.White)
	}
}
