package systems

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pinerift/clamber/components"
	cfg "github.com/pinerift/clamber/config"
	"github.com/pinerift/clamber/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

// playerImage is a white base sprite tinted per state at draw time. The eye
// marker sits on the facing side so the mirror flip reads on screen.
var playerImage *ebiten.Image

func getPlayerImage() *ebiten.Image {
	if playerImage != nil {
		return playerImage
	}
	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	playerImage = ebiten.NewImage(w, h)
	playerImage.Fill(cfg.White)

	eye := playerImage.SubImage(image.Rect(w-6, 6, w-3, 9)).(*ebiten.Image)
	eye.Fill(color.RGBA{R: 20, G: 20, B: 30, A: 255})
	return playerImage
}

// DrawLevel renders the wall and platform geometry relative to the camera.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := currentCamera(ecs)
	if !ok {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	offsetX := float64(width)/2 - camera.Position.X
	offsetY := float64(height)/2 - camera.Position.Y

	drawTagged := func(entry *donburi.Entry, fill color.RGBA) {
		o := components.Object.Get(entry)
		x := float32(o.X + offsetX)
		y := float32(o.Y + offsetY)
		vector.DrawFilledRect(screen, x, y, float32(o.W), float32(o.H), fill, false)
	}

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		drawTagged(e, cfg.WallGrey)
	})
	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		drawTagged(e, cfg.PlatformTan)
	})
	tags.FloatingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		drawTagged(e, cfg.PlatformTan)
	})
}

// DrawPlayer renders the player as a state-tinted rectangle sprite with
// squash/stretch and the facing flip applied around the bottom-center
// anchor.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := currentCamera(ecs)
	if !ok {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		ctrl := components.Controller.Get(e)
		anim := components.Animation.Get(e)

		img := getPlayerImage()
		iw, ih := img.Bounds().Dx(), img.Bounds().Dy()

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		// Anchor at bottom-center so feet line up with the collision box
		drawOp.GeoM.Translate(-float64(iw)/2, -float64(ih))
		drawOp.GeoM.Scale(anim.ScaleX, anim.ScaleY)
		if !ctrl.FacingRight() {
			drawOp.GeoM.Scale(-1, 1)
		}
		drawOp.GeoM.Translate(o.X+o.W/2, o.Y+o.H)
		drawOp.GeoM.Translate(float64(width)/2-camera.Position.X, float64(height)/2-camera.Position.Y)

		drawOp.ColorScale.ScaleWithColor(stateColor(anim.CurrentState))

		screen.DrawImage(img, drawOp)
	})
}

func stateColor(state cfg.StateID) color.RGBA {
	switch state {
	case cfg.Running:
		return cfg.Yellow
	case cfg.Jump:
		return cfg.JumpGreen
	case cfg.Fall:
		return cfg.Crimson
	case cfg.WallSlide:
		return cfg.SlideBlue
	default:
		return cfg.White
	}
}

func currentCamera(ecs *ecs.ECS) (*components.CameraData, bool) {
	entry, ok := components.Camera.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(entry), true
}
