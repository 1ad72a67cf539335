package systems

import (
	"math"

	"github.com/pinerift/clamber/components"
	"github.com/pinerift/clamber/config"
	"github.com/pinerift/clamber/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the player with smoothing and a facing-direction
// look-ahead, clamped to the level bounds.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	ctrl := components.Controller.Get(playerEntry)

	// Only update look-ahead when the player is moving; freeze it when idle
	if math.Abs(physics.SpeedX) > config.Camera.LookAheadSpeedThreshold {
		facing := -1.0
		if ctrl.FacingRight() {
			facing = 1.0
		}
		targetLookAhead := facing * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	targetX := playerObject.X + camera.LookAheadX
	targetY := playerObject.Y

	// Keep the level filling the screen
	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}
	levelWidth := float64(levelData.CurrentLevel.Width)
	levelHeight := float64(levelData.CurrentLevel.Height)

	minCameraX := screenWidth / 2
	maxCameraX := levelWidth - screenWidth/2
	minCameraY := screenHeight / 2
	maxCameraY := levelHeight - screenHeight/2

	targetX = math.Max(minCameraX, math.Min(maxCameraX, targetX))
	targetY = math.Max(minCameraY, math.Min(maxCameraY, targetY))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}
