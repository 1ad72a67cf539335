package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pinerift/clamber/components"
	cfg "github.com/pinerift/clamber/config"
	"github.com/pinerift/clamber/systems"
	"github.com/pinerift/clamber/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene runs the wall jump playground
type PlatformerScene struct {
	ecs           *ecs.ECS
	sceneChanger  SceneChanger
	tuningWatcher *cfg.TuningWatcher
	once          sync.Once
}

// NewPlatformerScene creates a new platformer scene
func NewPlatformerScene(sc SceneChanger) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc}
}

// NewPlatformerSceneWithTuning creates a platformer scene that reloads
// movement tuning when the watched file changes
func NewPlatformerSceneWithTuning(sc SceneChanger, tw *cfg.TuningWatcher) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, tuningWatcher: tw}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if systems.PauseRequested(ps.ecs) {
		ps.sceneChanger.ChangeScene(NewMenuSceneWithTuning(ps.sceneChanger, ps.tuningWatcher))
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first to initialize audio context)
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.NewUpdateTuning(ps.tuningWatcher))

	// The decision tick runs before physics so its velocity writes land
	// first; collisions then turn speed into movement and feed contacts back
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdatePlatforms)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ps.ecs = ecs

	level, err := factory.CreateLevel(ps.ecs)
	if err != nil {
		panic("failed to load level: " + err.Error())
	}
	levelData := components.Level.Get(level)

	factory.CreateSpace(ps.ecs,
		levelData.CurrentLevel.Width,
		levelData.CurrentLevel.Height,
		16, 16,
	)

	for _, wall := range levelData.CurrentLevel.Walls {
		factory.CreateWall(ps.ecs, wall.X, wall.Y, wall.W, wall.H)
	}
	for _, platform := range levelData.CurrentLevel.Platforms {
		if platform.Floating {
			factory.CreateFloatingPlatform(ps.ecs, platform.X, platform.Y, platform.W, platform.H, platform.FloatRange)
		} else {
			factory.CreatePlatform(ps.ecs, platform.X, platform.Y, platform.W, platform.H)
		}
	}

	factory.CreatePlayer(ps.ecs, levelData.CurrentLevel.SpawnX, levelData.CurrentLevel.SpawnY)
	factory.CreateCamera(ps.ecs, levelData.CurrentLevel.SpawnX, levelData.CurrentLevel.SpawnY)
}
