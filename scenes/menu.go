package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/pinerift/clamber/config"
	"github.com/pinerift/clamber/systems"
	"github.com/pinerift/clamber/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	ecs           *ecs.ECS
	sceneChanger  SceneChanger
	menuUI        *ui.MenuUI
	tuningWatcher *cfg.TuningWatcher
	once          sync.Once
	shouldPlay    bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

// NewMenuSceneWithTuning creates a menu scene that hands the tuning watcher
// to the platformer scene it starts
func NewMenuSceneWithTuning(sc SceneChanger, tw *cfg.TuningWatcher) *MenuScene {
	return &MenuScene{sceneChanger: sc, tuningWatcher: tw}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	ms.ecs.Update()
	ms.menuUI.Update()

	if ms.shouldPlay {
		ms.sceneChanger.ChangeScene(NewPlatformerSceneWithTuning(ms.sceneChanger, ms.tuningWatcher))
		return
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ms.ecs == nil || ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)

	settings := systems.GetOrCreateSettings(ms.ecs)

	ms.menuUI = ui.NewMenuUI(
		func() { ms.shouldPlay = true },
		func() bool {
			settings.Debug = !settings.Debug
			systems.SaveCurrentSettings(settings)
			return settings.Debug
		},
		func() { os.Exit(0) },
		settings.Debug,
	)
}
