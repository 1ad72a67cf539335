package main

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pinerift/clamber/config"
	"github.com/pinerift/clamber/scenes"
	"github.com/pinerift/clamber/systems"
)

// tuningFile is written next to the binary on first run; editing it while
// the game runs reloads the movement values.
const tuningFile = "tuning.yaml"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(tw *config.TuningWatcher) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewMenuSceneWithTuning(g, tw)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence for the settings toggles
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	// Movement tuning: seed the file, apply it, then watch it for edits
	var watcher *config.TuningWatcher
	if err := config.EnsureTuningFile(tuningFile); err != nil {
		log.Printf("Warning: Could not write tuning file: %v", err)
	} else if err := config.ApplyTuningFile(tuningFile); err != nil {
		log.Printf("Warning: Could not apply tuning file: %v", err)
	} else {
		w, err := config.WatchTuning(tuningFile)
		if err != nil {
			log.Printf("Warning: Could not watch tuning file: %v", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	if err := ebiten.RunGame(NewGame(watcher)); err != nil {
		log.Fatal(err)
	}
}
