package systems

import (
	"log"

	cfg "github.com/pinerift/clamber/config"
	"github.com/pinerift/clamber/systems/factory"
	"github.com/pinerift/clamber/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateTuning returns a system that drains tuning file change events
// and rebuilds each player's controller with the reloaded values. The
// controller config is immutable once attached, so a reload swaps the whole
// controller rather than mutating it.
func NewUpdateTuning(watcher *cfg.TuningWatcher) func(e *ecs.ECS) {
	return func(e *ecs.ECS) {
		if watcher == nil {
			return
		}

		reloaded := false
		for {
			select {
			case path := <-watcher.Events:
				if err := cfg.ApplyTuningFile(path); err != nil {
					log.Printf("Warning: Could not reload tuning: %v", err)
					continue
				}
				reloaded = true
			case err := <-watcher.Errors:
				log.Printf("Warning: Tuning watcher error: %v", err)
			default:
				if reloaded {
					tags.Player.Each(e.World, func(player *donburi.Entry) {
						factory.AttachController(player)
					})
					log.Printf("Reloaded movement tuning")
				}
				return
			}
		}
	}
}
