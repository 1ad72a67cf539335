package systems

import (
	"github.com/pinerift/clamber/components"
	cfg "github.com/pinerift/clamber/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the debug and mute toggle keys and persists any
// change. Must run AFTER UpdateInput.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	changed := false
	if input.Action(cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		changed = true
	}
	if input.Action(cfg.ActionToggleMute).JustPressed {
		settings.Muted = !settings.Muted
		changed = true
	}

	if changed {
		SaveCurrentSettings(settings)
	}
}

// GetOrCreateSettings returns the singleton settings component, loading the
// saved state on first access.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if ok {
		return components.Settings.Get(entry)
	}

	entry = e.World.Entry(e.World.Create(components.Settings))
	settings := components.Settings.Get(entry)

	if saved, err := LoadSettings(); err == nil && saved != nil {
		settings.Debug = saved.Debug
		settings.Muted = saved.Muted
	}
	return settings
}
