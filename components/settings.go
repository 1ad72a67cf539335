package components

import "github.com/yohamta/donburi"

// SettingsData holds runtime toggles that persist across sessions.
type SettingsData struct {
	Debug bool
	Muted bool
}

var Settings = donburi.NewComponentType[SettingsData]()
