package components

import "github.com/yohamta/donburi"

// SoundID identifies a synthesized sound effect.
type SoundID int

const (
	SoundJump SoundID = iota
	SoundLand
	SoundWallAttach
)

// AudioData queues sound effects for the audio system to play this frame.
type AudioData struct {
	PendingSFX []SoundID
}

// QueueSFX appends a sound to play on the next audio update.
func (a *AudioData) QueueSFX(id SoundID) {
	a.PendingSFX = append(a.PendingSFX, id)
}

var Audio = donburi.NewComponentType[AudioData]()
