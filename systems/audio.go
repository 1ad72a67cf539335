package systems

import (
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/pinerift/clamber/components"
	cfg "github.com/pinerift/clamber/config"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	sfxSamples         map[components.SoundID][]byte
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the audio context and synthesizes the sound
// effects (called once). The game ships no audio files; each effect is a
// short decaying tone rendered straight to PCM.
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		sfxSamples = map[components.SoundID][]byte{
			components.SoundJump:       synthTone(660, 1320, 0.09),
			components.SoundLand:       synthTone(220, 140, 0.07),
			components.SoundWallAttach: synthTone(440, 440, 0.05),
		}
	})
}

// synthTone renders a tone sweeping from startHz to endHz over the given
// duration with an exponential decay, as 16-bit little endian stereo PCM.
func synthTone(startHz, endHz float64, duration float64) []byte {
	sampleRate := float64(cfg.Audio.SampleRate)
	n := int(sampleRate * duration)
	out := make([]byte, n*4)

	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := startHz + (endHz-startHz)*t
		phase += 2 * math.Pi * freq / sampleRate

		env := math.Exp(-5 * t)
		sample := int16(math.Sin(phase) * env * math.MaxInt16 * 0.6)

		out[i*4] = byte(sample)
		out[i*4+1] = byte(sample >> 8)
		out[i*4+2] = byte(sample)
		out[i*4+3] = byte(sample >> 8)
	}
	return out
}

// PlaySFX queues a sound effect to play on the next audio update.
func PlaySFX(e *ecs.ECS, id components.SoundID) {
	audioData := getOrCreateAudio(e)
	audioData.QueueSFX(id)
}

// UpdateAudio drains the pending SFX queue and starts a player for each,
// unless muted.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	settings := GetOrCreateSettings(e)
	audioData := getOrCreateAudio(e)

	pending := audioData.PendingSFX
	audioData.PendingSFX = audioData.PendingSFX[:0]

	if settings.Muted {
		return
	}

	for _, id := range pending {
		pcm, ok := sfxSamples[id]
		if !ok {
			continue
		}
		player := globalAudioContext.NewPlayerFromBytes(pcm)
		player.SetVolume(cfg.Audio.SFXVolume)
		player.Play()
	}
}

func getOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
	}
	return components.Audio.Get(entry)
}
