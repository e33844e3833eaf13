package device

import (
	"sync"

	"github.com/automoto/megagolem/assets"
	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/systems"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	audioContext  *audio.Context
	tones         *assets.ToneCache
	sfxVolume     = cfg.Audio.SFXVolume
	muted         bool
	audioInitOnce sync.Once
)

func initAudio() {
	audioInitOnce.Do(func() {
		audioContext = audio.NewContext(cfg.Audio.SampleRate)
		tones = assets.NewToneCache(cfg.Audio.SampleRate)
	})
}

// PreloadAllSFX renders every tone at startup so the first play doesn't stall.
func PreloadAllSFX() {
	initAudio()
	tones.Preload()
}

// ApplySettings sets the global volume and mute state.
func ApplySettings(s *systems.SavedSettings) {
	if s == nil {
		return
	}
	sfxVolume = s.SFXVolume
	muted = s.Muted
}

// UpdateAudio plays the sounds queued by gameplay this frame.
func UpdateAudio(e *ecs.ECS) {
	initAudio()
	for _, id := range systems.DrainSFX(e) {
		playSFX(id)
	}
}

func playSFX(id cfg.SoundID) {
	if muted || sfxVolume <= 0 {
		return
	}
	pcm := tones.PCM(id)
	if pcm == nil {
		return
	}

	volume := sfxVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}

	player := audioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(min(volume, 1))
	player.Play()
}
