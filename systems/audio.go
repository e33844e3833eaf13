package systems

import (
	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:  cfg.Audio.SFXVolume,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

// PlaySFX queues a sound effect. The audio device drains the queue once per frame.
func PlaySFX(e *ecs.ECS, soundID cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	if audioData.Muted || soundID == cfg.SoundNone {
		return
	}
	audioData.PendingSFX = append(audioData.PendingSFX, soundID)
}

// DrainSFX returns the queued sounds and empties the queue.
func DrainSFX(e *ecs.ECS) []cfg.SoundID {
	audioData := GetOrCreateAudio(e)
	pending := audioData.PendingSFX
	audioData.PendingSFX = make([]cfg.SoundID, 0, cap(pending))
	return pending
}
