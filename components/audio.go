package components

import (
	cfg "github.com/automoto/megagolem/config"
	"github.com/yohamta/donburi"
)

// AudioData is the singleton sound queue. Logic appends, the audio device drains.
type AudioData struct {
	SFXVolume  float64
	Muted      bool
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
