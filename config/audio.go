package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Movement sounds
	SoundJump
	SoundWallJump
	SoundDash
	// Pickup sounds
	SoundCoin
	SoundHeal
	// Combat sounds
	SoundDamage
	SoundEnemyDefeat
	SoundBossHit
	SoundBossInvulnerable
	SoundBossDefeat
	// Flow sounds
	SoundGoal
	SoundLevelComplete
	SoundGameOver
	SoundMenuSelect
)

// Note is one synthesized tone of a sound effect.
type Note struct {
	Frequency float64
	Duration  time.Duration
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	SFXVolume  float64 // 0.0 - 1.0
}

// SoundConfig maps sound IDs to the notes played for them
type SoundConfig struct {
	Notes             map[SoundID][]Note
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func note(freq float64, ms int) Note {
	return Note{Frequency: freq, Duration: time.Duration(ms) * time.Millisecond}
}

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		SFXVolume:  0.3,
	}

	Sound = SoundConfig{
		Notes: map[SoundID][]Note{
			SoundJump:             {note(400, 100)},
			SoundWallJump:         {note(500, 80)},
			SoundDash:             {note(600, 120)},
			SoundCoin:             {note(800, 50), note(1000, 50)},
			SoundHeal:             {note(600, 80), note(700, 80), note(800, 120)},
			SoundDamage:           {note(300, 100), note(200, 150)},
			SoundEnemyDefeat:      {note(150, 80), note(100, 120)},
			SoundBossHit:          {note(100, 100), note(80, 150)},
			SoundBossInvulnerable: {note(250, 100)},
			SoundBossDefeat:       {note(500, 100), note(400, 100), note(300, 150), note(200, 200)},
			SoundGoal:             {note(800, 100), note(1000, 100), note(1200, 150)},
			SoundLevelComplete:    {note(500, 100), note(600, 100), note(700, 100), note(800, 200)},
			SoundGameOver:         {note(400, 150), note(350, 150), note(300, 200), note(200, 300)},
			SoundMenuSelect:       {note(660, 60)},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundBossHit: 1.3,
		},
	}
}
