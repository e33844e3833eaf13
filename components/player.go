package components

import (
	"github.com/automoto/megagolem/timing"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Alive       bool
	Invincible  bool
	WallSliding bool
	Dashing     bool

	// Active movement profile, switched between normal and dash every tick
	Speed        float64
	JumpVelocity float64

	JumpKeyWasDown bool // edge latch for the jump input
	Facing         float64

	// Invincibility blink. Invincible clears when the sequence ends.
	Blink      *gween.Sequence
	BlinkAlpha float64

	LossTimer timing.Countdown // running once dead
	TrailTimer timing.Countdown
}

// NewPlayer returns a live player with the normal profile.
func NewPlayer(speed, jumpVelocity float64) PlayerData {
	return PlayerData{
		Alive:        true,
		Speed:        speed,
		JumpVelocity: jumpVelocity,
		Facing:       1,
		BlinkAlpha:   1,
	}
}

var Player = donburi.NewComponentType[PlayerData]()
