package components

import (
	"github.com/automoto/megagolem/timing"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GoalData is the level exit trigger. A disabled goal is hidden and ignores
// overlaps until enabled.
type GoalData struct {
	Enabled bool
	Reached bool

	RevealTimer timing.Countdown // pending enable after a boss defeat
	Pulse       *gween.Sequence
	Scale       float64
}

var Goal = donburi.NewComponentType[GoalData]()
