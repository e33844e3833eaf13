package components

import (
	"github.com/automoto/megagolem/timing"
	"github.com/yohamta/donburi"
)

// LevelCompleteData stores the state of the level complete banner
type LevelCompleteData struct {
	IsComplete bool
	Timer      timing.Countdown // until the next level loads
	Advance    bool             // Timer expired, the scene should load CurrentLevel
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
