package components

import (
	cfg "github.com/automoto/megagolem/config"
	"github.com/yohamta/donburi"
)

// StateData is the visible animation state of a character.
type StateData struct {
	CurrentState  cfg.StateID
	PreviousState cfg.StateID
	StateTimer    int // ticks in the current state
}

// Set changes state and resets the timer. Setting the current state is a no-op.
func (s *StateData) Set(id cfg.StateID) {
	if s.CurrentState == id {
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = id
	s.StateTimer = 0
}

var State = donburi.NewComponentType[StateData]()
