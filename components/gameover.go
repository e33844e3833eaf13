package components

import (
	"github.com/automoto/megagolem/session"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GameOverData is the summary shown once a run ends.
type GameOverData struct {
	Outcome         session.Outcome
	Score           int
	LevelsCompleted int
	MaxLevel        int
	BestScore       int
	NewBest         bool

	Pulse *gween.Sequence // title bounce
	Scale float64
}

// GameOver is the component type for game over screen state
var GameOver = donburi.NewComponentType[GameOverData]()
