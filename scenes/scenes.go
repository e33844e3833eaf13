// Package scenes wires systems and renderers into the menu, level and game
// over screens and moves between them.
package scenes

import (
	"github.com/automoto/megagolem/leveldata"
	"github.com/automoto/megagolem/session"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// LevelSource returns level n of the run.
type LevelSource func(n int) (*leveldata.Level, error)

// Env is shared by every scene of one game.
type Env struct {
	Changer SceneChanger
	Session *session.Session
	Levels  LevelSource
}
