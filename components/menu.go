package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MenuData stores the current state of the main menu
type MenuData struct {
	BestScore int
	Blink     *gween.Sequence // start prompt fade
	Alpha     float64
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
