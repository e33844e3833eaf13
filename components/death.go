package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DefeatData marks an entity playing its defeat animation. The entity is
// removed from the world when Anim finishes.
type DefeatData struct {
	Anim       *gween.Tween // 1 -> 0, drives scale and alpha
	Progress   float64
	RevealGoal bool // enable the level goal afterwards
}

var Defeat = donburi.NewComponentType[DefeatData]()
