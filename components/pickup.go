package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type PickupKind int

const (
	PickupCoin PickupKind = iota
	PickupHealth
)

// PickupData is a collectible. Collected is one-way.
type PickupData struct {
	Kind      PickupKind
	Collected bool
	BaseY     float64
	Float     *gween.Sequence // idle bob, offsets BaseY
	Fade      *gween.Tween    // collect animation, nil until collected
	Scale     float64
	Alpha     float64
}

var Pickup = donburi.NewComponentType[PickupData]()
