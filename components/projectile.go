package components

import (
	"github.com/automoto/megagolem/timing"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Lifetime timing.Countdown
	Consumed bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()
