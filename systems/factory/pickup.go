package factory

import (
	"github.com/automoto/megagolem/archetypes"
	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCoin(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	coin := archetypes.Coin.Spawn(ecs)
	size := cfg.Pickup.CoinSize
	attach(ecs, coin, newBox(x, y, size, size, tags.ResolvPickup))
	components.Pickup.SetValue(coin, newPickup(components.PickupCoin, y-size/2))
	return coin
}

// CreateHealthItem spawns a floating heart. It ignores gravity and platforms.
func CreateHealthItem(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	heart := archetypes.HealthItem.Spawn(ecs)
	size := cfg.Pickup.HeartSize
	attach(ecs, heart, newBox(x, y, size, size, tags.ResolvPickup))
	components.Pickup.SetValue(heart, newPickup(components.PickupHealth, y-size/2))
	return heart
}

func newPickup(kind components.PickupKind, baseY float64) components.PickupData {
	half := float32(cfg.Pickup.FloatHalfPeriod.Seconds())
	amp := float32(cfg.Pickup.FloatAmplitude)
	return components.PickupData{
		Kind:  kind,
		BaseY: baseY,
		Float: gween.NewSequence(
			gween.New(0, -amp, half, ease.InOutSine),
			gween.New(-amp, 0, half, ease.InOutSine),
		),
		Scale: 1,
		Alpha: 1,
	}
}
