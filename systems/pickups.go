package systems

import (
	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/feedback"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CollectPickup applies a coin or health item once. Later overlaps with the
// same pickup do nothing.
func CollectPickup(ctx *Context, pickupEntry *donburi.Entry) {
	pickup := components.Pickup.Get(pickupEntry)
	if pickup.Collected {
		return
	}
	pickup.Collected = true
	pickup.Fade = gween.New(1, 0, float32(cfg.Pickup.CollectDuration.Seconds()), ease.InBack)

	obj := components.Object.Get(pickupEntry)
	x, y := obj.CenterX(), obj.CenterY()

	switch pickup.Kind {
	case components.PickupCoin:
		ctx.Session.AddScore(cfg.Pickup.CoinValue)
		ctx.Sink.PlaySound(cfg.SoundCoin)
		ctx.Sink.Particles(x, y, feedback.Sparkle)
		ctx.Sink.FloatingText(x, y-20, scoreText(cfg.Pickup.CoinValue), feedback.StyleScore)
	case components.PickupHealth:
		ctx.Sink.PlaySound(cfg.SoundHeal)
		ctx.Sink.Particles(x, y, feedback.Hearts)
		if ctx.Session.GainLife(cfg.Pickup.HealAmount) {
			ctx.Sink.FloatingText(x, y-30, "+1 LIFE!", feedback.StyleHeal)
			return
		}
		ctx.Session.AddScore(cfg.Pickup.HealBonusScore)
		ctx.Sink.FloatingText(x, y-30, scoreText(cfg.Pickup.HealBonusScore)+" BONUS!", feedback.StyleScore)
	}
}

// UpdatePickups bobs idle pickups and removes collected ones once their
// fade finishes.
func UpdatePickups(ctx *Context, ecs *ecs.ECS) {
	dt := float32(ctx.dt())
	var done []*donburi.Entry

	components.Pickup.Each(ecs.World, func(e *donburi.Entry) {
		pickup := components.Pickup.Get(e)
		obj := components.Object.Get(e)

		if pickup.Collected {
			if pickup.Fade == nil {
				done = append(done, e)
				return
			}
			v, finished := pickup.Fade.Update(dt)
			pickup.Alpha = float64(v)
			pickup.Scale = 1 + (1 - float64(v))
			if finished {
				done = append(done, e)
			}
			return
		}

		if pickup.Float != nil {
			offset, _, finished := pickup.Float.Update(dt)
			if finished {
				pickup.Float.Reset()
			}
			obj.Y = pickup.BaseY + float64(offset)
		}
	})

	for _, e := range done {
		RemoveEntity(ecs, e)
	}
}
