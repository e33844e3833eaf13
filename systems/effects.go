package systems

import (
	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/feedback"
	"github.com/automoto/megagolem/systems/factory"
	"github.com/automoto/megagolem/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldSink turns feedback events into queued sounds and effect entities in
// the world. Nothing it does feeds back into gameplay.
type WorldSink struct {
	ecs *ecs.ECS
	rng factory.Rand
}

func NewWorldSink(e *ecs.ECS, rng factory.Rand) *WorldSink {
	return &WorldSink{ecs: e, rng: rng}
}

func (s *WorldSink) PlaySound(id cfg.SoundID) {
	PlaySFX(s.ecs, id)
	if id == cfg.SoundDamage {
		TriggerScreenShake(s.ecs, cfg.Camera.DamageShakeIntensity, cfg.Camera.DamageShakeDuration)
	}
}

func (s *WorldSink) FloatingText(x, y float64, text string, style feedback.TextStyle) {
	factory.SpawnFloatingText(s.ecs, x, y, text, style)
}

func (s *WorldSink) Particles(x, y float64, kind feedback.ParticleKind) {
	factory.SpawnParticles(s.ecs, x, y, kind, s.rng)
	if kind == feedback.Explosion || kind == feedback.Shockwave {
		TriggerScreenShake(s.ecs, cfg.Camera.ExplosionShakeIntensity, cfg.Camera.ExplosionShakeDuration)
	}
}

// UpdateEffects advances floating texts and particles and removes the
// finished ones. It keeps running while the level complete banner shows.
func UpdateEffects(ctx *Context, ecs *ecs.ECS) {
	dt := ctx.dt()
	var finished []*donburi.Entry

	tags.Effect.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.FloatingText) {
			ft := components.FloatingText.Get(e)
			t, done := ft.Rise.Update(float32(dt))
			ft.T = float64(t)
			if done {
				finished = append(finished, e)
			}
			return
		}

		p := components.Particle.Get(e)
		p.X += p.VX * dt
		p.Y += p.VY * dt
		alpha, done := p.Life.Update(float32(dt))
		p.Alpha = float64(alpha)
		if done {
			finished = append(finished, e)
		}
	})

	for _, e := range finished {
		ecs.World.Remove(e.Entity())
	}
}
