package factory

import (
	"math"

	"github.com/automoto/megagolem/archetypes"
	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/feedback"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Rand is the random source used for spawn jitter.
type Rand interface {
	Float64() float64
}

// burst describes the particles spawned for one ParticleKind.
type burst struct {
	count  int
	speed  float64 // px/s
	size   float64
	spread float64 // radians around straight up, 2*Pi for all directions
}

var bursts = map[feedback.ParticleKind]burst{
	feedback.Sparkle:   {count: 8, speed: 60, size: 3, spread: 2 * math.Pi},
	feedback.Dust:      {count: 5, speed: 40, size: 3, spread: math.Pi / 2},
	feedback.Hearts:    {count: 6, speed: 50, size: 5, spread: math.Pi},
	feedback.Trail:     {count: 1, speed: 0, size: 12},
	feedback.Shockwave: {count: 1, speed: 0, size: 20},
	feedback.Explosion: {count: 20, speed: 150, size: 5, spread: 2 * math.Pi},
}

// SpawnFloatingText creates a label that rises and fades at (x, y).
func SpawnFloatingText(ecs *ecs.ECS, x, y float64, text string, style feedback.TextStyle) *donburi.Entry {
	entry := archetypes.FloatingText.Spawn(ecs)
	components.FloatingText.SetValue(entry, components.FloatingTextData{
		Text:  text,
		Style: style,
		X:     x,
		Y:     y,
		Rise:  gween.New(0, 1, float32(cfg.Pickup.PopupDuration.Seconds()), ease.OutQuad),
		Fixed: style == feedback.StyleBanner,
	})
	return entry
}

// SpawnParticles creates a burst of kind at (x, y).
func SpawnParticles(ecs *ecs.ECS, x, y float64, kind feedback.ParticleKind, rng Rand) {
	b, ok := bursts[kind]
	if !ok {
		return
	}
	life := float32(cfg.Pickup.ParticleDuration.Seconds())
	for range b.count {
		angle := -math.Pi/2 + (rng.Float64()-0.5)*b.spread
		speed := b.speed * (0.5 + rng.Float64()/2)

		entry := archetypes.Particle.Spawn(ecs)
		components.Particle.SetValue(entry, components.ParticleData{
			Kind:  kind,
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Size:  b.size,
			Life:  gween.New(1, 0, life, ease.Linear),
			Alpha: 1,
		})
	}
}
