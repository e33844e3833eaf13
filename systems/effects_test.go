package systems

import (
	"testing"

	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/feedback"
	"github.com/automoto/megagolem/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

func TestWorldSink_ExplosionSpawnsParticlesAndShakes(t *testing.T) {
	w := newTestWorld(t)
	camera := factory.CreateCamera(w.ecs, 400, 300)
	sink := NewWorldSink(w.ecs, fixedRand(0.5))

	sink.Particles(100, 100, feedback.Explosion)
	sink.FloatingText(100, 80, "+50", feedback.StyleHit)
	sink.PlaySound(cfg.SoundEnemyDefeat)

	assert.Equal(t, 20, count(w.ecs.World, components.Particle))
	assert.Equal(t, 1, count(w.ecs.World, components.FloatingText))
	require.True(t, camera.HasComponent(components.ScreenShake))
	assert.Equal(t, []cfg.SoundID{cfg.SoundEnemyDefeat}, DrainSFX(w.ecs))
	assert.Empty(t, DrainSFX(w.ecs))

	ticks := int(cfg.Pickup.PopupDuration/testStep) + 2
	w.run(ticks, UpdateEffects, func(_ *Context, e *ecs.ECS) { UpdateCamera(e) })

	assert.Zero(t, count(w.ecs.World, components.Particle))
	assert.Zero(t, count(w.ecs.World, components.FloatingText))
	assert.False(t, camera.HasComponent(components.ScreenShake))
	assert.Zero(t, components.Camera.Get(camera).Shake)
}

func TestTriggerScreenShake_KeepsStrongerShake(t *testing.T) {
	w := newTestWorld(t)
	camera := factory.CreateCamera(w.ecs, 400, 300)

	TriggerScreenShake(w.ecs, 8, 20)
	TriggerScreenShake(w.ecs, 4, 12)

	shake := components.ScreenShake.Get(camera)
	assert.Equal(t, 8.0, shake.Intensity)
	assert.Equal(t, 20, shake.Duration)
}

func TestUpdateCamera_CentresScreenSizedLevel(t *testing.T) {
	w := newTestWorld(t)
	camera := factory.CreateCamera(w.ecs, 100, 100)
	factory.CreatePlayer(w.ecs, 50, 500)

	for range 200 {
		UpdateCamera(w.ecs)
	}

	pos := components.Camera.Get(camera).Position
	assert.InDelta(t, float64(cfg.C.Width)/2, pos.X, 0.01)
	assert.InDelta(t, float64(cfg.C.Height)/2, pos.Y, 0.01)
}

func TestClampAxis(t *testing.T) {
	assert.Equal(t, 400.0, clampAxis(50, 800, 800))
	assert.Equal(t, 400.0, clampAxis(50, 800, 2000))
	assert.Equal(t, 1600.0, clampAxis(1900, 800, 2000))
	assert.Equal(t, 1000.0, clampAxis(1000, 800, 2000))
}
