package systems

import (
	"testing"

	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/session"
	"github.com/automoto/megagolem/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestCollectPickup_HealthItem(t *testing.T) {
	t.Run("restores a lost life", func(t *testing.T) {
		w := newTestWorld(t)
		w.ctx.Session.LoseLife()
		heart := factory.CreateHealthItem(w.ecs, 100, 100)

		CollectPickup(w.ctx, heart)

		assert.Equal(t, cfg.Run.StartingLives, w.ctx.Session.Lives)
		assert.Zero(t, w.ctx.Session.Score)
		assert.Equal(t, 1, w.rec.Texts("+1 LIFE!"))
		assert.Equal(t, 1, w.rec.Sounds(cfg.SoundHeal))
	})

	t.Run("scores a bonus at full lives", func(t *testing.T) {
		w := newTestWorld(t)
		heart := factory.CreateHealthItem(w.ecs, 100, 100)

		CollectPickup(w.ctx, heart)
		CollectPickup(w.ctx, heart)

		assert.Equal(t, cfg.Run.MaxLives, w.ctx.Session.Lives)
		assert.Equal(t, cfg.Pickup.HealBonusScore, w.ctx.Session.Score)
		assert.Equal(t, 1, w.rec.Texts("+50 BONUS!"))
	})
}

func TestUpdatePickups_RemovesAfterFade(t *testing.T) {
	w := newTestWorld(t)
	coin := factory.CreateCoin(w.ecs, 100, 100)
	other := factory.CreateCoin(w.ecs, 300, 100)

	CollectPickup(w.ctx, coin)
	ticks := int(cfg.Pickup.CollectDuration/testStep) + 2
	w.run(ticks, UpdatePickups)

	assert.False(t, coin.Valid())
	assert.True(t, other.Valid())
}

func TestUpdatePickups_IdleBob(t *testing.T) {
	w := newTestWorld(t)
	coin := factory.CreateCoin(w.ecs, 100, 100)
	baseY := components.Pickup.Get(coin).BaseY

	minY, maxY := baseY, baseY
	for range 200 {
		w.run(1, UpdatePickups)
		y := components.Object.Get(coin).Y
		minY = min(minY, y)
		maxY = max(maxY, y)
	}

	assert.InDelta(t, baseY-cfg.Pickup.FloatAmplitude, minY, 0.5)
	assert.InDelta(t, baseY, maxY, 0.5)
}

func TestReachGoal(t *testing.T) {
	t.Run("disabled goal is ignored", func(t *testing.T) {
		w := newTestWorld(t)
		goal := factory.CreateGoal(w.ecs, 100, 100, false)

		ReachGoal(w.ctx, w.ecs, goal)

		assert.False(t, components.Goal.Get(goal).Reached)
		assert.Equal(t, cfg.Run.FirstLevel, w.ctx.Session.CurrentLevel)
		assert.False(t, IsLevelComplete(w.ecs))
	})

	t.Run("advances once and waits out the banner", func(t *testing.T) {
		w := newTestWorld(t)
		goal := factory.CreateGoal(w.ecs, 100, 100, true)

		ReachGoal(w.ctx, w.ecs, goal)
		ReachGoal(w.ctx, w.ecs, goal)

		assert.Equal(t, cfg.Run.FirstLevel+1, w.ctx.Session.CurrentLevel)
		assert.Equal(t, 1, w.rec.Sounds(cfg.SoundLevelComplete))
		assert.True(t, IsLevelComplete(w.ecs))

		lc := GetOrCreateLevelComplete(w.ecs)
		delay := int(cfg.Goal.LevelCompleteDelay / testStep)
		w.run(delay-1, UpdateLevelComplete)
		assert.False(t, lc.Advance)

		w.run(2, UpdateLevelComplete)
		assert.True(t, lc.Advance)
		assert.False(t, w.ctx.Session.Finished())
	})

	t.Run("last level wins the run", func(t *testing.T) {
		w := newTestWorld(t)
		w.ctx.Session.CurrentLevel = w.ctx.Session.MaxLevel
		goal := factory.CreateGoal(w.ecs, 100, 100, true)

		ReachGoal(w.ctx, w.ecs, goal)

		assert.Equal(t, session.Won, w.ctx.Session.Outcome)
		assert.Equal(t, 1, w.rec.Sounds(cfg.SoundGoal))
		assert.False(t, IsLevelComplete(w.ecs))
	})
}
