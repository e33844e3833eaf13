package systems

import (
	"testing"

	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsStomp(t *testing.T) {
	tests := []struct {
		name          string
		bottom, vy, c float64
		want          bool
	}{
		{"falling with feet above centre", 90, 150, 100, true},
		{"feet below centre", 110, 150, 100, false},
		{"falling too slowly", 90, 50, 100, false},
		{"exactly the minimum", 90, 100, 100, false},
		{"rising", 90, -200, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStomp(tt.bottom, tt.vy, tt.c, cfg.Combat.StompMinFallSpeed))
		})
	}
}

func TestUpdateCombat_StompDefeatsEnemyOnce(t *testing.T) {
	w := newTestWorld(t)
	enemy := factory.CreateEnemy(w.ecs, 200, 400)
	player := factory.CreatePlayer(w.ecs, 200, 380)
	components.Body.Get(player).VY = 200

	UpdateCombat(w.ctx, w.ecs)

	assert.False(t, components.Enemy.Get(enemy).Alive)
	assert.False(t, components.Body.Get(enemy).Enabled)
	assert.Equal(t, cfg.Enemy.StompBounce, components.Body.Get(player).VY)
	assert.Equal(t, cfg.Enemy.StompScore, w.ctx.Session.Score)
	assert.Equal(t, cfg.Run.StartingLives, w.ctx.Session.Lives)
	assert.Equal(t, 1, w.rec.Sounds(cfg.SoundEnemyDefeat))
	assert.True(t, enemy.HasComponent(components.Defeat))

	// Lifted clear of the enemy
	playerObj := components.Object.Get(player)
	assert.InDelta(t, components.Object.Get(enemy).Y, playerObj.Y+playerObj.H, 1e-9)

	UpdateCombat(w.ctx, w.ecs)
	StompEnemy(w.ctx, w.ecs, enemy)

	assert.Equal(t, cfg.Enemy.StompScore, w.ctx.Session.Score)
	assert.Equal(t, 1, w.rec.Sounds(cfg.SoundEnemyDefeat))
}

func TestUpdateCombat_SideHitDamagesPlayer(t *testing.T) {
	w := newTestWorld(t)
	enemy := factory.CreateEnemy(w.ecs, 200, 400)
	player := factory.CreatePlayer(w.ecs, 180, 400)

	UpdateCombat(w.ctx, w.ecs)

	assert.True(t, components.Enemy.Get(enemy).Alive)
	assert.Equal(t, cfg.Run.StartingLives-1, w.ctx.Session.Lives)
	assert.True(t, components.Player.Get(player).Invincible)
	assert.Equal(t, 1, w.rec.Sounds(cfg.SoundDamage))

	// Invincible while blinking
	UpdateCombat(w.ctx, w.ecs)
	assert.Equal(t, cfg.Run.StartingLives-1, w.ctx.Session.Lives)
}

func TestUpdateCombat_BossStomp(t *testing.T) {
	t.Run("invulnerable boss only bounces", func(t *testing.T) {
		w := newTestWorld(t)
		boss := factory.CreateBoss(w.ecs, 400, 400)
		components.Boss.Get(boss).Invulnerable = true
		player := factory.CreatePlayer(w.ecs, 400, 330)
		components.Body.Get(player).VY = 200

		UpdateCombat(w.ctx, w.ecs)

		assert.Equal(t, cfg.Boss.MaxHealth, components.Boss.Get(boss).Health)
		assert.Equal(t, cfg.Boss.StompBounce, components.Body.Get(player).VY)
		assert.Equal(t, 1, w.rec.Sounds(cfg.SoundBossInvulnerable))
		assert.Equal(t, 1, w.rec.Texts("INVULNERABLE!"))
		assert.Equal(t, cfg.Run.StartingLives, w.ctx.Session.Lives)
	})

	t.Run("vulnerable boss loses health", func(t *testing.T) {
		w := newTestWorld(t)
		boss := factory.CreateBoss(w.ecs, 400, 400)
		player := factory.CreatePlayer(w.ecs, 400, 330)
		components.Body.Get(player).VY = 200

		UpdateCombat(w.ctx, w.ecs)

		b := components.Boss.Get(boss)
		assert.Equal(t, cfg.Boss.MaxHealth-1, b.Health)
		assert.True(t, b.Invulnerable)
		assert.False(t, b.InCycle)
		assert.Equal(t, 1, w.rec.Texts("HIT!"))
		assert.Equal(t, 1, w.rec.Sounds(cfg.SoundBossHit))
	})

	t.Run("side contact hurts the player", func(t *testing.T) {
		w := newTestWorld(t)
		boss := factory.CreateBoss(w.ecs, 400, 400)
		factory.CreatePlayer(w.ecs, 330, 430)

		UpdateCombat(w.ctx, w.ecs)

		assert.Equal(t, cfg.Boss.MaxHealth, components.Boss.Get(boss).Health)
		assert.Equal(t, cfg.Run.StartingLives-1, w.ctx.Session.Lives)
		assert.Equal(t, 1, w.rec.Texts("SIDE HIT!"))
	})
}

func TestUpdateCombat_DeadPlayerTouchesNothing(t *testing.T) {
	w := newTestWorld(t)
	enemy := factory.CreateEnemy(w.ecs, 200, 400)
	coin := factory.CreateCoin(w.ecs, 200, 400)
	player := factory.CreatePlayer(w.ecs, 200, 400)
	KillPlayer(w.ctx, player)

	UpdateCombat(w.ctx, w.ecs)

	assert.True(t, components.Enemy.Get(enemy).Alive)
	assert.False(t, components.Pickup.Get(coin).Collected)
	assert.Equal(t, cfg.Run.StartingLives, w.ctx.Session.Lives)
	assert.Zero(t, w.ctx.Session.Score)
}

func TestUpdateCombat_ProjectileIsConsumed(t *testing.T) {
	w := newTestWorld(t)
	player := factory.CreatePlayer(w.ecs, 200, 400)
	proj := factory.CreateProjectile(w.ecs, 200, 400, cfg.DirectionLeft)

	UpdateCombat(w.ctx, w.ecs)

	assert.False(t, proj.Valid())
	assert.Equal(t, cfg.Run.StartingLives-1, w.ctx.Session.Lives)
	assert.True(t, components.Player.Get(player).Invincible)

	// A second projectile is still consumed while the player blinks
	second := factory.CreateProjectile(w.ecs, 200, 400, cfg.DirectionLeft)
	UpdateCombat(w.ctx, w.ecs)

	assert.False(t, second.Valid())
	assert.Equal(t, cfg.Run.StartingLives-1, w.ctx.Session.Lives)
}

func TestUpdateCombat_CoinCollectedOnce(t *testing.T) {
	w := newTestWorld(t)
	coin := factory.CreateCoin(w.ecs, 200, 400)
	factory.CreatePlayer(w.ecs, 200, 400)

	UpdateCombat(w.ctx, w.ecs)
	UpdateCombat(w.ctx, w.ecs)

	require.True(t, coin.Valid())
	assert.True(t, components.Pickup.Get(coin).Collected)
	assert.Equal(t, cfg.Pickup.CoinValue, w.ctx.Session.Score)
	assert.Equal(t, 1, w.rec.Sounds(cfg.SoundCoin))
}
