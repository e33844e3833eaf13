package systems

import (
	"testing"

	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func newGroundedEnemy(w *testWorld, x float64) *donburi.Entry {
	enemy := factory.CreateEnemy(w.ecs, x, 384)
	standOn(enemy, 400)
	return enemy
}

func TestUpdateEnemyAI_ReversesAtEdgeWithCooldown(t *testing.T) {
	w := newTestWorld(t)
	w.platform(180, 400, 20, 32)
	enemy := newGroundedEnemy(w, 190)
	e := components.Enemy.Get(enemy)

	var reversals []int
	last := e.Direction
	for tick := 1; tick <= 11; tick++ {
		updateEnemyAI(enemy)
		if e.Direction != last {
			reversals = append(reversals, tick)
			last = e.Direction
		}
	}

	assert.Equal(t, []int{1, 11}, reversals)
	assert.Equal(t, e.Speed*e.Direction, components.Body.Get(enemy).VX)
}

func TestUpdateEnemyAI_KeepsWalkingOnWidePlatform(t *testing.T) {
	w := newTestWorld(t)
	w.platform(0, 400, 400, 32)
	enemy := newGroundedEnemy(w, 200)

	for range 30 {
		updateEnemyAI(enemy)
	}

	assert.Equal(t, cfg.DirectionRight, components.Enemy.Get(enemy).Direction)
	assert.Equal(t, cfg.Enemy.Speed, components.Body.Get(enemy).VX)
}

func TestUpdateEnemyAI_ReversesWhenBlockedOrStuck(t *testing.T) {
	t.Run("blocked", func(t *testing.T) {
		w := newTestWorld(t)
		w.platform(0, 400, 400, 32)
		enemy := newGroundedEnemy(w, 200)
		components.Body.Get(enemy).Blocked.Right = true

		updateEnemyAI(enemy)

		assert.Equal(t, cfg.DirectionLeft, components.Enemy.Get(enemy).Direction)
		assert.Equal(t, -cfg.Enemy.Speed, components.Body.Get(enemy).VX)
	})

	t.Run("stuck", func(t *testing.T) {
		w := newTestWorld(t)
		w.platform(0, 400, 400, 32)
		enemy := newGroundedEnemy(w, 200)
		components.Body.Get(enemy).VX = 0

		updateEnemyAI(enemy)

		assert.Equal(t, cfg.DirectionLeft, components.Enemy.Get(enemy).Direction)
		assert.Equal(t, cfg.Enemy.TurnCooldownTicks, components.Enemy.Get(enemy).TurnCooldown)
	})

	t.Run("airborne enemy ignores ledges", func(t *testing.T) {
		w := newTestWorld(t)
		enemy := factory.CreateEnemy(w.ecs, 200, 200)

		updateEnemyAI(enemy)

		assert.Equal(t, cfg.DirectionRight, components.Enemy.Get(enemy).Direction)
	})
}

func TestUpdateEnemies_PatrolStaysOnPlatform(t *testing.T) {
	w := newTestWorld(t)
	w.platform(100, 400, 200, 32)
	enemy := newGroundedEnemy(w, 200)

	w.run(600, UpdateEnemies, UpdatePhysics)

	obj := components.Object.Get(enemy)
	assert.InDelta(t, 400, obj.Y+obj.H, 1e-6)
	assert.GreaterOrEqual(t, obj.CenterX(), 100.0)
	assert.LessOrEqual(t, obj.CenterX(), 300.0)
}

func TestStompEnemy_RemovedAfterDefeat(t *testing.T) {
	w := newTestWorld(t)
	enemy := factory.CreateEnemy(w.ecs, 200, 200)

	StompEnemy(w.ctx, w.ecs, enemy)
	assert.Equal(t, cfg.StateDefeated, components.State.Get(enemy).CurrentState)

	ticks := int(cfg.Enemy.DefeatDuration/testStep) + 2
	w.run(ticks, UpdateDefeats)

	assert.False(t, enemy.Valid())
	assert.Zero(t, count(w.ecs.World, components.Enemy))
}
