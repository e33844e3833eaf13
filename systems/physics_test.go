package systems

import (
	"testing"

	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/ecs"
)

// walk keeps a constant horizontal velocity, as a behaviour system would.
func walk(body *components.BodyData, vx float64) func(*Context, *ecs.ECS) {
	return func(*Context, *ecs.ECS) {
		body.VX = vx
	}
}

func TestUpdatePhysics_GravityIsCapped(t *testing.T) {
	w := newTestWorld(t)
	player := factory.CreatePlayer(w.ecs, 100, 100)
	body := components.Body.Get(player)
	body.CollideWorldBounds = false
	body.VY = cfg.Physics.MaxFallSpeed - 1

	w.run(1, UpdatePhysics)

	assert.Equal(t, cfg.Physics.MaxFallSpeed, body.VY)
}

func TestUpdatePhysics_WallContact(t *testing.T) {
	w := newTestWorld(t)
	w.platform(200, 300, 32, 200)
	enemy := factory.CreateEnemy(w.ecs, 180, 400)
	body := components.Body.Get(enemy)
	body.AllowGravity = false

	w.run(10, walk(body, cfg.Enemy.Speed), UpdatePhysics)

	obj := components.Object.Get(enemy)
	assert.InDelta(t, 200, obj.X+obj.W, 1e-6)
	assert.True(t, body.Touching.Right)
	assert.True(t, body.Blocked.Right)
}

func TestUpdatePhysics_WorldBoundsOnlyBlock(t *testing.T) {
	w := newTestWorld(t)
	enemy := factory.CreateEnemy(w.ecs, 20, 100)
	body := components.Body.Get(enemy)
	body.AllowGravity = false

	w.run(10, walk(body, -200), UpdatePhysics)

	obj := components.Object.Get(enemy)
	assert.Zero(t, obj.X)
	assert.True(t, body.Blocked.Left)
	assert.False(t, body.Touching.Left, "world edges are not walls")
}

func TestUpdatePhysics_BottomIsOpen(t *testing.T) {
	w := newTestWorld(t)
	enemy := factory.CreateEnemy(w.ecs, 100, 580)

	w.run(30, UpdatePhysics)

	obj := components.Object.Get(enemy)
	assert.Greater(t, obj.Y, float64(cfg.C.Height))
	assert.False(t, components.Body.Get(enemy).Blocked.Down)
}

func TestUpdatePhysics_DisabledBodyDoesNotMove(t *testing.T) {
	w := newTestWorld(t)
	enemy := factory.CreateEnemy(w.ecs, 100, 100)
	components.Body.Get(enemy).Enabled = false

	w.run(10, UpdatePhysics)

	obj := components.Object.Get(enemy)
	assert.Equal(t, 100.0, obj.CenterX())
	assert.Equal(t, 100.0, obj.CenterY())
}

func TestUpdatePhysics_ProjectilePassesThroughPlatforms(t *testing.T) {
	w := newTestWorld(t)
	w.platform(200, 300, 32, 200)
	proj := factory.CreateProjectile(w.ecs, 150, 400, cfg.DirectionRight)

	w.run(30, UpdatePhysics)

	obj := components.Object.Get(proj)
	assert.Greater(t, obj.X, 232.0)
	assert.Equal(t, 400.0, obj.CenterY())
}

func TestUpdatePhysics_HeadBump(t *testing.T) {
	w := newTestWorld(t)
	w.platform(0, 300, 400, 32)
	player := factory.CreatePlayer(w.ecs, 100, 360)
	body := components.Body.Get(player)
	body.VY = cfg.Player.NormalJumpVelocity

	w.run(2, UpdatePhysics)

	assert.InDelta(t, 332, components.Object.Get(player).Y, 1e-6)
	assert.True(t, body.Touching.Up)
}
