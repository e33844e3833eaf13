package factory

import (
	"github.com/automoto/megagolem/archetypes"
	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a patrolling enemy centred on (x, y), already walking right.
func CreateEnemy(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	obj := newBox(x, y, cfg.Enemy.CollisionWidth, cfg.Enemy.CollisionHeight, tags.ResolvEnemy)
	attach(ecs, enemy, obj)

	enemyData := components.EnemyData{
		Alive:     true,
		Direction: cfg.DirectionRight,
		Speed:     cfg.Enemy.Speed,
	}
	components.Enemy.SetValue(enemy, enemyData)

	body := components.NewBody()
	body.VX = enemyData.Speed * enemyData.Direction
	components.Body.SetValue(enemy, body)

	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.StatePatrol,
		PreviousState: cfg.StateNone,
	})

	return enemy
}
