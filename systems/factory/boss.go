package factory

import (
	"github.com/automoto/megagolem/archetypes"
	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBoss spawns the boss centred on (x, y) in phase 1.
func CreateBoss(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	boss := archetypes.Boss.Spawn(ecs)

	obj := newBox(x, y, cfg.Boss.CollisionWidth, cfg.Boss.CollisionHeight, tags.ResolvBoss)
	attach(ecs, boss, obj)

	bossData := components.NewBoss(cfg.Boss.MaxHealth, cfg.Boss.Phases[0])
	components.Boss.SetValue(boss, bossData)

	body := components.NewBody()
	body.VX = bossData.Speed * bossData.Direction
	components.Body.SetValue(boss, body)

	components.State.SetValue(boss, components.StateData{
		CurrentState:  cfg.BossWalking,
		PreviousState: cfg.StateNone,
	})

	return boss
}
