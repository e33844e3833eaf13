package factory

import (
	"github.com/automoto/megagolem/archetypes"
	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGoal spawns the level exit centred on (x, y). Boss levels start it disabled.
func CreateGoal(ecs *ecs.ECS, x, y float64, enabled bool) *donburi.Entry {
	goal := archetypes.Goal.Spawn(ecs)
	attach(ecs, goal, newBox(x, y, cfg.Goal.Width, cfg.Goal.Height, tags.ResolvGoal))

	components.Goal.SetValue(goal, components.GoalData{
		Enabled: enabled,
		Pulse: gween.NewSequence(
			gween.New(1, 1.1, 0.8, ease.InOutSine),
			gween.New(1.1, 1, 0.8, ease.InOutSine),
		),
		Scale: 1,
	})

	return goal
}
