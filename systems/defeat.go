package systems

import (
	"time"

	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/timing"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartDefeat plays the defeat animation on e. The entity is removed when it
// finishes; revealGoal then schedules the level goal.
func StartDefeat(ecs *ecs.ECS, e *donburi.Entry, duration time.Duration, revealGoal bool) {
	if e.HasComponent(components.Defeat) {
		return
	}
	donburi.Add(e, components.Defeat, &components.DefeatData{
		Anim:       gween.New(1, 0, float32(duration.Seconds()), ease.OutQuad),
		Progress:   0,
		RevealGoal: revealGoal,
	})
}

func UpdateDefeats(ctx *Context, ecs *ecs.ECS) {
	dt := float32(ctx.dt())
	var finished []*donburi.Entry

	components.Defeat.Each(ecs.World, func(e *donburi.Entry) {
		defeat := components.Defeat.Get(e)
		v, done := defeat.Anim.Update(dt)
		defeat.Progress = 1 - float64(v)
		if done {
			finished = append(finished, e)
		}
	})

	for _, e := range finished {
		if components.Defeat.Get(e).RevealGoal {
			RevealGoal(ecs, timing.Countdown(cfg.Boss.GoalRevealDelay))
		}
		RemoveEntity(ecs, e)
	}
}

// RemoveEntity drops e from the collision space, the owner registry and the world.
func RemoveEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
		components.Unregister(ecs.World, obj.Object)
	}
	ecs.World.Remove(e.Entity())
}
