package systems

import (
	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/feedback"
	"github.com/automoto/megagolem/session"
	"github.com/automoto/megagolem/timing"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ReachGoal completes the level once. With levels left the level complete
// banner starts, otherwise the run is won.
func ReachGoal(ctx *Context, ecs *ecs.ECS, goalEntry *donburi.Entry) {
	goal := components.Goal.Get(goalEntry)
	if !goal.Enabled || goal.Reached {
		return
	}
	goal.Reached = true

	if err := ctx.Session.AdvanceLevel(); err != nil {
		ctx.Sink.PlaySound(cfg.SoundGoal)
		ctx.Session.Finish(session.Won)
		return
	}

	ctx.Sink.PlaySound(cfg.SoundLevelComplete)
	ctx.Sink.FloatingText(float64(cfg.C.Width)/2, float64(cfg.C.Height)/2, "Level Complete!", feedback.StyleBanner)

	lc := GetOrCreateLevelComplete(ecs)
	lc.IsComplete = true
	lc.Timer = timing.Countdown(cfg.Goal.LevelCompleteDelay)
}

// RevealGoal schedules every disabled goal to appear after delay.
func RevealGoal(ecs *ecs.ECS, delay timing.Countdown) {
	components.Goal.Each(ecs.World, func(e *donburi.Entry) {
		goal := components.Goal.Get(e)
		if !goal.Enabled {
			goal.RevealTimer = delay
		}
	})
}

// UpdateGoal runs the pulse and pending reveals.
func UpdateGoal(ctx *Context, ecs *ecs.ECS) {
	dt := ctx.dt()

	components.Goal.Each(ecs.World, func(e *donburi.Entry) {
		goal := components.Goal.Get(e)

		if goal.RevealTimer.Advance(ctx.Clock.Delta()) {
			goal.Enabled = true
			ctx.Sink.FloatingText(float64(cfg.C.Width)/2, 100, "Reach the Goal!", feedback.StyleBanner)
		}
		if !goal.Enabled || goal.Pulse == nil {
			return
		}
		scale, _, finished := goal.Pulse.Update(float32(dt))
		if finished {
			goal.Pulse.Reset()
		}
		goal.Scale = float64(scale)
	})
}
