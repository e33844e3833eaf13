package systems

import "github.com/yohamta/donburi/ecs"

// AddGameplaySystems registers the per-tick gameplay systems in order.
// Input must already be polled for the frame.
func AddGameplaySystems(e *ecs.ECS, ctx *Context) {
	e.AddSystem(UpdatePause)
	e.AddSystem(WithPauseCheck(ctx.Bind(Tick)))

	// Behaviour reads last tick's contacts, physics then produces new ones
	e.AddSystem(WithGameplayChecks(ctx.Bind(UpdatePlayer)))
	e.AddSystem(WithGameplayChecks(ctx.Bind(UpdateEnemies)))
	e.AddSystem(WithGameplayChecks(ctx.Bind(UpdateBoss)))
	e.AddSystem(WithGameplayChecks(ctx.Bind(UpdatePhysics)))
	e.AddSystem(WithGameplayChecks(UpdateObjects))
	e.AddSystem(WithGameplayChecks(ctx.Bind(UpdateCombat)))
	e.AddSystem(WithGameplayChecks(ctx.Bind(UpdateProjectiles)))
	e.AddSystem(WithGameplayChecks(ctx.Bind(UpdatePickups)))
	e.AddSystem(WithGameplayChecks(ctx.Bind(UpdateGoal)))
	e.AddSystem(WithGameplayChecks(ctx.Bind(UpdateDefeats)))
	e.AddSystem(WithGameplayChecks(UpdateStates))

	// Banner, effects and camera keep running after the goal
	e.AddSystem(WithPauseCheck(ctx.Bind(UpdateLevelComplete)))
	e.AddSystem(WithPauseCheck(ctx.Bind(UpdateEffects)))
	e.AddSystem(WithPauseCheck(UpdateCamera))
}
