package systems

import (
	"math"

	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/feedback"
	"github.com/automoto/megagolem/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateEnemies(ctx *Context, ecs *ecs.ECS) {
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		updateEnemyAI(e)
	})
}

// updateEnemyAI reverses the patrol at walls and ledges, or when the enemy
// has stopped moving. One reversal re-arms the cooldown, so at most one
// fires per tick.
func updateEnemyAI(enemyEntry *donburi.Entry) {
	enemy := components.Enemy.Get(enemyEntry)
	if !enemy.Alive {
		return
	}
	body := components.Body.Get(enemyEntry)
	obj := components.Object.Get(enemyEntry)

	if enemy.TurnCooldown > 0 {
		enemy.TurnCooldown--
	}
	if enemy.TurnCooldown > 0 {
		return
	}

	blocked := body.Blocked.Side()
	atEdge := body.OnGround() && isAtPlatformEdge(obj, enemy.Direction)
	stuck := math.Abs(body.VX) < cfg.Enemy.StuckSpeed
	if blocked || atEdge || stuck {
		reverseEnemy(enemy, body)
	}
}

func reverseEnemy(enemy *components.EnemyData, body *components.BodyData) {
	enemy.Direction = -enemy.Direction
	body.VX = enemy.Speed * enemy.Direction
	enemy.TurnCooldown = cfg.Enemy.TurnCooldownTicks
}

// isAtPlatformEdge probes a small box ahead of and below the feet. No solid
// under the probe means the next step walks off the platform.
func isAtPlatformEdge(obj *components.ObjectData, direction float64) bool {
	r := cfg.Enemy.ProbeRadius
	probe := resolv.NewObject(
		obj.CenterX()+cfg.Enemy.ProbeAhead*direction-r,
		obj.Y+obj.H+cfg.Enemy.ProbeBelow-r,
		2*r, 2*r,
	)

	// Shift the body far enough that its cells cover the probe
	dx := probe.X + probe.W/2 - obj.CenterX()
	dy := probe.Y + probe.H - (obj.Y + obj.H)
	check := obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return true
	}
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if overlaps(probe, solid) {
			return false
		}
	}
	return true
}

// StompEnemy defeats the enemy: the body stops simulating, the score is
// awarded and the defeat animation starts. Repeated calls do nothing.
func StompEnemy(ctx *Context, ecs *ecs.ECS, enemyEntry *donburi.Entry) {
	enemy := components.Enemy.Get(enemyEntry)
	if !enemy.Alive {
		return
	}
	enemy.Alive = false

	body := components.Body.Get(enemyEntry)
	body.VX, body.VY = 0, 0
	body.Enabled = false

	ctx.Session.AddScore(cfg.Enemy.StompScore)

	obj := components.Object.Get(enemyEntry)
	ctx.Sink.PlaySound(cfg.SoundEnemyDefeat)
	ctx.Sink.Particles(obj.CenterX(), obj.CenterY(), feedback.Explosion)
	ctx.Sink.FloatingText(obj.CenterX(), obj.Y-14, scoreText(cfg.Enemy.StompScore), feedback.StyleHit)

	components.State.Get(enemyEntry).Set(cfg.StateDefeated)
	StartDefeat(ecs, enemyEntry, cfg.Enemy.DefeatDuration, false)
}
