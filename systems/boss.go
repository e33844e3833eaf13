package systems

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/feedback"
	"github.com/automoto/megagolem/systems/factory"
	"github.com/automoto/megagolem/tags"
	"github.com/automoto/megagolem/timing"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateBoss(ctx *Context, ecs *ecs.ECS) {
	playerEntry, _ := components.Player.First(ecs.World)

	tags.Boss.Each(ecs.World, func(e *donburi.Entry) {
		updateBossAI(ctx, ecs, e, playerEntry)
	})
}

func updateBossAI(ctx *Context, ecs *ecs.ECS, bossEntry, playerEntry *donburi.Entry) {
	boss := components.Boss.Get(bossEntry)
	if !boss.Alive {
		return
	}
	body := components.Body.Get(bossEntry)
	obj := components.Object.Get(bossEntry)
	dt := ctx.Clock.Delta()

	boss.MovementTimer += dt
	updateVulnerability(ctx, boss, obj, dt)

	if boss.TurnCooldown > 0 {
		boss.TurnCooldown--
	}

	updatePhase(boss)
	updateBossBehavior(ctx, boss, body)

	if body.Blocked.Side() && boss.TurnCooldown == 0 {
		// Velocity follows next tick from the behaviour
		boss.Direction = -boss.Direction
		boss.TurnCooldown = cfg.Boss.TurnCooldownTicks
	}
	if math.Abs(body.VX) < cfg.Boss.StuckSpeed && boss.Action == cfg.BossWalking && boss.TurnCooldown == 0 {
		boss.Direction = -boss.Direction
		body.VX = boss.Speed * boss.Direction
		boss.TurnCooldown = cfg.Boss.TurnCooldownTicks
	}

	if now := ctx.Clock.Now(); now-boss.LastAttack > boss.AttackCooldown {
		performBossAttack(ctx, ecs, boss, body, obj, playerEntry)
		boss.LastAttack = now
	}

	components.State.Get(bossEntry).Set(boss.Action)
}

// PhaseFor maps remaining health to a phase in 1..3. Phase 2 starts below
// Phase2Fraction of max health, phase 3 below Phase3Fraction.
func PhaseFor(health, maxHealth int) int {
	if maxHealth <= 0 {
		return 1
	}
	fraction := float64(health) / float64(maxHealth)
	switch {
	case fraction < cfg.Boss.Phase3Fraction:
		return 3
	case fraction < cfg.Boss.Phase2Fraction:
		return 2
	}
	return 1
}

// updatePhase only ever raises the phase.
func updatePhase(boss *components.BossData) {
	if phase := PhaseFor(boss.Health, boss.MaxHealth); phase > boss.Phase {
		log.Printf("boss phase %d -> %d (health %d/%d)", boss.Phase, phase, boss.Health, boss.MaxHealth)
		boss.Phase = phase
	}
	if len(cfg.Boss.Phases) == 0 {
		return
	}
	tuning := cfg.Boss.Phases[min(boss.Phase, len(cfg.Boss.Phases))-1]
	boss.Speed = tuning.Speed
	boss.AttackCooldown = tuning.AttackCooldown
}

// VulnerableAt reports whether the boss can be hurt at the given point of
// its vulnerability cycle. The vulnerable segment comes first.
func VulnerableAt(cycle time.Duration) bool {
	period := cfg.Boss.VulnerableDuration + cfg.Boss.InvulnerableDuration
	if period <= 0 {
		return true
	}
	return cycle%period < cfg.Boss.VulnerableDuration
}

// updateVulnerability runs the post-hit window, or the cycle when no window
// is open. Notifications fire only on transitions.
func updateVulnerability(ctx *Context, boss *components.BossData, obj *components.ObjectData, dt time.Duration) {
	x, y := obj.CenterX(), obj.CenterY()-80

	if boss.ManualInvuln.Active() {
		if boss.ManualInvuln.Advance(dt) {
			boss.InCycle = true
			boss.CycleClock = 0
			boss.Invulnerable = false
			ctx.Sink.FloatingText(x, y, "CYCLE RESUMED!", feedback.StyleScore)
		}
		return
	}
	if !boss.InCycle {
		return
	}

	boss.CycleClock += dt
	invulnerable := !VulnerableAt(boss.CycleClock)
	if invulnerable == boss.Invulnerable {
		return
	}
	boss.Invulnerable = invulnerable
	if invulnerable {
		ctx.Sink.FloatingText(x, y, "WAIT!", feedback.StyleWait)
	} else {
		ctx.Sink.FloatingText(x, y, "ATTACK NOW!", feedback.StyleAttack)
	}
}

func updateBossBehavior(ctx *Context, boss *components.BossData, body *components.BodyData) {
	switch boss.Action {
	case cfg.BossWalking:
		body.VX = boss.Speed * boss.Direction
		if body.OnGround() && ctx.Rand.Float64() < cfg.Boss.JumpChance {
			body.VY = cfg.Boss.JumpVelocity
			boss.Action = cfg.BossJumping
		}
		if boss.MovementTimer > cfg.Boss.ChargeAfter && ctx.Rand.Float64() < cfg.Boss.ChargeChance {
			boss.Action = cfg.BossCharging
			boss.MovementTimer = 0
		}
	case cfg.BossJumping:
		body.VX = boss.Speed * boss.Direction
		if body.OnGround() {
			boss.Action = cfg.BossWalking
		}
	case cfg.BossCharging:
		body.VX = boss.Speed * cfg.Boss.ChargeMultiplier * boss.Direction
		if boss.MovementTimer > cfg.Boss.ChargeDuration {
			boss.Action = cfg.BossWalking
			boss.MovementTimer = 0
		}
	}
}

// performBossAttack fires a projectile from phase 2 and adds a ground pound
// from phase 3 when grounded.
func performBossAttack(ctx *Context, ecs *ecs.ECS, boss *components.BossData, body *components.BodyData, obj *components.ObjectData, playerEntry *donburi.Entry) {
	if boss.Phase >= 2 {
		factory.CreateProjectile(ecs, obj.CenterX(), obj.CenterY(), boss.Direction)
	}
	if boss.Phase >= 3 && body.OnGround() {
		groundPound(ctx, obj, playerEntry)
	}
}

func groundPound(ctx *Context, obj *components.ObjectData, playerEntry *donburi.Entry) {
	ctx.Sink.Particles(obj.CenterX(), obj.Y+obj.H, feedback.Shockwave)

	if playerEntry == nil || !playerEntry.Valid() {
		return
	}
	playerObj := components.Object.Get(playerEntry)
	distance := math.Hypot(playerObj.CenterX()-obj.CenterX(), playerObj.CenterY()-obj.CenterY())
	if distance < cfg.Boss.GroundPoundRadius && components.Body.Get(playerEntry).OnGround() {
		DamagePlayer(ctx, playerEntry)
	}
}

// DamageBoss takes one health point while the boss is vulnerable, then opens
// the post-hit window. The first time health drops to HealthDropFraction a
// health item is dropped. Zero health defeats the boss.
func DamageBoss(ctx *Context, ecs *ecs.ECS, bossEntry *donburi.Entry) {
	boss := components.Boss.Get(bossEntry)
	if boss.Invulnerable || !boss.Alive {
		return
	}
	obj := components.Object.Get(bossEntry)

	boss.Health--
	ctx.Sink.PlaySound(cfg.SoundBossHit)
	ctx.Sink.FloatingText(obj.CenterX(), obj.CenterY()-50, "-1", feedback.StyleHit)

	if !boss.HasDroppedHealthItem && boss.HealthFraction() <= cfg.Boss.HealthDropFraction {
		boss.HasDroppedHealthItem = true
		dropHealthItem(ctx, ecs, obj)
	}

	boss.InCycle = false
	boss.Invulnerable = true
	boss.ManualInvuln = timing.Countdown(cfg.Boss.HitInvulnDuration)
	ctx.Sink.FloatingText(obj.CenterX(), obj.CenterY()-80, "HIT! INVULNERABLE!", feedback.StyleShield)

	if boss.Health <= 0 {
		DefeatBoss(ctx, ecs, bossEntry)
	}
}

func dropHealthItem(ctx *Context, ecs *ecs.ECS, obj *components.ObjectData) {
	x := obj.CenterX() + (ctx.Rand.Float64()-0.5)*cfg.Boss.HealthDropSpread
	y := obj.CenterY() - cfg.Boss.HealthDropRise
	factory.CreateHealthItem(ecs, x, y)
	ctx.Sink.FloatingText(obj.CenterX(), obj.CenterY()-100, "HEALTH ITEM!", feedback.StyleHeal)
}

// DefeatBoss stops the boss and awards DefeatScore. The goal is revealed
// after the defeat animation. Repeated calls do nothing.
func DefeatBoss(ctx *Context, ecs *ecs.ECS, bossEntry *donburi.Entry) {
	boss := components.Boss.Get(bossEntry)
	if !boss.Alive {
		return
	}
	boss.Alive = false
	boss.Action = cfg.BossDefeated

	body := components.Body.Get(bossEntry)
	body.VX, body.VY = 0, 0
	body.Enabled = false

	ctx.Session.AddScore(cfg.Boss.DefeatScore)

	obj := components.Object.Get(bossEntry)
	ctx.Sink.PlaySound(cfg.SoundBossDefeat)
	ctx.Sink.Particles(obj.CenterX(), obj.CenterY(), feedback.Explosion)
	ctx.Sink.FloatingText(float64(cfg.C.Width)/2, float64(cfg.C.Height)/2,
		fmt.Sprintf("BOSS DEFEATED! +%d POINTS!", cfg.Boss.DefeatScore), feedback.StyleBanner)

	components.State.Get(bossEntry).Set(cfg.BossDefeated)
	StartDefeat(ecs, bossEntry, cfg.Boss.DefeatDuration, true)
}
