package systems

import (
	"fmt"

	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/feedback"
	"github.com/automoto/megagolem/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// IsStomp reports whether a contact counts as a stomp: the player is falling
// faster than minFallSpeed and its feet are above the target's centre.
func IsStomp(playerBottom, playerVY, targetCenterY, minFallSpeed float64) bool {
	return playerVY > minFallSpeed && playerBottom < targetCenterY
}

// CombatTarget is anything the player can stomp or be hurt by.
type CombatTarget interface {
	Alive() bool
	CenterY() float64
	OnStomp(ctx *Context, ecs *ecs.ECS, playerEntry *donburi.Entry)
	OnSideHit(ctx *Context, ecs *ecs.ECS, playerEntry *donburi.Entry)
}

// ResolveContact classifies one player overlap and applies its outcome.
func ResolveContact(ctx *Context, ecs *ecs.ECS, playerEntry *donburi.Entry, target CombatTarget) {
	if !target.Alive() || !components.Player.Get(playerEntry).Alive {
		return
	}
	obj := components.Object.Get(playerEntry)
	body := components.Body.Get(playerEntry)

	if IsStomp(obj.Y+obj.H, body.VY, target.CenterY(), cfg.Combat.StompMinFallSpeed) {
		target.OnStomp(ctx, ecs, playerEntry)
		return
	}
	target.OnSideHit(ctx, ecs, playerEntry)
}

type enemyTarget struct {
	entry *donburi.Entry
}

func (t enemyTarget) Alive() bool      { return components.Enemy.Get(t.entry).Alive }
func (t enemyTarget) CenterY() float64 { return components.Object.Get(t.entry).CenterY() }

func (t enemyTarget) OnStomp(ctx *Context, ecs *ecs.ECS, playerEntry *donburi.Entry) {
	bouncePlayer(playerEntry, t.entry, cfg.Enemy.StompBounce)
	StompEnemy(ctx, ecs, t.entry)
}

func (t enemyTarget) OnSideHit(ctx *Context, _ *ecs.ECS, playerEntry *donburi.Entry) {
	DamagePlayer(ctx, playerEntry)
}

type bossTarget struct {
	entry *donburi.Entry
}

func (t bossTarget) Alive() bool      { return components.Boss.Get(t.entry).Alive }
func (t bossTarget) CenterY() float64 { return components.Object.Get(t.entry).CenterY() }

// OnStomp always bounces the player. Damage only lands while the boss is
// vulnerable.
func (t bossTarget) OnStomp(ctx *Context, ecs *ecs.ECS, playerEntry *donburi.Entry) {
	bouncePlayer(playerEntry, t.entry, cfg.Boss.StompBounce)

	obj := components.Object.Get(t.entry)
	x, y := obj.CenterX(), obj.CenterY()-60
	if components.Boss.Get(t.entry).Invulnerable {
		ctx.Sink.PlaySound(cfg.SoundBossInvulnerable)
		ctx.Sink.FloatingText(x, y, "INVULNERABLE!", feedback.StyleShield)
		return
	}
	DamageBoss(ctx, ecs, t.entry)
	ctx.Sink.FloatingText(x, y, "HIT!", feedback.StyleScore)
}

func (t bossTarget) OnSideHit(ctx *Context, _ *ecs.ECS, playerEntry *donburi.Entry) {
	obj := components.Object.Get(playerEntry)
	ctx.Sink.FloatingText(obj.CenterX(), obj.CenterY()-50, "SIDE HIT!", feedback.StyleDanger)
	DamagePlayer(ctx, playerEntry)
}

// targetFor wraps entries that take part in stomp combat.
func targetFor(e *donburi.Entry) (CombatTarget, bool) {
	switch {
	case e.HasComponent(components.Enemy):
		return enemyTarget{entry: e}, true
	case e.HasComponent(components.Boss):
		return bossTarget{entry: e}, true
	}
	return nil, false
}

// bouncePlayer launches the player upward and lifts it clear of the target
// so the same overlap is not resolved twice.
func bouncePlayer(playerEntry, targetEntry *donburi.Entry, velocity float64) {
	components.Body.Get(playerEntry).VY = velocity

	obj := components.Object.Get(playerEntry)
	target := components.Object.Get(targetEntry)
	obj.Y = target.Y - obj.H
	obj.Update()
}

// UpdateCombat resolves every overlap between the player and enemies, the
// boss, pickups, projectiles and the goal. A dead player touches nothing.
func UpdateCombat(ctx *Context, ecs *ecs.ECS) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok || !components.Player.Get(playerEntry).Alive {
		return
	}
	playerObj := components.Object.Get(playerEntry)

	check := playerObj.Check(0, 0,
		tags.ResolvEnemy, tags.ResolvBoss, tags.ResolvPickup, tags.ResolvProjectile, tags.ResolvGoal)
	if check == nil {
		return
	}

	for _, other := range check.Objects {
		if !components.Player.Get(playerEntry).Alive {
			return
		}
		if !playerObj.Overlaps(other) {
			continue
		}
		owner, ok := components.Owner(ecs.World, other)
		if !ok {
			continue
		}

		if target, ok := targetFor(owner); ok {
			ResolveContact(ctx, ecs, playerEntry, target)
			continue
		}
		switch {
		case owner.HasComponent(components.Pickup):
			CollectPickup(ctx, owner)
		case owner.HasComponent(components.Projectile):
			HitByProjectile(ctx, ecs, owner, playerEntry)
		case owner.HasComponent(components.Goal):
			ReachGoal(ctx, ecs, owner)
		}
	}
}

func scoreText(points int) string {
	return fmt.Sprintf("+%d", points)
}
