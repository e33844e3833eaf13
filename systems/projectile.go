package systems

import (
	"github.com/automoto/megagolem/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles expires projectiles after their lifetime.
func UpdateProjectiles(ctx *Context, ecs *ecs.ECS) {
	var expired []*donburi.Entry

	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		if p.Consumed || p.Lifetime.Advance(ctx.Clock.Delta()) {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		RemoveEntity(ecs, e)
	}
}

// HitByProjectile damages the player and consumes the projectile, even when
// the player is invincible.
func HitByProjectile(ctx *Context, ecs *ecs.ECS, projectileEntry, playerEntry *donburi.Entry) {
	p := components.Projectile.Get(projectileEntry)
	if p.Consumed {
		return
	}
	p.Consumed = true
	DamagePlayer(ctx, playerEntry)
	RemoveEntity(ecs, projectileEntry)
}
