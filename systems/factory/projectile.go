package factory

import (
	"github.com/automoto/megagolem/archetypes"
	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/tags"
	"github.com/automoto/megagolem/timing"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a boss projectile centred on (x, y) flying
// horizontally in direction. It passes through platforms.
func CreateProjectile(ecs *ecs.ECS, x, y, direction float64) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	size := cfg.Boss.ProjectileSize
	attach(ecs, p, newBox(x, y, size, size, tags.ResolvProjectile))

	components.Body.SetValue(p, components.BodyData{
		VX:      cfg.Boss.ProjectileSpeed * direction,
		Enabled: true,
	})
	components.Projectile.SetValue(p, components.ProjectileData{
		Lifetime: timing.Countdown(cfg.Boss.ProjectileLifetime),
	})

	return p
}
