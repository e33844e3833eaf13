package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Platform   = donburi.NewTag().SetName("Platform")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Boss       = donburi.NewTag().SetName("Boss")
	Coin       = donburi.NewTag().SetName("Coin")
	HealthItem = donburi.NewTag().SetName("HealthItem")
	Goal       = donburi.NewTag().SetName("Goal")
	Projectile = donburi.NewTag().SetName("Projectile")
	Effect     = donburi.NewTag().SetName("Effect")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvBoss       = "Boss"
	ResolvPickup     = "pickup"
	ResolvGoal       = "goal"
	ResolvProjectile = "projectile"
)
