package factory

import (
	"github.com/automoto/megagolem/archetypes"
	"github.com/automoto/megagolem/components"
	"github.com/automoto/megagolem/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, number int, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		CurrentLevel: level,
		Number:       number,
	})
	return entry
}

// BuildLevel creates the space, the camera and every entity the level
// describes and returns the player. The goal starts disabled when the level has a boss.
func BuildLevel(ecs *ecs.ECS, number int, level *leveldata.Level, cellSize int) *donburi.Entry {
	CreateLevel(ecs, number, level)
	CreateSpace(ecs, level.Width, level.Height, cellSize, cellSize)

	for _, r := range level.Platforms {
		CreatePlatform(ecs, r)
	}
	for _, p := range level.Coins {
		CreateCoin(ecs, p.X, p.Y)
	}
	for _, p := range level.Enemies {
		CreateEnemy(ecs, p.X, p.Y)
	}
	if level.Boss != nil {
		CreateBoss(ecs, level.Boss.X, level.Boss.Y)
	}
	if level.Goal != nil {
		CreateGoal(ecs, level.Goal.X, level.Goal.Y, !level.HasBoss())
	}

	CreateCamera(ecs, level.PlayerStart.X, level.PlayerStart.Y)
	return CreatePlayer(ecs, level.PlayerStart.X, level.PlayerStart.Y)
}
