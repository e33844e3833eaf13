package factory

import (
	"github.com/automoto/megagolem/archetypes"
	"github.com/automoto/megagolem/leveldata"
	"github.com/automoto/megagolem/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlatform(ecs *ecs.ECS, r leveldata.Rect) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	attach(ecs, platform, obj)

	return platform
}
