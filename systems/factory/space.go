package factory

import (
	"github.com/automoto/megagolem/archetypes"
	"github.com/automoto/megagolem/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// attach gives the entry its collision object, adds it to the space and
// records the owner so collisions can find the entity again.
func attach(ecs *ecs.ECS, entry *donburi.Entry, obj *resolv.Object) {
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	components.Register(ecs.World, obj, entry.Entity())
}

// newBox returns an object of size w x h centred on (x, y).
func newBox(x, y, w, h float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	return obj
}
