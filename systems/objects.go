package systems

import (
	"github.com/automoto/megagolem/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-buckets every moved object in the resolv space.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Update()
		}
	}
}
