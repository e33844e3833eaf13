package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// RegistryData maps collision objects back to the entities that own them.
// It is a world singleton.
type RegistryData struct {
	Owners map[*resolv.Object]donburi.Entity
}

var Registry = donburi.NewComponentType[RegistryData]()

func registryOf(w donburi.World) *RegistryData {
	entry, ok := Registry.First(w)
	if !ok {
		entry = w.Entry(w.Create(Registry))
		Registry.SetValue(entry, RegistryData{Owners: make(map[*resolv.Object]donburi.Entity)})
	}
	return Registry.Get(entry)
}

// Register records that obj belongs to entity.
func Register(w donburi.World, obj *resolv.Object, entity donburi.Entity) {
	registryOf(w).Owners[obj] = entity
}

func Unregister(w donburi.World, obj *resolv.Object) {
	delete(registryOf(w).Owners, obj)
}

// Owner returns the live entry that owns obj.
func Owner(w donburi.World, obj *resolv.Object) (*donburi.Entry, bool) {
	entity, ok := registryOf(w).Owners[obj]
	if !ok || !w.Valid(entity) {
		return nil, false
	}
	return w.Entry(entity), true
}
