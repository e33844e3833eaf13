package systems

import (
	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateInput returns the singleton Input component, creating if needed.
// The device layer fills Current each frame before the gameplay systems run.
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	return input.Action(id)
}

// PressActions sets the given actions as held for this frame. Replays and
// tests drive the game through it instead of a keyboard.
func PressActions(input *components.InputData, ids ...cfg.ActionID) {
	input.Advance()
	for _, id := range ids {
		input.Current[id] = true
	}
}
