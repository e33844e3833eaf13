package systems

import (
	"math"

	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates derives the visible player state from its body and ticks
// every state timer. Enemies and the boss set their own states.
func UpdateStates(ecs *ecs.ECS) {
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		body := components.Body.Get(e)
		state := components.State.Get(e)
		state.Set(playerState(player, body))
	})

	components.State.Each(ecs.World, func(e *donburi.Entry) {
		components.State.Get(e).StateTimer++
	})
}

func playerState(player *components.PlayerData, body *components.BodyData) cfg.StateID {
	switch {
	case !player.Alive:
		return cfg.Die
	case player.WallSliding:
		return cfg.WallSlide
	case !body.OnGround() && body.VY < 0:
		return cfg.Jump
	case !body.OnGround():
		return cfg.Fall
	case math.Abs(body.VX) > 0:
		return cfg.Running
	}
	return cfg.Idle
}
