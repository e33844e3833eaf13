package systems

import (
	"math"

	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates gravity and velocity for every enabled body and
// resolves contacts. Behaviour systems run before it and read the contact
// flags it leaves behind on the next tick.
func UpdatePhysics(ctx *Context, ecs *ecs.ECS) {
	dt := ctx.dt()
	bounds := worldBounds(ecs)

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if !body.Enabled {
			return
		}
		obj := components.Object.Get(e)

		if body.AllowGravity {
			body.VY = math.Min(body.VY+cfg.Physics.Gravity*dt, cfg.Physics.MaxFallSpeed)
		}

		body.ClearContacts()
		moveBody(body, obj, body.VX*dt, body.VY*dt)

		if body.CollideWorldBounds {
			clampToWorld(body, obj, bounds)
		}
		obj.Update()
	})
}

type rect struct {
	W, H float64
}

func worldBounds(ecs *ecs.ECS) rect {
	if entry, ok := components.Level.First(ecs.World); ok {
		if level := components.Level.Get(entry).CurrentLevel; level != nil {
			return rect{W: float64(level.Width), H: float64(level.Height)}
		}
	}
	return rect{W: float64(cfg.C.Width), H: float64(cfg.C.Height)}
}

// clampToWorld keeps the body inside the left, right and top edges. The
// bottom stays open so bodies can fall into pits.
func clampToWorld(body *components.BodyData, obj *components.ObjectData, bounds rect) {
	if obj.X < 0 {
		obj.X = 0
		body.Blocked.Left = true
		if body.VX < 0 {
			body.VX = 0
		}
	} else if obj.X+obj.W > bounds.W {
		obj.X = bounds.W - obj.W
		body.Blocked.Right = true
		if body.VX > 0 {
			body.VX = 0
		}
	}
	if obj.Y < 0 {
		obj.Y = 0
		body.Blocked.Up = true
		if body.VY < 0 {
			body.VY = 0
		}
	}
}
