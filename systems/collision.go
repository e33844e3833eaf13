package systems

import (
	"math"

	"github.com/automoto/megagolem/components"
	"github.com/automoto/megagolem/tags"
	"github.com/solarlune/resolv"
)

// moveBody moves obj by (dx, dy), one axis at a time, stopping at solids.
func moveBody(body *components.BodyData, obj *components.ObjectData, dx, dy float64) {
	if !body.CollidePlatforms {
		obj.X += dx
		obj.Y += dy
		return
	}
	resolveHorizontal(body, obj, dx)
	resolveVertical(body, obj, dy)
}

func resolveHorizontal(body *components.BodyData, obj *components.ObjectData, dx float64) {
	if dx == 0 {
		return
	}

	check := obj.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		obj.X += dx
		return
	}

	solid := nearestSolid(obj.Object, check, dx, 0)
	if solid == nil {
		obj.X += dx
		return
	}

	obj.X += check.ContactWithObject(solid).X()
	body.VX = 0
	if dx < 0 {
		body.Touching.Left = true
		body.Blocked.Left = true
	} else {
		body.Touching.Right = true
		body.Blocked.Right = true
	}
}

func resolveVertical(body *components.BodyData, obj *components.ObjectData, dy float64) {
	if dy == 0 {
		return
	}

	check := obj.Check(0, dy, tags.ResolvSolid)
	if check == nil {
		obj.Y += dy
		return
	}

	solid := nearestSolid(obj.Object, check, 0, dy)
	if solid == nil {
		obj.Y += dy
		return
	}

	obj.Y += check.ContactWithObject(solid).Y()
	body.VY = 0
	if dy < 0 {
		body.Touching.Up = true
		body.Blocked.Up = true
	} else {
		body.Touching.Down = true
		body.Blocked.Down = true
	}
}

// nearestSolid returns the closest solid the object would hit moving by
// (dx, dy). resolv reports everything in the cells the move touches, so
// candidates are filtered by their actual extent first.
func nearestSolid(obj *resolv.Object, check *resolv.Collision, dx, dy float64) *resolv.Object {
	var nearest *resolv.Object
	best := math.Inf(1)

	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		var gap float64
		switch {
		case dx > 0:
			gap = solid.X - (obj.X + obj.W)
		case dx < 0:
			gap = obj.X - (solid.X + solid.W)
		case dy > 0:
			gap = solid.Y - (obj.Y + obj.H)
		default:
			gap = obj.Y - (solid.Y + solid.H)
		}

		// Behind the mover, or beyond the move
		if gap < -epsilon || gap > math.Abs(dx+dy) {
			continue
		}
		if dx != 0 && !spans(obj.Y, obj.H, solid.Y, solid.H) {
			continue
		}
		if dy != 0 && !spans(obj.X, obj.W, solid.X, solid.W) {
			continue
		}
		if gap < best {
			best = gap
			nearest = solid
		}
	}

	return nearest
}

const epsilon = 0.01

// spans reports whether two 1D ranges overlap by more than epsilon.
func spans(a, aLen, b, bLen float64) bool {
	return a+aLen > b+epsilon && b+bLen > a+epsilon
}

// overlaps is an exact AABB test between two objects.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
