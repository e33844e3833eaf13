package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

func (o *ObjectData) CenterX() float64 { return o.X + o.W/2 }
func (o *ObjectData) CenterY() float64 { return o.Y + o.H/2 }

// SetCenter moves the object so its centre is at (x, y).
func (o *ObjectData) SetCenter(x, y float64) {
	o.X = x - o.W/2
	o.Y = y - o.H/2
}

// Overlaps is an exact AABB test. resolv's Check only narrows candidates to
// shared cells.
func (o *ObjectData) Overlaps(other *resolv.Object) bool {
	return o.X < other.X+other.W && other.X < o.X+o.W &&
		o.Y < other.Y+other.H && other.Y < o.Y+o.H
}

var Object = donburi.NewComponentType[ObjectData]()
