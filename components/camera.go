package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the centre of the view in world coordinates.
type CameraData struct {
	Position   math.Vec2
	Shake      math.Vec2 // added to Position while a shake runs
	LookAheadX float64   // Current smoothed X offset for look-ahead
}

// View returns the shaken camera centre.
func (c *CameraData) View() math.Vec2 {
	return c.Position.Add(c.Shake)
}

var Camera = donburi.NewComponentType[CameraData]()
