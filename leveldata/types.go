// Package leveldata describes level layouts: the built-in tables and TMX
// files made in Tiled. It has no dependencies on ebitengine, donburi, or
// resolv and holds pure data only.
package leveldata

import "errors"

// ErrNoPlayerStart is returned for a level without a player start.
var ErrNoPlayerStart = errors.New("level has no player start")

// Rect is an axis-aligned rectangle given by its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Point is a spawn position. Entities are centred on it.
type Point struct {
	X, Y float64
}

// Level is the read-only description of one level.
type Level struct {
	Name          string
	Width, Height int

	Platforms   []Rect
	Enemies     []Point
	Coins       []Point
	Boss        *Point // nil on levels without a boss
	Goal        *Point
	PlayerStart Point
}

// HasBoss reports whether the level spawns a boss.
func (l *Level) HasBoss() bool {
	return l.Boss != nil
}

// centered converts a rectangle given by its centre to a Rect.
func centered(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}
