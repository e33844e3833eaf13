package components

import "github.com/yohamta/donburi"

// Contact holds one flag per body edge.
type Contact struct {
	Left, Right, Down, Up bool
}

func (c Contact) Side() bool { return c.Left || c.Right }

// BodyData is the kinematic state the physics step reads and writes.
// Velocities are in px/s. Touching is set by platform contact, Blocked by
// platforms and world bounds.
type BodyData struct {
	VX, VY   float64
	Touching Contact
	Blocked  Contact

	Enabled            bool // false removes the body from simulation
	AllowGravity       bool
	CollideWorldBounds bool
	CollidePlatforms   bool
}

// NewBody returns an enabled body that falls and stays inside the world.
func NewBody() BodyData {
	return BodyData{
		Enabled:            true,
		AllowGravity:       true,
		CollideWorldBounds: true,
		CollidePlatforms:   true,
	}
}

func (b *BodyData) OnGround() bool { return b.Touching.Down }

func (b *BodyData) ClearContacts() {
	b.Touching = Contact{}
	b.Blocked = Contact{}
}

var Body = donburi.NewComponentType[BodyData]()
